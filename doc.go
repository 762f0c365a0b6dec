// Package suitenorm converts legacy braille test-suite documents into one
// canonical, strictly typed form.
//
// It provides:
//
//   - A structural event model (Source/Event) over which the decoder runs,
//     with a pluggable YAML driver (the default walks gopkg.in/yaml.v3 node
//     trees).
//   - A single-pass, lookahead-free decoder that tolerates every historical
//     surface form of the table reference and the expected-failure marker
//     and normalizes them into the suite model.
//   - A stable error model: one fatal DecodeError per failing document,
//     carrying a string code and the source line.
//
// Design policy:
//   - Keep only public APIs in the root package; put the decoder under
//     internal/engine, the model under suite/, sources under source/ and
//     the CLI under cmd/suitenorm.
//   - Prefer black-box testing against public APIs.
//
// Typical usage:
//
//	suites, err := suitenorm.DecodeYAMLBytes(data)
//	if err != nil { ... }
//	err = suite.EncodeYAML(os.Stdout, suites)
package suitenorm
