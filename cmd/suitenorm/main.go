package main

import "github.com/brailletools/suitenorm/internal/cli"

func main() {
	cli.Execute()
}
