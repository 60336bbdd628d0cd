package main

import "github.com/kohla-sky/sample-program/internal/cli"

func main() {
	cli.Execute()
}
