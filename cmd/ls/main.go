// Command ls is a standalone entry point for the ls built-in.
package main

import (
	"os"

	"minsh/pkg/builtins/ls"
	"minsh/pkg/core"
)

func main() {
	stdio := core.DefaultStdio()
	os.Exit(ls.Run(stdio, os.Args[1:]))
}
