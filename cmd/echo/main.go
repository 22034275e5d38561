// Command echo is a standalone entry point for the echo built-in.
package main

import (
	"os"

	"minsh/pkg/builtins/echo"
	"minsh/pkg/core"
)

func main() {
	stdio := core.DefaultStdio()
	os.Exit(echo.Run(stdio, os.Args[1:]))
}
