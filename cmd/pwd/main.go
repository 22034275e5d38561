// Command pwd is a standalone entry point for the pwd built-in.
package main

import (
	"os"

	"minsh/pkg/builtins/pwd"
	"minsh/pkg/core"
)

func main() {
	stdio := core.DefaultStdio()
	os.Exit(pwd.Run(stdio))
}
