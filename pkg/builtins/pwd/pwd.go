// Package pwd implements the pwd built-in.
package pwd

import (
	"os"

	"minsh/pkg/core"
)

// Run prints the absolute current working directory.
func Run(stdio *core.Stdio) int {
	dir, err := os.Getwd()
	if err != nil {
		stdio.Printf("pwd: %v\n", err)
		return core.ExitFailure
	}
	stdio.Println(dir)
	return core.ExitSuccess
}
