// Package echo implements the echo built-in.
package echo

import (
	"strings"

	"minsh/pkg/core"
)

// Run prints the arguments joined by single spaces. With no arguments it
// prints an empty line.
func Run(stdio *core.Stdio, args []string) int {
	stdio.Println(strings.Join(args, " "))
	return core.ExitSuccess
}
