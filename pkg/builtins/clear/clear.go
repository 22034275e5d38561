// Package clear implements the clear built-in.
package clear

import "minsh/pkg/core"

// Run clears the terminal display by homing the cursor and erasing the
// screen with ANSI control sequences.
func Run(stdio *core.Stdio) int {
	stdio.Print("\x1b[H\x1b[2J")
	return core.ExitSuccess
}
