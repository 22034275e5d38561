// Package cd implements the cd built-in.
package cd

import (
	"os"
	"path/filepath"
	"strings"

	"minsh/pkg/core"
)

// Run changes the process working directory and prints the new directory on
// success. Arguments are concatenated with no separator to form the target
// path; with no arguments the target is the user's home directory. A
// missing target leaves the working directory unchanged.
func Run(stdio *core.Stdio, args []string) int {
	path := strings.Join(args, "")
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			stdio.Printf("cd: %v\n", err)
			return core.ExitFailure
		}
		path = home
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		stdio.Printf("cd: %v\n", err)
		return core.ExitFailure
	}
	if err := os.Chdir(abs); err != nil {
		if os.IsNotExist(err) {
			stdio.Printf("cd: no such file or directory: %s\n", path)
		} else {
			stdio.Printf("cd: %v\n", err)
		}
		return core.ExitFailure
	}

	dir, err := os.Getwd()
	if err != nil {
		stdio.Printf("cd: %v\n", err)
		return core.ExitFailure
	}
	stdio.Println(dir)
	return core.ExitSuccess
}
