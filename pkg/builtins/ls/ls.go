// Package ls implements the ls built-in: flag/path argument parsing, the
// directory listing formatter, and symbolic permission rendering.
package ls

import (
	"fmt"
	"os"
	"os/user"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"golang.org/x/sys/unix"

	"minsh/pkg/core"
)

// Options holds the flag set for one invocation. Flags combine within one
// dashed token (-la) and are recognized in any order.
type Options struct {
	Long bool // -l: long format
	All  bool // -a: include hidden entries
}

// Run lists the target directory. Errors are reported on stdout, matching
// the rest of the shell's diagnostics.
func Run(stdio *core.Stdio, args []string) int {
	opts, path, err := parseArgs(args)
	if err != nil {
		stdio.Println(err.Error())
		return core.ExitFailure
	}
	return list(stdio, path, opts)
}

// parseArgs separates flag tokens from an optional path argument. Tokens
// are visited in original order and the last dashed token supplies the
// authoritative flag set; unrecognized flag characters are ignored. Each
// non-dashed token must name an existing path, and the last one wins. With
// no path token the current directory is listed.
func parseArgs(args []string) (Options, string, error) {
	opts := Options{}
	path := "."
	for _, arg := range args {
		if strings.HasPrefix(arg, "-") {
			opts = Options{}
			for _, c := range arg[1:] {
				switch c {
				case 'l':
					opts.Long = true
				case 'a':
					opts.All = true
				}
			}
			continue
		}
		if _, err := os.Stat(arg); err != nil {
			return opts, "", fmt.Errorf("ls: cannot access '%s': No such file or directory", arg)
		}
		path = arg
	}
	return opts, path, nil
}

func list(stdio *core.Stdio, path string, opts Options) int {
	f, err := os.Open(path)
	if err != nil {
		stdio.Printf("ls: %v\n", err)
		return core.ExitFailure
	}
	// (*os.File).ReadDir keeps readdir iteration order; no sort is applied.
	entries, err := f.ReadDir(-1)
	f.Close()
	if err != nil {
		stdio.Printf("ls: %v\n", err)
		return core.ExitFailure
	}

	code := core.ExitSuccess
	for _, e := range entries {
		name := e.Name()
		if !opts.All && strings.HasPrefix(name, ".") {
			continue
		}
		if !opts.Long {
			stdio.Println(name)
			continue
		}
		line, err := longLine(filepath.Join(path, name), name)
		if err != nil {
			stdio.Printf("ls: %v\n", err)
			code = core.ExitFailure
			continue
		}
		stdio.Println(line)
	}
	return code
}

// longLine renders one long-format entry. The layout is positional, not
// columnar: single spaces between fields except exactly two before size.
func longLine(path, name string) (string, error) {
	var st unix.Stat_t
	if err := unix.Stat(path, &st); err != nil {
		return "", fmt.Errorf("cannot stat '%s': %v", name, err)
	}

	perms := FormatMode(uint32(st.Mode), st.Mode&unix.S_IFMT == unix.S_IFDIR)
	owner := lookupOwner(st.Uid)
	group := lookupGroup(st.Gid)
	mod := time.Unix(int64(st.Mtim.Sec), int64(st.Mtim.Nsec)).Format("2006-01-02 15:04:05")

	return fmt.Sprintf("%s %d %s %s  %d %s %s",
		perms, st.Nlink, owner, group, st.Size, mod, name), nil
}

func lookupOwner(uid uint32) string {
	id := strconv.FormatUint(uint64(uid), 10)
	if u, err := user.LookupId(id); err == nil {
		return u.Username
	}
	return id
}

func lookupGroup(gid uint32) string {
	id := strconv.FormatUint(uint64(gid), 10)
	if g, err := user.LookupGroupId(id); err == nil {
		return g.Name
	}
	return id
}
