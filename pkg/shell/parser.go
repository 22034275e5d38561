// Package shell implements the minsh read-parse-dispatch loop.
package shell

import (
	"strings"

	"minsh/pkg/core"
)

// CommandKind identifies one of the shell's built-in commands. The
// vocabulary is closed: anything else is reported as not found.
type CommandKind int

const (
	CmdEcho CommandKind = iota
	CmdCd
	CmdPwd
	CmdLs
	CmdExit
	CmdClear
	CmdHistory
)

// commandNames maps the upper-cased first token to its kind. Matching is
// case-insensitive on the command name only; arguments keep their casing.
var commandNames = map[string]CommandKind{
	"ECHO":    CmdEcho,
	"CD":      CmdCd,
	"PWD":     CmdPwd,
	"LS":      CmdLs,
	"EXIT":    CmdExit,
	"CLEAR":   CmdClear,
	"HISTORY": CmdHistory,
}

// LookupCommand resolves a raw token to a CommandKind.
func LookupCommand(token string) (CommandKind, bool) {
	kind, ok := commandNames[strings.ToUpper(token)]
	return kind, ok
}

// ParsedCommand is the structured form of one input line. Known is false
// when the line was empty or its first token named no built-in; such a
// command is never dispatched.
type ParsedCommand struct {
	Kind  CommandKind
	Known bool
	Args  []string
}

// Tokenize splits a raw line into whitespace-delimited tokens. There is no
// quoting or escaping: a space always splits.
func Tokenize(line string) []string {
	return strings.Fields(line)
}

// Parse tokenizes a line and validates its first token. An unrecognized
// command is reported to stdio.Out and yields Known=false; the session
// continues with the next line.
func Parse(stdio *core.Stdio, line string) ParsedCommand {
	tokens := Tokenize(line)
	if len(tokens) == 0 {
		return ParsedCommand{}
	}
	kind, ok := LookupCommand(tokens[0])
	if !ok {
		stdio.Printf("Command not found: %s\n", tokens[0])
		return ParsedCommand{Args: tokens[1:]}
	}
	return ParsedCommand{Kind: kind, Known: true, Args: tokens[1:]}
}
