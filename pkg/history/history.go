// Package history persists executed commands to an append-only text file.
// Each record is one line: a unix timestamp with fractional seconds, a
// colon, and the command text as typed.
package history

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"time"

	"minsh/pkg/core"
)

// Store is a passive read/append service over the history file. The file
// handle is opened and released per operation, never held across commands.
type Store struct {
	path string
}

// Open returns a store backed by path, creating the file empty if absent.
func Open(path string) (*Store, error) {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, err
	}
	if err := f.Close(); err != nil {
		return nil, err
	}
	return &Store{path: path}, nil
}

// Path returns the backing file path.
func (s *Store) Path() string {
	return s.path
}

// Append writes one timestamped record for command, which may be empty.
func (s *Store) Append(command string) error {
	f, err := os.OpenFile(s.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	ts := float64(time.Now().UnixMicro()) / 1e6
	if _, err := fmt.Fprintf(f, "%.6f:%s\n", ts, command); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// Last returns the command text of the most recent record. ok is false when
// the store is empty.
func (s *Store) Last() (text string, ok bool, err error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return "", false, err
	}
	body := strings.TrimRight(string(data), "\n")
	if body == "" {
		return "", false, nil
	}
	if i := strings.LastIndexByte(body, '\n'); i >= 0 {
		body = body[i+1:]
	}
	return commandText(body), true, nil
}

// Commands returns the command text of every record in file order.
func (s *Store) Commands() ([]string, error) {
	f, err := os.Open(s.path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var commands []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		commands = append(commands, commandText(scanner.Text()))
	}
	return commands, scanner.Err()
}

// commandText strips the timestamp field from a raw record. The split is on
// the first colon only, so command text containing colons stays intact.
func commandText(record string) string {
	if i := strings.IndexByte(record, ':'); i >= 0 {
		record = record[i+1:]
	}
	return strings.TrimSpace(record)
}

// Show prints every stored record as "<index>  <command>", zero-indexed, in
// file order.
func Show(stdio *core.Stdio, s *Store) int {
	commands, err := s.Commands()
	if err != nil {
		stdio.Printf("history: %v\n", err)
		return core.ExitFailure
	}
	for i, command := range commands {
		stdio.Printf("%d  %s\n", i, command)
	}
	return core.ExitSuccess
}
