package shell_test

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"

	"minsh/pkg/shell"
)

func TestPlainReader(t *testing.T) {
	t.Run("lines_then_eof", func(t *testing.T) {
		r := shell.NewPlainReader(strings.NewReader("a\nb\n"), io.Discard, "")
		for _, want := range []string{"a", "b"} {
			line, err := r.ReadLine()
			if err != nil {
				t.Fatalf("ReadLine: %v", err)
			}
			if line != want {
				t.Errorf("line = %q, want %q", line, want)
			}
		}
		if _, err := r.ReadLine(); !errors.Is(err, io.EOF) {
			t.Errorf("err = %v, want io.EOF", err)
		}
	})

	t.Run("final_line_without_newline", func(t *testing.T) {
		r := shell.NewPlainReader(strings.NewReader("last"), io.Discard, "")
		line, err := r.ReadLine()
		if err != nil || line != "last" {
			t.Errorf("ReadLine = %q, %v, want \"last\", nil", line, err)
		}
		if _, err := r.ReadLine(); !errors.Is(err, io.EOF) {
			t.Errorf("err = %v, want io.EOF", err)
		}
	})

	t.Run("crlf_stripped", func(t *testing.T) {
		r := shell.NewPlainReader(strings.NewReader("pwd\r\n"), io.Discard, "")
		line, err := r.ReadLine()
		if err != nil || line != "pwd" {
			t.Errorf("ReadLine = %q, %v, want \"pwd\", nil", line, err)
		}
	})

	t.Run("prompt_written_per_read", func(t *testing.T) {
		out := &bytes.Buffer{}
		r := shell.NewPlainReader(strings.NewReader("a\nb\n"), out, "% ")
		r.ReadLine()
		r.ReadLine()
		if out.String() != "% % " {
			t.Errorf("prompt output = %q, want %q", out.String(), "% % ")
		}
	})
}
