package shell_test

import (
	"reflect"
	"testing"

	"minsh/pkg/shell"
	"minsh/pkg/testutil"
)

func TestTokenize(t *testing.T) {
	tests := []struct {
		name string
		line string
		want []string
	}{
		{"empty", "", nil},
		{"blank", "   \t  ", nil},
		{"single", "pwd", []string{"pwd"}},
		{"args", "echo a b c", []string{"echo", "a", "b", "c"}},
		{"run_of_spaces", "echo   a\t b", []string{"echo", "a", "b"}},
		{"no_quoting", `echo "a b"`, []string{"echo", `"a`, `b"`}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := shell.Tokenize(tt.line)
			if len(got) == 0 && len(tt.want) == 0 {
				return
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Tokenize(%q) = %v, want %v", tt.line, got, tt.want)
			}
		})
	}
}

func TestParse(t *testing.T) {
	t.Run("known_command", func(t *testing.T) {
		stdio, out, _ := testutil.CaptureStdioNoInput()
		cmd := shell.Parse(stdio, "echo Hello World")
		if !cmd.Known || cmd.Kind != shell.CmdEcho {
			t.Fatalf("Parse = %+v, want known echo", cmd)
		}
		if !reflect.DeepEqual(cmd.Args, []string{"Hello", "World"}) {
			t.Errorf("args = %v, want [Hello World]", cmd.Args)
		}
		testutil.AssertOutput(t, out.String(), "")
	})

	t.Run("case_insensitive_name", func(t *testing.T) {
		for _, line := range []string{"PWD", "pWd", "Pwd"} {
			stdio, _, _ := testutil.CaptureStdioNoInput()
			cmd := shell.Parse(stdio, line)
			if !cmd.Known || cmd.Kind != shell.CmdPwd {
				t.Errorf("Parse(%q) = %+v, want known pwd", line, cmd)
			}
		}
	})

	t.Run("argument_casing_preserved", func(t *testing.T) {
		stdio, _, _ := testutil.CaptureStdioNoInput()
		cmd := shell.Parse(stdio, "ECHO HeLLo")
		if !reflect.DeepEqual(cmd.Args, []string{"HeLLo"}) {
			t.Errorf("args = %v, want [HeLLo]", cmd.Args)
		}
	})

	t.Run("unrecognized_command", func(t *testing.T) {
		stdio, out, _ := testutil.CaptureStdioNoInput()
		cmd := shell.Parse(stdio, "frobnicate x y")
		if cmd.Known {
			t.Fatalf("Parse = %+v, want unknown", cmd)
		}
		testutil.AssertOutput(t, out.String(), "Command not found: frobnicate\n")
		if !reflect.DeepEqual(cmd.Args, []string{"x", "y"}) {
			t.Errorf("args = %v, want [x y]", cmd.Args)
		}
	})

	t.Run("empty_line", func(t *testing.T) {
		stdio, out, _ := testutil.CaptureStdioNoInput()
		cmd := shell.Parse(stdio, "   ")
		if cmd.Known || len(cmd.Args) != 0 {
			t.Errorf("Parse = %+v, want empty command", cmd)
		}
		testutil.AssertOutput(t, out.String(), "")
	})
}

func TestLookupCommand(t *testing.T) {
	if _, ok := shell.LookupCommand("history"); !ok {
		t.Error("history should be a known command")
	}
	if _, ok := shell.LookupCommand("HISTORY"); !ok {
		t.Error("HISTORY should be a known command")
	}
	if _, ok := shell.LookupCommand("ech"); ok {
		t.Error("ech should not match echo")
	}
	if _, ok := shell.LookupCommand(""); ok {
		t.Error("empty token should not be a command")
	}
}
