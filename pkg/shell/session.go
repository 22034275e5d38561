package shell

import (
	"errors"
	"io"

	"github.com/rs/zerolog"

	"minsh/pkg/builtins/cd"
	"minsh/pkg/builtins/clear"
	"minsh/pkg/builtins/echo"
	"minsh/pkg/builtins/ls"
	"minsh/pkg/builtins/pwd"
	"minsh/pkg/core"
	"minsh/pkg/history"
)

// Config holds the collaborators a Session is constructed with.
type Config struct {
	Stdio  *core.Stdio
	Input  LineReader
	Store  *history.Store
	Logger zerolog.Logger
}

// Session is one interactive shell session: it reads a line, parses and
// dispatches it, and records it to the history store before reading the
// next. Execution is strictly sequential; nothing is shared across
// goroutines.
type Session struct {
	stdio *core.Stdio
	input LineReader
	store *history.Store
	disp  *Dispatcher
	log   zerolog.Logger
	done  bool
}

// NewSession builds a session and registers the built-in handlers.
func NewSession(cfg Config) *Session {
	s := &Session{
		stdio: cfg.Stdio,
		input: cfg.Input,
		store: cfg.Store,
		disp:  NewDispatcher(),
		log:   cfg.Logger,
	}
	s.disp.Register(CmdEcho, WithArgs(echo.Run))
	s.disp.Register(CmdCd, WithArgs(cd.Run))
	s.disp.Register(CmdLs, WithArgs(ls.Run))
	s.disp.Register(CmdPwd, NoArgs(pwd.Run))
	s.disp.Register(CmdClear, NoArgs(clear.Run))
	s.disp.Register(CmdHistory, NoArgs(func(stdio *core.Stdio) int {
		return history.Show(stdio, s.store)
	}))
	s.disp.Register(CmdExit, NoArgs(func(*core.Stdio) int {
		s.done = true
		return core.ExitSuccess
	}))
	return s
}

// Run processes input lines until exit or end of input. The exit status is
// always zero except when reading input fails outright.
func (s *Session) Run() int {
	s.log.Debug().Msg("session started")
	for !s.done {
		line, err := s.input.ReadLine()
		if err != nil {
			if errors.Is(err, io.EOF) {
				s.log.Debug().Msg("end of input")
				return core.ExitSuccess
			}
			s.log.Error().Err(err).Msg("reading input")
			return core.ExitFailure
		}
		s.Execute(line)
	}
	return core.ExitSuccess
}

// Execute runs a single input line to completion: parse, dispatch, record.
// Every line is recorded, including empty and unrecognized ones. The one
// exception is exit, which terminates the session before the record step.
func (s *Session) Execute(line string) int {
	cmd := Parse(s.stdio, line)
	code := core.ExitSuccess
	if cmd.Known {
		s.log.Debug().Str("line", line).Int("args", len(cmd.Args)).Msg("dispatch")
		code = s.disp.Dispatch(s.stdio, cmd)
	}
	if s.done {
		return code
	}
	s.record(line)
	return code
}

// record appends line to the history store unless it duplicates the
// immediately preceding record. Empty lines are always appended.
func (s *Session) record(line string) {
	last, ok, err := s.store.Last()
	if err != nil {
		s.log.Warn().Err(err).Msg("reading last history record")
	} else if ok && line != "" && line == last {
		s.log.Debug().Str("command", line).Msg("duplicate of last record, not appended")
		return
	}
	if err := s.store.Append(line); err != nil {
		s.log.Warn().Err(err).Msg("appending history record")
	}
}
