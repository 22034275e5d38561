// Command minsh is a minimal interactive shell with a persistent,
// deduplicating command history.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/pflag"
	"golang.org/x/term"

	"minsh/pkg/core"
	"minsh/pkg/history"
	"minsh/pkg/shell"
)

const version = "0.1.0"

const (
	defaultHistoryFile = ".history_shell"
	defaultPrompt      = "% "
)

func main() {
	os.Exit(run())
}

func run() int {
	historyFile := pflag.String("history-file", "", "history file path (default \"./"+defaultHistoryFile+"\")")
	prompt := pflag.String("prompt", "", "prompt string (default \""+defaultPrompt+"\")")
	logLevel := pflag.String("log-level", "", "diagnostic log level on stderr (default \"warn\")")
	showVersion := pflag.BoolP("version", "V", false, "print version and exit")
	pflag.Parse()

	if *showVersion {
		fmt.Printf("minsh version %s\n", version)
		return core.ExitSuccess
	}

	// A .env in the working directory supplies MINSH_* settings; explicit
	// flags still win.
	if _, err := os.Stat(".env"); err == nil {
		if err := godotenv.Load(); err != nil {
			fmt.Fprintf(os.Stderr, "minsh: loading .env: %v\n", err)
			return core.ExitFailure
		}
	}

	logger := newLogger(firstNonEmpty(*logLevel, os.Getenv("MINSH_LOG_LEVEL")))

	storePath := firstNonEmpty(*historyFile, os.Getenv("MINSH_HISTORY_FILE"), defaultHistoryFile)
	store, err := history.Open(storePath)
	if err != nil {
		logger.Error().Err(err).Str("path", storePath).Msg("opening history store")
		return core.ExitFailure
	}

	ps := firstNonEmpty(*prompt, os.Getenv("MINSH_PROMPT"), defaultPrompt)

	var input shell.LineReader
	if term.IsTerminal(int(os.Stdin.Fd())) {
		editor, err := shell.NewEditorReader(ps)
		if err != nil {
			logger.Error().Err(err).Msg("initializing line editor")
			return core.ExitFailure
		}
		defer editor.Close()
		input = editor
	} else {
		input = shell.NewPlainReader(os.Stdin, os.Stdout, ps)
	}

	session := shell.NewSession(shell.Config{
		Stdio:  core.DefaultStdio(),
		Input:  input,
		Store:  store,
		Logger: logger,
	})
	return session.Run()
}

func newLogger(level string) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || level == "" {
		lvl = zerolog.WarnLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		With().Timestamp().Logger().Level(lvl)
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
