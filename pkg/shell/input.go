package shell

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"
)

// LineReader yields one raw input line per call, without the trailing
// newline. io.EOF signals the end of the session's input.
type LineReader interface {
	ReadLine() (string, error)
}

// PlainReader reads lines from a buffered stream, writing the prompt before
// each read. It serves piped input and tests; pass an empty prompt to
// suppress it.
type PlainReader struct {
	r      *bufio.Reader
	out    io.Writer
	prompt string
}

// NewPlainReader returns a PlainReader over in, prompting on out.
func NewPlainReader(in io.Reader, out io.Writer, prompt string) *PlainReader {
	return &PlainReader{r: bufio.NewReader(in), out: out, prompt: prompt}
}

func (p *PlainReader) ReadLine() (string, error) {
	if p.prompt != "" {
		fmt.Fprint(p.out, p.prompt)
	}
	line, err := p.r.ReadString('\n')
	line = strings.TrimSuffix(line, "\n")
	line = strings.TrimSuffix(line, "\r")
	if err != nil {
		// A final line without a newline is still a line.
		if errors.Is(err, io.EOF) && line != "" {
			return line, nil
		}
		return "", err
	}
	return line, nil
}

// EditorReader reads lines through a readline editor when stdin is a
// terminal, giving in-session recall and editing. Ctrl-C discards the
// current line and prompts again; Ctrl-D surfaces as io.EOF.
type EditorReader struct {
	rl *readline.Instance
}

// NewEditorReader opens a readline instance with the given prompt.
func NewEditorReader(prompt string) (*EditorReader, error) {
	rl, err := readline.New(prompt)
	if err != nil {
		return nil, err
	}
	return &EditorReader{rl: rl}, nil
}

func (e *EditorReader) ReadLine() (string, error) {
	for {
		line, err := e.rl.Readline()
		if errors.Is(err, readline.ErrInterrupt) {
			continue
		}
		return line, err
	}
}

// Close releases the underlying terminal state.
func (e *EditorReader) Close() error {
	return e.rl.Close()
}
