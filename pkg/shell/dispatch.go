package shell

import "minsh/pkg/core"

// Handler is the behavior bound to one CommandKind. The two concrete
// variants declare at registration time whether the command takes an
// argument list, replacing any runtime introspection of the handler.
type Handler interface {
	call(stdio *core.Stdio, args []string) int
}

// NoArgs is a handler for a built-in that accepts no arguments. Any
// arguments on the input line are ignored.
type NoArgs func(stdio *core.Stdio) int

func (h NoArgs) call(stdio *core.Stdio, _ []string) int {
	return h(stdio)
}

// WithArgs is a handler for a built-in that accepts an argument list. When
// the parsed list is empty the handler is invoked with nil and applies its
// own default.
type WithArgs func(stdio *core.Stdio, args []string) int

func (h WithArgs) call(stdio *core.Stdio, args []string) int {
	if len(args) > 0 {
		return h(stdio, args)
	}
	return h(stdio, nil)
}

// Dispatcher maps each CommandKind to exactly one Handler.
type Dispatcher struct {
	handlers map[CommandKind]Handler
}

// NewDispatcher returns an empty Dispatcher.
func NewDispatcher() *Dispatcher {
	return &Dispatcher{handlers: make(map[CommandKind]Handler)}
}

// Register binds a handler to a kind, replacing any previous binding.
func (d *Dispatcher) Register(kind CommandKind, h Handler) {
	d.handlers[kind] = h
}

// Dispatch invokes the handler for cmd and returns its exit code. Unknown
// commands are intercepted by Parse and must not reach this point; an
// unregistered kind returns failure.
func (d *Dispatcher) Dispatch(stdio *core.Stdio, cmd ParsedCommand) int {
	h, ok := d.handlers[cmd.Kind]
	if !ok {
		return core.ExitFailure
	}
	return h.call(stdio, cmd.Args)
}
