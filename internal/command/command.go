// Package command implements the reversible operations that mutate a deck.
//
// Every command is created already bound to its arguments, executed once by
// the session and optionally pushed onto the history. Reference errors (a
// missing slide, an index past the end) are logged and reported to the user
// but never returned: the command simply does nothing. I/O errors are
// returned from Execute.
package command

import (
	"fmt"
	"io"

	"github.com/EdgarSahakyann/Power-point--project/internal/deck"
	"github.com/EdgarSahakyann/Power-point--project/internal/logger"
)

// Command is a single reversible unit of mutation.
type Command interface {
	// Execute performs the mutation. Calling it again without an
	// intervening Undo is a no-op.
	Execute() error
	// Undo inverts the last Execute. It is a no-op if nothing was executed.
	Undo() error
	// Undoable reports whether the command belongs in the history.
	Undoable() bool
	// Description is a short human readable summary used by the history view.
	Description() string
}

// Env bundles the collaborators commands operate on. Commands hold the Env
// by pointer and never copy the store.
type Env struct {
	Store  *deck.Store
	Slides *deck.SlideFactory
	Out    io.Writer
}

// NewEnv creates an environment. A nil out discards user messages.
func NewEnv(store *deck.Store, slides *deck.SlideFactory, out io.Writer) *Env {
	if out == nil {
		out = io.Discard
	}
	return &Env{Store: store, Slides: slides, Out: out}
}

// Shapes returns the shape factory backing the slide factory.
func (e *Env) Shapes() *deck.ShapeFactory {
	return e.Slides.Shapes()
}

func (e *Env) printf(format string, args ...interface{}) {
	fmt.Fprintf(e.Out, format+"\n", args...)
}

// slide looks up a slide, reporting a miss as a swallowed reference error.
func (e *Env) slide(id int) (*deck.Slide, bool) {
	s, ok := e.Store.Get(id)
	if !ok {
		logger.Warnf("command: %v: %d", deck.ErrSlideNotFound, id)
		e.printf("Slide not found: %d", id)
	}
	return s, ok
}

// swallow logs and reports a reference error.
func (e *Env) swallow(op string, err error) {
	logger.Warnf("command: %s: %v", op, err)
	e.printf("%s failed: %v", op, err)
}

// readOnly is embedded by commands that never enter the history.
type readOnly struct{}

func (readOnly) Undo() error    { return nil }
func (readOnly) Undoable() bool { return false }

// Func wraps a plain function as a non-undoable command. Plugins use it to
// expose read-only keywords.
type Func struct {
	readOnly
	desc string
	fn   func() error
}

// NewFunc creates a non-undoable command running fn.
func NewFunc(desc string, fn func() error) *Func {
	return &Func{desc: desc, fn: fn}
}

func (f *Func) Execute() error {
	if f.fn == nil {
		return nil
	}
	return f.fn()
}

func (f *Func) Description() string { return f.desc }
