package session

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/EdgarSahakyann/Power-point--project/internal/command"
	"github.com/EdgarSahakyann/Power-point--project/internal/event"
	"github.com/EdgarSahakyann/Power-point--project/internal/history"
	"github.com/EdgarSahakyann/Power-point--project/internal/logger"
	"github.com/EdgarSahakyann/Power-point--project/internal/parser"
)

// ErrQuit is returned by Exec for exit and quit.
var ErrQuit = errors.New("quit")

const sessionHelp = `Session:
  undo                 Revert the last change
  redo                 Reapply the last undone change
  history              List the undo and redo stacks
  exit | quit          Leave the editor
`

var sessionKeywords = map[string]bool{
	"undo": true, "redo": true, "history": true, "exit": true, "quit": true,
}

func isSessionKeyword(k string) bool {
	return sessionKeywords[strings.ToLower(k)]
}

// HelpText lists parser keywords followed by the session commands.
func (s *Session) HelpText() string {
	return s.parser.Registry().HelpText() + sessionHelp
}

// Exec handles one input line. Session commands are handled here; anything
// else is parsed, executed and, when undoable, recorded. Errors are returned
// for the caller to report; the deck is unchanged by a failed line.
func (s *Session) Exec(line string) error {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		s.printf("%s", s.HelpText())
		return nil
	}

	switch strings.ToLower(trimmed) {
	case "exit", "quit":
		return ErrQuit
	case "undo":
		return s.undo()
	case "redo":
		return s.redo()
	case "history":
		s.printHistory()
		return nil
	}

	cmd, err := s.parser.Parse(trimmed)
	if err != nil {
		return err
	}
	if err := cmd.Execute(); err != nil {
		return err
	}

	switch c := cmd.(type) {
	case *command.Load:
		s.afterLoad(c.Path())
		return nil
	case *command.Save:
		s.deckPath = c.Path()
		s.events.Dispatch(event.TypeDeckSaved, event.DeckSavedData{FilePath: c.Path()})
		return nil
	}

	if s.history.Push(cmd) {
		s.dispatchModified(cmd, event.ActionExecute)
	}
	return nil
}

func (s *Session) undo() error {
	cmd, err := s.history.Undo()
	if errors.Is(err, history.ErrNothingToUndo) {
		s.printf("Nothing to undo\n")
		return nil
	}
	if err != nil {
		return fmt.Errorf("undo: %w", err)
	}
	s.printf("Undone: %s\n", cmd.Description())
	s.dispatchModified(cmd, event.ActionUndo)
	return nil
}

func (s *Session) redo() error {
	cmd, err := s.history.Redo()
	if errors.Is(err, history.ErrNothingToRedo) {
		s.printf("Nothing to redo\n")
		return nil
	}
	if err != nil {
		return fmt.Errorf("redo: %w", err)
	}
	s.printf("Redone: %s\n", cmd.Description())
	s.dispatchModified(cmd, event.ActionRedo)
	return nil
}

func (s *Session) printHistory() {
	list := func(title string, items []string) {
		if len(items) == 0 {
			s.printf("%s: empty\n", title)
			return
		}
		s.printf("%s (most recent first):\n", title)
		for i, d := range items {
			s.printf("  %d. %s\n", i+1, d)
		}
	}
	list("Undo", s.history.UndoDescriptions())
	list("Redo", s.history.RedoDescriptions())
}

// Report prints err the way the loop does: syntax errors with their usage,
// unknown commands with a pointer to help.
func (s *Session) Report(err error) {
	var se *parser.SyntaxError
	switch {
	case errors.As(err, &se):
		s.printf("Error: %s: %s\n", se.Keyword, se.Msg)
		if se.Usage != "" {
			s.printf("Usage: %s\n", se.Usage)
		}
	case errors.Is(err, parser.ErrUnknownCommand):
		s.printf("Error: %v\nType 'help' for a list of commands.\n", err)
	default:
		s.printf("Error: %v\n", err)
	}
}

// Run reads lines from in until EOF, exit or ctx is done. Cancelling ctx
// returns at once, even while waiting for input; the reader goroutine is
// then left blocked on in until it yields or is closed.
func (s *Session) Run(ctx context.Context, in io.Reader) error {
	s.printf("slided - type 'help' for commands, 'exit' to leave\n")
	s.events.Dispatch(event.TypeSessionReady, nil)

	done := make(chan struct{})
	defer close(done)
	lines, readErr := readLines(in, done)

	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		s.printf("%s", s.cfg.Editor.Prompt)

		var line string
		select {
		case <-ctx.Done():
			s.printf("\n")
			return ctx.Err()
		case l, ok := <-lines:
			if !ok {
				s.printf("\n")
				return <-readErr
			}
			line = l
		}

		err := s.Exec(line)
		if errors.Is(err, ErrQuit) {
			return nil
		}
		if err != nil {
			logger.DebugTagf("session", "line %q failed: %v", line, err)
			s.Report(err)
		}
	}
}

// readLines scans in on its own goroutine. lines is closed at EOF, after
// the scan error (or nil) has been sent on errc.
func readLines(in io.Reader, done <-chan struct{}) (<-chan string, <-chan error) {
	lines := make(chan string)
	errc := make(chan error, 1)
	go func() {
		scanner := bufio.NewScanner(in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-done:
				return
			}
		}
		errc <- scanner.Err()
		close(lines)
	}()
	return lines, errc
}
