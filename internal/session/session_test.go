package session

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/EdgarSahakyann/Power-point--project/internal/config"
	"github.com/EdgarSahakyann/Power-point--project/internal/event"
	"github.com/EdgarSahakyann/Power-point--project/internal/parser"
)

type memClipboard struct{ text string }

func (m *memClipboard) ReadAll() (string, error)   { return m.text, nil }
func (m *memClipboard) WriteAll(text string) error { m.text = text; return nil }

func newSession(t *testing.T, cfg *config.Config) (*Session, *bytes.Buffer) {
	t.Helper()
	out := &bytes.Buffer{}
	s, err := New(Options{Config: cfg, Out: out, Clipboard: &memClipboard{}})
	require.NoError(t, err)
	t.Cleanup(s.Close)
	return s, out
}

func exec(t *testing.T, s *Session, lines ...string) {
	t.Helper()
	for _, line := range lines {
		require.NoError(t, s.Exec(line), line)
	}
}

func ids(s *Session) []int {
	var out []int
	for _, sl := range s.Store().All() {
		out = append(out, sl.ID())
	}
	return out
}

func TestUndoRedoKeepsIDs(t *testing.T) {
	s, out := newSession(t, nil)
	exec(t, s, "create One", "create Two", `addtext 2 "hi"`)
	assert.Equal(t, []int{1, 2}, ids(s))
	assert.Equal(t, 3, s.History().UndoCount())

	exec(t, s, "undo", "undo")
	assert.Equal(t, []int{1}, ids(s))
	assert.Contains(t, out.String(), `Undone: create slide "Two"`)

	exec(t, s, "redo", "redo")
	assert.Equal(t, []int{1, 2}, ids(s))
	sl, _ := s.Store().Get(2)
	assert.Equal(t, 1, sl.TextCount())

	exec(t, s, "redo")
	assert.Contains(t, out.String(), "Nothing to redo")
}

func TestNewCommandClearsRedo(t *testing.T) {
	s, _ := newSession(t, nil)
	exec(t, s, "create One", "undo", "create Other")
	assert.False(t, s.History().CanRedo())
	assert.Equal(t, []int{2}, ids(s), "ids are never reused")
}

func TestRejectedLinesLeaveDeckAlone(t *testing.T) {
	s, out := newSession(t, nil)
	exec(t, s, "create One")
	before := s.Store().Encode()

	err := s.Exec(`addtext 1 "hello" --size abc`)
	var se *parser.SyntaxError
	require.ErrorAs(t, err, &se)
	s.Report(err)
	assert.Contains(t, out.String(), "Usage: addtext")

	err = s.Exec("frobnicate 1")
	require.ErrorIs(t, err, parser.ErrUnknownCommand)
	s.Report(err)
	assert.Contains(t, out.String(), "Type 'help'")

	assert.Equal(t, before, s.Store().Encode())
	assert.Equal(t, 1, s.History().UndoCount())
}

func TestReferenceErrorsAreReportedNotReturned(t *testing.T) {
	s, out := newSession(t, nil)
	require.NoError(t, s.Exec("addtext 7 hello"))
	assert.Contains(t, out.String(), "Slide not found: 7")
}

func TestSessionKeywords(t *testing.T) {
	s, out := newSession(t, nil)
	assert.ErrorIs(t, s.Exec("exit"), ErrQuit)
	assert.ErrorIs(t, s.Exec("QUIT"), ErrQuit)

	exec(t, s, "", "undo", "create A", "history")
	text := out.String()
	assert.Contains(t, text, "Commands:")
	assert.Contains(t, text, "Session:")
	assert.Contains(t, text, "Nothing to undo")
	assert.Contains(t, text, "Undo (most recent first):\n  1. create slide \"A\"")
	assert.Contains(t, text, "Redo: empty")
}

func TestSaveLoadClearsHistory(t *testing.T) {
	s, _ := newSession(t, nil)
	path := filepath.Join(t.TempDir(), "deck.yaml")

	var seen []event.Type
	for _, typ := range []event.Type{event.TypeDeckSaved, event.TypeDeckLoaded} {
		s.Events().Subscribe(typ, func(e event.Event) bool {
			seen = append(seen, e.Type)
			return false
		})
	}

	exec(t, s, "create One", "addshape 1 circle 2", "save "+path)
	assert.Equal(t, path, s.DeckPath())
	assert.Equal(t, "deck.yaml", s.DeckName())
	assert.Equal(t, 2, s.History().UndoCount(), "save is not recorded")

	exec(t, s, "create Two", "load "+path)
	assert.Equal(t, []int{1}, ids(s))
	assert.False(t, s.History().CanUndo())
	assert.Equal(t, []event.Type{event.TypeDeckSaved, event.TypeDeckLoaded}, seen)

	exec(t, s, "create Three")
	assert.Equal(t, []int{1, 3}, ids(s), "ids are not reused after a load")
}

func TestLoadOnlyAtTopLevel(t *testing.T) {
	s, _ := newSession(t, nil)
	path := filepath.Join(t.TempDir(), "saved.json")
	exec(t, s, "create Saved", "save "+path, "create Extra")

	for _, line := range []string{
		"batch load " + path,
		"batch create Other; load " + path,
		"ifexists 1 load " + path,
	} {
		err := s.Exec(line)
		var se *parser.SyntaxError
		require.ErrorAs(t, err, &se, line)
		assert.Contains(t, se.Msg, "load must run on its own", line)
	}
	assert.Equal(t, []int{1, 2}, ids(s))
	assert.Equal(t, 2, s.History().UndoCount())

	exec(t, s, "undo", "undo")
	assert.Empty(t, ids(s))
	exec(t, s, "load "+path)
	assert.Equal(t, []int{1}, ids(s))
	assert.False(t, s.History().CanUndo())
}

func TestLoadFailureKeepsDeck(t *testing.T) {
	s, _ := newSession(t, nil)
	exec(t, s, "create One")
	err := s.Exec("load " + filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)
	assert.Equal(t, []int{1}, ids(s))
	assert.True(t, s.History().CanUndo())
}

func TestOpen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "deck.json")
	first, _ := newSession(t, nil)
	exec(t, first, "create Intro", "save "+path)

	s, _ := newSession(t, nil)
	require.NoError(t, s.Open(path))
	assert.Equal(t, []int{1}, ids(s))
	assert.Equal(t, path, s.DeckPath())
}

func TestModifiedEvents(t *testing.T) {
	s, _ := newSession(t, nil)
	var actions []string
	s.Events().Subscribe(event.TypeDeckModified, func(e event.Event) bool {
		d := e.Data.(event.DeckModifiedData)
		actions = append(actions, d.Action.String())
		return false
	})
	var depths []int
	s.Events().Subscribe(event.TypeHistoryChanged, func(e event.Event) bool {
		depths = append(depths, e.Data.(event.HistoryChangedData).UndoCount)
		return false
	})

	exec(t, s, "create A", "display", "undo", "redo")
	assert.Equal(t, []string{"execute", "undo", "redo"}, actions)
	assert.Equal(t, []int{1, 0, 1}, depths)
}

func TestPluginsAreWired(t *testing.T) {
	cfg := config.NewDefaultConfig()
	cfg.Autosave.Enabled = true
	cfg.Autosave.Every = 2
	cfg.Autosave.Path = filepath.Join(t.TempDir(), "auto.json")

	s, out := newSession(t, cfg)
	exec(t, s, "create A")
	_, err := os.Stat(cfg.Autosave.Path)
	assert.True(t, errors.Is(err, os.ErrNotExist))

	exec(t, s, "create B")
	_, err = os.Stat(cfg.Autosave.Path)
	assert.NoError(t, err)

	exec(t, s, "stats")
	assert.Contains(t, out.String(), "Slides: 2, Texts: 0, Shapes: 0")

	assert.Error(t, s.RegisterCommand(parser.Grammar{Keyword: "undo"}, nil))
}

func TestCopyPaste(t *testing.T) {
	s, _ := newSession(t, nil)
	exec(t, s, "create A", `addtext 1 "body"`, "copy 1", "paste")
	assert.Equal(t, []int{1, 2}, ids(s))
	exec(t, s, "undo")
	assert.Equal(t, []int{1}, ids(s))
}

func TestRunLoop(t *testing.T) {
	s, out := newSession(t, nil)
	in := strings.NewReader("create A\nbogus\nundo\nexit\ncreate never\n")
	require.NoError(t, s.Run(context.Background(), in))

	text := out.String()
	assert.True(t, strings.HasPrefix(text, "slided - type 'help'"))
	assert.Contains(t, text, "Created slide with ID: 1")
	assert.Contains(t, text, "Error: unknown command: bogus")
	assert.Contains(t, text, "Undone:")
	assert.Equal(t, 0, s.Store().Len())
}

func TestRunStopsAtEOFAndCancel(t *testing.T) {
	s, _ := newSession(t, nil)
	require.NoError(t, s.Run(context.Background(), strings.NewReader("create A")))
	assert.Equal(t, 1, s.Store().Len())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, s.Run(ctx, strings.NewReader("create B\n")), context.Canceled)
	assert.Equal(t, 1, s.Store().Len())
}

func TestRunCancelWhileWaitingForInput(t *testing.T) {
	s, _ := newSession(t, nil)
	pr, pw := io.Pipe()
	t.Cleanup(func() { pw.Close() })

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	result := make(chan error, 1)
	go func() { result <- s.Run(ctx, pr) }()

	_, err := io.WriteString(pw, "create A\n")
	require.NoError(t, err)
	require.Eventually(t, func() bool { return s.Store().Len() == 1 }, time.Second, 5*time.Millisecond)

	cancel()
	select {
	case err := <-result:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(time.Second):
		t.Fatal("Run did not return after cancel")
	}
}
