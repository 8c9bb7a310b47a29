// Package session wires the deck, parser, history, events and plugins
// together and runs the line-oriented editing loop.
package session

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/EdgarSahakyann/Power-point--project/internal/clipboard"
	"github.com/EdgarSahakyann/Power-point--project/internal/command"
	"github.com/EdgarSahakyann/Power-point--project/internal/config"
	"github.com/EdgarSahakyann/Power-point--project/internal/deck"
	"github.com/EdgarSahakyann/Power-point--project/internal/event"
	"github.com/EdgarSahakyann/Power-point--project/internal/history"
	"github.com/EdgarSahakyann/Power-point--project/internal/logger"
	"github.com/EdgarSahakyann/Power-point--project/internal/parser"
	"github.com/EdgarSahakyann/Power-point--project/internal/persist"
	"github.com/EdgarSahakyann/Power-point--project/internal/plugin"
	"github.com/EdgarSahakyann/Power-point--project/internal/script"
	"github.com/EdgarSahakyann/Power-point--project/internal/theme"
	"github.com/EdgarSahakyann/Power-point--project/plugins/autosave"
	"github.com/EdgarSahakyann/Power-point--project/plugins/stats"
)

// Options configures a Session. Zero fields get defaults.
type Options struct {
	Config    *config.Config
	Out       io.Writer
	Persister command.Persister
	Clipboard command.Clipboard
	Themes    *theme.Manager
	// Plugins replaces the built-in plugin set (autosave, stats) when
	// non-nil.
	Plugins []plugin.Plugin
}

// Session owns the editing state of one deck.
type Session struct {
	cfg       *config.Config
	out       io.Writer
	store     *deck.Store
	slides    *deck.SlideFactory
	env       *command.Env
	parser    *parser.Parser
	history   *history.Manager
	events    *event.Manager
	plugins   *plugin.Manager
	themes    *theme.Manager
	persister command.Persister

	deckPath string
}

// New builds a session and initializes its plugins.
func New(opts Options) (*Session, error) {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.NewDefaultConfig()
	}
	out := opts.Out
	if out == nil {
		out = io.Discard
	}
	persister := opts.Persister
	if persister == nil {
		persister = persist.NewFiles()
	}
	clip := opts.Clipboard
	if clip == nil {
		clip = clipboard.NewManager(cfg.Clipboard.System)
	}
	themes := opts.Themes
	if themes == nil {
		themes = theme.NewManager("")
	}

	store := deck.NewStore()
	slides := deck.NewSlideFactory(deck.NewShapeFactory())
	env := command.NewEnv(store, slides, out)

	p, err := parser.NewDefault(parser.Deps{
		Env:       env,
		Persister: persister,
		Exporter:  persist.NewSVGExporter(themes),
		Clipboard: clip,
		Defaults: parser.Defaults{
			Font:  cfg.Editor.DefaultFont,
			Color: cfg.Editor.DefaultColor,
			Theme: cfg.Editor.DefaultTheme,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("register commands: %w", err)
	}
	if _, err := script.Register(p, env); err != nil {
		return nil, fmt.Errorf("register scripts: %w", err)
	}

	s := &Session{
		cfg:       cfg,
		out:       out,
		store:     store,
		slides:    slides,
		env:       env,
		parser:    p,
		history:   history.NewManager(cfg.Editor.HistoryLimit),
		events:    event.NewManager(),
		plugins:   plugin.NewManager(),
		themes:    themes,
		persister: persister,
	}

	builtin := opts.Plugins
	if builtin == nil {
		builtin = []plugin.Plugin{autosave.New(), stats.New()}
	}
	for _, pl := range builtin {
		if err := s.plugins.Register(pl); err != nil {
			return nil, err
		}
	}
	if err := s.plugins.InitializePlugins(s); err != nil {
		logger.Warnf("session: %v", err)
	}
	return s, nil
}

func (s *Session) Store() *deck.Store          { return s.store }
func (s *Session) History() *history.Manager   { return s.history }
func (s *Session) Events() *event.Manager      { return s.events }
func (s *Session) Parser() *parser.Parser      { return s.parser }
func (s *Session) Themes() *theme.Manager      { return s.themes }
func (s *Session) Factory() *deck.SlideFactory { return s.slides }

// DeckPath is the file last loaded or saved, or "".
func (s *Session) DeckPath() string { return s.deckPath }

// DeckName is the base name of DeckPath.
func (s *Session) DeckName() string {
	if s.deckPath == "" {
		return ""
	}
	return filepath.Base(s.deckPath)
}

// Open loads path as the starting deck. It bypasses history.
func (s *Session) Open(path string) error {
	if err := s.persister.Load(s.store, s.slides, path); err != nil {
		return err
	}
	s.afterLoad(path)
	return nil
}

// Close shuts the plugins down.
func (s *Session) Close() {
	s.events.Dispatch(event.TypeSessionQuit, nil)
	s.plugins.ShutdownPlugins()
}

func (s *Session) afterLoad(path string) {
	s.deckPath = path
	s.history.Clear()
	s.events.Dispatch(event.TypeDeckLoaded, event.DeckLoadedData{FilePath: path, SlideCount: s.store.Len()})
	s.dispatchHistory()
}

func (s *Session) dispatchHistory() {
	s.events.Dispatch(event.TypeHistoryChanged, event.HistoryChangedData{
		UndoCount: s.history.UndoCount(),
		RedoCount: s.history.RedoCount(),
	})
}

func (s *Session) dispatchModified(cmd command.Command, action event.Action) {
	s.events.Dispatch(event.TypeDeckModified, event.DeckModifiedData{
		Description: cmd.Description(),
		Action:      action,
		SlideCount:  s.store.Len(),
	})
	s.dispatchHistory()
}

func (s *Session) printf(format string, args ...interface{}) {
	fmt.Fprintf(s.out, format, args...)
}
