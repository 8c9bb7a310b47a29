package session

import (
	"fmt"

	"github.com/EdgarSahakyann/Power-point--project/internal/command"
	"github.com/EdgarSahakyann/Power-point--project/internal/deck"
	"github.com/EdgarSahakyann/Power-point--project/internal/event"
	"github.com/EdgarSahakyann/Power-point--project/internal/parser"
	"github.com/EdgarSahakyann/Power-point--project/internal/plugin"
)

var _ plugin.DeckAPI = (*Session)(nil)

func (s *Session) Slides() []*deck.Slide { return s.store.All() }
func (s *Session) SlideCount() int       { return s.store.Len() }

// SaveDeck writes the deck without recording history or changing DeckPath.
func (s *Session) SaveDeck(path string) error {
	return s.persister.Save(s.store, path)
}

func (s *Session) DispatchEvent(eventType event.Type, data interface{}) {
	s.events.Dispatch(eventType, data)
}

func (s *Session) SubscribeEvent(eventType event.Type, handler event.Handler) {
	s.events.Subscribe(eventType, handler)
}

func (s *Session) RegisterCommand(g parser.Grammar, build parser.Builder) error {
	if isSessionKeyword(g.Keyword) {
		return fmt.Errorf("keyword %q is reserved by the session", g.Keyword)
	}
	return s.parser.Registry().Register(g, build)
}

func (s *Session) Env() *command.Env { return s.env }

func (s *Session) Printf(format string, args ...interface{}) {
	s.printf(format, args...)
}

// PluginConfigValue exposes the [autosave] section to the autosave plugin.
func (s *Session) PluginConfigValue(pluginName, key string) (interface{}, bool) {
	if pluginName != "autosave" {
		return nil, false
	}
	a := s.cfg.Autosave
	switch key {
	case "enabled":
		return a.Enabled, true
	case "path":
		return a.Path, true
	case "every":
		return a.Every, true
	}
	return nil, false
}
