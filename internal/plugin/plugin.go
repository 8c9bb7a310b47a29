// internal/plugin/plugin.go
package plugin

import (
	"github.com/EdgarSahakyann/Power-point--project/internal/command"
	"github.com/EdgarSahakyann/Power-point--project/internal/deck"
	"github.com/EdgarSahakyann/Power-point--project/internal/event"
	"github.com/EdgarSahakyann/Power-point--project/internal/parser"
)

// DeckAPI is the part of the editor a plugin may use. Plugins change the
// deck only through commands they register, so every edit they make goes
// through history.
type DeckAPI interface {
	// --- Deck access (read-only) ---
	Slides() []*deck.Slide
	SlideCount() int

	// SaveDeck writes the deck to path without touching history.
	SaveDeck(path string) error

	// --- Event bus ---
	DispatchEvent(eventType event.Type, data interface{})
	SubscribeEvent(eventType event.Type, handler event.Handler)

	// --- Command registration ---
	RegisterCommand(g parser.Grammar, build parser.Builder) error
	Env() *command.Env

	// Printf writes a message to the session output.
	Printf(format string, args ...interface{})

	// PluginConfigValue returns a configuration value for a plugin.
	PluginConfigValue(pluginName, key string) (interface{}, bool)
}

// Plugin is implemented by every plugin.
type Plugin interface {
	Name() string

	// Initialize is called once before the first command runs. Plugins
	// subscribe to events and register commands here.
	Initialize(api DeckAPI) error

	// Shutdown is called once when the session ends.
	Shutdown() error
}
