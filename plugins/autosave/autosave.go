package autosave

import (
	"sync"

	"github.com/EdgarSahakyann/Power-point--project/internal/event"
	"github.com/EdgarSahakyann/Power-point--project/internal/logger"
	"github.com/EdgarSahakyann/Power-point--project/internal/plugin"
)

var _ plugin.Plugin = (*AutoSave)(nil)

const (
	defaultEnabled = false
	defaultPath    = "autosave.json"
	defaultEvery   = 5
)

// AutoSave writes the deck to a fixed file after every N modifications,
// and once more at shutdown if modifications are pending.
type AutoSave struct {
	api plugin.DeckAPI

	mutex   sync.Mutex
	enabled bool
	path    string
	every   int
	pending int
	saves   int
}

// New creates a new instance of the AutoSave plugin.
func New() *AutoSave {
	return &AutoSave{
		enabled: defaultEnabled,
		path:    defaultPath,
		every:   defaultEvery,
	}
}

func (p *AutoSave) Name() string {
	return "autosave"
}

// Initialize reads configuration and subscribes to deck events.
func (p *AutoSave) Initialize(api plugin.DeckAPI) error {
	p.api = api
	name := p.Name()

	p.mutex.Lock()
	if v, ok := api.PluginConfigValue(name, "enabled"); ok {
		if b, isBool := v.(bool); isBool {
			p.enabled = b
		} else {
			logger.Warnf("%s: Invalid type for 'enabled' config (%T), using default (%v)", name, v, p.enabled)
		}
	}
	if v, ok := api.PluginConfigValue(name, "path"); ok {
		if s, isStr := v.(string); isStr && s != "" {
			p.path = s
		} else {
			logger.Warnf("%s: Invalid 'path' config (%v), using default (%s)", name, v, p.path)
		}
	}
	if v, ok := api.PluginConfigValue(name, "every"); ok {
		if n, isInt := v.(int); isInt && n > 0 {
			p.every = n
		} else {
			logger.Warnf("%s: 'every' config must be a positive integer (%v), using default (%d)", name, v, p.every)
		}
	}
	enabled, path, every := p.enabled, p.path, p.every
	p.mutex.Unlock()

	logger.Infof("%s initialized. Enabled: %v, Path: %s, Every: %d", name, enabled, path, every)
	if !enabled {
		return nil
	}

	api.SubscribeEvent(event.TypeDeckModified, p.onModified)
	// A load or a save brings the file in line with the deck.
	api.SubscribeEvent(event.TypeDeckLoaded, p.onSynced)
	api.SubscribeEvent(event.TypeDeckSaved, p.onSynced)
	return nil
}

// Shutdown flushes pending modifications.
func (p *AutoSave) Shutdown() error {
	p.mutex.Lock()
	defer p.mutex.Unlock()
	if !p.enabled || p.pending == 0 {
		return nil
	}
	return p.saveLocked()
}

// Saves reports how many automatic saves succeeded.
func (p *AutoSave) Saves() int {
	p.mutex.Lock()
	defer p.mutex.Unlock()
	return p.saves
}

func (p *AutoSave) onModified(event.Event) bool {
	p.mutex.Lock()
	defer p.mutex.Unlock()

	p.pending++
	if p.pending < p.every {
		return false
	}
	if err := p.saveLocked(); err != nil {
		logger.Errorf("%s: Auto-save to '%s' failed: %v", p.Name(), p.path, err)
	}
	return false
}

func (p *AutoSave) onSynced(event.Event) bool {
	p.mutex.Lock()
	p.pending = 0
	p.mutex.Unlock()
	return false
}

func (p *AutoSave) saveLocked() error {
	if err := p.api.SaveDeck(p.path); err != nil {
		return err
	}
	logger.DebugTagf("autosave", "Saved %d pending modification(s) to '%s'", p.pending, p.path)
	p.pending = 0
	p.saves++
	return nil
}
