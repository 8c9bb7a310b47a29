// internal/plugin/manager.go
package plugin

import (
	"errors"
	"fmt"
	"sync"

	"github.com/EdgarSahakyann/Power-point--project/internal/logger"
)

// Manager handles plugin registration and lifecycle. Plugins are
// initialized in registration order and shut down in reverse.
type Manager struct {
	mu          sync.RWMutex
	plugins     map[string]Plugin
	order       []string
	initialized map[string]bool
}

// NewManager creates a new plugin manager.
func NewManager() *Manager {
	return &Manager{
		plugins:     make(map[string]Plugin),
		initialized: make(map[string]bool),
	}
}

// Register adds a plugin. Call before InitializePlugins.
func (m *Manager) Register(plugin Plugin) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	name := plugin.Name()
	if name == "" {
		return fmt.Errorf("plugin registration failed: plugin name cannot be empty")
	}
	if _, exists := m.plugins[name]; exists {
		return fmt.Errorf("plugin registration failed: plugin named '%s' already registered", name)
	}

	m.plugins[name] = plugin
	m.order = append(m.order, name)
	logger.DebugTagf("plugin", "Registered plugin '%s'", name)
	return nil
}

// InitializePlugins calls Initialize on every registered plugin. A failing
// plugin is logged and skipped; the errors are joined in the result.
func (m *Manager) InitializePlugins(api DeckAPI) error {
	pluginsToInit := m.ordered()

	logger.DebugTagf("plugin", "Initializing %d plugins", len(pluginsToInit))
	var failed []error
	for _, p := range pluginsToInit {
		if err := p.Initialize(api); err != nil {
			logger.Errorf("Plugin '%s' failed to initialize: %v", p.Name(), err)
			failed = append(failed, fmt.Errorf("plugin %s: %w", p.Name(), err))
			continue
		}
		m.mu.Lock()
		m.initialized[p.Name()] = true
		m.mu.Unlock()
		logger.DebugTagf("plugin", "Initialized plugin '%s'", p.Name())
	}
	return errors.Join(failed...)
}

// ShutdownPlugins calls Shutdown on every initialized plugin.
func (m *Manager) ShutdownPlugins() {
	plugins := m.ordered()
	for i := len(plugins) - 1; i >= 0; i-- {
		p := plugins[i]
		m.mu.Lock()
		wasInit := m.initialized[p.Name()]
		delete(m.initialized, p.Name())
		m.mu.Unlock()
		if !wasInit {
			continue
		}
		if err := p.Shutdown(); err != nil {
			logger.Errorf("Plugin '%s' failed to shut down: %v", p.Name(), err)
		}
	}
}

// GetPlugin returns a registered plugin by name.
func (m *Manager) GetPlugin(name string) (Plugin, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	p, exists := m.plugins[name]
	return p, exists
}

// Names returns plugin names in registration order.
func (m *Manager) Names() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return append([]string(nil), m.order...)
}

func (m *Manager) ordered() []Plugin {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]Plugin, 0, len(m.order))
	for _, name := range m.order {
		out = append(out, m.plugins[name])
	}
	return out
}
