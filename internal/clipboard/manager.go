// Package clipboard holds copied slides, using the system clipboard when
// available and an in-process buffer otherwise.
package clipboard

import (
	"sync"

	"github.com/atotto/clipboard"

	"github.com/EdgarSahakyann/Power-point--project/internal/logger"
)

// Overridden in tests.
var (
	systemReadAll   = clipboard.ReadAll
	systemWriteAll  = clipboard.WriteAll
	systemAvailable = func() bool { return !clipboard.Unsupported }
)

// Manager is a text clipboard. Every write is kept internally as well, so a
// failing system clipboard never loses the copied content.
type Manager struct {
	mu        sync.Mutex
	useSystem bool
	internal  string
}

// NewManager creates a clipboard. useSystem selects the system clipboard
// when the platform supports one.
func NewManager(useSystem bool) *Manager {
	m := &Manager{useSystem: useSystem && systemAvailable()}
	if useSystem && !m.useSystem {
		logger.Warnf("clipboard: system clipboard unsupported, using internal clipboard")
	}
	return m
}

// System reports whether the system clipboard is in use.
func (m *Manager) System() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.useSystem
}

// WriteAll stores text.
func (m *Manager) WriteAll(text string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.internal = text
	if !m.useSystem {
		return nil
	}
	if err := systemWriteAll(text); err != nil {
		logger.Warnf("clipboard: system write failed, kept internal copy: %v", err)
	}
	return nil
}

// ReadAll returns the clipboard text, falling back to the internal copy when
// the system clipboard is empty or unreadable.
func (m *Manager) ReadAll() (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.useSystem {
		text, err := systemReadAll()
		if err == nil && text != "" {
			return text, nil
		}
		if err != nil {
			logger.Warnf("clipboard: system read failed, using internal copy: %v", err)
		}
	}
	return m.internal, nil
}
