// Package history provides the undo/redo ledger for executed commands.
package history

import (
	"errors"
	"sync"
	"time"

	"github.com/EdgarSahakyann/Power-point--project/internal/command"
	"github.com/EdgarSahakyann/Power-point--project/internal/logger"
)

// DefaultMaxHistory bounds the undo stack when no limit is configured.
const DefaultMaxHistory = 100

// Common errors for history operations.
var (
	ErrNothingToUndo = errors.New("nothing to undo")
	ErrNothingToRedo = errors.New("nothing to redo")
)

type entry struct {
	cmd       command.Command
	timestamp time.Time
}

// Manager keeps two stacks of executed commands. It only orchestrates
// Execute and Undo calls and never inspects a command.
type Manager struct {
	mu         sync.Mutex
	undoStack  []*entry
	redoStack  []*entry
	maxHistory int
}

// NewManager creates a history bounded to maxHistory undo entries. The
// oldest entry is evicted once the limit is passed.
func NewManager(maxHistory int) *Manager {
	if maxHistory <= 0 {
		maxHistory = DefaultMaxHistory
	}
	return &Manager{maxHistory: maxHistory}
}

// Push records an executed command. Nil and non-undoable commands are
// ignored; anything else clears the redo stack. It reports whether the
// command was recorded.
func (m *Manager) Push(cmd command.Command) bool {
	if cmd == nil || !cmd.Undoable() {
		return false
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	m.undoStack = append(m.undoStack, &entry{cmd: cmd, timestamp: time.Now()})
	m.redoStack = nil
	if excess := len(m.undoStack) - m.maxHistory; excess > 0 {
		m.undoStack = m.undoStack[excess:]
	}
	logger.DebugTagf("history", "recorded %q, undo=%d", cmd.Description(), len(m.undoStack))
	return true
}

// Undo reverts the most recent command and moves it to the redo stack. If
// the command fails to undo it stays where it was.
func (m *Manager) Undo() (command.Command, error) {
	m.mu.Lock()
	if len(m.undoStack) == 0 {
		m.mu.Unlock()
		return nil, ErrNothingToUndo
	}
	e := m.undoStack[len(m.undoStack)-1]
	m.undoStack = m.undoStack[:len(m.undoStack)-1]
	m.mu.Unlock()

	if err := e.cmd.Undo(); err != nil {
		logger.Errorf("history: undo %q failed: %v", e.cmd.Description(), err)
		m.mu.Lock()
		m.undoStack = append(m.undoStack, e)
		m.mu.Unlock()
		return nil, err
	}

	m.mu.Lock()
	m.redoStack = append(m.redoStack, e)
	m.mu.Unlock()
	logger.DebugTagf("history", "undid %q", e.cmd.Description())
	return e.cmd, nil
}

// Redo re-executes the most recently undone command.
func (m *Manager) Redo() (command.Command, error) {
	m.mu.Lock()
	if len(m.redoStack) == 0 {
		m.mu.Unlock()
		return nil, ErrNothingToRedo
	}
	e := m.redoStack[len(m.redoStack)-1]
	m.redoStack = m.redoStack[:len(m.redoStack)-1]
	m.mu.Unlock()

	if err := e.cmd.Execute(); err != nil {
		logger.Errorf("history: redo %q failed: %v", e.cmd.Description(), err)
		m.mu.Lock()
		m.redoStack = append(m.redoStack, e)
		m.mu.Unlock()
		return nil, err
	}

	m.mu.Lock()
	m.undoStack = append(m.undoStack, e)
	m.mu.Unlock()
	logger.DebugTagf("history", "redid %q", e.cmd.Description())
	return e.cmd, nil
}

// Clear drops both stacks without touching the commands.
func (m *Manager) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.undoStack = nil
	m.redoStack = nil
}

// CanUndo reports whether Undo has something to do.
func (m *Manager) CanUndo() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.undoStack) > 0
}

// CanRedo reports whether Redo has something to do.
func (m *Manager) CanRedo() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.redoStack) > 0
}

// UndoCount returns the size of the undo stack.
func (m *Manager) UndoCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.undoStack)
}

// RedoCount returns the size of the redo stack.
func (m *Manager) RedoCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.redoStack)
}

// UndoDescriptions lists the undo stack, most recent first.
func (m *Manager) UndoDescriptions() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return describe(m.undoStack)
}

// RedoDescriptions lists the redo stack, next redo first.
func (m *Manager) RedoDescriptions() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return describe(m.redoStack)
}

func describe(stack []*entry) []string {
	out := make([]string, 0, len(stack))
	for i := len(stack) - 1; i >= 0; i-- {
		out = append(out, stack[i].cmd.Description())
	}
	return out
}
