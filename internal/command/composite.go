package command

import (
	"fmt"
	"strings"

	"github.com/EdgarSahakyann/Power-point--project/internal/logger"
)

// Macro runs an ordered group of commands as one history entry. Undo walks
// the children in reverse so that later mutations are unwound before the
// ones they depend on.
type Macro struct {
	name     string
	children []Command
	executed bool
}

// NewMacro creates a composite command. Nil children are dropped.
func NewMacro(name string, children ...Command) *Macro {
	m := &Macro{name: name}
	for _, c := range children {
		m.Add(c)
	}
	return m
}

// NewRecordedMacro wraps children the caller has already executed, in
// order. The macro starts in the executed state, so the next call it
// expects is Undo.
func NewRecordedMacro(name string, children ...Command) *Macro {
	m := NewMacro(name, children...)
	m.executed = true
	return m
}

// Add appends a child. Children added after execution are not run until the
// next Execute.
func (m *Macro) Add(c Command) {
	if c != nil {
		m.children = append(m.children, c)
	}
}

// Len returns the number of children.
func (m *Macro) Len() int { return len(m.children) }

// Children returns the children in execution order.
func (m *Macro) Children() []Command {
	out := make([]Command, len(m.children))
	copy(out, m.children)
	return out
}

// Execute runs the children in order. If a child fails, the children that
// already ran are undone and the error is returned.
func (m *Macro) Execute() error {
	if m.executed {
		return nil
	}
	for i, c := range m.children {
		if err := c.Execute(); err != nil {
			logger.Warnf("command: macro %q: child %d failed: %v", m.name, i, err)
			for j := i - 1; j >= 0; j-- {
				if uerr := m.children[j].Undo(); uerr != nil {
					logger.Errorf("command: macro %q: rollback of child %d: %v", m.name, j, uerr)
				}
			}
			return fmt.Errorf("%s: step %d: %w", m.name, i+1, err)
		}
	}
	m.executed = true
	logger.DebugTagf("command", "macro %q ran %d commands", m.name, len(m.children))
	return nil
}

// Undo reverts the children last to first.
func (m *Macro) Undo() error {
	if !m.executed {
		return nil
	}
	for i := len(m.children) - 1; i >= 0; i-- {
		if err := m.children[i].Undo(); err != nil {
			return fmt.Errorf("%s: undo step %d: %w", m.name, i+1, err)
		}
	}
	m.executed = false
	return nil
}

// Undoable is true only for a non-empty group of undoable children.
func (m *Macro) Undoable() bool {
	if len(m.children) == 0 {
		return false
	}
	for _, c := range m.children {
		if !c.Undoable() {
			return false
		}
	}
	return true
}

func (m *Macro) Description() string {
	parts := make([]string, 0, len(m.children))
	for _, c := range m.children {
		parts = append(parts, c.Description())
	}
	return fmt.Sprintf("%s [%s]", m.name, strings.Join(parts, "; "))
}

// Conditional is a Macro gated by a predicate. The predicate is evaluated
// each time Execute or Undoable is called, so a conditional whose condition
// no longer holds drops out of the history.
type Conditional struct {
	*Macro
	cond     func() bool
	condDesc string
	env      *Env
}

// NewConditional creates a conditional composite. condDesc describes the
// predicate for messages and the history view.
func NewConditional(env *Env, cond func() bool, condDesc string, children ...Command) *Conditional {
	return &Conditional{
		Macro:    NewMacro("if "+condDesc, children...),
		cond:     cond,
		condDesc: condDesc,
		env:      env,
	}
}

// Execute runs the children only while the predicate holds.
func (c *Conditional) Execute() error {
	if !c.cond() {
		if c.env != nil {
			c.env.printf("Condition not met: %s", c.condDesc)
		}
		logger.DebugTagf("command", "conditional %q skipped", c.condDesc)
		return nil
	}
	return c.Macro.Execute()
}

// Undoable additionally requires the predicate to hold now.
func (c *Conditional) Undoable() bool {
	return c.cond() && c.Macro.Undoable()
}
