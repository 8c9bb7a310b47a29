package history

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/EdgarSahakyann/Power-point--project/internal/command"
)

type counter struct {
	name     string
	value    *int
	undoable bool
	undoErr  error
}

func (c *counter) Execute() error      { *c.value++; return nil }
func (c *counter) Undoable() bool      { return c.undoable }
func (c *counter) Description() string { return c.name }

func (c *counter) Undo() error {
	if c.undoErr != nil {
		return c.undoErr
	}
	*c.value--
	return nil
}

func run(t *testing.T, h *Manager, c command.Command) {
	t.Helper()
	require.NoError(t, c.Execute())
	h.Push(c)
}

func TestPushIgnoresNilAndNonUndoable(t *testing.T) {
	h := NewManager(0)
	v := 0

	assert.False(t, h.Push(nil))
	assert.False(t, h.Push(&counter{name: "display", value: &v}))
	assert.Equal(t, 0, h.UndoCount())
}

func TestUndoRedo(t *testing.T) {
	h := NewManager(10)
	v := 0
	run(t, h, &counter{name: "a", value: &v, undoable: true})
	run(t, h, &counter{name: "b", value: &v, undoable: true})
	assert.Equal(t, 2, v)

	cmd, err := h.Undo()
	require.NoError(t, err)
	assert.Equal(t, "b", cmd.Description())
	assert.Equal(t, 1, v)
	assert.True(t, h.CanRedo())

	cmd, err = h.Redo()
	require.NoError(t, err)
	assert.Equal(t, "b", cmd.Description())
	assert.Equal(t, 2, v)
	assert.False(t, h.CanRedo())
}

func TestNewPushClearsRedo(t *testing.T) {
	h := NewManager(10)
	v := 0
	run(t, h, &counter{name: "a", value: &v, undoable: true})
	run(t, h, &counter{name: "b", value: &v, undoable: true})

	_, err := h.Undo()
	require.NoError(t, err)
	_, err = h.Undo()
	require.NoError(t, err)
	assert.Equal(t, 2, h.RedoCount())

	run(t, h, &counter{name: "c", value: &v, undoable: true})
	assert.Equal(t, 0, h.RedoCount())

	_, err = h.Redo()
	assert.True(t, errors.Is(err, ErrNothingToRedo))
	assert.Equal(t, 1, v)
}

func TestNonUndoablePushKeepsRedo(t *testing.T) {
	h := NewManager(10)
	v := 0
	run(t, h, &counter{name: "a", value: &v, undoable: true})
	_, err := h.Undo()
	require.NoError(t, err)

	run(t, h, &counter{name: "display", value: &v})
	assert.Equal(t, 1, h.RedoCount())
	assert.Equal(t, 0, h.UndoCount())
}

func TestEmptyStacks(t *testing.T) {
	h := NewManager(10)

	_, err := h.Undo()
	assert.True(t, errors.Is(err, ErrNothingToUndo))
	_, err = h.Redo()
	assert.True(t, errors.Is(err, ErrNothingToRedo))
}

func TestFailedUndoStaysOnStack(t *testing.T) {
	h := NewManager(10)
	v := 0
	run(t, h, &counter{name: "a", value: &v, undoable: true, undoErr: errors.New("boom")})

	_, err := h.Undo()
	require.Error(t, err)
	assert.Equal(t, 1, h.UndoCount())
	assert.Equal(t, 0, h.RedoCount())
}

func TestMaxHistoryEvictsOldest(t *testing.T) {
	h := NewManager(2)
	v := 0
	for _, name := range []string{"a", "b", "c"} {
		run(t, h, &counter{name: name, value: &v, undoable: true})
	}
	assert.Equal(t, []string{"c", "b"}, h.UndoDescriptions())
}

func TestClearDoesNotInvokeCommands(t *testing.T) {
	h := NewManager(10)
	v := 0
	run(t, h, &counter{name: "a", value: &v, undoable: true})
	run(t, h, &counter{name: "b", value: &v, undoable: true})
	_, err := h.Undo()
	require.NoError(t, err)

	h.Clear()
	assert.Equal(t, 1, v)
	assert.False(t, h.CanUndo())
	assert.False(t, h.CanRedo())
	assert.Empty(t, h.RedoDescriptions())
}
