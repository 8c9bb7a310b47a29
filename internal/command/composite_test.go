package command

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/EdgarSahakyann/Power-point--project/internal/deck"
)

// recorder logs the order in which execute and undo are invoked.
type recorder struct {
	name string
	log  *[]string
}

func (r *recorder) Execute() error      { *r.log = append(*r.log, "exec "+r.name); return nil }
func (r *recorder) Undo() error         { *r.log = append(*r.log, "undo "+r.name); return nil }
func (r *recorder) Undoable() bool      { return true }
func (r *recorder) Description() string { return r.name }

func TestMacro_UndoRunsInReverse(t *testing.T) {
	var log []string
	m := NewMacro("batch", &recorder{"A", &log}, &recorder{"B", &log})

	require.NoError(t, m.Execute())
	require.NoError(t, m.Undo())

	assert.Equal(t, []string{"exec A", "exec B", "undo B", "undo A"}, log)
}

func TestRecordedMacro_StartsExecuted(t *testing.T) {
	var log []string
	a, b := &recorder{"A", &log}, &recorder{"B", &log}
	m := NewRecordedMacro("script", a, b)

	require.NoError(t, m.Execute(), "already executed, so a no-op")
	require.NoError(t, m.Undo())
	require.NoError(t, m.Execute())
	assert.Equal(t, []string{"undo B", "undo A", "exec A", "exec B"}, log)
}

func TestMacro_Undoable(t *testing.T) {
	var log []string
	assert.False(t, NewMacro("empty").Undoable())
	assert.True(t, NewMacro("ok", &recorder{"A", &log}).Undoable())
	assert.False(t, NewMacro("mixed", &recorder{"A", &log}, NewFunc("x", nil)).Undoable())
	assert.Equal(t, 1, NewMacro("nil child", nil, &recorder{"A", &log}).Len())
}

func TestMacro_DependentChildrenUnwind(t *testing.T) {
	env, _ := newTestEnv(t)
	before := env.Store.Encode()

	create := NewCreateSlide(env, "new", "", "")
	m := NewMacro("batch",
		create,
		NewAddText(env, 4, deck.NewText("on the new slide")),
		NewAddShape(env, 4, "Triangle", 1),
	)
	require.NoError(t, m.Execute())
	s, ok := env.Store.Get(4)
	require.True(t, ok)
	assert.Equal(t, 1, s.TextCount())
	assert.Equal(t, 1, s.ShapeCount())

	require.NoError(t, m.Undo())
	if diff := cmp.Diff(before, env.Store.Encode()); diff != "" {
		t.Errorf("macro undo mismatch (-want +got):\n%s", diff)
	}
}

func TestMacro_FailureRollsBack(t *testing.T) {
	env, _ := newTestEnv(t)
	before := env.Store.Encode()

	m := NewMacro("batch", NewCreateSlide(env, "x", "", ""), failingCommand{})
	err := m.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk full")
	assert.Equal(t, before, env.Store.Encode())

	// Nothing was executed, so undo is a no-op.
	require.NoError(t, m.Undo())
	assert.Equal(t, before, env.Store.Encode())
}

func TestConditional(t *testing.T) {
	env, out := newTestEnv(t)
	exists := func() bool { _, ok := env.Store.Get(2); return ok }

	c := NewConditional(env, exists, "slide 2 exists", NewRenameSlide(env, 2, "renamed"))
	assert.True(t, c.Undoable())
	require.NoError(t, c.Execute())
	s, _ := env.Store.Get(2)
	assert.Equal(t, "renamed", s.Title())

	require.NoError(t, c.Undo())
	assert.Equal(t, "two", s.Title())

	env.Store.RemoveByID(2)
	assert.False(t, c.Undoable(), "predicate is evaluated at call time")
	require.NoError(t, c.Execute())
	assert.Contains(t, out.String(), "Condition not met: slide 2 exists")
}
