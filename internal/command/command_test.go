package command

import (
	"bytes"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/EdgarSahakyann/Power-point--project/internal/deck"
)

// newTestEnv builds a deck with three slides (ids 1..3). Slide 1 holds two
// texts and two shapes.
func newTestEnv(t *testing.T) (*Env, *bytes.Buffer) {
	t.Helper()
	var out bytes.Buffer
	env := NewEnv(deck.NewStore(), deck.NewSlideFactory(nil), &out)
	for _, title := range []string{"one", "two", "three"} {
		require.NoError(t, env.Store.Add(env.Slides.New(title, "body", "light")))
	}
	s, _ := env.Store.Get(1)
	s.AddText(deck.NewText("first"))
	s.AddText(deck.NewText("second"))
	s.AddShape(deck.NewCircle(1))
	s.AddShape(deck.NewRectangle(3))
	return env, &out
}

func assertRoundTrip(t *testing.T, env *Env, c Command) {
	t.Helper()
	before := env.Store.Encode()

	require.NoError(t, c.Execute())
	after := env.Store.Encode()
	assert.NotEqual(t, before, after, "execute did not change the deck")

	require.NoError(t, c.Undo())
	if diff := cmp.Diff(before, env.Store.Encode()); diff != "" {
		t.Errorf("undo did not restore the deck (-want +got):\n%s", diff)
	}

	require.NoError(t, c.Execute())
	if diff := cmp.Diff(after, env.Store.Encode()); diff != "" {
		t.Errorf("redo diverged from first execute (-want +got):\n%s", diff)
	}
}

func TestLeafCommandsRoundTrip(t *testing.T) {
	tests := []struct {
		name  string
		build func(env *Env) Command
	}{
		{"create", func(env *Env) Command { return NewCreateSlide(env, "Intro", "Body", "dark") }},
		{"delete first", func(env *Env) Command { return NewDeleteSlide(env, 1) }},
		{"delete middle", func(env *Env) Command { return NewDeleteSlide(env, 2) }},
		{"duplicate", func(env *Env) Command { return NewDuplicateSlide(env, 1) }},
		{"rename", func(env *Env) Command { return NewRenameSlide(env, 2, "renamed") }},
		{"move", func(env *Env) Command { return NewMoveSlide(env, 0, 2) }},
		{"reorder down", func(env *Env) Command { return NewReorderSlide(env, 1, false) }},
		{"reorder up", func(env *Env) Command { return NewReorderSlide(env, 3, true) }},
		{"clear", func(env *Env) Command { return NewClearSlide(env, 1) }},
		{"addtext", func(env *Env) Command { return NewAddText(env, 2, deck.NewText("new")) }},
		{"addshape", func(env *Env) Command { return NewAddShape(env, 1, "Ellipse", 0.5) }},
		{"removetext", func(env *Env) Command { return NewRemoveText(env, 1, 0) }},
		{"removeshape", func(env *Env) Command { return NewRemoveShape(env, 1, 1) }},
		{"modtext", func(env *Env) Command {
			return NewModifyText(env, 1, 1, MergeText(deck.Text{Size: 4, Color: "Red"}))
		}},
		{"scale", func(env *Env) Command { return NewModifyShape(env, 1, 1, ScaleTo(7), "scale") }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env, _ := newTestEnv(t)
			c := tt.build(env)
			assert.True(t, c.Undoable())
			assertRoundTrip(t, env, c)
		})
	}
}

func TestCreateSlide_UndoRemovesExactlyThatID(t *testing.T) {
	env, _ := newTestEnv(t)
	c := NewCreateSlide(env, "Intro", "Body", "dark")

	require.NoError(t, c.Execute())
	assert.Equal(t, 4, c.CreatedID())
	assert.Equal(t, 4, env.Store.Len())

	require.NoError(t, c.Undo())
	assert.Equal(t, 3, env.Store.Len())
	_, ok := env.Store.Get(4)
	assert.False(t, ok)
	for _, id := range []int{1, 2, 3} {
		_, ok := env.Store.Get(id)
		assert.True(t, ok, "slide %d should remain", id)
	}

	// Redo keeps the identity so later redo entries still resolve.
	require.NoError(t, c.Execute())
	_, ok = env.Store.Get(4)
	assert.True(t, ok)
}

func TestExecuteTwiceIsNoop(t *testing.T) {
	env, _ := newTestEnv(t)
	c := NewAddText(env, 2, deck.NewText("x"))

	require.NoError(t, c.Execute())
	require.NoError(t, c.Execute())
	s, _ := env.Store.Get(2)
	assert.Equal(t, 1, s.TextCount())
}

func TestUndoBeforeExecuteIsNoop(t *testing.T) {
	env, _ := newTestEnv(t)
	before := env.Store.Encode()

	for _, c := range []Command{
		NewCreateSlide(env, "x", "", ""),
		NewDeleteSlide(env, 1),
		NewRemoveText(env, 1, 0),
		NewMoveSlide(env, 0, 1),
		NewClearSlide(env, 1),
	} {
		require.NoError(t, c.Undo())
	}
	assert.Equal(t, before, env.Store.Encode())
}

func TestDeleteSlide_UndoRestoresOriginalIDAndPosition(t *testing.T) {
	env, _ := newTestEnv(t)
	c := NewDeleteSlide(env, 2)

	require.NoError(t, c.Execute())
	_, ok := env.Store.Get(2)
	assert.False(t, ok)

	require.NoError(t, c.Undo())
	assert.Equal(t, 1, env.Store.IndexOf(2))
	// The counter moved past every existing id; nothing is reused.
	assert.Equal(t, 4, env.Slides.New("next", "", "").ID())
}

func TestReferenceErrorsAreSwallowed(t *testing.T) {
	env, out := newTestEnv(t)
	before := env.Store.Encode()

	for _, c := range []Command{
		NewAddText(env, 99, deck.NewText("x")),
		NewAddShape(env, 99, "Circle", 1),
		NewAddShape(env, 1, "Hexagon", 1),
		NewRemoveText(env, 1, 10),
		NewRemoveShape(env, 99, 0),
		NewModifyText(env, 1, 5, MergeText(deck.Text{Size: 2})),
		NewModifyShape(env, 1, 5, ScaleTo(2), "scale"),
		NewRenameSlide(env, 99, "x"),
		NewDeleteSlide(env, 99),
		NewDuplicateSlide(env, 99),
		NewClearSlide(env, 99),
		NewMoveSlide(env, 0, 10),
	} {
		assert.NoError(t, c.Execute(), c.Description())
		assert.NoError(t, c.Undo(), c.Description())
	}
	assert.Equal(t, before, env.Store.Encode())
	assert.Contains(t, out.String(), "Slide not found: 99")
}

func TestReorderSlide_BoundaryIsNoop(t *testing.T) {
	env, _ := newTestEnv(t)
	before := env.Store.Encode()

	c := NewReorderSlide(env, 1, true)
	require.NoError(t, c.Execute())
	assert.False(t, c.Executed())
	assert.Equal(t, before, env.Store.Encode())

	require.NoError(t, c.Undo())
	assert.Equal(t, before, env.Store.Encode())

	last := NewReorderSlide(env, 3, false)
	require.NoError(t, last.Execute())
	assert.False(t, last.Executed())
}

func TestModifyText_RestoresWholeValue(t *testing.T) {
	env, _ := newTestEnv(t)
	s, _ := env.Store.Get(1)
	original, _ := s.TextAt(0)

	c := NewModifyText(env, 1, 0, MergeText(deck.Text{Content: "changed", Font: "Mono"}))
	require.NoError(t, c.Execute())

	got, _ := s.TextAt(0)
	assert.Equal(t, "changed", got.Content)
	assert.Equal(t, "Mono", got.Font)
	assert.Equal(t, original.Size, got.Size)
	assert.Equal(t, original.Color, got.Color)

	require.NoError(t, c.Undo())
	got, _ = s.TextAt(0)
	assert.Equal(t, original, got)
}

func TestClearSlide_RestoresIndependentShapes(t *testing.T) {
	env, _ := newTestEnv(t)
	s, _ := env.Store.Get(1)
	live, _ := s.ShapeAt(0)

	c := NewClearSlide(env, 1)
	require.NoError(t, c.Execute())
	assert.Equal(t, 0, s.TextCount())
	assert.Equal(t, 0, s.ShapeCount())

	require.NoError(t, c.Undo())
	restored, _ := s.ShapeAt(0)
	assert.NotSame(t, live, restored)
	assert.Equal(t, deck.KindCircle, restored.Kind())
}

func TestAddShape_UndoRedoSameIndex(t *testing.T) {
	env, _ := newTestEnv(t)
	c := NewAddShape(env, 2, "Circle", 2.0)

	require.NoError(t, c.Execute())
	require.NoError(t, c.Undo())
	require.NoError(t, c.Execute())

	s, _ := env.Store.Get(2)
	shape, err := s.ShapeAt(0)
	require.NoError(t, err)
	assert.Equal(t, deck.KindCircle, shape.Kind())
	assert.Equal(t, 2.0, shape.Scale())
}

type failingCommand struct {
	readOnly
}

func (failingCommand) Execute() error      { return errors.New("disk full") }
func (failingCommand) Description() string { return "fail" }

func TestFuncCommand(t *testing.T) {
	called := false
	f := NewFunc("stats", func() error { called = true; return nil })

	require.NoError(t, f.Execute())
	assert.True(t, called)
	assert.False(t, f.Undoable())
	assert.Equal(t, "stats", f.Description())
}
