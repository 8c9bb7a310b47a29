package command

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/EdgarSahakyann/Power-point--project/internal/deck"
)

type memClipboard struct{ text string }

func (m *memClipboard) ReadAll() (string, error)   { return m.text, nil }
func (m *memClipboard) WriteAll(text string) error { m.text = text; return nil }

type stubPersister struct {
	saved []deck.SlideEncoding
	err   error
}

func (p *stubPersister) Save(store *deck.Store, path string) error {
	if p.err != nil {
		return p.err
	}
	p.saved = store.Encode()
	return nil
}

func (p *stubPersister) Load(store *deck.Store, slides *deck.SlideFactory, path string) error {
	if p.err != nil {
		return p.err
	}
	store.Clear()
	for _, enc := range p.saved {
		s, err := slides.FromEncoding(enc)
		if err != nil {
			return err
		}
		if err := store.Add(s); err != nil {
			return err
		}
	}
	return nil
}

func TestCopyPaste(t *testing.T) {
	env, _ := newTestEnv(t)
	clip := &memClipboard{}

	cp := NewCopySlide(env, clip, 1)
	assert.False(t, cp.Undoable())
	require.NoError(t, cp.Execute())
	assert.Contains(t, clip.text, "title: one")

	paste := NewPasteSlide(env, clip)
	require.NoError(t, paste.Execute())
	assert.Equal(t, 4, env.Store.Len())

	pasted, ok := env.Store.Get(4)
	require.True(t, ok)
	src, _ := env.Store.Get(1)
	assert.Equal(t, src.Title(), pasted.Title())
	assert.Equal(t, src.Texts(), pasted.Texts())
	assert.Equal(t, src.ShapeCount(), pasted.ShapeCount())

	require.NoError(t, paste.Undo())
	assert.Equal(t, 3, env.Store.Len())
}

func TestPasteWithoutSlide(t *testing.T) {
	env, out := newTestEnv(t)
	paste := NewPasteSlide(env, &memClipboard{text: "just some words"})

	require.NoError(t, paste.Execute())
	assert.Equal(t, 3, env.Store.Len())
	assert.Contains(t, out.String(), "Clipboard does not contain a slide")
}

func TestSaveLoad(t *testing.T) {
	env, _ := newTestEnv(t)
	p := &stubPersister{}

	save := NewSave(env, p, "deck.json")
	assert.False(t, save.Undoable())
	require.NoError(t, save.Execute())
	want := env.Store.Encode()

	env.Store.RemoveByID(1)
	load := NewLoad(env, p, "deck.json")
	require.NoError(t, load.Execute())
	assert.Equal(t, want, env.Store.Encode())
}

func TestSaveSurfacesIOErrors(t *testing.T) {
	env, _ := newTestEnv(t)
	p := &stubPersister{err: errors.New("permission denied")}

	err := NewSave(env, p, "/ro/deck.json").Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "permission denied")

	err = NewLoad(env, p, "/ro/deck.json").Execute()
	require.Error(t, err)
}

func TestDisplayAndHelp(t *testing.T) {
	env, out := newTestEnv(t)

	require.NoError(t, NewDisplay(env).Execute())
	assert.Contains(t, out.String(), "three")

	out.Reset()
	require.NoError(t, NewHelp(env, "usage\n").Execute())
	assert.Equal(t, "usage\n", out.String())
}
