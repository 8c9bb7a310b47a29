package persist

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/EdgarSahakyann/Power-point--project/internal/deck"
)

func sampleDeck(t *testing.T) (*deck.Store, *deck.SlideFactory) {
	t.Helper()
	f := deck.NewSlideFactory(nil)
	store := deck.NewStore()
	intro := f.New("Intro", "Body", "dark")
	intro.AddText(deck.NewText("hello <world>"))
	intro.AddShape(deck.NewCircle(2))
	intro.AddShape(deck.NewEllipse(0.5))
	require.NoError(t, store.Add(intro))
	require.NoError(t, store.Add(f.New("Second", "", "light")))
	return store, f
}

func TestSaveLoadRoundTrip(t *testing.T) {
	for _, name := range []string{"deck.json", "deck.yaml", "deck.YML"} {
		t.Run(name, func(t *testing.T) {
			store, _ := sampleDeck(t)
			path := filepath.Join(t.TempDir(), name)
			files := NewFiles()

			require.NoError(t, files.Save(store, path))

			loaded := deck.NewStore()
			factory := deck.NewSlideFactory(nil)
			other := NewFiles()
			require.NoError(t, other.Load(loaded, factory, path))

			if diff := cmp.Diff(store.Encode(), loaded.Encode()); diff != "" {
				t.Errorf("round trip mismatch (-want +got):\n%s", diff)
			}
			assert.Equal(t, files.DocumentID(), other.DocumentID())
			assert.Equal(t, 3, factory.NextID(), "ids from the file are never handed out again")
		})
	}
}

func TestLoadReplacesDeck(t *testing.T) {
	store, _ := sampleDeck(t)
	path := filepath.Join(t.TempDir(), "deck.json")
	require.NoError(t, NewFiles().Save(store, path))

	target := deck.NewStore()
	factory := deck.NewSlideFactory(nil)
	require.NoError(t, target.Add(factory.New("old", "", "")))
	require.NoError(t, NewFiles().Load(target, factory, path))

	assert.Equal(t, 2, target.Len())
	s, ok := target.Get(1)
	require.True(t, ok)
	assert.Equal(t, "Intro", s.Title())
}

func TestLoadBareArray(t *testing.T) {
	path := filepath.Join(t.TempDir(), "legacy.json")
	data := `[{"id": 4, "title": "Old", "content": "", "theme": "light",
	  "texts": [], "shapes": [{"type": "Triangle", "scale": 1.5}]}]`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	store := deck.NewStore()
	require.NoError(t, NewFiles().Load(store, deck.NewSlideFactory(nil), path))
	s, ok := store.Get(4)
	require.True(t, ok)
	shape, err := s.ShapeAt(0)
	require.NoError(t, err)
	assert.Equal(t, deck.KindTriangle, shape.Kind())
}

func TestLoadErrorsLeaveDeckUntouched(t *testing.T) {
	dir := t.TempDir()
	write := func(name, data string) string {
		p := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(p, []byte(data), 0o644))
		return p
	}
	tests := []struct {
		name string
		path string
	}{
		{"missing file", filepath.Join(dir, "absent.json")},
		{"bad json", write("bad.json", "{not json")},
		{"unknown shape", write("shape.json", `{"version":1,"slides":[{"id":1,"shapes":[{"type":"Hexagon","scale":1}]}]}`)},
		{"duplicate ids", write("dup.yaml", "version: 1\nslides:\n  - id: 1\n  - id: 1\n")},
		{"future version", write("new.json", `{"version": 99, "slides": []}`)},
		{"unsupported extension", write("deck.txt", "")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store, factory := sampleDeck(t)
			before := store.Encode()

			assert.Error(t, NewFiles().Load(store, factory, tt.path))
			assert.Equal(t, before, store.Encode())
		})
	}
}

func TestSaveUnsupportedExtension(t *testing.T) {
	store, _ := sampleDeck(t)
	err := NewFiles().Save(store, filepath.Join(t.TempDir(), "deck.xml"))
	assert.True(t, errors.Is(err, ErrUnsupportedFormat))
}

func TestSaveStampsDocument(t *testing.T) {
	store, _ := sampleDeck(t)
	files := NewFiles()
	files.now = func() time.Time { return time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC) }
	path := filepath.Join(t.TempDir(), "deck.yaml")
	require.NoError(t, files.Save(store, path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	doc, err := YAMLCodec{}.Unmarshal(data)
	require.NoError(t, err)
	assert.Equal(t, FormatVersion, doc.Version)
	assert.Equal(t, files.DocumentID().String(), doc.ID)
	assert.True(t, doc.SavedAt.Equal(time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)))
}

type stubPalette struct{}

func (stubPalette) SlideColors(theme string) (string, string) {
	if theme == "dark" {
		return "#1e1e1e", "#eeeeee"
	}
	return "#ffffff", "#000000"
}

func TestSVGRender(t *testing.T) {
	store, _ := sampleDeck(t)
	var buf bytes.Buffer
	require.NoError(t, NewSVGExporter(stubPalette{}).Render(&buf, store.All()))
	out := buf.String()

	assert.True(t, strings.HasPrefix(out, "<?xml"))
	assert.Contains(t, out, `<g id="slide-1">`)
	assert.Contains(t, out, `<g id="slide-2">`)
	assert.Contains(t, out, `fill="#1e1e1e"`)
	assert.Contains(t, out, "hello &lt;world&gt;")
	assert.Contains(t, out, "<circle")
	assert.Contains(t, out, "<ellipse")
	assert.Contains(t, out, `width="3040" height="620"`)
	assert.True(t, strings.HasSuffix(out, "</svg>\n"))
}

func TestSVGExport(t *testing.T) {
	store, _ := sampleDeck(t)
	path := filepath.Join(t.TempDir(), "deck.svg")
	require.NoError(t, NewSVGExporter(nil).Export(store, path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "Intro")
}
