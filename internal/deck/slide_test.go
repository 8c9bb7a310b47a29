package deck

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSlide_TextTakeInsert(t *testing.T) {
	s := newSlide(1, "t", "", "")
	s.AddText(NewText("a"))
	s.AddText(NewText("b"))
	s.AddText(NewText("c"))

	taken, err := s.TakeText(1)
	require.NoError(t, err)
	assert.Equal(t, "b", taken.Content)
	assert.Equal(t, 2, s.TextCount())

	require.NoError(t, s.InsertText(1, taken))
	got := s.Texts()
	assert.Equal(t, "a", got[0].Content)
	assert.Equal(t, "b", got[1].Content)
	assert.Equal(t, "c", got[2].Content)

	_, err = s.TakeText(3)
	assert.True(t, errors.Is(err, ErrIndexOutOfRange))
	assert.Error(t, s.InsertText(5, taken))
}

func TestSlide_ShapeOwnershipMoves(t *testing.T) {
	s := newSlide(1, "t", "", "")
	circle := NewCircle(2)
	s.AddShape(circle)
	s.AddShape(NewRectangle(1))

	taken, err := s.TakeShape(0)
	require.NoError(t, err)
	assert.Same(t, circle, taken)
	assert.Equal(t, 1, s.ShapeCount())

	require.NoError(t, s.InsertShape(0, taken))
	first, err := s.ShapeAt(0)
	require.NoError(t, err)
	assert.Same(t, circle, first)
}

func TestSlide_TextsReturnsCopy(t *testing.T) {
	s := newSlide(1, "t", "", "")
	s.AddText(NewText("a"))

	texts := s.Texts()
	texts[0].Content = "changed"

	got, err := s.TextAt(0)
	require.NoError(t, err)
	assert.Equal(t, "a", got.Content)
}

func TestText_Merge(t *testing.T) {
	base := NewText("hello")
	merged := base.Merge(Text{Size: 3, Color: "Red"})

	assert.Equal(t, Text{Content: "hello", Size: 3, Font: DefaultFont, Color: "Red", LineWidth: DefaultLineWidth}, merged)
	assert.Equal(t, base, base.Merge(Text{Size: -1}))
}

func TestSlideFactory_EncodingRoundTrip(t *testing.T) {
	f := NewSlideFactory(nil)
	s := f.New("Intro", "Body", "dark")
	s.AddText(NewText("hi"))
	s.AddShape(NewTriangle(1.5))
	s.AddShape(NewEllipse(0.5))

	enc := s.Encode()
	rebuilt, err := f.FromEncoding(enc)
	require.NoError(t, err)

	if diff := cmp.Diff(enc, rebuilt.Encode()); diff != "" {
		t.Errorf("encoding mismatch (-want +got):\n%s", diff)
	}
	// Rebuilt shapes are independent values.
	orig, _ := s.ShapeAt(0)
	copyShape, _ := rebuilt.ShapeAt(0)
	copyShape.SetScale(9)
	assert.Equal(t, 1.5, orig.Scale())
}

func TestSlideFactory_FromEncodingAdvancesCounter(t *testing.T) {
	f := NewSlideFactory(nil)
	_, err := f.FromEncoding(SlideEncoding{ID: 10, Title: "loaded"})
	require.NoError(t, err)
	assert.Equal(t, 11, f.NextID())

	fresh, err := f.FromEncoding(SlideEncoding{Title: "no id"})
	require.NoError(t, err)
	assert.Equal(t, 11, fresh.ID())
	assert.Equal(t, 12, f.New("x", "", "").ID())
}

func TestSlideFactory_FromEncodingRejectsUnknownShape(t *testing.T) {
	f := NewSlideFactory(nil)
	_, err := f.FromEncoding(SlideEncoding{ID: 1, Shapes: []ShapeEncoding{{Kind: "Hexagon", Scale: 1}}})
	assert.True(t, errors.Is(err, ErrInvalidEncoding))
	assert.Equal(t, 1, f.NextID())
}

func TestSlideFactory_Duplicate(t *testing.T) {
	f := NewSlideFactory(nil)
	src := f.New("Intro", "Body", "dark")
	src.AddShape(NewCircle(2))

	dup, err := f.Duplicate(src)
	require.NoError(t, err)
	assert.Equal(t, "Intro (copy)", dup.Title())
	assert.NotEqual(t, src.ID(), dup.ID())

	srcShape, _ := src.ShapeAt(0)
	dupShape, _ := dup.ShapeAt(0)
	assert.NotSame(t, srcShape, dupShape)
}

func TestShapeFactory_Create(t *testing.T) {
	f := NewShapeFactory()
	for _, kind := range ShapeKinds() {
		s, err := f.Create(kind.String(), 2)
		require.NoError(t, err)
		assert.Equal(t, kind, s.Kind())
		assert.Equal(t, 2.0, s.Scale())
	}

	s, err := f.Create("circle", 1)
	require.NoError(t, err)
	assert.Equal(t, KindCircle, s.Kind())

	_, err = f.Create("Hexagon", 1)
	assert.True(t, errors.Is(err, ErrUnknownShape))
}
