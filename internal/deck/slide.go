package deck

import (
	"fmt"
	"strings"
)

// Slide is an ordered container of text runs and shapes. Slides are created
// by a SlideFactory; the id never changes.
type Slide struct {
	id      int
	title   string
	content string
	theme   string
	texts   []Text
	shapes  []Shape
}

// SlideEncoding is the structural snapshot of a slide.
type SlideEncoding struct {
	ID      int             `json:"id" yaml:"id"`
	Title   string          `json:"title" yaml:"title"`
	Content string          `json:"content" yaml:"content"`
	Theme   string          `json:"theme" yaml:"theme"`
	Texts   []Text          `json:"texts" yaml:"texts"`
	Shapes  []ShapeEncoding `json:"shapes" yaml:"shapes"`
}

func newSlide(id int, title, content, theme string) *Slide {
	return &Slide{id: id, title: title, content: content, theme: theme}
}

func (s *Slide) ID() int           { return s.id }
func (s *Slide) Title() string     { return s.title }
func (s *Slide) Content() string   { return s.content }
func (s *Slide) Theme() string     { return s.theme }
func (s *Slide) SetTitle(t string) { s.title = t }

// TextCount returns the number of text runs.
func (s *Slide) TextCount() int { return len(s.texts) }

// ShapeCount returns the number of shapes.
func (s *Slide) ShapeCount() int { return len(s.shapes) }

// Texts returns a copy of the text runs.
func (s *Slide) Texts() []Text {
	out := make([]Text, len(s.texts))
	copy(out, s.texts)
	return out
}

// Shapes returns the shapes in order. The slice is a copy; the shapes are
// still owned by the slide.
func (s *Slide) Shapes() []Shape {
	out := make([]Shape, len(s.shapes))
	copy(out, s.shapes)
	return out
}

// AddText appends a text run and returns its index.
func (s *Slide) AddText(t Text) int {
	s.texts = append(s.texts, t)
	return len(s.texts) - 1
}

// TextAt returns a copy of the text run at index.
func (s *Slide) TextAt(index int) (Text, error) {
	if index < 0 || index >= len(s.texts) {
		return Text{}, s.rangeErr("text", index, len(s.texts))
	}
	return s.texts[index], nil
}

// ReplaceText overwrites the text run at index.
func (s *Slide) ReplaceText(index int, t Text) error {
	if index < 0 || index >= len(s.texts) {
		return s.rangeErr("text", index, len(s.texts))
	}
	s.texts[index] = t
	return nil
}

// TakeText removes and returns the text run at index.
func (s *Slide) TakeText(index int) (Text, error) {
	if index < 0 || index >= len(s.texts) {
		return Text{}, s.rangeErr("text", index, len(s.texts))
	}
	t := s.texts[index]
	s.texts = append(s.texts[:index], s.texts[index+1:]...)
	return t, nil
}

// InsertText places t at index; index may equal the current count.
func (s *Slide) InsertText(index int, t Text) error {
	if index < 0 || index > len(s.texts) {
		return s.rangeErr("text", index, len(s.texts)+1)
	}
	s.texts = append(s.texts, Text{})
	copy(s.texts[index+1:], s.texts[index:])
	s.texts[index] = t
	return nil
}

// AddShape appends a shape, taking ownership of it, and returns its index.
func (s *Slide) AddShape(shape Shape) int {
	s.shapes = append(s.shapes, shape)
	return len(s.shapes) - 1
}

// ShapeAt returns the live shape at index for in-place modification.
func (s *Slide) ShapeAt(index int) (Shape, error) {
	if index < 0 || index >= len(s.shapes) {
		return nil, s.rangeErr("shape", index, len(s.shapes))
	}
	return s.shapes[index], nil
}

// TakeShape removes the shape at index and hands ownership to the caller.
func (s *Slide) TakeShape(index int) (Shape, error) {
	if index < 0 || index >= len(s.shapes) {
		return nil, s.rangeErr("shape", index, len(s.shapes))
	}
	shape := s.shapes[index]
	s.shapes = append(s.shapes[:index], s.shapes[index+1:]...)
	return shape, nil
}

// InsertShape places shape at index, taking ownership of it.
func (s *Slide) InsertShape(index int, shape Shape) error {
	if index < 0 || index > len(s.shapes) {
		return s.rangeErr("shape", index, len(s.shapes)+1)
	}
	s.shapes = append(s.shapes, nil)
	copy(s.shapes[index+1:], s.shapes[index:])
	s.shapes[index] = shape
	return nil
}

// ClearTexts removes every text run and returns them in order.
func (s *Slide) ClearTexts() []Text {
	texts := s.texts
	s.texts = nil
	return texts
}

// ClearShapes removes every shape and returns them in order.
func (s *Slide) ClearShapes() []Shape {
	shapes := s.shapes
	s.shapes = nil
	return shapes
}

// Encode returns the structural snapshot of the slide.
func (s *Slide) Encode() SlideEncoding {
	enc := SlideEncoding{
		ID:      s.id,
		Title:   s.title,
		Content: s.content,
		Theme:   s.theme,
		Texts:   s.Texts(),
		Shapes:  make([]ShapeEncoding, 0, len(s.shapes)),
	}
	for _, shape := range s.shapes {
		enc.Shapes = append(enc.Shapes, shape.Encode())
	}
	return enc
}

func (s *Slide) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Slide %d: %s [%s]\n", s.id, s.title, s.theme)
	if s.content != "" {
		fmt.Fprintf(&b, "  %s\n", s.content)
	}
	for i, t := range s.texts {
		fmt.Fprintf(&b, "  text[%d] %s\n", i, t)
	}
	for i, shape := range s.shapes {
		fmt.Fprintf(&b, "  shape[%d] %s\n", i, shape)
	}
	return b.String()
}

func (s *Slide) rangeErr(what string, index, size int) error {
	return fmt.Errorf("%w: %s index %d on slide %d (size %d)", ErrIndexOutOfRange, what, index, s.id, size)
}
