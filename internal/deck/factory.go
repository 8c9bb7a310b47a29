package deck

import (
	"fmt"
	"sync"
)

// ShapeFactory builds shapes by kind. The constructor table is keyed on
// ShapeKind so new variants only need a table entry.
type ShapeFactory struct {
	ctors map[ShapeKind]func(scale float64) Shape
}

// NewShapeFactory returns a factory knowing every built-in variant.
func NewShapeFactory() *ShapeFactory {
	return &ShapeFactory{
		ctors: map[ShapeKind]func(float64) Shape{
			KindCircle:    func(s float64) Shape { return NewCircle(s) },
			KindRectangle: func(s float64) Shape { return NewRectangle(s) },
			KindTriangle:  func(s float64) Shape { return NewTriangle(s) },
			KindEllipse:   func(s float64) Shape { return NewEllipse(s) },
		},
	}
}

// Create builds a shape from its kind name.
func (f *ShapeFactory) Create(kind string, scale float64) (Shape, error) {
	k, err := ParseShapeKind(kind)
	if err != nil {
		return nil, err
	}
	return f.CreateKind(k, scale)
}

// CreateKind builds a shape from its enumerated kind.
func (f *ShapeFactory) CreateKind(kind ShapeKind, scale float64) (Shape, error) {
	ctor, ok := f.ctors[kind]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownShape, kind)
	}
	return ctor(scale), nil
}

// FromEncoding rebuilds an independent shape from its structural encoding.
func (f *ShapeFactory) FromEncoding(enc ShapeEncoding) (Shape, error) {
	return f.Create(enc.Kind, enc.Scale)
}

// Clone returns an independent copy of s.
func (f *ShapeFactory) Clone(s Shape) (Shape, error) {
	return f.FromEncoding(s.Encode())
}

// SlideFactory owns the process-wide slide id counter. Ids start at 1 and
// are never handed out twice, even after the slide is deleted.
type SlideFactory struct {
	mu     sync.Mutex
	nextID int
	shapes *ShapeFactory
}

// NewSlideFactory creates a factory whose first id is 1.
func NewSlideFactory(shapes *ShapeFactory) *SlideFactory {
	if shapes == nil {
		shapes = NewShapeFactory()
	}
	return &SlideFactory{nextID: 1, shapes: shapes}
}

// Shapes returns the shape factory used when decoding slides.
func (f *SlideFactory) Shapes() *ShapeFactory {
	return f.shapes
}

// New creates an empty slide with the next fresh id.
func (f *SlideFactory) New(title, content, theme string) *Slide {
	f.mu.Lock()
	id := f.nextID
	f.nextID++
	f.mu.Unlock()
	return newSlide(id, title, content, theme)
}

// NextID reports the id the next New call will assign.
func (f *SlideFactory) NextID() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.nextID
}

// FromEncoding rebuilds a slide keeping its encoded id. The counter is moved
// past that id so later New calls cannot collide with it. An encoding with a
// non-positive id receives a fresh one.
func (f *SlideFactory) FromEncoding(enc SlideEncoding) (*Slide, error) {
	shapes := make([]Shape, 0, len(enc.Shapes))
	for i, se := range enc.Shapes {
		s, err := f.shapes.FromEncoding(se)
		if err != nil {
			return nil, fmt.Errorf("%w: shape %d: %v", ErrInvalidEncoding, i, err)
		}
		shapes = append(shapes, s)
	}

	f.mu.Lock()
	id := enc.ID
	if id <= 0 {
		id = f.nextID
	}
	if id >= f.nextID {
		f.nextID = id + 1
	}
	f.mu.Unlock()

	slide := newSlide(id, enc.Title, enc.Content, enc.Theme)
	slide.texts = append(slide.texts, enc.Texts...)
	slide.shapes = shapes
	return slide, nil
}

// Duplicate builds a fresh-id copy of src with " (copy)" appended to the
// title. Texts are copied and shapes cloned, never shared.
func (f *SlideFactory) Duplicate(src *Slide) (*Slide, error) {
	dup := f.New(src.Title()+" (copy)", src.Content(), src.Theme())
	dup.texts = append(dup.texts, src.texts...)
	for _, s := range src.shapes {
		clone, err := f.shapes.Clone(s)
		if err != nil {
			return nil, err
		}
		dup.shapes = append(dup.shapes, clone)
	}
	return dup, nil
}
