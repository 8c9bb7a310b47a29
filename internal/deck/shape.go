package deck

import (
	"fmt"
	"strings"
)

// ShapeKind enumerates the geometric shape variants.
type ShapeKind int

const (
	KindUnknown ShapeKind = iota
	KindCircle
	KindRectangle
	KindTriangle
	KindEllipse
)

var kindNames = map[ShapeKind]string{
	KindCircle:    "Circle",
	KindRectangle: "Rectangle",
	KindTriangle:  "Triangle",
	KindEllipse:   "Ellipse",
}

func (k ShapeKind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "Unknown"
}

// ParseShapeKind resolves a kind name case-insensitively.
func ParseShapeKind(name string) (ShapeKind, error) {
	for kind, kindName := range kindNames {
		if strings.EqualFold(kindName, name) {
			return kind, nil
		}
	}
	return KindUnknown, fmt.Errorf("%w: %q", ErrUnknownShape, name)
}

// ShapeKinds lists the known kinds in enumeration order.
func ShapeKinds() []ShapeKind {
	return []ShapeKind{KindCircle, KindRectangle, KindTriangle, KindEllipse}
}

// Shape is the capability set every shape variant exposes.
type Shape interface {
	Kind() ShapeKind
	Scale() float64
	SetScale(scale float64)
	// Encode returns the structural encoding used for persistence and cloning.
	Encode() ShapeEncoding
	String() string
}

// ShapeEncoding is the format-agnostic snapshot of a Shape.
type ShapeEncoding struct {
	Kind  string  `json:"type" yaml:"type"`
	Scale float64 `json:"scale" yaml:"scale"`
}

// baseShape carries the state shared by all variants.
type baseShape struct {
	kind  ShapeKind
	scale float64
}

func (b *baseShape) Kind() ShapeKind        { return b.kind }
func (b *baseShape) Scale() float64         { return b.scale }
func (b *baseShape) SetScale(scale float64) { b.scale = scale }

func (b *baseShape) Encode() ShapeEncoding {
	return ShapeEncoding{Kind: b.kind.String(), Scale: b.scale}
}

func (b *baseShape) String() string {
	return fmt.Sprintf("%s(scale=%g)", b.kind, b.scale)
}

// Circle is a shape with a unit radius before scaling.
type Circle struct{ baseShape }

// Rectangle is a 2x1 shape before scaling.
type Rectangle struct{ baseShape }

// Triangle is an isosceles triangle with unit base and height before scaling.
type Triangle struct{ baseShape }

// Ellipse has radii 2 and 1 before scaling.
type Ellipse struct{ baseShape }

// NewCircle creates a circle.
func NewCircle(scale float64) *Circle {
	return &Circle{baseShape{kind: KindCircle, scale: scale}}
}

// NewRectangle creates a rectangle.
func NewRectangle(scale float64) *Rectangle {
	return &Rectangle{baseShape{kind: KindRectangle, scale: scale}}
}

// NewTriangle creates a triangle.
func NewTriangle(scale float64) *Triangle {
	return &Triangle{baseShape{kind: KindTriangle, scale: scale}}
}

// NewEllipse creates an ellipse.
func NewEllipse(scale float64) *Ellipse {
	return &Ellipse{baseShape{kind: KindEllipse, scale: scale}}
}
