package deck

import "fmt"

// Defaults for a text run.
const (
	DefaultTextSize  = 1.0
	DefaultFont      = "Arial"
	DefaultColor     = "Black"
	DefaultLineWidth = 1.0
)

// Text is a single run of text on a slide. It is a value type: commands copy
// it to snapshot old state. A non-positive Size or LineWidth means "unset"
// when a Text is used as a set of requested changes.
type Text struct {
	Content   string  `json:"content" yaml:"content"`
	Size      float64 `json:"size" yaml:"size"`
	Font      string  `json:"font" yaml:"font"`
	Color     string  `json:"color" yaml:"color"`
	LineWidth float64 `json:"line_width" yaml:"line_width"`
}

// NewText returns a text run with default styling.
func NewText(content string) Text {
	return Text{
		Content:   content,
		Size:      DefaultTextSize,
		Font:      DefaultFont,
		Color:     DefaultColor,
		LineWidth: DefaultLineWidth,
	}
}

// Merge returns t with every field that is set in changes overwritten.
// Empty strings and non-positive numbers in changes leave t's value alone.
func (t Text) Merge(changes Text) Text {
	if changes.Content != "" {
		t.Content = changes.Content
	}
	if changes.Size > 0 {
		t.Size = changes.Size
	}
	if changes.Font != "" {
		t.Font = changes.Font
	}
	if changes.Color != "" {
		t.Color = changes.Color
	}
	if changes.LineWidth > 0 {
		t.LineWidth = changes.LineWidth
	}
	return t
}

func (t Text) String() string {
	return fmt.Sprintf("%q (size=%g, font=%s, color=%s, line-width=%g)",
		t.Content, t.Size, t.Font, t.Color, t.LineWidth)
}
