// internal/tui/drawing.go
package tui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/uniseg"

	"github.com/EdgarSahakyann/Power-point--project/internal/deck"
	"github.com/EdgarSahakyann/Power-point--project/internal/render"
	"github.com/EdgarSahakyann/Power-point--project/internal/theme"
)

// frameMargin is the gap between the screen edge and the slide frame.
const frameMargin = 1

// drawString draws text from (x, y) clipped to maxWidth cells and returns
// the number of cells used.
func drawString(screen tcell.Screen, x, y, maxWidth int, text string, style tcell.Style) int {
	if maxWidth <= 0 {
		return 0
	}
	text = render.Truncate(text, maxWidth)
	used := 0
	gr := uniseg.NewGraphemes(text)
	for gr.Next() {
		w := gr.Width()
		if used+w > maxWidth {
			break
		}
		runes := gr.Runes()
		screen.SetContent(x+used, y, runes[0], runes[1:], style)
		for cw := 1; cw < w; cw++ {
			screen.SetContent(x+used+cw, y, ' ', nil, style)
		}
		used += w
	}
	return used
}

func fill(screen tcell.Screen, x0, y0, x1, y1 int, style tcell.Style) {
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			screen.SetContent(x, y, ' ', nil, style)
		}
	}
}

func drawBox(screen tcell.Screen, x0, y0, x1, y1 int, style tcell.Style) {
	for x := x0 + 1; x < x1; x++ {
		screen.SetContent(x, y0, tcell.RuneHLine, nil, style)
		screen.SetContent(x, y1, tcell.RuneHLine, nil, style)
	}
	for y := y0 + 1; y < y1; y++ {
		screen.SetContent(x0, y, tcell.RuneVLine, nil, style)
		screen.SetContent(x1, y, tcell.RuneVLine, nil, style)
	}
	screen.SetContent(x0, y0, tcell.RuneULCorner, nil, style)
	screen.SetContent(x1, y0, tcell.RuneURCorner, nil, style)
	screen.SetContent(x0, y1, tcell.RuneLLCorner, nil, style)
	screen.SetContent(x1, y1, tcell.RuneLRCorner, nil, style)
}

// SlideLines returns the body lines drawn inside a slide frame.
func SlideLines(s *deck.Slide) []string {
	var lines []string
	if s.Content() != "" {
		lines = append(lines, s.Content(), "")
	}
	for i, t := range s.Texts() {
		lines = append(lines, fmt.Sprintf("[%d] %s", i, t.Content))
	}
	for i, shape := range s.Shapes() {
		lines = append(lines, fmt.Sprintf("(%d) %s", i, shape))
	}
	if len(lines) == 0 {
		lines = append(lines, "(empty slide)")
	}
	return lines
}

// DrawSlide renders s in a frame above the status bar row. A nil slide
// draws an empty-deck notice.
func DrawSlide(t *TUI, s *deck.Slide, activeTheme *theme.Theme) {
	screen := t.screen
	area := t.SlideArea()
	if area.Empty() {
		return
	}
	width, viewHeight := area.Width(), area.Height()

	base := activeTheme.GetStyle("Default")
	fill(screen, 0, 0, width, viewHeight, base)

	if s == nil {
		drawString(screen, frameMargin, 0, width-frameMargin, "No slides.", base)
		return
	}

	x0, y0 := frameMargin, 0
	x1, y1 := width-1-frameMargin, viewHeight-1
	if x1-x0 < 2 || y1-y0 < 2 {
		drawString(screen, 0, 0, width, s.Title(), activeTheme.GetStyle("SlideTitle"))
		return
	}
	drawBox(screen, x0, y0, x1, y1, activeTheme.GetStyle("Shape"))

	inner := x1 - x0 - 3
	row := y0 + 1
	drawString(screen, x0+2, row, inner, s.Title(), activeTheme.GetStyle("SlideTitle"))
	row++
	if row < y1 {
		meta := fmt.Sprintf("id %d", s.ID())
		if s.Theme() != "" {
			meta += " -- " + s.Theme()
		}
		drawString(screen, x0+2, row, inner, meta, activeTheme.GetStyle("SlideMeta"))
		row += 2
	}
	for _, line := range SlideLines(s) {
		if row >= y1 {
			break
		}
		drawString(screen, x0+2, row, inner, line, activeTheme.GetStyle("Text"))
		row++
	}
}
