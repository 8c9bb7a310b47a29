// Package render formats slides as aligned plain text for the terminal.
package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/rivo/uniseg"

	"github.com/EdgarSahakyann/Power-point--project/internal/deck"
)

// MaxColumnWidth caps a table cell; longer values are truncated.
const MaxColumnWidth = 32

// Width returns the display width of s in terminal cells.
func Width(s string) int {
	return uniseg.StringWidth(s)
}

// Truncate shortens s to at most width cells, ending with "…" when cut.
// Grapheme clusters are never split.
func Truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if Width(s) <= width {
		return s
	}
	var b strings.Builder
	used := 0
	gr := uniseg.NewGraphemes(s)
	for gr.Next() {
		w := gr.Width()
		if used+w > width-1 {
			break
		}
		b.WriteString(gr.Str())
		used += w
	}
	b.WriteString("…")
	return b.String()
}

// Pad right-pads s with spaces to width cells.
func Pad(s string, width int) string {
	if gap := width - Width(s); gap > 0 {
		return s + strings.Repeat(" ", gap)
	}
	return s
}

// Table writes rows as columns aligned by display width.
func Table(w io.Writer, header []string, rows [][]string) {
	widths := make([]int, len(header))
	cells := make([][]string, 0, len(rows)+1)
	cells = append(cells, header)
	cells = append(cells, rows...)
	for _, row := range cells {
		for i := range header {
			if i < len(row) {
				if cw := Width(Truncate(row[i], MaxColumnWidth)); cw > widths[i] {
					widths[i] = cw
				}
			}
		}
	}
	for _, row := range cells {
		var line strings.Builder
		for i := range header {
			cell := ""
			if i < len(row) {
				cell = Truncate(row[i], MaxColumnWidth)
			}
			if i == len(header)-1 {
				line.WriteString(cell)
			} else {
				line.WriteString(Pad(cell, widths[i]+2))
			}
		}
		fmt.Fprintln(w, strings.TrimRight(line.String(), " "))
	}
}

// Deck writes an overview table followed by each slide's texts and shapes.
func Deck(w io.Writer, slides []*deck.Slide) {
	if len(slides) == 0 {
		fmt.Fprintln(w, "No slides.")
		return
	}
	rows := make([][]string, 0, len(slides))
	for pos, s := range slides {
		rows = append(rows, []string{
			fmt.Sprint(pos),
			fmt.Sprint(s.ID()),
			s.Title(),
			s.Theme(),
			fmt.Sprint(s.TextCount()),
			fmt.Sprint(s.ShapeCount()),
		})
	}
	Table(w, []string{"#", "ID", "TITLE", "THEME", "TEXTS", "SHAPES"}, rows)

	for _, s := range slides {
		if s.Content() == "" && s.TextCount() == 0 && s.ShapeCount() == 0 {
			continue
		}
		fmt.Fprintf(w, "\nSlide %d: %s\n", s.ID(), s.Title())
		if s.Content() != "" {
			fmt.Fprintf(w, "  %s\n", s.Content())
		}
		for i, t := range s.Texts() {
			fmt.Fprintf(w, "  text[%d]  %s\n", i, t)
		}
		for i, sh := range s.Shapes() {
			fmt.Fprintf(w, "  shape[%d] %s\n", i, sh)
		}
	}
}
