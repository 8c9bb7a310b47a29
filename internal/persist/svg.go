package persist

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"strings"

	"github.com/EdgarSahakyann/Power-point--project/internal/deck"
	"github.com/EdgarSahakyann/Power-point--project/internal/logger"
)

// Slide sheet layout in SVG user units.
const (
	SlideWidth    = 960
	SlideHeight   = 540
	SlidesPerRow  = 3
	SlideMargin   = 40
	maxSVGTexts   = 6
	maxSVGShapes  = 6
	shapeSpacing  = 140
	shapeBaseSize = 40
)

// Palette resolves a slide's theme tag to SVG colours.
type Palette interface {
	SlideColors(theme string) (background, foreground string)
}

type plainPalette struct{}

func (plainPalette) SlideColors(string) (string, string) { return "#ffffff", "#333333" }

// SVGExporter renders every slide as a card on one SVG sheet. SVG is
// export only; there is no loader.
type SVGExporter struct {
	palette Palette
}

// NewSVGExporter creates an exporter. A nil palette draws every slide in
// black on white.
func NewSVGExporter(p Palette) *SVGExporter {
	if p == nil {
		p = plainPalette{}
	}
	return &SVGExporter{palette: p}
}

// Export writes the deck to path.
func (x *SVGExporter) Export(store *deck.Store, path string) error {
	var buf bytes.Buffer
	if err := x.Render(&buf, store.All()); err != nil {
		return err
	}
	if err := writeFileAtomic(path, buf.Bytes()); err != nil {
		return err
	}
	logger.Infof("persist: exported %d slides to %s", store.Len(), path)
	return nil
}

// Render writes the SVG document for slides to w.
func (x *SVGExporter) Render(w io.Writer, slides []*deck.Slide) error {
	n := len(slides)
	rows := (n + SlidesPerRow - 1) / SlidesPerRow
	if rows == 0 {
		rows = 1
	}
	width := SlidesPerRow*SlideWidth + (SlidesPerRow+1)*SlideMargin
	height := rows*SlideHeight + (rows+1)*SlideMargin

	sw := &svgWriter{w: w}
	sw.printf("<?xml version=\"1.0\" encoding=\"UTF-8\"?>\n")
	sw.printf("<svg xmlns=\"http://www.w3.org/2000/svg\" width=\"%d\" height=\"%d\" viewBox=\"0 0 %d %d\">\n", width, height, width, height)
	sw.printf("  <style>\n")
	sw.printf("    .slide-bg { stroke: #333; stroke-width: 2; }\n")
	sw.printf("    .slide-title { font-size: 28px; font-weight: bold; }\n")
	sw.printf("    .slide-content { font-size: 18px; }\n")
	sw.printf("    .shape-label { font-size: 12px; fill: #000; }\n")
	sw.printf("  </style>\n")

	for i, s := range slides {
		x.slide(sw, s, i)
	}
	sw.printf("</svg>\n")
	return sw.err
}

func (x *SVGExporter) slide(sw *svgWriter, s *deck.Slide, pos int) {
	bg, fg := x.palette.SlideColors(s.Theme())
	ox := SlideMargin + (pos%SlidesPerRow)*(SlideWidth+SlideMargin)
	oy := SlideMargin + (pos/SlidesPerRow)*(SlideHeight+SlideMargin)

	sw.printf("  <g id=\"slide-%d\">\n", s.ID())
	sw.printf("    <rect x=\"%d\" y=\"%d\" width=\"%d\" height=\"%d\" class=\"slide-bg\" fill=\"%s\"/>\n",
		ox, oy, SlideWidth, SlideHeight, escape(bg))
	sw.printf("    <text x=\"%d\" y=\"%d\" class=\"slide-title\" fill=\"%s\">%s</text>\n",
		ox+20, oy+45, escape(fg), escape(s.Title()))
	if s.Content() != "" {
		sw.printf("    <text x=\"%d\" y=\"%d\" class=\"slide-content\" fill=\"%s\">%s</text>\n",
			ox+20, oy+80, escape(fg), escape(s.Content()))
	}

	ty := oy + 120
	for i, t := range s.Texts() {
		if i >= maxSVGTexts {
			break
		}
		size := 16 * t.Size
		sw.printf("    <text x=\"%d\" y=\"%d\" font-family=\"%s\" font-size=\"%g\" fill=\"%s\" stroke-width=\"%g\">%s</text>\n",
			ox+20, ty, escape(t.Font), size, escape(cssColor(t.Color)), t.LineWidth, escape(t.Content))
		ty += int(size) + 10
	}

	for i, shape := range s.Shapes() {
		if i >= maxSVGShapes {
			break
		}
		cx := ox + 100 + (i%3)*shapeSpacing*2
		cy := oy + 340 + (i/3)*shapeSpacing
		shapeSVG(sw, shape, cx, cy)
	}
	sw.printf("  </g>\n")
}

func shapeSVG(sw *svgWriter, shape deck.Shape, cx, cy int) {
	size := int(shapeBaseSize * shape.Scale())
	switch shape.Kind() {
	case deck.KindCircle:
		sw.printf("    <circle cx=\"%d\" cy=\"%d\" r=\"%d\" fill=\"#87CEEB\" stroke=\"#4A90E2\" stroke-width=\"2\"/>\n", cx, cy, size)
	case deck.KindRectangle:
		sw.printf("    <rect x=\"%d\" y=\"%d\" width=\"%d\" height=\"%d\" fill=\"#FFB6C1\" stroke=\"#FF1493\" stroke-width=\"2\"/>\n",
			cx-size, cy-size/2, size*2, size)
	case deck.KindTriangle:
		sw.printf("    <polygon points=\"%d,%d %d,%d %d,%d\" fill=\"#90EE90\" stroke=\"#228B22\" stroke-width=\"2\"/>\n",
			cx, cy-size, cx-size, cy+size, cx+size, cy+size)
	case deck.KindEllipse:
		sw.printf("    <ellipse cx=\"%d\" cy=\"%d\" rx=\"%d\" ry=\"%d\" fill=\"#DDA0DD\" stroke=\"#8B008B\" stroke-width=\"2\"/>\n",
			cx, cy, size*2, size)
	default:
		return
	}
	sw.printf("    <text x=\"%d\" y=\"%d\" class=\"shape-label\">%s</text>\n", cx-20, cy+size+18, shape.Kind())
}

// cssColor lower-cases colour names ("Black" becomes "black").
func cssColor(c string) string {
	if c == "" {
		return "black"
	}
	return strings.ToLower(c)
}

func escape(s string) string {
	var buf bytes.Buffer
	_ = xml.EscapeText(&buf, []byte(s))
	return buf.String()
}

// svgWriter remembers the first write error.
type svgWriter struct {
	w   io.Writer
	err error
}

func (sw *svgWriter) printf(format string, args ...interface{}) {
	if sw.err != nil {
		return
	}
	_, sw.err = fmt.Fprintf(sw.w, format, args...)
}
