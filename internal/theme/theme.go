// internal/theme/theme.go
package theme

import (
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/EdgarSahakyann/Power-point--project/internal/logger"
)

// Theme is a named colour scheme. Background and Foreground are CSS hex
// colours used for slide canvases; Styles drive the terminal preview.
type Theme struct {
	Name       string
	IsDark     bool
	Background string
	Foreground string
	Styles     map[string]tcell.Style
}

// GetStyle returns the named style, then the style of the part before the
// first dot, then "Default".
func (t *Theme) GetStyle(name string) tcell.Style {
	if style, ok := t.Styles[name]; ok {
		return style
	}

	if dotIndex := strings.Index(name, "."); dotIndex != -1 {
		if style, ok := t.Styles[name[:dotIndex]]; ok {
			return style
		}
	}

	if defStyle, ok := t.Styles["Default"]; ok {
		if name != "Default" {
			logger.DebugTagf("theme", "Theme '%s': Style '%s' not found, falling back to 'Default'", t.Name, name)
		}
		return defStyle
	}

	logger.Warnf("Theme '%s': Style '%s' and 'Default' style not found, using tcell default.", t.Name, name)
	return tcell.StyleDefault
}

// Light and Dark are compiled in; slides created without a theme get one of
// these names.
var (
	Light = newBuiltin("light", false, 0xffffff, 0x333333, 0x1f6feb, 0xe1e4e8)
	Dark  = newBuiltin("dark", true, 0x2a2f38, 0xc5cdd9, 0x61afef, 0x3b4252)
)

func newBuiltin(name string, dark bool, bg, fg, accent, bar int32) *Theme {
	background := tcell.NewHexColor(bg)
	foreground := tcell.NewHexColor(fg)
	accentColor := tcell.NewHexColor(accent)
	barColor := tcell.NewHexColor(bar)

	base := tcell.StyleDefault.Background(background).Foreground(foreground)
	return &Theme{
		Name:       name,
		IsDark:     dark,
		Background: hexString(bg),
		Foreground: hexString(fg),
		Styles: map[string]tcell.Style{
			"Default":          base,
			"SlideTitle":       base.Foreground(accentColor).Bold(true),
			"SlideMeta":        base.Dim(true),
			"Text":             base,
			"Shape":            base.Foreground(accentColor),
			"StatusBar":        tcell.StyleDefault.Background(barColor).Foreground(foreground),
			"StatusBarMessage": tcell.StyleDefault.Background(barColor).Foreground(foreground).Bold(true),
		},
	}
}
