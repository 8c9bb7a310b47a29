// internal/tui/tui.go
package tui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/EdgarSahakyann/Power-point--project/internal/config"
)

// TUI is a terminal screen split into a slide area and a status bar below
// it.
type TUI struct {
	screen tcell.Screen
}

// Area is a rectangle of cells, x1 and y1 exclusive.
type Area struct {
	X0, Y0, X1, Y1 int
}

// Width in cells.
func (a Area) Width() int { return a.X1 - a.X0 }

// Height in rows.
func (a Area) Height() int { return a.Y1 - a.Y0 }

// Empty reports whether nothing fits in a.
func (a Area) Empty() bool { return a.Width() <= 0 || a.Height() <= 0 }

// New opens the controlling terminal.
func New() (*TUI, error) {
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("failed to create tcell screen: %w", err)
	}
	return Attach(s)
}

// Attach initializes s and takes ownership of it. Tests attach a
// simulation screen.
func Attach(s tcell.Screen) (*TUI, error) {
	if err := s.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize tcell screen: %w", err)
	}
	return &TUI{screen: s}, nil
}

// Close restores the terminal.
func (t *TUI) Close() {
	if t.screen != nil {
		t.screen.Fini()
		t.screen = nil
	}
}

// SlideArea is the part of the screen above the status bar.
func (t *TUI) SlideArea() Area {
	w, h := t.screen.Size()
	return Area{X0: 0, Y0: 0, X1: w, Y1: h - config.StatusBarHeight}
}

// Size returns the full screen size, status bar included.
func (t *TUI) Size() (int, int) {
	return t.screen.Size()
}

// Clear paints the whole screen with the canvas style.
func (t *TUI) Clear(canvas tcell.Style) {
	t.screen.SetStyle(canvas)
	t.screen.Clear()
}

// Interrupt wakes a blocked PollEvent.
func (t *TUI) Interrupt() {
	_ = t.screen.PostEvent(tcell.NewEventInterrupt(nil))
}

func (t *TUI) PollEvent() tcell.Event { return t.screen.PollEvent() }
func (t *TUI) Show()                  { t.screen.Show() }
func (t *TUI) Sync()                  { t.screen.Sync() }
