// internal/tui/preview.go
package tui

import (
	"context"

	"github.com/gdamore/tcell/v2"

	"github.com/EdgarSahakyann/Power-point--project/internal/deck"
	"github.com/EdgarSahakyann/Power-point--project/internal/event"
	"github.com/EdgarSahakyann/Power-point--project/internal/logger"
	"github.com/EdgarSahakyann/Power-point--project/internal/statusbar"
	"github.com/EdgarSahakyann/Power-point--project/internal/theme"
)

// Preview is a read-only slide viewer: one slide per screen, arrows to
// page, t to cycle themes, q to quit.
type Preview struct {
	tui    *TUI
	slides []*deck.Slide
	themes *theme.Manager
	events *event.Manager
	status *statusbar.StatusBar
	name   string
	index  int
}

// NewPreview builds a preview over a snapshot of slides. events may be nil.
func NewPreview(t *TUI, name string, slides []*deck.Slide, themes *theme.Manager, events *event.Manager) *Preview {
	p := &Preview{
		tui:    t,
		slides: slides,
		themes: themes,
		events: events,
		name:   name,
		status: statusbar.New(statusbar.DefaultConfig()),
	}
	p.applyTheme()
	return p
}

// Index returns the 0-based position of the slide on screen.
func (p *Preview) Index() int { return p.index }

// StatusBar exposes the status line.
func (p *Preview) StatusBar() *statusbar.StatusBar { return p.status }

func (p *Preview) applyTheme() {
	th := p.themes.Current()
	p.status.SetConfig(statusbar.Config{
		StyleDefault:   th.GetStyle("StatusBar"),
		StyleMessage:   th.GetStyle("StatusBarMessage"),
		MessageTimeout: statusbar.DefaultConfig().MessageTimeout,
	})
	p.status.SetThemeName(th.Name)
	p.tui.Clear(th.GetStyle("Default"))
}

// Draw renders the current slide and the status bar.
func (p *Preview) Draw() {
	var current *deck.Slide
	if p.index < len(p.slides) {
		current = p.slides[p.index]
	}
	DrawSlide(p.tui, current, p.themes.Current())

	width, height := p.tui.Size()
	p.status.SetDeckInfo(p.name, p.index, len(p.slides))
	p.status.Draw(p.tui.screen, width, height)
	p.tui.Show()
}

// HandleKey applies one key press and reports whether the preview should
// keep running.
func (p *Preview) HandleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return false
	case tcell.KeyLeft, tcell.KeyUp, tcell.KeyPgUp:
		p.step(-1)
	case tcell.KeyRight, tcell.KeyDown, tcell.KeyPgDn, tcell.KeyEnter:
		p.step(1)
	case tcell.KeyHome:
		p.index = 0
	case tcell.KeyEnd:
		if len(p.slides) > 0 {
			p.index = len(p.slides) - 1
		}
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q':
			return false
		case 'h', 'k':
			p.step(-1)
		case 'l', 'j', ' ':
			p.step(1)
		case 't':
			th := p.themes.Next()
			p.applyTheme()
			p.status.SetTemporaryMessage("Theme: %s", th.Name)
			if p.events != nil {
				p.events.Dispatch(event.TypeThemeChanged, event.ThemeChangedData{Name: th.Name})
			}
		}
	}
	return true
}

func (p *Preview) step(delta int) {
	next := p.index + delta
	if next < 0 || next >= len(p.slides) {
		p.status.SetTemporaryMessage("No more slides")
		return
	}
	p.index = next
}

// Run draws and processes events until quit or ctx is done.
func (p *Preview) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	go func() {
		<-ctx.Done()
		p.tui.Interrupt()
	}()

	p.Draw()
	for {
		ev := p.tui.PollEvent()
		if ev == nil {
			return nil
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		switch ev := ev.(type) {
		case *tcell.EventKey:
			if !p.HandleKey(ev) {
				logger.DebugTagf("tui", "Preview closed on slide %d", p.index+1)
				return nil
			}
		case *tcell.EventResize:
			p.tui.Sync()
		}
		p.Draw()
	}
}
