// plugins/stats/stats.go
package stats

import (
	"fmt"

	"github.com/EdgarSahakyann/Power-point--project/internal/command"
	"github.com/EdgarSahakyann/Power-point--project/internal/parser"
	"github.com/EdgarSahakyann/Power-point--project/internal/plugin"
)

var _ plugin.Plugin = (*Stats)(nil)

// Stats registers the `stats` keyword, which counts slides, texts and
// shapes.
type Stats struct {
	api plugin.DeckAPI
}

// New creates a new instance of the Stats plugin.
func New() *Stats {
	return &Stats{}
}

func (p *Stats) Name() string {
	return "stats"
}

func (p *Stats) Initialize(api plugin.DeckAPI) error {
	p.api = api
	err := api.RegisterCommand(parser.Grammar{
		Keyword: "stats",
		Summary: "Count slides, texts and shapes",
	}, func(*parser.Args) (command.Command, error) {
		return command.NewFunc("stats", p.report), nil
	})
	if err != nil {
		return fmt.Errorf("failed to register 'stats' command: %w", err)
	}
	return nil
}

func (p *Stats) Shutdown() error {
	return nil
}

// Counts are the totals over the whole deck.
type Counts struct {
	Slides int
	Texts  int
	Shapes int
}

// Count totals the deck visible through api.
func Count(api plugin.DeckAPI) Counts {
	var c Counts
	for _, s := range api.Slides() {
		c.Slides++
		c.Texts += s.TextCount()
		c.Shapes += s.ShapeCount()
	}
	return c
}

func (p *Stats) report() error {
	c := Count(p.api)
	p.api.Printf("Slides: %d, Texts: %d, Shapes: %d\n", c.Slides, c.Texts, c.Shapes)
	return nil
}
