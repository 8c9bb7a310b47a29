// Package plugintest provides an in-memory plugin.DeckAPI for plugin tests.
package plugintest

import (
	"bytes"
	"fmt"

	"github.com/EdgarSahakyann/Power-point--project/internal/command"
	"github.com/EdgarSahakyann/Power-point--project/internal/deck"
	"github.com/EdgarSahakyann/Power-point--project/internal/event"
	"github.com/EdgarSahakyann/Power-point--project/internal/parser"
	"github.com/EdgarSahakyann/Power-point--project/internal/plugin"
)

var _ plugin.DeckAPI = (*API)(nil)

// API backs plugin.DeckAPI with a real store, event bus and parser.
// SaveDeck records paths instead of writing files.
type API struct {
	Store   *deck.Store
	Factory *deck.SlideFactory
	Events  *event.Manager
	Parser  *parser.Parser
	Out     bytes.Buffer
	Config  map[string]map[string]interface{}

	Saved   []string
	SaveErr error

	env *command.Env
}

// New returns an API over an empty deck.
func New() *API {
	a := &API{
		Store:   deck.NewStore(),
		Factory: deck.NewSlideFactory(deck.NewShapeFactory()),
		Events:  event.NewManager(),
		Parser:  parser.New(parser.NewRegistry()),
		Config:  make(map[string]map[string]interface{}),
	}
	a.env = command.NewEnv(a.Store, a.Factory, &a.Out)
	return a
}

// AddSlide appends a fresh slide and returns it.
func (a *API) AddSlide(title string) *deck.Slide {
	s := a.Factory.New(title, "", "")
	if err := a.Store.Add(s); err != nil {
		panic(err)
	}
	return s
}

// Run parses and executes one line.
func (a *API) Run(line string) error {
	cmd, err := a.Parser.Parse(line)
	if err != nil {
		return err
	}
	return cmd.Execute()
}

func (a *API) Slides() []*deck.Slide { return a.Store.All() }
func (a *API) SlideCount() int       { return a.Store.Len() }

func (a *API) SaveDeck(path string) error {
	if a.SaveErr != nil {
		return a.SaveErr
	}
	a.Saved = append(a.Saved, path)
	return nil
}

func (a *API) DispatchEvent(t event.Type, data interface{}) { a.Events.Dispatch(t, data) }
func (a *API) SubscribeEvent(t event.Type, h event.Handler) { a.Events.Subscribe(t, h) }

func (a *API) RegisterCommand(g parser.Grammar, build parser.Builder) error {
	return a.Parser.Registry().Register(g, build)
}

func (a *API) Env() *command.Env { return a.env }

func (a *API) Printf(format string, args ...interface{}) {
	fmt.Fprintf(&a.Out, format, args...)
}

func (a *API) PluginConfigValue(pluginName, key string) (interface{}, bool) {
	v, ok := a.Config[pluginName][key]
	return v, ok
}
