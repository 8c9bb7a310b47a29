package command

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/EdgarSahakyann/Power-point--project/internal/deck"
	"github.com/EdgarSahakyann/Power-point--project/internal/logger"
	"github.com/EdgarSahakyann/Power-point--project/internal/render"
)

// Persister reads and writes whole decks.
type Persister interface {
	Save(store *deck.Store, path string) error
	Load(store *deck.Store, slides *deck.SlideFactory, path string) error
}

// Exporter writes a one-way rendering of the deck, such as SVG.
type Exporter interface {
	Export(store *deck.Store, path string) error
}

// Clipboard is the text clipboard used by copy and paste.
type Clipboard interface {
	ReadAll() (string, error)
	WriteAll(text string) error
}

// Save writes the deck to a file. It is not undoable.
type Save struct {
	readOnly
	env  *Env
	p    Persister
	path string
}

// NewSave creates the command.
func NewSave(env *Env, p Persister, path string) *Save {
	return &Save{env: env, p: p, path: path}
}

func (c *Save) Execute() error {
	if err := c.p.Save(c.env.Store, c.path); err != nil {
		return fmt.Errorf("save %s: %w", c.path, err)
	}
	c.env.printf("Saved %d slides to %s", c.env.Store.Len(), c.path)
	return nil
}

func (c *Save) Description() string { return "save " + c.path }

// Path returns the destination file.
func (c *Save) Path() string { return c.path }

// ErrNestedLoad is returned when load appears inside batch, ifexists or a
// script. Replacing the deck clears history, so it must run on its own.
var ErrNestedLoad = errors.New("load must run on its own, not inside another command")

// CheckNestable reports whether cmd may run as part of a larger command.
func CheckNestable(cmd Command) error {
	if _, ok := cmd.(*Load); ok {
		return ErrNestedLoad
	}
	return nil
}

// Load replaces the deck with the contents of a file. It is not undoable.
type Load struct {
	readOnly
	env  *Env
	p    Persister
	path string
}

// NewLoad creates the command.
func NewLoad(env *Env, p Persister, path string) *Load {
	return &Load{env: env, p: p, path: path}
}

func (c *Load) Execute() error {
	if err := c.p.Load(c.env.Store, c.env.Slides, c.path); err != nil {
		return fmt.Errorf("load %s: %w", c.path, err)
	}
	c.env.printf("Loaded %d slides from %s", c.env.Store.Len(), c.path)
	return nil
}

func (c *Load) Description() string { return "load " + c.path }

// Path returns the source file.
func (c *Load) Path() string { return c.path }

// ExportSVG renders the deck to an SVG file.
type ExportSVG struct {
	readOnly
	env  *Env
	x    Exporter
	path string
}

// NewExportSVG creates the command.
func NewExportSVG(env *Env, x Exporter, path string) *ExportSVG {
	return &ExportSVG{env: env, x: x, path: path}
}

func (c *ExportSVG) Execute() error {
	if err := c.x.Export(c.env.Store, c.path); err != nil {
		return fmt.Errorf("export %s: %w", c.path, err)
	}
	c.env.printf("Exported SVG to %s", c.path)
	return nil
}

func (c *ExportSVG) Description() string { return "export-svg " + c.path }

// Display prints every slide as a table.
type Display struct {
	readOnly
	env *Env
}

// NewDisplay creates the command.
func NewDisplay(env *Env) *Display { return &Display{env: env} }

func (c *Display) Execute() error {
	render.Deck(c.env.Out, c.env.Store.All())
	return nil
}

func (c *Display) Description() string { return "display" }

// Help prints static usage text.
type Help struct {
	readOnly
	env  *Env
	text string
}

// NewHelp creates the command.
func NewHelp(env *Env, text string) *Help { return &Help{env: env, text: text} }

func (c *Help) Execute() error {
	fmt.Fprint(c.env.Out, c.text)
	return nil
}

func (c *Help) Description() string { return "help" }

// CopySlide puts a slide's structural encoding on the clipboard as YAML.
type CopySlide struct {
	readOnly
	env  *Env
	clip Clipboard
	id   int
}

// NewCopySlide creates the command.
func NewCopySlide(env *Env, clip Clipboard, id int) *CopySlide {
	return &CopySlide{env: env, clip: clip, id: id}
}

func (c *CopySlide) Execute() error {
	slide, ok := c.env.slide(c.id)
	if !ok {
		return nil
	}
	data, err := yaml.Marshal(slide.Encode())
	if err != nil {
		return fmt.Errorf("encode slide %d: %w", c.id, err)
	}
	if err := c.clip.WriteAll(string(data)); err != nil {
		return fmt.Errorf("copy slide %d: %w", c.id, err)
	}
	c.env.printf("Copied slide %d", c.id)
	return nil
}

func (c *CopySlide) Description() string { return fmt.Sprintf("copy slide %d", c.id) }

// PasteSlide appends the slide held on the clipboard under a fresh id.
type PasteSlide struct {
	env      *Env
	clip     Clipboard
	created  *deck.Slide
	executed bool
}

// NewPasteSlide creates the command.
func NewPasteSlide(env *Env, clip Clipboard) *PasteSlide {
	return &PasteSlide{env: env, clip: clip}
}

func (c *PasteSlide) Execute() error {
	if c.executed {
		return nil
	}
	if c.created == nil {
		text, err := c.clip.ReadAll()
		if err != nil {
			return fmt.Errorf("paste: %w", err)
		}
		var enc deck.SlideEncoding
		if err := yaml.Unmarshal([]byte(text), &enc); err != nil || enc.Title == "" && len(enc.Texts) == 0 && len(enc.Shapes) == 0 {
			logger.Warnf("command: paste: clipboard does not hold a slide: %v", err)
			c.env.printf("Clipboard does not contain a slide")
			return nil
		}
		enc.ID = 0
		slide, err := c.env.Slides.FromEncoding(enc)
		if err != nil {
			c.env.swallow("paste", err)
			return nil
		}
		c.created = slide
	}
	if err := c.env.Store.Add(c.created); err != nil {
		c.env.swallow("paste", err)
		return nil
	}
	c.executed = true
	c.env.printf("Pasted slide as %d", c.created.ID())
	return nil
}

func (c *PasteSlide) Undo() error {
	if !c.executed {
		return nil
	}
	c.env.Store.RemoveByID(c.created.ID())
	c.executed = false
	c.env.printf("Undo: removed pasted slide %d", c.created.ID())
	return nil
}

func (c *PasteSlide) Undoable() bool { return true }

func (c *PasteSlide) Description() string { return "paste slide" }
