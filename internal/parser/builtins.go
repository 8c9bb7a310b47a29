package parser

import (
	"errors"
	"fmt"

	"github.com/EdgarSahakyann/Power-point--project/internal/command"
	"github.com/EdgarSahakyann/Power-point--project/internal/deck"
)

// Defaults are the styling values used when a line leaves them out.
type Defaults struct {
	Font  string
	Color string
	Theme string
}

// Deps are the collaborators the built-in keywords bind into commands.
// Persister, Exporter and Clipboard may be nil; the keywords needing them
// are then not registered.
type Deps struct {
	Env       *command.Env
	Persister command.Persister
	Exporter  command.Exporter
	Clipboard command.Clipboard
	Defaults  Defaults
}

// NewDefault returns a parser with every built-in keyword registered.
func NewDefault(deps Deps) (*Parser, error) {
	p := New(NewRegistry())
	if err := RegisterBuiltins(p, deps); err != nil {
		return nil, err
	}
	return p, nil
}

// RegisterBuiltins registers the built-in keywords on p.
func RegisterBuiltins(p *Parser, deps Deps) error {
	if deps.Env == nil {
		return errors.New("parser: nil command environment")
	}
	d := deps.Defaults
	if d.Font == "" {
		d.Font = deck.DefaultFont
	}
	if d.Color == "" {
		d.Color = deck.DefaultColor
	}
	env := deps.Env

	type keyword struct {
		g     Grammar
		build Builder
	}
	keywords := []keyword{
		{Grammar{
			Keyword: "create",
			Slots:   []Slot{{Name: "title", Kind: SlotText}, {Name: "content", Kind: SlotText, Optional: true}, {Name: "theme", Kind: SlotText, Optional: true}},
			Summary: "Create a slide at the end of the deck",
		}, func(a *Args) (command.Command, error) {
			return command.NewCreateSlide(env, a.Text("title", ""), a.Text("content", ""), a.Text("theme", d.Theme)), nil
		}},
		{Grammar{
			Keyword: "addtext",
			Slots:   []Slot{{Name: "id", Kind: SlotInt}, {Name: "text", Kind: SlotText}},
			Flags:   textFlags(false),
			Summary: "Append a text run to a slide",
		}, func(a *Args) (command.Command, error) {
			t := deck.Text{
				Content:   a.Text("text", ""),
				Size:      a.FlagFloat("size", deck.DefaultTextSize),
				Font:      a.FlagText("font", d.Font),
				Color:     a.FlagText("color", d.Color),
				LineWidth: a.FlagFloat("line-width", deck.DefaultLineWidth),
			}
			if t.Size <= 0 || t.LineWidth <= 0 {
				return nil, errors.New("--size and --line-width must be positive")
			}
			return command.NewAddText(env, a.Int("id"), t), nil
		}},
		{Grammar{
			Keyword: "addshape",
			Slots:   []Slot{{Name: "id", Kind: SlotInt}, {Name: "type", Kind: SlotText}, {Name: "scale", Kind: SlotFloat, Optional: true}},
			Summary: "Append a shape (Circle, Rectangle, Triangle, Ellipse)",
		}, func(a *Args) (command.Command, error) {
			kind, err := deck.ParseShapeKind(a.Text("type", ""))
			if err != nil {
				return nil, err
			}
			scale := a.Float("scale", 1)
			if scale <= 0 {
				return nil, errors.New("<scale> must be positive")
			}
			return command.NewAddShape(env, a.Int("id"), kind.String(), scale), nil
		}},
		{Grammar{
			Keyword: "move",
			Slots:   []Slot{{Name: "from", Kind: SlotInt}, {Name: "to", Kind: SlotInt}},
			Summary: "Move the slide at position <from> to position <to> (0-based)",
		}, func(a *Args) (command.Command, error) {
			return command.NewMoveSlide(env, a.Int("from"), a.Int("to")), nil
		}},
		{Grammar{
			Keyword: "removetext",
			Slots:   []Slot{{Name: "id", Kind: SlotInt}, {Name: "index", Kind: SlotInt}},
			Summary: "Remove a text run from a slide",
		}, func(a *Args) (command.Command, error) {
			return command.NewRemoveText(env, a.Int("id"), a.Int("index")), nil
		}},
		{Grammar{
			Keyword: "removeshape",
			Slots:   []Slot{{Name: "id", Kind: SlotInt}, {Name: "index", Kind: SlotInt}},
			Summary: "Remove a shape from a slide",
		}, func(a *Args) (command.Command, error) {
			return command.NewRemoveShape(env, a.Int("id"), a.Int("index")), nil
		}},
		{Grammar{
			Keyword: "rename",
			Slots:   []Slot{{Name: "id", Kind: SlotInt}, {Name: "title", Kind: SlotText}},
			Summary: "Change a slide's title",
		}, func(a *Args) (command.Command, error) {
			return command.NewRenameSlide(env, a.Int("id"), a.Text("title", "")), nil
		}},
		{Grammar{
			Keyword: "duplicate",
			Slots:   []Slot{{Name: "id", Kind: SlotInt}},
			Summary: "Append a copy of a slide",
		}, func(a *Args) (command.Command, error) {
			return command.NewDuplicateSlide(env, a.Int("id")), nil
		}},
		{Grammar{
			Keyword: "delete",
			Slots:   []Slot{{Name: "id", Kind: SlotInt}},
			Summary: "Delete a slide",
		}, func(a *Args) (command.Command, error) {
			return command.NewDeleteSlide(env, a.Int("id")), nil
		}},
		{Grammar{
			Keyword: "reorder",
			Slots:   []Slot{{Name: "id", Kind: SlotInt}, {Name: "direction", Kind: SlotChoice, Choices: []string{"up", "down"}}},
			Summary: "Move a slide one position up or down",
		}, func(a *Args) (command.Command, error) {
			return command.NewReorderSlide(env, a.Int("id"), a.Text("direction", "") == "up"), nil
		}},
		{Grammar{
			Keyword: "clear",
			Slots:   []Slot{{Name: "id", Kind: SlotInt}},
			Summary: "Remove every text run and shape from a slide",
		}, func(a *Args) (command.Command, error) {
			return command.NewClearSlide(env, a.Int("id")), nil
		}},
		{Grammar{
			Keyword: "modtext",
			Slots:   []Slot{{Name: "id", Kind: SlotInt}, {Name: "index", Kind: SlotInt}},
			Flags:   textFlags(true),
			Summary: "Change the given fields of a text run",
		}, func(a *Args) (command.Command, error) {
			changes := deck.Text{
				Content:   a.FlagText("content", ""),
				Size:      a.FlagFloat("size", 0),
				Font:      a.FlagText("font", ""),
				Color:     a.FlagText("color", ""),
				LineWidth: a.FlagFloat("line-width", 0),
			}
			if changes == (deck.Text{}) {
				return nil, errors.New("nothing to modify")
			}
			if (a.HasFlag("size") && changes.Size <= 0) || (a.HasFlag("line-width") && changes.LineWidth <= 0) {
				return nil, errors.New("--size and --line-width must be positive")
			}
			return command.NewModifyText(env, a.Int("id"), a.Int("index"), command.MergeText(changes)), nil
		}},
		{Grammar{
			Keyword: "scale",
			Slots:   []Slot{{Name: "id", Kind: SlotInt}, {Name: "index", Kind: SlotInt}, {Name: "scale", Kind: SlotFloat}},
			Summary: "Set the scale of a shape",
		}, func(a *Args) (command.Command, error) {
			scale := a.Float("scale", 0)
			if scale <= 0 {
				return nil, errors.New("<scale> must be positive")
			}
			return command.NewModifyShape(env, a.Int("id"), a.Int("index"), command.ScaleTo(scale), fmt.Sprintf("scale to %g", scale)), nil
		}},
		{Grammar{
			Keyword: "batch",
			Slots:   []Slot{{Name: "commands", Kind: SlotRest}},
			Summary: "Run several commands separated by ';' as one undo step",
		}, func(a *Args) (command.Command, error) {
			stmts := SplitStatements(a.Text("commands", ""))
			if len(stmts) == 0 {
				return nil, errors.New("no commands given")
			}
			m := command.NewMacro("batch")
			for i, stmt := range stmts {
				child, err := p.Parse(stmt)
				if err == nil {
					err = command.CheckNestable(child)
				}
				if err != nil {
					return nil, fmt.Errorf("command %d: %v", i+1, err)
				}
				m.Add(child)
			}
			return m, nil
		}},
		{Grammar{
			Keyword: "ifexists",
			Slots:   []Slot{{Name: "id", Kind: SlotInt}, {Name: "command", Kind: SlotRest}},
			Summary: "Run a command only while slide <id> exists",
		}, func(a *Args) (command.Command, error) {
			id := a.Int("id")
			rest := a.Text("command", "")
			if rest == "" {
				return nil, errors.New("missing <command>")
			}
			child, err := p.Parse(rest)
			if err != nil {
				return nil, err
			}
			if err := command.CheckNestable(child); err != nil {
				return nil, err
			}
			exists := func() bool { _, ok := env.Store.Get(id); return ok }
			return command.NewConditional(env, exists, fmt.Sprintf("slide %d exists", id), child), nil
		}},
		{Grammar{
			Keyword: "display",
			Summary: "List every slide",
		}, func(a *Args) (command.Command, error) {
			return command.NewDisplay(env), nil
		}},
		{Grammar{
			Keyword: "help",
			Slots:   []Slot{{Name: "command", Kind: SlotText, Optional: true}},
			Summary: "Show all commands or the usage of one",
		}, func(a *Args) (command.Command, error) {
			if !a.Has("command") {
				return command.NewHelp(env, p.reg.HelpText()), nil
			}
			text, ok := p.reg.Help(a.Text("command", ""))
			if !ok {
				text = fmt.Sprintf("Unknown command: %s\n%s", a.Text("command", ""), p.reg.HelpText())
			}
			return command.NewHelp(env, text), nil
		}},
	}

	if deps.Persister != nil {
		keywords = append(keywords,
			keyword{Grammar{
				Keyword: "save",
				Slots:   []Slot{{Name: "file", Kind: SlotText}},
				Summary: "Write the deck to a .json or .yaml file",
			}, func(a *Args) (command.Command, error) {
				return command.NewSave(env, deps.Persister, a.Text("file", "")), nil
			}},
			keyword{Grammar{
				Keyword: "load",
				Slots:   []Slot{{Name: "file", Kind: SlotText}},
				Summary: "Replace the deck with a .json or .yaml file",
			}, func(a *Args) (command.Command, error) {
				return command.NewLoad(env, deps.Persister, a.Text("file", "")), nil
			}},
		)
	}
	if deps.Exporter != nil {
		keywords = append(keywords, keyword{Grammar{
			Keyword: "export-svg",
			Slots:   []Slot{{Name: "file", Kind: SlotText}},
			Summary: "Render the deck to an SVG file",
		}, func(a *Args) (command.Command, error) {
			return command.NewExportSVG(env, deps.Exporter, a.Text("file", "")), nil
		}})
	}
	if deps.Clipboard != nil {
		keywords = append(keywords,
			keyword{Grammar{
				Keyword: "copy",
				Slots:   []Slot{{Name: "id", Kind: SlotInt}},
				Summary: "Copy a slide to the clipboard",
			}, func(a *Args) (command.Command, error) {
				return command.NewCopySlide(env, deps.Clipboard, a.Int("id")), nil
			}},
			keyword{Grammar{
				Keyword: "paste",
				Summary: "Append the slide on the clipboard with a new id",
			}, func(a *Args) (command.Command, error) {
				return command.NewPasteSlide(env, deps.Clipboard), nil
			}},
		)
	}

	for _, k := range keywords {
		if err := p.reg.Register(k.g, k.build); err != nil {
			return err
		}
	}
	return nil
}

func textFlags(withContent bool) []FlagSpec {
	flags := []FlagSpec{
		{Name: "size", Value: ValueFloat},
		{Name: "font", Value: ValueText},
		{Name: "color", Value: ValueText},
		{Name: "line-width", Value: ValueFloat},
	}
	if withContent {
		flags = append([]FlagSpec{{Name: "content", Value: ValueText}}, flags...)
	}
	return flags
}
