package script

import (
	"context"

	"github.com/EdgarSahakyann/Power-point--project/internal/command"
	"github.com/EdgarSahakyann/Power-point--project/internal/parser"
)

// Script is the command behind `run FILE`. The first Execute runs the
// Lua file; after an undo, Execute replays the recorded commands.
type Script struct {
	runner *Runner
	path   string
	macro  *command.Macro
}

// NewScript binds a script file to a runner.
func NewScript(r *Runner, path string) *Script {
	return &Script{runner: r, path: path}
}

func (s *Script) Execute() error {
	if s.macro != nil {
		return s.macro.Execute()
	}
	m, err := s.runner.RunFile(context.Background(), s.path)
	if err != nil {
		return err
	}
	s.macro = m
	return nil
}

func (s *Script) Undo() error {
	if s.macro == nil {
		return nil
	}
	return s.macro.Undo()
}

// Undoable is true once the script has run at least one undoable command.
func (s *Script) Undoable() bool {
	return s.macro != nil && s.macro.Undoable()
}

func (s *Script) Description() string {
	if s.macro == nil {
		return "run " + s.path
	}
	return s.macro.Description()
}

// Register adds the `run FILE` keyword to p. Lines inside scripts are
// parsed by p as well, so scripts may run other scripts.
func Register(p *parser.Parser, env *command.Env, opts ...Option) (*Runner, error) {
	r := NewRunner(p, env, opts...)
	err := p.Registry().Register(parser.Grammar{
		Keyword: "run",
		Slots:   []parser.Slot{{Name: "file", Kind: parser.SlotText}},
		Summary: "Run a Lua deck script as one undoable step",
	}, func(args *parser.Args) (command.Command, error) {
		return NewScript(r, args.Text("file", "")), nil
	})
	if err != nil {
		return nil, err
	}
	return r, nil
}
