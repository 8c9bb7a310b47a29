package parser

import (
	"fmt"
	"strings"

	"github.com/EdgarSahakyann/Power-point--project/internal/command"
)

// SlotKind says which tokens a positional argument accepts.
type SlotKind int

const (
	// SlotInt accepts a Number (ids, indices, positions).
	SlotInt SlotKind = iota
	// SlotText accepts any word, quoted string or number verbatim.
	SlotText
	// SlotFloat accepts a Number or Float.
	SlotFloat
	// SlotChoice accepts one of Choices, case-insensitively.
	SlotChoice
	// SlotRest takes the raw remainder of the line, including flags.
	SlotRest
)

// Slot is one positional argument. Optional slots must follow every
// required one.
type Slot struct {
	Name     string
	Kind     SlotKind
	Optional bool
	Choices  []string
}

// ValueKind says which tokens a flag value accepts.
type ValueKind int

const (
	ValueText ValueKind = iota
	ValueFloat
)

// FlagSpec is an optional `--name VALUE` group. Each may appear at most
// once, in any order, after the positional arguments.
type FlagSpec struct {
	Name  string
	Value ValueKind
}

// Grammar describes the accepted shape of one keyword's arguments.
type Grammar struct {
	Keyword string
	Slots   []Slot
	Flags   []FlagSpec
	Summary string
}

// Usage renders the grammar as a one-line usage string.
func (g Grammar) Usage() string {
	parts := []string{g.Keyword}
	for _, s := range g.Slots {
		name := "<" + s.Name + ">"
		if s.Kind == SlotChoice {
			name = strings.Join(s.Choices, "|")
		}
		if s.Kind == SlotRest {
			name = "<" + s.Name + "...>"
		}
		if s.Optional {
			name = "[" + name + "]"
		}
		parts = append(parts, name)
	}
	for _, f := range g.Flags {
		parts = append(parts, fmt.Sprintf("[--%s <%s>]", f.Name, valueName(f.Value)))
	}
	return strings.Join(parts, " ")
}

func valueName(v ValueKind) string {
	if v == ValueFloat {
		return "number"
	}
	return "text"
}

func (g Grammar) required() int {
	n := 0
	for _, s := range g.Slots {
		if !s.Optional {
			n++
		}
	}
	return n
}

func (g Grammar) flag(name string) (FlagSpec, bool) {
	for _, f := range g.Flags {
		if f.Name == name {
			return f, true
		}
	}
	return FlagSpec{}, false
}

func (g Grammar) validate() error {
	if g.Keyword == "" {
		return fmt.Errorf("grammar without keyword")
	}
	seenOptional := false
	for i, s := range g.Slots {
		if s.Optional {
			seenOptional = true
		} else if seenOptional {
			return fmt.Errorf("%s: required slot %q after optional slot", g.Keyword, s.Name)
		}
		if s.Kind == SlotRest && i != len(g.Slots)-1 {
			return fmt.Errorf("%s: rest slot %q must be last", g.Keyword, s.Name)
		}
		if s.Kind == SlotChoice && len(s.Choices) == 0 {
			return fmt.Errorf("%s: choice slot %q without choices", g.Keyword, s.Name)
		}
	}
	return nil
}

// Args holds the values collected for an accepted line. Values are stored
// already checked against their slot or flag kind.
type Args struct {
	slots map[string]Token
	flags map[string]Token
}

func newArgs() *Args {
	return &Args{slots: make(map[string]Token), flags: make(map[string]Token)}
}

// Has reports whether a positional slot was given.
func (a *Args) Has(slot string) bool {
	_, ok := a.slots[slot]
	return ok
}

// Int returns an integer slot, or 0 if absent.
func (a *Args) Int(slot string) int {
	n, _ := a.slots[slot].Int()
	return n
}

// Float returns a numeric slot, or def if absent.
func (a *Args) Float(slot string, def float64) float64 {
	tok, ok := a.slots[slot]
	if !ok {
		return def
	}
	f, err := tok.Float64()
	if err != nil {
		return def
	}
	return f
}

// Text returns a slot verbatim, or def if absent.
func (a *Args) Text(slot, def string) string {
	if tok, ok := a.slots[slot]; ok {
		return tok.Value
	}
	return def
}

// HasFlag reports whether --name was given.
func (a *Args) HasFlag(name string) bool {
	_, ok := a.flags[name]
	return ok
}

// FlagText returns a flag's value, or def if the flag is absent.
func (a *Args) FlagText(name, def string) string {
	if tok, ok := a.flags[name]; ok {
		return tok.Value
	}
	return def
}

// FlagFloat returns a numeric flag's value, or def if the flag is absent.
func (a *Args) FlagFloat(name string, def float64) float64 {
	tok, ok := a.flags[name]
	if !ok {
		return def
	}
	f, err := tok.Float64()
	if err != nil {
		return def
	}
	return f
}

// Builder binds accepted arguments to a concrete command. A returned error
// is reported as a syntax error for the keyword.
type Builder func(args *Args) (command.Command, error)
