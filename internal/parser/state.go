package parser

import (
	"fmt"
	"strings"
)

// State is a node of the per-keyword parsing state machine.
type State int

const (
	StateStart State = iota
	StatePositional
	StateFlagName
	StateFlagValue
	StateEnd
	StateError
	StateHelp
)

var stateNames = [...]string{
	StateStart:      "start",
	StatePositional: "positional",
	StateFlagName:   "flag-name",
	StateFlagValue:  "flag-value",
	StateEnd:        "end",
	StateError:      "error",
	StateHelp:       "help",
}

func (s State) String() string {
	if int(s) < len(stateNames) {
		return stateNames[s]
	}
	return fmt.Sprintf("State(%d)", int(s))
}

func (s State) terminal() bool {
	return s == StateEnd || s == StateError || s == StateHelp
}

// transition consumes or inspects one token and returns the next state.
// Returning the same position without advancing is allowed when a state
// only dispatches (e.g. positional arguments giving way to flags).
type transition func(m *machine, tok Token) State

var transitions = map[State]transition{
	StateStart:      (*machine).onStart,
	StatePositional: (*machine).onPositional,
	StateFlagName:   (*machine).onFlagName,
	StateFlagValue:  (*machine).onFlagValue,
}

// machine is the per-call state of one parse. It is discarded afterwards.
type machine struct {
	line    string
	tokens  []Token
	pos     int
	lookup  func(keyword string) (Grammar, bool)
	grammar Grammar
	keyword string
	slot    int
	pending FlagSpec
	args    *Args
	err     string
	errPos  int
}

func newMachine(line string, tokens []Token, lookup func(string) (Grammar, bool)) *machine {
	return &machine{line: line, tokens: tokens, lookup: lookup, args: newArgs(), errPos: -1}
}

// run drives the machine until a terminal state.
func (m *machine) run() State {
	state := StateStart
	for !state.terminal() {
		tok := m.peek()
		if tok.Kind == Error {
			state = m.fail("%s", tok.Value)
			break
		}
		state = transitions[state](m, tok)
	}
	return state
}

func (m *machine) peek() Token {
	if m.pos < len(m.tokens) {
		return m.tokens[m.pos]
	}
	return Token{Kind: End, Offset: len(m.line)}
}

func (m *machine) advance() { m.pos++ }

func (m *machine) fail(format string, args ...interface{}) State {
	m.err = fmt.Sprintf(format, args...)
	m.errPos = m.pos
	return StateError
}

func (m *machine) onStart(tok Token) State {
	if tok.Kind == End {
		return StateHelp
	}
	if tok.Kind != Word {
		return m.fail("expected a command keyword, got %s", tok)
	}
	m.keyword = strings.ToLower(tok.Value)
	g, ok := m.lookup(m.keyword)
	if !ok {
		return StateHelp
	}
	m.grammar = g
	m.advance()
	if len(g.Slots) == 0 {
		return StateFlagName
	}
	return StatePositional
}

func (m *machine) onPositional(tok Token) State {
	if m.slot >= len(m.grammar.Slots) {
		return StateFlagName
	}
	slot := m.grammar.Slots[m.slot]

	if tok.Kind == End {
		if !slot.Optional {
			return m.fail("missing <%s>", slot.Name)
		}
		return StateEnd
	}
	if slot.Kind == SlotRest {
		var rest string
		if tok.Offset >= 0 && tok.Offset <= len(m.line) {
			rest = strings.TrimSpace(m.line[tok.Offset:])
		} else {
			rest = joinValues(m.tokens[m.pos:])
		}
		m.args.slots[slot.Name] = Token{Kind: Word, Value: rest, Offset: tok.Offset}
		m.pos = len(m.tokens)
		return StateEnd
	}
	if tok.Kind == Flag {
		if !slot.Optional {
			return m.fail("missing <%s> before %s", slot.Name, tok.Value)
		}
		return StateFlagName
	}

	switch slot.Kind {
	case SlotInt:
		if tok.Kind != Number {
			return m.fail("<%s> must be an integer, got %s", slot.Name, tok)
		}
	case SlotFloat:
		if tok.Kind != Number && tok.Kind != Float {
			return m.fail("<%s> must be a number, got %s", slot.Name, tok)
		}
	case SlotChoice:
		matched := ""
		for _, c := range slot.Choices {
			if strings.EqualFold(c, tok.Value) {
				matched = c
			}
		}
		if matched == "" {
			return m.fail("<%s> must be one of %s, got %s", slot.Name, strings.Join(slot.Choices, ", "), tok)
		}
		tok.Value = matched
	}
	m.args.slots[slot.Name] = tok
	m.slot++
	m.advance()
	return StatePositional
}

func (m *machine) onFlagName(tok Token) State {
	switch tok.Kind {
	case End:
		return StateEnd
	case Flag:
	default:
		return m.fail("unexpected %s", tok)
	}
	name := strings.TrimPrefix(tok.Value, "--")
	spec, ok := m.grammar.flag(name)
	if !ok {
		return m.fail("unknown flag %s", tok.Value)
	}
	if m.args.HasFlag(name) {
		return m.fail("flag %s given twice", tok.Value)
	}
	m.pending = spec
	m.advance()
	return StateFlagValue
}

func (m *machine) onFlagValue(tok Token) State {
	name := "--" + m.pending.Name
	switch tok.Kind {
	case End:
		return m.fail("missing value for %s", name)
	case Flag:
		return m.fail("missing value for %s before %s", name, tok.Value)
	}
	if m.pending.Value == ValueFloat && tok.Kind != Number && tok.Kind != Float {
		return m.fail("%s needs a number, got %s", name, tok)
	}
	m.args.flags[m.pending.Name] = tok
	m.advance()
	return StateFlagName
}

func joinValues(tokens []Token) string {
	parts := make([]string, 0, len(tokens))
	for _, t := range tokens {
		if t.Kind == End {
			break
		}
		parts = append(parts, t.Value)
	}
	return strings.Join(parts, " ")
}
