package parser

import (
	"errors"
	"fmt"
	"strings"

	"github.com/EdgarSahakyann/Power-point--project/internal/command"
	"github.com/EdgarSahakyann/Power-point--project/internal/logger"
)

// ErrUnknownCommand is returned for a line whose keyword is not registered.
var ErrUnknownCommand = errors.New("unknown command")

// ErrEmptyLine is returned for a blank line.
var ErrEmptyLine = errors.New("empty line")

// SyntaxError describes a line rejected by a keyword's grammar.
type SyntaxError struct {
	Keyword string
	// Token is the index of the offending token, or -1.
	Token int
	Msg   string
	Usage string
}

func (e *SyntaxError) Error() string {
	if e.Usage == "" {
		return fmt.Sprintf("%s: %s", e.Keyword, e.Msg)
	}
	return fmt.Sprintf("%s: %s (usage: %s)", e.Keyword, e.Msg, e.Usage)
}

// Parser validates lines against the registry and builds commands. It holds
// no state between calls and never mutates the deck.
type Parser struct {
	reg *Registry
}

// New creates a parser over reg.
func New(reg *Registry) *Parser {
	return &Parser{reg: reg}
}

// Registry returns the keyword registry.
func (p *Parser) Registry() *Registry { return p.reg }

// Parse tokenizes and parses a single line.
func (p *Parser) Parse(line string) (command.Command, error) {
	return p.ParseTokens(line, Tokenize(line))
}

// ParseTokens parses an already tokenized line. line is only consulted by
// grammars that take the raw remainder of the line.
func (p *Parser) ParseTokens(line string, tokens []Token) (command.Command, error) {
	m := newMachine(line, tokens, p.reg.Grammar)
	switch m.run() {
	case StateHelp:
		if m.keyword == "" {
			return nil, ErrEmptyLine
		}
		return nil, fmt.Errorf("%w: %s", ErrUnknownCommand, m.keyword)
	case StateError:
		logger.DebugTagf("parser", "rejected %q at token %d: %s", line, m.errPos, m.err)
		return nil, &SyntaxError{
			Keyword: m.keywordOrFirst(),
			Token:   m.errPos,
			Msg:     m.err,
			Usage:   m.grammarUsage(),
		}
	}

	e, ok := p.reg.lookup(m.keyword)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownCommand, m.keyword)
	}
	cmd, err := e.build(m.args)
	if err != nil {
		var se *SyntaxError
		if errors.As(err, &se) {
			return nil, se
		}
		return nil, &SyntaxError{Keyword: m.keyword, Token: -1, Msg: err.Error(), Usage: e.grammar.Usage()}
	}
	return cmd, nil
}

func (m *machine) keywordOrFirst() string {
	if m.keyword != "" {
		return m.keyword
	}
	if len(m.tokens) > 0 {
		return strings.ToLower(m.tokens[0].Value)
	}
	return ""
}

func (m *machine) grammarUsage() string {
	if m.grammar.Keyword == "" {
		return ""
	}
	return m.grammar.Usage()
}
