// Package parser turns single command lines into commands.
//
// A line is split by the tokenizer (quote aware), each word is classified by
// the lexer, and a per-keyword state machine validates the token stream
// against the keyword's grammar before binding the values to a command.
package parser

import (
	"fmt"
	"strconv"
)

// TokenKind classifies a lexical token.
type TokenKind int

const (
	Word TokenKind = iota
	Number
	Float
	Flag
	QuoteString
	End
	Error
)

var tokenKindNames = [...]string{
	Word:        "word",
	Number:      "number",
	Float:       "float",
	Flag:        "flag",
	QuoteString: "quoted string",
	End:         "end of line",
	Error:       "error",
}

func (k TokenKind) String() string {
	if int(k) < len(tokenKindNames) {
		return tokenKindNames[k]
	}
	return fmt.Sprintf("TokenKind(%d)", int(k))
}

// Token is a typed lexical unit. Offset is the byte offset of the token in
// the source line, or -1 when the token did not come from a line.
type Token struct {
	Kind   TokenKind
	Value  string
	Offset int
}

func (t Token) String() string {
	switch t.Kind {
	case End:
		return "end of line"
	case Error:
		return "error: " + t.Value
	}
	return fmt.Sprintf("%s %q", t.Kind, t.Value)
}

// Int returns the integer value of a Number token.
func (t Token) Int() (int, error) {
	if t.Kind != Number {
		return 0, fmt.Errorf("%s is not a number", t)
	}
	return strconv.Atoi(t.Value)
}

// Float64 returns the numeric value of a Number or Float token.
func (t Token) Float64() (float64, error) {
	if t.Kind != Number && t.Kind != Float {
		return 0, fmt.Errorf("%s is not numeric", t)
	}
	return strconv.ParseFloat(t.Value, 64)
}

// Lex classifies already split words. It never fails: anything that is not
// a number, float or flag is a Word.
func Lex(words []string) []Token {
	tokens := make([]Token, 0, len(words))
	for _, w := range words {
		tok := Classify(w)
		tok.Offset = -1
		tokens = append(tokens, tok)
	}
	return tokens
}

// Classify returns the token for a single unquoted word. A word is only a
// Number or Float if it matches completely; "12.3.4" is a Word.
func Classify(word string) Token {
	switch {
	case isNumber(word):
		return Token{Kind: Number, Value: word}
	case isFloat(word):
		return Token{Kind: Float, Value: word}
	case isFlag(word):
		return Token{Kind: Flag, Value: word}
	}
	return Token{Kind: Word, Value: word}
}

func isNumber(s string) bool {
	digits := trimSign(s)
	if digits == "" {
		return false
	}
	for i := 0; i < len(digits); i++ {
		if digits[i] < '0' || digits[i] > '9' {
			return false
		}
	}
	// Reject values that overflow int.
	_, err := strconv.Atoi(s)
	return err == nil
}

func isFloat(s string) bool {
	body := trimSign(s)
	dots, digits := 0, 0
	for i := 0; i < len(body); i++ {
		switch c := body[i]; {
		case c == '.':
			dots++
		case c >= '0' && c <= '9':
			digits++
		default:
			return false
		}
	}
	return dots == 1 && digits > 0
}

func isFlag(s string) bool {
	return len(s) > 2 && s[0] == '-' && s[1] == '-' && s[2] != '-'
}

func trimSign(s string) string {
	if len(s) > 0 && (s[0] == '-' || s[0] == '+') {
		return s[1:]
	}
	return s
}
