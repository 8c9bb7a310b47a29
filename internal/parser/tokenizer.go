package parser

import "strings"

// Tokenize splits a line into typed tokens. Words are separated by
// whitespace; a word starting with a single or double quote runs to the
// matching quote and becomes a QuoteString with the quotes removed.
// Backslash escapes the quote character and itself inside quotes. An
// unterminated quote yields an Error token. The stream always ends with End.
func Tokenize(line string) []Token {
	var tokens []Token
	i := 0
	for i < len(line) {
		if isSpaceByte(line[i]) {
			i++
			continue
		}
		start := i
		if line[i] == '"' || line[i] == '\'' {
			value, next, ok := readQuoted(line, i)
			if !ok {
				tokens = append(tokens, Token{Kind: Error, Value: "unterminated quote", Offset: start})
				break
			}
			tokens = append(tokens, Token{Kind: QuoteString, Value: value, Offset: start})
			i = next
			continue
		}
		for i < len(line) && !isSpaceByte(line[i]) {
			i++
		}
		tok := Classify(line[start:i])
		tok.Offset = start
		tokens = append(tokens, tok)
	}
	return append(tokens, Token{Kind: End, Offset: len(line)})
}

func readQuoted(line string, start int) (string, int, bool) {
	quote := line[start]
	var b strings.Builder
	for i := start + 1; i < len(line); i++ {
		c := line[i]
		switch {
		case c == '\\' && i+1 < len(line) && (line[i+1] == quote || line[i+1] == '\\'):
			b.WriteByte(line[i+1])
			i++
		case c == quote:
			return b.String(), i + 1, true
		default:
			b.WriteByte(c)
		}
	}
	return "", len(line), false
}

func isSpaceByte(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == '\v' || c == '\f'
}

// SplitStatements splits a line on semicolons that are not inside quotes.
// Empty statements are dropped.
func SplitStatements(line string) []string {
	var out []string
	var quote byte
	start := 0
	for i := 0; i < len(line); i++ {
		c := line[i]
		switch {
		case quote != 0 && c == '\\' && i+1 < len(line):
			i++
		case quote != 0 && c == quote:
			quote = 0
		case quote == 0 && (c == '"' || c == '\''):
			quote = c
		case quote == 0 && c == ';':
			if s := strings.TrimSpace(line[start:i]); s != "" {
				out = append(out, s)
			}
			start = i + 1
		}
	}
	if s := strings.TrimSpace(line[start:]); s != "" {
		out = append(out, s)
	}
	return out
}
