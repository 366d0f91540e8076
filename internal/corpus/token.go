package corpus

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// TokenKind classifies a raw token of an anchor line.
type TokenKind int

const (
	// TokenWord is a bare word: any run of non-space, non-semicolon characters.
	TokenWord TokenKind = iota
	// TokenSynonym is a <...> marker. Its text may contain spaces.
	TokenSynonym
	// TokenAntonym is a !word marker.
	TokenAntonym
	// TokenSeparator is a literal ';' closing a meaning group.
	TokenSeparator
)

func (k TokenKind) String() string {
	switch k {
	case TokenSynonym:
		return "synonym"
	case TokenAntonym:
		return "antonym"
	case TokenSeparator:
		return "separator"
	default:
		return "word"
	}
}

// Token is one classified fragment of an anchor line. Text is the verbatim
// lexeme including any marker characters.
type Token struct {
	Kind TokenKind
	Text string
}

// Value returns the token text with its marker characters removed.
func (t Token) Value() string {
	switch t.Kind {
	case TokenSynonym:
		return t.Text[1 : len(t.Text)-1]
	case TokenAntonym:
		return t.Text[1:]
	default:
		return t.Text
	}
}

// Tokenize splits an anchor line into classified tokens. It never fails:
// an unterminated '<' or a lone '!' degrades to a bare word.
func Tokenize(line string) []Token {
	var tokens []Token
	for i := 0; i < len(line); {
		r, size := utf8.DecodeRuneInString(line[i:])
		switch {
		case unicode.IsSpace(r):
			i += size
			continue
		case r == ';':
			tokens = append(tokens, Token{Kind: TokenSeparator, Text: ";"})
			i += size
			continue
		case r == '<':
			// '<' needs at least one character before the closing '>'.
			if end := strings.IndexByte(line[i+1:], '>'); end > 0 {
				n := end + 2
				tokens = append(tokens, Token{Kind: TokenSynonym, Text: line[i : i+n]})
				i += n
				continue
			}
		case r == '!':
			if n := wordLen(line[i+1:]); n > 0 {
				tokens = append(tokens, Token{Kind: TokenAntonym, Text: line[i : i+1+n]})
				i += 1 + n
				continue
			}
		}

		n := wordLen(line[i:])
		tokens = append(tokens, Token{Kind: TokenWord, Text: line[i : i+n]})
		i += n
	}
	return tokens
}

// wordLen returns the byte length of the leading run of non-space,
// non-semicolon characters in s.
func wordLen(s string) int {
	for i, r := range s {
		if r == ';' || unicode.IsSpace(r) {
			return i
		}
	}
	return len(s)
}
