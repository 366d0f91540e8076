package corpus

import "strings"

// AnchorLine is the parsed first line of a group.
type AnchorLine struct {
	Anchor   string
	Synonyms []string
	Antonyms []string
	Meanings []string
}

// ParseAnchorLine turns a token sequence into an anchor, its synonyms and
// antonyms, and the meaning groups delimited by ';'.
//
// The anchor seeds the first meaning group only. Antonyms never enter a
// meaning group. A separator closes the current group when it holds at
// least one word; separators seen before the anchor are ignored.
func ParseAnchorLine(tokens []Token) AnchorLine {
	var (
		line    AnchorLine
		current []string
		started bool
	)

	closeMeaning := func() {
		if len(current) == 0 {
			return
		}
		line.Meanings = append(line.Meanings, strings.TrimSpace(strings.Join(current, " ")))
		current = nil
	}

	for _, tok := range tokens {
		if tok.Kind == TokenSeparator {
			closeMeaning()
			continue
		}

		if !started {
			started = true
			line.Anchor = strings.Trim(tok.Text, "<>!")
			current = append(current, line.Anchor)
			continue
		}

		switch tok.Kind {
		case TokenAntonym:
			line.Antonyms = append(line.Antonyms, tok.Value())
		default:
			line.Synonyms = append(line.Synonyms, tok.Value())
			current = append(current, tok.Value())
		}
	}
	closeMeaning()

	return line
}
