package corpus

import (
	"regexp"
	"strings"

	"github.com/heartmarshall/wordroots/internal/domain"
)

// rootHeader matches "(ROOT): MEANING" at the start of a block.
var rootHeader = regexp.MustCompile(`^\(([^)]+)\):\s*(.*)`)

// RootBlock is the parsed content of one {...} block.
type RootBlock struct {
	Root    string
	Meaning string
	Derived []domain.DerivedWord
}

// ParseRootBlock parses the inner lines of a root-derivation block.
// When the first line is not of the form "(ROOT): MEANING" the whole line
// becomes the root and the meaning is empty. Every later non-empty line is
// a derived word of that root. ok is false for an empty block.
func ParseRootBlock(lines []string) (block RootBlock, ok bool) {
	if len(lines) == 0 {
		return RootBlock{}, false
	}

	if m := rootHeader.FindStringSubmatch(lines[0]); m != nil {
		block.Root = m[1]
		block.Meaning = strings.TrimSpace(m[2])
	} else {
		block.Root = lines[0]
	}

	for _, w := range lines[1:] {
		if w == "" {
			continue
		}
		block.Derived = append(block.Derived, domain.DerivedWord{Word: w, Root: block.Root})
	}

	return block, true
}
