package corpus

import "strings"

// Blocks holds the bracketed sub-blocks found after an anchor line.
type Blocks struct {
	// Roots holds the trimmed inner lines of each non-empty {...} block.
	Roots [][]string
	// Contexts holds the inner lines of every [...] block with
	// surrounding double quotes removed.
	Contexts []string
}

type scanState int

const (
	outsideBlock scanState = iota
	inRootBlock
	inContextBlock
)

// ScanBlocks splits group lines into root-derivation and context blocks.
// A block opens on a line starting with '{' or '[' and closes on the next
// line starting with '}' or ']'. Blocks do not nest. Lines outside any
// block and blank lines are skipped. An unterminated block runs to the
// last line.
func ScanBlocks(lines []string) Blocks {
	var (
		blocks  Blocks
		state   = outsideBlock
		current []string
	)

	flushRoot := func() {
		if len(current) > 0 {
			blocks.Roots = append(blocks.Roots, current)
		}
		current = nil
	}

	for _, raw := range lines {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}

		switch state {
		case outsideBlock:
			switch {
			case strings.HasPrefix(line, "{"):
				state = inRootBlock
			case strings.HasPrefix(line, "["):
				state = inContextBlock
			}

		case inRootBlock:
			if strings.HasPrefix(line, "}") {
				flushRoot()
				state = outsideBlock
				continue
			}
			current = append(current, line)

		case inContextBlock:
			if strings.HasPrefix(line, "]") {
				state = outsideBlock
				continue
			}
			blocks.Contexts = append(blocks.Contexts, strings.Trim(line, `"`))
		}
	}

	if state == inRootBlock {
		flushRoot()
	}

	return blocks
}
