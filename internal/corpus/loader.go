// Package corpus parses a plain-text vocabulary corpus into groups and
// builds the anchor and root indices queried by the rest of the application.
// Pure functions: corpus text in, index out. No I/O and no logging.
package corpus

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/heartmarshall/wordroots/internal/domain"
)

// Load parses the whole corpus in a single pass and returns the finished
// index. Groups are separated by one or more blank lines. Parsing never
// fails: malformed fragments fall back to plain words or are skipped.
func Load(text string) *Index {
	idx := newIndex()

	for _, lines := range SplitGroups(text) {
		idx.assemble(lines)
	}

	idx.Stats.Anchors = len(idx.Anchors)
	idx.Stats.Roots = len(idx.Roots)
	idx.LoadedAt = time.Now()

	return idx
}

// SplitGroups splits corpus text into groups of non-blank lines. A line
// that is empty or whitespace-only separates groups and is dropped.
func SplitGroups(text string) [][]string {
	var (
		groups  [][]string
		current []string
	)

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSuffix(line, "\r")
		if strings.TrimSpace(line) == "" {
			if len(current) > 0 {
				groups = append(groups, current)
				current = nil
			}
			continue
		}
		current = append(current, line)
	}
	if len(current) > 0 {
		groups = append(groups, current)
	}

	return groups
}

// rootContribution is one word appended to the root index.
type rootContribution struct {
	root string
	word string
}

// assemble builds a Group from the lines of one group text and publishes
// it into the index. Groups without an anchor are counted and dropped.
func (idx *Index) assemble(lines []string) {
	anchorLine := ParseAnchorLine(Tokenize(lines[0]))
	if anchorLine.Anchor == "" {
		idx.Stats.Skipped++
		return
	}

	blocks := ScanBlocks(lines[1:])

	group := &domain.Group{
		Anchor:   anchorLine.Anchor,
		Synonyms: anchorLine.Synonyms,
		Antonyms: anchorLine.Antonyms,
		Meanings: anchorLine.Meanings,
		Contexts: blocks.Contexts,
	}

	var contributions []rootContribution
	for _, raw := range blocks.Roots {
		block, ok := ParseRootBlock(raw)
		if !ok {
			continue
		}
		group.Roots = append(group.Roots, domain.RootRef{Root: block.Root, Meaning: block.Meaning})
		group.Derived = append(group.Derived, block.Derived...)

		contributions = append(contributions, rootContribution{root: block.Root, word: group.Anchor})
		for _, d := range block.Derived {
			if d.Root != "" {
				contributions = append(contributions, rootContribution{root: d.Root, word: d.Word})
			}
		}
	}

	idx.publish(group, contributions)
}

// publish stores a finished group. The anchor entry is overwritten by a
// later group with the same anchor; root contributions are append-only.
func (idx *Index) publish(group *domain.Group, contributions []rootContribution) {
	if _, exists := idx.Anchors[group.Anchor]; exists {
		idx.Stats.Collisions++
	}
	idx.Anchors[group.Anchor] = group
	idx.Groups = append(idx.Groups, group)

	for _, c := range contributions {
		idx.Roots[c.root] = append(idx.Roots[c.root], c.word)
	}

	idx.Stats.Groups++
	idx.Stats.RootRefs += len(group.Roots)
	idx.Stats.Derived += len(group.Derived)
	idx.Stats.Contexts += len(group.Contexts)
}

func newIndex() *Index {
	return &Index{
		ID:      uuid.New(),
		Anchors: make(AnchorIndex),
		Roots:   make(RootIndex),
	}
}
