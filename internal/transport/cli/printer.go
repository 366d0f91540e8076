// Package cli implements the interactive lookup loop and the plain-text
// presentation of lookup results.
package cli

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/heartmarshall/wordroots/internal/corpus"
	"github.com/heartmarshall/wordroots/internal/domain"
)

// Printer renders lookup results as text. Section labels are styled when
// out is a color terminal and plain otherwise.
type Printer struct {
	out   io.Writer
	label lipgloss.Style
	muted lipgloss.Style
}

// NewPrinter creates a Printer writing to out.
func NewPrinter(out io.Writer) *Printer {
	r := lipgloss.NewRenderer(out)
	return &Printer{
		out:   out,
		label: r.NewStyle().Bold(true).Foreground(lipgloss.Color("12")),
		muted: r.NewStyle().Faint(true),
	}
}

// Group prints a vocabulary group. Meanings are always printed; every
// other section is omitted when empty.
func (p *Printer) Group(g *domain.Group) {
	p.field("Anchor", g.Anchor)
	p.field("Meanings", strings.Join(g.Meanings, "; "))
	if len(g.Synonyms) > 0 {
		p.field("Synonyms", strings.Join(g.Synonyms, ", "))
	}
	if len(g.Antonyms) > 0 {
		p.field("Antonyms", strings.Join(g.Antonyms, ", "))
	}
	if len(g.Roots) > 0 {
		p.section("Roots")
		for _, r := range g.Roots {
			fmt.Fprintf(p.out, "  %s: %s\n", r.Root, r.Meaning)
		}
	}
	if len(g.Derived) > 0 {
		p.section("Derived words")
		for _, d := range g.Derived {
			fmt.Fprintf(p.out, "  %s %s\n", d.Word, p.muted.Render("(root: "+d.Root+")"))
		}
	}
	if len(g.Contexts) > 0 {
		p.section("Contexts")
		for _, c := range g.Contexts {
			fmt.Fprintf(p.out, "  %s\n", c)
		}
	}
}

// AnchorMiss reports an anchor absent from the index.
func (p *Printer) AnchorMiss(anchor string) {
	fmt.Fprintf(p.out, "No entry for %s\n", anchor)
}

// RootWords prints the words of a root.
func (p *Printer) RootWords(root string, words []string) {
	p.section(fmt.Sprintf("Words for root '%s'", root))
	for _, w := range words {
		fmt.Fprintf(p.out, "  %s\n", w)
	}
}

// RootMiss reports a root with no words.
func (p *Printer) RootMiss(root string) {
	fmt.Fprintf(p.out, "No words found for root %s\n", root)
}

// Stats prints the identity and load statistics of an index.
func (p *Printer) Stats(info corpus.Info) {
	p.field("Index", info.ID.String())
	p.field("Loaded", info.LoadedAt.Format(time.RFC3339))
	p.field("Groups", strconv.Itoa(info.Stats.Groups))
	p.field("Skipped", strconv.Itoa(info.Stats.Skipped))
	p.field("Anchors", strconv.Itoa(info.Stats.Anchors))
	p.field("Collisions", strconv.Itoa(info.Stats.Collisions))
	p.field("Roots", strconv.Itoa(info.Stats.Roots))
	p.field("Root references", strconv.Itoa(info.Stats.RootRefs))
	p.field("Derived words", strconv.Itoa(info.Stats.Derived))
	p.field("Contexts", strconv.Itoa(info.Stats.Contexts))
}

func (p *Printer) field(name, value string) {
	fmt.Fprintf(p.out, "%s %s\n", p.label.Render(name+":"), value)
}

func (p *Printer) section(name string) {
	fmt.Fprintln(p.out, p.label.Render(name+":"))
}
