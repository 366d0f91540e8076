package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/heartmarshall/wordroots/internal/domain"
)

// Prompt is printed before every command.
const Prompt = "Enter 'a <word>' to query anchor, 'r <root>' to query root, or 'q' to quit: "

type lookupService interface {
	Anchor(ctx context.Context, anchor string) (*domain.Group, error)
	Root(ctx context.Context, root string) ([]string, error)
}

// Session is one interactive lookup loop.
type Session struct {
	svc     lookupService
	in      io.Reader
	out     io.Writer
	printer *Printer
}

// NewSession creates a session reading commands from in and writing
// results to out.
func NewSession(svc lookupService, in io.Reader, out io.Writer) *Session {
	return &Session{svc: svc, in: in, out: out, printer: NewPrinter(out)}
}

// Run reads commands until 'q', end of input or context cancellation.
func (s *Session) Run(ctx context.Context) error {
	sc := bufio.NewScanner(s.in)
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		fmt.Fprint(s.out, Prompt)
		if !sc.Scan() {
			fmt.Fprintln(s.out)
			return sc.Err()
		}

		if quit := s.Execute(ctx, sc.Text()); quit {
			return nil
		}
	}
}

// Execute runs a single command line and reports whether it was 'q'.
//
//	a <word>   look up an anchor
//	r <root>   look up a root
//	q          quit
func (s *Session) Execute(ctx context.Context, line string) (quit bool) {
	cmd := strings.TrimSpace(line)
	switch {
	case cmd == "q":
		return true
	case strings.HasPrefix(cmd, "a "):
		s.LookupAnchor(ctx, strings.TrimSpace(cmd[2:]))
	case strings.HasPrefix(cmd, "r "):
		s.LookupRoot(ctx, strings.TrimSpace(cmd[2:]))
	default:
		fmt.Fprintln(s.out, "Unknown command.")
	}
	return false
}

// LookupAnchor prints the group of anchor and reports whether it exists.
func (s *Session) LookupAnchor(ctx context.Context, anchor string) bool {
	group, err := s.svc.Anchor(ctx, anchor)
	switch {
	case err == nil:
		s.printer.Group(group)
		return true
	case errors.Is(err, domain.ErrNotFound):
		s.printer.AnchorMiss(anchor)
	default:
		fmt.Fprintf(s.out, "Error: %v\n", err)
	}
	return false
}

// LookupRoot prints the words of root and reports whether any exist.
func (s *Session) LookupRoot(ctx context.Context, root string) bool {
	words, err := s.svc.Root(ctx, root)
	switch {
	case err == nil:
		s.printer.RootWords(root, words)
		return true
	case errors.Is(err, domain.ErrNotFound):
		s.printer.RootMiss(root)
	default:
		fmt.Fprintf(s.out, "Error: %v\n", err)
	}
	return false
}
