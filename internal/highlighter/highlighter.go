// Package highlighter filters a live sequence of lines and prints matching ones with the query emphasized
package highlighter

import (
	"context"
	"fmt"
	"io"
	"iter"
	"os"
	"strings"

	"github.com/UnendingLoop/minigrep/internal/matcher"
	"github.com/UnendingLoop/minigrep/internal/model"
	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

const lineErrPrefix = "Error reading line: "

type Highlighter struct {
	out       io.Writer
	errOut    io.Writer
	emphasize func(string) string
	errMark   func(string) string
}

// New returns a Highlighter wrapping matches in red bold and the line error prefix in red.
// Each printer is colored only if its own writer is a terminal and NO_COLOR is unset.
func New(out, errOut io.Writer) *Highlighter {
	match := colorFor(out, color.FgRed, color.Bold)
	prefix := colorFor(errOut, color.FgRed)
	return &Highlighter{
		out:       out,
		errOut:    errOut,
		emphasize: func(s string) string { return match.Sprint(s) },
		errMark:   func(s string) string { return prefix.Sprint(s) },
	}
}

func colorFor(w io.Writer, attrs ...color.Attribute) *color.Color {
	c := color.New(attrs...)
	if isTerminal(w) && os.Getenv("NO_COLOR") == "" && os.Getenv("TERM") != "dumb" {
		c.EnableColor()
	} else {
		c.DisableColor()
	}
	return c
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// NewWithMarker is New with a custom emphasis function, used for plain-text markers.
func NewWithMarker(out, errOut io.Writer, marker func(string) string) *Highlighter {
	return &Highlighter{
		out:       out,
		errOut:    errOut,
		emphasize: marker,
		errMark:   func(s string) string { return s },
	}
}

// Render wraps every literal occurrence of query in line. The search for occurrences is
// case-sensitive even if the line was selected by a case-insensitive match.
func Render(line, query string, marker func(string) string) string {
	if query == "" {
		return line
	}
	return strings.ReplaceAll(line, query, marker(query))
}

// Run reads lines until the sequence ends and writes each matching line to out as soon as it arrives.
// Line errors are reported to errOut and skipped. Returns the number of printed lines,
// or an error if out could not be written.
func (h *Highlighter) Run(ctx context.Context, lines iter.Seq2[string, error], cfg model.Config) (int, error) {
	printed := 0
	for line, err := range lines {
		select {
		case <-ctx.Done():
			return printed, ctx.Err()
		default:
		}

		if err != nil {
			fmt.Fprintf(h.errOut, "%s%v\n", h.errMark(lineErrPrefix), err)
			continue
		}
		if !matcher.FindMatch(cfg.Query, line, cfg.IgnoreCase) {
			continue
		}

		if _, err := fmt.Fprintln(h.out, Render(line, cfg.Query, h.emphasize)); err != nil {
			return printed, fmt.Errorf("failed to write highlighted line: %w", err)
		}
		printed++
	}
	return printed, nil
}
