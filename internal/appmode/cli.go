// Package appmode picks between pipe-mode and file-mode for the CLI and runs the search node
package appmode

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/UnendingLoop/minigrep/internal/highlighter"
	"github.com/UnendingLoop/minigrep/internal/model"
	"github.com/UnendingLoop/minigrep/internal/parser"
	"github.com/UnendingLoop/minigrep/internal/processor"
	"github.com/UnendingLoop/minigrep/internal/reader"
	"github.com/mattn/go-isatty"
)

const resultsHeader = "Result/s: "

// Invocation - все, что CLI получает из окружения процесса, собранное один раз в main
type Invocation struct {
	Args      []string
	LookupEnv parser.LookupEnv
	Mode      model.InputMode
	Stdin     io.Reader
	Stdout    io.Writer
	Stderr    io.Writer
}

// DetectMode returns ModeFile when f is a terminal and ModePipe when it is piped or redirected.
func DetectMode(f *os.File) model.InputMode {
	fd := f.Fd()
	if isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd) {
		return model.ModeFile
	}
	return model.ModePipe
}

// Run executes one invocation and returns the process exit status.
func Run(ctx context.Context, inv Invocation) int {
	switch inv.Mode {
	case model.ModePipe:
		query, err := parser.QueryFromArgs(inv.Args)
		if err != nil {
			fmt.Fprintf(inv.Stderr, "Problem parsing arguments: %v\n", err)
			return 1
		}
		err = RunPipe(ctx, query, inv.Stdin, inv.Stdout, inv.Stderr)
		switch {
		case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
			return 0 // остановлено вызывающей стороной, это не ошибка поиска
		case err != nil:
			fmt.Fprintf(inv.Stderr, "Application error: %v\n", err)
			return 1
		}
		return 0
	default:
		cfg, err := parser.BuildConfig(inv.Args, inv.LookupEnv)
		if err != nil {
			fmt.Fprintf(inv.Stderr, "Problem parsing arguments: %v\n", err)
			return 1
		}
		if _, err := RunFile(cfg, inv.Stdout); err != nil {
			fmt.Fprintf(inv.Stderr, "Application error: %v\n", err)
			return 1
		}
		return 0
	}
}

// RunPipe highlights query in every matching line of in until the stream ends.
// Matching is case-sensitive whatever IGNORE_CASE says.
func RunPipe(ctx context.Context, query string, in io.Reader, out, errOut io.Writer) error {
	cfg := model.Config{Query: query}
	_, err := highlighter.New(out, errOut).Run(ctx, reader.Lines(in), cfg)
	return err
}

// RunFile searches the whole file at cfg.SourcePath, prints the header and the matching lines
// indented with a tab, and returns the raw file contents.
func RunFile(cfg model.Config, out io.Writer) (string, error) {
	contents, err := reader.ReadFile(cfg.SourcePath)
	if err != nil {
		return "", err
	}

	results := processor.SearchLines(cfg.Query, contents, cfg.IgnoreCase)

	if _, err := fmt.Fprintln(out, resultsHeader); err != nil {
		return contents, err
	}
	for _, line := range results {
		if _, err := fmt.Fprintf(out, "\t%s\n", line); err != nil {
			return contents, err
		}
	}
	return contents, nil
}
