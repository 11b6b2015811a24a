// Package reader loads the whole source file for file-mode and yields stdin lines one by one for pipe-mode
package reader

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"iter"
	"os"
	"strings"
	"unicode/utf8"
)

var (
	ErrFileUnreadable = errors.New("file is unreadable")
	ErrInvalidUTF8    = errors.New("stream did not contain valid UTF-8")
)

// ReadFile returns the full contents of fileName as a string.
func ReadFile(fileName string) (string, error) {
	// проверяем открывается ли файл
	info, err := os.Stat(fileName)
	if err != nil {
		return "", fmt.Errorf("%w: %q: %w", ErrFileUnreadable, fileName, err)
	}
	// проверяем не папка ли это
	if info.IsDir() {
		return "", fmt.Errorf("%w: %q is a directory", ErrFileUnreadable, fileName)
	}

	raw, err := os.ReadFile(fileName)
	if err != nil {
		return "", fmt.Errorf("%w: %q: %w", ErrFileUnreadable, fileName, err)
	}
	if !utf8.Valid(raw) {
		return "", fmt.Errorf("%w: %q: %w", ErrFileUnreadable, fileName, ErrInvalidUTF8)
	}

	return string(raw), nil
}

// Lines yields lines of r without their terminators ("\n" or "\r\n").
// A line that is not valid UTF-8 is yielded as an error and iteration goes on with the next one;
// any other read error is yielded once and ends the sequence.
func Lines(r io.Reader) iter.Seq2[string, error] {
	return func(yield func(string, error) bool) {
		br := bufio.NewReader(r)
		for {
			line, err := br.ReadString('\n')
			if err != nil && !errors.Is(err, io.EOF) {
				yield("", err)
				return
			}
			if line == "" && err != nil { // EOF без данных
				return
			}

			if strings.HasSuffix(line, "\n") {
				line = strings.TrimSuffix(line[:len(line)-1], "\r")
			}

			var ok bool
			if utf8.ValidString(line) {
				ok = yield(line, nil)
			} else {
				ok = yield("", ErrInvalidUTF8)
			}
			if !ok || err != nil {
				return
			}
		}
	}
}
