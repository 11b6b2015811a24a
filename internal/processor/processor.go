// Package processor filters text contents line by line and serves search requests coming from transport-layer
package processor

import (
	"context"
	"strings"

	"github.com/UnendingLoop/minigrep/internal/matcher"
	"github.com/UnendingLoop/minigrep/internal/model"
	"github.com/cespare/xxhash/v2"
	"github.com/docker/distribution/uuid"
)

// Search returns, in original order, the lines of contents containing query.
func Search(query, contents string) []string {
	return SearchLines(query, contents, false)
}

// SearchCaseInsensitive is Search with both query and lines lower-cased before comparing.
func SearchCaseInsensitive(query, contents string) []string {
	return SearchLines(query, contents, true)
}

// SearchLines returns every line of contents for which matcher.FindMatch is true.
// The returned lines are substrings of contents, terminators are not included.
func SearchLines(query, contents string, ignoreCase bool) []string {
	result := []string{}
	for _, line := range SplitLines(contents) {
		if matcher.FindMatch(query, line, ignoreCase) {
			result = append(result, line)
		}
	}
	return result
}

// SplitLines splits contents on "\n". A "\r" right before the terminator is dropped as well,
// the final terminator does not produce an extra empty line.
func SplitLines(contents string) []string {
	if contents == "" {
		return []string{}
	}

	lines := strings.Split(strings.TrimSuffix(contents, "\n"), "\n")
	terminated := strings.HasSuffix(contents, "\n")
	for i := range lines {
		if i == len(lines)-1 && !terminated {
			break
		}
		lines[i] = strings.TrimSuffix(lines[i], "\r")
	}
	return lines
}

type Processor struct{}

// ProcessInput runs SearchLines for the request and attaches the hash of matched lines.
// Cancelled context gives an empty result.
func (p Processor) ProcessInput(ctx context.Context, req *model.SearchRequest) *model.SearchResult {
	result := model.SearchResult{
		RequestID: req.RequestID,
		Matches:   []string{},
	}
	if result.RequestID == "" {
		result.RequestID = uuid.Generate().String()
	}

	for _, line := range SplitLines(req.Contents) {
		select {
		case <-ctx.Done():
			result.Matches = []string{}
			result.HashSumm = hasher(ctx, result.Matches)
			return &result
		default:
			if matcher.FindMatch(req.Query, line, req.IgnoreCase) {
				result.Matches = append(result.Matches, line)
			}
		}
	}

	result.Count = len(result.Matches)
	result.HashSumm = hasher(ctx, result.Matches)

	return &result
}

func hasher(ctx context.Context, input []string) uint64 {
	hs := xxhash.New()
	for _, s := range input {
		select {
		case <-ctx.Done():
			return 0
		default:
			_, _ = hs.WriteString(s)
		}
	}
	return hs.Sum64()
}
