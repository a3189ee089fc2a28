// Package match filters option lists against typed input.
package match

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/sahilm/fuzzy"
)

// Mode selects a matching strategy.
type Mode string

const (
	ModeSubstring Mode = "substring"
	ModeFuzzy     Mode = "fuzzy"
)

// ErrUnknownMode is returned by ParseMode for unsupported mode names.
var ErrUnknownMode = errors.New("unknown match mode")

// ParseMode converts a config or flag value into a Mode.
// The empty string selects ModeSubstring.
func ParseMode(s string) (Mode, error) {
	switch Mode(strings.ToLower(strings.TrimSpace(s))) {
	case "", ModeSubstring:
		return ModeSubstring, nil
	case ModeFuzzy:
		return ModeFuzzy, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownMode, s)
}

// Result is one option that matched a query.
type Result struct {
	Option         string
	Index          int   // position in the source option list
	MatchedIndexes []int // byte offsets of matched runes in Option
}

// Matcher finds the options that match a query.
// Results are returned in option-list order.
type Matcher interface {
	Match(options []string, query string) []Result
}

// For returns the Matcher for a mode.
func For(mode Mode) Matcher {
	if mode == ModeFuzzy {
		return Fuzzy{}
	}
	return Substring{}
}

// Filter returns the options matching query that are not excluded.
// It is a pure function of its inputs.
func Filter(m Matcher, options []string, query string, exclude func(string) bool) []Result {
	matches := m.Match(options, query)

	result := make([]Result, 0, len(matches))
	for _, r := range matches {
		if exclude != nil && exclude(r.Option) {
			continue
		}
		result = append(result, r)
	}
	return result
}

// all returns every option as an unhighlighted Result.
func all(options []string) []Result {
	results := make([]Result, len(options))
	for i, o := range options {
		results[i] = Result{Option: o, Index: i}
	}
	return results
}

// Substring matches options containing the query, ignoring case.
type Substring struct{}

// Match implements Matcher.
func (Substring) Match(options []string, query string) []Result {
	if query == "" {
		return all(options)
	}

	var results []Result
	for i, o := range options {
		if idx, ok := SubstringIndexes(o, query); ok {
			results = append(results, Result{Option: o, Index: i, MatchedIndexes: idx})
		}
	}
	return results
}

// SubstringIndexes reports whether option contains query case-insensitively,
// and the byte offsets of every rune covered by non-overlapping occurrences.
// Offsets are omitted when lowercasing changes the byte length of option.
func SubstringIndexes(option, query string) ([]int, bool) {
	lowerOpt := strings.ToLower(option)
	lowerQuery := strings.ToLower(query)

	if !strings.Contains(lowerOpt, lowerQuery) {
		return nil, false
	}
	if lowerQuery == "" || len(lowerOpt) != len(option) {
		return nil, true
	}

	var indexes []int
	pos := 0
	for {
		p := strings.Index(lowerOpt[pos:], lowerQuery)
		if p < 0 {
			break
		}
		start := pos + p
		end := start + len(lowerQuery)
		for i := range option[start:end] {
			indexes = append(indexes, start+i)
		}
		pos = end
	}
	return indexes, true
}

// Fuzzy matches options whose characters contain the query in order.
type Fuzzy struct{}

// Match implements Matcher.
func (Fuzzy) Match(options []string, query string) []Result {
	if query == "" {
		return all(options)
	}

	matches := fuzzy.Find(query, options)

	// fuzzy ranks by score; the dropdown keeps catalog order
	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Index < matches[j].Index
	})

	results := make([]Result, len(matches))
	for i, m := range matches {
		results[i] = Result{
			Option:         m.Str,
			Index:          m.Index,
			MatchedIndexes: m.MatchedIndexes,
		}
	}
	return results
}

// Options returns the option strings of results.
func Options(results []Result) []string {
	out := make([]string, len(results))
	for i, r := range results {
		out[i] = r.Option
	}
	return out
}
