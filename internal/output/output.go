// Package output writes a finished tag selection.
package output

import (
	"encoding/json"
	"errors"
	"fmt"
	"html"
	"io"
	"strings"
)

// Format is an output encoding for a selection.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatHTML Format = "html"
)

// ErrUnknownFormat is returned by ParseFormat for unsupported names.
var ErrUnknownFormat = errors.New("unknown output format")

// ParseFormat converts a config or flag value into a Format.
// The empty string selects FormatText.
func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(s))) {
	case "", FormatText:
		return FormatText, nil
	case FormatJSON:
		return FormatJSON, nil
	case FormatHTML:
		return FormatHTML, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
}

// Write encodes tags to w in the given format.
func Write(w io.Writer, tags []string, format Format) error {
	switch format {
	case FormatText, "":
		return writeText(w, tags)
	case FormatJSON:
		return writeJSON(w, tags)
	case FormatHTML:
		_, err := io.WriteString(w, RenderHTML(tags))
		return err
	}
	return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
}

func writeText(w io.Writer, tags []string) error {
	for _, t := range tags {
		if _, err := fmt.Fprintln(w, t); err != nil {
			return err
		}
	}
	return nil
}

func writeJSON(w io.Writer, tags []string) error {
	if tags == nil {
		tags = []string{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(tags)
}

// RenderHTML renders tags as an HTML list.
func RenderHTML(tags []string) string {
	var b strings.Builder

	b.WriteString("<ul class=\"tags\">\n")
	for _, t := range tags {
		fmt.Fprintf(&b, "    <li>%s</li>\n", html.EscapeString(t))
	}
	b.WriteString("</ul>\n")

	return b.String()
}

// Clipboard returns the single-line form used when copying a selection.
func Clipboard(tags []string) string {
	return strings.Join(tags, ", ")
}
