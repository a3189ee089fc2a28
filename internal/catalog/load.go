package catalog

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"go.yaml.in/yaml/v3"
)

// document is the object form accepted by JSON and YAML catalogs.
type document struct {
	Options []string `json:"options" yaml:"options"`
}

// Load reads a catalog file. The format is chosen by extension:
// .json and .yaml/.yml hold a list or an {"options": [...]} object,
// .html/.htm are parsed with ParseHTML, anything else is one option per line.
func Load(path string) (Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Catalog{}, fmt.Errorf("read catalog: %w", err)
	}

	var options []string
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		options, err = parseJSON(data)
	case ".yaml", ".yml":
		options, err = parseYAML(data)
	case ".html", ".htm":
		options, err = ParseHTML(bytes.NewReader(data))
	default:
		options, err = ParseLines(bytes.NewReader(data))
	}
	if err != nil {
		return Catalog{}, fmt.Errorf("parse catalog %s: %w", path, err)
	}

	if len(options) == 0 {
		return Catalog{}, fmt.Errorf("%s: %w", path, ErrEmptyCatalog)
	}

	return New(options), nil
}

// LoadOrDefault loads path, or returns Default when path is empty.
func LoadOrDefault(path string) (Catalog, error) {
	if path == "" {
		return Default(), nil
	}
	return Load(path)
}

func parseJSON(data []byte) ([]string, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && trimmed[0] == '[' {
		var list []string
		if err := json.Unmarshal(trimmed, &list); err != nil {
			return nil, err
		}
		return cleanup(list), nil
	}

	var doc document
	if err := json.Unmarshal(trimmed, &doc); err != nil {
		return nil, err
	}
	return cleanup(doc.Options), nil
}

func parseYAML(data []byte) ([]string, error) {
	var node yaml.Node
	if err := yaml.Unmarshal(data, &node); err != nil {
		return nil, err
	}
	if len(node.Content) == 0 {
		return nil, nil
	}

	root := node.Content[0]
	if root.Kind == yaml.SequenceNode {
		var list []string
		if err := root.Decode(&list); err != nil {
			return nil, err
		}
		return cleanup(list), nil
	}

	var doc document
	if err := root.Decode(&doc); err != nil {
		return nil, err
	}
	return cleanup(doc.Options), nil
}

// ParseLines reads one option per line. Blank lines and lines starting
// with '#' are skipped.
func ParseLines(r io.Reader) ([]string, error) {
	var options []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		options = append(options, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return options, nil
}

// cleanup trims options and drops empty ones.
func cleanup(list []string) []string {
	out := make([]string, 0, len(list))
	for _, s := range list {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}
