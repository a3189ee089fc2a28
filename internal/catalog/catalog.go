// Package catalog provides the ordered option lists offered by the tag selector.
package catalog

import "errors"

// ErrEmptyCatalog is returned when a source yields no options.
var ErrEmptyCatalog = errors.New("catalog has no options")

// Catalog is an immutable, ordered list of option strings.
// Duplicates are kept as given.
type Catalog struct {
	options []string
	index   map[string]struct{}
}

// New creates a Catalog from a copy of options.
func New(options []string) Catalog {
	c := Catalog{
		options: make([]string, len(options)),
		index:   make(map[string]struct{}, len(options)),
	}
	copy(c.options, options)
	for _, o := range options {
		c.index[o] = struct{}{}
	}
	return c
}

// Options returns a copy of the options in order.
func (c Catalog) Options() []string {
	out := make([]string, len(c.options))
	copy(out, c.options)
	return out
}

// Len returns the number of options.
func (c Catalog) Len() int {
	return len(c.options)
}

// At returns the option at position i.
func (c Catalog) At(i int) string {
	return c.options[i]
}

// Contains reports whether value is exactly one of the options.
func (c Catalog) Contains(value string) bool {
	_, ok := c.index[value]
	return ok
}

// Default returns the built-in chart type catalog.
func Default() Catalog {
	return New([]string{
		"Bar Chart", "Line Chart", "Pie Chart", "Radar Chart", "Doughnut Chart",
		"Polar Area Chart", "Bubble Chart", "Scatter Chart", "Heatmap Chart", "Treemap Chart",
		"Candlestick Chart", "Box Plot Chart", "Waterfall Chart", "Funnel Chart", "Sunburst Chart",
		"Gauge Chart", "Sankey Diagram", "Chord Diagram", "Word Cloud", "Parallel Coordinates",
	})
}
