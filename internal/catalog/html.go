package catalog

import (
	"io"
	"strings"

	"golang.org/x/net/html"
)

// ParseHTML extracts options from an HTML document.
// Recognized sources, in document order:
//   - <option> elements (text, falling back to the value attribute)
//   - <li> elements (own text, nested lists are parsed separately)
//   - <dt><a> entries of Netscape bookmark exports (link title)
func ParseHTML(r io.Reader) ([]string, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, err
	}

	var options []string
	add := func(s string) {
		if s = strings.TrimSpace(s); s != "" {
			options = append(options, s)
		}
	}

	var parse func(*html.Node)
	parse = func(n *html.Node) {
		if n.Type == html.ElementNode {
			switch strings.ToLower(n.Data) {
			case "option":
				text := getTextContent(n)
				if text == "" {
					text = getAttr(n, "value")
				}
				add(text)
				return

			case "li":
				add(getOwnText(n))
				// Nested lists hold their own items
				for c := n.FirstChild; c != nil; c = c.NextSibling {
					if isList(c) {
						parse(c)
					}
				}
				return

			case "dt":
				for c := n.FirstChild; c != nil; c = c.NextSibling {
					if c.Type == html.ElementNode && strings.ToLower(c.Data) == "a" {
						add(getTextContent(c))
					} else {
						parse(c)
					}
				}
				return
			}
		}

		for c := n.FirstChild; c != nil; c = c.NextSibling {
			parse(c)
		}
	}

	parse(doc)
	return options, nil
}

func isList(n *html.Node) bool {
	if n.Type != html.ElementNode {
		return false
	}
	tag := strings.ToLower(n.Data)
	return tag == "ul" || tag == "ol"
}

// getTextContent returns the text content of a node.
func getTextContent(n *html.Node) string {
	var text strings.Builder
	var extract func(*html.Node)
	extract = func(n *html.Node) {
		if n.Type == html.TextNode {
			text.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			extract(c)
		}
	}
	extract(n)
	return strings.Join(strings.Fields(text.String()), " ")
}

// getOwnText returns the text of a node without descending into nested lists.
func getOwnText(n *html.Node) string {
	var parts []string
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if isList(c) {
			continue
		}
		if c.Type == html.TextNode {
			parts = append(parts, c.Data)
		} else {
			parts = append(parts, getTextContent(c))
		}
	}
	return strings.Join(strings.Fields(strings.Join(parts, " ")), " ")
}

// getAttr returns the value of an attribute, case-insensitive.
func getAttr(n *html.Node, key string) string {
	for _, attr := range n.Attr {
		if strings.EqualFold(attr.Key, key) {
			return attr.Val
		}
	}
	return ""
}
