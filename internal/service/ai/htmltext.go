package ai

import (
	"strings"

	"golang.org/x/net/html"
)

// HTMLToText converts HTML content to plain text.
// It extracts text content while preserving paragraph structure.
func HTMLToText(content string) string {
	doc, err := html.Parse(strings.NewReader(content))
	if err != nil {
		// Fallback: return content as-is if parsing fails
		return content
	}

	var buf strings.Builder
	extractText(doc, &buf)

	return strings.TrimSpace(buf.String())
}

// ToPlainText reduces rich accomplishment text to a single-spaced line.
// Tags are stripped, non-breaking spaces removed, and all runs of
// whitespace collapsed to one space.
func ToPlainText(content string) string {
	text := HTMLToText(content)
	text = strings.ReplaceAll(text, "\u00a0", " ")
	return strings.Join(strings.Fields(text), " ")
}

// extractText recursively extracts text from HTML nodes.
func extractText(n *html.Node, buf *strings.Builder) {
	if n == nil {
		return
	}

	// Skip non-content elements
	if n.Type == html.ElementNode {
		switch n.Data {
		case "script", "style", "noscript", "head", "meta", "link":
			return
		case "br":
			buf.WriteString("\n")
			return
		case "p", "div", "h1", "h2", "h3", "h4", "h5", "h6",
			"li", "tr", "blockquote", "section", "article":
			if buf.Len() > 0 {
				buf.WriteString("\n")
			}
		}
	}

	if n.Type == html.TextNode {
		text := strings.TrimSpace(n.Data)
		if text != "" {
			if buf.Len() > 0 && !strings.HasSuffix(buf.String(), "\n") {
				buf.WriteString(" ")
			}
			buf.WriteString(text)
		}
	}

	for c := n.FirstChild; c != nil; c = c.NextSibling {
		extractText(c, buf)
	}

	// Add newline after block elements
	if n.Type == html.ElementNode {
		switch n.Data {
		case "p", "div", "h1", "h2", "h3", "h4", "h5", "h6",
			"li", "tr", "blockquote", "section", "article":
			buf.WriteString("\n")
		}
	}
}
