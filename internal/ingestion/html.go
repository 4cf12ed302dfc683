package ingestion

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// ExtractHTMLText pulls the readable text out of an HTML document, dropping
// script, style, and chrome elements. Exported resume pages (LinkedIn saves,
// portfolio exports) decode through here.
func ExtractHTMLText(htmlContent string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(htmlContent))
	if err != nil {
		return "", fmt.Errorf("failed to parse HTML: %w", err)
	}

	doc.Find("script, style, noscript, nav, footer, iframe").Remove()

	body := doc.Find("body")
	if body.Length() == 0 {
		return doc.Text(), nil
	}

	// Visit block-level nodes so separate sections land on separate lines
	// even when the markup carries no whitespace between tags. Nodes that
	// contain other block nodes are skipped; their children are visited on
	// their own, which keeps nested markup from duplicating text.
	const blockSelector = "h1, h2, h3, h4, h5, h6, p, li, td, th, pre"
	var builder strings.Builder
	body.Find(blockSelector).Each(func(_ int, s *goquery.Selection) {
		if s.Find(blockSelector).Length() > 0 {
			return
		}
		text := strings.TrimSpace(s.Text())
		if text == "" {
			return
		}
		builder.WriteString(text)
		builder.WriteString("\n")
	})

	// Markup without any block structure still has to yield its text.
	if builder.Len() == 0 {
		return body.Text(), nil
	}
	return builder.String(), nil
}
