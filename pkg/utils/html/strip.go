// ABOUTME: Plain-text extraction from HTML fragments
// ABOUTME: Used to clean titles and bylines pulled out of imported pages

package html

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// StripHTML returns the visible text of fragment with entities decoded and
// whitespace collapsed. Script and style contents are dropped.
func StripHTML(fragment string) string {
	if !strings.Contains(fragment, "<") {
		return collapse(html.UnescapeString(fragment))
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(fragment))
	if err != nil {
		return collapse(fragment)
	}
	doc.Find("script, style").Remove()
	return collapse(doc.Text())
}

func collapse(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
