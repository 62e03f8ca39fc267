// Package textutil reduces rich text pasted into admin forms to plain text.
package textutil

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

var spaceRX = regexp.MustCompile(`[ \t\f\v\x{00a0}]+`)

const blocks = "p,li,h1,h2,h3,h4,h5,h6,div,tr,blockquote,pre"

// PlainText strips markup from s, keeping one line per block element.
// Input without markup only has its whitespace tidied.
func PlainText(s string) string {
	if !strings.Contains(s, "<") || !strings.Contains(s, ">") {
		return tidy(s)
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(s))
	if err != nil {
		return tidy(s)
	}
	doc.Find("script,style,noscript").Remove()
	doc.Find("br").ReplaceWithHtml("\n")
	doc.Find(blocks).Each(func(_ int, sel *goquery.Selection) {
		sel.AppendHtml("\n")
	})
	return tidy(doc.Find("body").Text())
}

func tidy(s string) string {
	s = strings.ReplaceAll(s, "\r", "")
	var lines []string
	for _, l := range strings.Split(s, "\n") {
		l = strings.TrimSpace(spaceRX.ReplaceAllString(l, " "))
		if l != "" {
			lines = append(lines, l)
		}
	}
	return strings.Join(lines, "\n")
}
