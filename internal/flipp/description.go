package flipp

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// DescriptionText flattens an item's HTML description into plain text.
func DescriptionText(htmlStr string) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(htmlStr))
	if err != nil {
		return strings.TrimSpace(htmlStr)
	}

	var content []string
	doc.Find("h1, h2, p, li").Each(func(_ int, s *goquery.Selection) {
		if t := strings.TrimSpace(s.Text()); t != "" {
			content = append(content, t)
		}
	})

	if len(content) == 0 {
		return strings.TrimSpace(doc.Text())
	}
	return strings.Join(content, "\n")
}
