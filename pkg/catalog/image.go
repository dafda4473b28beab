package catalog

import (
	"fmt"
	"regexp"
)

// Known CDN locations for product photos embedded in description markup.
// Ordered: newer cabinet paths first.
var imageURLPatterns = []*regexp.Regexp{
	regexp.MustCompile(`https://image\.rakuten\.co\.jp/alpacapc/cabinet/item_new2?/[^"]+\.jpg`),
	regexp.MustCompile(`https://image\.rakuten\.co\.jp/alpacapc/cabinet/[^"]+\.jpg`),
}

// ExtractImageURL pulls the first product photo URL out of raw description
// markup. When nothing matches it synthesizes the conventional cabinet URL
// from the item code, and gives up with "" only when there is no code either.
func ExtractImageURL(description, itemCode string) string {
	for _, pattern := range imageURLPatterns {
		if match := pattern.FindString(description); match != "" {
			return match
		}
	}
	if itemCode != "" {
		return fmt.Sprintf("https://image.rakuten.co.jp/alpacapc/cabinet/item_new/%s.jpg", itemCode)
	}
	return ""
}
