package api

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

// maxPathSymbolLen bounds the path-segment heuristic. Tickers longer than 5
// characters or carrying digits/dots (class shares) are only reachable via
// the query form.
const maxPathSymbolLen = 5

// extractSymbol resolves the ticker symbol from the request. The symbol
// query parameter wins; otherwise the final path segment is accepted when it
// looks like a ticker. Returns "" when neither form carries one.
func extractSymbol(c *fiber.Ctx) string {
	if s := c.Query("symbol"); s != "" {
		return s
	}
	return symbolFromPath(c.OriginalURL())
}

// symbolFromPath pulls a candidate symbol out of the last path segment of a
// raw request URL, stripping any trailing query string.
func symbolFromPath(rawURL string) string {
	parts := strings.Split(rawURL, "/")
	candidate := parts[len(parts)-1]
	if i := strings.IndexByte(candidate, '?'); i >= 0 {
		candidate = candidate[:i]
	}
	if candidate == "" || len(candidate) > maxPathSymbolLen || !isAlpha(candidate) {
		return ""
	}
	return candidate
}

func isAlpha(s string) bool {
	for i := 0; i < len(s); i++ {
		c := s[i]
		if (c < 'a' || c > 'z') && (c < 'A' || c > 'Z') {
			return false
		}
	}
	return true
}
