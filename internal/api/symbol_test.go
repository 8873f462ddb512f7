package api

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSymbolFromPath(t *testing.T) {
	cases := []struct {
		name   string
		rawURL string
		want   string
	}{
		{"plain symbol", "/api/stock_quote/AAPL", "AAPL"},
		{"lowercase passes through", "/api/stock_quote/msft", "msft"},
		{"single letter", "/api/stock_quote/F", "F"},
		{"five letters", "/api/stock_quote/GOOGL", "GOOGL"},
		{"query string stripped", "/api/stock_quote/AAPL?foo=bar", "AAPL"},
		{"too long", "/api/stock_quote/GOOGLE", ""},
		{"digits rejected", "/api/stock_quote/BRKB1", ""},
		{"dot rejected", "/api/stock_quote/BRK.B", ""},
		{"trailing slash", "/api/stock_quote/", ""},
		{"route segment itself", "/api/stock_quote", ""},
		{"bare query string", "/api/stock_quote/?symbol=", ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, symbolFromPath(tc.rawURL))
		})
	}
}

func TestIsAlpha(t *testing.T) {
	assert.True(t, isAlpha("AAPL"))
	assert.True(t, isAlpha("msft"))
	assert.False(t, isAlpha("A1"))
	assert.False(t, isAlpha("BRK.B"))
	assert.False(t, isAlpha("stock_quote"))
}
