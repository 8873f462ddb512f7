package api

import "fmt"

// Error bodies follow the legacy stock_quote contract exactly; clients match
// on these strings.
const (
	errMissingSymbol = "Stock symbol parameter is required. Use ?symbol=AAPL or /stock_quote/AAPL"
	errInternal      = "Internal server error occurred"
)

func errPriceNotFound(symbol string) string {
	return fmt.Sprintf("Could not retrieve price for symbol %s", symbol)
}
