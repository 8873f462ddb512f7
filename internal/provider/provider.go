package provider

import "context"

// PriceInfo is the normalized per-symbol snapshot returned by a quote-data
// provider. Both price fields are optional; upstreams populate whichever
// they carry for the instrument.
type PriceInfo struct {
	CurrentPrice       *float64
	RegularMarketPrice *float64
}

// ResolvePrice returns the first usable price field, preferring the live
// trading price over the regular-market price. ok is false when neither
// field is present.
func (p *PriceInfo) ResolvePrice() (price float64, ok bool) {
	if p == nil {
		return 0, false
	}
	if p.CurrentPrice != nil {
		return *p.CurrentPrice, true
	}
	if p.RegularMarketPrice != nil {
		return *p.RegularMarketPrice, true
	}
	return 0, false
}

// Provider is a quote-data source queried once per inbound request.
type Provider interface {
	Name() string
	Lookup(ctx context.Context, symbol string) (*PriceInfo, error)
}
