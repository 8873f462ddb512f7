package quote

import "errors"

// ErrPriceUnavailable reports that the provider answered for a symbol but
// carried no usable price field. Handlers map it to a 404; every other
// lookup failure is an internal failure.
var ErrPriceUnavailable = errors.New("price unavailable")
