package energy

import "errors"

// ErrInvalidInput marks a request that cannot be computed: an empty
// consumption series or an unknown energy source. Callers map it to a
// 400-class response.
var ErrInvalidInput = errors.New("invalid input")
