package engine

import "errors"

// ErrInvalidQuery marks a caller contract violation. Handlers map it to a
// 400-class response; everything else is an internal fault.
var ErrInvalidQuery = errors.New("invalid query")
