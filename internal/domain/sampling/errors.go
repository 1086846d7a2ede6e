package sampling

import "errors"

// Sentinel kinds for sampling errors.
var (
	ErrInvalidWeights = errors.New("invalid weight table")
)
