package service

import "errors"

// Sentinel kinds for service errors.
var (
	ErrUnknownDataset = errors.New("unknown dataset")
)
