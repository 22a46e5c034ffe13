package processing

import "errors"

var (
	ErrDatasetNotLoaded = errors.New("dataset not loaded")
	ErrInvalidDate      = errors.New("invalid date")
)
