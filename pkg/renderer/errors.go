package renderer

import "errors"

var (
	ErrInvalidDimensions = errors.New("renderer: image dimensions must be positive")
	ErrInvalidSamples    = errors.New("renderer: samples per pixel must be positive")
	ErrNoCamera          = errors.New("renderer: no camera defined")
	ErrNoWorld           = errors.New("renderer: no world defined")
	ErrInterrupted       = errors.New("renderer: interrupted while rendering")
)
