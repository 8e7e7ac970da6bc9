package video

import "errors"

var (
	// ErrInvalidMatrix indicates the data is not a non-empty 2-D matrix.
	ErrInvalidMatrix = errors.New("video: data matrix must be a non-empty 2-D matrix")

	// ErrInvalidDuration indicates a duration that yields no finite positive frame rate.
	ErrInvalidDuration = errors.New("video: duration must be positive and finite")
)
