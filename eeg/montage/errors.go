package montage

import "errors"

var (
	// ErrChannelCount indicates names or an ignore mask whose length
	// differs from the number of matrix rows.
	ErrChannelCount = errors.New("montage: channel count mismatch")
	// ErrReferenceIndex indicates a reference index outside [0, channels).
	ErrReferenceIndex = errors.New("montage: reference index out of range")
	// ErrIgnoreIndex indicates an ignore index outside [0, channels).
	ErrIgnoreIndex = errors.New("montage: ignore index out of range")
	// ErrNilMatrix indicates a nil matrix argument.
	ErrNilMatrix = errors.New("montage: nil matrix")
)
