package sampling

import "errors"

// Sentinel errors returned by the checked access and construction paths.
// All are wrapped with the offending values via fmt.Errorf; match with
// errors.Is.
var (
	// ErrInvalidFormat reports a channel count outside {1, 3} at
	// construction.
	ErrInvalidFormat = errors.New("wrong image format")

	// ErrInvalidDimension reports a Size query outside {0, 1, 2}.
	ErrInvalidDimension = errors.New("invalid dimension")

	// ErrInvalidChannel reports a channel index outside [0, channels-1]
	// in checked continuous access.
	ErrInvalidChannel = errors.New("invalid channel")

	// ErrInvalidCoordinate reports a continuous coordinate outside
	// [0, width-1] x [0, height-1] in bilinear access.
	ErrInvalidCoordinate = errors.New("invalid coordinate")
)
