package aiff

import "errors"

var (
	// ErrNotAiffFile indicates the data is not a valid AIFF stream
	ErrNotAiffFile = errors.New("not an AIFF file")

	// ErrUnsupportedAiffLayout indicates an unsupported AIFF layout
	ErrUnsupportedAiffLayout = errors.New("unsupported AIFF layout")
)
