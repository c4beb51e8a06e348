package aiff

import "errors"

var (
	ErrNotAiffFile      = errors.New("not an AIFF file")
	Err8BitNotSupported = errors.New("8-bit AIFF is not supported")
)
