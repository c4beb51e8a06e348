// SPDX-License-Identifier: EPL-2.0

package dsp

import "errors"

var (
	ErrNotMono        = errors.New("input buffers must be mono")
	ErrFormatMismatch = errors.New("input buffers must share sample rate and bit depth")
	ErrInvalidTempo   = errors.New("tempo and bars per slice must be positive")
)
