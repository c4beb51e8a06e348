// SPDX-License-Identifier: EPL-2.0

package pcm

import "errors"

var (
	ErrUnsupportedDepth = errors.New("unsupported bit depth")
)
