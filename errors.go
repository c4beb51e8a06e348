// SPDX-License-Identifier: EPL-2.0

package sampletrim

import "errors"

var (
	ErrUnsupportedFormat = errors.New("unsupported audio file format")
	ErrNoFiles           = errors.New("no supported audio files found")
	ErrNotEnoughNotes    = errors.New("not enough MIDI notes for the files in the directory")
)
