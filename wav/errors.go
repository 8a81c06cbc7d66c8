package wav

import "errors"

var (
	// ErrOutOfRange is returned when a quantum has no buffer, is bound to a
	// different buffer than the first quantum, or covers frames outside its
	// buffer.
	ErrOutOfRange = errors.New("wav: out of range")
	// ErrNoQuanta is returned when there is nothing to render.
	ErrNoQuanta = errors.New("wav: no quanta")
	// ErrTooLarge is returned when the data chunk would not fit its 32-bit
	// size field.
	ErrTooLarge = errors.New("wav: data exceeds 4 GiB")
	// ErrUnsupportedFormat is returned by Decode for streams that are not
	// integer PCM with 16 bits per sample.
	ErrUnsupportedFormat = errors.New("wav: unsupported format")
	// ErrMalformed is returned by Decode for truncated or inconsistent streams.
	ErrMalformed = errors.New("wav: malformed stream")
)
