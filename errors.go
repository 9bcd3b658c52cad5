package lzarena

import "errors"

var (
	// ErrClosed is returned when allocating from an arena after Close.
	ErrClosed = errors.New("lzarena: arena is closed")

	// ErrUnknownBackend is returned by NewSource (and therefore New) when
	// the backend selector matches no built-in acquisition strategy.
	ErrUnknownBackend = errors.New("lzarena: unknown backend")

	// ErrInvalidSize is returned by the built-in page sources when a
	// non-positive buffer size is requested.
	ErrInvalidSize = errors.New("lzarena: invalid buffer size")
)
