package rolling

import "errors"

// Errors returned by this package.
var (
	// ErrClosed is returned by operations on a closed Appender.
	ErrClosed = errors.New("rolling: appender is closed")

	ErrNilStrategy = errors.New("rolling: nil filename strategy")
	ErrNilPolicy   = errors.New("rolling: nil rotation policy")
	ErrNilNamer    = errors.New("rolling: nil custom namer")

	// ErrInvalidFilename is returned when a templated path is not valid UTF-8.
	ErrInvalidFilename = errors.New("rolling: filename is not valid UTF-8")

	ErrInvalidInterval = errors.New("rolling: rotation interval must be at least one second")
	ErrUnknownRotation = errors.New("rolling: unknown rotation")
)
