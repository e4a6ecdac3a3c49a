package rolling

import (
	"time"
	"unicode/utf8"
)

// FilenameStrategy names the log file that is active at a given instant.
type FilenameStrategy interface {
	Filename(policy RotationPolicy, now time.Time) string
}

var (
	_ FilenameStrategy = TemplatedPath("")
	_ FilenameStrategy = CustomNamer(nil)
)

// TemplatedPath is a base filename that the rotation policy stamps with the
// date, e.g. TemplatedPath("app.log") becomes "app.log.2024-01-01" daily.
type TemplatedPath string

// Filename implements FilenameStrategy.
func (p TemplatedPath) Filename(policy RotationPolicy, now time.Time) string {
	return policy.StampName(string(p), now)
}

// CustomNamer computes the filename itself. The rotation policy still
// decides when a rollover happens, so naming and timing are independent:
// the namer is only asked for a new name at rollover time.
type CustomNamer func(now time.Time) string

// Filename implements FilenameStrategy. policy is ignored.
func (fn CustomNamer) Filename(_ RotationPolicy, now time.Time) string {
	return fn(now)
}

func validateStrategy(strategy FilenameStrategy) error {
	switch s := strategy.(type) {
	case nil:
		return ErrNilStrategy
	case TemplatedPath:
		if !utf8.ValidString(string(s)) {
			return ErrInvalidFilename
		}
	case CustomNamer:
		if s == nil {
			return ErrNilNamer
		}
	}
	return nil
}
