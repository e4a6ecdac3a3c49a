package rolling

import (
	"fmt"
	"strings"
	"time"

	"github.com/lestrrat-go/strftime"
)

// RotationPolicy decides when an Appender rolls over and how a base
// filename is stamped with a date.
type RotationPolicy interface {
	// NextRollover returns the instant at or after which the next rollover
	// is due. Returning now itself means a rollover is due on every write.
	NextRollover(now time.Time) time.Time
	// StampName renders the filename active at now from base.
	StampName(base string, now time.Time) string
}

var (
	_ RotationPolicy = Never
	_ RotationPolicy = (*Interval)(nil)
)

// Rotation is a fixed calendar rotation period.
type Rotation int

// Supported rotation periods. The zero value never rotates.
const (
	Never Rotation = iota
	Minutely
	Hourly
	Daily
)

// maxTime is the rollover instant of Never. It is far enough in the future
// that no real clock reaches it.
var maxTime = time.Date(9999, time.December, 31, 23, 59, 59, 0, time.UTC)

var rotationPatterns = map[Rotation]*strftime.Strftime{
	Minutely: mustPattern("%Y-%m-%d-%H-%M"),
	Hourly:   mustPattern("%Y-%m-%d-%H"),
	Daily:    mustPattern("%Y-%m-%d"),
}

func mustPattern(pattern string) *strftime.Strftime {
	p, err := strftime.New(pattern)
	if err != nil {
		panic(fmt.Sprintf("rolling: invalid strftime pattern %q: %v", pattern, err))
	}
	return p
}

// NextRollover returns the start of the minute, hour or day following now,
// in now's location.
//
// Minutely and Hourly step from the start of the current wall-clock minute
// or hour in elapsed time, so the repeated hour of a DST fall-back gets its
// own rollover; both passes stamp the same name and share one file. Daily
// uses calendar days, which are 23 or 25 hours long across DST changes.
func (r Rotation) NextRollover(now time.Time) time.Time {
	_, minute, sec := now.Clock()
	intoMinute := time.Duration(sec)*time.Second + time.Duration(now.Nanosecond())

	switch r {
	case Minutely:
		return now.Add(-intoMinute).Add(time.Minute)
	case Hourly:
		return now.Add(-intoMinute - time.Duration(minute)*time.Minute).Add(time.Hour)
	case Daily:
		year, month, day := now.Date()
		return time.Date(year, month, day+1, 0, 0, 0, 0, now.Location())
	default:
		return maxTime
	}
}

// StampName joins base and the date of now with a dot, e.g.
// "app.log.2024-01-01-10" for Hourly. Never returns base unchanged.
func (r Rotation) StampName(base string, now time.Time) string {
	p, ok := rotationPatterns[r]
	if !ok {
		return base
	}
	return joinDate(base, p.FormatString(now))
}

func (r Rotation) String() string {
	switch r {
	case Never:
		return "never"
	case Minutely:
		return "minutely"
	case Hourly:
		return "hourly"
	case Daily:
		return "daily"
	default:
		return fmt.Sprintf("Rotation(%d)", int(r))
	}
}

// ParseRotation parses the names returned by Rotation.String, ignoring case.
func ParseRotation(s string) (Rotation, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "never":
		return Never, nil
	case "minutely":
		return Minutely, nil
	case "hourly":
		return Hourly, nil
	case "daily":
		return Daily, nil
	default:
		return Never, fmt.Errorf("%w: %q", ErrUnknownRotation, s)
	}
}

// Interval rotates every fixed duration, aligned to multiples of that
// duration on the local wall clock. Files are stamped with a strftime
// pattern rendered at the start of the interval.
type Interval struct {
	every   time.Duration
	pattern *strftime.Strftime
}

// NewInterval creates an Interval policy. The minimal interval unit is one
// second.
func NewInterval(every time.Duration, pattern string) (*Interval, error) {
	if every < time.Second {
		return nil, fmt.Errorf("%w: %s", ErrInvalidInterval, every)
	}
	p, err := strftime.New(pattern)
	if err != nil {
		return nil, fmt.Errorf("invalid strftime pattern: %w", err)
	}
	return &Interval{every: every, pattern: p}, nil
}

// NextRollover returns the end of the interval containing now.
func (iv *Interval) NextRollover(now time.Time) time.Time {
	return truncateLocal(now, iv.every).Add(iv.every)
}

// StampName joins base and the pattern rendered at the start of the
// interval containing now.
func (iv *Interval) StampName(base string, now time.Time) string {
	return joinDate(base, iv.pattern.FormatString(truncateLocal(now, iv.every)))
}

func joinDate(base, date string) string {
	if base == "" {
		return date
	}
	return base + "." + date
}
