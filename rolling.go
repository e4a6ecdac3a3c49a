// Package rolling provides an io.WriteCloser that appends to a log file and
// transparently switches to a new file once a rotation boundary is crossed,
// naming each file after the time of the rollover.
//
// Rollover is checked on every Write and never happens in the background:
//
//	a, err := rolling.NewHourly("/var/log/app", "app.log")
//	if err != nil {
//		return err
//	}
//	defer a.Close()
//	log.SetOutput(a)
//
// writes to /var/log/app/app.log.2024-01-01-10 until 11:00, then to
// /var/log/app/app.log.2024-01-01-11 and so on. Old files are never removed
// or compressed.
//
// An Appender is meant to have one writer at a time. Use NewLocked to share
// it between goroutines.
package rolling

// NewMinutely creates an Appender writing to dir/prefix.YYYY-MM-DD-HH-mm,
// rolling over every minute.
func NewMinutely(dir, prefix string, options ...Option) (*Appender, error) {
	return New(dir, TemplatedPath(prefix), Minutely, options...)
}

// NewHourly creates an Appender writing to dir/prefix.YYYY-MM-DD-HH,
// rolling over every hour.
func NewHourly(dir, prefix string, options ...Option) (*Appender, error) {
	return New(dir, TemplatedPath(prefix), Hourly, options...)
}

// NewDaily creates an Appender writing to dir/prefix.YYYY-MM-DD,
// rolling over every day at midnight.
func NewDaily(dir, prefix string, options ...Option) (*Appender, error) {
	return New(dir, TemplatedPath(prefix), Daily, options...)
}

// NewNever creates an Appender that always writes to dir/filename.
func NewNever(dir, filename string, options ...Option) (*Appender, error) {
	return New(dir, TemplatedPath(filename), Never, options...)
}
