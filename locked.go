package rolling

import (
	"io"
	"sync"
)

// ensure we always implement io.WriteCloser
var _ io.WriteCloser = (*Locked)(nil)

// Locked is a concurrent safe wrapper around an Appender. Each Write reaches
// the file in one piece, without interleaving with other writers.
type Locked struct {
	mu sync.Mutex // guards a
	a  *Appender
}

// NewLocked wraps a. The caller must not use a directly afterwards.
func NewLocked(a *Appender) *Locked {
	return &Locked{a: a}
}

// Write implements io.Writer.
func (l *Locked) Write(b []byte) (n int, err error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.a.Write(b)
}

// Flush writes any buffered data to the current file.
func (l *Locked) Flush() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.a.Flush()
}

// Sync is an alias of Flush, so that Locked satisfies zapcore.WriteSyncer.
func (l *Locked) Sync() error {
	return l.Flush()
}

// Close implements io.Closer.
func (l *Locked) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.a.Close()
}

// CurrentFilename returns the path of the file being written to.
func (l *Locked) CurrentFilename() string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.a.CurrentFilename()
}

// Metrics returns metrics of the wrapped Appender.
func (l *Locked) Metrics() Metrics {
	return l.a.Metrics()
}
