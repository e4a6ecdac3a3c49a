package rolling

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"time"
)

// ensure we always implement io.WriteCloser
var _ io.WriteCloser = (*Appender)(nil)

// Appender is an io.WriteCloser that writes to the file named by its
// FilenameStrategy and rolls over to a new file once its RotationPolicy says
// so. The rollover check happens lazily inside Write; nothing runs in the
// background.
//
// An Appender is not safe for concurrent use. Wrap it with NewLocked when
// several goroutines write to it.
type Appender struct {
	// Read-only fields after *New* method inited.
	opts     *Options
	dir      string
	strategy FilenameStrategy
	policy   RotationPolicy

	nextRollover time.Time      // rollover is due once now reaches it
	file         io.WriteCloser // current file handle being written to
	buf          *bufio.Writer  // buffers writes to file
	currFilename string         // current filename being written to
	closed       bool

	metrics atomicMetrics
}

// New creates an Appender writing into dir. The first file is named by
// strategy at the current time of the configured clock and opened in append
// mode, so restarting a process continues the same file. Missing parent
// directories are created.
func New(dir string, strategy FilenameStrategy, policy RotationPolicy, options ...Option) (*Appender, error) {
	if err := validateStrategy(strategy); err != nil {
		return nil, err
	}
	if policy == nil {
		return nil, ErrNilPolicy
	}
	opts := parseOptions(options...)
	a := &Appender{
		opts:     opts,
		dir:      dir,
		strategy: strategy,
		policy:   policy,
	}

	now := opts.clock.Now()
	filename := a.evalFilename(now)
	file, err := openAppendCreate(opts.fs, filename)
	if err != nil {
		return nil, fmt.Errorf("rolling: can't open logfile: %w", err)
	}
	a.nextRollover = policy.NextRollover(now)
	a.file = file
	a.buf = bufio.NewWriterSize(file, opts.bufferSize)
	a.currFilename = filename
	a.link()

	return a, nil
}

// Write implements io.Writer. If the rollover instant has been reached, the
// next file is opened first. A failure to open it is passed to the error
// handler and the write goes to the current file instead; the next attempt
// happens at the following rollover instant.
//
// Write returns len(b) on success. Errors come only from writing to the
// active file and fail only the call they happen in: the data still
// buffered at that point is dropped, and the next Write or Flush tries the
// file again.
func (a *Appender) Write(b []byte) (n int, err error) {
	if a.closed {
		return 0, ErrClosed
	}
	return a.write(b, a.opts.clock.Now())
}

func (a *Appender) write(b []byte, now time.Time) (n int, err error) {
	if a.shouldRollover(now) {
		a.refresh(now)
	}

	n, err = a.buf.Write(b)
	if err != nil {
		a.discardBuffered()
		return n, err
	}
	a.metrics.Writes.Add(1)
	return len(b), nil
}

// shouldRollover reports whether now has reached the rollover instant.
// The boundary itself counts as due.
func (a *Appender) shouldRollover(now time.Time) bool {
	return !now.Before(a.nextRollover)
}

// refresh switches to the file that is active at now. The next rollover
// instant is advanced even if the open fails, so a persistent failure is
// retried once per period rather than on every write.
func (a *Appender) refresh(now time.Time) {
	filename := a.evalFilename(now)
	a.nextRollover = a.policy.NextRollover(now)

	file, err := openAppendCreate(a.opts.fs, filename)
	if err != nil {
		a.metrics.FailedRollovers.Add(1)
		a.opts.errorHandler(fmt.Errorf("rolling: couldn't create writer for logs: %w", err))
		return
	}

	if err := a.close(); err != nil {
		a.opts.errorHandler(fmt.Errorf("rolling: failed to close %s: %w", a.currFilename, err))
	}
	a.file = file
	a.buf.Reset(file)
	a.currFilename = filename
	a.metrics.Rollovers.Add(1)
	a.link()
}

// evalFilename returns the path of the file that is active at now.
func (a *Appender) evalFilename(now time.Time) string {
	return filepath.Join(a.dir, a.strategy.Filename(a.policy, now))
}

// link points the configured symlink at the current file.
func (a *Appender) link() {
	if a.opts.symlink == "" {
		return
	}
	if err := link(a.opts.fs, a.currFilename, a.opts.symlink); err != nil {
		a.opts.errorHandler(fmt.Errorf("rolling: %w", err))
	}
}

// Flush writes any buffered data to the current file. It never rolls over.
// On error the buffered data is dropped, as in Write.
func (a *Appender) Flush() error {
	if a.closed {
		return ErrClosed
	}
	if err := a.buf.Flush(); err != nil {
		a.discardBuffered()
		return err
	}
	return nil
}

// discardBuffered drops the buffered data and the error bufio.Writer keeps
// after a failed write, so the next call tries the file again.
func (a *Appender) discardBuffered() {
	a.buf.Reset(a.file)
}

// Close implements io.Closer. It flushes buffered data and closes the
// current file. Calling Close more than once returns ErrClosed.
func (a *Appender) Close() error {
	if a.closed {
		return ErrClosed
	}
	a.closed = true
	return a.close()
}

// close flushes the buffer and closes the file behind it.
func (a *Appender) close() error {
	flushErr := a.buf.Flush()
	closeErr := a.file.Close()
	return errors.Join(flushErr, closeErr)
}

// CurrentFilename returns the path of the file the Appender writes to.
func (a *Appender) CurrentFilename() string {
	return a.currFilename
}

// Metrics returns metrics of this Appender. It is safe to call from any
// goroutine.
func (a *Appender) Metrics() Metrics {
	return a.metrics.toMetrics()
}
