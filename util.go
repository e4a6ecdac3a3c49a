package rolling

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"time"
)

const (
	fileFlag             = os.O_CREATE | os.O_APPEND | os.O_WRONLY
	filePerm os.FileMode = 0644
	dirPerm  os.FileMode = 0755
)

// Clock is a source of time for rolling. Rotation boundaries and file
// names follow the location of the times it returns.
type Clock interface {
	// Now returns the current time.
	Now() time.Time
}

// DefaultClock is the default clock used by rolling in operations that
// require time. This clock uses the system clock in UTC, so files are named
// and rotated on UTC boundaries whatever the machine's time zone.
var DefaultClock = systemClock{}

// LocalClock uses the system clock in the machine's local time zone.
var LocalClock = ClockFunc(time.Now)

// systemClock implements default Clock that uses system time.
type systemClock struct{}

func (systemClock) Now() time.Time {
	return time.Now().UTC()
}

// ClockFunc adapts a function to the Clock interface.
type ClockFunc func() time.Time

// Now implements Clock.
func (f ClockFunc) Now() time.Time {
	return f()
}

// FileSystem is used to override file-managing procedures. Tests use it to
// simulate a file system that refuses to create files or to write.
type FileSystem interface {
	OpenFile(name string, flag int, perm os.FileMode) (io.WriteCloser, error)
	MkdirAll(path string, perm os.FileMode) error
	Symlink(oldname, newname string) error
	Rename(oldpath, newpath string) error
	Remove(name string) error
}

// DefaultFileSystem is the FileSystem backed by the os package.
var DefaultFileSystem FileSystem = osFS{}

type osFS struct{}

func (osFS) OpenFile(name string, flag int, perm os.FileMode) (io.WriteCloser, error) {
	return os.OpenFile(name, flag, perm)
}

func (osFS) MkdirAll(path string, perm os.FileMode) error {
	return os.MkdirAll(path, perm)
}

func (osFS) Symlink(oldname, newname string) error {
	return os.Symlink(oldname, newname)
}

func (osFS) Rename(oldpath, newpath string) error {
	return os.Rename(oldpath, newpath)
}

func (osFS) Remove(name string) error {
	return os.Remove(name)
}

// openAppendCreate opens filename for appending, creating it if missing. If
// the first attempt fails and filename has a parent directory, the directory
// tree is created and the open is retried exactly once.
//
// The error returned is always the one from the first open, so callers see
// the same error no matter why the retry failed.
func openAppendCreate(fsys FileSystem, filename string) (io.WriteCloser, error) {
	f, err := fsys.OpenFile(filename, fileFlag, filePerm)
	if err == nil {
		return f, nil
	}

	dirname := filepath.Dir(filename)
	if dirname == "." || dirname == filename {
		return nil, err
	}
	// A concurrent creator may win the race, so a MkdirAll failure still
	// falls through to the retry.
	_ = fsys.MkdirAll(dirname, dirPerm)

	if f, retryErr := fsys.OpenFile(filename, fileFlag, filePerm); retryErr == nil {
		return f, nil
	}
	return nil, err
}

// truncateLocal truncates t to a multiple of d as seen on the wall clock of
// t's location, not in absolute UTC time.
func truncateLocal(t time.Time, d time.Duration) time.Time {
	if t.Location() == time.UTC {
		return t.Truncate(d)
	}
	// XXX HACK: Truncate only happens in UTC semantics, apparently.
	// observed values for truncating given time with 86400 secs:
	//
	// before truncation: 2018/06/01 03:54:54 2018-06-01T03:18:00+09:00
	// after  truncation: 2018/06/01 03:54:54 2018-05-31T09:00:00+09:00
	//
	// So we take the apparent local time, pretend that it's in UTC, do our
	// math, and put it back to the local zone.
	base := time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), time.UTC)
	base = base.Truncate(d)
	return time.Date(base.Year(), base.Month(), base.Day(), base.Hour(), base.Minute(), base.Second(), base.Nanosecond(), t.Location())
}

// link points linkname at filename. The link is relative when both live
// under a common directory, and is swapped in with a rename so readers never
// observe a missing link.
func link(fsys FileSystem, filename, linkname string) error {
	linkDest := filename
	linkDir := filepath.Dir(linkname)
	if rel, err := filepath.Rel(linkDir, filename); err == nil {
		linkDest = rel
	}

	if err := fsys.MkdirAll(linkDir, dirPerm); err != nil {
		return fmt.Errorf("failed to create directory for symlink %s: %w", linkname, err)
	}

	tmpLinkname := linkname + "_symlink"
	_ = fsys.Remove(tmpLinkname)
	if err := fsys.Symlink(linkDest, tmpLinkname); err != nil {
		return fmt.Errorf("failed to create new symlink %s: %w", tmpLinkname, err)
	}
	if err := fsys.Rename(tmpLinkname, linkname); err != nil {
		return fmt.Errorf("failed to rename new symlink %s: %w", linkname, err)
	}
	return nil
}

// tracef formats according to a format specifier and writes to w
// with trace info and a newline appended.
func tracef(w io.Writer, format string, args ...any) (int, error) {
	pc := make([]uintptr, 15)
	n := runtime.Callers(2, pc)
	frames := runtime.CallersFrames(pc[:n])
	frame, _ := frames.Next()

	traceArgs := []any{
		filepath.Base(frame.File),
		frame.Line,
		filepath.Base(frame.Function),
	}
	args = append(traceArgs, args...)
	return fmt.Fprintf(w, "%s:%d %s "+format+"\n", args...)
}

// stderrErrorHandler is the default diagnostic sink.
func stderrErrorHandler(err error) {
	_, _ = tracef(os.Stderr, "%v", err)
}
