package rolling

// Options is supplied as the optional arguments for New.
type Options struct {
	clock        Clock       // used to determine the current time
	fs           FileSystem  // used to open files and create directories
	errorHandler func(error) // receives rollover failures
	bufferSize   int         // size of the write buffer in bytes
	symlink      string      // linked to the current file
}

// Option is the functional option type.
type Option func(*Options)

// defaultBufferSize matches bufio's own default.
const defaultBufferSize = 4096

func newDefaultOptions() *Options {
	return &Options{
		clock:        DefaultClock,
		fs:           DefaultFileSystem,
		errorHandler: stderrErrorHandler,
		bufferSize:   defaultBufferSize,
		symlink:      "", // no symlink
	}
}

func parseOptions(setters ...Option) *Options {
	// default Options
	opts := newDefaultOptions()
	for _, setter := range setters {
		setter(opts)
	}
	return opts
}

// WithClock specifies the clock used by Appender to determine the current
// time. It defaults to the system clock with time.Now.
func WithClock(clock Clock) Option {
	return func(opts *Options) {
		if clock != nil {
			opts.clock = clock
		}
	}
}

// WithFileSystem overrides the file system used to open log files and
// create their directories.
//
// Default: DefaultFileSystem
func WithFileSystem(fs FileSystem) Option {
	return func(opts *Options) {
		if fs != nil {
			opts.fs = fs
		}
	}
}

// WithErrorHandler sets the function that receives errors which cannot be
// returned from Write, such as a failure to open the next log file during
// rollover. The handler is called synchronously from Write and must not
// call back into the Appender.
//
// Default: a one-line trace written to os.Stderr.
func WithErrorHandler(fn func(error)) Option {
	return func(opts *Options) {
		if fn != nil {
			opts.errorHandler = fn
		}
	}
}

// WithBufferSize sets the size of the in-memory write buffer. If size <= 0,
// the default is used.
//
// Default: 4096
func WithBufferSize(size int) Option {
	return func(opts *Options) {
		if size > 0 {
			opts.bufferSize = size
		}
	}
}

// WithSymlink sets the symbolic link name that gets linked to
// the current filename being used.
//
// Default: ""
func WithSymlink(name string) Option {
	return func(opts *Options) {
		opts.symlink = name
	}
}
