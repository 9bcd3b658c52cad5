package lzarena

type options struct {
	src       PageSource
	backend   Backend
	blockSize int
	logger    *Logger
}

func defaultOptions() options {
	return options{
		backend: BackendMmap,
		logger:  NoopLogger(),
	}
}

// Option configures arena construction.
type Option func(*options)

// WithPageSource routes all backing-buffer traffic through src instead of a
// built-in backend. Takes precedence over WithBackend.
func WithPageSource(src PageSource) Option {
	return func(o *options) {
		o.src = src
	}
}

// WithBackend selects one of the built-in backing-store strategies.
// An unrecognized backend makes New fail.
func WithBackend(b Backend) Option {
	return func(o *options) {
		o.backend = b
	}
}

// WithBlockSize sets the growth block length. The value is rounded up to a
// multiple of the platform page size; n <= 0 keeps the default.
func WithBlockSize(n int) Option {
	return func(o *options) {
		o.blockSize = n
	}
}

// WithLogger sets the logger for growth, reset and teardown diagnostics.
// Passing nil keeps the no-op default.
func WithLogger(l *Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}
