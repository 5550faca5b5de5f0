package tiffdir

type options struct {
	maxValueSize   int64
	maxDirectories int
	alignment      bool
}

// Option configures a Reader.
type Option func(*options)

func newOptions(opts []Option) options {
	o := options{
		maxValueSize:   defaultMaxValueSize,
		maxDirectories: defaultMaxDirectories,
		alignment:      true,
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithMaxValueSize bounds the size of a single entry value stored out of line.
func WithMaxValueSize(n int64) Option {
	return func(o *options) {
		if n <= 0 {
			panic("max value size must be positive")
		}
		o.maxValueSize = n
	}
}

// WithMaxDirectories bounds the number of directories read from one chain.
func WithMaxDirectories(n int) Option {
	return func(o *options) {
		if n <= 0 {
			panic("max directories must be positive")
		}
		o.maxDirectories = n
	}
}

// WithoutAlignmentCheck accepts odd value offsets.
// Header and next IFD offsets must still begin on a word boundary.
func WithoutAlignmentCheck() Option {
	return func(o *options) {
		o.alignment = false
	}
}
