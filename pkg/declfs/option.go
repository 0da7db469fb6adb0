package declfs

type declOptions struct {
	mode     Mode
	children Declaration
	forward  bool
}

// Option configures a Dir or File declaration.
type Option func(*declOptions)

// WithMode sets the conflict policy. Unset declarations are timid.
func WithMode(mode Mode) Option {
	return func(o *declOptions) {
		o.mode = mode
	}
}

// WithChildren sets the child declaration. For Dir the children are
// evaluated with the cursor moved into the directory, for File their
// result becomes the file content.
func WithChildren(children Declaration) Option {
	return func(o *declOptions) {
		o.children = children
	}
}

// ForwardContent makes a File declaration evaluate to its produced
// content instead of "", whether or not the write actually happened.
func ForwardContent() Option {
	return func(o *declOptions) {
		o.forward = true
	}
}

func buildOptions(opts []Option) declOptions {
	var o declOptions
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
