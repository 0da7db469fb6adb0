package declfs

import (
	"context"

	"github.com/je4/utils/v2/pkg/zLogger"
	"github.com/rs/zerolog"
)

// Diagnostic is one recorded evaluation failure. Message is
// self-describing; Err carries the full error chain.
type Diagnostic struct {
	Message string
	Err     error
}

// Sink receives diagnostics before evaluation halts.
type Sink interface {
	Report(d Diagnostic)
}

// NewRecordingSink returns a sink that keeps all reported diagnostics
// and logs them.
func NewRecordingSink(logger zLogger.ZLogger) *recordingSink {
	return &recordingSink{logger: logger}
}

type recordingSink struct {
	logger  zLogger.ZLogger
	entries []Diagnostic
}

func (s *recordingSink) Report(d Diagnostic) {
	s.logger.Error().Err(d.Err).Msg(d.Message)
	s.entries = append(s.entries, d)
}

func (s *recordingSink) Entries() []Diagnostic {
	return s.entries
}

type renderOptions struct {
	logger zLogger.ZLogger
	sink   Sink
}

type RenderOption func(*renderOptions)

func WithLogger(logger zLogger.ZLogger) RenderOption {
	return func(o *renderOptions) {
		o.logger = logger
	}
}

func WithSink(sink Sink) RenderOption {
	return func(o *renderOptions) {
		o.sink = sink
	}
}

// Render evaluates the document tree. On failure the error is reported
// to the diagnostic sink, the result is "" and no further declarations
// run; mutations already made are not rolled back. On success the
// returned diagnostics are empty and the result is the root
// declaration's result.
func Render(ctx context.Context, doc Declaration, opts ...RenderOption) (string, []Diagnostic) {
	var o renderOptions
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		nop := zerolog.Nop()
		o.logger = &nop
	}
	recorder := NewRecordingSink(o.logger)
	env := &Env{logger: o.logger}
	result, err := doc.Evaluate(ctx, env)
	if err != nil {
		d := Diagnostic{Message: err.Error(), Err: err}
		recorder.Report(d)
		if o.sink != nil {
			o.sink.Report(d)
		}
		return "", recorder.Entries()
	}
	return result, recorder.Entries()
}
