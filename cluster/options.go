package cluster

import "log/slog"

// Options configures an Engine.
//
// Logger     – receives one Debug record per clustering call. Default discards.
// Provenance – see ProvenanceMode. Default ProvenanceAuto.
type Options struct {
	Logger     *slog.Logger
	Provenance ProvenanceMode
}

// Option is a functional option for New.
type Option func(*Options)

// DefaultOptions returns the configuration used when no Option is given.
func DefaultOptions() Options {
	return Options{
		Logger:     slog.New(slog.DiscardHandler),
		Provenance: ProvenanceAuto,
	}
}

// WithLogger routes engine diagnostics to l. A nil logger is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithProvenance sets the provenance tracking mode.
func WithProvenance(mode ProvenanceMode) Option {
	return func(o *Options) {
		o.Provenance = mode
	}
}

func gatherOptions(opts ...Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o
}
