package dataset

import "github.com/sgostarter/i/l"

type Options struct {
	logger l.Wrapper
	store  Store
	cfg    *Config
}

type Option func(o *Options)

func optionNew(option ...Option) *Options {
	opts := &Options{}
	for _, o := range option {
		o(opts)
	}

	if opts.logger == nil {
		opts.logger = l.NewNopLoggerWrapper()
	}

	if opts.cfg == nil {
		opts.cfg = DefaultConfig()
	}

	return opts
}

func WithLogger(logger l.Wrapper) Option {
	return func(o *Options) {
		o.logger = logger
	}
}

// WithStore sets where Load and Save go. Without it a file store built from the
// config is used.
func WithStore(store Store) Option {
	return func(o *Options) {
		o.store = store
	}
}

func WithConfig(cfg *Config) Option {
	return func(o *Options) {
		o.cfg = cfg
	}
}
