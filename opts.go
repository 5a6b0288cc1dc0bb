package asn1pkix

/*
opts.go contains the functional options accepted by Decode, Encode
and Resolve.
*/

import (
	"context"
	"log/slog"
)

/*
Option implements a closure which alters the configuration of a single
[Decode], [DecodePrefix], [Encode] or [Resolve] call.
*/
type Option func(*codecConfig)

type codecConfig struct {
	lookup   Lookuper
	maxDepth int
	logger   *slog.Logger
}

func newCodecConfig(opts []Option) *codecConfig {
	cfg := &codecConfig{maxDepth: DefaultMaxDepth}
	for _, o := range opts {
		if o != nil {
			o(cfg)
		}
	}
	if cfg.logger == nil {
		cfg.logger = Logger()
	}
	return cfg
}

/*
WithOpenTypes returns an [Option] which causes [Decode] to resolve open
types through l. Without it, every open type node is left [Unresolved].
*/
func WithOpenTypes(l Lookuper) Option {
	return func(cfg *codecConfig) { cfg.lookup = l }
}

/*
WithMaxDepth returns an [Option] which sets the maximum nesting depth.
A value of zero or less restores [DefaultMaxDepth].
*/
func WithMaxDepth(n int) Option {
	return func(cfg *codecConfig) {
		if cfg.maxDepth = n; n <= 0 {
			cfg.maxDepth = DefaultMaxDepth
		}
	}
}

/*
WithLogger returns an [Option] which routes the records of one call to
l instead of the package logger.
*/
func WithLogger(l *slog.Logger) Option {
	return func(cfg *codecConfig) { cfg.logger = l }
}

/*
WithContext returns an [Option] which uses the logger carried by ctx
(see [ContextWithLogger]).
*/
func WithContext(ctx context.Context) Option {
	return func(cfg *codecConfig) { cfg.logger = LoggerFromContext(ctx) }
}

/*
With returns an [Option] built from any of the following input types:

  - [Lookuper], as with [WithOpenTypes]
  - int, as with [WithMaxDepth]
  - *[log/slog.Logger], as with [WithLogger]
  - [context.Context], as with [WithContext]
  - [Option]

Unsupported input types are ignored.
*/
func With(args ...any) Option {
	var opts []Option
	for _, arg := range args {
		switch tv := arg.(type) {
		case Lookuper:
			opts = append(opts, WithOpenTypes(tv))
		case int:
			opts = append(opts, WithMaxDepth(tv))
		case *slog.Logger:
			opts = append(opts, WithLogger(tv))
		case context.Context:
			opts = append(opts, WithContext(tv))
		case Option:
			opts = append(opts, tv)
		}
	}

	return func(cfg *codecConfig) {
		for _, o := range opts {
			o(cfg)
		}
	}
}
