package unroll

import "go.uber.org/zap"

type options struct {
	factor float64
	logger *zap.Logger
}

func defaultOptions() options {
	return options{factor: 1, logger: zap.NewNop()}
}

// Option configures Unroll.
type Option func(*options)

// WithFactor scales every fold angle. 1 lays the mesh flat, 0 only cuts
// it, values in between open each fold part of the way.
func WithFactor(f float64) Option {
	return func(o *options) { o.factor = f }
}

// WithLogger sets the logger for progress output. A nil logger is ignored.
func WithLogger(l *zap.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}
