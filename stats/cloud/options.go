package cloud

// Accumulation selects how covariance cross terms are accumulated.
type Accumulation int

const (
	// AccumulationSymmetric accumulates cov[i][j] += c_i*c_j.
	AccumulationSymmetric Accumulation = iota
	// AccumulationLegacy reproduces the historical pattern in which the
	// [2][1] entry accumulates z*z. The result is not symmetric.
	AccumulationLegacy
)

// String returns the mode name.
func (a Accumulation) String() string {
	switch a {
	case AccumulationSymmetric:
		return "symmetric"
	case AccumulationLegacy:
		return "legacy"
	default:
		return "unknown"
	}
}

// Config defines point-cloud estimation settings.
type Config struct {
	Accumulation Accumulation
}

// Option mutates a Config.
type Option func(*Config)

// DefaultConfig returns the symmetric estimator.
func DefaultConfig() Config {
	return Config{
		Accumulation: AccumulationSymmetric,
	}
}

// WithAccumulation sets the covariance accumulation mode. Unknown modes are
// ignored.
func WithAccumulation(a Accumulation) Option {
	return func(cfg *Config) {
		if a == AccumulationSymmetric || a == AccumulationLegacy {
			cfg.Accumulation = a
		}
	}
}

// WithLegacyAccumulation is shorthand for WithAccumulation(AccumulationLegacy).
func WithLegacyAccumulation() Option {
	return WithAccumulation(AccumulationLegacy)
}

// ApplyOptions applies zero or more options to the default config.
func ApplyOptions(opts ...Option) Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}
