package qport

const (
	defaultTolerance    = 1e-6
	defaultDriftCeiling = 1e-3
)

type Config struct {
	// Tolerance is the soft bound: norm deviations within it are accepted,
	// deviations beyond it are silently renormalized.
	Tolerance float64
	// DriftCeiling is the hard bound: deviations beyond it raise a
	// NumericDriftError instead of being corrected.
	DriftCeiling float64
}

func NewConfig() *Config {
	return &Config{
		Tolerance:    defaultTolerance,
		DriftCeiling: defaultDriftCeiling,
	}
}

// TeleporterOption is a function type for configuring a Teleporter
type TeleporterOption func(*Teleporter)

// WithConfig overrides the default numeric tolerances
func WithConfig(cfg *Config) TeleporterOption {
	return func(t *Teleporter) {
		if cfg != nil {
			t.config = cfg
		}
	}
}

// WithSampler injects the randomness source used by Measure
func WithSampler(s Sampler) TeleporterOption {
	return func(t *Teleporter) {
		if s != nil {
			t.sampler = s
		}
	}
}

// WithSeed installs a deterministic sampler seeded with the given value
func WithSeed(seed int64) TeleporterOption {
	return func(t *Teleporter) {
		t.sampler = newSeededSampler(seed)
	}
}
