package ctdiff

import "github.com/ericlagergren/ctdiff/security"

// Option configures a Differ. The functional-options pattern replaces
// the reference implementation's consuming DiffBuilder chain
// (builder.rs): options apply in order over a Config that starts at
// security.Default(), and New validates the result once after all
// options have run.
type Option func(*security.Config) error

// WithLevel selects one of the three named security levels and
// expands it to a full Config, discarding any options applied before
// it. maxSize of 0 uses the level's own default ceiling.
func WithLevel(level security.Level, maxSize int) Option {
	return func(cfg *security.Config) error {
		*cfg = level.Config(maxSize)
		return nil
	}
}

// WithMaxInputSize overrides Config.MaxInputSize.
func WithMaxInputSize(n int) Option {
	return func(cfg *security.Config) error {
		cfg.MaxInputSize = n
		return nil
	}
}

// WithPadding enables padding and pins PaddingSize. A size of 0 means
// "auto-compute per input pair" (security.EffectivePaddingSize's
// nearest-power-of-two rule).
func WithPadding(size int) Option {
	return func(cfg *security.Config) error {
		cfg.PadInputs = true
		cfg.PaddingSize = size
		return nil
	}
}

// WithMaxEditDistance overrides Config.MaxEditDistance.
// security.NoMaxEditDistance disables the cap.
func WithMaxEditDistance(n int) Option {
	return func(cfg *security.Config) error {
		cfg.MaxEditDistance = n
		return nil
	}
}

// WithTimingProtection overrides Config.TimingProtection independent
// of the level it came from.
func WithTimingProtection(t security.TimingProtection) Option {
	return func(cfg *security.Config) error {
		cfg.TimingProtection = t
		return nil
	}
}

// WithConfig replaces the entire Config, discarding any options
// applied before it.
func WithConfig(cfg security.Config) Option {
	return func(dst *security.Config) error {
		*dst = cfg
		return nil
	}
}

// WithConfigFile loads a Config override from a TOML file, layered
// over whatever Config was built from prior options.
func WithConfigFile(path string) Option {
	return func(cfg *security.Config) error {
		loaded, err := security.LoadConfig(path, *cfg)
		if err != nil {
			return err
		}
		*cfg = loaded
		return nil
	}
}
