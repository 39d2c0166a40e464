package security

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// fileConfig mirrors Config but keeps TimingProtection as a string so
// it round-trips through TOML without a custom (un)marshaler; spec.md
// itself does not name a serialization format for SecurityConfig, so
// this follows the same file-plus-programmatic-defaults precedence
// jeranaias-rigrun/go-tui/internal/config uses for its own Config.
type fileConfig struct {
	MaxInputSize      int    `toml:"max_input_size"`
	PadInputs         bool   `toml:"pad_inputs"`
	PaddingSize       int    `toml:"padding_size"`
	ValidateInputs    bool   `toml:"validate_inputs"`
	MaxEditDistance   int    `toml:"max_edit_distance"`
	MemoryProtection  bool   `toml:"memory_protection"`
	TimingProtection  string `toml:"timing_protection"`
}

// LoadConfig reads a SecurityConfig override from a TOML file at
// path, layered over base: the file's fields win, while fields absent
// from the file (and numeric fields set to zero) fall back to base's.
// When the file changes max_input_size without setting
// max_edit_distance, base's edit-distance cap is rescaled so that it
// keeps the same ratio to max_input_size.
func LoadConfig(path string, base Config) (Config, error) {
	var fc fileConfig
	md, err := toml.DecodeFile(path, &fc)
	if err != nil {
		return Config{}, fmt.Errorf("security: loading config %q: %w", path, err)
	}

	cfg := base
	if fc.MaxInputSize > 0 {
		cfg.MaxInputSize = fc.MaxInputSize
	}
	if md.IsDefined("pad_inputs") {
		cfg.PadInputs = fc.PadInputs
	}
	if fc.PaddingSize > 0 {
		cfg.PaddingSize = fc.PaddingSize
	}
	if md.IsDefined("validate_inputs") {
		cfg.ValidateInputs = fc.ValidateInputs
	}
	if fc.MaxEditDistance != 0 {
		cfg.MaxEditDistance = fc.MaxEditDistance
	} else if base.MaxEditDistance != NoMaxEditDistance && base.MaxInputSize > 0 && cfg.MaxInputSize != base.MaxInputSize {
		cfg.MaxEditDistance = int(int64(base.MaxEditDistance) * int64(cfg.MaxInputSize) / int64(base.MaxInputSize))
	}
	if md.IsDefined("memory_protection") {
		cfg.MemoryProtection = fc.MemoryProtection
	}
	if tp, ok := parseTimingProtection(fc.TimingProtection); ok {
		cfg.TimingProtection = tp
	}

	if err := Validate(cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func parseTimingProtection(s string) (TimingProtection, bool) {
	switch s {
	case "strict":
		return Strict, true
	case "moderate":
		return Moderate, true
	case "basic":
		return Basic, true
	default:
		return 0, false
	}
}
