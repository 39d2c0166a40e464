package security

import (
	"fmt"
	"log/slog"
)

// Validate rejects internally inconsistent configurations before any
// input is ever read, per spec.md §4.2.
func Validate(cfg Config) error {
	if cfg.MaxInputSize <= 0 {
		return fmt.Errorf("security: max_input_size must be positive, got %d", cfg.MaxInputSize)
	}

	if cfg.PadInputs {
		if cfg.TimingProtection == Strict && cfg.PaddingSize <= 0 {
			return fmt.Errorf("security: padding_size is required in Strict mode")
		}
		if cfg.PaddingSize > 0 && cfg.PaddingSize < cfg.MaxInputSize {
			return fmt.Errorf("security: padding_size %d is less than max_input_size %d", cfg.PaddingSize, cfg.MaxInputSize)
		}
	}

	if cfg.MaxEditDistance != NoMaxEditDistance {
		if cfg.MaxEditDistance < 0 {
			return fmt.Errorf("security: max_edit_distance must be non-negative or unset, got %d", cfg.MaxEditDistance)
		}
		if cfg.MaxEditDistance > cfg.MaxInputSize*2 {
			return fmt.Errorf("security: max_edit_distance %d exceeds max_input_size*2 (%d)", cfg.MaxEditDistance, cfg.MaxInputSize*2)
		}
	}

	if !cfg.MemoryProtection && cfg.TimingProtection != Basic {
		slog.Warn("memory protection disabled but timing protection enabled",
			"timing_protection", cfg.TimingProtection.String())
	}

	return nil
}
