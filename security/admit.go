package security

import "fmt"

// SizeLimitError reports that an input exceeded the configured policy.
// The message embeds only lengths and policy values — never content —
// per spec.md §7.
type SizeLimitError struct {
	Size  int
	Limit int
}

func (e *SizeLimitError) Error() string {
	return fmt.Sprintf("security: input size %d exceeds limit %d", e.Size, e.Limit)
}

// Admit checks lenA and lenB against cfg.MaxInputSize and, in Strict
// mode, that a padding target is defined and large enough. It branches
// only on the two declared lengths and the configuration, never on
// the content of A or B.
func Admit(cfg Config, lenA, lenB int) error {
	maxLen := lenA
	if lenB > maxLen {
		maxLen = lenB
	}

	if lenA > cfg.MaxInputSize || lenB > cfg.MaxInputSize {
		return &SizeLimitError{Size: maxLen, Limit: cfg.MaxInputSize}
	}

	if cfg.TimingProtection == Strict {
		padSize := EffectivePaddingSize(cfg, lenA, lenB)
		if padSize < maxLen {
			return &SizeLimitError{Size: maxLen, Limit: padSize}
		}
	}

	return nil
}
