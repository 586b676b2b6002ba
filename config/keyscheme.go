package config

import (
	"fmt"

	"github.com/dmitry-maltsev/spelling-corrector/symdelete"
)

// ParseKeyScheme maps the Config.KeyScheme string onto symdelete.KeyScheme.
func ParseKeyScheme(s string) (symdelete.KeyScheme, error) {
	switch s {
	case "", "exact":
		return symdelete.KeyExact, nil
	case "fingerprint":
		return symdelete.KeyFingerprint, nil
	default:
		return 0, fmt.Errorf("config: unknown key_scheme %q", s)
	}
}
