package sources

import (
	"fmt"
	"regexp"
)

var keyRe = regexp.MustCompile(`^[a-z][a-z0-9_]*$`)

// Validate checks the registry for fatal problems and collects warnings.
// Fatal: no sources, malformed or duplicate keys, unknown code values.
// Warnings: missing titles, ranking weights left at zero.
func (r *Registry) Validate() error {
	if len(r.Sources) == 0 {
		return fmt.Errorf("no sources specified in configuration")
	}

	seen := make(map[string]bool)
	for i, s := range r.Sources {
		if !keyRe.MatchString(s.Key) {
			return fmt.Errorf(
				"source %d: invalid key %q (lowercase letters, digits and underscores only)",
				i+1, s.Key)
		}
		if seen[s.Key] {
			return fmt.Errorf("source %d: duplicate key %q", i+1, s.Key)
		}
		seen[s.Key] = true

		switch s.Code {
		case "", "botanical", "zoological", "cultivar":
		default:
			return fmt.Errorf(
				"source %q: invalid code %q (use 'botanical', 'zoological' or 'cultivar')",
				s.Key, s.Code)
		}

		if s.Title == "" {
			r.Warnings = append(r.Warnings,
				fmt.Sprintf("source %q has no title", s.Key))
		}
		if s.ForZoology == 0 || s.ForBotany == 0 ||
			s.ForMycology == 0 || s.General == 0 {
			r.Warnings = append(r.Warnings,
				fmt.Sprintf(
					"source %q has zero ranking weights; it will rank last",
					s.Key))
		}
	}

	return nil
}
