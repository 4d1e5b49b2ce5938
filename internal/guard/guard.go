// Package guard decides whether a request may proceed to a protected route.
package guard

import "strings"

// Guard holds the path prefixes that require a session credential. It is
// stateless per request and has no side effects beyond the decision.
type Guard struct {
	prefixes []string
}

// New creates a Guard for the given protected prefixes. Empty entries are
// dropped so a stray comma in configuration cannot protect everything.
func New(prefixes []string) *Guard {
	cleaned := make([]string, 0, len(prefixes))
	for _, p := range prefixes {
		p = strings.TrimSpace(p)
		if p != "" {
			cleaned = append(cleaned, p)
		}
	}
	return &Guard{prefixes: cleaned}
}

// ParsePrefixes splits a comma-separated configuration value into prefixes.
func ParsePrefixes(raw string) []string {
	return strings.Split(raw, ",")
}

// Protected reports whether the path matches any protected prefix.
func (g *Guard) Protected(path string) bool {
	for _, p := range g.prefixes {
		if strings.HasPrefix(path, p) {
			return true
		}
	}
	return false
}

// Allow decides pass-through vs redirect: unprotected paths always pass,
// protected paths pass only with a non-empty access token.
func (g *Guard) Allow(path, accessToken string) bool {
	if !g.Protected(path) {
		return true
	}
	return accessToken != ""
}
