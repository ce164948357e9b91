package tier

import "strings"

// Mode is a rewriting intensity. Each tier re-runs every lower one first.
type Mode string

const (
	Light  Mode = "light"
	Medium Mode = "medium"
	Heavy  Mode = "heavy"
)

// All lists the modes from least to most aggressive.
var All = []Mode{Light, Medium, Heavy}

// Parse maps a mode name to a Mode. Anything unrecognized, including the
// empty string, resolves to Medium.
func Parse(s string) Mode {
	switch Mode(strings.ToLower(strings.TrimSpace(s))) {
	case Light:
		return Light
	case Heavy:
		return Heavy
	default:
		return Medium
	}
}

// Valid reports whether s names one of the three modes exactly.
func Valid(s string) bool {
	switch Mode(strings.ToLower(strings.TrimSpace(s))) {
	case Light, Medium, Heavy:
		return true
	}
	return false
}

// Recommend picks a mode from the number of distinct flavor markers found.
// Exactly two markers still recommends Light.
func Recommend(distinctMarkers int) Mode {
	switch {
	case distinctMarkers > 5:
		return Heavy
	case distinctMarkers > 2:
		return Medium
	default:
		return Light
	}
}

func (m Mode) String() string { return string(m) }
