package detect

import (
	"strings"

	"flavor_remover/internal/lexicon"
	"flavor_remover/internal/tier"
)

type MarkerCount struct {
	Marker string `json:"marker"`
	Count  int    `json:"count"`
}

// Report is the detection result for one document.
type Report struct {
	HighFrequencyMarkers []MarkerCount `json:"high_frequency_markers"`
	MechanicalMatches    []string      `json:"mechanical_matches"`
	RecommendedMode      tier.Mode     `json:"recommended_mode"`
}

// TotalOccurrences sums the counts of every detected marker.
func (r Report) TotalOccurrences() int {
	n := 0
	for _, m := range r.HighFrequencyMarkers {
		n += m.Count
	}
	return n
}

type Detector struct {
	lex *lexicon.Lexicon
}

func New(lex *lexicon.Lexicon) *Detector {
	if lex == nil {
		lex = lexicon.Default()
	}
	return &Detector{lex: lex}
}

// Detect scans text for flavor markers and mechanical sentence shapes.
// It never modifies text and always returns non-nil slices.
func (d *Detector) Detect(text string) Report {
	report := Report{
		HighFrequencyMarkers: []MarkerCount{},
		MechanicalMatches:    []string{},
		RecommendedMode:      tier.Light,
	}
	if text == "" {
		return report
	}

	for _, marker := range d.lex.Markers() {
		if count := strings.Count(text, marker); count > 0 {
			report.HighFrequencyMarkers = append(report.HighFrequencyMarkers, MarkerCount{Marker: marker, Count: count})
		}
	}

	for _, p := range d.lex.Patterns() {
		if p.Expr.MatchString(text) {
			report.MechanicalMatches = append(report.MechanicalMatches, p.ID)
		}
	}

	report.RecommendedMode = tier.Recommend(len(report.HighFrequencyMarkers))
	return report
}
