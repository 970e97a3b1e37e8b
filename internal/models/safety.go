package models

import (
	"fmt"
	"strings"
)

// Severity is ordered: a larger value is a worse tier.
type Severity int

const (
	SeveritySafe Severity = iota
	SeverityLow
	SeverityMedium
	SeverityHigh
	SeverityCritical
)

var severityNames = [...]string{"safe", "low", "medium", "high", "critical"}

var severityLabels = [...]string{"Verified Safe", "Generally Safe", "Use Caution", "Not Recommended", "Unsafe"}

func (s Severity) String() string {
	if s < SeveritySafe || s > SeverityCritical {
		return fmt.Sprintf("Severity(%d)", int(s))
	}
	return severityNames[s]
}

// Label is the badge text shown next to a listing.
func (s Severity) Label() string {
	if s < SeveritySafe || s > SeverityCritical {
		return "Unknown"
	}
	return severityLabels[s]
}

// AtLeast escalates s to min; it never lowers a tier.
func (s Severity) AtLeast(min Severity) Severity {
	if s < min {
		return min
	}
	return s
}

func (s Severity) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

func (s *Severity) UnmarshalText(text []byte) error {
	name := strings.ToLower(string(text))
	for i, n := range severityNames {
		if n == name {
			*s = Severity(i)
			return nil
		}
	}
	return fmt.Errorf("unknown severity %q", text)
}

type SafetyResult struct {
	IsSafe   bool     `json:"isSafe"`
	Warnings []string `json:"warnings"`
	Severity Severity `json:"severity"`
	Label    string   `json:"label"`
}
