package scout

import (
	"regexp"
	"strings"
)

// DefaultKeywords are searched when a trigger request names none.
var DefaultKeywords = []string{
	"subsidiya", "grant", "soliq imtiyozi", "kredit",
	"tadbirkorlik", "kichik biznes", "yoshlar tadbirkorligi",
	"soliq ta'tili", "davlat yordami", "imtiyozli kredit",
}

// DefaultDateFilter restricts searches to recent documents.
const DefaultDateFilter = "after:2025-01-01"

// decreeIDPatterns match canonical decree identifiers in Latin and
// Cyrillic forms, with an optional dash or en dash.
var decreeIDPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(PQ[-–]?\d+)`),
	regexp.MustCompile(`(?i)(PD[-–]?\d+)`),
	regexp.MustCompile(`(?i)(ПҚ[-–]?\d+)`),
	regexp.MustCompile(`(?i)(ПФ[-–]?\d+)`),
}

// ExtractDecreeID extracts a decree identifier such as "PQ-60" from a URL
// or title. Returns "" when no pattern matches. The result is uppercased
// with en dashes normalized to hyphens.
func ExtractDecreeID(text string) string {
	for _, pattern := range decreeIDPatterns {
		if match := pattern.FindStringSubmatch(text); match != nil {
			id := strings.ToUpper(match[1])
			return strings.ReplaceAll(id, "–", "-")
		}
	}
	return ""
}
