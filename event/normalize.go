package event

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

// NormalizeSubject returns the canonical form of subject, or of fallback when
// subject is blank.
func NormalizeSubject(subject, fallback string) string {
	normalized := normalizeSubject(subject)
	if normalized != "" {
		return normalized
	}
	normalized = normalizeSubject(fallback)
	if normalized != "" {
		return normalized
	}
	return DefaultSubject
}

func normalizeSubject(subject string) string {
	subject = strings.TrimSpace(subject)
	if subject == "" {
		return ""
	}
	return cases.Lower(language.Und).String(norm.NFC.String(subject))
}

// NormalizeSubjects normalizes a list of subjects, dropping blanks and
// duplicates while keeping the first occurrence order.
func NormalizeSubjects(subjects []string) []string {
	seen := make(map[string]struct{}, len(subjects))
	out := make([]string, 0, len(subjects))
	for _, subject := range subjects {
		normalized := normalizeSubject(subject)
		if normalized == "" {
			continue
		}
		if _, ok := seen[normalized]; ok {
			continue
		}
		seen[normalized] = struct{}{}
		out = append(out, normalized)
	}
	return out
}
