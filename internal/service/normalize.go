package service

import (
	"math"
	"strings"

	"unibridge.app/compass/internal/model"
)

// NormalizeProfile coerces a partial caller-supplied profile into a
// complete, safe-to-score shape. Invalid fields are dropped, never
// rejected: skills and interests are always non-nil, lowercased and
// deduplicated, free text is trimmed, and a non-finite or out-of-range
// GPA is discarded.
func NormalizeProfile(p model.PartialProfile) model.StudentProfile {
	profile := model.StudentProfile{
		Skills:     normalizeTerms(p.Skills),
		Interests:  normalizeTerms(p.Interests),
		Location:   derefTrimmed(p.Location),
		University: derefTrimmed(p.University),
		Department: derefTrimmed(p.Department),
		Level:      derefTrimmed(p.Level),
	}

	if p.GPA != nil {
		gpa := *p.GPA
		if !math.IsNaN(gpa) && !math.IsInf(gpa, 0) && gpa >= 0 && gpa <= 5 {
			profile.GPA = &gpa
		}
	}

	return profile
}

// normalizeTerms lowercases, trims and deduplicates while preserving
// first-seen order. Always returns a non-nil slice.
func normalizeTerms(terms []string) []string {
	result := make([]string, 0, len(terms))
	seen := make(map[string]struct{}, len(terms))
	for _, t := range terms {
		t = strings.ToLower(strings.TrimSpace(t))
		if t == "" {
			continue
		}
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		result = append(result, t)
	}
	return result
}

func derefTrimmed(s *string) string {
	if s == nil {
		return ""
	}
	return strings.TrimSpace(*s)
}
