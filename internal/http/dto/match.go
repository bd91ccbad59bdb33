package dto

import "unibridge.app/compass/internal/model"

// MatchRequest is the ranking entry point payload. Both fields are
// optional: a missing profile ranks against an empty one, and a
// missing catalog is filled from the live opportunity source.
type MatchRequest struct {
	Profile       *model.PartialProfile `json:"profile"`
	Opportunities []model.Opportunity   `json:"opportunities"`
}

// PartialProfile returns the caller's profile, or an empty one.
func (r MatchRequest) PartialProfile() model.PartialProfile {
	if r.Profile == nil {
		return model.PartialProfile{}
	}
	return *r.Profile
}

type MatchResponse struct {
	Profile model.StudentProfile `json:"profile"`
	Total   int                  `json:"total"`
	Matches []model.MatchResult  `json:"matches"`
}

// ToMatchResponse shapes the engine's full ranking for presentation:
// the top-N slice plus the total ranked count.
func ToMatchResponse(profile model.StudentProfile, results []model.MatchResult, topN int) MatchResponse {
	matches := results
	if topN > 0 && len(matches) > topN {
		matches = matches[:topN]
	}
	return MatchResponse{
		Profile: profile,
		Total:   len(results),
		Matches: matches,
	}
}
