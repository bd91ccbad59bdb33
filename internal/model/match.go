package model

// MatchResult pairs an opportunity with its relevance score and a short
// human-readable explanation. Scores are always in [0,1]. Results for
// one ranking call are sorted descending by score, ties broken by
// nearer deadline, then by more recent creation.
type MatchResult struct {
	Opportunity Opportunity `json:"opportunity"`
	Score       float64     `json:"score"`
	Reason      string      `json:"reason"`
}
