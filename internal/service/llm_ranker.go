package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"unibridge.app/compass/common/llm"
	"unibridge.app/compass/internal/model"
)

type rankedItem struct {
	ID     string  `json:"id" jsonschema_description:"Opportunity id, exactly as given"`
	Score  float64 `json:"score" jsonschema_description:"Relevance score between 0.0 and 1.0"`
	Reason string  `json:"reason" jsonschema_description:"One short sentence explaining the score"`
}

type rankingResponse struct {
	Matches []rankedItem `json:"matches" jsonschema_description:"One entry per opportunity"`
}

var rankingSchema = llm.GenerateSchema[rankingResponse]()

const rankingSystemPrompt = `You rank student opportunities (scholarships, bursaries, gigs, internships, grants) for relevance to one student profile.
Score every opportunity between 0.0 and 1.0 considering skill fit, interest alignment, location or remote access, deadline urgency and eligibility requirements.
Return exactly one entry per opportunity, using the given ids. Reasons are one short sentence a student would find helpful.`

// LLMRanker delegates scoring and explanation to the configured
// intelligence provider. It is strictly optional: any error, timeout
// or incomplete response is reported as an error so the engine can
// fall back to the heuristic scorer. A partial ranking is discarded
// entirely to keep scores mutually comparable.
type LLMRanker struct {
	client llm.Client
}

func NewLLMRanker(client llm.Client) *LLMRanker {
	return &LLMRanker{client: client}
}

func (r *LLMRanker) Rank(ctx context.Context, profile model.StudentProfile, opportunities []model.Opportunity) ([]model.MatchResult, error) {
	prompt, err := buildRankingPrompt(profile, opportunities)
	if err != nil {
		return nil, err
	}

	var response rankingResponse
	if _, err := r.client.Chat(ctx, llm.Request{
		SystemPrompt: rankingSystemPrompt,
		UserPrompt:   prompt,
		SchemaName:   "ranking_response",
		Schema:       rankingSchema,
		MaxTokens:    4096,
		Temperature:  llm.Temp(0.1),
	}, &response); err != nil {
		return nil, fmt.Errorf("provider ranking: %w", err)
	}

	return assembleProviderResults(response, opportunities)
}

// assembleProviderResults validates the provider output against the
// input catalog: every opportunity must be scored exactly once, within
// [0,1], with a non-empty reason. Anything less is unusable.
func assembleProviderResults(response rankingResponse, opportunities []model.Opportunity) ([]model.MatchResult, error) {
	if len(response.Matches) != len(opportunities) {
		return nil, fmt.Errorf("provider returned %d results for %d opportunities", len(response.Matches), len(opportunities))
	}

	byID := make(map[string]model.Opportunity, len(opportunities))
	for _, opp := range opportunities {
		byID[opp.ID] = opp
	}

	results := make([]model.MatchResult, 0, len(response.Matches))
	seen := make(map[string]struct{}, len(response.Matches))
	for _, item := range response.Matches {
		opp, ok := byID[item.ID]
		if !ok {
			return nil, fmt.Errorf("provider returned unknown opportunity id %q", item.ID)
		}
		if _, dup := seen[item.ID]; dup {
			return nil, fmt.Errorf("provider returned duplicate opportunity id %q", item.ID)
		}
		seen[item.ID] = struct{}{}
		if item.Score < 0 || item.Score > 1 {
			return nil, fmt.Errorf("provider score %f out of range for %q", item.Score, item.ID)
		}
		reason := strings.TrimSpace(item.Reason)
		if reason == "" {
			return nil, fmt.Errorf("provider returned empty reason for %q", item.ID)
		}
		results = append(results, model.MatchResult{
			Opportunity: opp,
			Score:       item.Score,
			Reason:      reason,
		})
	}

	return results, nil
}

func buildRankingPrompt(profile model.StudentProfile, opportunities []model.Opportunity) (string, error) {
	type promptOpportunity struct {
		ID           string   `json:"id"`
		Type         string   `json:"type"`
		Title        string   `json:"title"`
		Organization string   `json:"organization"`
		Skills       []string `json:"skills"`
		Requirements []string `json:"requirements"`
		Location     string   `json:"location"`
		IsRemote     bool     `json:"isRemote"`
		Deadline     string   `json:"deadline"`
		Tags         []string `json:"tags"`
	}

	compact := make([]promptOpportunity, len(opportunities))
	for i, opp := range opportunities {
		compact[i] = promptOpportunity{
			ID:           opp.ID,
			Type:         string(opp.Type),
			Title:        opp.Title,
			Organization: opp.Organization,
			Skills:       opp.Skills,
			Requirements: opp.Requirements,
			Location:     opp.Location,
			IsRemote:     opp.IsRemote,
			Deadline:     opp.Deadline.Format("2006-01-02"),
			Tags:         opp.Tags,
		}
	}

	profileJSON, err := json.Marshal(profile)
	if err != nil {
		return "", fmt.Errorf("marshal profile: %w", err)
	}
	catalogJSON, err := json.Marshal(compact)
	if err != nil {
		return "", fmt.Errorf("marshal opportunities: %w", err)
	}

	return fmt.Sprintf("Student profile:\n%s\n\nOpportunities:\n%s", profileJSON, catalogJSON), nil
}
