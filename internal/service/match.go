package service

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"unibridge.app/compass/common/logger"
	"unibridge.app/compass/internal/model"
)

// Ranker is the scoring capability behind the ranking engine: one
// score and reason per opportunity. Two implementations exist, the
// provider-backed LLMRanker and the deterministic HeuristicScorer,
// and the engine selects between them at call time.
type Ranker interface {
	Rank(ctx context.Context, profile model.StudentProfile, opportunities []model.Opportunity) ([]model.MatchResult, error)
}

// MatchService ranks an opportunity catalog against a student profile.
type MatchService interface {
	Rank(ctx context.Context, profile model.PartialProfile, opportunities []model.Opportunity) (model.StudentProfile, []model.MatchResult, error)
}

type matchService struct {
	provider        Ranker // nil when no provider is configured
	fallback        Ranker
	providerTimeout time.Duration
}

// NewMatchService builds the ranking engine. provider may be nil, in
// which case every request takes the heuristic path.
func NewMatchService(provider Ranker, fallback Ranker, providerTimeout time.Duration) MatchService {
	if providerTimeout <= 0 {
		providerTimeout = 6 * time.Second
	}
	return &matchService{
		provider:        provider,
		fallback:        fallback,
		providerTimeout: providerTimeout,
	}
}

// Rank normalizes the profile, makes a single bounded attempt against
// the provider, and on any failure scores every opportunity with the
// heuristic instead. The two paths are mutually exclusive per call so
// all scores in one response are mutually comparable. Callers must not
// pass an empty catalog; for non-empty input the engine always returns
// one result per opportunity.
func (s *matchService) Rank(ctx context.Context, partial model.PartialProfile, opportunities []model.Opportunity) (model.StudentProfile, []model.MatchResult, error) {
	ctx = logger.WithLogFields(ctx, logger.LogFields{
		OpportunityCount: logger.Ptr(len(opportunities)),
		Component:        "compass.service.match",
	})

	profile := NormalizeProfile(partial)

	results, err := s.providerRank(ctx, profile, opportunities)
	if err != nil {
		slog.WarnContext(ctx, "provider ranking unavailable, using heuristic scores", "error", err)
		results, err = s.fallback.Rank(ctx, profile, opportunities)
		if err != nil {
			return profile, nil, fmt.Errorf("heuristic ranking: %w", err)
		}
	}

	sortResults(results)
	return profile, results, nil
}

func (s *matchService) providerRank(ctx context.Context, profile model.StudentProfile, opportunities []model.Opportunity) ([]model.MatchResult, error) {
	if s.provider == nil {
		return nil, fmt.Errorf("no provider configured")
	}

	ctx, cancel := context.WithTimeout(ctx, s.providerTimeout)
	defer cancel()

	start := time.Now()
	results, err := s.provider.Rank(ctx, profile, opportunities)
	if err != nil {
		return nil, err
	}
	slog.DebugContext(ctx, "provider ranking succeeded",
		"duration_ms", time.Since(start).Milliseconds())
	return results, nil
}

// sortResults orders descending by score; ties break toward the nearer
// deadline, then the more recently created opportunity. The sort is
// stable so equal entries keep their catalog order.
func sortResults(results []model.MatchResult) {
	sort.SliceStable(results, func(i, j int) bool {
		if results[i].Score != results[j].Score {
			return results[i].Score > results[j].Score
		}
		di, dj := results[i].Opportunity.Deadline, results[j].Opportunity.Deadline
		if !di.Equal(dj) {
			return di.Before(dj)
		}
		return results[i].Opportunity.CreatedAt.After(results[j].Opportunity.CreatedAt)
	})
}
