package handler_test

import (
	"context"

	"unibridge.app/compass/internal/catalog"
	"unibridge.app/compass/internal/model"
	"unibridge.app/compass/internal/service"
)

type mockMatchService struct {
	rankFn func(ctx context.Context, profile model.PartialProfile, opportunities []model.Opportunity) (model.StudentProfile, []model.MatchResult, error)
}

func (m *mockMatchService) Rank(ctx context.Context, profile model.PartialProfile, opportunities []model.Opportunity) (model.StudentProfile, []model.MatchResult, error) {
	if m.rankFn != nil {
		return m.rankFn(ctx, profile, opportunities)
	}
	return model.StudentProfile{}, nil, nil
}

var _ service.MatchService = (*mockMatchService)(nil)

type mockWellnessService struct {
	triageFn func(ctx context.Context, message string, mood model.Mood) (model.TriageDecision, error)
}

func (m *mockWellnessService) Triage(ctx context.Context, message string, mood model.Mood) (model.TriageDecision, error) {
	if m.triageFn != nil {
		return m.triageFn(ctx, message, mood)
	}
	return model.TriageDecision{}, nil
}

var _ service.WellnessService = (*mockWellnessService)(nil)

type mockSource struct {
	activeFn func(ctx context.Context) ([]model.Opportunity, error)
}

func (m *mockSource) Active(ctx context.Context) ([]model.Opportunity, error) {
	if m.activeFn != nil {
		return m.activeFn(ctx)
	}
	return nil, nil
}

var _ catalog.Source = (*mockSource)(nil)
