package service_test

import (
	"context"
	"encoding/json"

	"unibridge.app/compass/common/llm"
	"unibridge.app/compass/internal/model"
	"unibridge.app/compass/internal/service"
)

type mockRanker struct {
	rankFn func(ctx context.Context, profile model.StudentProfile, opportunities []model.Opportunity) ([]model.MatchResult, error)
}

func (m *mockRanker) Rank(ctx context.Context, profile model.StudentProfile, opportunities []model.Opportunity) ([]model.MatchResult, error) {
	if m.rankFn != nil {
		return m.rankFn(ctx, profile, opportunities)
	}
	return nil, nil
}

var _ service.Ranker = (*mockRanker)(nil)

// mockLLMClient satisfies llm.Client. chatFn returns the raw JSON the
// provider would have produced; it is unmarshalled into result the
// same way the real clients do.
type mockLLMClient struct {
	chatFn func(ctx context.Context, req llm.Request) (string, error)
}

func (m *mockLLMClient) Chat(ctx context.Context, req llm.Request, result any) (*llm.Response, error) {
	if m.chatFn == nil {
		return &llm.Response{}, nil
	}
	raw, err := m.chatFn(ctx, req)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal([]byte(raw), result); err != nil {
		return nil, err
	}
	return &llm.Response{}, nil
}

func (m *mockLLMClient) Model() string {
	return "mock-model"
}

var _ llm.Client = (*mockLLMClient)(nil)
