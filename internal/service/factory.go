package service

import (
	"log/slog"

	"unibridge.app/compass/common/llm"
	"unibridge.app/compass/core/config"
)

// Services wires the decision core once per process. Provider clients
// are constructed here and reused across requests; per-request state
// lives entirely in call arguments.
type Services struct {
	match    MatchService
	wellness WellnessService
}

func NewServices(cfg config.Config) *Services {
	var matchRanker Ranker
	if cfg.Match.LLM.Enabled() {
		client, err := llm.New(cfg.Match.LLM)
		if err != nil {
			slog.Warn("match provider disabled", "error", err)
		} else {
			matchRanker = NewLLMRanker(client)
		}
	}

	var triageClient llm.Client
	if cfg.Triage.LLM.Enabled() {
		client, err := llm.New(cfg.Triage.LLM)
		if err != nil {
			slog.Warn("triage provider disabled", "error", err)
		} else {
			triageClient = client
		}
	}

	return &Services{
		match:    NewMatchService(matchRanker, NewHeuristicScorer(), cfg.Match.ProviderTimeout),
		wellness: NewWellnessService(triageClient, cfg.Triage.ProviderTimeout),
	}
}

func (s *Services) Match() MatchService {
	return s.match
}

func (s *Services) Wellness() WellnessService {
	return s.wellness
}
