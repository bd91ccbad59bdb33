package service_test

import (
	"context"
	"errors"
	"fmt"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"unibridge.app/compass/common/llm"
	"unibridge.app/compass/internal/model"
	"unibridge.app/compass/internal/service"
)

var _ = Describe("LLMRanker", func() {
	var (
		ctx     context.Context
		profile model.StudentProfile
		opps    []model.Opportunity
	)

	BeforeEach(func() {
		ctx = context.Background()
		profile = service.NormalizeProfile(model.PartialProfile{Skills: []string{"react"}})
		first := opportunityIn(5)
		second := opportunityIn(30)
		second.ID = "opp-2"
		opps = []model.Opportunity{first, second}
	})

	It("returns provider scores and reasons for a complete response", func() {
		client := &mockLLMClient{
			chatFn: func(_ context.Context, req llm.Request) (string, error) {
				Expect(req.UserPrompt).To(ContainSubstring("opp-1"))
				Expect(req.UserPrompt).To(ContainSubstring("react"))
				return `{"matches":[
					{"id":"opp-1","score":0.8,"reason":"Great skill fit"},
					{"id":"opp-2","score":0.4,"reason":"Loosely related"}
				]}`, nil
			},
		}
		ranker := service.NewLLMRanker(client)

		results, err := ranker.Rank(ctx, profile, opps)
		Expect(err).NotTo(HaveOccurred())
		Expect(results).To(HaveLen(2))
		Expect(results[0].Opportunity.ID).To(Equal("opp-1"))
		Expect(results[0].Score).To(Equal(0.8))
		Expect(results[0].Reason).To(Equal("Great skill fit"))
	})

	It("rejects a partial ranking entirely", func() {
		client := &mockLLMClient{
			chatFn: func(context.Context, llm.Request) (string, error) {
				return `{"matches":[{"id":"opp-1","score":0.8,"reason":"only one"}]}`, nil
			},
		}
		_, err := service.NewLLMRanker(client).Rank(ctx, profile, opps)
		Expect(err).To(MatchError(ContainSubstring("1 results for 2 opportunities")))
	})

	It("rejects unknown opportunity ids", func() {
		client := &mockLLMClient{
			chatFn: func(context.Context, llm.Request) (string, error) {
				return `{"matches":[
					{"id":"opp-1","score":0.8,"reason":"ok"},
					{"id":"opp-99","score":0.4,"reason":"hallucinated"}
				]}`, nil
			},
		}
		_, err := service.NewLLMRanker(client).Rank(ctx, profile, opps)
		Expect(err).To(MatchError(ContainSubstring("unknown opportunity id")))
	})

	It("rejects duplicated opportunity ids", func() {
		client := &mockLLMClient{
			chatFn: func(context.Context, llm.Request) (string, error) {
				return `{"matches":[
					{"id":"opp-1","score":0.8,"reason":"ok"},
					{"id":"opp-1","score":0.4,"reason":"again"}
				]}`, nil
			},
		}
		_, err := service.NewLLMRanker(client).Rank(ctx, profile, opps)
		Expect(err).To(MatchError(ContainSubstring("duplicate opportunity id")))
	})

	DescribeTable("rejects out-of-range scores",
		func(score float64) {
			client := &mockLLMClient{
				chatFn: func(context.Context, llm.Request) (string, error) {
					return fmt.Sprintf(`{"matches":[
						{"id":"opp-1","score":%f,"reason":"ok"},
						{"id":"opp-2","score":0.4,"reason":"ok"}
					]}`, score), nil
				},
			}
			_, err := service.NewLLMRanker(client).Rank(ctx, profile, opps)
			Expect(err).To(MatchError(ContainSubstring("out of range")))
		},
		Entry("negative", -0.1),
		Entry("above one", 1.5),
	)

	It("rejects empty reasons", func() {
		client := &mockLLMClient{
			chatFn: func(context.Context, llm.Request) (string, error) {
				return `{"matches":[
					{"id":"opp-1","score":0.8,"reason":"  "},
					{"id":"opp-2","score":0.4,"reason":"ok"}
				]}`, nil
			},
		}
		_, err := service.NewLLMRanker(client).Rank(ctx, profile, opps)
		Expect(err).To(MatchError(ContainSubstring("empty reason")))
	})

	It("propagates transport errors for the engine to absorb", func() {
		client := &mockLLMClient{
			chatFn: func(context.Context, llm.Request) (string, error) {
				return "", errors.New("connection reset")
			},
		}
		_, err := service.NewLLMRanker(client).Rank(ctx, profile, opps)
		Expect(err).To(MatchError(ContainSubstring("connection reset")))
	})
})
