package service_test

import (
	"context"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"unibridge.app/compass/internal/model"
	"unibridge.app/compass/internal/service"
)

func opportunityIn(days int) model.Opportunity {
	return model.Opportunity{
		ID:           "opp-1",
		Type:         model.OpportunityScholarship,
		Title:        "STEM Scholarship",
		Organization: "UniBridge Foundation",
		Currency:     "NGN",
		Deadline:     time.Now().AddDate(0, 0, days),
		Requirements: []string{},
		Skills:       []string{},
		Location:     "Nigeria",
		Tags:         []string{},
		CreatedAt:    time.Now().AddDate(0, 0, -30),
	}
}

var _ = Describe("HeuristicScorer", func() {
	var (
		scorer *service.HeuristicScorer
		ctx    context.Context
	)

	BeforeEach(func() {
		scorer = service.NewHeuristicScorer()
		ctx = context.Background()
	})

	rank := func(profile model.StudentProfile, opps ...model.Opportunity) []model.MatchResult {
		results, err := scorer.Rank(ctx, profile, opps)
		Expect(err).NotTo(HaveOccurred())
		Expect(results).To(HaveLen(len(opps)))
		return results
	}

	It("returns one result per opportunity with scores in [0,1]", func() {
		profile := service.NormalizeProfile(model.PartialProfile{})
		results := rank(profile, opportunityIn(5), opportunityIn(40), opportunityIn(200))
		for _, r := range results {
			Expect(r.Score).To(BeNumerically(">=", 0))
			Expect(r.Score).To(BeNumerically("<=", 1))
			Expect(r.Reason).NotTo(BeEmpty())
		}
	})

	It("scores a remote near-deadline opportunity above zero for an empty profile", func() {
		opp := opportunityIn(5)
		opp.IsRemote = true

		profile := service.NormalizeProfile(model.PartialProfile{})
		results := rank(profile, opp)

		// Location and deadline terms dominate: 0.15 + 0.15.
		Expect(results[0].Score).To(BeNumerically("~", 0.30, 0.001))
		Expect(results[0].Score).To(BeNumerically(">", 0))
	})

	It("reflects partial skill coverage and names the matched skills", func() {
		opp := opportunityIn(5)
		opp.Skills = []string{"react", "typescript", "sql"}

		profile := service.NormalizeProfile(model.PartialProfile{
			Skills: []string{"react", "typescript"},
		})
		noSkills := service.NormalizeProfile(model.PartialProfile{})

		with := rank(profile, opp)[0]
		without := rank(noSkills, opp)[0]

		// 2 of 3 demanded skills covered, weighted 0.4.
		Expect(with.Score - without.Score).To(BeNumerically("~", 0.4*2.0/3.0, 0.001))
		Expect(with.Reason).To(ContainSubstring("react"))
		Expect(with.Reason).To(ContainSubstring("typescript"))
	})

	It("scores an expired opportunity strictly lower than an otherwise identical future one", func() {
		expired := opportunityIn(-3)
		upcoming := opportunityIn(10)
		upcoming.ID = "opp-2"

		profile := service.NormalizeProfile(model.PartialProfile{})
		results := rank(profile, expired, upcoming)

		var expiredScore, upcomingScore float64
		for _, r := range results {
			if r.Opportunity.ID == "opp-1" {
				expiredScore = r.Score
			} else {
				upcomingScore = r.Score
			}
		}
		Expect(expiredScore).To(BeNumerically("<", upcomingScore))
	})

	It("matches skills demanded through requirements text", func() {
		opp := opportunityIn(5)
		opp.Requirements = []string{"Must have Python and data analysis experience"}

		profile := service.NormalizeProfile(model.PartialProfile{Skills: []string{"python"}})
		noSkills := service.NormalizeProfile(model.PartialProfile{})

		with := rank(profile, opp)[0]
		without := rank(noSkills, opp)[0]
		Expect(with.Score).To(BeNumerically(">", without.Score))
		Expect(with.Reason).To(ContainSubstring("python"))
	})

	It("gives full interest credit for a type match", func() {
		opp := opportunityIn(5)
		profile := service.NormalizeProfile(model.PartialProfile{Interests: []string{"scholarship"}})
		neutral := service.NormalizeProfile(model.PartialProfile{})

		with := rank(profile, opp)[0]
		without := rank(neutral, opp)[0]
		Expect(with.Score - without.Score).To(BeNumerically("~", 0.25, 0.001))
	})

	It("gives full interest credit for a tag match", func() {
		opp := opportunityIn(5)
		opp.Tags = []string{"Engineering", "STEM"}
		profile := service.NormalizeProfile(model.PartialProfile{Interests: []string{"engineering"}})
		neutral := service.NormalizeProfile(model.PartialProfile{})

		with := rank(profile, opp)[0]
		without := rank(neutral, opp)[0]
		Expect(with.Score - without.Score).To(BeNumerically("~", 0.25, 0.001))
	})

	It("gives no interest credit for a partial tag overlap", func() {
		opp := opportunityIn(5)
		opp.Tags = []string{"Training", "Startup"}
		profile := service.NormalizeProfile(model.PartialProfile{Interests: []string{"ai", "art"}})
		neutral := service.NormalizeProfile(model.PartialProfile{})

		with := rank(profile, opp)[0]
		without := rank(neutral, opp)[0]
		Expect(with.Score).To(BeNumerically("~", without.Score, 0.001))
	})

	It("credits a location match like remote access", func() {
		opp := opportunityIn(5)
		opp.Location = "Lagos, Nigeria"
		profile := service.NormalizeProfile(model.PartialProfile{Location: strPtr("Lagos")})
		elsewhere := service.NormalizeProfile(model.PartialProfile{Location: strPtr("Abuja")})

		near := rank(profile, opp)[0]
		far := rank(elsewhere, opp)[0]
		Expect(near.Score - far.Score).To(BeNumerically("~", 0.15*0.8, 0.001))
	})

	It("halves the score when the profile GPA falls below a stated requirement", func() {
		opp := opportunityIn(5)
		opp.Requirements = []string{"Minimum CGPA of 4.5 required"}

		below := service.NormalizeProfile(model.PartialProfile{GPA: floatPtr(3.0)})
		none := service.NormalizeProfile(model.PartialProfile{})

		penalized := rank(below, opp)[0]
		unpenalized := rank(none, opp)[0]
		Expect(penalized.Score).To(BeNumerically("~", unpenalized.Score*0.5, 0.001))
	})

	It("does not penalize a GPA that meets the requirement", func() {
		opp := opportunityIn(5)
		opp.Requirements = []string{"Minimum CGPA of 3.5"}

		meets := service.NormalizeProfile(model.PartialProfile{GPA: floatPtr(4.0)})
		none := service.NormalizeProfile(model.PartialProfile{})

		Expect(rank(meets, opp)[0].Score).To(BeNumerically("~", rank(none, opp)[0].Score, 0.001))
	})

	It("is deterministic for identical inputs", func() {
		opp := opportunityIn(20)
		opp.Skills = []string{"design", "writing"}
		profile := service.NormalizeProfile(model.PartialProfile{
			Skills:    []string{"design"},
			Interests: []string{"gig"},
		})

		first := rank(profile, opp)
		second := rank(profile, opp)
		Expect(first).To(Equal(second))
	})
})
