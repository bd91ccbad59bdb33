package service

import (
	"context"
	"fmt"
	"math"
	"regexp"
	"strings"
	"time"
	"unicode"

	"unibridge.app/compass/internal/model"
)

// Term weights for the deterministic score. The GPA requirement check
// is a multiplier on the combined score, not an additive term.
const (
	skillWeight    = 0.4
	interestWeight = 0.25
	locationWeight = 0.15
	deadlineWeight = 0.15

	gpaPenaltyMultiplier = 0.5

	// Opportunities listing no skills share this denominator so a
	// single incidental keyword hit does not score as full coverage.
	skillSetFloor = 3

	// Deadline urgency window: full credit at or under nearTermDays,
	// decaying linearly to deadlineFloor at longTermDays and beyond.
	nearTermDays  = 14
	longTermDays  = 90
	deadlineFloor = 0.1

	// Partial credit for a non-remote opportunity elsewhere: location
	// never excludes, it only ranks.
	locationMismatchCredit = 0.2
)

var gpaRequirementPattern = regexp.MustCompile(`(?i)\bc?gpa\b[^0-9]{0,20}([0-9](?:\.[0-9]+)?)`)

// requirement text words too generic to count as skills
var keywordStopwords = map[string]struct{}{
	"the": {}, "and": {}, "for": {}, "with": {}, "must": {}, "have": {},
	"minimum": {}, "least": {}, "above": {}, "required": {}, "require": {},
	"level": {}, "years": {}, "year": {}, "experience": {}, "student": {},
	"students": {}, "undergraduate": {}, "graduate": {}, "gpa": {},
	"cgpa": {}, "all": {}, "any": {}, "open": {}, "applicants": {},
	"applicant": {}, "knowledge": {}, "strong": {}, "good": {}, "basic": {},
}

// HeuristicScorer scores one opportunity against one normalized
// profile deterministically, with no network access. It is the
// mandatory fallback behind the optional provider-backed ranker and is
// cheap enough to run for every opportunity in a catalog.
type HeuristicScorer struct {
	now func() time.Time
}

func NewHeuristicScorer() *HeuristicScorer {
	return &HeuristicScorer{now: time.Now}
}

// Rank scores every opportunity. It never fails; the error return
// satisfies the Ranker capability interface.
func (s *HeuristicScorer) Rank(_ context.Context, profile model.StudentProfile, opportunities []model.Opportunity) ([]model.MatchResult, error) {
	results := make([]model.MatchResult, len(opportunities))
	now := s.now()
	for i, opp := range opportunities {
		score, reason := s.score(profile, opp, now)
		results[i] = model.MatchResult{Opportunity: opp, Score: score, Reason: reason}
	}
	return results, nil
}

func (s *HeuristicScorer) score(profile model.StudentProfile, opp model.Opportunity, now time.Time) (float64, string) {
	skillTerm, matched := skillOverlap(profile.Skills, opp)
	interestTerm := interestAlignment(profile.Interests, opp)
	locationTerm := locationFit(profile.Location, opp)
	deadlineTerm := deadlineUrgency(opp.Deadline, now)

	score := skillWeight*skillTerm +
		interestWeight*interestTerm +
		locationWeight*locationTerm +
		deadlineWeight*deadlineTerm

	if gpaBelowRequirement(profile.GPA, opp.Requirements) {
		score *= gpaPenaltyMultiplier
	}

	return clamp01(score), buildReason(skillTerm, interestTerm, locationTerm, deadlineTerm, matched, opp.IsRemote)
}

// skillOverlap measures how much of the opportunity's skill demand the
// profile covers. The opportunity's demand set is its listed skills
// plus keywords extracted from requirements text; the denominator is
// the listed skill count, or a small floor when none are listed.
func skillOverlap(profileSkills []string, opp model.Opportunity) (float64, []string) {
	if len(profileSkills) == 0 {
		return 0, nil
	}

	demanded := make(map[string]struct{}, len(opp.Skills))
	for _, s := range opp.Skills {
		s = strings.ToLower(strings.TrimSpace(s))
		if s != "" {
			demanded[s] = struct{}{}
		}
	}
	for _, req := range opp.Requirements {
		for _, kw := range extractKeywords(req) {
			demanded[kw] = struct{}{}
		}
	}
	if len(demanded) == 0 {
		return 0, nil
	}

	var matched []string
	for _, skill := range profileSkills {
		if _, ok := demanded[skill]; ok {
			matched = append(matched, skill)
		}
	}

	denominator := len(opp.Skills)
	if denominator == 0 {
		denominator = skillSetFloor
	}

	return clamp01(float64(len(matched)) / float64(denominator)), matched
}

// extractKeywords pulls skill-looking tokens out of free requirement
// text: lowercased words of three or more characters that are not
// generic requirement phrasing.
func extractKeywords(text string) []string {
	fields := strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '+' && r != '#'
	})
	var keywords []string
	for _, f := range fields {
		if len(f) < 3 {
			continue
		}
		if _, stop := keywordStopwords[f]; stop {
			continue
		}
		keywords = append(keywords, f)
	}
	return keywords
}

// interestAlignment gives full credit when the opportunity type or any
// tag matches a profile interest, case-insensitively.
func interestAlignment(interests []string, opp model.Opportunity) float64 {
	if len(interests) == 0 {
		return 0
	}
	oppType := strings.ToLower(string(opp.Type))
	for _, interest := range interests {
		if interest == oppType {
			return 1
		}
		for _, tag := range opp.Tags {
			if interest == strings.ToLower(tag) {
				return 1
			}
		}
	}
	return 0
}

// locationFit gives full credit for remote opportunities or a
// case-insensitive substring match on location, and small non-zero
// credit otherwise so location never excludes an opportunity.
func locationFit(profileLocation string, opp model.Opportunity) float64 {
	if opp.IsRemote {
		return 1
	}
	if profileLocation != "" && opp.Location != "" {
		oppLoc := strings.ToLower(opp.Location)
		profLoc := strings.ToLower(profileLocation)
		if strings.Contains(oppLoc, profLoc) || strings.Contains(profLoc, oppLoc) {
			return 1
		}
	}
	return locationMismatchCredit
}

// deadlineUrgency is a monotonically decreasing function of days until
// the deadline: full credit inside the near-term window, linear decay
// to a low floor at the long-term window, zero once the deadline has
// passed.
func deadlineUrgency(deadline, now time.Time) float64 {
	days := deadline.Sub(now).Hours() / 24
	switch {
	case days < 0:
		return 0
	case days <= nearTermDays:
		return 1
	case days >= longTermDays:
		return deadlineFloor
	default:
		span := float64(longTermDays - nearTermDays)
		return 1 - (1-deadlineFloor)*(days-nearTermDays)/span
	}
}

// gpaBelowRequirement reports whether the requirements text carries a
// numeric GPA-like threshold the profile GPA falls short of. A profile
// without a GPA is never penalized.
func gpaBelowRequirement(gpa *float64, requirements []string) bool {
	if gpa == nil {
		return false
	}
	for _, req := range requirements {
		m := gpaRequirementPattern.FindStringSubmatch(req)
		if m == nil {
			continue
		}
		var required float64
		if _, err := fmt.Sscanf(m[1], "%f", &required); err != nil {
			continue
		}
		if *gpa < required {
			return true
		}
	}
	return false
}

// buildReason composes a short explanation from the one or two highest
// weighted contributions.
func buildReason(skill, interest, location, deadline float64, matchedSkills []string, isRemote bool) string {
	type contribution struct {
		value  float64
		phrase string
	}

	contributions := []contribution{
		{skillWeight * skill, skillPhrase(skill, matchedSkills)},
		{interestWeight * interest, "Aligned with your interests"},
		{locationWeight * location, locationPhrase(isRemote)},
		{deadlineWeight * deadline, "Deadline approaching soon"},
	}

	// Deadline only reads as a selling point at full urgency credit.
	if deadline < 1 {
		contributions[3].value = 0
	}
	if location < 1 {
		contributions[2].value = 0
	}

	var top []contribution
	for _, c := range contributions {
		if c.value > 0 {
			top = append(top, c)
		}
	}
	if len(top) == 0 {
		return "Worth exploring based on your profile"
	}

	// Highest two contributions, preserving weight order on ties.
	for i := 0; i < len(top); i++ {
		for j := i + 1; j < len(top); j++ {
			if top[j].value > top[i].value {
				top[i], top[j] = top[j], top[i]
			}
		}
	}
	if len(top) > 2 {
		top = top[:2]
	}

	phrases := make([]string, len(top))
	for i, c := range top {
		if i == 0 {
			phrases[i] = c.phrase
		} else {
			phrases[i] = lowerFirst(c.phrase)
		}
	}
	return strings.Join(phrases, "; ")
}

func skillPhrase(skill float64, matched []string) string {
	if len(matched) == 0 {
		return ""
	}
	shown := matched
	if len(shown) > 3 {
		shown = shown[:3]
	}
	if skill >= 0.5 {
		return fmt.Sprintf("Strong skill match (%s)", strings.Join(shown, ", "))
	}
	return fmt.Sprintf("Skill match (%s)", strings.Join(shown, ", "))
}

func locationPhrase(isRemote bool) string {
	if isRemote {
		return "Remote-friendly"
	}
	return "Near your location"
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	r := []rune(s)
	r[0] = unicode.ToLower(r[0])
	return string(r)
}

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}
