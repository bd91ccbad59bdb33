package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"unibridge.app/compass/common/llm"
	"unibridge.app/compass/common/logger"
	"unibridge.app/compass/internal/model"
)

const maxFollowUps = 4

// WellnessService classifies a check-in message as urgent or routine
// and produces a safe conversational response.
type WellnessService interface {
	Triage(ctx context.Context, message string, mood model.Mood) (model.TriageDecision, error)
}

type wellnessService struct {
	client          llm.Client // nil when no provider is configured
	providerTimeout time.Duration
}

// NewWellnessService builds the triage classifier. client may be nil,
// in which case responses always come from the fixed templates.
func NewWellnessService(client llm.Client, providerTimeout time.Duration) WellnessService {
	if providerTimeout <= 0 {
		providerTimeout = 4 * time.Second
	}
	return &wellnessService{client: client, providerTimeout: providerTimeout}
}

type triageResponse struct {
	Urgent    bool     `json:"urgent" jsonschema_description:"True only if the message suggests a crisis needing human intervention"`
	Response  string   `json:"response" jsonschema_description:"Supportive response, 2-4 sentences"`
	FollowUps []string `json:"followUps" jsonschema_description:"Up to 4 short practical follow-up prompts; empty when urgent"`
}

var triageSchema = llm.GenerateSchema[triageResponse]()

const triageSystemPrompt = `You support university students through short wellness check-ins.
Be warm, specific and brief. Suggest practical next steps for study stress, focus, time pressure or loneliness.
Set urgent to true only when the message suggests self-harm, suicidal thoughts or another crisis requiring a human counsellor. You are not a therapist and must not diagnose.`

// Triage runs the per-call state machine: extract crisis signals,
// decide urgency, then compose the response via a single bounded
// provider attempt when one is configured, or fixed templates
// otherwise. The keyword extractor is authoritative for escalation:
// the provider may escalate a decision to urgent but can never
// de-escalate one, and crisis responses always come from the fixed
// template so hotline guidance cannot be phrased away.
func (s *wellnessService) Triage(ctx context.Context, message string, mood model.Mood) (model.TriageDecision, error) {
	ctx = logger.WithLogFields(ctx, logger.LogFields{
		Mood:      logger.Ptr(string(mood)),
		Component: "compass.service.wellness",
	})

	crisis, categories := crisisSignals(message)
	if crisis {
		slog.InfoContext(ctx, "crisis signals detected", "categories", categories)
		return crisisDecision(), nil
	}

	themes := detectThemes(message)

	if decision, err := s.providerTriage(ctx, message, mood); err == nil {
		return decision, nil
	} else {
		slog.WarnContext(ctx, "provider triage unavailable, using template response",
			"error", err, "themes", themes)
	}

	return model.TriageDecision{
		Urgent:    false,
		Response:  templateResponse(mood, themes),
		FollowUps: templateFollowUps(themes),
	}, nil
}

func (s *wellnessService) providerTriage(ctx context.Context, message string, mood model.Mood) (model.TriageDecision, error) {
	if s.client == nil {
		return model.TriageDecision{}, fmt.Errorf("no provider configured")
	}

	ctx, cancel := context.WithTimeout(ctx, s.providerTimeout)
	defer cancel()

	var response triageResponse
	if _, err := s.client.Chat(ctx, llm.Request{
		SystemPrompt: triageSystemPrompt,
		UserPrompt:   fmt.Sprintf("Mood: %s\nMessage: %s", mood, message),
		SchemaName:   "triage_response",
		Schema:       triageSchema,
		MaxTokens:    600,
		Temperature:  llm.Temp(0.4),
	}, &response); err != nil {
		return model.TriageDecision{}, fmt.Errorf("provider triage: %w", err)
	}

	// The provider may escalate; the crisis template then applies.
	if response.Urgent {
		slog.InfoContext(ctx, "provider escalated check-in to urgent")
		return crisisDecision(), nil
	}

	text := strings.TrimSpace(response.Response)
	if text == "" {
		return model.TriageDecision{}, fmt.Errorf("provider returned empty response")
	}

	followUps := make([]string, 0, maxFollowUps)
	for _, f := range response.FollowUps {
		f = strings.TrimSpace(f)
		if f == "" {
			continue
		}
		followUps = append(followUps, f)
		if len(followUps) == maxFollowUps {
			break
		}
	}

	return model.TriageDecision{
		Urgent:    false,
		Response:  text,
		FollowUps: followUps,
	}, nil
}

// crisisDecision is the fixed urgent-path reply: acknowledgment plus
// explicit guidance to reach a human, with no casual follow-ups.
func crisisDecision() model.TriageDecision {
	return model.TriageDecision{
		Urgent: true,
		Response: "I'm really glad you told me this, and I'm concerned about how much pain you're in right now. " +
			"Please reach out to someone who can properly support you immediately: speak to your campus counsellor, " +
			"call a crisis hotline, or contact a trusted person near you. You don't have to carry this alone, " +
			"and talking to a trained human right now is the most important next step.",
		FollowUps: []string{},
	}
}

var themeResponses = map[string]string{
	themeExams: "Exam pressure is one of the most common things students carry, and it says nothing about your ability. " +
		"Feeling stressed before assessments is your mind taking them seriously.",
	themeFocus: "Struggling to focus usually means your brain is overloaded, not lazy. " +
		"Short, deliberate study blocks with real breaks tend to work far better than forcing long sessions.",
	themeTime: "Feeling behind is exhausting, but workloads shrink fast once they're broken into small, concrete next steps.",
	themeIsolation: "Feeling alone at university is more common than it looks from the outside, " +
		"and reaching out, even in a small way, tends to help more than it feels like it will.",
}

var moodResponses = map[model.Mood]string{
	model.MoodHappy:    "It's great to hear from you. Noticing and naming the good moments is a real wellness skill.",
	model.MoodNeutral:  "Thanks for checking in. Taking a moment to reflect on how you're doing is a good habit.",
	model.MoodAnxious:  "Anxiety can make everything feel bigger than it is. What you're feeling is valid, and it will pass.",
	model.MoodStressed: "That sounds like a lot to carry. Stress is a signal to slow down, not a sign you're failing.",
	model.MoodSad:      "I'm sorry things feel heavy right now. Low days are part of being human, and they do ease.",
}

// templateResponse composes the fallback supportive reply from the
// strongest detected theme, prefixed with a mood acknowledgment.
func templateResponse(mood model.Mood, themes []string) string {
	base, ok := moodResponses[mood]
	if !ok {
		base = moodResponses[model.MoodNeutral]
	}
	if len(themes) == 0 {
		return base + " Is there anything specific on your mind you'd like to talk through?"
	}
	return base + " " + themeResponses[themes[0]]
}

var themeFollowUpPrompts = map[string][]string{
	themeExams: {
		"Would a simple revision plan for your next exam help?",
		"Have you tried 25-minute study blocks with short breaks?",
	},
	themeFocus: {
		"Would tips for cutting study distractions be useful?",
		"Could you try putting your phone in another room for one session?",
	},
	themeTime: {
		"Want to sketch out a rough weekly schedule together?",
		"What's the single smallest task you could finish today?",
	},
	themeIsolation: {
		"Is there a coursemate or friend you could message today?",
		"Would joining one campus group or study circle feel manageable?",
	},
}

var genericFollowUps = []string{
	"How has your sleep been this week?",
	"What's one small thing that went well recently?",
	"Would it help to talk through what tomorrow looks like?",
}

// templateFollowUps derives up to four practical prompts from the
// detected themes, padding with gentle generic prompts when themes are
// sparse.
func templateFollowUps(themes []string) []string {
	followUps := make([]string, 0, maxFollowUps)
	for _, theme := range themes {
		for _, prompt := range themeFollowUpPrompts[theme] {
			if len(followUps) == maxFollowUps {
				return followUps
			}
			followUps = append(followUps, prompt)
		}
	}
	for _, prompt := range genericFollowUps {
		if len(followUps) >= 2 {
			break
		}
		followUps = append(followUps, prompt)
	}
	return followUps
}
