package model

// Mood is the self-reported feeling tag attached to a wellness check-in.
type Mood string

const (
	MoodHappy    Mood = "happy"
	MoodNeutral  Mood = "neutral"
	MoodAnxious  Mood = "anxious"
	MoodStressed Mood = "stressed"
	MoodSad      Mood = "sad"
)

// NormalizeMood maps arbitrary caller input to a known mood,
// defaulting to neutral. The check-in client free-types mood ids, so
// unknown values are normalized rather than rejected.
func NormalizeMood(s string) Mood {
	switch Mood(s) {
	case MoodHappy, MoodNeutral, MoodAnxious, MoodStressed, MoodSad:
		return Mood(s)
	default:
		return MoodNeutral
	}
}

// TriageDecision is the outcome of classifying a check-in message.
// Urgent decisions carry crisis guidance and never include follow-up
// prompts.
type TriageDecision struct {
	Urgent    bool     `json:"urgent"`
	Response  string   `json:"response"`
	FollowUps []string `json:"followUps"`
}
