package service

import "strings"

// Crisis trigger phrases, scanned case-insensitively anywhere in the
// message. The categories follow counselling triage practice: explicit
// self-harm, suicidal ideation, and hopelessness phrasing that reads
// as ideation. The list is deliberately a reviewable table; extending
// it never touches detection logic. Validate additions against real
// transcripts before deployment.
var crisisPhrases = map[string][]string{
	"self-harm": {
		"hurt myself", "hurting myself", "cut myself", "cutting myself",
		"harm myself", "harming myself", "self-harm", "self harm",
	},
	"suicidal-ideation": {
		"kill myself", "suicide", "suicidal", "end my life", "end it all",
		"want to die", "wish i was dead", "wish i were dead",
		"better off dead", "take my own life",
	},
	"hopelessness": {
		"no reason to live", "nothing to live for", "can't go on",
		"cannot go on", "no way out", "everyone would be better without me",
	},
}

// Conversation themes used to pick supportive responses and follow-up
// prompts on the non-urgent path.
const (
	themeExams     = "exams"
	themeFocus     = "focus"
	themeTime      = "time"
	themeIsolation = "isolation"
)

var themePhrases = map[string][]string{
	themeExams: {
		"exam", "exams", "test", "tests", "assessment", "grades", "grade",
		"results", "failing", "fail",
	},
	themeFocus: {
		"focus", "concentrate", "concentration", "distracted", "procrastinat",
	},
	themeTime: {
		"deadline", "deadlines", "too much", "overwhelmed", "no time",
		"behind on", "workload",
	},
	themeIsolation: {
		"lonely", "alone", "isolated", "no friends", "nobody", "no one to talk",
	},
}

// crisisSignals reports whether the message contains crisis-indicative
// language, and which categories fired.
func crisisSignals(message string) (bool, []string) {
	lowered := strings.ToLower(message)
	var categories []string
	for category, phrases := range crisisPhrases {
		for _, phrase := range phrases {
			if strings.Contains(lowered, phrase) {
				categories = append(categories, category)
				break
			}
		}
	}
	return len(categories) > 0, categories
}

// detectThemes returns the conversation themes present in the message,
// in stable order.
func detectThemes(message string) []string {
	lowered := strings.ToLower(message)
	var themes []string
	for _, theme := range []string{themeExams, themeFocus, themeTime, themeIsolation} {
		for _, phrase := range themePhrases[theme] {
			if strings.Contains(lowered, phrase) {
				themes = append(themes, theme)
				break
			}
		}
	}
	return themes
}
