package dto

import "unibridge.app/compass/internal/model"

type CheckinRequest struct {
	Message string `json:"message" binding:"required,max=4000"`
	Mood    string `json:"mood" binding:"omitempty,max=32"`
}

// CheckinResponse carries the triage decision plus the composed
// single-string reply for clients that render one message bubble.
type CheckinResponse struct {
	Urgent    bool     `json:"urgent"`
	Response  string   `json:"response"`
	FollowUps []string `json:"followUps"`
	Reply     string   `json:"reply"`
}

func ToCheckinResponse(decision model.TriageDecision, reply string) CheckinResponse {
	followUps := decision.FollowUps
	if followUps == nil {
		followUps = []string{}
	}
	return CheckinResponse{
		Urgent:    decision.Urgent,
		Response:  decision.Response,
		FollowUps: followUps,
		Reply:     reply,
	}
}
