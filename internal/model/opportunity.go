package model

import "time"

// OpportunityType enumerates the kinds of time-bound offers in the catalog.
type OpportunityType string

const (
	OpportunityScholarship OpportunityType = "scholarship"
	OpportunityBursary     OpportunityType = "bursary"
	OpportunityGig         OpportunityType = "gig"
	OpportunityInternship  OpportunityType = "internship"
	OpportunityGrant       OpportunityType = "grant"
)

// Opportunity is a time-bound offer with a deadline and eligibility
// signals. Supplied per request by the caller or the live catalog; the
// decision core never mutates or stores it.
type Opportunity struct {
	ID             string          `json:"id"`
	Type           OpportunityType `json:"type"`
	Title          string          `json:"title"`
	Organization   string          `json:"organization"`
	Description    string          `json:"description"`
	Amount         *float64        `json:"amount,omitempty"`
	Currency       string          `json:"currency"`
	Deadline       time.Time       `json:"deadline"`
	Requirements   []string        `json:"requirements"`
	Skills         []string        `json:"skills"`
	Location       string          `json:"location"`
	IsRemote       bool            `json:"isRemote"`
	ApplicationURL string          `json:"applicationUrl"`
	Tags           []string        `json:"tags"`
	CreatedAt      time.Time       `json:"createdAt"`
}
