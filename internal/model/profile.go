package model

// StudentProfile is the normalized description of a student used as the
// basis for opportunity matching. Skills and interests are always
// present (possibly empty), lowercased and deduplicated.
type StudentProfile struct {
	Skills     []string `json:"skills"`
	Interests  []string `json:"interests"`
	Location   string   `json:"location,omitempty"`
	GPA        *float64 `json:"gpa,omitempty"`
	University string   `json:"university,omitempty"`
	Department string   `json:"department,omitempty"`
	Level      string   `json:"level,omitempty"`
}

// PartialProfile is the caller-supplied profile before normalization.
// Any field may be absent.
type PartialProfile struct {
	Skills     []string `json:"skills,omitempty"`
	Interests  []string `json:"interests,omitempty"`
	Location   *string  `json:"location,omitempty"`
	GPA        *float64 `json:"gpa,omitempty"`
	University *string  `json:"university,omitempty"`
	Department *string  `json:"department,omitempty"`
	Level      *string  `json:"level,omitempty"`
}
