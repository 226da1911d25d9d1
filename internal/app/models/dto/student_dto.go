package dto

// UpdateInterestsRequest replaces a student's interest set
type UpdateInterestsRequest struct {
	Interests []string `json:"interests" binding:"required"`
}

// StudentSummary is the short projection used in candidate and
// interested-student listings.
type StudentSummary struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Branch string `json:"branch,omitempty"`
	Year   string `json:"year,omitempty"`
}
