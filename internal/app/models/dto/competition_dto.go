package dto

// CreateCompetitionRequest announces a competition (admin only)
type CreateCompetitionRequest struct {
	Name           string `json:"name" binding:"required,min=2,max=100"`
	Description    string `json:"description" binding:"required"`
	SkillsRequired string `json:"skillsRequired" binding:"required"`
	Rules          string `json:"rules" binding:"required"`
	EventDate      string `json:"eventDate" binding:"required"`
}
