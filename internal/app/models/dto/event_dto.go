package dto

// CreateEventRequest creates an event (admin only)
type CreateEventRequest struct {
	Name             string `json:"name" binding:"required,min=2,max=100"`
	Description      string `json:"description" binding:"required"`
	Date             string `json:"date" binding:"required"`
	Category         string `json:"category" binding:"required"`
	RequiredStudents int    `json:"requiredStudents" binding:"required,min=1"`
}

// EventInterestRequest marks a student interested or not interested in an
// event. Interested is a pointer so an explicit false binds.
type EventInterestRequest struct {
	EventID    string `json:"eventId" binding:"required"`
	StudentID  string `json:"studentId" binding:"required"`
	Interested *bool  `json:"interested" binding:"required"`
}

// InterestedStudentsResponse lists who signed up against the capacity
type InterestedStudentsResponse struct {
	EventID          string           `json:"eventId"`
	EventName        string           `json:"eventName"`
	RequiredStudents int              `json:"requiredStudents"`
	InterestedCount  int              `json:"interestedCount"`
	Students         []StudentSummary `json:"students"`
}
