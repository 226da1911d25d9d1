package dto

// SendMessageRequest posts a message to a team chat. The author's name is
// resolved server-side from the student record.
type SendMessageRequest struct {
	StudentID string `json:"studentId" binding:"required"`
	Message   string `json:"message" binding:"required,max=2000"`
}
