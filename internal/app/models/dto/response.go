package dto

// SuccessResponse is the body returned by mutating endpoints that have no
// entity to return. The portal client reads only the message.
type SuccessResponse struct {
	Message string `json:"message"`
}

// NewSuccessResponse creates a standard success message body
func NewSuccessResponse(message string) SuccessResponse {
	return SuccessResponse{Message: message}
}
