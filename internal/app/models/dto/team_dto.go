package dto

// CreateTeamRequest creates a team with the caller as leader. MemberIDs
// may be empty when the creator joins the pool as a plain member; the
// leader is never listed among the members.
type CreateTeamRequest struct {
	Name      string   `json:"name" binding:"required,min=2,max=100"`
	LeaderID  string   `json:"leaderId" binding:"required"`
	MemberIDs []string `json:"memberIds"`
	Interests []string `json:"interests"`
}

// CreateJoinRequest submits a join request for an existing team
type CreateJoinRequest struct {
	TeamID    string `json:"teamId" binding:"required"`
	StudentID string `json:"studentId" binding:"required"`
}

// RequestActionRequest resolves a pending join request
type RequestActionRequest struct {
	RequestID string `json:"requestId" binding:"required"`
	Action    string `json:"action" binding:"required,oneof=approve reject"`
}
