package models

// Status is the shared moderation lifecycle for teams, join requests and
// leave applications. Teams and leaves are resolved by the admin, join
// requests by the team leader.
type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

// IsTerminal reports whether the status can no longer change.
func (s Status) IsTerminal() bool {
	return s == StatusApproved || s == StatusRejected
}

// RequestAction is a moderation verb applied to a pending request.
type RequestAction string

const (
	ActionApprove RequestAction = "approve"
	ActionReject  RequestAction = "reject"
)

// NotificationType tags what a notification refers to.
type NotificationType string

const (
	NotificationTypeEvent       NotificationType = "event"
	NotificationTypeCompetition NotificationType = "competition"
	NotificationTypeTeam        NotificationType = "team"
	NotificationTypeLeave       NotificationType = "leave"
)
