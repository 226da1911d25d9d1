package dto

// AdminStats is the dashboard counters block
type AdminStats struct {
	TotalStudents    int64 `json:"totalStudents"`
	TotalTeams       int64 `json:"totalTeams"`
	TotalLeaders     int64 `json:"totalLeaders"`
	PendingRequests  int64 `json:"pendingRequests"`
	ApprovedRequests int64 `json:"approvedRequests"`
	RejectedRequests int64 `json:"rejectedRequests"`
	CSEStudents      int64 `json:"cseStudents"`
	AIStudents       int64 `json:"aiStudents"`
	TotalEvents      int64 `json:"totalEvents"`
}
