package dto

// CreateLeaveRequest files a leave application
type CreateLeaveRequest struct {
	StudentID   string  `json:"studentId" binding:"required"`
	StartDate   string  `json:"startDate" binding:"required,datetime=2006-01-02"`
	EndDate     string  `json:"endDate" binding:"required,datetime=2006-01-02"`
	Reason      string  `json:"reason" binding:"required,max=1000"`
	DocumentURL *string `json:"documentUrl" binding:"omitempty,url"`
}

// LeaveActionRequest resolves a pending leave application (admin only)
type LeaveActionRequest struct {
	Action  string  `json:"action" binding:"required,oneof=approve reject"`
	Comment *string `json:"comment" binding:"omitempty,max=1000"`
}
