package dtos

type ApplicationRequest struct {
	Name        string `json:"name" binding:"required"`
	Email       string `json:"email" binding:"required,email"`
	CoverLetter string `json:"cover_letter" binding:"required"`

	// Optional Fields
	ResumeURL string `json:"resume_url" binding:"omitempty,url"`
	UserID    string `json:"user_id"` // Defaults to the session user
}

type StatusUpdateRequest struct {
	Status string `json:"status" binding:"required,oneof=pending reviewed shortlisted rejected"`
}

type Overview struct {
	TotalJobs         int64 `json:"total_jobs"`
	ActiveJobs        int64 `json:"active_jobs"`
	TotalUsers        int64 `json:"total_users"`
	TotalApplications int64 `json:"total_applications"`
}
