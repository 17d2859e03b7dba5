package interview

type CreateInterviewRequest struct {
	ApplicantID string `json:"applicant_id" binding:"required,uuid"`
	Date        string `json:"date" binding:"required"`
	Time        string `json:"time"`
	Type        string `json:"type"`
	Address     string `json:"address"`
	Notes       string `json:"notes"`
	// SendEmail default true saat create
	SendEmail *bool `json:"send_email"`
}

type UpdateInterviewRequest struct {
	Date    *string `json:"date"`
	Time    *string `json:"time"`
	Type    *string `json:"type"`
	Address *string `json:"address"`
	Notes   *string `json:"notes"`
	// SendEmail default false saat update; email hanya dikirim ulang
	// jika tanggal/jam berubah
	SendEmail *bool `json:"send_email"`
}

type CompleteInterviewRequest struct {
	Result string `json:"result" binding:"required,oneof=approved rejected"`
}

type InterviewResponse struct {
	ID          string `json:"id"`
	ApplicantID string `json:"applicant_id"`
	Date        string `json:"date"`
	Time        string `json:"time,omitempty"`
	Type        string `json:"type,omitempty"`
	Address     string `json:"address,omitempty"`
	Notes       string `json:"notes,omitempty"`
	Status      string `json:"status"`
	// DisplayStatus adalah reklasifikasi turunan (lihat DisplayPending)
	DisplayStatus string `json:"display_status"`
	Result        string `json:"result,omitempty"`
	CompletedDate string `json:"completed_date,omitempty"`
	CreatedAt     string `json:"created_at"`

	ApplicantName  string `json:"applicant_name,omitempty"`
	ApplicantEmail string `json:"applicant_email,omitempty"`
	JobTitle       string `json:"job_title,omitempty"`
}

// ScheduleResult membungkus hasil create/update beserta flag email best-effort
type ScheduleResult struct {
	Interview InterviewResponse `json:"interview"`
	EmailSent bool              `json:"email_sent"`
}
