package onboarding

type CreateChecklistRequest struct {
	ApplicantID string `json:"applicant_id" binding:"required,uuid"`
	StartDate   string `json:"start_date"`
}

type UpdateItemRequest struct {
	ItemKey     string `json:"item_key" binding:"required,oneof=training_hr2 offer_compensation_hr4 schedule_hr3 documents_admin equipment_logistics"`
	Completed   *bool  `json:"completed" binding:"required"`
	CompletedBy string `json:"completed_by"`
}

type AutoCheckRequest struct {
	ApplicantID string `json:"applicant_id" binding:"required,uuid"`
	Department  string `json:"department" binding:"required,oneof=hr2 hr3 hr4"`
	CompletedBy string `json:"completed_by"`
}

type ChecklistResponse struct {
	ID          string `json:"id"`
	ApplicantID string `json:"applicant_id"`

	ApplicantName  string `json:"applicant_name,omitempty"`
	ApplicantEmail string `json:"applicant_email,omitempty"`
	ApplicantPhone string `json:"applicant_phone,omitempty"`
	JobTitle       string `json:"job_title,omitempty"`

	StartDate            string     `json:"start_date"`
	ChecklistItems       []ItemView `json:"checklist_items"`
	CompletionPercentage int        `json:"completion_percentage"`
	AllCompleted         bool       `json:"all_completed"`
	CompletedAt          string     `json:"completed_at,omitempty"`
	CreatedAt            string     `json:"created_at"`
}
