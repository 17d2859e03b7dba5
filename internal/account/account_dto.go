package account

type CreateAccountRequest struct {
	ApplicantID string `json:"applicant_id" binding:"required,uuid"`
	Email       string `json:"email" binding:"required,email"`
	Password    string `json:"password" binding:"required,min=8"`
	Role        string `json:"role" binding:"omitempty,oneof=employee manager admin"`
}

type UpdateAccountRequest struct {
	Email    *string `json:"email" binding:"omitempty,email"`
	Password *string `json:"password" binding:"omitempty,min=8"`
	Role     *string `json:"role" binding:"omitempty,oneof=employee manager admin"`
}

type AccountResponse struct {
	ID          string `json:"id"`
	ApplicantID string `json:"applicant_id"`
	Email       string `json:"email"`
	Role        string `json:"role"`

	ApplicantName   string `json:"applicant_name,omitempty"`
	EmployeeCode    string `json:"employee_code,omitempty"`
	JobTitle        string `json:"job_title,omitempty"`
	ApplicantStatus string `json:"applicant_status,omitempty"`

	CreatedAt string `json:"created_at"`
}

type CheckAccountResponse struct {
	HasAccount bool             `json:"has_account"`
	Account    *AccountResponse `json:"account,omitempty"`
}
