package jobposting

type CreateJobPostingRequest struct {
	Title               string `json:"title" binding:"required"`
	Department          string `json:"department" binding:"required"`
	Location            string `json:"location" binding:"required"`
	EmploymentType      string `json:"employment_type" binding:"required"`
	SalaryRange         string `json:"salary_range"`
	Description         string `json:"description" binding:"required"`
	Requirements        string `json:"requirements" binding:"required"`
	Benefits            string `json:"benefits"`
	ApplicationDeadline string `json:"application_deadline"`
	Status              string `json:"status"`
}

type UpdateJobPostingRequest struct {
	Title               *string `json:"title"`
	Department          *string `json:"department"`
	Location            *string `json:"location"`
	EmploymentType      *string `json:"employment_type"`
	SalaryRange         *string `json:"salary_range"`
	Description         *string `json:"description"`
	Requirements        *string `json:"requirements"`
	Benefits            *string `json:"benefits"`
	ApplicationDeadline *string `json:"application_deadline"`
	Status              *string `json:"status"`
}

type JobPostingResponse struct {
	ID                  string `json:"id"`
	Title               string `json:"title"`
	Department          string `json:"department"`
	Location            string `json:"location"`
	EmploymentType      string `json:"employment_type"`
	SalaryRange         string `json:"salary_range,omitempty"`
	Description         string `json:"description"`
	Requirements        string `json:"requirements"`
	Benefits            string `json:"benefits,omitempty"`
	ApplicationDeadline string `json:"application_deadline,omitempty"`
	Status              string `json:"status"`
	CreatedAt           string `json:"created_at"`
}

// JobPostingOption dipakai untuk dropdown di form applicant
type JobPostingOption struct {
	ID         string `json:"id"`
	Title      string `json:"title"`
	Department string `json:"department"`
	Status     string `json:"status"`
}
