package applicant

type RegisterApplicantRequest struct {
	EmployeeCode string `json:"employee_code"`
	FirstName    string `json:"first_name"`
	LastName     string `json:"last_name"`
	Name         string `json:"name" binding:"required"`
	Email        string `json:"email" binding:"required,email"`
	Phone        string `json:"phone" binding:"required"`

	DateOfBirth  string `json:"date_of_birth"`
	HireDate     string `json:"hire_date"`
	ProbationEnd string `json:"probation_end"`

	Salary            string `json:"salary"`
	EmploymentType    string `json:"employment_type"`
	EmployeeType      string `json:"employee_type"`
	Status            string `json:"status"`
	Address           string `json:"address"`
	Gender            string `json:"gender"`
	MaritalStatus     string `json:"marital_status"`
	Nationality       string `json:"nationality"`
	YearsOfExperience *int   `json:"years_of_experience"`

	Job        string `json:"job"`
	JobTitle   string `json:"job_title"`
	Department string `json:"department"`

	EmergencyContactName    string `json:"emergency_contact_name"`
	EmergencyContactPhone   string `json:"emergency_contact_phone"`
	EmergencyContactAddress string `json:"emergency_contact_address"`

	TaxID            string `json:"tax_id"`
	SSSNumber        string `json:"sss_number"`
	PhilhealthNumber string `json:"philhealth_number"`
	PagibigNumber    string `json:"pagibig_number"`
}

// UpdateApplicantRequest memakai pointer agar bisa membedakan
// field yang dikirim dengan field yang memang dikosongkan.
type UpdateApplicantRequest struct {
	EmployeeCode *string `json:"employee_code"`
	FirstName    *string `json:"first_name"`
	LastName     *string `json:"last_name"`
	Name         *string `json:"name"`
	Email        *string `json:"email" binding:"omitempty,email"`
	Phone        *string `json:"phone"`

	DateOfBirth  *string `json:"date_of_birth"`
	HireDate     *string `json:"hire_date"`
	ProbationEnd *string `json:"probation_end"`

	Salary            *string `json:"salary"`
	EmploymentType    *string `json:"employment_type"`
	EmployeeType      *string `json:"employee_type"`
	Status            *string `json:"status"`
	Address           *string `json:"address"`
	Gender            *string `json:"gender"`
	MaritalStatus     *string `json:"marital_status"`
	Nationality       *string `json:"nationality"`
	YearsOfExperience *int    `json:"years_of_experience"`

	Job        *string `json:"job"`
	JobTitle   *string `json:"job_title"`
	Department *string `json:"department"`

	EmergencyContactName    *string `json:"emergency_contact_name"`
	EmergencyContactPhone   *string `json:"emergency_contact_phone"`
	EmergencyContactAddress *string `json:"emergency_contact_address"`

	TaxID            *string `json:"tax_id"`
	SSSNumber        *string `json:"sss_number"`
	PhilhealthNumber *string `json:"philhealth_number"`
	PagibigNumber    *string `json:"pagibig_number"`
}

type ApplicantResponse struct {
	ID           string `json:"id"`
	EmployeeCode string `json:"employee_code"`
	FirstName    string `json:"first_name,omitempty"`
	LastName     string `json:"last_name,omitempty"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	Phone        string `json:"phone"`
	Status       string `json:"status"`

	Job        string `json:"job,omitempty"`
	JobTitle   string `json:"job_title,omitempty"`
	Department string `json:"department,omitempty"`

	DateOfBirth  string `json:"date_of_birth,omitempty"`
	HireDate     string `json:"hire_date,omitempty"`
	ProbationEnd string `json:"probation_end,omitempty"`

	Salary            string `json:"salary,omitempty"`
	EmploymentType    string `json:"employment_type,omitempty"`
	EmployeeType      string `json:"employee_type,omitempty"`
	Address           string `json:"address,omitempty"`
	Gender            string `json:"gender,omitempty"`
	MaritalStatus     string `json:"marital_status,omitempty"`
	Nationality       string `json:"nationality,omitempty"`
	YearsOfExperience *int   `json:"years_of_experience,omitempty"`

	EmergencyContactName    string `json:"emergency_contact_name,omitempty"`
	EmergencyContactPhone   string `json:"emergency_contact_phone,omitempty"`
	EmergencyContactAddress string `json:"emergency_contact_address,omitempty"`

	TaxID            string `json:"tax_id,omitempty"`
	SSSNumber        string `json:"sss_number,omitempty"`
	PhilhealthNumber string `json:"philhealth_number,omitempty"`
	PagibigNumber    string `json:"pagibig_number,omitempty"`

	CreatedAt string `json:"created_at"`
}
