package applicant

import (
	"time"

	"github.com/google/uuid"
)

type Applicant struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	EmployeeCode string    `gorm:"uniqueIndex:uq_applicants_employee_code"`
	FirstName    string
	LastName     string
	Name         string
	Email        string `gorm:"uniqueIndex:uq_applicants_email"`
	Phone        string
	Status       Status `gorm:"type:varchar(50);default:pending"`

	// Job linkage masih berupa string bebas (dipetakan ke job posting via title)
	Job        string
	JobTitle   string
	Department string

	DateOfBirth  *time.Time
	HireDate     *time.Time
	ProbationEnd *time.Time

	Salary            string
	EmploymentType    string
	EmployeeType      string
	Address           string
	Gender            string
	MaritalStatus     string
	Nationality       string
	YearsOfExperience *int

	EmergencyContactName    string
	EmergencyContactPhone   string
	EmergencyContactAddress string

	TaxID            string
	SSSNumber        string
	PhilhealthNumber string
	PagibigNumber    string

	CreatedAt time.Time
	UpdatedAt time.Time
}
