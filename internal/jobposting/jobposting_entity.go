package jobposting

import (
	"time"

	"github.com/google/uuid"
)

const (
	StatusOpen   = "open"
	StatusClosed = "closed"
)

type JobPosting struct {
	ID                  uuid.UUID `gorm:"type:uuid;primaryKey"`
	Title               string
	Department          string
	Location            string
	EmploymentType      string
	SalaryRange         string // teks bebas, contoh: "₱140,000 - ₱196,000/month"
	Description         string
	Requirements        string
	Benefits            string
	ApplicationDeadline *time.Time
	Status              string `gorm:"type:varchar(50);default:open"`
	CreatedAt           time.Time
	UpdatedAt           time.Time
}
