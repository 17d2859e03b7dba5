package interview

import (
	"time"

	"github.com/google/uuid"
)

type Status string

const (
	StatusScheduled Status = "scheduled"
	StatusCompleted Status = "completed"
)

// DisplayPending adalah status turunan untuk tampilan: interview terjadwal
// yang tanggalnya sudah lewat, atau yang selesai tapi belum ada hasil.
const DisplayPending = "pending"

type Result string

const (
	ResultApproved Result = "approved"
	ResultRejected Result = "rejected"
)

type Interview struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	ApplicantID uuid.UUID `gorm:"type:uuid;index"`
	Date        time.Time
	Time        string // teks bebas, 12h/24h dinormalisasi di tampilan
	Type        string // In-person | Video Call | Phone Call
	Address     string
	Notes       string
	Status      Status `gorm:"type:varchar(50);default:scheduled"`
	Result      Result `gorm:"type:varchar(50)"`

	CompletedDate *time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time

	Applicant *InterviewApplicant `gorm:"foreignKey:ApplicantID"`
}

// InterviewApplicant adalah sub-struct untuk join data minimal dari applicant
type InterviewApplicant struct {
	ID       uuid.UUID `gorm:"primaryKey"`
	Name     string
	Email    string
	JobTitle string
}

func (InterviewApplicant) TableName() string {
	return "applicants"
}

// DisplayStatus menghitung status tampilan. Nilai tersimpan tidak berubah.
func (i Interview) DisplayStatus(now time.Time) string {
	if i.Status == StatusScheduled && i.Date.Before(now.Truncate(24*time.Hour)) {
		return DisplayPending
	}
	if i.Status == StatusCompleted && i.Result == "" {
		return DisplayPending
	}
	return string(i.Status)
}
