package account

import (
	"time"

	"github.com/google/uuid"
)

const (
	RoleEmployee = "employee"
	RoleManager  = "manager"
	RoleAdmin    = "admin"
)

// UserAccount adalah akun portal karyawan yang diprovision dari applicant.
// Satu applicant maksimal satu akun, ditegakkan lewat unique index.
type UserAccount struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	ApplicantID  uuid.UUID `gorm:"type:uuid;uniqueIndex:uq_user_accounts_applicant"`
	Email        string    `gorm:"uniqueIndex:uq_user_accounts_email"`
	PasswordHash string    `gorm:"column:password_hash"`
	Role         string    `gorm:"default:employee"`

	CreatedAt time.Time
	UpdatedAt time.Time

	Applicant *AccountApplicant `gorm:"foreignKey:ApplicantID"`
}

func (UserAccount) TableName() string {
	return "user_accounts"
}

type AccountApplicant struct {
	ID           uuid.UUID `gorm:"primaryKey"`
	Name         string
	Email        string
	EmployeeCode string
	JobTitle     string
	Status       string
}

func (AccountApplicant) TableName() string {
	return "applicants"
}
