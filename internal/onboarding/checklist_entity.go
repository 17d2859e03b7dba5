package onboarding

import (
	"time"

	"github.com/google/uuid"
)

// Checklist adalah tracker lima item onboarding untuk satu applicant.
// Unique index pada applicant_id menutup race duplicate-create di storage layer.
type Checklist struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	ApplicantID uuid.UUID `gorm:"type:uuid;uniqueIndex:uq_onboarding_checklists_applicant"`
	StartDate   time.Time

	TrainingHR2            bool
	TrainingHR2CompletedAt *time.Time
	TrainingHR2CompletedBy string
	TrainingHR2Auto        bool

	OfferCompensationHR4            bool
	OfferCompensationHR4CompletedAt *time.Time
	OfferCompensationHR4CompletedBy string
	OfferCompensationHR4Auto        bool

	ScheduleHR3            bool
	ScheduleHR3CompletedAt *time.Time
	ScheduleHR3CompletedBy string
	ScheduleHR3Auto        bool

	DocumentsAdmin            bool
	DocumentsAdminCompletedAt *time.Time
	DocumentsAdminCompletedBy string
	DocumentsAdminAuto        bool

	EquipmentLogistics            bool
	EquipmentLogisticsCompletedAt *time.Time
	EquipmentLogisticsCompletedBy string

	AllCompleted bool
	CompletedAt  *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time

	// HasAccount diisi lewat subquery EXISTS terhadap user_accounts
	HasAccount bool `gorm:"->;-:migration"`

	Applicant *ChecklistApplicant `gorm:"foreignKey:ApplicantID"`
}

func (Checklist) TableName() string {
	return "onboarding_checklists"
}

// ChecklistApplicant adalah sub-struct untuk join data minimal dari applicant
type ChecklistApplicant struct {
	ID       uuid.UUID `gorm:"primaryKey"`
	Name     string
	Email    string
	Phone    string
	JobTitle string
}

func (ChecklistApplicant) TableName() string {
	return "applicants"
}
