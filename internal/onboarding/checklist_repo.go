package onboarding

import (
	"context"

	"gorm.io/gorm"
)

//go:generate mockgen -source=checklist_repo.go -destination=mock/checklist_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	Create(ctx context.Context, cl *Checklist) error
	FindAll(ctx context.Context) ([]Checklist, error)
	FindByID(ctx context.Context, id string) (*Checklist, error)
	FindByApplicantID(ctx context.Context, applicantID string) (*Checklist, error)
	Update(ctx context.Context, cl *Checklist) error
	Delete(ctx context.Context, id string) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *gorm.DB) Repository {
	return &repository{db: tx}
}

const hasAccountSelect = "onboarding_checklists.*, " +
	"EXISTS(SELECT 1 FROM user_accounts u WHERE u.applicant_id = onboarding_checklists.applicant_id) AS has_account"

func (r *repository) Create(ctx context.Context, cl *Checklist) error {
	return r.db.WithContext(ctx).Omit("Applicant").Create(cl).Error
}

func (r *repository) FindAll(ctx context.Context) ([]Checklist, error) {
	var checklists []Checklist
	err := r.db.WithContext(ctx).
		Select(hasAccountSelect).
		Preload("Applicant").
		Order("onboarding_checklists.created_at DESC").
		Find(&checklists).Error
	return checklists, err
}

func (r *repository) FindByID(ctx context.Context, id string) (*Checklist, error) {
	var cl Checklist
	err := r.db.WithContext(ctx).
		Select(hasAccountSelect).
		Preload("Applicant").
		First(&cl, "onboarding_checklists.id = ?", id).Error
	return &cl, err
}

func (r *repository) FindByApplicantID(ctx context.Context, applicantID string) (*Checklist, error) {
	var cl Checklist
	err := r.db.WithContext(ctx).
		Select(hasAccountSelect).
		Preload("Applicant").
		First(&cl, "onboarding_checklists.applicant_id = ?", applicantID).Error
	return &cl, err
}

func (r *repository) Update(ctx context.Context, cl *Checklist) error {
	return r.db.WithContext(ctx).Omit("Applicant", "has_account").Save(cl).Error
}

func (r *repository) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Delete(&Checklist{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
