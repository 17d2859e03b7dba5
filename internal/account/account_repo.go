package account

import (
	"context"

	"gorm.io/gorm"
)

//go:generate mockgen -source=account_repo.go -destination=mock/account_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	Create(ctx context.Context, ua *UserAccount) error
	FindByID(ctx context.Context, id string) (*UserAccount, error)
	FindByApplicantID(ctx context.Context, applicantID string) (*UserAccount, error)
	ExistsByApplicantID(ctx context.Context, applicantID string) (bool, error)
	Update(ctx context.Context, ua *UserAccount) error
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

func (r *repository) Create(ctx context.Context, ua *UserAccount) error {
	return r.db.WithContext(ctx).Omit("Applicant").Create(ua).Error
}

func (r *repository) FindByID(ctx context.Context, id string) (*UserAccount, error) {
	var ua UserAccount
	err := r.db.WithContext(ctx).
		Preload("Applicant").
		First(&ua, "id = ?", id).Error
	return &ua, err
}

func (r *repository) FindByApplicantID(ctx context.Context, applicantID string) (*UserAccount, error) {
	var ua UserAccount
	err := r.db.WithContext(ctx).
		Preload("Applicant").
		First(&ua, "applicant_id = ?", applicantID).Error
	return &ua, err
}

func (r *repository) ExistsByApplicantID(ctx context.Context, applicantID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&UserAccount{}).
		Where("applicant_id = ?", applicantID).
		Count(&count).Error
	return count > 0, err
}

func (r *repository) Update(ctx context.Context, ua *UserAccount) error {
	return r.db.WithContext(ctx).Omit("Applicant").Save(ua).Error
}

func (r *repository) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Delete(&UserAccount{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
