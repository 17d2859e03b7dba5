package applicant

import (
	"context"

	"gorm.io/gorm"
)

//go:generate mockgen -source=applicant_repo.go -destination=mock/applicant_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	Create(ctx context.Context, a *Applicant) error
	FindAll(ctx context.Context) ([]Applicant, error)
	FindByID(ctx context.Context, id string) (*Applicant, error)
	Update(ctx context.Context, a *Applicant) error
	UpdateStatus(ctx context.Context, id string, status Status) error
	DeleteCascade(ctx context.Context, id string) error
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

func (r *repository) Create(ctx context.Context, a *Applicant) error {
	return r.db.WithContext(ctx).Create(a).Error
}

func (r *repository) FindAll(ctx context.Context) ([]Applicant, error) {
	var applicants []Applicant
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&applicants).Error
	return applicants, err
}

func (r *repository) FindByID(ctx context.Context, id string) (*Applicant, error) {
	var a Applicant
	err := r.db.WithContext(ctx).First(&a, "id = ?", id).Error
	return &a, err
}

func (r *repository) Update(ctx context.Context, a *Applicant) error {
	return r.db.WithContext(ctx).Save(a).Error
}

func (r *repository) UpdateStatus(ctx context.Context, id string, status Status) error {
	res := r.db.WithContext(ctx).
		Model(&Applicant{}).
		Where("id = ?", id).
		Update("status", status)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// DeleteCascade menghapus applicant beserta interview, checklist dan user
// account miliknya dalam satu transaksi milik pemanggil.
func (r *repository) DeleteCascade(ctx context.Context, id string) error {
	db := r.db.WithContext(ctx)

	if err := db.Exec("DELETE FROM interviews WHERE applicant_id = ?", id).Error; err != nil {
		return err
	}
	if err := db.Exec("DELETE FROM onboarding_checklists WHERE applicant_id = ?", id).Error; err != nil {
		return err
	}
	if err := db.Exec("DELETE FROM user_accounts WHERE applicant_id = ?", id).Error; err != nil {
		return err
	}

	res := db.Delete(&Applicant{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
