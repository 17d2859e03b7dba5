package interview

import (
	"context"

	"gorm.io/gorm"
)

//go:generate mockgen -source=interview_repo.go -destination=mock/interview_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	Create(ctx context.Context, iv *Interview) error
	FindAll(ctx context.Context, q string) ([]Interview, error)
	FindByID(ctx context.Context, id string) (*Interview, error)
	Update(ctx context.Context, iv *Interview) error
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

func (r *repository) Create(ctx context.Context, iv *Interview) error {
	return r.db.WithContext(ctx).Omit("Applicant").Create(iv).Error
}

func (r *repository) FindAll(ctx context.Context, q string) ([]Interview, error) {
	var interviews []Interview

	query := r.db.WithContext(ctx).
		Preload("Applicant").
		Order("interviews.created_at DESC")

	if q != "" {
		like := "%" + q + "%"
		query = query.
			Joins("LEFT JOIN applicants ON applicants.id = interviews.applicant_id").
			Where("applicants.name ILIKE ? OR applicants.email ILIKE ? OR interviews.status ILIKE ?", like, like, like)
	}

	err := query.Find(&interviews).Error
	return interviews, err
}

func (r *repository) FindByID(ctx context.Context, id string) (*Interview, error) {
	var iv Interview
	err := r.db.WithContext(ctx).
		Preload("Applicant").
		First(&iv, "id = ?", id).Error
	return &iv, err
}

func (r *repository) Update(ctx context.Context, iv *Interview) error {
	return r.db.WithContext(ctx).Omit("Applicant").Save(iv).Error
}

func (r *repository) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Delete(&Interview{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
