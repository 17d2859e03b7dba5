package jobposting

import (
	"context"

	"gorm.io/gorm"
)

//go:generate mockgen -source=jobposting_repo.go -destination=mock/jobposting_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	Create(ctx context.Context, jp *JobPosting) error
	FindAll(ctx context.Context) ([]JobPosting, error)
	FindByID(ctx context.Context, id string) (*JobPosting, error)
	FindOptions(ctx context.Context) ([]JobPosting, error)
	Update(ctx context.Context, jp *JobPosting) error
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

func (r *repository) Create(ctx context.Context, jp *JobPosting) error {
	return r.db.WithContext(ctx).Create(jp).Error
}

func (r *repository) FindAll(ctx context.Context) ([]JobPosting, error) {
	var postings []JobPosting
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&postings).Error
	return postings, err
}

func (r *repository) FindByID(ctx context.Context, id string) (*JobPosting, error) {
	var jp JobPosting
	err := r.db.WithContext(ctx).First(&jp, "id = ?", id).Error
	return &jp, err
}

func (r *repository) FindOptions(ctx context.Context) ([]JobPosting, error) {
	var postings []JobPosting
	err := r.db.WithContext(ctx).
		Select("id", "title", "department", "status").
		Where("status = ?", StatusOpen).
		Order("title ASC").
		Find(&postings).Error
	return postings, err
}

func (r *repository) Update(ctx context.Context, jp *JobPosting) error {
	return r.db.WithContext(ctx).Save(jp).Error
}

func (r *repository) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Delete(&JobPosting{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
