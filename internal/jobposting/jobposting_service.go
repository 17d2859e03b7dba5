package jobposting

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	jobpostingerrors "go-recruit/internal/jobposting/errors"
	"go-recruit/internal/shared/contextutil"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
	"gorm.io/gorm"
)

const OptionsCacheKey = "job_postings:options"

//go:generate mockgen -source=jobposting_service.go -destination=mock/jobposting_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreateJobPostingRequest) (JobPostingResponse, error)
	GetAll(ctx context.Context) ([]JobPostingResponse, error)
	GetOptions(ctx context.Context) ([]JobPostingOption, error)
	GetByID(ctx context.Context, id string) (JobPostingResponse, error)
	Update(ctx context.Context, id string, req UpdateJobPostingRequest) (JobPostingResponse, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	db     *gorm.DB
	repo   Repository
	rdb    *redis.Client
	sf     *singleflight.Group
	logger *zap.Logger
}

func NewService(db *gorm.DB, repo Repository, rdb *redis.Client, logger ...*zap.Logger) Service {
	l := zap.L().Named("jobposting.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("jobposting.service")
	}
	return &service{
		db:     db,
		repo:   repo,
		rdb:    rdb,
		sf:     &singleflight.Group{},
		logger: l,
	}
}

func (s *service) Create(ctx context.Context, req CreateJobPostingRequest) (JobPostingResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("create job posting requested",
		zap.String("request_id", rid),
		zap.String("title", req.Title),
	)

	deadline, err := parseDate(req.ApplicationDeadline)
	if err != nil {
		return JobPostingResponse{}, jobpostingerrors.ErrInvalidDeadline
	}

	status := req.Status
	if status == "" {
		status = StatusOpen
	}

	jp := &JobPosting{
		ID:                  uuid.New(),
		Title:               req.Title,
		Department:          req.Department,
		Location:            req.Location,
		EmploymentType:      req.EmploymentType,
		SalaryRange:         req.SalaryRange,
		Description:         req.Description,
		Requirements:        req.Requirements,
		Benefits:            req.Benefits,
		ApplicationDeadline: deadline,
		Status:              status,
	}

	if err := s.repo.Create(ctx, jp); err != nil {
		s.logger.Error("create job posting persist failed", zap.String("request_id", rid), zap.Error(err))
		return JobPostingResponse{}, mapRepositoryError(err)
	}

	s.invalidateOptionsCache(ctx)

	s.logger.Info("create job posting success",
		zap.String("request_id", rid),
		zap.String("job_posting_id", jp.ID.String()),
	)
	return mapToResponse(*jp), nil
}

func (s *service) GetAll(ctx context.Context) ([]JobPostingResponse, error) {
	s.logger.Debug("get all job postings requested")
	postings, err := s.repo.FindAll(ctx)
	if err != nil {
		s.logger.Error("get all job postings failed", zap.Error(err))
		return nil, mapRepositoryError(err)
	}
	return mapToListResponse(postings), nil
}

func (s *service) GetOptions(ctx context.Context) ([]JobPostingOption, error) {
	// 1. Cek Redis
	if s.rdb != nil {
		if cached, err := s.rdb.Get(ctx, OptionsCacheKey).Result(); err == nil {
			var resp []JobPostingOption
			if json.Unmarshal([]byte(cached), &resp) == nil {
				return resp, nil
			}
		}
	}

	// 2. Singleflight untuk handle traffic tinggi saat form applicant dibuka
	v, err, _ := s.sf.Do(OptionsCacheKey, func() (interface{}, error) {
		postings, err := s.repo.FindOptions(ctx)
		if err != nil {
			return nil, mapRepositoryError(err)
		}

		resp := make([]JobPostingOption, len(postings))
		for i, jp := range postings {
			resp[i] = JobPostingOption{
				ID:         jp.ID.String(),
				Title:      jp.Title,
				Department: jp.Department,
				Status:     jp.Status,
			}
		}

		// 3. Simpan ke Redis (TTL 1 jam cukup karena data master)
		if s.rdb != nil {
			if jsonData, err := json.Marshal(resp); err == nil {
				s.rdb.Set(ctx, OptionsCacheKey, jsonData, 1*time.Hour)
			}
		}

		return resp, nil
	})

	if err != nil {
		return nil, err
	}

	return v.([]JobPostingOption), nil
}

func (s *service) GetByID(ctx context.Context, id string) (JobPostingResponse, error) {
	s.logger.Debug("get job posting by id requested", zap.String("job_posting_id", id))
	jp, err := s.repo.FindByID(ctx, id)
	if err != nil {
		s.logger.Error("get job posting by id failed", zap.Error(err))
		return JobPostingResponse{}, mapRepositoryError(err)
	}
	return mapToResponse(*jp), nil
}

func (s *service) Update(ctx context.Context, id string, req UpdateJobPostingRequest) (JobPostingResponse, error) {
	s.logger.Debug("update job posting requested", zap.String("job_posting_id", id))

	var updated JobPosting
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		qtx := s.repo.WithTx(tx)

		jp, err := qtx.FindByID(ctx, id)
		if err != nil {
			return mapRepositoryError(err)
		}

		if req.Title != nil {
			jp.Title = *req.Title
		}
		if req.Department != nil {
			jp.Department = *req.Department
		}
		if req.Location != nil {
			jp.Location = *req.Location
		}
		if req.EmploymentType != nil {
			jp.EmploymentType = *req.EmploymentType
		}
		if req.SalaryRange != nil {
			jp.SalaryRange = *req.SalaryRange
		}
		if req.Description != nil {
			jp.Description = *req.Description
		}
		if req.Requirements != nil {
			jp.Requirements = *req.Requirements
		}
		if req.Benefits != nil {
			jp.Benefits = *req.Benefits
		}
		if req.ApplicationDeadline != nil {
			d, err := parseDate(*req.ApplicationDeadline)
			if err != nil {
				return jobpostingerrors.ErrInvalidDeadline
			}
			jp.ApplicationDeadline = d
		}
		if req.Status != nil {
			jp.Status = *req.Status
		}

		if err := qtx.Update(ctx, jp); err != nil {
			return mapRepositoryError(err)
		}

		updated = *jp
		return nil
	})
	if err != nil {
		s.logger.Error("update job posting failed", zap.String("job_posting_id", id), zap.Error(err))
		return JobPostingResponse{}, err
	}

	s.invalidateOptionsCache(ctx)

	s.logger.Info("update job posting success", zap.String("job_posting_id", id))
	return mapToResponse(updated), nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	s.logger.Debug("delete job posting requested", zap.String("job_posting_id", id))

	if err := s.repo.Delete(ctx, id); err != nil {
		s.logger.Error("delete job posting failed", zap.Error(err))
		return mapRepositoryError(err)
	}

	s.invalidateOptionsCache(ctx)

	s.logger.Info("delete job posting success", zap.String("job_posting_id", id))
	return nil
}

func (s *service) invalidateOptionsCache(ctx context.Context) {
	if s.rdb == nil {
		return
	}
	if err := s.rdb.Del(ctx, OptionsCacheKey).Err(); err != nil {
		s.logger.Error("failed to invalidate job posting options cache",
			zap.Error(err),
			zap.String("key", OptionsCacheKey),
		)
	}
}

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return jobpostingerrors.ErrJobPostingNotFound
	}
	return err
}

func parseDate(v string) (*time.Time, error) {
	if v == "" {
		return nil, nil
	}
	d, err := time.Parse("2006-01-02", v)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func mapToResponse(jp JobPosting) JobPostingResponse {
	deadline := ""
	if jp.ApplicationDeadline != nil {
		deadline = jp.ApplicationDeadline.Format("2006-01-02")
	}
	return JobPostingResponse{
		ID:                  jp.ID.String(),
		Title:               jp.Title,
		Department:          jp.Department,
		Location:            jp.Location,
		EmploymentType:      jp.EmploymentType,
		SalaryRange:         jp.SalaryRange,
		Description:         jp.Description,
		Requirements:        jp.Requirements,
		Benefits:            jp.Benefits,
		ApplicationDeadline: deadline,
		Status:              jp.Status,
		CreatedAt:           jp.CreatedAt.Format(time.RFC3339),
	}
}

func mapToListResponse(postings []JobPosting) []JobPostingResponse {
	res := make([]JobPostingResponse, len(postings))
	for i, jp := range postings {
		res[i] = mapToResponse(jp)
	}
	return res
}
