package financial

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"go-recruit/internal/applicant"
	applicanterrors "go-recruit/internal/applicant/errors"
	financialerrors "go-recruit/internal/financial/errors"
	"go-recruit/internal/jobposting"
	jobpostingerrors "go-recruit/internal/jobposting/errors"
	"go-recruit/internal/shared/contextutil"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
	"gorm.io/gorm"
)

const MetricsCacheKey = "financial:metrics"

//go:generate mockgen -source=financial_service.go -destination=mock/financial_service_mock.go -package=mock
type Service interface {
	Metrics(ctx context.Context) (MetricsResponse, error)
	SyncJob(ctx context.Context, jobID string) (SyncResponse, error)
	SyncApplicant(ctx context.Context, applicantID, jobID string) (SyncResponse, error)
}

type service struct {
	cfg        Config
	client     Client
	applicants applicant.Repository
	jobs       jobposting.Repository
	rdb        *redis.Client
	sf         *singleflight.Group
	logger     *zap.Logger
}

func NewService(
	cfg Config,
	client Client,
	applicantRepo applicant.Repository,
	jobRepo jobposting.Repository,
	rdb *redis.Client,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("financial.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("financial.service")
	}
	return &service{
		cfg:        cfg,
		client:     client,
		applicants: applicantRepo,
		jobs:       jobRepo,
		rdb:        rdb,
		sf:         &singleflight.Group{},
		logger:     l,
	}
}

func (s *service) Metrics(ctx context.Context) (MetricsResponse, error) {
	// 1. Cek Redis; metrik dashboard boleh sedikit basi
	if s.rdb != nil {
		if cached, err := s.rdb.Get(ctx, MetricsCacheKey).Result(); err == nil {
			var resp MetricsResponse
			if json.Unmarshal([]byte(cached), &resp) == nil {
				return resp, nil
			}
		}
	}

	// 2. Singleflight supaya refresh dashboard tidak membanjiri dua full scan
	v, err, _ := s.sf.Do(MetricsCacheKey, func() (interface{}, error) {
		jobs, err := s.jobs.FindAll(ctx)
		if err != nil {
			return nil, err
		}
		applicants, err := s.applicants.FindAll(ctx)
		if err != nil {
			return nil, err
		}

		resp := computeMetrics(jobs, applicants)

		// 3. TTL pendek: angka berubah setiap ada hire baru
		if s.rdb != nil {
			if jsonData, err := json.Marshal(resp); err == nil {
				s.rdb.Set(ctx, MetricsCacheKey, jsonData, 1*time.Minute)
			}
		}
		return resp, nil
	})
	if err != nil {
		s.logger.Error("compute financial metrics failed", zap.Error(err))
		return MetricsResponse{}, err
	}

	return v.(MetricsResponse), nil
}

func computeMetrics(jobs []jobposting.JobPosting, applicants []applicant.Applicant) MetricsResponse {
	var totalBudget float64
	for _, jp := range jobs {
		totalBudget += ExtractMaxSalary(jp.SalaryRange)
	}

	var committedCost float64
	hiredCount := 0
	for _, a := range applicants {
		if a.Status != applicant.StatusHired {
			continue
		}
		committedCost += ExtractSalaryValue(a.Salary)
		hiredCount++
	}

	avgSalary := 0.0
	if hiredCount > 0 {
		avgSalary = committedCost / float64(hiredCount)
	}
	utilization := 0.0
	if totalBudget > 0 {
		utilization = committedCost / totalBudget * 100
	}

	return MetricsResponse{
		TotalBudget:     totalBudget,
		CommittedCost:   committedCost,
		AvailableBudget: totalBudget - committedCost,
		HiredCount:      hiredCount,
		AverageSalary:   avgSalary,
		UtilizationRate: utilization,
	}
}

func (s *service) SyncJob(ctx context.Context, jobID string) (SyncResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("sync job requested",
		zap.String("request_id", rid),
		zap.String("job_id", jobID),
	)

	jp, err := s.jobs.FindByID(ctx, jobID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return SyncResponse{}, jobpostingerrors.ErrJobPostingNotFound
		}
		return SyncResponse{}, err
	}

	payload := BudgetAllocation{
		ReferenceID: "JOB-" + jp.ID.String(),
		Type:        "HR_RECRUITMENT_BUDGET",
		Department:  jp.Department,
		AccountCode: s.cfg.AccountCode,
		Amount:      ExtractMaxSalary(jp.SalaryRange),
		Currency:    "PHP",
		Description: fmt.Sprintf("Budget for %s", jp.Title),
		Metadata: BudgetMetadata{
			JobTitle:       jp.Title,
			EmploymentType: jp.EmploymentType,
			SalaryRange:    jp.SalaryRange,
		},
	}

	data, err := s.client.PushBudgetAllocation(ctx, payload)
	if err != nil {
		s.logger.Error("sync job failed",
			zap.String("request_id", rid),
			zap.String("job_id", jobID),
			zap.Error(err),
		)
		return SyncResponse{}, err
	}

	s.logger.Info("sync job success",
		zap.String("request_id", rid),
		zap.String("job_id", jobID),
	)
	return SyncResponse{Success: true, Data: data}, nil
}

func (s *service) SyncApplicant(ctx context.Context, applicantID, jobID string) (SyncResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("sync applicant requested",
		zap.String("request_id", rid),
		zap.String("applicant_id", applicantID),
		zap.String("job_id", jobID),
	)

	a, err := s.applicants.FindByID(ctx, applicantID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return SyncResponse{}, applicanterrors.ErrApplicantNotFound
		}
		return SyncResponse{}, err
	}

	jp, err := s.jobs.FindByID(ctx, jobID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return SyncResponse{}, jobpostingerrors.ErrJobPostingNotFound
		}
		return SyncResponse{}, err
	}

	// Biaya gaji hanya dikirim untuk applicant yang sudah hired
	if a.Status != applicant.StatusHired {
		return SyncResponse{}, financialerrors.ErrApplicantNotHired
	}

	department := a.Department
	if department == "" {
		department = jp.Department
	}

	payload := EmployeeCost{
		ReferenceID:  "EMP-" + a.ID.String(),
		Type:         "EMPLOYEE_SALARY_COST",
		EmployeeCode: a.EmployeeCode,
		EmployeeName: a.Name,
		Department:   department,
		AccountCode:  s.cfg.AccountCode,
		Amount:       ExtractSalaryValue(a.Salary),
		Currency:     "PHP",
		Frequency:    "MONTHLY",
		Description:  fmt.Sprintf("Salary for %s - %s", a.Name, a.JobTitle),
	}
	if a.HireDate != nil {
		payload.StartDate = a.HireDate.Format("2006-01-02")
	}

	data, err := s.client.PushEmployeeCost(ctx, payload)
	if err != nil {
		s.logger.Error("sync applicant failed",
			zap.String("request_id", rid),
			zap.String("applicant_id", applicantID),
			zap.Error(err),
		)
		return SyncResponse{}, err
	}

	s.logger.Info("sync applicant success",
		zap.String("request_id", rid),
		zap.String("applicant_id", applicantID),
	)
	return SyncResponse{Success: true, Message: "Applicant synced", Data: data}, nil
}
