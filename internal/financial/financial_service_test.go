package financial_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"go-recruit/internal/applicant"
	"go-recruit/internal/financial"
	financialerrors "go-recruit/internal/financial/errors"
	"go-recruit/internal/jobposting"

	applicantMock "go-recruit/internal/applicant/mock"
	financialMock "go-recruit/internal/financial/mock"
	jobpostingMock "go-recruit/internal/jobposting/mock"

	"github.com/go-redis/redismock/v9"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

type serviceDeps struct {
	service    financial.Service
	client     *financialMock.MockClient
	applicants *applicantMock.MockRepository
	jobs       *jobpostingMock.MockRepository
	redisMock  redismock.ClientMock
}

func setupServiceTest(t *testing.T) *serviceDeps {
	t.Helper()
	ctrl := gomock.NewController(t)

	rdb, redisMock := redismock.NewClientMock()

	client := financialMock.NewMockClient(ctrl)
	applicantRepo := applicantMock.NewMockRepository(ctrl)
	jobRepo := jobpostingMock.NewMockRepository(ctrl)

	cfg := financial.Config{
		BaseURL:     "http://finance.local",
		APIKey:      "test-key",
		AccountCode: "5100-HR",
	}
	svc := financial.NewService(cfg, client, applicantRepo, jobRepo, rdb)

	return &serviceDeps{
		service:    svc,
		client:     client,
		applicants: applicantRepo,
		jobs:       jobRepo,
		redisMock:  redisMock,
	}
}

func TestExtractMaxSalary(t *testing.T) {
	cases := map[string]float64{
		"":                           0,
		"negotiable":                 0,
		"₱140,000 - ₱196,000/month":  196000,
		"₱196,000 - ₱140,000/month":  196000,
		"PHP 85,000":                 85000,
		"up to 1,250,000 per annum":  1250000,
	}

	for raw, want := range cases {
		assert.Equal(t, want, financial.ExtractMaxSalary(raw), raw)
	}
}

func TestExtractSalaryValue(t *testing.T) {
	cases := map[string]float64{
		"":                          0,
		"TBD":                       0,
		"₱95,000":                   95000,
		"95,000 - 120,000 monthly":  95000,
	}

	for raw, want := range cases {
		assert.Equal(t, want, financial.ExtractSalaryValue(raw), raw)
	}
}

func TestFinancialService_Metrics(t *testing.T) {
	hired := applicant.Applicant{
		ID:     uuid.New(),
		Status: applicant.StatusHired,
		Salary: "₱100,000",
	}
	pendingApplicant := applicant.Applicant{
		ID:     uuid.New(),
		Status: applicant.StatusPending,
		Salary: "₱999,000",
	}
	jobs := []jobposting.JobPosting{
		{ID: uuid.New(), SalaryRange: "₱140,000 - ₱196,000/month"},
		{ID: uuid.New(), SalaryRange: "₱104,000"},
	}

	t.Run("cache hit tidak menyentuh database", func(t *testing.T) {
		deps := setupServiceTest(t)

		cached := financial.MetricsResponse{TotalBudget: 300000, HiredCount: 1}
		jsonData, err := json.Marshal(cached)
		assert.NoError(t, err)
		deps.redisMock.ExpectGet(financial.MetricsCacheKey).SetVal(string(jsonData))

		resp, err := deps.service.Metrics(context.Background())

		assert.NoError(t, err)
		assert.Equal(t, cached, resp)
		assert.NoError(t, deps.redisMock.ExpectationsWereMet())
	})

	t.Run("cache miss menghitung dari dua tabel lalu menyimpan hasil", func(t *testing.T) {
		deps := setupServiceTest(t)

		// total 196k+104k = 300k; committed hanya applicant hired = 100k
		want := financial.MetricsResponse{
			TotalBudget:     300000,
			CommittedCost:   100000,
			AvailableBudget: 200000,
			HiredCount:      1,
			AverageSalary:   100000,
			UtilizationRate: 100000.0 / 300000.0 * 100,
		}
		jsonData, err := json.Marshal(want)
		assert.NoError(t, err)

		deps.redisMock.ExpectGet(financial.MetricsCacheKey).RedisNil()
		deps.jobs.EXPECT().FindAll(gomock.Any()).Return(jobs, nil)
		deps.applicants.EXPECT().FindAll(gomock.Any()).Return([]applicant.Applicant{hired, pendingApplicant}, nil)
		deps.redisMock.ExpectSet(financial.MetricsCacheKey, jsonData, 1*time.Minute).SetVal("OK")

		resp, err := deps.service.Metrics(context.Background())

		assert.NoError(t, err)
		assert.Equal(t, want, resp)
	})

	t.Run("tanpa hired dan tanpa budget tidak ada pembagian nol", func(t *testing.T) {
		deps := setupServiceTest(t)

		deps.redisMock.ExpectGet(financial.MetricsCacheKey).RedisNil()
		deps.jobs.EXPECT().FindAll(gomock.Any()).Return(nil, nil)
		deps.applicants.EXPECT().FindAll(gomock.Any()).Return(nil, nil)
		deps.redisMock.Regexp().ExpectSet(financial.MetricsCacheKey, `.*`, 1*time.Minute).SetVal("OK")

		resp, err := deps.service.Metrics(context.Background())

		assert.NoError(t, err)
		assert.Equal(t, 0.0, resp.AverageSalary)
		assert.Equal(t, 0.0, resp.UtilizationRate)
	})
}

func TestFinancialService_SyncJob(t *testing.T) {
	t.Run("payload budget terbentuk dari job posting", func(t *testing.T) {
		deps := setupServiceTest(t)
		jobID := uuid.New()

		jp := &jobposting.JobPosting{
			ID:             jobID,
			Title:          "Senior Backend Engineer",
			Department:     "Engineering",
			SalaryRange:    "₱140,000 - ₱196,000/month",
			EmploymentType: "full-time",
		}
		deps.jobs.EXPECT().FindByID(gomock.Any(), jobID.String()).Return(jp, nil)
		deps.client.EXPECT().
			PushBudgetAllocation(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, payload financial.BudgetAllocation) (map[string]any, error) {
				assert.Equal(t, "JOB-"+jobID.String(), payload.ReferenceID)
				assert.Equal(t, "HR_RECRUITMENT_BUDGET", payload.Type)
				assert.Equal(t, "Engineering", payload.Department)
				assert.Equal(t, "5100-HR", payload.AccountCode)
				assert.Equal(t, 196000.0, payload.Amount)
				assert.Equal(t, "PHP", payload.Currency)
				assert.Equal(t, "Budget for Senior Backend Engineer", payload.Description)
				assert.Equal(t, "₱140,000 - ₱196,000/month", payload.Metadata.SalaryRange)
				return map[string]any{"allocation_id": "alloc-1"}, nil
			})

		resp, err := deps.service.SyncJob(context.Background(), jobID.String())

		assert.NoError(t, err)
		assert.True(t, resp.Success)
		assert.Equal(t, "alloc-1", resp.Data["allocation_id"])
	})

	t.Run("job tidak ditemukan", func(t *testing.T) {
		deps := setupServiceTest(t)
		jobID := uuid.New().String()

		deps.jobs.EXPECT().FindByID(gomock.Any(), jobID).Return(nil, gorm.ErrRecordNotFound)

		_, err := deps.service.SyncJob(context.Background(), jobID)

		assert.Error(t, err)
	})
}

func TestFinancialService_SyncApplicant(t *testing.T) {
	jobID := uuid.New()
	jp := &jobposting.JobPosting{
		ID:         jobID,
		Title:      "Senior Backend Engineer",
		Department: "Engineering",
	}

	t.Run("biaya gaji dikirim untuk applicant hired", func(t *testing.T) {
		deps := setupServiceTest(t)
		hireDate := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
		a := &applicant.Applicant{
			ID:           uuid.New(),
			EmployeeCode: "EMP-000042",
			Name:         "Maria Santos",
			JobTitle:     "Backend Engineer",
			Status:       applicant.StatusHired,
			Salary:       "₱95,000",
			HireDate:     &hireDate,
		}

		deps.applicants.EXPECT().FindByID(gomock.Any(), a.ID.String()).Return(a, nil)
		deps.jobs.EXPECT().FindByID(gomock.Any(), jobID.String()).Return(jp, nil)
		deps.client.EXPECT().
			PushEmployeeCost(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, payload financial.EmployeeCost) (map[string]any, error) {
				assert.Equal(t, "EMP-"+a.ID.String(), payload.ReferenceID)
				assert.Equal(t, "EMPLOYEE_SALARY_COST", payload.Type)
				assert.Equal(t, "EMP-000042", payload.EmployeeCode)
				// department kosong di applicant jatuh ke department job
				assert.Equal(t, "Engineering", payload.Department)
				assert.Equal(t, 95000.0, payload.Amount)
				assert.Equal(t, "MONTHLY", payload.Frequency)
				assert.Equal(t, "2026-09-01", payload.StartDate)
				assert.Equal(t, "Salary for Maria Santos - Backend Engineer", payload.Description)
				return map[string]any{"expense_id": "exp-1"}, nil
			})

		resp, err := deps.service.SyncApplicant(context.Background(), a.ID.String(), jobID.String())

		assert.NoError(t, err)
		assert.True(t, resp.Success)
	})

	t.Run("applicant belum hired ditolak", func(t *testing.T) {
		deps := setupServiceTest(t)
		a := &applicant.Applicant{
			ID:     uuid.New(),
			Status: applicant.StatusApproved,
			Salary: "₱95,000",
		}

		deps.applicants.EXPECT().FindByID(gomock.Any(), a.ID.String()).Return(a, nil)
		deps.jobs.EXPECT().FindByID(gomock.Any(), jobID.String()).Return(jp, nil)

		_, err := deps.service.SyncApplicant(context.Background(), a.ID.String(), jobID.String())

		assert.ErrorIs(t, err, financialerrors.ErrApplicantNotHired)
	})
}
