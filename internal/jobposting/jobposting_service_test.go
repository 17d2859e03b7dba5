package jobposting_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"go-recruit/internal/jobposting"
	jobpostingerrors "go-recruit/internal/jobposting/errors"
	jobpostingMock "go-recruit/internal/jobposting/mock"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-redis/redismock/v9"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type serviceDeps struct {
	sqlMock   sqlmock.Sqlmock
	service   jobposting.Service
	repo      *jobpostingMock.MockRepository
	redisMock redismock.ClientMock
}

func setupServiceTest(t *testing.T) *serviceDeps {
	t.Helper()
	ctrl := gomock.NewController(t)

	sqlDB, sqlMock, err := sqlmock.New()
	assert.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	gormDB, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{})
	assert.NoError(t, err)

	rdb, redisMock := redismock.NewClientMock()

	repo := jobpostingMock.NewMockRepository(ctrl)
	repo.EXPECT().WithTx(gomock.Any()).Return(repo).AnyTimes()

	svc := jobposting.NewService(gormDB, repo, rdb)

	return &serviceDeps{
		sqlMock:   sqlMock,
		service:   svc,
		repo:      repo,
		redisMock: redisMock,
	}
}

func TestJobPostingService_Create(t *testing.T) {
	t.Run("status default open dan cache options diinvalidasi", func(t *testing.T) {
		deps := setupServiceTest(t)

		deps.repo.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, jp *jobposting.JobPosting) error {
				assert.Equal(t, jobposting.StatusOpen, jp.Status)
				assert.Equal(t, "Senior Backend Engineer", jp.Title)
				return nil
			})
		deps.redisMock.ExpectDel(jobposting.OptionsCacheKey).SetVal(1)

		resp, err := deps.service.Create(context.Background(), jobposting.CreateJobPostingRequest{
			Title:               "Senior Backend Engineer",
			Department:          "Engineering",
			SalaryRange:         "₱140,000 - ₱196,000/month",
			ApplicationDeadline: "2026-10-31",
		})

		assert.NoError(t, err)
		assert.Equal(t, "open", resp.Status)
		assert.Equal(t, "2026-10-31", resp.ApplicationDeadline)
		assert.NoError(t, deps.redisMock.ExpectationsWereMet())
	})

	t.Run("deadline invalid", func(t *testing.T) {
		deps := setupServiceTest(t)

		_, err := deps.service.Create(context.Background(), jobposting.CreateJobPostingRequest{
			Title:               "Senior Backend Engineer",
			Department:          "Engineering",
			ApplicationDeadline: "31-10-2026",
		})

		assert.ErrorIs(t, err, jobpostingerrors.ErrInvalidDeadline)
	})
}

func TestJobPostingService_GetOptions(t *testing.T) {
	t.Run("cache hit tidak menyentuh repository", func(t *testing.T) {
		deps := setupServiceTest(t)

		cached := []jobposting.JobPostingOption{
			{ID: uuid.NewString(), Title: "Senior Backend Engineer", Department: "Engineering", Status: "open"},
		}
		jsonData, err := json.Marshal(cached)
		assert.NoError(t, err)
		deps.redisMock.ExpectGet(jobposting.OptionsCacheKey).SetVal(string(jsonData))

		opts, err := deps.service.GetOptions(context.Background())

		assert.NoError(t, err)
		assert.Equal(t, cached, opts)
		assert.NoError(t, deps.redisMock.ExpectationsWereMet())
	})

	t.Run("cache miss membaca repository lalu menyimpan 1 jam", func(t *testing.T) {
		deps := setupServiceTest(t)
		id := uuid.New()

		postings := []jobposting.JobPosting{
			{ID: id, Title: "Senior Backend Engineer", Department: "Engineering", Status: jobposting.StatusOpen},
		}
		want := []jobposting.JobPostingOption{
			{ID: id.String(), Title: "Senior Backend Engineer", Department: "Engineering", Status: "open"},
		}
		jsonData, err := json.Marshal(want)
		assert.NoError(t, err)

		deps.redisMock.ExpectGet(jobposting.OptionsCacheKey).RedisNil()
		deps.repo.EXPECT().FindOptions(gomock.Any()).Return(postings, nil)
		deps.redisMock.ExpectSet(jobposting.OptionsCacheKey, jsonData, 1*time.Hour).SetVal("OK")

		opts, err := deps.service.GetOptions(context.Background())

		assert.NoError(t, err)
		assert.Equal(t, want, opts)
	})
}

func TestJobPostingService_Update(t *testing.T) {
	deps := setupServiceTest(t)
	id := uuid.New()

	existing := &jobposting.JobPosting{
		ID:     id,
		Title:  "Backend Engineer",
		Status: jobposting.StatusOpen,
	}

	deps.sqlMock.ExpectBegin()
	deps.repo.EXPECT().FindByID(gomock.Any(), id.String()).Return(existing, nil)
	deps.repo.EXPECT().
		Update(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, jp *jobposting.JobPosting) error {
			assert.Equal(t, jobposting.StatusClosed, jp.Status)
			assert.Equal(t, "Backend Engineer", jp.Title)
			return nil
		})
	deps.sqlMock.ExpectCommit()
	deps.redisMock.ExpectDel(jobposting.OptionsCacheKey).SetVal(1)

	closed := jobposting.StatusClosed
	resp, err := deps.service.Update(context.Background(), id.String(), jobposting.UpdateJobPostingRequest{
		Status: &closed,
	})

	assert.NoError(t, err)
	assert.Equal(t, "closed", resp.Status)
}

func TestJobPostingService_Delete(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		deps := setupServiceTest(t)
		id := uuid.New().String()

		deps.repo.EXPECT().Delete(gomock.Any(), id).Return(nil)
		deps.redisMock.ExpectDel(jobposting.OptionsCacheKey).SetVal(1)

		assert.NoError(t, deps.service.Delete(context.Background(), id))
	})

	t.Run("not found", func(t *testing.T) {
		deps := setupServiceTest(t)
		id := uuid.New().String()

		deps.repo.EXPECT().Delete(gomock.Any(), id).Return(gorm.ErrRecordNotFound)

		assert.ErrorIs(t, deps.service.Delete(context.Background(), id), jobpostingerrors.ErrJobPostingNotFound)
	})
}
