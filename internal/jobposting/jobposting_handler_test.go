package jobposting_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go-recruit/internal/jobposting"
	jobpostingerrors "go-recruit/internal/jobposting/errors"
	"go-recruit/internal/shared/apperror"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type fakeJobPostingService struct {
	CreateFn     func(ctx context.Context, req jobposting.CreateJobPostingRequest) (jobposting.JobPostingResponse, error)
	GetAllFn     func(ctx context.Context) ([]jobposting.JobPostingResponse, error)
	GetOptionsFn func(ctx context.Context) ([]jobposting.JobPostingOption, error)
	GetByIDFn    func(ctx context.Context, id string) (jobposting.JobPostingResponse, error)
	UpdateFn     func(ctx context.Context, id string, req jobposting.UpdateJobPostingRequest) (jobposting.JobPostingResponse, error)
	DeleteFn     func(ctx context.Context, id string) error
}

func (f *fakeJobPostingService) Create(ctx context.Context, req jobposting.CreateJobPostingRequest) (jobposting.JobPostingResponse, error) {
	return f.CreateFn(ctx, req)
}
func (f *fakeJobPostingService) GetAll(ctx context.Context) ([]jobposting.JobPostingResponse, error) {
	return f.GetAllFn(ctx)
}
func (f *fakeJobPostingService) GetOptions(ctx context.Context) ([]jobposting.JobPostingOption, error) {
	return f.GetOptionsFn(ctx)
}
func (f *fakeJobPostingService) GetByID(ctx context.Context, id string) (jobposting.JobPostingResponse, error) {
	return f.GetByIDFn(ctx, id)
}
func (f *fakeJobPostingService) Update(ctx context.Context, id string, req jobposting.UpdateJobPostingRequest) (jobposting.JobPostingResponse, error) {
	return f.UpdateFn(ctx, id, req)
}
func (f *fakeJobPostingService) Delete(ctx context.Context, id string) error {
	return f.DeleteFn(ctx, id)
}

func init() {
	gin.SetMode(gin.TestMode)
	apperror.Init()
}

// --- Test Create ---
func TestJobPostingHandler_Create(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		svc := &fakeJobPostingService{
			CreateFn: func(ctx context.Context, req jobposting.CreateJobPostingRequest) (jobposting.JobPostingResponse, error) {
				assert.Equal(t, "Senior Backend Engineer", req.Title)
				return jobposting.JobPostingResponse{ID: uuid.New().String(), Title: req.Title, Status: "open"}, nil
			},
		}

		h := jobposting.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		body := `{"title":"Senior Backend Engineer","department":"Engineering","location":"Makati","employment_type":"full-time","description":"Own the recruitment API","requirements":"5+ years Go"}`
		c.Request = httptest.NewRequest(http.MethodPost, "/job-postings", strings.NewReader(body))
		c.Request.Header.Set("Content-Type", "application/json")

		h.Create(c)

		assert.Equal(t, http.StatusCreated, w.Code)
	})

	t.Run("title wajib", func(t *testing.T) {
		h := jobposting.NewHandler(&fakeJobPostingService{})
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		c.Request = httptest.NewRequest(http.MethodPost, "/job-postings", strings.NewReader(`{}`))
		c.Request.Header.Set("Content-Type", "application/json")

		h.Create(c)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})
}

// --- Test GetOptions ---
func TestJobPostingHandler_GetOptions(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		svc := &fakeJobPostingService{
			GetOptionsFn: func(ctx context.Context) ([]jobposting.JobPostingOption, error) {
				return []jobposting.JobPostingOption{
					{ID: uuid.New().String(), Title: "Senior Backend Engineer", Status: "open"},
				}, nil
			},
		}

		h := jobposting.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		c.Request = httptest.NewRequest(http.MethodGet, "/job-postings/options", nil)

		h.GetOptions(c)

		assert.Equal(t, http.StatusOK, w.Code)
	})
}

// --- Test GetById ---
func TestJobPostingHandler_GetById(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		svc := &fakeJobPostingService{
			GetByIDFn: func(ctx context.Context, id string) (jobposting.JobPostingResponse, error) {
				return jobposting.JobPostingResponse{}, jobpostingerrors.ErrJobPostingNotFound
			},
		}

		h := jobposting.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		id := uuid.New().String()
		c.Request = httptest.NewRequest(http.MethodGet, "/job-postings/"+id, nil)
		c.Params = []gin.Param{{Key: "id", Value: id}}

		h.GetById(c)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

// --- Test Delete ---
func TestJobPostingHandler_Delete(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		id := uuid.New().String()
		svc := &fakeJobPostingService{
			DeleteFn: func(ctx context.Context, got string) error {
				assert.Equal(t, id, got)
				return nil
			},
		}

		h := jobposting.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		c.Request = httptest.NewRequest(http.MethodDelete, "/job-postings/"+id, nil)
		c.Params = []gin.Param{{Key: "id", Value: id}}

		h.Delete(c)

		assert.Equal(t, http.StatusOK, w.Code)
	})
}
