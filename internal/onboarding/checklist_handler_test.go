package onboarding_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"go-recruit/internal/onboarding"
	onboardingerrors "go-recruit/internal/onboarding/errors"
	"go-recruit/internal/shared/apperror"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redismock/v9"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type fakeChecklistService struct {
	CreateFn         func(ctx context.Context, req onboarding.CreateChecklistRequest) (onboarding.ChecklistResponse, error)
	GetAllFn         func(ctx context.Context) ([]onboarding.ChecklistResponse, error)
	GetByApplicantFn func(ctx context.Context, applicantID string) (onboarding.ChecklistResponse, error)
	UpdateItemFn     func(ctx context.Context, id string, req onboarding.UpdateItemRequest) (onboarding.ChecklistResponse, error)
	AutoCheckFn      func(ctx context.Context, req onboarding.AutoCheckRequest) (onboarding.ChecklistResponse, error)
	DeleteFn         func(ctx context.Context, id string) error
}

func (f *fakeChecklistService) Create(ctx context.Context, req onboarding.CreateChecklistRequest) (onboarding.ChecklistResponse, error) {
	return f.CreateFn(ctx, req)
}
func (f *fakeChecklistService) GetAll(ctx context.Context) ([]onboarding.ChecklistResponse, error) {
	return f.GetAllFn(ctx)
}
func (f *fakeChecklistService) GetByApplicant(ctx context.Context, applicantID string) (onboarding.ChecklistResponse, error) {
	return f.GetByApplicantFn(ctx, applicantID)
}
func (f *fakeChecklistService) UpdateItem(ctx context.Context, id string, req onboarding.UpdateItemRequest) (onboarding.ChecklistResponse, error) {
	return f.UpdateItemFn(ctx, id, req)
}
func (f *fakeChecklistService) AutoCheck(ctx context.Context, req onboarding.AutoCheckRequest) (onboarding.ChecklistResponse, error) {
	return f.AutoCheckFn(ctx, req)
}
func (f *fakeChecklistService) Delete(ctx context.Context, id string) error {
	return f.DeleteFn(ctx, id)
}

func init() {
	gin.SetMode(gin.TestMode)
	apperror.Init()
}

// --- Test Create ---
func TestChecklistHandler_Create(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		applicantID := uuid.New().String()
		svc := &fakeChecklistService{
			CreateFn: func(ctx context.Context, req onboarding.CreateChecklistRequest) (onboarding.ChecklistResponse, error) {
				assert.Equal(t, applicantID, req.ApplicantID)
				return onboarding.ChecklistResponse{ID: uuid.New().String(), ApplicantID: req.ApplicantID}, nil
			},
		}

		h := onboarding.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		body := `{"applicant_id":"` + applicantID + `"}`
		c.Request = httptest.NewRequest(http.MethodPost, "/onboarding/checklists", strings.NewReader(body))
		c.Request.Header.Set("Content-Type", "application/json")

		h.Create(c)

		assert.Equal(t, http.StatusCreated, w.Code)
	})

	t.Run("dengan Idempotency-Key response disimpan dan lock dilepas", func(t *testing.T) {
		applicantID := uuid.New().String()
		resp := onboarding.ChecklistResponse{ID: uuid.New().String(), ApplicantID: applicantID}
		svc := &fakeChecklistService{
			CreateFn: func(ctx context.Context, req onboarding.CreateChecklistRequest) (onboarding.ChecklistResponse, error) {
				return resp, nil
			},
		}

		rdb, redisMock := redismock.NewClientMock()
		cacheKey := "idemp:/onboarding/checklists:192.0.2.1:key-1"
		lockKey := cacheKey + ":lock"

		payload, err := json.Marshal(resp)
		assert.NoError(t, err)
		redisMock.ExpectSet(cacheKey, payload, 24*time.Hour).SetVal("OK")
		redisMock.ExpectDel(lockKey).SetVal(1)

		h := onboarding.NewHandlerWithRedis(svc, rdb)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		body := `{"applicant_id":"` + applicantID + `"}`
		c.Request = httptest.NewRequest(http.MethodPost, "/onboarding/checklists", strings.NewReader(body))
		c.Request.Header.Set("Content-Type", "application/json")
		c.Set("idempotency_cache_key", cacheKey)
		c.Set("idempotency_lock_key", lockKey)

		h.Create(c)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.NoError(t, redisMock.ExpectationsWereMet())
	})

	t.Run("applicant_id wajib", func(t *testing.T) {
		h := onboarding.NewHandler(&fakeChecklistService{})
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		c.Request = httptest.NewRequest(http.MethodPost, "/onboarding/checklists", strings.NewReader(`{}`))
		c.Request.Header.Set("Content-Type", "application/json")

		h.Create(c)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})

	t.Run("duplicate checklist", func(t *testing.T) {
		svc := &fakeChecklistService{
			CreateFn: func(ctx context.Context, req onboarding.CreateChecklistRequest) (onboarding.ChecklistResponse, error) {
				return onboarding.ChecklistResponse{}, onboardingerrors.ErrChecklistAlreadyExists
			},
		}

		h := onboarding.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		body := `{"applicant_id":"` + uuid.New().String() + `"}`
		c.Request = httptest.NewRequest(http.MethodPost, "/onboarding/checklists", strings.NewReader(body))
		c.Request.Header.Set("Content-Type", "application/json")

		h.Create(c)

		assert.Equal(t, http.StatusConflict, w.Code)
	})
}

// --- Test GetByApplicant ---
func TestChecklistHandler_GetByApplicant(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		applicantID := uuid.New().String()
		svc := &fakeChecklistService{
			GetByApplicantFn: func(ctx context.Context, id string) (onboarding.ChecklistResponse, error) {
				assert.Equal(t, applicantID, id)
				return onboarding.ChecklistResponse{ID: uuid.New().String(), ApplicantID: id}, nil
			},
		}

		h := onboarding.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		c.Request = httptest.NewRequest(http.MethodGet, "/onboarding/applicant/"+applicantID, nil)
		c.Params = []gin.Param{{Key: "applicantId", Value: applicantID}}

		h.GetByApplicant(c)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("not found", func(t *testing.T) {
		svc := &fakeChecklistService{
			GetByApplicantFn: func(ctx context.Context, id string) (onboarding.ChecklistResponse, error) {
				return onboarding.ChecklistResponse{}, onboardingerrors.ErrChecklistNotFound
			},
		}

		h := onboarding.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		applicantID := uuid.New().String()
		c.Request = httptest.NewRequest(http.MethodGet, "/onboarding/applicant/"+applicantID, nil)
		c.Params = []gin.Param{{Key: "applicantId", Value: applicantID}}

		h.GetByApplicant(c)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

// --- Test UpdateItem ---
func TestChecklistHandler_UpdateItem(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		checklistID := uuid.New().String()
		svc := &fakeChecklistService{
			UpdateItemFn: func(ctx context.Context, id string, req onboarding.UpdateItemRequest) (onboarding.ChecklistResponse, error) {
				assert.Equal(t, checklistID, id)
				assert.Equal(t, onboarding.ItemTrainingHR2, req.ItemKey)
				assert.True(t, *req.Completed)
				return onboarding.ChecklistResponse{ID: id, CompletionPercentage: 20}, nil
			},
		}

		h := onboarding.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		body := `{"item_key":"training_hr2","completed":true,"completed_by":"HR2 Admin"}`
		c.Request = httptest.NewRequest(http.MethodPut, "/onboarding/checklists/"+checklistID+"/item", strings.NewReader(body))
		c.Request.Header.Set("Content-Type", "application/json")
		c.Params = []gin.Param{{Key: "id", Value: checklistID}}

		h.UpdateItem(c)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("item_key di luar vocabulary ditolak binding", func(t *testing.T) {
		h := onboarding.NewHandler(&fakeChecklistService{})
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		body := `{"item_key":"background_check","completed":true}`
		c.Request = httptest.NewRequest(http.MethodPut, "/onboarding/checklists/x/item", strings.NewReader(body))
		c.Request.Header.Set("Content-Type", "application/json")
		c.Params = []gin.Param{{Key: "id", Value: "x"}}

		h.UpdateItem(c)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})

	t.Run("checklist terkunci", func(t *testing.T) {
		svc := &fakeChecklistService{
			UpdateItemFn: func(ctx context.Context, id string, req onboarding.UpdateItemRequest) (onboarding.ChecklistResponse, error) {
				return onboarding.ChecklistResponse{}, onboardingerrors.ErrChecklistLocked
			},
		}

		h := onboarding.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		body := `{"item_key":"training_hr2","completed":false}`
		c.Request = httptest.NewRequest(http.MethodPut, "/onboarding/checklists/x/item", strings.NewReader(body))
		c.Request.Header.Set("Content-Type", "application/json")
		c.Params = []gin.Param{{Key: "id", Value: "x"}}

		h.UpdateItem(c)

		assert.Equal(t, http.StatusConflict, w.Code)
	})
}

// --- Test AutoCheck ---
func TestChecklistHandler_AutoCheck(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		applicantID := uuid.New().String()
		svc := &fakeChecklistService{
			AutoCheckFn: func(ctx context.Context, req onboarding.AutoCheckRequest) (onboarding.ChecklistResponse, error) {
				assert.Equal(t, applicantID, req.ApplicantID)
				assert.Equal(t, "hr3", req.Department)
				return onboarding.ChecklistResponse{ID: uuid.New().String(), CompletionPercentage: 20}, nil
			},
		}

		h := onboarding.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		body := `{"applicant_id":"` + applicantID + `","department":"hr3"}`
		c.Request = httptest.NewRequest(http.MethodPost, "/onboarding/auto-check", strings.NewReader(body))
		c.Request.Header.Set("Content-Type", "application/json")

		h.AutoCheck(c)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("department di luar hr2/hr3/hr4 ditolak binding", func(t *testing.T) {
		h := onboarding.NewHandler(&fakeChecklistService{})
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		body := `{"applicant_id":"` + uuid.New().String() + `","department":"hr5"}`
		c.Request = httptest.NewRequest(http.MethodPost, "/onboarding/auto-check", strings.NewReader(body))
		c.Request.Header.Set("Content-Type", "application/json")

		h.AutoCheck(c)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})
}

// --- Test Delete ---
func TestChecklistHandler_Delete(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		checklistID := uuid.New().String()
		svc := &fakeChecklistService{
			DeleteFn: func(ctx context.Context, id string) error {
				assert.Equal(t, checklistID, id)
				return nil
			},
		}

		h := onboarding.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		c.Request = httptest.NewRequest(http.MethodDelete, "/onboarding/checklists/"+checklistID, nil)
		c.Params = []gin.Param{{Key: "id", Value: checklistID}}

		h.Delete(c)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("not found", func(t *testing.T) {
		svc := &fakeChecklistService{
			DeleteFn: func(ctx context.Context, id string) error {
				return onboardingerrors.ErrChecklistNotFound
			},
		}

		h := onboarding.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		c.Request = httptest.NewRequest(http.MethodDelete, "/onboarding/checklists/x", nil)
		c.Params = []gin.Param{{Key: "id", Value: "x"}}

		h.Delete(c)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
