package interview_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go-recruit/internal/interview"
	interviewerrors "go-recruit/internal/interview/errors"
	"go-recruit/internal/shared/apperror"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type fakeInterviewService struct {
	CreateFn           func(ctx context.Context, req interview.CreateInterviewRequest) (interview.ScheduleResult, error)
	GetAllFn           func(ctx context.Context, q string) ([]interview.InterviewResponse, error)
	GetByIDFn          func(ctx context.Context, id string) (interview.InterviewResponse, error)
	UpdateFn           func(ctx context.Context, id string, req interview.UpdateInterviewRequest) (interview.ScheduleResult, error)
	CompleteFn         func(ctx context.Context, id string, req interview.CompleteInterviewRequest) (interview.InterviewResponse, error)
	MarkDoneFn         func(ctx context.Context, id string) (interview.InterviewResponse, error)
	DeleteFn           func(ctx context.Context, id string) error
	ResendInvitationFn func(ctx context.Context, id string) (string, error)
}

func (f *fakeInterviewService) Create(ctx context.Context, req interview.CreateInterviewRequest) (interview.ScheduleResult, error) {
	return f.CreateFn(ctx, req)
}
func (f *fakeInterviewService) GetAll(ctx context.Context, q string) ([]interview.InterviewResponse, error) {
	return f.GetAllFn(ctx, q)
}
func (f *fakeInterviewService) GetByID(ctx context.Context, id string) (interview.InterviewResponse, error) {
	return f.GetByIDFn(ctx, id)
}
func (f *fakeInterviewService) Update(ctx context.Context, id string, req interview.UpdateInterviewRequest) (interview.ScheduleResult, error) {
	return f.UpdateFn(ctx, id, req)
}
func (f *fakeInterviewService) Complete(ctx context.Context, id string, req interview.CompleteInterviewRequest) (interview.InterviewResponse, error) {
	return f.CompleteFn(ctx, id, req)
}
func (f *fakeInterviewService) MarkDone(ctx context.Context, id string) (interview.InterviewResponse, error) {
	return f.MarkDoneFn(ctx, id)
}
func (f *fakeInterviewService) Delete(ctx context.Context, id string) error {
	return f.DeleteFn(ctx, id)
}
func (f *fakeInterviewService) ResendInvitation(ctx context.Context, id string) (string, error) {
	return f.ResendInvitationFn(ctx, id)
}

func init() {
	gin.SetMode(gin.TestMode)
	apperror.Init()
}

// --- Test Create ---
func TestInterviewHandler_Create(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		applicantID := uuid.New().String()
		svc := &fakeInterviewService{
			CreateFn: func(ctx context.Context, req interview.CreateInterviewRequest) (interview.ScheduleResult, error) {
				assert.Equal(t, applicantID, req.ApplicantID)
				assert.Equal(t, "2026-09-15", req.Date)
				return interview.ScheduleResult{
					Interview: interview.InterviewResponse{ID: uuid.New().String(), ApplicantID: req.ApplicantID},
					EmailSent: true,
				}, nil
			},
		}

		h := interview.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		body := `{"applicant_id":"` + applicantID + `","date":"2026-09-15"}`
		c.Request = httptest.NewRequest(http.MethodPost, "/interviews", strings.NewReader(body))
		c.Request.Header.Set("Content-Type", "application/json")

		h.Create(c)

		assert.Equal(t, http.StatusCreated, w.Code)
	})

	t.Run("date wajib", func(t *testing.T) {
		h := interview.NewHandler(&fakeInterviewService{})
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		body := `{"applicant_id":"` + uuid.New().String() + `"}`
		c.Request = httptest.NewRequest(http.MethodPost, "/interviews", strings.NewReader(body))
		c.Request.Header.Set("Content-Type", "application/json")

		h.Create(c)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})
}

// --- Test GetAll ---
func TestInterviewHandler_GetAll(t *testing.T) {
	t.Run("query diteruskan ke service", func(t *testing.T) {
		svc := &fakeInterviewService{
			GetAllFn: func(ctx context.Context, q string) ([]interview.InterviewResponse, error) {
				assert.Equal(t, "maria", q)
				return []interview.InterviewResponse{{ID: uuid.New().String()}}, nil
			},
		}

		h := interview.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		c.Request = httptest.NewRequest(http.MethodGet, "/interviews?q=maria", nil)

		h.GetAll(c)

		assert.Equal(t, http.StatusOK, w.Code)
	})
}

// --- Test Complete ---
func TestInterviewHandler_Complete(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		id := uuid.New().String()
		svc := &fakeInterviewService{
			CompleteFn: func(ctx context.Context, got string, req interview.CompleteInterviewRequest) (interview.InterviewResponse, error) {
				assert.Equal(t, id, got)
				assert.Equal(t, "approved", req.Result)
				return interview.InterviewResponse{ID: got, Status: "completed", Result: "approved"}, nil
			},
		}

		h := interview.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		body := `{"result":"approved"}`
		c.Request = httptest.NewRequest(http.MethodPost, "/interviews/"+id+"/complete", strings.NewReader(body))
		c.Request.Header.Set("Content-Type", "application/json")
		c.Params = []gin.Param{{Key: "id", Value: id}}

		h.Complete(c)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("result di luar approved/rejected ditolak binding", func(t *testing.T) {
		h := interview.NewHandler(&fakeInterviewService{})
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		body := `{"result":"maybe"}`
		c.Request = httptest.NewRequest(http.MethodPost, "/interviews/x/complete", strings.NewReader(body))
		c.Request.Header.Set("Content-Type", "application/json")
		c.Params = []gin.Param{{Key: "id", Value: "x"}}

		h.Complete(c)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})

	t.Run("sudah selesai", func(t *testing.T) {
		svc := &fakeInterviewService{
			CompleteFn: func(ctx context.Context, got string, req interview.CompleteInterviewRequest) (interview.InterviewResponse, error) {
				return interview.InterviewResponse{}, interviewerrors.ErrAlreadyCompleted
			},
		}

		h := interview.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		body := `{"result":"approved"}`
		c.Request = httptest.NewRequest(http.MethodPost, "/interviews/x/complete", strings.NewReader(body))
		c.Request.Header.Set("Content-Type", "application/json")
		c.Params = []gin.Param{{Key: "id", Value: "x"}}

		h.Complete(c)

		assert.Equal(t, http.StatusConflict, w.Code)
	})
}

// --- Test ResendInvitation ---
func TestInterviewHandler_ResendInvitation(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		id := uuid.New().String()
		svc := &fakeInterviewService{
			ResendInvitationFn: func(ctx context.Context, got string) (string, error) {
				assert.Equal(t, id, got)
				return "maria@example.com", nil
			},
		}

		h := interview.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		c.Request = httptest.NewRequest(http.MethodPost, "/interviews/"+id+"/resend-invitation", nil)
		c.Params = []gin.Param{{Key: "id", Value: id}}

		h.ResendInvitation(c)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("applicant tanpa email", func(t *testing.T) {
		svc := &fakeInterviewService{
			ResendInvitationFn: func(ctx context.Context, got string) (string, error) {
				return "", interviewerrors.ErrApplicantEmailMissing
			},
		}

		h := interview.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		c.Request = httptest.NewRequest(http.MethodPost, "/interviews/x/resend-invitation", nil)
		c.Params = []gin.Param{{Key: "id", Value: "x"}}

		h.ResendInvitation(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

// --- Test Delete ---
func TestInterviewHandler_Delete(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		svc := &fakeInterviewService{
			DeleteFn: func(ctx context.Context, id string) error {
				return interviewerrors.ErrInterviewNotFound
			},
		}

		h := interview.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		c.Request = httptest.NewRequest(http.MethodDelete, "/interviews/x", nil)
		c.Params = []gin.Param{{Key: "id", Value: "x"}}

		h.Delete(c)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
