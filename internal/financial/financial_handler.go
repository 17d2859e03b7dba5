package financial

import (
	"net/http"

	"go-recruit/internal/middleware"
	"go-recruit/internal/shared/apperror"
	"go-recruit/internal/shared/response"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

type Handler struct {
	service Service
	rdb     *redis.Client
	logger  *zap.Logger
}

func NewHandler(service Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("financial.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("financial.handler")
	}
	return &Handler{service: service, logger: l}
}

// NewHandlerWithRedis mengaktifkan dukungan Idempotency-Key pada endpoint POST.
func NewHandlerWithRedis(service Service, rdb *redis.Client, logger ...*zap.Logger) *Handler {
	h := NewHandler(service, logger...)
	h.rdb = rdb
	return h
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("financial request failed",
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
		zap.String("message", httpErr.Message),
	)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func (h *Handler) Metrics(c *gin.Context) {
	h.logger.Debug("http financial metrics")

	resp, err := h.service.Metrics(c.Request.Context())
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) SyncJob(c *gin.Context) {
	defer middleware.ReleaseIdempotencyLock(c, h.rdb)
	id := c.Param("id")
	h.logger.Debug("http sync job", zap.String("job_id", id))

	resp, err := h.service.SyncJob(c.Request.Context(), id)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	middleware.StoreIdempotentResponse(c, h.rdb, resp)
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) SyncApplicant(c *gin.Context) {
	defer middleware.ReleaseIdempotencyLock(c, h.rdb)
	applicantID := c.Param("applicantId")
	jobID := c.Param("jobId")
	h.logger.Debug("http sync applicant",
		zap.String("applicant_id", applicantID),
		zap.String("job_id", jobID),
	)

	resp, err := h.service.SyncApplicant(c.Request.Context(), applicantID, jobID)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	middleware.StoreIdempotentResponse(c, h.rdb, resp)
	response.Success(c, http.StatusOK, resp, nil)
}
