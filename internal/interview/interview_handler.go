package interview

import (
	"net/http"
	"strings"

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
	l := zap.L().Named("interview.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("interview.handler")
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
	h.logger.Warn("interview request failed",
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
		zap.String("message", httpErr.Message),
	)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func (h *Handler) writeValidationError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(apperror.MapValidationError(err))
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func (h *Handler) Create(c *gin.Context) {
	defer middleware.ReleaseIdempotencyLock(c, h.rdb)
	h.logger.Debug("http create interview")
	var req CreateInterviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("http create interview validation failed", zap.Error(err))
		h.writeValidationError(c, err)
		return
	}

	resp, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	middleware.StoreIdempotentResponse(c, h.rdb, resp)
	response.Success(c, http.StatusCreated, resp, nil)
}

func (h *Handler) GetAll(c *gin.Context) {
	q := strings.TrimSpace(c.Query("q"))
	h.logger.Debug("http get all interviews", zap.String("q", q))

	resp, err := h.service.GetAll(c.Request.Context(), q)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) GetById(c *gin.Context) {
	id := c.Param("id")
	h.logger.Debug("http get interview by id", zap.String("interview_id", id))

	resp, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) Update(c *gin.Context) {
	id := c.Param("id")
	h.logger.Debug("http update interview", zap.String("interview_id", id))
	var req UpdateInterviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("http update interview validation failed", zap.Error(err))
		h.writeValidationError(c, err)
		return
	}

	resp, err := h.service.Update(c.Request.Context(), id, req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) Complete(c *gin.Context) {
	defer middleware.ReleaseIdempotencyLock(c, h.rdb)
	id := c.Param("id")
	h.logger.Debug("http complete interview", zap.String("interview_id", id))
	var req CompleteInterviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("http complete interview validation failed", zap.Error(err))
		h.writeValidationError(c, err)
		return
	}

	resp, err := h.service.Complete(c.Request.Context(), id, req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	middleware.StoreIdempotentResponse(c, h.rdb, resp)
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) MarkDone(c *gin.Context) {
	defer middleware.ReleaseIdempotencyLock(c, h.rdb)
	id := c.Param("id")
	h.logger.Debug("http mark interview done", zap.String("interview_id", id))

	resp, err := h.service.MarkDone(c.Request.Context(), id)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	middleware.StoreIdempotentResponse(c, h.rdb, resp)
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) Delete(c *gin.Context) {
	id := c.Param("id")
	h.logger.Debug("http delete interview", zap.String("interview_id", id))

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"deleted": true}, nil)
}

func (h *Handler) ResendInvitation(c *gin.Context) {
	defer middleware.ReleaseIdempotencyLock(c, h.rdb)
	id := c.Param("id")
	h.logger.Debug("http resend invitation", zap.String("interview_id", id))

	sentTo, err := h.service.ResendInvitation(c.Request.Context(), id)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	resp := gin.H{"sent_to": sentTo}
	middleware.StoreIdempotentResponse(c, h.rdb, resp)
	response.Success(c, http.StatusOK, resp, nil)
}
