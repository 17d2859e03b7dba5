package financial

import (
	"go-recruit/internal/middleware"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	logger *zap.Logger,
) {
	financial := r.Group("/financial")
	financial.Use(middleware.ContextLogger(logger))
	{
		financial.GET("/metrics",
			middleware.RateLimitByIP(3, 10),
			handler.Metrics,
		)

		financial.POST("/sync-job/:id",
			middleware.RateLimitByIP(0.5, 2),
			handler.SyncJob,
		)

		financial.POST("/sync-applicant/:applicantId/:jobId",
			middleware.RateLimitByIP(0.5, 2),
			handler.SyncApplicant,
		)
	}
}
