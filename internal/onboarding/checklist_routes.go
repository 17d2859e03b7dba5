package onboarding

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
	onboarding := r.Group("/onboarding")
	onboarding.Use(middleware.ContextLogger(logger))
	{
		onboarding.GET("/checklists",
			middleware.RateLimitByIP(3, 10),
			handler.GetAll,
		)

		onboarding.GET("/applicant/:applicantId",
			middleware.RateLimitByIP(3, 10),
			handler.GetByApplicant,
		)

		onboarding.POST("/checklists",
			middleware.RateLimitByIP(0.5, 2),
			handler.Create,
		)

		onboarding.PUT("/checklists/:id/item",
			middleware.RateLimitByIP(1, 5),
			handler.UpdateItem,
		)

		// Endpoint untuk sistem departemen lain (HR2/HR3/HR4)
		onboarding.POST("/auto-check",
			middleware.RateLimitByIP(1, 5),
			handler.AutoCheck,
		)

		onboarding.DELETE("/checklists/:id",
			middleware.RateLimitByIP(0.1, 1),
			handler.Delete,
		)
	}
}
