package account

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
	accounts := r.Group("/accounts")
	accounts.Use(middleware.ContextLogger(logger))
	{
		accounts.POST("/create",
			middleware.RateLimitByIP(0.5, 2),
			handler.Create,
		)

		accounts.GET("/applicant/:applicantId",
			middleware.RateLimitByIP(3, 10),
			handler.GetByApplicant,
		)

		accounts.GET("/check/:applicantId",
			middleware.RateLimitByIP(3, 10),
			handler.Check,
		)

		accounts.PUT("/:userId",
			middleware.RateLimitByIP(0.5, 2),
			handler.Update,
		)

		accounts.DELETE("/:userId",
			middleware.RateLimitByIP(0.1, 1),
			handler.Delete,
		)
	}
}
