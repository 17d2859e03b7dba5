package interview

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
	interviews := r.Group("/interviews")
	interviews.Use(middleware.ContextLogger(logger))
	{
		interviews.GET("",
			middleware.RateLimitByIP(3, 10),
			handler.GetAll,
		)

		interviews.GET("/:id",
			middleware.RateLimitByIP(3, 10),
			handler.GetById,
		)

		interviews.POST("",
			middleware.RateLimitByIP(0.5, 2),
			handler.Create,
		)

		interviews.PUT("/:id",
			middleware.RateLimitByIP(0.5, 2),
			handler.Update,
		)

		interviews.POST("/:id/complete",
			middleware.RateLimitByIP(0.5, 2),
			handler.Complete,
		)

		interviews.POST("/:id/mark-done",
			middleware.RateLimitByIP(0.5, 2),
			handler.MarkDone,
		)

		interviews.DELETE("/:id",
			middleware.RateLimitByIP(0.1, 1),
			handler.Delete,
		)

		interviews.POST("/:id/resend-invitation",
			middleware.RateLimitByIP(0.2, 1),
			handler.ResendInvitation,
		)
	}
}
