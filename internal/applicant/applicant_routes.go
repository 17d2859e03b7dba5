package applicant

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
	applicants := r.Group("/applicants")
	applicants.Use(middleware.ContextLogger(logger))
	{
		applicants.GET("",
			middleware.RateLimitByIP(3, 10),
			handler.GetAll,
		)

		applicants.GET("/:id",
			middleware.RateLimitByIP(3, 10),
			handler.GetById,
		)

		applicants.POST("",
			middleware.RateLimitByIP(0.5, 2),
			handler.Register,
		)

		// alias lama dari frontend HR1
		applicants.POST("/register",
			middleware.RateLimitByIP(0.5, 2),
			handler.Register,
		)

		applicants.PUT("/:id",
			middleware.RateLimitByIP(0.5, 2),
			handler.Update,
		)

		applicants.DELETE("/:id",
			middleware.RateLimitByIP(0.1, 1),
			handler.Delete,
		)
	}
}
