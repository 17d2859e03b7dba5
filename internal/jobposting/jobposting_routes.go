package jobposting

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
	postings := r.Group("/job-postings")
	postings.Use(middleware.ContextLogger(logger))
	{
		postings.GET("",
			middleware.RateLimitByIP(3, 10),
			handler.GetAll,
		)

		postings.GET("/options",
			middleware.RateLimitByIP(5, 20), // Limit sedikit lebih longgar karena ringan
			handler.GetOptions,
		)

		postings.GET("/:id",
			middleware.RateLimitByIP(3, 10),
			handler.GetById,
		)

		postings.POST("",
			middleware.RateLimitByIP(0.5, 2),
			handler.Create,
		)

		postings.PUT("/:id",
			middleware.RateLimitByIP(0.5, 2),
			handler.Update,
		)

		postings.DELETE("/:id",
			middleware.RateLimitByIP(0.1, 1),
			handler.Delete,
		)
	}
}
