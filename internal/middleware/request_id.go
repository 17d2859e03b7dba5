package middleware

import (
	"go-recruit/internal/shared/contextutil"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RequestID menghormati X-Request-ID dari client (gateway/frontend HR)
// dan menggenerate uuid baru kalau tidak ada. ID dipropagasi ke
// standard context supaya service/repo bisa ikut melog tanpa tahu Gin.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		rid := c.GetHeader("X-Request-ID")
		if rid == "" {
			rid = uuid.New().String()
		}

		c.Set("request_id", rid)
		c.Request = c.Request.WithContext(
			contextutil.WithRequestID(c.Request.Context(), rid),
		)

		c.Header("X-Request-ID", rid)
		c.Next()
	}
}
