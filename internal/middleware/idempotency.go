package middleware

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

const (
	idempotencyLockTTL     = 30 * time.Second
	idempotencyResponseTTL = 24 * time.Hour
)

// Idempotency melindungi POST dari double submit (double click di form
// rekrutmen, retry dari frontend). Hanya aktif kalau client mengirim
// header Idempotency-Key.
func Idempotency(rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		idempKey := c.GetHeader("Idempotency-Key")
		if idempKey == "" || c.Request.Method != http.MethodPost {
			c.Next()
			return
		}

		// Key di-scope per path + IP karena tidak ada identitas user
		cacheKey := fmt.Sprintf("idemp:%s:%s:%s", c.FullPath(), c.ClientIP(), idempKey)
		lockKey := cacheKey + ":lock"

		// Replay: response pertama sudah tersimpan
		if val, err := rdb.Get(c.Request.Context(), cacheKey).Result(); err == nil {
			var cachedRes any
			json.Unmarshal([]byte(val), &cachedRes)
			c.AbortWithStatusJSON(http.StatusOK, gin.H{"status": "success", "data": cachedRes})
			return
		}

		// SetNX sebagai lock; TTL pendek supaya lock hilang sendiri
		// kalau proses pertama mati di tengah jalan
		isNew, _ := rdb.SetNX(c.Request.Context(), lockKey, "locked", idempotencyLockTTL).Result()
		if !isNew {
			c.AbortWithStatusJSON(http.StatusConflict, gin.H{
				"code":    "PROCESSING",
				"message": "Your request is still being processed, please wait.",
			})
			return
		}

		// Handler menyimpan response dan melepas lock lewat key ini
		c.Set("idempotency_cache_key", cacheKey)
		c.Set("idempotency_lock_key", lockKey)

		c.Next()
	}
}

// ReleaseIdempotencyLock melepas lock yang diambil middleware; dipanggil
// via defer di awal handler POST supaya retry setelah selesai tidak
// tertolak 409 sampai TTL habis.
func ReleaseIdempotencyLock(c *gin.Context, rdb *redis.Client) {
	if rdb == nil {
		return
	}
	if lk := c.GetString("idempotency_lock_key"); lk != "" {
		rdb.Del(c.Request.Context(), lk)
	}
}

// StoreIdempotentResponse menyimpan response sukses supaya retry dengan
// Idempotency-Key yang sama di-replay dari cache, bukan diproses ulang.
func StoreIdempotentResponse(c *gin.Context, rdb *redis.Client, resp any) {
	if rdb == nil {
		return
	}
	ck := c.GetString("idempotency_cache_key")
	if ck == "" {
		return
	}
	if payload, err := json.Marshal(resp); err == nil {
		rdb.Set(c.Request.Context(), ck, payload, idempotencyResponseTTL)
	}
}
