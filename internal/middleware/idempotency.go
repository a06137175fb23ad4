package middleware

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

const idempotencyLockTTL = 30 * time.Second

// Idempotency rejects a duplicate POST carrying the same Idempotency-Key
// while the first request is still in flight. The lock expires on its own so
// a crashed request cannot wedge the key.
func Idempotency(rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		idempKey := c.GetHeader("Idempotency-Key")
		if idempKey == "" || c.Request.Method != http.MethodPost {
			c.Next()
			return
		}

		userID := c.GetInt("user_id")
		lockKey := fmt.Sprintf("idemp:%s:%d:%s", c.FullPath(), userID, idempKey)

		isNew, err := rdb.SetNX(c.Request.Context(), lockKey, "locked", idempotencyLockTTL).Result()
		if err != nil {
			// Redis being down must not block writes.
			c.Next()
			return
		}

		if !isNew {
			c.AbortWithStatusJSON(http.StatusConflict, gin.H{
				"success": false,
				"message": "A request with this idempotency key is already being processed",
			})
			return
		}

		c.Next()
	}
}
