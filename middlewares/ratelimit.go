package middlewares

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/josechaverradev-cyber/quibdo/utils"
)

// LoginLimiter frena ataques de fuerza bruta contra el login de
// administración contando intentos por IP en Redis.
type LoginLimiter struct {
	RDB    *redis.Client
	Max    int64
	Window time.Duration
}

func NewLoginLimiter(rdb *redis.Client, max int64) *LoginLimiter {
	return &LoginLimiter{RDB: rdb, Max: max, Window: time.Minute}
}

// Middleware devuelve 429 cuando una IP supera el máximo de intentos por
// ventana. Con limitador nulo (sin Redis configurado) no limita nada.
func (l *LoginLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if l == nil || l.RDB == nil {
			c.Next()
			return
		}

		key := "login_attempts:" + c.ClientIP()
		count, err := l.RDB.Incr(c.Request.Context(), key).Result()
		if err != nil {
			// Redis caído no debe tumbar el login.
			c.Next()
			return
		}
		if count == 1 {
			l.RDB.Expire(c.Request.Context(), key, l.Window)
		}
		if count > l.Max {
			utils.Error(c, http.StatusTooManyRequests, "Demasiados intentos, espere un momento")
			c.Abort()
			return
		}

		c.Next()
	}
}
