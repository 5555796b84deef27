package middleware

import (
	"net/http"
	"sync"
	"time"

	"zapastock/internal/apierror"

	"github.com/gin-gonic/gin"
)

// RateLimiter is a fixed-window per-IP limiter. Good enough for a
// single-instance deployment; a multi-instance setup would move the
// counters to Redis.
func RateLimiter(maxRequests int, window time.Duration) gin.HandlerFunc {
	type ventana struct {
		inicio time.Time
		count  int
	}

	var mu sync.Mutex
	ventanas := make(map[string]*ventana)

	return func(c *gin.Context) {
		ip := c.ClientIP()
		ahora := time.Now()

		mu.Lock()
		v, ok := ventanas[ip]
		if !ok || ahora.Sub(v.inicio) > window {
			v = &ventana{inicio: ahora}
			ventanas[ip] = v
		}
		v.count++
		excedido := v.count > maxRequests

		// Poda ocasional para que el mapa no crezca sin limite.
		if len(ventanas) > 10000 {
			for k, vv := range ventanas {
				if ahora.Sub(vv.inicio) > window {
					delete(ventanas, k)
				}
			}
		}
		mu.Unlock()

		if excedido {
			c.AbortWithStatusJSON(http.StatusTooManyRequests,
				apierror.New("Demasiadas solicitudes, intente mas tarde"))
			return
		}
		c.Next()
	}
}
