package middleware

import (
	"net/http"

	"zapastock/internal/apierror"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// Recovery converts panics into 500 responses without killing the process.
func Recovery(log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				log.Error().
					Interface("panic", r).
					Str("path", c.Request.URL.Path).
					Str("request_id", c.GetString(RequestIDKey)).
					Msg("panic recuperado")
				c.AbortWithStatusJSON(http.StatusInternalServerError,
					apierror.New("Error interno del servidor"))
			}
		}()
		c.Next()
	}
}
