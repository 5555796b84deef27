package middleware

import (
	"net/http"
	"strings"

	"zapastock/internal/apierror"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// Context keys set by Auth.
const (
	ContextUserID   = "user_id"
	ContextUsername = "username"
	ContextRol      = "rol"
)

// Auth validates the Bearer token and loads the user claims into the
// context. Tokens must be HS256; any other alg is rejected.
func Auth(jwtSecret string) gin.HandlerFunc {
	secret := []byte(jwtSecret)
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, apierror.New("Token requerido"))
			return
		}

		token, err := jwt.Parse(strings.TrimPrefix(header, "Bearer "), func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return secret, nil
		})
		if err != nil || !token.Valid {
			c.AbortWithStatusJSON(http.StatusUnauthorized, apierror.New("Token invalido o expirado"))
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, apierror.New("Token invalido o expirado"))
			return
		}

		if sub, ok := claims["sub"].(string); ok {
			c.Set(ContextUserID, sub)
		}
		if username, ok := claims["username"].(string); ok {
			c.Set(ContextUsername, username)
		}
		if rol, ok := claims["rol"].(string); ok {
			c.Set(ContextRol, rol)
		}
		c.Next()
	}
}

// RequireRol gates a route group to the given roles.
func RequireRol(roles ...string) gin.HandlerFunc {
	permitidos := make(map[string]bool, len(roles))
	for _, r := range roles {
		permitidos[r] = true
	}
	return func(c *gin.Context) {
		if !permitidos[c.GetString(ContextRol)] {
			c.AbortWithStatusJSON(http.StatusForbidden, apierror.New("Permisos insuficientes"))
			return
		}
		c.Next()
	}
}
