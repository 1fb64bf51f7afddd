package http

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/hengtai25/portfolio-api/pkg/apperror"
	"github.com/hengtai25/portfolio-api/pkg/auth"
)

const GinContextKeyAdminEmail = "adminEmail"

func AuthMiddleware(jwtSvc *auth.JWTService) gin.HandlerFunc {
	return func(c *gin.Context) {

		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header is required"})
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token format"})
			return
		}

		claims, err := jwtSvc.ValidateToken(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			return
		}

		c.Set(GinContextKeyAdminEmail, claims.Email)

		c.Next()
	}
}

// ErrorMiddleware translates errors attached by handlers into JSON
// responses. The last error wins.
func ErrorMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}
		err := c.Errors.Last().Err
		c.JSON(apperror.ToHTTPStatus(err), apperror.ToJSON(err))
	}
}
