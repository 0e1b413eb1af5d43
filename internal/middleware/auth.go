package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/esit/ecommerce-api/internal/service"
)

// AuthRequired rejects requests without a valid bearer token and stores the
// verified claims on the context.
func AuthRequired(auth *service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}

		claims, err := auth.VerifyToken(header[7:])
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired token"})
			return
		}

		c.Set("userID", claims.UserID)
		c.Set("userEmail", claims.Email)
		c.Next()
	}
}

func GetUserID(c *gin.Context) int64 {
	id, _ := c.Get("userID")
	uid, _ := id.(int64)
	return uid
}

func GetUserEmail(c *gin.Context) string {
	email, _ := c.Get("userEmail")
	e, _ := email.(string)
	return e
}
