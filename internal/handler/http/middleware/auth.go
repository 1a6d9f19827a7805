package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/nandomoreu/mercadillo/internal/infrastructure/jwt"
)

const accountIDKey = "accountID"

// Auth resolves the Authorization bearer token into an account id and stores
// it in the request context. Workflows downstream treat the id as an already
// authenticated identity.
func Auth(manager *jwt.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "missing or malformed authorization header"})
			return
		}

		accountID, err := manager.VerifyAccessToken(token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "invalid or expired token"})
			return
		}

		c.Set(accountIDKey, accountID)
		c.Next()
	}
}

// AccountIDFromContext retrieves the authenticated account id set by Auth.
func AccountIDFromContext(c *gin.Context) (int64, bool) {
	value, exists := c.Get(accountIDKey)
	if !exists {
		return 0, false
	}
	accountID, ok := value.(int64)
	return accountID, ok
}
