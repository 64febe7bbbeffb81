package auth

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

const (
	ContextUserID  = "userId"
	ContextIsStaff = "isStaff"
)

// Identity resolves the caller from a bearer token when one is
// present. Anonymous requests pass through; downstream guards decide
// whether that is acceptable.
func Identity(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			c.Next()
			return
		}
		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid Authorization header"})
			return
		}
		claims, err := ValidateToken(secret, parts[1])
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			return
		}
		c.Set(ContextUserID, claims.UserID)
		c.Set(ContextIsStaff, claims.IsStaff)
		c.Next()
	}
}

// RequireAuth aborts anonymous requests with 401.
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if CallerID(c) == 0 {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
			return
		}
		c.Next()
	}
}

// RequireStaff aborts non-staff requests: 401 when anonymous, 403 when
// identified but unprivileged.
func RequireStaff() gin.HandlerFunc {
	return func(c *gin.Context) {
		if CallerID(c) == 0 {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
			return
		}
		if !IsStaff(c) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Staff only"})
			return
		}
		c.Next()
	}
}

// CallerID returns the identified user id, or 0 for anonymous callers.
func CallerID(c *gin.Context) uint {
	if v, ok := c.Get(ContextUserID); ok {
		if id, ok := v.(uint); ok {
			return id
		}
	}
	return 0
}

func IsStaff(c *gin.Context) bool {
	if v, ok := c.Get(ContextIsStaff); ok {
		if staff, ok := v.(bool); ok {
			return staff
		}
	}
	return false
}
