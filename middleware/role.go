package middleware

import (
	"net/http"

	userRepo "amonarq/database/repository/user"
	"amonarq/models"

	"github.com/gin-gonic/gin"
)

// SuperAdminMiddleware gates superadmin-only endpoints. The role is
// re-checked against the user record rather than trusted from the token, so
// a demoted user's outstanding tokens lose the privilege immediately.
func SuperAdminMiddleware(repo userRepo.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := c.Get("userID")
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing authentication"})
			return
		}
		rec, err := repo.GetByID(id.(string))
		if err != nil || rec.Role != models.RoleSuperAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Access denied. Super admin only."})
			return
		}
		c.Next()
	}
}
