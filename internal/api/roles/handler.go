package roles

import (
	"net/http"

	"social-scheduler/internal/domain/access"

	"github.com/gin-gonic/gin"
)

type RoleDTO struct {
	Role        access.Role          `json:"role"`
	Permissions access.PermissionSet `json:"permissions"`
}

// ListRoles publishes the permission table so clients can render role pickers.
func ListRoles(c *gin.Context) {
	out := make([]RoleDTO, 0, len(access.Roles()))
	for _, r := range access.Roles() {
		perms, err := access.PermissionsFor(r)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load roles"})
			return
		}
		out = append(out, RoleDTO{Role: r, Permissions: perms})
	}
	c.JSON(http.StatusOK, out)
}
