package handlers

import (
	"net/http"

	"github.com/ESRS-Group/backend-api/internal/users"
	"github.com/gin-gonic/gin"
)

// UsersHandler exposes stored user profiles.
type UsersHandler struct {
	svc *users.Service
}

func NewUsersHandler(svc *users.Service) *UsersHandler {
	return &UsersHandler{svc: svc}
}

// Register routes under the given group (mounted at /api/users)
func (h *UsersHandler) Register(rg *gin.RouterGroup) {
	rg.GET("/:externalId", h.Get)
}

// Get returns the profile stored for an external identity id.
func (h *UsersHandler) Get(c *gin.Context) {
	u, err := h.svc.GetByExternalID(c.Request.Context(), c.Param("externalId"))
	if err != nil {
		serverError(c, "get user", err)
		return
	}
	if u == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}
	c.JSON(http.StatusOK, u)
}
