package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/justsurfingit/jobboard/internal/catalog"
	"github.com/justsurfingit/jobboard/internal/dtos"
	"github.com/justsurfingit/jobboard/internal/services"
)

type AdminHandler struct {
	AdminService *services.AdminService
}

func NewAdminHandler(a *services.AdminService) *AdminHandler {
	return &AdminHandler{AdminService: a}
}

func (h *AdminHandler) Overview(c *gin.Context) {
	o, err := h.AdminService.Overview(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, o)
}

func (h *AdminHandler) Users(c *gin.Context) {
	users, err := h.AdminService.ListUsers(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, users)
}

// CatalogOptions serves the fixed option lists used by job forms and filters.
func CatalogOptions(c *gin.Context) {
	c.JSON(http.StatusOK, dtos.CatalogOptions{
		Categories: catalog.Categories,
		Types:      catalog.JobTypes,
		Locations:  catalog.Locations,
	})
}

// HealthCheck reports liveness and whether a mutation is in flight.
func HealthCheck(tracker *services.Tracker) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"loading": tracker.Loading(),
		})
	}
}
