package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/justsurfingit/jobboard/internal/dtos"
	"github.com/justsurfingit/jobboard/internal/models"
	"github.com/justsurfingit/jobboard/internal/services"
)

type ApplicationHandler struct {
	ApplicationService *services.ApplicationService
	SessionService     *services.SessionService
}

func NewApplicationHandler(a *services.ApplicationService, s *services.SessionService) *ApplicationHandler {
	return &ApplicationHandler{
		ApplicationService: a,
		SessionService:     s,
	}
}

// Apply is the POST /jobs/:id/applications endpoint. Without a user_id in the
// body the application is filed for the session user.
func (h *ApplicationHandler) Apply(c *gin.Context) {
	var req dtos.ApplicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	if req.UserID == "" {
		user, err := h.SessionService.Current(c.Request.Context())
		if err != nil {
			respondError(c, err)
			return
		}
		req.UserID = user.ID
	}

	app, err := h.ApplicationService.ApplyToJob(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, app)
}

func (h *ApplicationHandler) List(c *gin.Context) {
	var (
		apps []models.Application
		err  error
	)
	if userID := c.Query("user_id"); userID != "" {
		apps, err = h.ApplicationService.GetUserApplications(c.Request.Context(), userID)
	} else {
		apps, err = h.ApplicationService.ListApplications(c.Request.Context())
	}
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, apps)
}

func (h *ApplicationHandler) UpdateStatus(c *gin.Context) {
	var req dtos.StatusUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	app, err := h.ApplicationService.UpdateApplicationStatus(
		c.Request.Context(), c.Param("id"), models.ApplicationStatus(req.Status))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, app)
}
