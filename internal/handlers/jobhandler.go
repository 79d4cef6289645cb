package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/justsurfingit/jobboard/internal/dtos"
	"github.com/justsurfingit/jobboard/internal/models"
	"github.com/justsurfingit/jobboard/internal/services"
)

type JobHandler struct {
	LLMService         *services.LLMService
	JobService         *services.JobService
	ApplicationService *services.ApplicationService
}

// NewJobHandler creates the handler with dependencies. llm may be nil when
// extraction is not configured.
func NewJobHandler(llm *services.LLMService, j *services.JobService, a *services.ApplicationService) *JobHandler {
	return &JobHandler{
		LLMService:         llm,
		JobService:         j,
		ApplicationService: a,
	}
}

// ParseJob is the POST /jobs/extract endpoint
func (h *JobHandler) ParseJob(c *gin.Context) {
	var req dtos.JobExtractionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	draft, err := h.LLMService.ExtractJobDraft(c.Request.Context(), req.RawText)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    draft,
	})
}

// CreateJob is the POST /jobs endpoint. The session user becomes the
// employer unless the body names one.
func (h *JobHandler) CreateJob(c *gin.Context) {
	var req dtos.JobCreationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	if req.EmployerID == "" {
		if user := sessionUser(c); user != nil {
			req.EmployerID = user.ID
		}
	}
	job, err := h.JobService.CreateJob(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, job)
}

// ListJobs applies the query criteria and makes them current. With
// employer_id it lists that employer's postings instead.
func (h *JobHandler) ListJobs(c *gin.Context) {
	if employerID := c.Query("employer_id"); employerID != "" {
		jobs, err := h.JobService.ListEmployerJobs(c.Request.Context(), employerID)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, jobs)
		return
	}

	var criteria models.JobFilter
	if err := c.ShouldBindQuery(&criteria); err != nil {
		respondBindError(c, err)
		return
	}
	jobs, err := h.JobService.FilterJobs(c.Request.Context(), criteria)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, jobs)
}

func (h *JobHandler) FilteredJobs(c *gin.Context) {
	criteria, jobs, err := h.JobService.FilteredJobs(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dtos.FilteredJobsResponse{Criteria: criteria, Jobs: jobs})
}

func (h *JobHandler) GetJob(c *gin.Context) {
	job, err := h.JobService.GetJobByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, job)
}

func (h *JobHandler) UpdateJob(c *gin.Context) {
	var req dtos.JobUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	job, err := h.JobService.UpdateJob(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, job)
}

func (h *JobHandler) DeleteJob(c *gin.Context) {
	if err := h.JobService.DeleteJob(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *JobHandler) JobApplications(c *gin.Context) {
	apps, err := h.ApplicationService.GetJobApplications(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, apps)
}
