package handlers

import (
	"fmt"
	"sync"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
	"github.com/justsurfingit/jobboard/internal/feed"
	"github.com/justsurfingit/jobboard/internal/models"
	"github.com/justsurfingit/jobboard/internal/services"
	"go.uber.org/zap"
)

// Deps is everything the HTTP layer needs. LLM may be nil.
type Deps struct {
	Log          *zap.Logger
	AllowOrigins []string
	Tracker      *services.Tracker
	Sessions     *services.SessionService
	Jobs         *services.JobService
	Applications *services.ApplicationService
	Admin        *services.AdminService
	LLM          *services.LLMService
	Feed         *feed.Hub
}

var registerValidators sync.Once

// RegisterValidators adds the custom binding rules to engine, which must be a
// go-playground validator.
func RegisterValidators(engine any) error {
	v, ok := engine.(*validator.Validate)
	if !ok {
		return fmt.Errorf("binding engine %T is not a *validator.Validate", engine)
	}
	if err := v.RegisterValidation("notblank", validators.NotBlank); err != nil {
		return fmt.Errorf("register notblank: %w", err)
	}
	return nil
}

func NewRouter(d Deps) *gin.Engine {
	registerValidators.Do(func() {
		if err := RegisterValidators(binding.Validator.Engine()); err != nil {
			panic(err)
		}
	})

	r := gin.New()
	r.Use(gin.Recovery(), RequestID(), ZapLogger(d.Log))

	config := cors.DefaultConfig()
	if len(d.AllowOrigins) == 0 || (len(d.AllowOrigins) == 1 && d.AllowOrigins[0] == "*") {
		config.AllowAllOrigins = true
	} else {
		config.AllowOrigins = d.AllowOrigins
	}
	config.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization", requestIDHeader}
	config.ExposeHeaders = []string{requestIDHeader}
	r.Use(cors.New(config))

	authHandler := NewAuthHandler(d.Sessions)
	jobHandler := NewJobHandler(d.LLM, d.Jobs, d.Applications)
	appHandler := NewApplicationHandler(d.Applications, d.Sessions)
	adminHandler := NewAdminHandler(d.Admin)

	employer := RequireRole(d.Sessions, models.RoleEmployer)
	manager := RequireRole(d.Sessions, models.RoleEmployer, models.RoleAdmin)
	admin := RequireRole(d.Sessions, models.RoleAdmin)

	api := r.Group("/api/v1")
	{
		api.GET("/health", HealthCheck(d.Tracker))
		api.GET("/catalog/options", CatalogOptions)

		// Session Routes
		api.POST("/auth/login", authHandler.Login)
		api.POST("/auth/logout", authHandler.Logout)
		api.POST("/auth/register", authHandler.Register)
		api.GET("/auth/me", authHandler.Me)

		// Job Routes
		api.GET("/jobs", jobHandler.ListJobs)
		api.GET("/jobs/filtered", jobHandler.FilteredJobs)
		api.GET("/jobs/:id", jobHandler.GetJob)
		api.GET("/jobs/:id/applications", manager, jobHandler.JobApplications)
		api.POST("/jobs/extract", employer, jobHandler.ParseJob)
		api.POST("/jobs", employer, jobHandler.CreateJob)
		api.PATCH("/jobs/:id", manager, jobHandler.UpdateJob)
		api.DELETE("/jobs/:id", manager, jobHandler.DeleteJob)

		// Application Routes
		api.POST("/jobs/:id/applications", appHandler.Apply)
		api.GET("/applications", appHandler.List)
		api.PATCH("/applications/:id/status", employer, appHandler.UpdateStatus)

		// Admin Routes
		api.GET("/admin/overview", admin, adminHandler.Overview)
		api.GET("/admin/users", admin, adminHandler.Users)

		if d.Feed != nil {
			api.GET("/ws/jobs", gin.WrapF(d.Feed.ServeWS))
		}
	}
	return r
}
