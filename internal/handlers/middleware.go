package handlers

import (
	"fmt"
	"slices"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/justsurfingit/jobboard/internal/models"
	"github.com/justsurfingit/jobboard/internal/services"
	"go.uber.org/zap"
)

const (
	requestIDHeader = "X-Request-ID"
	requestIDKey    = "request_id"
	userKey         = "user"
)

// RequestID reuses the caller's X-Request-ID or assigns a new one.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(requestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(requestIDKey, id)
		c.Header(requestIDHeader, id)
		c.Next()
	}
}

// ZapLogger logs one line per request.
func ZapLogger(log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		fields := []zap.Field{
			zap.String("method", c.Request.Method),
			zap.String("path", c.FullPath()),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
			zap.String(requestIDKey, c.GetString(requestIDKey)),
		}
		if len(c.Errors) > 0 {
			fields = append(fields, zap.String("error", c.Errors.Last().Error()))
		}

		switch status := c.Writer.Status(); {
		case status >= 500:
			log.Error("request", fields...)
		case status >= 400:
			log.Debug("request", fields...)
		default:
			log.Info("request", fields...)
		}
	}
}

// RequireRole lets the request through when the session user holds one of
// roles, or any role when none are given. The check reads the shared session
// slot and is advisory only: it is not an authorization boundary.
func RequireRole(sessions *services.SessionService, roles ...models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, err := sessions.Current(c.Request.Context())
		if err != nil {
			respondError(c, err)
			return
		}
		if len(roles) > 0 && !slices.Contains(roles, user.Role) {
			respondError(c, fmt.Errorf("%s: %w", user.Role, errForbidden))
			return
		}
		c.Set(userKey, user)
		c.Next()
	}
}

// sessionUser returns the user stored by RequireRole, or nil.
func sessionUser(c *gin.Context) *models.User {
	v, ok := c.Get(userKey)
	if !ok {
		return nil
	}
	user, _ := v.(*models.User)
	return user
}
