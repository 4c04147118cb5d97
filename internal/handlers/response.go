package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/hirenest/job-portal-api/internal/apperr"
	"github.com/hirenest/job-portal-api/internal/dtos"
	"github.com/hirenest/job-portal-api/internal/models"
)

// fail converts any error to the {message, success:false} envelope.
// Internal errors are logged and answered with a generic message so no
// detail leaks to the client.
func fail(c *gin.Context, err error) {
	var appErr *apperr.Error
	if errors.As(err, &appErr) {
		if appErr.Status >= http.StatusInternalServerError {
			log.Error().Err(appErr).Str("path", c.FullPath()).Msg("request failed")
			c.JSON(appErr.Status, gin.H{"message": "Internal server error", "success": false})
			return
		}
		c.JSON(appErr.Status, gin.H{"message": appErr.Message, "success": false})
		return
	}
	log.Error().Err(err).Str("path", c.FullPath()).Msg("unexpected error")
	c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error", "success": false})
}

func idParam(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}

// sanitizeUser strips everything the client must not see (the hash).
func sanitizeUser(u *models.User) dtos.UserResponse {
	return dtos.UserResponse{
		ID:          u.ID,
		FullName:    u.FullName,
		Email:       u.Email,
		PhoneNumber: u.PhoneNumber,
		Role:        u.Role,
		Profile:     u.Profile,
	}
}

// HealthCheck answers liveness probes.
func HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
