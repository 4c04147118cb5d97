package handlers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/hirenest/job-portal-api/internal/apperr"
	"github.com/hirenest/job-portal-api/internal/auth"
	"github.com/hirenest/job-portal-api/internal/dtos"
	"github.com/hirenest/job-portal-api/internal/services"
	"github.com/hirenest/job-portal-api/internal/storage"
)

type UserHandler struct {
	Users    *services.UserService
	Secret   string
	TokenTTL time.Duration
}

func NewUserHandler(users *services.UserService, secret string, tokenTTL time.Duration) *UserHandler {
	return &UserHandler{Users: users, Secret: secret, TokenTTL: tokenTTL}
}

// Register is POST /user/register. The profile photo is optional.
func (h *UserHandler) Register(c *gin.Context) {
	var req dtos.RegisterRequest
	if err := c.ShouldBind(&req); err != nil {
		fail(c, apperr.ValidationFailed("All fields are required"))
		return
	}

	photo, err := formFile(c, "profilePhoto")
	if err != nil {
		fail(c, err)
		return
	}

	if err := h.Users.Register(&req, photo); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Account created successfully", "success": true})
}

// Login is POST /user/login. On success the session token is set as an
// HTTP-only strict cookie and echoed in the body for bearer clients.
func (h *UserHandler) Login(c *gin.Context) {
	var req dtos.LoginRequest
	if err := c.ShouldBind(&req); err != nil {
		fail(c, apperr.ValidationFailed("Email, password, and role are required"))
		return
	}

	user, err := h.Users.Login(req.Email, req.Password, req.Role)
	if err != nil {
		fail(c, err)
		return
	}

	token, err := auth.GenerateToken(user.ID, user.Role, h.Secret, h.TokenTTL)
	if err != nil {
		fail(c, apperr.Internal("Error logging in", err))
		return
	}

	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(auth.CookieName, token, int(h.TokenTTL.Seconds()), "/", "", false, true)
	c.JSON(http.StatusOK, gin.H{
		"message": fmt.Sprintf("Welcome back, %s!", user.FullName),
		"success": true,
		"user":    sanitizeUser(user),
		"token":   token,
	})
}

// Logout is GET /user/logout. Sessions are stateless, so this only clears
// the cookie.
func (h *UserHandler) Logout(c *gin.Context) {
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(auth.CookieName, "", -1, "/", "", false, true)
	c.JSON(http.StatusOK, gin.H{"message": "Logged out successfully", "success": true})
}

// UpdateProfile is PATCH /user/profile/update; only provided fields change.
func (h *UserHandler) UpdateProfile(c *gin.Context) {
	var req dtos.UpdateProfileRequest
	if err := c.ShouldBind(&req); err != nil {
		fail(c, apperr.ValidationFailed("Invalid request body"))
		return
	}

	resume, err := formFile(c, "resume")
	if err != nil {
		fail(c, err)
		return
	}
	photo, err := formFile(c, "profilePhoto")
	if err != nil {
		fail(c, err)
		return
	}

	user, err := h.Users.UpdateProfile(auth.UserID(c), &req, resume, photo)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "Profile updated successfully",
		"success": true,
		"user":    sanitizeUser(user),
	})
}

// formFile reads an optional multipart file into an UploadedFile. A missing
// field is not an error; a broken part is.
func formFile(c *gin.Context, name string) (*storage.UploadedFile, error) {
	fh, err := c.FormFile(name)
	if err != nil {
		return nil, nil
	}
	file, err := storage.FromMultipart(fh)
	if err != nil {
		return nil, apperr.Internal("Error reading uploaded file", err)
	}
	return &file, nil
}
