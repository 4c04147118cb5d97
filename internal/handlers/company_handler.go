package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hirenest/job-portal-api/internal/apperr"
	"github.com/hirenest/job-portal-api/internal/auth"
	"github.com/hirenest/job-portal-api/internal/dtos"
	"github.com/hirenest/job-portal-api/internal/services"
)

type CompanyHandler struct {
	Companies *services.CompanyService
}

func NewCompanyHandler(companies *services.CompanyService) *CompanyHandler {
	return &CompanyHandler{Companies: companies}
}

// Register is POST /company/register. The logo file is a hard requirement.
func (h *CompanyHandler) Register(c *gin.Context) {
	var req dtos.RegisterCompanyRequest
	if err := c.ShouldBind(&req); err != nil {
		fail(c, apperr.ValidationFailed("All fields are required"))
		return
	}

	logo, err := formFile(c, "logo")
	if err != nil {
		fail(c, err)
		return
	}
	if logo == nil {
		fail(c, apperr.ValidationFailed("Logo is required"))
		return
	}

	company, err := h.Companies.Register(&req, *logo, auth.UserID(c))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"message": "Company registered successfully",
		"success": true,
		"company": company,
	})
}

// List is GET /company/get: the requester's companies, possibly empty.
func (h *CompanyHandler) List(c *gin.Context) {
	companies, err := h.Companies.ListByOwner(auth.UserID(c))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message":   "Companies retrieved successfully",
		"success":   true,
		"companies": companies,
	})
}

// Get is GET /company/get/:id.
func (h *CompanyHandler) Get(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		fail(c, apperr.ValidationFailed("Company ID is required"))
		return
	}
	company, err := h.Companies.Get(id)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "Company retrieved successfully",
		"success": true,
		"company": company,
	})
}

// Update is PATCH /company/update/:id; a new logo is optional.
func (h *CompanyHandler) Update(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		fail(c, apperr.ValidationFailed("Company ID is required"))
		return
	}

	var req dtos.UpdateCompanyRequest
	if err := c.ShouldBind(&req); err != nil {
		fail(c, apperr.ValidationFailed("All fields are required"))
		return
	}

	logo, err := formFile(c, "logo")
	if err != nil {
		fail(c, err)
		return
	}

	company, err := h.Companies.Update(id, &req, logo)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "Company updated successfully",
		"success": true,
		"company": company,
	})
}
