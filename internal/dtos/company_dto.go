package dtos

type RegisterCompanyRequest struct {
	Name        string `form:"name" json:"name" binding:"required"`
	Description string `form:"description" json:"description" binding:"required"`
	Website     string `form:"website" json:"website" binding:"required"`
	Location    string `form:"location" json:"location" binding:"required"`
}

// UpdateCompanyRequest requires the full field set; the logo file alone is
// optional on update.
type UpdateCompanyRequest struct {
	Name        string `form:"name" json:"name" binding:"required"`
	Description string `form:"description" json:"description" binding:"required"`
	Website     string `form:"website" json:"website" binding:"required"`
	Location    string `form:"location" json:"location" binding:"required"`
}
