package dtos

type UpdateStatusRequest struct {
	Status string `form:"status" json:"status" binding:"required"`
}
