package dtos

type RegisterRequest struct {
	FullName    string `form:"fullName" json:"fullName" binding:"required"`
	Email       string `form:"email" json:"email" binding:"required,email"`
	PhoneNumber string `form:"phoneNumber" json:"phoneNumber" binding:"required"`
	Password    string `form:"password" json:"password" binding:"required"`
	Role        string `form:"role" json:"role" binding:"required,oneof=applicant recruiter"`
}

type LoginRequest struct {
	Email    string `form:"email" json:"email" binding:"required"`
	Password string `form:"password" json:"password" binding:"required"`
	Role     string `form:"role" json:"role" binding:"required"`
}

// UpdateProfileRequest is a partial update: only fields that were sent are
// touched, hence the pointers.
type UpdateProfileRequest struct {
	FullName    *string `form:"fullName" json:"fullName"`
	Email       *string `form:"email" json:"email"`
	PhoneNumber *string `form:"phoneNumber" json:"phoneNumber"`
	Bio         *string `form:"bio" json:"bio"`
	// comma-separated list
	Skills *string `form:"skills" json:"skills"`
}

// UserResponse is the sanitized projection returned to clients.
type UserResponse struct {
	ID          uint        `json:"id"`
	FullName    string      `json:"fullName"`
	Email       string      `json:"email"`
	PhoneNumber string      `json:"phoneNumber"`
	Role        string      `json:"role"`
	Profile     interface{} `json:"profile"`
}
