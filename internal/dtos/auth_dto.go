package dtos

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Name     string `json:"name" binding:"required"`
	Password string `json:"password" binding:"required,min=6"`

	// Optional Fields
	Role     string `json:"role" binding:"omitempty,oneof=employer jobSeeker admin"` // Defaults to "jobSeeker" if empty
	Company  string `json:"company" binding:"required_if=Role employer"`
	Title    string `json:"title"`
	Location string `json:"location"`
}
