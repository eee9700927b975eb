package auth

import "github.com/angelmondragon/hrm-backend/pkg/auth/session"

// LoginRequest carries the credentials posted to /auth/login. Fields are
// checked by the service so missing values map to "Missing credentials".
type LoginRequest struct {
	EmployeeID string `json:"employeeId"`
	Password   string `json:"password"`
	RememberMe bool   `json:"rememberMe"`
}

// LoginResponse is the success body of /auth/login.
type LoginResponse struct {
	Success   bool              `json:"success"`
	Message   string            `json:"message"`
	Token     string            `json:"token"`
	User      session.Principal `json:"user"`
	ExpiresIn int64             `json:"expiresIn"`
}

// RegisterRequest is the self-service registration payload.
type RegisterRequest struct {
	FullName   string `json:"fullName" validate:"required,max=200"`
	Email      string `json:"email" validate:"required,email,max=254"`
	Password   string `json:"password" validate:"required,min=6,max=128"`
	Phone      string `json:"phone" validate:"required,max=32"`
	StoreID    string `json:"storeId" validate:"required,max=64"`
	CompanyID  string `json:"companyId" validate:"omitempty,max=64"`
	PositionID string `json:"positionId" validate:"omitempty,max=64"`
}

// RegisterResponse is the success body of /auth/register.
type RegisterResponse struct {
	Success              bool   `json:"success"`
	Message              string `json:"message"`
	EmployeeID           string `json:"employeeId"`
	RequiresVerification bool   `json:"requiresVerification"`
}
