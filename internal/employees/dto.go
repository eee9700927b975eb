package employees

import (
	"time"

	"github.com/angelmondragon/hrm-backend/pkg/enums"
)

// EmployeeDTO is the directory projection; the password hash never leaves the repository.
type EmployeeDTO struct {
	EmployeeID     string               `json:"employeeId"`
	FullName       string               `json:"fullName"`
	Email          string               `json:"email"`
	Phone          *string              `json:"phone"`
	StoreID        *string              `json:"storeId"`
	CompanyID      *string              `json:"companyId"`
	PositionID     *string              `json:"positionId"`
	PositionName   *string              `json:"positionName"`
	Permissions    *string              `json:"permissions"`
	IsActive       bool                 `json:"isActive"`
	ApprovalStatus enums.ApprovalStatus `json:"approvalStatus"`
	LastLoginAt    *string              `json:"lastLoginAt"`
	CreatedAt      time.Time            `json:"createdAt"`
}

// NewEmployee describes a row to insert.
type NewEmployee struct {
	EmployeeID     string
	FullName       string
	Email          string
	PasswordHash   string
	Phone          *string
	StoreID        *string
	CompanyID      *string
	PositionID     *string
	ApprovalStatus enums.ApprovalStatus
}
