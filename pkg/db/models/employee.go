package models

import (
	"time"

	"github.com/angelmondragon/hrm-backend/pkg/enums"
)

// Employee is an approved (or formerly approved) staff identity. Rows are
// deactivated, never deleted.
type Employee struct {
	EmployeeID     string               `gorm:"column:employee_id;primaryKey"`
	FullName       string               `gorm:"column:full_name;not null"`
	Email          string               `gorm:"column:email;not null;uniqueIndex"`
	PasswordHash   string               `gorm:"column:password_hash;not null"`
	Phone          *string              `gorm:"column:phone"`
	StoreID        *string              `gorm:"column:store_id;index"`
	CompanyID      *string              `gorm:"column:company_id;index"`
	PositionID     *string              `gorm:"column:position_id"`
	IsActive       bool                 `gorm:"column:is_active;not null;default:true"`
	ApprovalStatus enums.ApprovalStatus `gorm:"column:approval_status;not null;default:'pending'"`
	LastLoginAt    *string              `gorm:"column:last_login_at"`
	CreatedAt      time.Time            `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt      time.Time            `gorm:"column:updated_at;autoUpdateTime"`

	Position *Position `gorm:"foreignKey:PositionID;references:PositionID"`
	Store    *Store    `gorm:"foreignKey:StoreID;references:StoreID"`
}

func (Employee) TableName() string { return "employees" }
