package models

import (
	"time"

	"github.com/angelmondragon/hrm-backend/pkg/enums"
)

type PendingRegistration struct {
	EmployeeID       string                   `gorm:"column:employee_id;primaryKey"`
	Email            string                   `gorm:"column:email;not null;index"`
	PasswordHash     string                   `gorm:"column:password_hash;not null"`
	FullName         string                   `gorm:"column:full_name;not null"`
	Phone            string                   `gorm:"column:phone;not null"`
	StoreID          string                   `gorm:"column:store_id;not null"`
	CompanyID        string                   `gorm:"column:company_id;not null;default:'CH'"`
	PositionID       string                   `gorm:"column:position_id;not null;default:'CH_NV'"`
	VerificationCode string                   `gorm:"column:verification_code;not null"`
	Status           enums.RegistrationStatus `gorm:"column:status;not null;default:'pending';index"`
	ReviewedBy       *string                  `gorm:"column:reviewed_by"`
	ReviewedAt       *string                  `gorm:"column:reviewed_at"`
	ReviewReason     *string                  `gorm:"column:review_reason"`
	CreatedAt        time.Time                `gorm:"column:created_at;autoCreateTime"`
}

func (PendingRegistration) TableName() string { return "pending_registrations" }
