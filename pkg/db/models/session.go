package models

import (
	"time"

	"github.com/google/uuid"
)

// Session is a bearer grant. ExpiresAt is stored as a UTC instant.
type Session struct {
	ID           uuid.UUID `gorm:"column:id;type:uuid;primaryKey"`
	EmployeeID   string    `gorm:"column:employee_id;not null;index"`
	SessionToken string    `gorm:"column:session_token;not null;uniqueIndex"`
	ExpiresAt    time.Time `gorm:"column:expires_at;not null;index"`
	IsActive     bool      `gorm:"column:is_active;not null;default:true"`
	LastActivity *string   `gorm:"column:last_activity"`
	CreatedAt    time.Time `gorm:"column:created_at;autoCreateTime"`

	Employee *Employee `gorm:"foreignKey:EmployeeID;references:EmployeeID"`
}

func (Session) TableName() string { return "sessions" }
