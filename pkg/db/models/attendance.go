package models

import (
	"github.com/google/uuid"
)

// Attendance is an append-only check-in fact.
type Attendance struct {
	ID            uuid.UUID `gorm:"column:id;type:uuid;primaryKey"`
	EmployeeID    string    `gorm:"column:employee_id;not null;index"`
	CheckDate     string    `gorm:"column:check_date;not null;index"`
	CheckTime     string    `gorm:"column:check_time;not null"`
	CheckLocation string    `gorm:"column:check_location;not null"`
	Latitude      float64   `gorm:"column:latitude;not null"`
	Longitude     float64   `gorm:"column:longitude;not null"`
	CreatedAt     string    `gorm:"column:created_at;not null"`
}

func (Attendance) TableName() string { return "attendance" }
