package models

type Position struct {
	PositionID   string `gorm:"column:position_id;primaryKey"`
	PositionName string `gorm:"column:position_name;not null"`
	// Permissions is a comma separated list of permission codes.
	Permissions string `gorm:"column:permissions;not null;default:''"`
}

func (Position) TableName() string { return "positions" }
