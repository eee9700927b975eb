package attendance

import (
	"github.com/google/uuid"

	"github.com/angelmondragon/hrm-backend/pkg/db/models"
)

type RecordDTO struct {
	ID            uuid.UUID `json:"id"`
	EmployeeID    string    `json:"employeeId"`
	CheckDate     string    `json:"checkDate"`
	CheckTime     string    `json:"checkTime"`
	CheckLocation string    `json:"checkLocation"`
	Latitude      float64   `json:"latitude"`
	Longitude     float64   `json:"longitude"`
	CreatedAt     string    `json:"createdAt"`
}

func FromModel(m models.Attendance) RecordDTO {
	return RecordDTO{
		ID:            m.ID,
		EmployeeID:    m.EmployeeID,
		CheckDate:     m.CheckDate,
		CheckTime:     m.CheckTime,
		CheckLocation: m.CheckLocation,
		Latitude:      m.Latitude,
		Longitude:     m.Longitude,
		CreatedAt:     m.CreatedAt,
	}
}

// CheckInResult is returned for an admitted check-in.
type CheckInResult struct {
	Record   RecordDTO
	Distance int
	Radius   float64
}
