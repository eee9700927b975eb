package registrations

import (
	"time"

	"github.com/angelmondragon/hrm-backend/pkg/db/models"
	"github.com/angelmondragon/hrm-backend/pkg/enums"
)

type ListFilter struct {
	Status  enums.RegistrationStatus
	StoreID string
}

// Review is the outcome written onto a pending registration.
type Review struct {
	Status     enums.RegistrationStatus
	ReviewedBy string
	ReviewedAt string
	Reason     *string
}

// RegistrationDTO omits the password hash and verification code.
type RegistrationDTO struct {
	EmployeeID   string                   `json:"employeeId"`
	Email        string                   `json:"email"`
	FullName     string                   `json:"fullName"`
	Phone        string                   `json:"phone"`
	StoreID      string                   `json:"storeId"`
	CompanyID    string                   `json:"companyId"`
	PositionID   string                   `json:"positionId"`
	Status       enums.RegistrationStatus `json:"status"`
	ReviewedBy   *string                  `json:"reviewedBy"`
	ReviewedAt   *string                  `json:"reviewedAt"`
	ReviewReason *string                  `json:"reviewReason"`
	CreatedAt    time.Time                `json:"createdAt"`
}

func FromModel(m models.PendingRegistration) RegistrationDTO {
	return RegistrationDTO{
		EmployeeID:   m.EmployeeID,
		Email:        m.Email,
		FullName:     m.FullName,
		Phone:        m.Phone,
		StoreID:      m.StoreID,
		CompanyID:    m.CompanyID,
		PositionID:   m.PositionID,
		Status:       m.Status,
		ReviewedBy:   m.ReviewedBy,
		ReviewedAt:   m.ReviewedAt,
		ReviewReason: m.ReviewReason,
		CreatedAt:    m.CreatedAt,
	}
}
