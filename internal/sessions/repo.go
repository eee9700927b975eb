package sessions

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/angelmondragon/hrm-backend/internal/repo"
	"github.com/angelmondragon/hrm-backend/pkg/auth/session"
	"github.com/angelmondragon/hrm-backend/pkg/db/models"
)

// Repository persists sessions and implements session.Store.
type Repository struct {
	repo.Base
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{Base: repo.NewBase(db)}
}

var _ session.Store = (*Repository)(nil)

func (r *Repository) Create(ctx context.Context, rec session.Record) error {
	row := models.Session{
		ID:           rec.ID,
		EmployeeID:   rec.EmployeeID,
		SessionToken: rec.Token,
		ExpiresAt:    rec.ExpiresAt.UTC(),
		IsActive:     true,
		LastActivity: &rec.LastActivity,
	}
	return r.DB(ctx).Create(&row).Error
}

type activeRow struct {
	ExpiresAt      time.Time
	EmployeeID     string
	FullName       string
	Email          string
	Phone          *string
	StoreID        *string
	CompanyID      *string
	PositionID     *string
	PositionName   *string
	Permissions    *string
	ApprovalStatus string
	IsActive       bool
	LastLoginAt    *string
}

// FindActive joins the active session to its active employee and position.
func (r *Repository) FindActive(ctx context.Context, token string) (*session.Active, error) {
	var row activeRow
	err := r.DB(ctx).
		Table("sessions AS s").
		Select(`s.expires_at, e.employee_id, e.full_name, e.email, e.phone, e.store_id,
			e.company_id, e.position_id, p.position_name, p.permissions,
			e.approval_status, e.is_active, e.last_login_at`).
		Joins("JOIN employees e ON e.employee_id = s.employee_id").
		Joins("LEFT JOIN positions p ON p.position_id = e.position_id").
		Where("s.session_token = ? AND s.is_active = ? AND e.is_active = ?", token, true, true).
		Take(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	principal := session.Principal{
		EmployeeID:     row.EmployeeID,
		FullName:       row.FullName,
		Email:          row.Email,
		Phone:          row.Phone,
		StoreID:        row.StoreID,
		CompanyID:      row.CompanyID,
		PositionID:     row.PositionID,
		PositionName:   row.PositionName,
		ApprovalStatus: row.ApprovalStatus,
		IsActive:       row.IsActive,
		LastLoginAt:    row.LastLoginAt,
	}
	if row.Permissions != nil {
		principal.Permissions = *row.Permissions
	}
	return &session.Active{ExpiresAt: row.ExpiresAt, Principal: principal}, nil
}

func (r *Repository) Touch(ctx context.Context, token, stamp string) error {
	return r.DB(ctx).
		Model(&models.Session{}).
		Where("session_token = ?", token).
		UpdateColumn("last_activity", stamp).Error
}

func (r *Repository) Deactivate(ctx context.Context, token string) error {
	return r.DB(ctx).
		Model(&models.Session{}).
		Where("session_token = ? AND is_active = ?", token, true).
		UpdateColumn("is_active", false).Error
}

// DeleteExpired removes sessions expired before cutoff, and logged-out
// sessions created before cutoff.
func (r *Repository) DeleteExpired(ctx context.Context, cutoff time.Time) (int64, error) {
	res := r.DB(ctx).
		Where("expires_at < ? OR (is_active = ? AND created_at < ?)", cutoff, false, cutoff).
		Delete(&models.Session{})
	return res.RowsAffected, res.Error
}
