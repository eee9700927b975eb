package employees

import (
	"context"
	"strings"

	"gorm.io/gorm"

	"github.com/angelmondragon/hrm-backend/internal/repo"
	"github.com/angelmondragon/hrm-backend/pkg/db/models"
)

const listColumns = `e.employee_id, e.full_name, e.email, e.phone, e.store_id, e.company_id,
	e.position_id, p.position_name, p.permissions, e.is_active, e.approval_status,
	e.last_login_at, e.created_at`

// Repository exposes employee persistence operations.
type Repository struct {
	repo.Base
}

// NewRepository constructs an employees repo bound to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{Base: repo.NewBase(db)}
}

// FindByID loads an employee by identifier, including inactive rows.
func (r *Repository) FindByID(ctx context.Context, employeeID string) (*models.Employee, error) {
	var emp models.Employee
	if err := r.DB(ctx).Preload("Position").First(&emp, "employee_id = ?", employeeID).Error; err != nil {
		return nil, err
	}
	return &emp, nil
}

// EmailExists reports whether any employee already uses email (case-insensitive).
func (r *Repository) EmailExists(ctx context.Context, email string) (bool, error) {
	return r.Exists(ctx, &models.Employee{}, "LOWER(email) = ?", strings.ToLower(strings.TrimSpace(email)))
}

// IDExists reports whether the identifier is taken.
func (r *Repository) IDExists(ctx context.Context, employeeID string) (bool, error) {
	return r.Exists(ctx, &models.Employee{}, "employee_id = ?", employeeID)
}

// Create inserts an active employee.
func (r *Repository) Create(ctx context.Context, in NewEmployee) (*models.Employee, error) {
	emp := models.Employee{
		EmployeeID:     in.EmployeeID,
		FullName:       in.FullName,
		Email:          in.Email,
		PasswordHash:   in.PasswordHash,
		Phone:          in.Phone,
		StoreID:        in.StoreID,
		CompanyID:      in.CompanyID,
		PositionID:     in.PositionID,
		IsActive:       true,
		ApprovalStatus: in.ApprovalStatus,
	}
	if err := r.DB(ctx).Create(&emp).Error; err != nil {
		return nil, err
	}
	return &emp, nil
}

// UpdateLastLogin stores the login stamp.
func (r *Repository) UpdateLastLogin(ctx context.Context, employeeID, stamp string) error {
	return r.DB(ctx).
		Model(&models.Employee{}).
		Where("employee_id = ?", employeeID).
		UpdateColumn("last_login_at", stamp).Error
}

// UpdatePasswordHash replaces the stored hash, used when upgrading legacy digests.
func (r *Repository) UpdatePasswordHash(ctx context.Context, employeeID, hash string) error {
	return r.DB(ctx).
		Model(&models.Employee{}).
		Where("employee_id = ?", employeeID).
		UpdateColumn("password_hash", hash).Error
}

// List returns active employees matching filter, newest first.
func (r *Repository) List(ctx context.Context, filter ListFilter) ([]EmployeeDTO, error) {
	q := r.DB(ctx).
		Table("employees AS e").
		Select(listColumns).
		Joins("LEFT JOIN positions p ON p.position_id = e.position_id")
	q = filter.apply(q).Order("e.created_at DESC").Order("e.employee_id")
	if filter.Limit > 0 {
		q = q.Limit(filter.Limit)
	}

	var rows []EmployeeDTO
	if err := q.Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// Count returns the number of active employees matching filter, ignoring Limit.
func (r *Repository) Count(ctx context.Context, filter ListFilter) (int64, error) {
	var n int64
	q := filter.apply(r.DB(ctx).Table("employees AS e"))
	if err := q.Count(&n).Error; err != nil {
		return 0, err
	}
	return n, nil
}
