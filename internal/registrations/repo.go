package registrations

import (
	"context"
	"strings"

	"gorm.io/gorm"

	"github.com/angelmondragon/hrm-backend/internal/repo"
	"github.com/angelmondragon/hrm-backend/pkg/db/models"
	"github.com/angelmondragon/hrm-backend/pkg/enums"
)

// Repository persists pending registrations.
type Repository struct {
	repo.Base
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{Base: repo.NewBase(db)}
}

func (r *Repository) Create(ctx context.Context, reg *models.PendingRegistration) error {
	return r.DB(ctx).Create(reg).Error
}

func (r *Repository) FindByID(ctx context.Context, employeeID string) (*models.PendingRegistration, error) {
	var reg models.PendingRegistration
	if err := r.DB(ctx).First(&reg, "employee_id = ?", employeeID).Error; err != nil {
		return nil, err
	}
	return &reg, nil
}

// PendingEmailExists reports whether a registration awaiting review uses email.
func (r *Repository) PendingEmailExists(ctx context.Context, email string) (bool, error) {
	return r.Exists(ctx, &models.PendingRegistration{},
		"LOWER(email) = ? AND status = ?", strings.ToLower(strings.TrimSpace(email)), enums.RegistrationStatusPending)
}

// IDExists reports whether any registration, reviewed or not, holds the identifier.
func (r *Repository) IDExists(ctx context.Context, employeeID string) (bool, error) {
	return r.Exists(ctx, &models.PendingRegistration{}, "employee_id = ?", employeeID)
}

// StoreExists reports whether storeID names a known store.
func (r *Repository) StoreExists(ctx context.Context, storeID string) (bool, error) {
	return r.Exists(ctx, &models.Store{}, "store_id = ?", storeID)
}

// FindPosition loads a position by id. A missing row surfaces as
// gorm.ErrRecordNotFound.
func (r *Repository) FindPosition(ctx context.Context, positionID string) (*models.Position, error) {
	var pos models.Position
	if err := r.DB(ctx).First(&pos, "position_id = ?", positionID).Error; err != nil {
		return nil, err
	}
	return &pos, nil
}

// List returns registrations newest first.
func (r *Repository) List(ctx context.Context, filter ListFilter) ([]models.PendingRegistration, error) {
	q := r.DB(ctx).Model(&models.PendingRegistration{})
	if filter.Status != "" {
		q = q.Where("status = ?", filter.Status)
	}
	if filter.StoreID != "" {
		q = q.Where("store_id = ?", filter.StoreID)
	}
	var rows []models.PendingRegistration
	if err := q.Order("created_at DESC").Order("employee_id").Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// Review moves a pending registration to status. It returns false when the
// row is missing or no longer pending.
func (r *Repository) Review(ctx context.Context, employeeID string, review Review) (bool, error) {
	res := r.DB(ctx).
		Model(&models.PendingRegistration{}).
		Where("employee_id = ? AND status = ?", employeeID, enums.RegistrationStatusPending).
		Updates(map[string]any{
			"status":        review.Status,
			"reviewed_by":   review.ReviewedBy,
			"reviewed_at":   review.ReviewedAt,
			"review_reason": review.Reason,
		})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}
