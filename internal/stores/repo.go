package stores

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/angelmondragon/hrm-backend/internal/repo"
	"github.com/angelmondragon/hrm-backend/pkg/db/models"
)

// Repository handles store reads; stores are managed outside the API.
type Repository struct {
	repo.Base
}

// NewRepository binds a GORM DB to store operations.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{Base: repo.NewBase(db)}
}

// List returns every store ordered by identifier.
func (r *Repository) List(ctx context.Context) ([]models.Store, error) {
	var stores []models.Store
	if err := r.DB(ctx).Order("store_id").Find(&stores).Error; err != nil {
		return nil, err
	}
	return stores, nil
}

// FindByID loads a store by identifier.
func (r *Repository) FindByID(ctx context.Context, storeID string) (*models.Store, error) {
	var store models.Store
	if err := r.DB(ctx).First(&store, "store_id = ?", storeID).Error; err != nil {
		return nil, err
	}
	return &store, nil
}

// FindForEmployee resolves the store assigned to employeeID. It returns
// nil, nil when the employee has no resolvable store.
func (r *Repository) FindForEmployee(ctx context.Context, employeeID string) (*models.Store, error) {
	var store models.Store
	err := r.DB(ctx).
		Table("employees AS e").
		Select("s.store_id, s.store_name, s.latitude, s.longitude, s.radius").
		Joins("JOIN stores s ON s.store_id = e.store_id").
		Where("e.employee_id = ?", employeeID).
		Take(&store).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &store, nil
}
