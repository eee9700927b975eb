package attendance

import (
	"context"

	"gorm.io/gorm"

	"github.com/angelmondragon/hrm-backend/internal/repo"
	"github.com/angelmondragon/hrm-backend/pkg/db/models"
)

// Repository appends and reads attendance records.
type Repository struct {
	repo.Base
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{Base: repo.NewBase(db)}
}

// Create appends a record. Records are never updated.
func (r *Repository) Create(ctx context.Context, record *models.Attendance) error {
	return r.DB(ctx).Create(record).Error
}

// List returns the employee's records newest first.
func (r *Repository) List(ctx context.Context, filter HistoryFilter) ([]models.Attendance, error) {
	q := filter.apply(r.DB(ctx).Model(&models.Attendance{})).
		Order("created_at DESC")
	if filter.Limit > 0 {
		q = q.Limit(filter.Limit)
	}
	var rows []models.Attendance
	if err := q.Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// Count returns the number of records matching the filter, ignoring Limit.
func (r *Repository) Count(ctx context.Context, filter HistoryFilter) (int64, error) {
	var total int64
	err := filter.apply(r.DB(ctx).Model(&models.Attendance{})).Count(&total).Error
	return total, err
}
