package repo

import (
	"context"

	"gorm.io/gorm"
)

// Base is embedded by every repository; it binds queries to the caller's
// context, which carries the request deadline.
type Base struct {
	db *gorm.DB
}

func NewBase(db *gorm.DB) Base {
	return Base{db: db}
}

// DB returns the connection bound to ctx. A nil ctx yields the raw handle.
func (b Base) DB(ctx context.Context) *gorm.DB {
	if ctx == nil {
		return b.db
	}
	return b.db.WithContext(ctx)
}

// Exists reports whether any row of model matches the condition.
func (b Base) Exists(ctx context.Context, model any, query string, args ...any) (bool, error) {
	var n int64
	err := b.DB(ctx).Model(model).Where(query, args...).Limit(1).Count(&n).Error
	return n > 0, err
}
