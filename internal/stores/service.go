package stores

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/angelmondragon/hrm-backend/pkg/db/models"
	pkgerrors "github.com/angelmondragon/hrm-backend/pkg/errors"
)

type storeRepository interface {
	List(ctx context.Context) ([]models.Store, error)
	FindByID(ctx context.Context, storeID string) (*models.Store, error)
}

// Service exposes store lookups.
type Service interface {
	List(ctx context.Context) ([]StoreDTO, error)
	Get(ctx context.Context, storeID string) (*StoreDTO, error)
}

type ServiceParams struct {
	Repo          storeRepository
	DefaultRadius float64
}

type service struct {
	repo          storeRepository
	defaultRadius float64
}

// NewService builds a store service with the provided repository.
func NewService(params ServiceParams) (Service, error) {
	if params.Repo == nil {
		return nil, fmt.Errorf("store repository required")
	}
	if params.DefaultRadius <= 0 {
		return nil, fmt.Errorf("default radius must be positive")
	}
	return &service{repo: params.Repo, defaultRadius: params.DefaultRadius}, nil
}

func (s *service) List(ctx context.Context) ([]StoreDTO, error) {
	rows, err := s.repo.List(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "list stores")
	}
	out := make([]StoreDTO, 0, len(rows))
	for _, row := range rows {
		out = append(out, FromModel(row, s.defaultRadius))
	}
	return out, nil
}

func (s *service) Get(ctx context.Context, storeID string) (*StoreDTO, error) {
	row, err := s.repo.FindByID(ctx, storeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "Store not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "load store")
	}
	dto := FromModel(*row, s.defaultRadius)
	return &dto, nil
}
