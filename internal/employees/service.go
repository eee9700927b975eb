package employees

import (
	"context"
	"fmt"

	pkgerrors "github.com/angelmondragon/hrm-backend/pkg/errors"
)

// Service exposes the employee directory.
type Service interface {
	List(ctx context.Context, filter ListFilter) ([]EmployeeDTO, int64, error)
}

type directoryRepository interface {
	List(ctx context.Context, filter ListFilter) ([]EmployeeDTO, error)
	Count(ctx context.Context, filter ListFilter) (int64, error)
}

type ServiceParams struct {
	Repo directoryRepository
}

type service struct {
	repo directoryRepository
}

func NewService(params ServiceParams) (Service, error) {
	if params.Repo == nil {
		return nil, fmt.Errorf("employees repository is required")
	}
	return &service{repo: params.Repo}, nil
}

// List returns the filtered page and the total matching count.
func (s *service) List(ctx context.Context, filter ListFilter) ([]EmployeeDTO, int64, error) {
	items, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, 0, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "list employees")
	}
	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		return nil, 0, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "count employees")
	}
	if items == nil {
		items = []EmployeeDTO{}
	}
	return items, total, nil
}
