package registrations

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/angelmondragon/hrm-backend/internal/employees"
	"github.com/angelmondragon/hrm-backend/pkg/auth/session"
	"github.com/angelmondragon/hrm-backend/pkg/db/models"
	"github.com/angelmondragon/hrm-backend/pkg/enums"
	pkgerrors "github.com/angelmondragon/hrm-backend/pkg/errors"
)

// Service reviews self-service registrations. Approval promotes the
// registration into an approved employee in a single transaction.
type Service interface {
	List(ctx context.Context, reviewer session.Principal, filter ListFilter) ([]RegistrationDTO, error)
	Approve(ctx context.Context, reviewer session.Principal, employeeID string) error
	Reject(ctx context.Context, reviewer session.Principal, employeeID string, reason string) error
}

type txRunner interface {
	WithTx(ctx context.Context, fn func(tx *gorm.DB) error) error
}

type stamper interface {
	NowStamp() string
}

type ServiceParams struct {
	DB    txRunner
	Repo  *Repository
	Clock stamper
}

type service struct {
	db    txRunner
	repo  *Repository
	clock stamper
}

func NewService(params ServiceParams) (Service, error) {
	if params.DB == nil {
		return nil, fmt.Errorf("transaction runner required")
	}
	if params.Repo == nil {
		return nil, fmt.Errorf("registrations repository required")
	}
	if params.Clock == nil {
		return nil, fmt.Errorf("clock required")
	}
	return &service{db: params.DB, repo: params.Repo, clock: params.Clock}, nil
}

func (s *service) List(ctx context.Context, reviewer session.Principal, filter ListFilter) ([]RegistrationDTO, error) {
	if err := authorize(reviewer); err != nil {
		return nil, err
	}
	if filter.Status != "" && !filter.Status.IsValid() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "Invalid field: status").
			WithDetails(map[string]any{"status": "must be pending, approved or rejected"})
	}
	rows, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "list registrations")
	}
	out := make([]RegistrationDTO, 0, len(rows))
	for _, row := range rows {
		out = append(out, FromModel(row))
	}
	return out, nil
}

func (s *service) Approve(ctx context.Context, reviewer session.Principal, employeeID string) error {
	if err := authorize(reviewer); err != nil {
		return err
	}
	stamp := s.clock.NowStamp()

	return s.db.WithTx(ctx, func(tx *gorm.DB) error {
		regs := NewRepository(tx)
		emps := employees.NewRepository(tx)

		reg, err := loadPending(ctx, regs, employeeID)
		if err != nil {
			return err
		}

		taken, err := emps.EmailExists(ctx, reg.Email)
		if err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "check employee email")
		}
		if taken {
			return pkgerrors.New(pkgerrors.CodeConflict, "Email already registered")
		}

		phone := reg.Phone
		storeID := reg.StoreID
		companyID := reg.CompanyID
		positionID := reg.PositionID
		if _, err := emps.Create(ctx, employees.NewEmployee{
			EmployeeID:     reg.EmployeeID,
			FullName:       reg.FullName,
			Email:          reg.Email,
			PasswordHash:   reg.PasswordHash,
			Phone:          &phone,
			StoreID:        &storeID,
			CompanyID:      &companyID,
			PositionID:     &positionID,
			ApprovalStatus: enums.ApprovalStatusApproved,
		}); err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "create employee")
		}

		return markReviewed(ctx, regs, employeeID, Review{
			Status:     enums.RegistrationStatusApproved,
			ReviewedBy: reviewer.EmployeeID,
			ReviewedAt: stamp,
		})
	})
}

func (s *service) Reject(ctx context.Context, reviewer session.Principal, employeeID, reason string) error {
	if err := authorize(reviewer); err != nil {
		return err
	}
	var reasonPtr *string
	if r := strings.TrimSpace(reason); r != "" {
		reasonPtr = &r
	}
	stamp := s.clock.NowStamp()

	return s.db.WithTx(ctx, func(tx *gorm.DB) error {
		regs := NewRepository(tx)
		if _, err := loadPending(ctx, regs, employeeID); err != nil {
			return err
		}
		return markReviewed(ctx, regs, employeeID, Review{
			Status:     enums.RegistrationStatusRejected,
			ReviewedBy: reviewer.EmployeeID,
			ReviewedAt: stamp,
			Reason:     reasonPtr,
		})
	})
}

func authorize(reviewer session.Principal) error {
	if !reviewer.Can(session.PermRegistrationApprove) {
		return pkgerrors.New(pkgerrors.CodeForbidden, "Insufficient permissions").
			WithDetails(map[string]any{"required": session.PermRegistrationApprove})
	}
	return nil
}

func loadPending(ctx context.Context, regs *Repository, employeeID string) (*models.PendingRegistration, error) {
	reg, err := regs.FindByID(ctx, employeeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "Registration not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "load registration")
	}
	if reg.Status != enums.RegistrationStatusPending {
		return nil, pkgerrors.New(pkgerrors.CodeConflict, fmt.Sprintf("Registration already %s", reg.Status)).
			WithDetails(map[string]any{"status": reg.Status})
	}
	return reg, nil
}

func markReviewed(ctx context.Context, regs *Repository, employeeID string, review Review) error {
	ok, err := regs.Review(ctx, employeeID, review)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "update registration")
	}
	if !ok {
		return pkgerrors.New(pkgerrors.CodeConflict, "Registration is no longer pending")
	}
	return nil
}
