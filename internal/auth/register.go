package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/angelmondragon/hrm-backend/pkg/auth/session"
	"github.com/angelmondragon/hrm-backend/pkg/config"
	"github.com/angelmondragon/hrm-backend/pkg/db"
	"github.com/angelmondragon/hrm-backend/pkg/db/models"
	"github.com/angelmondragon/hrm-backend/pkg/enums"
	pkgerrors "github.com/angelmondragon/hrm-backend/pkg/errors"
	"github.com/angelmondragon/hrm-backend/pkg/security"
)

const (
	defaultCompanyID  = "CH"
	defaultPositionID = "CH_NV"

	maxEmployeeIDAttempts = 20
)

// RegisterService queues self-service registrations for review.
type RegisterService interface {
	Register(ctx context.Context, req RegisterRequest) (*RegisterResponse, error)
}

type employeeDirectory interface {
	EmailExists(ctx context.Context, email string) (bool, error)
	IDExists(ctx context.Context, employeeID string) (bool, error)
}

type registrationRepository interface {
	Create(ctx context.Context, reg *models.PendingRegistration) error
	PendingEmailExists(ctx context.Context, email string) (bool, error)
	IDExists(ctx context.Context, employeeID string) (bool, error)
	StoreExists(ctx context.Context, storeID string) (bool, error)
	FindPosition(ctx context.Context, positionID string) (*models.Position, error)
}

// RegisterServiceParams packages the dependencies for the registration flow.
type RegisterServiceParams struct {
	Employees      employeeDirectory
	Registrations  registrationRepository
	PasswordConfig config.PasswordConfig
	NewEmployeeID  func() (string, error)
}

type registerService struct {
	employees     employeeDirectory
	registrations registrationRepository
	passwordCfg   config.PasswordConfig
	newEmployeeID func() (string, error)
}

// NewRegisterService builds a registration service with the provided dependencies.
func NewRegisterService(params RegisterServiceParams) (RegisterService, error) {
	if params.Employees == nil {
		return nil, fmt.Errorf("employee directory required")
	}
	if params.Registrations == nil {
		return nil, fmt.Errorf("registration repository required")
	}
	if params.NewEmployeeID == nil {
		params.NewEmployeeID = security.NewEmployeeID
	}
	return &registerService{
		employees:     params.Employees,
		registrations: params.Registrations,
		passwordCfg:   params.PasswordConfig,
		newEmployeeID: params.NewEmployeeID,
	}, nil
}

func (s *registerService) Register(ctx context.Context, req RegisterRequest) (*RegisterResponse, error) {
	email := strings.TrimSpace(req.Email)

	taken, err := s.emailTaken(ctx, email)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "Email already registered")
	}

	companyID := firstNonEmpty(req.CompanyID, defaultCompanyID)
	positionID := firstNonEmpty(req.PositionID, defaultPositionID)
	if err := s.checkReferences(ctx, strings.TrimSpace(req.StoreID), positionID); err != nil {
		return nil, err
	}

	employeeID, err := s.allocateEmployeeID(ctx)
	if err != nil {
		return nil, err
	}
	hash, err := security.HashPassword(req.Password, s.passwordCfg)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "hash password")
	}
	code, err := security.NewVerificationCode()
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "generate verification code")
	}

	reg := &models.PendingRegistration{
		EmployeeID:       employeeID,
		Email:            email,
		PasswordHash:     hash,
		FullName:         strings.TrimSpace(req.FullName),
		Phone:            strings.TrimSpace(req.Phone),
		StoreID:          strings.TrimSpace(req.StoreID),
		CompanyID:        companyID,
		PositionID:       positionID,
		VerificationCode: code,
		Status:           enums.RegistrationStatusPending,
	}
	if err := s.registrations.Create(ctx, reg); err != nil {
		if db.IsUniqueViolation(err, "") {
			return nil, pkgerrors.New(pkgerrors.CodeConflict, "Registration already exists")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "create registration")
	}

	return &RegisterResponse{
		Success:              true,
		Message:              "Registration submitted. Awaiting approval.",
		EmployeeID:           employeeID,
		RequiresVerification: false,
	}, nil
}

// emailTaken checks approved employees and registrations still awaiting review.
func (s *registerService) emailTaken(ctx context.Context, email string) (bool, error) {
	exists, err := s.employees.EmailExists(ctx, email)
	if err != nil {
		return false, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "check employee email")
	}
	if exists {
		return true, nil
	}
	exists, err = s.registrations.PendingEmailExists(ctx, email)
	if err != nil {
		return false, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "check registration email")
	}
	return exists, nil
}

func (s *registerService) checkReferences(ctx context.Context, storeID, positionID string) error {
	ok, err := s.registrations.StoreExists(ctx, storeID)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "check store")
	}
	if !ok {
		return pkgerrors.New(pkgerrors.CodeValidation, "Invalid field: storeId").
			WithDetails(map[string]any{"storeId": "unknown store"})
	}
	pos, err := s.registrations.FindPosition(ctx, positionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return pkgerrors.New(pkgerrors.CodeValidation, "Invalid field: positionId").
				WithDetails(map[string]any{"positionId": "unknown position"})
		}
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "check position")
	}
	// admin positions are assigned by an administrator, never requested
	if (session.Principal{Permissions: pos.Permissions}).Can(session.PermSystemAdmin) {
		return pkgerrors.New(pkgerrors.CodeValidation, "Invalid field: positionId").
			WithDetails(map[string]any{"positionId": "position not open to self-registration"})
	}
	return nil
}

// allocateEmployeeID draws random identifiers until one is free in both
// the employee and registration tables.
func (s *registerService) allocateEmployeeID(ctx context.Context) (string, error) {
	for i := 0; i < maxEmployeeIDAttempts; i++ {
		id, err := s.newEmployeeID()
		if err != nil {
			return "", pkgerrors.Wrap(pkgerrors.CodeInternal, err, "generate employee id")
		}
		inEmployees, err := s.employees.IDExists(ctx, id)
		if err != nil {
			return "", pkgerrors.Wrap(pkgerrors.CodeInternal, err, "check employee id")
		}
		if inEmployees {
			continue
		}
		inRegistrations, err := s.registrations.IDExists(ctx, id)
		if err != nil {
			return "", pkgerrors.Wrap(pkgerrors.CodeInternal, err, "check registration id")
		}
		if !inRegistrations {
			return id, nil
		}
	}
	return "", pkgerrors.New(pkgerrors.CodeInternal, "no free employee id")
}

func firstNonEmpty(value, fallback string) string {
	if v := strings.TrimSpace(value); v != "" {
		return v
	}
	return fallback
}
