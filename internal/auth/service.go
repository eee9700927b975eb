package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/angelmondragon/hrm-backend/pkg/auth/session"
	"github.com/angelmondragon/hrm-backend/pkg/config"
	"github.com/angelmondragon/hrm-backend/pkg/db/models"
	"github.com/angelmondragon/hrm-backend/pkg/enums"
	pkgerrors "github.com/angelmondragon/hrm-backend/pkg/errors"
	"github.com/angelmondragon/hrm-backend/pkg/logger"
	"github.com/angelmondragon/hrm-backend/pkg/security"
)

const (
	invalidCredentialsMessage = "Invalid credentials"
	missingCredentialsMessage = "Missing credentials"
)

// Service defines the behavior needed by the auth controller.
type Service interface {
	Login(ctx context.Context, req LoginRequest) (*LoginResponse, error)
	Logout(ctx context.Context, token string) error
}

type employeeRepository interface {
	FindByID(ctx context.Context, employeeID string) (*models.Employee, error)
	UpdateLastLogin(ctx context.Context, employeeID, stamp string) error
	UpdatePasswordHash(ctx context.Context, employeeID, hash string) error
}

type sessionManager interface {
	Create(ctx context.Context, employeeID string, rememberMe bool) (string, int64, error)
	Invalidate(ctx context.Context, token string) error
}

type stamper interface {
	NowStamp() string
}

// ServiceParams bundles the dependencies required to build an auth service.
type ServiceParams struct {
	Employees      employeeRepository
	Sessions       sessionManager
	Clock          stamper
	PasswordConfig config.PasswordConfig
	Logger         *logger.Logger
}

type service struct {
	employees   employeeRepository
	sessions    sessionManager
	clock       stamper
	passwordCfg config.PasswordConfig
	logg        *logger.Logger

	// unknown ids are verified against dummyHash so they cost the same as a wrong password
	dummyHash string
	verify    func(password, encoded string) (bool, error)
}

// NewService constructs a login service with the provided dependencies.
func NewService(params ServiceParams) (Service, error) {
	if params.Employees == nil {
		return nil, fmt.Errorf("employee repository is required")
	}
	if params.Sessions == nil {
		return nil, fmt.Errorf("session manager is required")
	}
	if params.Clock == nil {
		return nil, fmt.Errorf("clock is required")
	}
	dummyHash, err := security.HashPassword("no-such-employee", params.PasswordConfig)
	if err != nil {
		return nil, fmt.Errorf("prepare dummy hash: %w", err)
	}
	return &service{
		employees:   params.Employees,
		sessions:    params.Sessions,
		clock:       params.Clock,
		passwordCfg: params.PasswordConfig,
		logg:        params.Logger,
		dummyHash:   dummyHash,
		verify:      security.VerifyPassword,
	}, nil
}

func (s *service) Login(ctx context.Context, req LoginRequest) (*LoginResponse, error) {
	employeeID := strings.TrimSpace(req.EmployeeID)
	if employeeID == "" || req.Password == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, missingCredentialsMessage)
	}

	emp, err := s.authenticate(ctx, employeeID, req.Password)
	if err != nil {
		return nil, err
	}
	if emp.ApprovalStatus != enums.ApprovalStatusApproved {
		return nil, pkgerrors.New(pkgerrors.CodeForbidden, fmt.Sprintf("Account status: %s", emp.ApprovalStatus)).
			WithDetails(map[string]any{"approvalStatus": emp.ApprovalStatus})
	}

	if security.NeedsRehash(emp.PasswordHash, s.passwordCfg) {
		s.upgradeHash(ctx, emp.EmployeeID, req.Password)
	}

	token, expiresIn, err := s.sessions.Create(ctx, emp.EmployeeID, req.RememberMe)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "create session")
	}

	stamp := s.clock.NowStamp()
	if err := s.employees.UpdateLastLogin(ctx, emp.EmployeeID, stamp); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "update last login")
	}
	emp.LastLoginAt = &stamp

	return &LoginResponse{
		Success:   true,
		Message:   "Login successful",
		Token:     token,
		User:      principalFromEmployee(emp),
		ExpiresIn: expiresIn,
	}, nil
}

// Logout deactivates the session; unknown or already revoked tokens succeed.
func (s *service) Logout(ctx context.Context, token string) error {
	if err := s.sessions.Invalidate(ctx, token); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "invalidate session")
	}
	return nil
}

func (s *service) authenticate(ctx context.Context, employeeID, password string) (*models.Employee, error) {
	emp, err := s.employees.FindByID(ctx, employeeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			_, _ = s.verify(password, s.dummyHash)
			return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, invalidCredentialsMessage)
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "lookup employee")
	}

	valid, err := s.verify(password, emp.PasswordHash)
	if err != nil {
		if errors.Is(err, security.ErrInvalidHash) {
			return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, invalidCredentialsMessage)
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "verify password")
	}
	if !valid || !emp.IsActive {
		return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, invalidCredentialsMessage)
	}
	return emp, nil
}

// upgradeHash rewrites a legacy or under-cost hash after a successful login.
// A failed write keeps the old hash and does not block the login.
func (s *service) upgradeHash(ctx context.Context, employeeID, password string) {
	hash, err := security.HashPassword(password, s.passwordCfg)
	if err == nil {
		err = s.employees.UpdatePasswordHash(ctx, employeeID, hash)
	}
	if err != nil && s.logg != nil {
		s.logg.Error(s.logg.WithEmployeeID(ctx, employeeID), "auth.rehash_failed", err)
	}
}

func principalFromEmployee(emp *models.Employee) session.Principal {
	p := session.Principal{
		EmployeeID:     emp.EmployeeID,
		FullName:       emp.FullName,
		Email:          emp.Email,
		Phone:          emp.Phone,
		StoreID:        emp.StoreID,
		CompanyID:      emp.CompanyID,
		PositionID:     emp.PositionID,
		ApprovalStatus: string(emp.ApprovalStatus),
		IsActive:       emp.IsActive,
		LastLoginAt:    emp.LastLoginAt,
	}
	if emp.Position != nil {
		name := emp.Position.PositionName
		p.PositionName = &name
		p.Permissions = emp.Position.Permissions
	}
	return p
}
