package session

import "strings"

// Permission codes stored on positions.
const (
	PermSystemAdmin         = "system_admin"
	PermRegistrationApprove = "registration_approve"
)

// Principal is the authenticated employee resolved from a session.
type Principal struct {
	EmployeeID     string  `json:"employeeId"`
	FullName       string  `json:"fullName"`
	Email          string  `json:"email"`
	Phone          *string `json:"phone"`
	StoreID        *string `json:"storeId"`
	CompanyID      *string `json:"companyId"`
	PositionID     *string `json:"positionId"`
	PositionName   *string `json:"positionName"`
	Permissions    string  `json:"permissions"`
	ApprovalStatus string  `json:"approvalStatus"`
	IsActive       bool    `json:"isActive"`
	LastLoginAt    *string `json:"lastLoginAt"`
}

// PermissionList splits the comma separated permission codes.
func (p Principal) PermissionList() []string {
	var out []string
	for _, code := range strings.Split(p.Permissions, ",") {
		if code = strings.TrimSpace(code); code != "" {
			out = append(out, code)
		}
	}
	return out
}

// Can reports whether the principal holds code; system_admin holds every code.
func (p Principal) Can(code string) bool {
	for _, held := range p.PermissionList() {
		if held == code || held == PermSystemAdmin || held == "*" {
			return true
		}
	}
	return false
}
