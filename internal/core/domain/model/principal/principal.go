// Package principal describes the authenticated caller of a use case.
//
// A Principal is created by the inbound adapter from an already validated
// token and handed explicitly to every operation that depends on who is
// asking. The core never reads it from ambient state.
package principal

import (
	"errors"
	"fmt"
	"strings"

	"fleet/internal/core/domain/model/kernel"
	"fleet/internal/pkg/errs"
	"fleet/internal/pkg/guard"
)

type Role string

const (
	// RoleSuperAdmin manages zones and vehicles and assigns orders for every company.
	RoleSuperAdmin Role = "SUPER_ADMIN"
	// RoleMSME is a client company placing and cancelling its own orders.
	RoleMSME Role = "MSME"
)

var ErrPrincipalIsNotConstructed = errors.New("Principal must be created via NewPrincipal constructor")

func ParseRole(s string) (Role, error) {
	switch r := Role(strings.ToUpper(strings.TrimSpace(s))); r {
	case RoleSuperAdmin, RoleMSME:
		return r, nil
	default:
		return "", errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%q is not a known role", s))
	}
}

type Principal struct { //nolint:recvcheck //using for validation
	subject   string
	role      Role
	companyID *kernel.UUID
	guard     guard.ConstructorGuard
}

// NewPrincipal requires a company for client principals. Administrators may
// carry a company but are never scoped by it.
func NewPrincipal(subject string, role Role, companyID *kernel.UUID) (Principal, error) {
	p := Principal{
		subject: strings.TrimSpace(subject),
		role:    role,
		guard:   guard.NewConstructorGuard(),
	}

	if _, err := ParseRole(string(role)); err != nil {
		return Principal{}, err
	}
	if companyID != nil {
		if err := companyID.Validate(); err != nil {
			return Principal{}, errs.NewValueIsInvalidErrorWithCause("company_id", err)
		}
		id := *companyID
		p.companyID = &id
	}
	if role == RoleMSME && p.companyID == nil {
		return Principal{}, errs.NewValueIsRequiredError("company_id")
	}

	return p, nil
}

func (p Principal) Validate() error {
	return p.guard.Validate(ErrPrincipalIsNotConstructed)
}

func (p Principal) Subject() string {
	return p.subject
}

func (p Principal) Role() Role {
	return p.role
}

func (p Principal) IsAdmin() bool {
	return p.role == RoleSuperAdmin
}

// CompanyID returns the company of the principal, if any.
func (p Principal) CompanyID() (kernel.UUID, bool) {
	if p.companyID == nil {
		return kernel.UUID{}, false
	}
	return *p.companyID, true
}

// CanActFor reports whether the principal may act on resources owned by companyID.
func (p Principal) CanActFor(companyID kernel.UUID) bool {
	if p.IsAdmin() {
		return true
	}
	own, ok := p.CompanyID()
	return ok && own.IsEqual(companyID)
}
