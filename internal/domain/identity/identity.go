package identity

import (
	"strings"

	"storefront/internal/pkg/errs"
)

var (
	ErrInvalidRole    = errs.New("invalid role")
	ErrMissingSubject = errs.New("identity subject must not be empty")
)

type Role string

const (
	RoleCustomer Role = "customer"
	RoleAdmin    Role = "admin"
)

func (r Role) String() string {
	return string(r)
}

func (r Role) IsValid() bool {
	switch r {
	case RoleCustomer, RoleAdmin:
		return true
	default:
		return false
	}
}

// NewRole treats a missing role as a plain customer.
func NewRole(s string) (Role, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return RoleCustomer, nil
	}
	role := Role(s)
	if !role.IsValid() {
		return "", ErrInvalidRole
	}
	return role, nil
}

// Identity is the caller as asserted by an externally issued token.
type Identity struct {
	Subject string
	Email   string
	Role    Role
}

func New(subject, email, role string) (Identity, error) {
	subject = strings.TrimSpace(subject)
	if subject == "" {
		return Identity{}, ErrMissingSubject
	}
	r, err := NewRole(role)
	if err != nil {
		return Identity{}, err
	}
	return Identity{
		Subject: subject,
		Email:   strings.TrimSpace(email),
		Role:    r,
	}, nil
}

func (i Identity) IsAdmin() bool {
	return i.Role == RoleAdmin
}
