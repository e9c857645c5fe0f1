package user

import (
	"errors"
	"regexp"
	"strings"
)

var (
	ErrInvalidEmail = errors.New("invalid email address")
	ErrInvalidRole  = errors.New("invalid role")
)

// Role is the platform-wide role carried in the auth token. Per-establishment
// staff rights are granted separately through memberships.
type Role string

const (
	RoleCustomer Role = "customer"
	RoleStaff    Role = "staff"
	RoleAdmin    Role = "admin"
)

func NewRole(value string) (Role, error) {
	role := Role(value)
	switch role {
	case RoleCustomer, RoleStaff, RoleAdmin:
		return role, nil
	default:
		return "", ErrInvalidRole
	}
}

func (r Role) String() string {
	return string(r)
}

// MembershipRole is a user's role within one establishment.
type MembershipRole string

const (
	MembershipStaff   MembershipRole = "staff"
	MembershipManager MembershipRole = "manager"
)

func NewMembershipRole(value string) (MembershipRole, error) {
	role := MembershipRole(value)
	switch role {
	case MembershipStaff, MembershipManager:
		return role, nil
	default:
		return "", ErrInvalidRole
	}
}

func (r MembershipRole) String() string {
	return string(r)
}

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

type Email struct {
	value string
}

func NewEmail(value string) (Email, error) {
	trimmed := strings.TrimSpace(strings.ToLower(value))
	if trimmed == "" || !emailPattern.MatchString(trimmed) {
		return Email{}, ErrInvalidEmail
	}
	return Email{value: trimmed}, nil
}

func (e Email) String() string {
	return e.value
}
