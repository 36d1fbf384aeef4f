package domain

import (
	"errors"
	"time"
)

// User represents an operator account.
type User struct {
	ID             string
	Email          string
	Name           string
	HashedPassword string
	Role           Role
	Active         bool
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// Role represents a user's access level.
type Role string

const (
	// RoleAdmin has full access, including user management and deletes.
	RoleAdmin Role = "admin"

	// RoleOperator can register clients, loans, and payments.
	RoleOperator Role = "operator"

	// RoleViewer can only read.
	RoleViewer Role = "viewer"
)

var validRoles = map[Role]bool{
	RoleAdmin:    true,
	RoleOperator: true,
	RoleViewer:   true,
}

// IsValid checks if the role is a valid role.
func (r Role) IsValid() bool {
	return validRoles[r]
}

// CanCreate checks if the role can create resources.
func (r Role) CanCreate() bool {
	return r == RoleAdmin || r == RoleOperator
}

// CanDelete checks if the role can delete resources.
func (r Role) CanDelete() bool {
	return r == RoleAdmin
}

// Authentication and user management errors
var (
	ErrUnauthorized = errors.New("unauthorized")
	ErrInvalidToken = errors.New("invalid token")
	ErrExpiredToken = errors.New("token has expired")
	ErrUserNotFound = errors.New("user not found")
	ErrUserInactive = errors.New("user account is inactive")
	ErrInvalidRole  = errors.New("invalid role")
	ErrEmailInUse   = errors.New("user with this email already exists")
)
