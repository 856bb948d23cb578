package models

import (
	"errors"
	"fmt"
)

var ErrInvalidRole = errors.New("invalid role")

// Role selects which dashboard subtree is rendered.
type Role string

const (
	RoleCustomer Role = "customer"
	RoleDriver   Role = "driver"
	RoleAdmin    Role = "admin"
)

// Roles lists every role in tab order.
var Roles = []Role{RoleCustomer, RoleDriver, RoleAdmin}

func ParseRole(s string) (Role, error) {
	for _, r := range Roles {
		if string(r) == s {
			return r, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidRole, s)
}

// Viewer is a placeholder for the signed-in identity. Nothing populates it yet.
type Viewer struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

// RoleContext is threaded through every renderer.
type RoleContext struct {
	Viewer *Viewer `json:"viewer"`
	Role   Role    `json:"role"`
}
