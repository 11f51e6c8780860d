// Package auth implements the admin guard: a single shared-secret check
// gating admin-only mutations. Stateless, no lockout, no sessions.
package auth

import (
	"crypto/subtle"

	apperrors "cleanbook/pkg/errors"
)

type Guard struct {
	adminCode string
}

func NewGuard(adminCode string) *Guard {
	return &Guard{adminCode: adminCode}
}

// Verify reports whether the supplied code matches the configured secret.
// Comparison is constant-time; an unconfigured guard rejects everything.
func (g *Guard) Verify(code string) bool {
	if g.adminCode == "" || code == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(code), []byte(g.adminCode)) == 1
}

// Authorize is the header-style check used by admin resource routes.
func (g *Guard) Authorize(code string) error {
	if !g.Verify(code) {
		return apperrors.Unauthorized("Unauthorized: Invalid admin code")
	}
	return nil
}

// AuthorizeMutation is the body-style check used by assign-cleaner, which
// historically returns 403 rather than 401.
func (g *Guard) AuthorizeMutation(code string) error {
	if !g.Verify(code) {
		return apperrors.Forbidden("Invalid admin code. Authorization failed.")
	}
	return nil
}
