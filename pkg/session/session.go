// Package session holds the read-only identity and location context that
// is passed explicitly to every component that needs to know who is acting.
package session

import (
	"github.com/neighborbank/cli/pkg/credentials"
	clierrors "github.com/neighborbank/cli/pkg/errors"
)

// Role distinguishes customers from bankers.
type Role string

const (
	RoleGuest    Role = ""
	RoleCustomer Role = "C"
	RoleBanker   Role = "B"
)

// Valid reports whether r is a known signed-in role.
func (r Role) Valid() bool {
	return r == RoleCustomer || r == RoleBanker
}

func (r Role) String() string {
	switch r {
	case RoleCustomer:
		return "customer"
	case RoleBanker:
		return "banker"
	default:
		return "guest"
	}
}

// Session is a value; copies never observe later changes.
type Session struct {
	UserID   int64
	Nickname string
	Role     Role
	Location string
}

// Guest returns an anonymous session browsing the given district.
func Guest(location string) Session {
	return Session{Location: location}
}

// FromCredentials builds a session from stored credentials, falling back
// to a guest session when none are stored or they are no longer valid.
func FromCredentials(creds *credentials.Credentials, defaultLocation string) Session {
	if creds == nil || !creds.IsValid() {
		return Guest(defaultLocation)
	}
	location := creds.Location
	if location == "" {
		location = defaultLocation
	}
	return Session{
		UserID:   creds.UserID,
		Nickname: creds.Nickname,
		Role:     Role(creds.Role),
		Location: location,
	}
}

// SignedIn reports whether the session carries an identity.
func (s Session) SignedIn() bool {
	return s.UserID > 0 && s.Role.Valid()
}

func (s Session) IsCustomer() bool { return s.SignedIn() && s.Role == RoleCustomer }

func (s Session) IsBanker() bool { return s.SignedIn() && s.Role == RoleBanker }

// Owns reports whether the signed-in user authored content by customerID.
func (s Session) Owns(customerID int64) bool {
	return s.SignedIn() && s.UserID == customerID
}

// Require returns an auth_required error when the session is anonymous.
func (s Session) Require(action string) error {
	if !s.SignedIn() {
		return clierrors.AuthRequiredError(action)
	}
	return nil
}

// RequireCustomer is Require plus a customer-only role check.
func (s Session) RequireCustomer(action string) error {
	if err := s.Require(action); err != nil {
		return err
	}
	if s.Role != RoleCustomer {
		return clierrors.ForbiddenError("Only customers can " + action)
	}
	return nil
}

// RequireBanker is Require plus a banker-only role check.
func (s Session) RequireBanker(action string) error {
	if err := s.Require(action); err != nil {
		return err
	}
	if s.Role != RoleBanker {
		return clierrors.ForbiddenError("Only bankers can " + action)
	}
	return nil
}
