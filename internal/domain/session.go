package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	// ErrBlockedSession indicates that the session is blocked.
	ErrBlockedSession = errors.New("blocked session")
	// ErrSessionNotFound indicates that the session is not found.
	ErrSessionNotFound = errors.New("session not found")
	// ErrForbidden indicates that the principal may not perform the operation.
	ErrForbidden = errors.New("forbidden")
)

// Session holds a logged in user session. Its ID is the access token id.
type Session struct {
	ID        uuid.UUID `json:"id"`
	UserID    string    `json:"userId"`
	Role      Role      `json:"role"`
	UserAgent string    `json:"userAgent"`
	ClientIP  string    `json:"clientIp"`
	IsBlocked bool      `json:"isBlocked"`
	ExpiresAt time.Time `json:"expiresAt"`
	CreatedAt time.Time `json:"createdAt"`
}

// CreateSessionParams holds data nedeed for Session creation.
type CreateSessionParams struct {
	ID        uuid.UUID
	UserID    string
	Role      Role
	UserAgent string
	ClientIP  string
	ExpiresAt time.Time
}

// LoginInfo records one successful login.
type LoginInfo struct {
	UserID    string    `json:"userId"`
	IPAddress string    `json:"ipAddress"`
	LoginTime time.Time `json:"loginTime"`
}

// Principal is the identity established once per request and passed explicitly to services.
type Principal struct {
	SessionID uuid.UUID
	UserID    string
	Role      Role
}

// IsAdmin reports whether the principal holds the admin role.
func (p Principal) IsAdmin() bool {
	return p.Role == RoleAdmin
}

// CanActFor reports whether the principal may mutate data of the customer.
func (p Principal) CanActFor(customerID string) bool {
	return p.Role == RoleCustomer && p.UserID == customerID
}
