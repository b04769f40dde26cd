// Package tokenpkg issues and verifies session access tokens.
package tokenpkg

import (
	"fmt"
	"time"
)

// Maker is an interface for managing tokens.
type Maker interface {
	// CreateToken creates a new token for a specific user, role and duration.
	CreateToken(userID, role string, duration time.Duration) (string, *Payload, error)
	// VerifyToken checks if the token is valid or not.
	VerifyToken(token string) (*Payload, error)
}

// NewMaker returns the maker of the given kind, "paseto" or "jwt". An empty kind is paseto.
func NewMaker(kind, key string) (Maker, error) {
	var (
		m   Maker
		err error
	)

	switch kind {
	case "", "paseto":
		m, err = NewPasetoMaker(key)
	case "jwt":
		m, err = NewJWTMaker(key)
	default:
		return nil, fmt.Errorf("unsupported token maker %q", kind)
	}

	if err != nil {
		return nil, err
	}

	return m, nil
}
