package domain

import (
	"errors"
	"time"
)

var (
	// ErrCustomerNotFound indicates that there is no customer profile for the identifier.
	ErrCustomerNotFound = errors.New("customer not found")
	// ErrUserNotFound indicates the the user is not found.
	ErrUserNotFound = errors.New("user not found")
	// ErrWrongPassword indicates the wrong password for the given user.
	ErrWrongPassword = errors.New("wrong password")
)

// Profile is the public part of a customer record.
type Profile struct {
	Name    string `json:"name"`
	Surname string `json:"surname"`
}

// User holds login and profile data of a bank user.
type User struct {
	ID             string    `json:"id"`
	Username       string    `json:"username"`
	HashedPassword string    `json:"-"`
	Name           string    `json:"name"`
	Surname        string    `json:"surname"`
	Role           Role      `json:"role"`
	CreatedAt      time.Time `json:"createdAt"`
}
