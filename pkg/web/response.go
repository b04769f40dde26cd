// Package web defines common components for a web application.
package web

import (
	"github.com/go-playground/validator/v10"
)

// JSONError provides type for explicit json encoded error response.
type JSONError struct {
	Error string `json:"error"`
}

// Error wraps a given err into json frinedly struct.
func Error(err error) JSONError {
	return JSONError{Error: err.Error()}
}

// ErrorMsg wraps a plain message into json friendly struct.
func ErrorMsg(msg string) JSONError {
	return JSONError{Error: msg}
}

// GetErrorMsg returns a human readable message for the first failed validation rule.
func GetErrorMsg(ve validator.ValidationErrors) string {
	if len(ve) == 0 {
		return ""
	}

	fe := ve[0]

	switch fe.Tag() {
	case "required":
		return fe.Field() + " is required"
	case "min":
		return fe.Field() + " must be greater than or equal to " + fe.Param()
	case "max":
		return fe.Field() + " must be less than or equal to " + fe.Param()
	case "oneof":
		return fe.Field() + " must be one of " + fe.Param()
	case "accounttype", "loantype", "cardstatus", "transferstatus":
		return fe.Field() + " is not supported"
	}

	return fe.Field() + " is invalid"
}

// Response holds the common envelope of the session and workflow APIs.
type Response struct {
	AccessToken          string `json:"access_token,omitempty"`
	AccessTokenExpiresAt string `json:"access_token_expires_at,omitempty"`
	Data                 any    `json:"data,omitempty"`
}
