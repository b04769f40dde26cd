package accountdelivery

import (
	"github.com/go-playground/validator/v10"

	"github.com/go-petr/devbank/internal/domain"
)

// ValidAccountType validates whether the account type is supported.
var ValidAccountType validator.Func = func(fl validator.FieldLevel) bool {
	switch t := fl.Field().Interface().(type) {
	case domain.AccountType:
		return t.Valid()
	case string:
		return domain.AccountType(t).Valid()
	}

	return false
}
