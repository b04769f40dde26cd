package carddelivery

import (
	"github.com/go-playground/validator/v10"

	"github.com/go-petr/devbank/internal/domain"
)

// ValidCardStatus validates whether the card status is supported.
var ValidCardStatus validator.Func = func(fl validator.FieldLevel) bool {
	switch s := fl.Field().Interface().(type) {
	case domain.CardStatus:
		return s.Valid()
	case string:
		return domain.CardStatus(s).Valid()
	}

	return false
}
