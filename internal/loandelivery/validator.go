package loandelivery

import (
	"github.com/go-playground/validator/v10"

	"github.com/go-petr/devbank/internal/domain"
)

// ValidLoanType validates whether the loan type is supported.
var ValidLoanType validator.Func = func(fl validator.FieldLevel) bool {
	return domain.LoanType(fl.Field().String()).Valid()
}
