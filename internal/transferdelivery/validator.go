package transferdelivery

import (
	"github.com/go-playground/validator/v10"

	"github.com/go-petr/devbank/internal/domain"
)

// ValidTransferStatus validates whether the status is a transfer lifecycle state.
var ValidTransferStatus validator.Func = func(fl validator.FieldLevel) bool {
	return domain.TransferStatus(fl.Field().String()).Valid()
}
