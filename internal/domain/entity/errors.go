package entity

import (
	"fmt"

	"github.com/sangkips/pos-register/pkg/apperror"
)

var (
	ErrSaleNotStarted  = apperror.NewPreconditionError("sale has not been started")
	ErrSaleNotEnded    = apperror.NewPreconditionError("sale must be ended before payment can be processed")
	ErrSaleAlreadyPaid = apperror.NewPreconditionError("sale has already been paid")
)

// InsufficientPaymentError is returned when the amount paid does not cover the total
type InsufficientPaymentError struct {
	Paid Money
	Due  Money
}

func (e *InsufficientPaymentError) Error() string {
	return fmt.Sprintf("paid amount (%s) is less than total amount due (%s)", e.Paid, e.Due)
}

// Is lets callers match with errors.Is(err, apperror.ErrInsufficientPayment)
func (e *InsufficientPaymentError) Is(target error) bool {
	return target == apperror.ErrInsufficientPayment
}
