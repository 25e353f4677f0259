package order

import (
	"errors"
	"fmt"
)

// ResolveErrorCode categorizes order resolution failures.
type ResolveErrorCode string

const (
	// ErrCodeOrderNotFound indicates no planning row matches the order id.
	ErrCodeOrderNotFound ResolveErrorCode = "ORDER_NOT_FOUND"

	// ErrCodeProductCodeMissing indicates the matched planning row's
	// product code has zero technology steps.
	ErrCodeProductCodeMissing ResolveErrorCode = "PRODUCT_CODE_MISSING"
)

// ResolveError is a structured per-order resolution failure. It always
// carries the order id so batch reporting never degrades to a generic
// "an error occurred".
type ResolveError struct {
	Code        ResolveErrorCode
	OrderID     string
	ProductCode string
	Message     string
}

// Error implements the error interface.
func (e *ResolveError) Error() string {
	if e.ProductCode != "" {
		return fmt.Sprintf("%s: %s (order=%s, product=%s)", e.Code, e.Message, e.OrderID, e.ProductCode)
	}
	return fmt.Sprintf("%s: %s (order=%s)", e.Code, e.Message, e.OrderID)
}

// IsNotFound reports whether err is an ORDER_NOT_FOUND resolve error.
func IsNotFound(err error) bool {
	var re *ResolveError
	return errors.As(err, &re) && re.Code == ErrCodeOrderNotFound
}

// IsProductCodeMissing reports whether err is a PRODUCT_CODE_MISSING
// resolve error.
func IsProductCodeMissing(err error) bool {
	var re *ResolveError
	return errors.As(err, &re) && re.Code == ErrCodeProductCodeMissing
}
