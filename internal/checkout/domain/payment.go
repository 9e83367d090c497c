package domain

import (
	"fmt"
	"regexp"
	"strings"
)

type PaymentMethod string

const (
	MethodVisa       PaymentMethod = "visa"
	MethodMastercard PaymentMethod = "mastercard"
	MethodPayPal     PaymentMethod = "paypal"
	MethodPromptPay  PaymentMethod = "promptpay"
)

// ParsePaymentMethod validates a wire value against the fixed enumeration.
func ParsePaymentMethod(s string) (PaymentMethod, error) {
	switch m := PaymentMethod(strings.ToLower(strings.TrimSpace(s))); m {
	case MethodVisa, MethodMastercard, MethodPayPal, MethodPromptPay:
		return m, nil
	default:
		return "", fmt.Errorf("unknown payment method %q", s)
	}
}

// RequiresCard reports whether the method needs card details validated
// before submission. QR-style methods are confirmed out of band.
func (m PaymentMethod) RequiresCard() bool {
	return m == MethodVisa || m == MethodMastercard
}

// FieldError is a validation failure tied to a single input field, so the
// client can surface it next to the offending control.
type FieldError struct {
	Field   string
	Message string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

type CardDetails struct {
	Number string
	Expiry string
	CVC    string
}

var (
	cardNumberRe = regexp.MustCompile(`^\d{12,19}$`)
	expiryRe     = regexp.MustCompile(`^\d{2}\s*/\s*\d{2}$`)
	cvcRe        = regexp.MustCompile(`^\d{3,4}$`)
)

// Validate checks card details for card-based methods. The number is
// normalized by stripping spaces and dashes before the length check. The
// first violation is returned as a FieldError; card-less methods always
// pass.
func (c CardDetails) Validate(method PaymentMethod) error {
	if !method.RequiresCard() {
		return nil
	}
	digits := strings.NewReplacer(" ", "", "-", "").Replace(c.Number)
	if !cardNumberRe.MatchString(digits) {
		return &FieldError{Field: "cardNumber", Message: "card number must be 12-19 digits"}
	}
	if !expiryRe.MatchString(strings.TrimSpace(c.Expiry)) {
		return &FieldError{Field: "expiry", Message: "expiry must match MM / YY"}
	}
	if !cvcRe.MatchString(c.CVC) {
		return &FieldError{Field: "cvc", Message: "security code must be 3-4 digits"}
	}
	return nil
}
