package billing

import "parceltrack/internal/pkg/errs"

// PaymentMethod is the settlement method chosen for a bill.
type PaymentMethod int

const (
	// PaymentMethodUnknown is the zero value and is not a valid method.
	PaymentMethodUnknown PaymentMethod = iota
	// Monthly bills are settled later through monthly invoicing.
	Monthly
	// Cash bills are settled later on delivery.
	Cash
	// CreditCard bills are settled immediately at creation.
	CreditCard
	// MobilePayment bills are settled immediately at creation.
	MobilePayment
	// Prepaid bills are settled immediately by debiting the customer balance.
	Prepaid
)

func getPaymentMethodStrings() map[PaymentMethod]string {
	return map[PaymentMethod]string{
		PaymentMethodUnknown: "unknown",
		Monthly:              "monthly",
		Cash:                 "cash",
		CreditCard:           "credit_card",
		MobilePayment:        "mobile_payment",
		Prepaid:              "prepaid",
	}
}

func getValidPaymentMethodStrings() map[string]PaymentMethod {
	return map[string]PaymentMethod{
		"monthly":        Monthly,
		"cash":           Cash,
		"credit_card":    CreditCard,
		"mobile_payment": MobilePayment,
		"prepaid":        Prepaid,
	}
}

// PaymentMethodFromString parses a payment method name. Unknown names yield a
// ValueIsInvalidError.
func PaymentMethodFromString(s string) (PaymentMethod, error) {
	if method, ok := getValidPaymentMethodStrings()[s]; ok {
		return method, nil
	}
	return PaymentMethodUnknown, errs.NewValueIsInvalidError("payment method: " + s)
}

// Validate checks that the method is one of the known values.
func (m PaymentMethod) Validate() error {
	if _, ok := getPaymentMethodStrings()[m]; !ok || m == PaymentMethodUnknown {
		return errs.NewValueIsInvalidError("payment method")
	}
	return nil
}

// String returns the lowercase name of the method, or "unknown" when it is
// not a valid value.
func (m PaymentMethod) String() string {
	if s, ok := getPaymentMethodStrings()[m]; ok {
		return s
	}
	return getPaymentMethodStrings()[PaymentMethodUnknown]
}

// SettlesImmediately reports whether a bill created with this method is
// marked paid at creation time. Prepaid settlement additionally requires a
// successful balance debit.
func (m PaymentMethod) SettlesImmediately() bool {
	switch m { //nolint:exhaustive
	case CreditCard, MobilePayment, Prepaid:
		return true
	default:
		return false
	}
}
