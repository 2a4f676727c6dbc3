package user

import "parceltrack/internal/pkg/errs"

// CustomerType classifies a customer's commercial relationship. Prepaid
// customers hold a balance that is debited automatically at parcel creation.
type CustomerType int

const (
	// CustomerTypeUnknown is the zero value and is not a valid type.
	CustomerTypeUnknown CustomerType = iota
	// Contract customers are invoiced under a standing agreement.
	Contract
	// NonContract customers pay per shipment.
	NonContract
	// PrepaidCustomer customers settle from a pre-funded balance.
	PrepaidCustomer
)

func getCustomerTypeStrings() map[CustomerType]string {
	return map[CustomerType]string{
		CustomerTypeUnknown: "unknown",
		Contract:            "contract",
		NonContract:         "non_contract",
		PrepaidCustomer:     "prepaid",
	}
}

func getValidCustomerTypeStrings() map[string]CustomerType {
	return map[string]CustomerType{
		"contract":     Contract,
		"non_contract": NonContract,
		"prepaid":      PrepaidCustomer,
	}
}

// CustomerTypeFromString parses a customer type name. Unknown names yield a
// ValueIsInvalidError.
func CustomerTypeFromString(s string) (CustomerType, error) {
	if customerType, ok := getValidCustomerTypeStrings()[s]; ok {
		return customerType, nil
	}
	return CustomerTypeUnknown, errs.NewValueIsInvalidError("customer type: " + s)
}

// Validate checks that the customer type is one of the known values.
func (c CustomerType) Validate() error {
	if _, ok := getCustomerTypeStrings()[c]; !ok || c == CustomerTypeUnknown {
		return errs.NewValueIsInvalidError("customer type")
	}
	return nil
}

// String returns the lowercase name of the type, or "unknown" when it is not
// a valid value.
func (c CustomerType) String() string {
	if s, ok := getCustomerTypeStrings()[c]; ok {
		return s
	}
	return getCustomerTypeStrings()[CustomerTypeUnknown]
}
