package kernel

import (
	"fmt"
	"regexp"
	"strings"

	"parceltrack/internal/pkg/errs"

	"github.com/google/uuid"
)

// trackingNumberPattern matches the public tracking number format:
// "TW-" followed by 8 uppercase hexadecimal characters.
var trackingNumberPattern = regexp.MustCompile(`^TW-[0-9A-F]{8}$`)

// ErrTrackingNumberIsNotConstructed indicates a TrackingNumber was not created
// through NewTrackingNumber or TrackingNumberFromString.
var ErrTrackingNumberIsNotConstructed = errs.NewValueIsRequiredError(
	"TrackingNumber must be created via NewTrackingNumber or TrackingNumberFromString",
)

// TrackingNumber is the public identifier of a parcel, in the form
// "TW-XXXXXXXX" where X is an uppercase hex digit.
//
// Generation draws 8 hex characters from a random UUID, so collisions are
// negligible but not impossible; uniqueness is enforced by the store's unique
// constraint, and a conflict must be surfaced to the caller who may retry
// with a freshly generated number.
type TrackingNumber struct {
	value string
}

// NewTrackingNumber generates a fresh tracking number.
func NewTrackingNumber() TrackingNumber {
	id := uuid.New()
	hex := strings.ToUpper(strings.ReplaceAll(id.String(), "-", ""))
	return TrackingNumber{value: "TW-" + hex[:8]}
}

// TrackingNumberFromString parses a tracking number received from a caller or
// restored from the store. Returns a ValueIsInvalidError when the format does
// not match "TW-XXXXXXXX".
func TrackingNumberFromString(s string) (TrackingNumber, error) {
	if !trackingNumberPattern.MatchString(s) {
		return TrackingNumber{}, errs.NewValueIsInvalidErrorWithCause(
			"tracking number",
			fmt.Errorf("%q does not match format TW-XXXXXXXX", s),
		)
	}
	return TrackingNumber{value: s}, nil
}

// String returns the tracking number in its public form.
func (t TrackingNumber) String() string {
	return t.value
}

// IsEqual compares two tracking numbers for equality.
func (t TrackingNumber) IsEqual(other TrackingNumber) bool {
	return t.value == other.value
}

// Validate returns ErrTrackingNumberIsNotConstructed for the zero value.
func (t TrackingNumber) Validate() error {
	if t.value == "" {
		return ErrTrackingNumberIsNotConstructed
	}
	return nil
}
