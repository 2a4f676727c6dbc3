package kernel

import (
	"fmt"

	"parceltrack/internal/pkg/errs"
)

// DeliverySpeed is the delivery-speed service tier of a parcel. It drives
// pricing (each tier has its own pricing rule) and lives in the shared kernel
// because both the parcel and pricing aggregates depend on it.
type DeliverySpeed int

const (
	// DeliverySpeedUnknown represents an invalid or undefined tier.
	// This value (0) helps catch uninitialized DeliverySpeed values.
	DeliverySpeedUnknown DeliverySpeed = iota

	// Overnight delivers the next day.
	Overnight

	// TwoDay delivers within two days.
	TwoDay

	// Standard is the default tier.
	Standard

	// Economy is the cheapest, slowest tier.
	Economy
)

func getDeliverySpeedStrings() map[DeliverySpeed]string {
	return map[DeliverySpeed]string{
		DeliverySpeedUnknown: "unknown",
		Overnight:            "overnight",
		TwoDay:               "two_day",
		Standard:             "standard",
		Economy:              "economy",
	}
}

func getValidDeliverySpeedStrings() map[DeliverySpeed]string {
	//nolint:exhaustive // DeliverySpeedUnknown is intentionally excluded as it's invalid
	return map[DeliverySpeed]string{
		Overnight: "overnight",
		TwoDay:    "two_day",
		Standard:  "standard",
		Economy:   "economy",
	}
}

// DeliverySpeedFromString parses a tier name ("overnight", "two_day",
// "standard", "economy") into a DeliverySpeed. This is the single parse
// function for external input; anything unrecognized is a ValueIsInvalidError.
func DeliverySpeedFromString(s string) (DeliverySpeed, error) {
	for speed, name := range getValidDeliverySpeedStrings() {
		if name == s {
			return speed, nil
		}
	}
	return DeliverySpeedUnknown, errs.NewValueIsInvalidErrorWithCause(
		"delivery speed",
		fmt.Errorf("%q is not a known delivery speed", s),
	)
}

// TransitDays returns the promised delivery window of the tier in days,
// used to derive a parcel's estimated delivery date at creation.
func (s DeliverySpeed) TransitDays() int {
	switch s { //nolint:exhaustive // DeliverySpeedUnknown falls through to the default
	case Overnight:
		return 1
	case TwoDay:
		return 2
	case Economy:
		return 7
	default:
		return 5
	}
}

// Validate checks that the value is one of the defined tiers.
func (s DeliverySpeed) Validate() error {
	if _, ok := getValidDeliverySpeedStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"delivery speed",
			fmt.Errorf("%d is not a valid delivery speed", s),
		)
	}
	return nil
}

// String returns the snake_case tier name used on the wire and in the store.
func (s DeliverySpeed) String() string {
	if str, ok := getDeliverySpeedStrings()[s]; ok {
		return str
	}
	return "unknown"
}
