package parcel

import (
	"fmt"

	"parceltrack/internal/pkg/errs"
)

// PackageType is the physical packaging category of a parcel.
type PackageType int

const (
	// PackageTypeUnknown represents an invalid or undefined package type.
	PackageTypeUnknown PackageType = iota

	// Envelope is a flat mail envelope.
	Envelope

	// SmallBox is the default packaging.
	SmallBox

	// MediumBox is a medium-sized box.
	MediumBox

	// LargeBox is a large box.
	LargeBox
)

func getPackageTypeStrings() map[PackageType]string {
	return map[PackageType]string{
		PackageTypeUnknown: "unknown",
		Envelope:           "envelope",
		SmallBox:           "small_box",
		MediumBox:          "medium_box",
		LargeBox:           "large_box",
	}
}

func getValidPackageTypeStrings() map[PackageType]string {
	//nolint:exhaustive // PackageTypeUnknown is intentionally excluded as it's invalid
	return map[PackageType]string{
		Envelope:  "envelope",
		SmallBox:  "small_box",
		MediumBox: "medium_box",
		LargeBox:  "large_box",
	}
}

// PackageTypeFromString parses a package type name into a PackageType.
// Anything unrecognized is a ValueIsInvalidError; there is no fallback.
func PackageTypeFromString(s string) (PackageType, error) {
	for packageType, name := range getValidPackageTypeStrings() {
		if name == s {
			return packageType, nil
		}
	}
	return PackageTypeUnknown, errs.NewValueIsInvalidErrorWithCause(
		"package type",
		fmt.Errorf("%q is not a known package type", s),
	)
}

// Validate checks that the value is one of the defined package types.
func (p PackageType) Validate() error {
	if _, ok := getValidPackageTypeStrings()[p]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"package type",
			fmt.Errorf("%d is not a valid package type", p),
		)
	}
	return nil
}

// String returns the snake_case package type name.
func (p PackageType) String() string {
	if str, ok := getPackageTypeStrings()[p]; ok {
		return str
	}
	return "unknown"
}
