package parcel

import (
	"errors"
	"fmt"

	"parceltrack/internal/pkg/errs"
	"parceltrack/internal/pkg/guard"
)

// ErrDimensionsAreNotConstructed is returned when Dimensions were not created
// via the NewDimensions constructor.
var ErrDimensionsAreNotConstructed = errors.New("Dimensions must be created via NewDimensions constructor")

// Dimensions are the physical measurements of a parcel in centimeters.
// All three sides must be strictly positive.
type Dimensions struct {
	width  float64
	height float64
	length float64

	guard guard.ConstructorGuard
}

// NewDimensions creates Dimensions, rejecting any non-positive side.
func NewDimensions(width, height, length float64) (Dimensions, error) {
	if err := errors.Join(
		validateSide("width", width),
		validateSide("height", height),
		validateSide("length", length),
	); err != nil {
		return Dimensions{}, err
	}

	return Dimensions{
		width:  width,
		height: height,
		length: length,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

func validateSide(name string, value float64) error {
	if value <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(name, fmt.Errorf("%v is not greater than 0", value))
	}
	return nil
}

// Validate ensures the Dimensions were created through the constructor.
func (d Dimensions) Validate() error {
	return d.guard.Validate(ErrDimensionsAreNotConstructed)
}

// Width returns the width in centimeters.
func (d Dimensions) Width() float64 {
	return d.width
}

// Height returns the height in centimeters.
func (d Dimensions) Height() float64 {
	return d.height
}

// Length returns the length in centimeters.
func (d Dimensions) Length() float64 {
	return d.length
}
