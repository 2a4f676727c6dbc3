package parcel

import (
	"errors"
	"fmt"
	"time"

	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/pkg/errs"
	"parceltrack/internal/pkg/guard"
)

const (
	// initialEventLocation is the location recorded on the synthesized
	// creation event.
	initialEventLocation = "System"
	// initialEventDescription is the description recorded on the synthesized
	// creation event.
	initialEventDescription = "Parcel registered, awaiting pickup"
)

var (
	// ErrParcelIsNotConstructed is returned when a Parcel was not created via
	// NewParcel or RestoreParcel.
	ErrParcelIsNotConstructed = errors.New("Parcel must be created via NewParcel or RestoreParcel")

	// ErrParcelIsNotAssignable is returned when assigning a driver to a
	// parcel that is not an unassigned parcel in Sorting status.
	ErrParcelIsNotAssignable = errors.New("parcel must be in sorting status and unassigned to take a driver")
)

// Parcel is the aggregate root of the tracking domain. It owns the ordered,
// append-only collection of tracking events and carries the current position
// in the status state machine.
//
// Invariants:
//   - Weight and all dimensions are strictly positive.
//   - The shipping cost is only ever produced by the cost calculator and
//     installed via Reprice; it is never independently settable.
//   - Exactly one tracking event exists per transition; the first event is
//     synthesized at construction with status Created.
//   - OutForDelivery is only entered through AssignDriver.
type Parcel struct {
	id             kernel.UUID
	trackingNumber kernel.TrackingNumber
	senderID       kernel.UUID
	recipient      Recipient

	// weight is the parcel weight in kilograms.
	weight     float64
	dimensions Dimensions

	declaredValue      kernel.Money
	contentDescription string

	packageType   PackageType
	deliverySpeed kernel.DeliverySpeed
	status        Status

	isHazardous     bool
	isFragile       bool
	isInternational bool

	shippingCost kernel.Money

	assignedDriverID *kernel.UUID

	createdAt         time.Time
	estimatedDelivery *time.Time

	events []*TrackingEvent

	guard guard.ConstructorGuard
}

// HandlingFlags groups the special-handling markers of a parcel.
type HandlingFlags struct {
	Hazardous     bool
	Fragile       bool
	International bool
}

// NewParcel creates a parcel in Created status with its initial tracking
// event. The shipping cost must come from the cost calculator.
func NewParcel(
	id kernel.UUID,
	trackingNumber kernel.TrackingNumber,
	senderID kernel.UUID,
	recipient Recipient,
	weight float64,
	dimensions Dimensions,
	packageType PackageType,
	deliverySpeed kernel.DeliverySpeed,
	declaredValue kernel.Money,
	contentDescription string,
	flags HandlingFlags,
	shippingCost kernel.Money,
) (*Parcel, error) {
	p := &Parcel{
		status:             Created,
		declaredValue:      declaredValue,
		contentDescription: contentDescription,
		isHazardous:        flags.Hazardous,
		isFragile:          flags.Fragile,
		isInternational:    flags.International,
		shippingCost:       shippingCost,
		createdAt:          time.Now(),
		guard:              guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		p.setID(id),
		p.setTrackingNumber(trackingNumber),
		p.setSenderID(senderID),
		p.setRecipient(recipient),
		p.setWeight(weight),
		p.setDimensions(dimensions),
		p.setPackageType(packageType),
		p.setDeliverySpeed(deliverySpeed),
	); err != nil {
		return nil, err
	}

	if err := p.appendEvent(Created, initialEventLocation, initialEventDescription, nil); err != nil {
		return nil, err
	}

	return p, nil
}

// RestoreParcel reconstructs a parcel from persistence, including its status,
// driver assignment, timestamps and event history.
func RestoreParcel(
	id kernel.UUID,
	trackingNumber kernel.TrackingNumber,
	senderID kernel.UUID,
	recipient Recipient,
	weight float64,
	dimensions Dimensions,
	packageType PackageType,
	deliverySpeed kernel.DeliverySpeed,
	declaredValue kernel.Money,
	contentDescription string,
	flags HandlingFlags,
	shippingCost kernel.Money,
	status Status,
	assignedDriverID *kernel.UUID,
	createdAt time.Time,
	estimatedDelivery *time.Time,
	events []*TrackingEvent,
) (*Parcel, error) {
	p, err := NewParcel(
		id, trackingNumber, senderID, recipient,
		weight, dimensions, packageType, deliverySpeed,
		declaredValue, contentDescription, flags, shippingCost,
	)
	if err != nil {
		return nil, err
	}

	if err = status.Validate(); err != nil {
		return nil, err
	}
	if assignedDriverID != nil {
		if err = assignedDriverID.Validate(); err != nil {
			return nil, err
		}
	}

	p.status = status
	p.assignedDriverID = assignedDriverID
	p.createdAt = createdAt
	p.estimatedDelivery = estimatedDelivery
	p.events = events
	return p, nil
}

// Validate ensures the Parcel was created through a constructor.
func (p *Parcel) Validate() error {
	if p == nil {
		return ErrParcelIsNotConstructed
	}
	return p.guard.Validate(ErrParcelIsNotConstructed)
}

// IsEqual compares two parcels by their unique identifiers.
func (p *Parcel) IsEqual(other *Parcel) bool {
	return other != nil && p.id.IsEqual(other.id)
}

// ID returns the parcel's unique identifier.
func (p *Parcel) ID() kernel.UUID {
	return p.id
}

// TrackingNumber returns the parcel's public tracking number.
func (p *Parcel) TrackingNumber() kernel.TrackingNumber {
	return p.trackingNumber
}

// SenderID returns the owning customer's identifier.
func (p *Parcel) SenderID() kernel.UUID {
	return p.senderID
}

// Recipient returns the delivery target.
func (p *Parcel) Recipient() Recipient {
	return p.recipient
}

// Weight returns the parcel weight in kilograms.
func (p *Parcel) Weight() float64 {
	return p.weight
}

// Dimensions returns the physical measurements.
func (p *Parcel) Dimensions() Dimensions {
	return p.dimensions
}

// DeclaredValue returns the sender-declared value of the contents.
func (p *Parcel) DeclaredValue() kernel.Money {
	return p.declaredValue
}

// ContentDescription returns the free-text content description.
func (p *Parcel) ContentDescription() string {
	return p.contentDescription
}

// PackageType returns the packaging category.
func (p *Parcel) PackageType() PackageType {
	return p.packageType
}

// DeliverySpeed returns the delivery-speed tier.
func (p *Parcel) DeliverySpeed() kernel.DeliverySpeed {
	return p.deliverySpeed
}

// Status returns the current state in the parcel lifecycle.
func (p *Parcel) Status() Status {
	return p.status
}

// Flags returns the special-handling markers.
func (p *Parcel) Flags() HandlingFlags {
	return HandlingFlags{
		Hazardous:     p.isHazardous,
		Fragile:       p.isFragile,
		International: p.isInternational,
	}
}

// ShippingCost returns the current computed shipping cost.
func (p *Parcel) ShippingCost() kernel.Money {
	return p.shippingCost
}

// AssignedDriverID returns the assigned driver's ID, or nil when unassigned.
func (p *Parcel) AssignedDriverID() *kernel.UUID {
	return p.assignedDriverID
}

// CreatedAt returns the creation timestamp.
func (p *Parcel) CreatedAt() time.Time {
	return p.createdAt
}

// EstimatedDelivery returns the estimated delivery timestamp, when set.
func (p *Parcel) EstimatedDelivery() *time.Time {
	return p.estimatedDelivery
}

// Events returns the tracking history in append order.
func (p *Parcel) Events() []*TrackingEvent {
	return p.events
}

// TransitionTo moves the parcel to target and appends the corresponding
// tracking event. The data model itself allows any transition between valid
// statuses; role-based restrictions are enforced by services.TransitionPolicy
// strictly before this method is called.
func (p *Parcel) TransitionTo(target Status, location, description string, actorID *kernel.UUID) error {
	if err := target.Validate(); err != nil {
		return err
	}

	if err := p.appendEvent(target, location, description, actorID); err != nil {
		return err
	}

	p.status = target
	return nil
}

// AssignDriver hands the parcel to a driver and advances it to
// OutForDelivery. Only unassigned parcels in Sorting status are assignable;
// this is the single entry point into OutForDelivery.
func (p *Parcel) AssignDriver(driverID kernel.UUID, driverName string) error {
	if err := driverID.Validate(); err != nil {
		return err
	}

	if p.status != Sorting || p.assignedDriverID != nil {
		return ErrParcelIsNotAssignable
	}

	description := fmt.Sprintf("Parcel assigned to driver %s for delivery", driverName)
	if err := p.appendEvent(OutForDelivery, "Auto-assignment", description, nil); err != nil {
		return err
	}

	p.assignedDriverID = &driverID
	p.status = OutForDelivery
	return nil
}

// UpdateWeight changes the parcel weight. The caller must recompute the
// shipping cost afterwards via Reprice.
func (p *Parcel) UpdateWeight(weight float64) error {
	return p.setWeight(weight)
}

// UpdateDimensions changes the physical measurements.
func (p *Parcel) UpdateDimensions(dimensions Dimensions) error {
	return p.setDimensions(dimensions)
}

// ChangeDeliverySpeed changes the delivery tier. The caller must recompute
// the shipping cost afterwards via Reprice.
func (p *Parcel) ChangeDeliverySpeed(speed kernel.DeliverySpeed) error {
	return p.setDeliverySpeed(speed)
}

// SetFlags replaces the special-handling markers.
func (p *Parcel) SetFlags(flags HandlingFlags) {
	p.isHazardous = flags.Hazardous
	p.isFragile = flags.Fragile
	p.isInternational = flags.International
}

// Reprice installs a freshly calculated shipping cost. This is the only way
// the cost changes after construction.
func (p *Parcel) Reprice(cost kernel.Money) {
	p.shippingCost = cost
}

// SetEstimatedDelivery installs the estimated delivery timestamp.
func (p *Parcel) SetEstimatedDelivery(estimated time.Time) {
	p.estimatedDelivery = &estimated
}

func (p *Parcel) appendEvent(status Status, location, description string, actorID *kernel.UUID) error {
	event, err := NewTrackingEvent(p.id, status, location, description, actorID)
	if err != nil {
		return err
	}

	p.events = append(p.events, event)
	return nil
}

func (p *Parcel) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *Parcel) setTrackingNumber(trackingNumber kernel.TrackingNumber) error {
	if err := trackingNumber.Validate(); err != nil {
		return err
	}
	p.trackingNumber = trackingNumber
	return nil
}

func (p *Parcel) setSenderID(senderID kernel.UUID) error {
	if err := senderID.Validate(); err != nil {
		return err
	}
	p.senderID = senderID
	return nil
}

func (p *Parcel) setRecipient(recipient Recipient) error {
	if err := recipient.Validate(); err != nil {
		return err
	}
	p.recipient = recipient
	return nil
}

func (p *Parcel) setWeight(weight float64) error {
	if weight <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("weight", fmt.Errorf("%v is not greater than 0", weight))
	}
	p.weight = weight
	return nil
}

func (p *Parcel) setDimensions(dimensions Dimensions) error {
	if err := dimensions.Validate(); err != nil {
		return err
	}
	p.dimensions = dimensions
	return nil
}

func (p *Parcel) setPackageType(packageType PackageType) error {
	if err := packageType.Validate(); err != nil {
		return err
	}
	p.packageType = packageType
	return nil
}

func (p *Parcel) setDeliverySpeed(speed kernel.DeliverySpeed) error {
	if err := speed.Validate(); err != nil {
		return err
	}
	p.deliverySpeed = speed
	return nil
}
