// Package parcel provides domain entities and business logic for parcel
// lifecycle management in the tracking system. It implements the Parcel
// aggregate root with its status state machine and append-only tracking
// ledger.
//
// The package includes:
//   - Parcel: The aggregate root managing identity, physical attributes,
//     status, driver assignment and the tracking event collection
//   - Status: The lifecycle state machine with its exception track
//   - TrackingEvent: An immutable entry recording one status change
//   - Recipient, Dimensions: Value objects for delivery target and
//     physical measurements
//
// Key business rules:
//   - Parcels must have a valid identifier, tracking number, sender,
//     recipient, positive weight and positive dimensions
//   - Every status change appends exactly one tracking event; the first
//     event is synthesized at creation with status Created
//   - OutForDelivery is only entered through driver assignment
//   - The shipping cost is installed via Reprice only, never set directly
//
// Role-based transition restrictions are not part of this package; they are
// enforced by services.TransitionPolicy before any mutation.
package parcel
