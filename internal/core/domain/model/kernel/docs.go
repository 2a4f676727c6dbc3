// Package kernel provides core domain primitives shared across the parcel
// tracking system. It implements fundamental building blocks following
// Domain-Driven Design principles that are used throughout the domain model.
//
// The package includes:
//   - UUID: A value object for unique identifiers with validation and comparison capabilities
//   - TrackingNumber: The public "TW-XXXXXXXX" parcel identifier
//   - Money: A 2-decimal monetary amount held in integer cents
//   - DeliverySpeed: The delivery-speed tier shared by the parcel and pricing aggregates
//
// These primitives enforce domain invariants and validation rules, ensuring that
// domain objects are always in a valid state. They are designed to be immutable
// and thread-safe, making them suitable for concurrent use.
package kernel
