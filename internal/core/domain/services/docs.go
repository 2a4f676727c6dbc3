// Package services provides domain services that orchestrate business
// operations across multiple domain entities in the tracking system. It
// implements business workflows that don't naturally belong to a single
// aggregate root.
//
// The package includes:
//   - CostCalculator: computes shipping cost from weight and the pricing rule
//   - TransitionPolicy: role-based gating of status transitions
//   - DriverDispatcher: round-robin assignment of sorted parcels to drivers
//
// Domain services coordinate between aggregates, implementing business logic
// that spans multiple bounded contexts following Domain-Driven Design
// principles.
package services
