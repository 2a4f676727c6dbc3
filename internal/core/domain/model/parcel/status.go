package parcel

import (
	"fmt"

	"parceltrack/internal/pkg/errs"
)

// Status represents the lifecycle state of a parcel.
//
// The normal track moves strictly forward:
//
//	Created -> PickedUp -> InTransit -> Sorting -> OutForDelivery -> Delivered
//
// An orthogonal exception track (Exception, Lost, Delayed, Damaged) is
// reachable from any state. Exception states are not hard-locked in the data
// model: an operator with sufficient rights may still re-route a parcel out of
// them. Role-based restrictions live in services.TransitionPolicy, not here.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	StatusUnknown Status = iota

	// Created is the initial status when a parcel is registered.
	Created

	// PickedUp indicates the parcel has been collected from the sender.
	PickedUp

	// InTransit indicates the parcel is moving between facilities.
	InTransit

	// Sorting indicates the parcel is at a sorting facility, awaiting
	// driver assignment.
	Sorting

	// OutForDelivery indicates the parcel is with a driver. This status is
	// only ever set by the assignment scheduler.
	OutForDelivery

	// Delivered is the terminal status of the normal track.
	Delivered

	// Exception marks a general anomaly.
	Exception

	// Lost marks a parcel that cannot be located.
	Lost

	// Delayed marks a parcel running behind its estimated delivery.
	Delayed

	// Damaged marks a parcel with physical damage.
	Damaged
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown:  "unknown",
		Created:        "created",
		PickedUp:       "picked_up",
		InTransit:      "in_transit",
		Sorting:        "sorting",
		OutForDelivery: "out_for_delivery",
		Delivered:      "delivered",
		Exception:      "exception",
		Lost:           "lost",
		Delayed:        "delayed",
		Damaged:        "damaged",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // StatusUnknown is intentionally excluded as it's invalid
	return map[Status]string{
		Created:        "created",
		PickedUp:       "picked_up",
		InTransit:      "in_transit",
		Sorting:        "sorting",
		OutForDelivery: "out_for_delivery",
		Delivered:      "delivered",
		Exception:      "exception",
		Lost:           "lost",
		Delayed:        "delayed",
		Damaged:        "damaged",
	}
}

// statusRanks orders the pre-assignment portion of the normal track. The
// forward-only rule for warehouse staff applies to these ranks only; movement
// past Sorting is governed by the scheduler and by role restrictions.
func statusRanks() map[Status]int {
	return map[Status]int{
		Created:   0,
		PickedUp:  1,
		InTransit: 2,
		Sorting:   3,
	}
}

// StatusFromString parses a status name ("created", "picked_up", ...) into a
// Status. This is the single parse function for external input; there is no
// by-value fallback, and anything unrecognized is a ValueIsInvalidError.
func StatusFromString(s string) (Status, error) {
	for status, name := range getValidStatusStrings() {
		if name == s {
			return status, nil
		}
	}
	return StatusUnknown, errs.NewValueIsInvalidErrorWithCause(
		"status",
		fmt.Errorf("%q is not a known status", s),
	)
}

// Validate checks that the value is one of the defined statuses.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%d is not a valid status", s),
		)
	}
	return nil
}

// String returns the snake_case status name used on the wire and in the store.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// IsExceptional reports whether the status belongs to the exception track
// (Exception, Lost, Delayed, Damaged).
func (s Status) IsExceptional() bool {
	switch s {
	case Exception, Lost, Delayed, Damaged:
		return true
	default:
		return false
	}
}

// Rank returns the position of the status in the pre-assignment ordering
// Created(0) < PickedUp(1) < InTransit(2) < Sorting(3). The second return
// value is false for statuses outside that range.
func (s Status) Rank() (int, bool) {
	rank, ok := statusRanks()[s]
	return rank, ok
}
