package services

import (
	"errors"
	"fmt"

	"parceltrack/internal/core/domain/model/parcel"
	"parceltrack/internal/core/domain/model/user"
	"parceltrack/internal/pkg/errs"
)

// ErrBackwardTransition is returned when warehouse staff attempt to move a
// parcel to an equal or lower rank on the pre-assignment track.
var ErrBackwardTransition = errors.New("status transition moves backwards")

// TransitionPolicy is a domain service enforcing role-based gating of status
// transitions. It decides authorization only; the parcel aggregate performs
// the actual transition afterwards.
//
// Rules per role:
//   - Customer: read-only, never allowed to transition.
//   - Driver: targets limited to Delivered and the exception track.
//   - Warehouse: exception targets always allowed; other targets limited to
//     PickedUp, InTransit and Sorting, and must strictly increase along the
//     Created < PickedUp < InTransit < Sorting ordering. Once a parcel has
//     left Sorting the ordering check no longer constrains it, and
//     OutForDelivery stays reserved for driver assignment.
//   - Admin and CustomerService: unrestricted, used for corrective action.
type TransitionPolicy struct{}

// NewTransitionPolicy creates a new TransitionPolicy instance.
func NewTransitionPolicy() TransitionPolicy {
	return TransitionPolicy{}
}

// Authorize checks whether actor may move a parcel from current to target.
// It returns nil when the transition is permitted, ErrBackwardTransition for
// a warehouse regression, or a NotAuthorizedError otherwise. No mutation
// happens here.
func (p TransitionPolicy) Authorize(actor *user.User, current, target parcel.Status) error {
	if err := actor.Validate(); err != nil {
		return err
	}
	if err := target.Validate(); err != nil {
		return err
	}

	action := fmt.Sprintf("transition to %s", target)

	switch actor.Role() { //nolint:exhaustive
	case user.Admin, user.CustomerService:
		return nil
	case user.Driver:
		if target == parcel.Delivered || target.IsExceptional() {
			return nil
		}
		return errs.NewNotAuthorizedError(actor.Role().String(), action)
	case user.Warehouse:
		return p.authorizeWarehouse(actor, current, target, action)
	default:
		return errs.NewNotAuthorizedError(actor.Role().String(), action)
	}
}

func (p TransitionPolicy) authorizeWarehouse(actor *user.User, current, target parcel.Status, action string) error {
	if target.IsExceptional() {
		return nil
	}

	targetRank, ok := target.Rank()
	if !ok || target == parcel.Created {
		return errs.NewNotAuthorizedError(actor.Role().String(), action)
	}

	// The ordering check only constrains parcels still on the
	// pre-assignment track.
	if currentRank, tracked := current.Rank(); tracked && targetRank <= currentRank {
		return ErrBackwardTransition
	}

	return nil
}
