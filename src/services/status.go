package services

import "venise/src/types"

type Action string

const (
	ActionConfirm Action = "confirm"
	ActionCancel  Action = "cancel"
)

// transitions lists, per action, the statuses the action may be applied
// from. Every status is currently allowed from everywhere, matching the
// observed permissive behavior; restricting an action later is a matter of
// shrinking its entry here.
var transitions = map[Action]map[types.ReservationStatus]types.ReservationStatus{
	ActionConfirm: {
		types.RESERVATION_PENDING:   types.RESERVATION_CONFIRMED,
		types.RESERVATION_CONFIRMED: types.RESERVATION_CONFIRMED,
		types.RESERVATION_CANCELLED: types.RESERVATION_CONFIRMED,
		types.RESERVATION_COMPLETED: types.RESERVATION_CONFIRMED,
	},
	ActionCancel: {
		types.RESERVATION_PENDING:   types.RESERVATION_CANCELLED,
		types.RESERVATION_CONFIRMED: types.RESERVATION_CANCELLED,
		types.RESERVATION_CANCELLED: types.RESERVATION_CANCELLED,
		types.RESERVATION_COMPLETED: types.RESERVATION_CANCELLED,
	},
}

func applyTransition(current types.ReservationStatus, action Action) (types.ReservationStatus, error) {
	table, ok := transitions[action]
	if !ok {
		return current, ErrInvalidStatus
	}
	next, ok := table[current]
	if !ok {
		return current, ErrInvalidStatus
	}
	return next, nil
}
