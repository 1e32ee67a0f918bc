package booking

import (
	"github.com/BruksfildServices01/service-marketplace/internal/httperr"
)

// ===============================
// Booking Status
// ===============================

type Status string

const (
	StatusPending   Status = "pending"
	StatusAccepted  Status = "accepted"
	StatusRejected  Status = "rejected"
	StatusCompleted Status = "completed"
	StatusCanceled  Status = "canceled"
)

func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusAccepted, StatusRejected, StatusCompleted, StatusCanceled:
		return true
	}
	return false
}

// Terminal reports whether s is completed or canceled. Rejected has no
// outgoing event either, but is not terminal in the lifecycle sense.
func (s Status) Terminal() bool {
	return s == StatusCompleted || s == StatusCanceled
}

func InitialStatus() Status {
	return StatusPending
}

// ===============================
// Events
// ===============================

type Event string

const (
	EventAccept   Event = "accept"
	EventReject   Event = "reject"
	EventCancel   Event = "cancel"
	EventComplete Event = "complete"
)

// Next returns the status an event leads to from current, or
// InvalidTransition when current is not a valid source for the event.
func Next(current Status, ev Event) (Status, error) {
	switch ev {
	case EventAccept:
		if current == StatusPending {
			return StatusAccepted, nil
		}
	case EventReject:
		if current == StatusPending {
			return StatusRejected, nil
		}
	case EventCancel:
		if current == StatusPending || current == StatusAccepted {
			return StatusCanceled, nil
		}
	case EventComplete:
		if current == StatusAccepted {
			return StatusCompleted, nil
		}
	}

	return "", httperr.ErrInvalidTransition(
		"invalid_transition",
		"Cannot "+string(ev)+" a booking that is "+string(current)+".",
	)
}
