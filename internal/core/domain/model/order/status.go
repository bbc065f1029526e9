package order

import (
	"dispatch/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
// It implements a state machine with defined transitions to ensure orders
// follow the correct business workflow.
//
// State transitions:
//
//	Created ──> Started ──> Waiting ──> Ongoing ──> Completed
//	   │           │           │           │
//	   └───────────┴───────────┴───────────┴──> Rejected /
//	                                            RejectedByClient /
//	                                            RejectedByDriver
//
// Completed and the three rejected states are terminal: no transition may be
// applied to them. Status is a value object that validates state transitions
// and provides string representations for persistence and display.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	StatusUnknown Status = iota

	// StatusCreated is the initial status when an order is first created.
	// Orders in this status are visible to drivers and waiting for acceptance.
	StatusCreated

	// StatusStarted indicates a driver accepted the order and is heading to
	// the pickup point.
	StatusStarted

	// StatusWaiting indicates the driver arrived at the pickup point and is
	// waiting for the client.
	StatusWaiting

	// StatusOngoing indicates the ride (or delivery run) is in progress.
	StatusOngoing

	// StatusCompleted indicates the ride ended successfully. Terminal.
	StatusCompleted

	// StatusRejected indicates the order was cancelled by the system. Terminal.
	StatusRejected

	// StatusRejectedByClient indicates the client cancelled the order. Terminal.
	StatusRejectedByClient

	// StatusRejectedByDriver indicates the assigned driver abandoned the
	// order. Terminal.
	StatusRejectedByDriver
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown:          "Unknown",
		StatusCreated:          "Created",
		StatusStarted:          "Started",
		StatusWaiting:          "Waiting",
		StatusOngoing:          "Ongoing",
		StatusCompleted:        "Completed",
		StatusRejected:         "Rejected",
		StatusRejectedByClient: "RejectedByClient",
		StatusRejectedByDriver: "RejectedByDriver",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // StatusUnknown is intentionally excluded as it's invalid
	return map[Status]string{
		StatusCreated:          "Created",
		StatusStarted:          "Started",
		StatusWaiting:          "Waiting",
		StatusOngoing:          "Ongoing",
		StatusCompleted:        "Completed",
		StatusRejected:         "Rejected",
		StatusRejectedByClient: "RejectedByClient",
		StatusRejectedByDriver: "RejectedByDriver",
	}
}

// StatusFromString parses a status from its persisted name.
// Used by repository mappers; unknown names are a data corruption signal.
func StatusFromString(name string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == name {
			return status, nil
		}
	}
	return StatusUnknown, errs.NewValueIsInvalidError("status")
}

// Validate checks if the Status value is one of the defined lifecycle states.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidError("status")
	}
	return nil
}

// String returns the human-readable name of the status.
// Implements fmt.Stringer and is safe to call on any Status value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsTerminal reports whether the status permits no further transitions.
func (s Status) IsTerminal() bool {
	switch s {
	case StatusCompleted, StatusRejected, StatusRejectedByClient, StatusRejectedByDriver:
		return true
	default:
		return false
	}
}

// TerminalStatuses returns the statuses that permit no further transitions.
// Callers use it to exclude finished orders from active-order lookups.
func TerminalStatuses() []Status {
	return []Status{StatusCompleted, StatusRejected, StatusRejectedByClient, StatusRejectedByDriver}
}

// Accept transitions the status to Started.
//
// Valid transitions:
//   - Created -> Started (driver accepted the order)
//
// Returns InvalidStateError for any other current status. A second accept on
// an already started order must fail, not silently succeed; this is the core
// concurrency-sensitive contract of the state machine.
func (s Status) Accept() (Status, error) {
	if s != StatusCreated {
		return 0, errs.NewInvalidStateError("accept", s.String())
	}
	return StatusStarted, nil
}

// DriverArrived transitions the status to Waiting.
//
// Valid transitions:
//   - Started -> Waiting (driver reached the pickup point)
func (s Status) DriverArrived() (Status, error) {
	if s != StatusStarted {
		return 0, errs.NewInvalidStateError("driverArrived", s.String())
	}
	return StatusWaiting, nil
}

// Start transitions the status to Ongoing.
//
// Valid transitions:
//   - Waiting -> Ongoing (client picked up, ride started)
func (s Status) Start() (Status, error) {
	if s != StatusWaiting {
		return 0, errs.NewInvalidStateError("start", s.String())
	}
	return StatusOngoing, nil
}

// Complete transitions the status to Completed.
//
// Valid transitions:
//   - Ongoing -> Completed (ride ended)
func (s Status) Complete() (Status, error) {
	if s != StatusOngoing {
		return 0, errs.NewInvalidStateError("rideEnded", s.String())
	}
	return StatusCompleted, nil
}

// RejectTo transitions the status to the given terminal rejected state.
//
// Valid transitions: any non-terminal status -> Rejected / RejectedByClient /
// RejectedByDriver. The target must itself be one of the rejected states.
func (s Status) RejectTo(target Status) (Status, error) {
	switch target {
	case StatusRejected, StatusRejectedByClient, StatusRejectedByDriver:
	default:
		return 0, errs.NewValueIsInvalidError("target status")
	}

	if err := s.Validate(); err != nil {
		return 0, err
	}

	if s.IsTerminal() {
		return 0, errs.NewInvalidStateError("reject", s.String())
	}

	return target, nil
}
