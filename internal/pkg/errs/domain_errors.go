package errs

import "errors"

// Sentinel errors shared by the usecase layers and matched by handlers with errs.Is
var (
	// Lookup errors
	ErrListingNotFound     = errors.New("listing not found")
	ErrReservationNotFound = errors.New("reservation not found")

	// Calendar errors
	ErrDateOutsideWindow   = errors.New("date outside booking window")
	ErrMonthOutOfRange     = errors.New("month outside booking window")
	ErrToggleInFlight      = errors.New("toggle already in flight")
	ErrCalendarUnavailable = errors.New("calendar data unavailable")
	ErrMutationFailed      = errors.New("calendar mutation failed")

	// Reservation errors
	ErrReservationActionFailed = errors.New("reservation action failed")
)
