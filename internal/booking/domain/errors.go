package domain

import "errors"

// Sentinel errors returned by roster operations. The service layer wraps
// these into typed apperr errors for HTTP mapping.
var (
	// ErrInvalidCount is returned when a resize would leave the roster
	// without at least one adult. The UI clamps counts, so seeing this
	// indicates a caller bug rather than ordinary user input.
	ErrInvalidCount = errors.New("a booking needs at least one adult")

	// ErrParticipantNotFound is returned when an edit targets a key that is
	// not in the roster.
	ErrParticipantNotFound = errors.New("participant not found")

	// ErrSingleRoomNotOffered is returned when a single-room toggle is
	// attempted on an accommodation stay, where rooms are the unit booked.
	ErrSingleRoomNotOffered = errors.New("single room option does not apply to accommodation stays")
)
