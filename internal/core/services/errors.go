package services

import "errors"

// Validation failures are resolved locally, before any gateway call is
// made. Controllers translate them to an inline banner; they never reach
// the network layer.
var (
	ErrMissingFields = errors.New("required fields are missing")
	ErrDoctorOnLeave = errors.New("doctor is on leave")
	ErrBadTime       = errors.New("invalid appointment date or time")
)
