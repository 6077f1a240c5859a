package services

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidInput         = errors.New("invalid input")
	ErrInvalidDateRange     = errors.New("check-out date must be after check-in date")
	ErrRoomNotFound         = errors.New("room not found")
	ErrRoomUnavailable      = errors.New("room is not available for the selected dates")
	ErrCapacityExceeded     = errors.New("number of guests exceeds room capacity")
	ErrBookingNotFound      = errors.New("booking not found")
	ErrInvalidTransition    = errors.New("booking status transition not allowed")
	ErrInvalidStatus        = fmt.Errorf("unknown booking status: %w", ErrInvalidTransition)
	ErrUserNotFound         = errors.New("user not found")
	ErrAvailabilityNotFound = errors.New("availability entry not found")
)
