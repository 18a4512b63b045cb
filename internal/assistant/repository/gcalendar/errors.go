package gcalendar

import "errors"

// Booking and configuration errors for the calendar scheduler.
var (
	ErrInvalidHours = errors.New("gcalendar: open hour must be before close hour")
	ErrOutsideHours = errors.New("gcalendar: requested time is outside business hours")
	ErrSlotInPast   = errors.New("gcalendar: requested time has already passed")
	ErrSlotTaken    = errors.New("gcalendar: requested time is already booked")
)
