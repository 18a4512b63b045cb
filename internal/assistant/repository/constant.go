package repository

import (
	"fmt"
	"strings"
)

// Upstream service labels used in metrics and logs.
const (
	ServiceQnAMaker  = "qnamaker"
	ServiceLUIS      = "luis"
	ServiceScheduler = "scheduler"
	ServiceCalendar  = "gcalendar"
)

const availabilityHeader = "Current time slots available: "

// FormatAvailability renders slots one per line after the header.
func FormatAvailability(slots []string) string {
	var b strings.Builder
	b.WriteString(availabilityHeader)
	for _, s := range slots {
		b.WriteString("\n")
		b.WriteString(s)
	}
	return b.String()
}

// FormatConfirmation is the reply after a booking succeeds.
func FormatConfirmation(timeText string) string {
	return fmt.Sprintf("An appointment is set for %s.", timeText)
}
