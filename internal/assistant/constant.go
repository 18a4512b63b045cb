package assistant

const (
	IntentScheduleAppointment = "ScheduleAppointment"
	IntentGetAvailability     = "GetAvailability"

	EntityTime = "time"

	// IntentThreshold is an exclusive lower bound: a score of exactly 0.5 does not qualify.
	IntentThreshold = 0.5

	FallbackText = "I'm sorry, I don't understand. Please try again."
	WelcomeText  = "Hi there! I'm the Contoso Dentistry Bot. I can help you schedule an appointment or answer any questions you have about our services."
)
