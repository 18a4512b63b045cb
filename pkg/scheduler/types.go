package scheduler

// ScheduleRequest is the body posted to /schedule.
type ScheduleRequest struct {
	Time string `json:"time"`
}
