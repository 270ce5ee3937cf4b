package types

type ScheduleEvent string

func (s ScheduleEvent) String() string {
	return string(s)
}

const (
	EventScheduleCreated ScheduleEvent = "SCHEDULE_CREATED"
	EventScheduleUpdated ScheduleEvent = "SCHEDULE_UPDATED"
	EventScheduleDeleted ScheduleEvent = "SCHEDULE_DELETED"
	EventStatusChanged   ScheduleEvent = "STATUS_CHANGED"
)
