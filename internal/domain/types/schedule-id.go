package types

import "context"

type scheduleID struct{}

var scheduleIDKey = &scheduleID{}

func GetScheduleIDKey() *scheduleID {
	return scheduleIDKey
}

// Helper to set schedule_id in context
func WithScheduleIDContext(ctx context.Context, scheduleID string) context.Context {
	return context.WithValue(ctx, GetScheduleIDKey(), scheduleID)
}
