package types

import "errors"

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid or expired token")

	ErrStudentNotFound    = errors.New("student not found")
	ErrInstructorNotFound = errors.New("instructor not found")
	ErrVehicleNotFound    = errors.New("vehicle not found")
	ErrScheduleNotFound   = errors.New("schedule not found")

	ErrDuplicateEmail         = errors.New("email already exists")
	ErrDuplicateVehicleNumber = errors.New("vehicle number already exists")

	ErrScheduleReferences = errors.New("schedule references a missing student, vehicle or instructor")

	ErrNotFound = errors.New("requested item not found")
)
