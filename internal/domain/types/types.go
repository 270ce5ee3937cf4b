package types

// Enum for schedule lifecycle status
type ScheduleStatus string

func (s ScheduleStatus) String() string {
	return string(s)
}

const (
	ScheduleScheduled  ScheduleStatus = "scheduled"
	ScheduleInProgress ScheduleStatus = "inprogress"
	ScheduleCompleted  ScheduleStatus = "completed"
	ScheduleCancelled  ScheduleStatus = "cancelled"
)

// Enum for vehicle type
type VehicleType string

const (
	VehicleCar     VehicleType = "car"
	VehicleBike    VehicleType = "bike"
	VehicleScooter VehicleType = "scooter"
)

// Enum for vehicle availability
type VehicleStatus string

const (
	VehicleAvailable   VehicleStatus = "available"
	VehicleInUse       VehicleStatus = "in_use"
	VehicleMaintenance VehicleStatus = "maintenance"
)

// Enum for user role
type UserRole string

func (r UserRole) String() string {
	return string(r)
}

const (
	AdminRole     UserRole = "ADMIN"
	ManagerRole   UserRole = "MANAGER"
	FrontDeskRole UserRole = "FRONT_DESK"
)
