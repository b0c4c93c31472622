package simulation

import (
	"freightdesk/internal/core/domain/model/kernel"
	"freightdesk/internal/pkg/errs"
)

// AgentStatus represents a delivery agent's current availability.
type AgentStatus int

const (
	// AgentStatusUnknown represents an invalid or undefined agent status.
	AgentStatusUnknown AgentStatus = iota

	// Available marks an agent ready to take deliveries.
	Available

	// OnDelivery marks an agent currently carrying orders.
	OnDelivery

	// Offline marks an agent not on shift.
	Offline

	// OnBreak marks an agent on a rest break.
	OnBreak
)

func agentStatusStrings() map[AgentStatus]string {
	return map[AgentStatus]string{
		AgentStatusUnknown: "Unknown",
		Available:          "Available",
		OnDelivery:         "OnDelivery",
		Offline:            "Offline",
		OnBreak:            "Break",
	}
}

// Validate checks that the status is one of the defined values.
func (s AgentStatus) Validate() error {
	if s <= AgentStatusUnknown || s > OnBreak {
		return errs.NewValueIsInvalidError("agent status")
	}

	return nil
}

// String returns the wire representation of the status.
func (s AgentStatus) String() string {
	if str, ok := agentStatusStrings()[s]; ok {
		return str
	}

	return agentStatusStrings()[AgentStatusUnknown]
}

// VehicleType represents the vehicle an agent delivers with.
type VehicleType int

const (
	// VehicleTypeUnknown represents an invalid or undefined vehicle type.
	VehicleTypeUnknown VehicleType = iota

	// Bike is a two-wheeler for short urban runs.
	Bike

	// Van is a light delivery van.
	Van

	// Truck is a heavy goods vehicle.
	Truck
)

func vehicleTypeStrings() map[VehicleType]string {
	return map[VehicleType]string{
		VehicleTypeUnknown: "unknown",
		Bike:               "bike",
		Van:                "van",
		Truck:              "truck",
	}
}

// String returns the wire representation of the vehicle type.
func (v VehicleType) String() string {
	if str, ok := vehicleTypeStrings()[v]; ok {
		return str
	}

	return vehicleTypeStrings()[VehicleTypeUnknown]
}

// Agent is one simulated delivery agent. Agents are read models produced
// by the generator; only their location changes afterwards.
type Agent struct {
	// ID is the stable agent identifier, e.g. "agent-001".
	ID string
	// Name is the agent's display name.
	Name string
	// Phone is the agent's contact number.
	Phone string
	// Status is the agent's availability.
	Status AgentStatus
	// Location is the agent's current position.
	Location kernel.GeoPoint
	// AssignedOrders lists order references the agent is carrying.
	AssignedOrders []string
	// Region is the city cluster the agent works in.
	Region string
	// Vehicle is the agent's vehicle type.
	Vehicle VehicleType
	// Rating is the agent's customer rating on a 5-point scale.
	Rating float64
	// TotalDeliveries counts completed deliveries.
	TotalDeliveries int
}
