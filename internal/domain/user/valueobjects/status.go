package valueobjects

import (
	"fmt"
	"strings"
)

// Status represents the user account status value object
type Status string

const (
	StatusActive    Status = "active"
	StatusInactive  Status = "inactive"
	StatusSuspended Status = "suspended"
)

var validStatuses = map[Status]bool{
	StatusActive:    true,
	StatusInactive:  true,
	StatusSuspended: true,
}

// statusTransitions defines allowed account status transitions
var statusTransitions = map[Status][]Status{
	StatusActive:    {StatusInactive, StatusSuspended},
	StatusInactive:  {StatusActive},
	StatusSuspended: {StatusActive, StatusInactive},
}

// ParseStatus parses a string to Status (case-insensitive)
func ParseStatus(value string) (Status, error) {
	normalized := Status(strings.ToLower(strings.TrimSpace(value)))
	if normalized == "" {
		return StatusActive, nil
	}
	if !validStatuses[normalized] {
		return "", fmt.Errorf("invalid user status: %s", value)
	}
	return normalized, nil
}

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	return validStatuses[s]
}

// IsActive checks if the status permits logging in and performing actions
func (s Status) IsActive() bool {
	return s == StatusActive
}

func (s Status) IsSuspended() bool {
	return s == StatusSuspended
}

// CanTransitionTo checks if the current status can transition to the target status
func (s Status) CanTransitionTo(target Status) bool {
	for _, allowed := range statusTransitions[s] {
		if allowed == target {
			return true
		}
	}
	return false
}
