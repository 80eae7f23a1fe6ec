package models

import (
	"fmt"
	"time"
)

// AlertLevel orders slope hazard states from quiet to evacuation-grade.
// The ordering is load-bearing: fusion takes the maximum across channels
// and the state machine compares levels directly.
type AlertLevel int

const (
	AlertSafe AlertLevel = iota
	AlertWatch
	AlertWarning
	AlertCritical
)

// String renders the canonical upper-case label used in records, logs and
// the wire API.
func (l AlertLevel) String() string {
	switch l {
	case AlertSafe:
		return "SAFE"
	case AlertWatch:
		return "WATCH"
	case AlertWarning:
		return "WARNING"
	case AlertCritical:
		return "CRITICAL"
	default:
		return fmt.Sprintf("ALERT(%d)", int(l))
	}
}

// ParseAlertLevel maps a label back to its level.
func ParseAlertLevel(s string) (AlertLevel, error) {
	switch s {
	case "SAFE":
		return AlertSafe, nil
	case "WATCH":
		return AlertWatch, nil
	case "WARNING":
		return AlertWarning, nil
	case "CRITICAL":
		return AlertCritical, nil
	}
	return AlertSafe, fmt.Errorf("unknown alert level %q", s)
}

// ChannelOpinion is one analysis channel's hazard vote for a tick.
type ChannelOpinion struct {
	Channel  string
	Level    AlertLevel
	Reason   string
	Evidence float64
}

// Transition describes what the state machine did with a fused candidate.
type Transition struct {
	From            AlertLevel
	To              AlertLevel
	Candidate       AlertLevel
	Changed         bool
	Escalated       bool
	ProbationTicks  int
	ProbationNeeded int
	At              time.Time
}
