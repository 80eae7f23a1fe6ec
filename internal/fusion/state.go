package fusion

import (
	"time"

	"github.com/benchguard/slope-engine/internal/models"
)

// StateMachine holds one site's alert level and applies asymmetric
// hysteresis: escalation is immediate, de-escalation waits out a probation
// period so a single quiet tick cannot silence a live alarm.
type StateMachine struct {
	current models.AlertLevel
	needed  int
	window  []models.AlertLevel
}

// NewStateMachine starts at SAFE. deescalateTicks is the number of
// consecutive below-current candidates required before the level drops;
// values below 1 are raised to 1.
func NewStateMachine(deescalateTicks int) *StateMachine {
	if deescalateTicks < 1 {
		deescalateTicks = 1
	}
	return &StateMachine{needed: deescalateTicks}
}

// Current returns the authoritative level.
func (m *StateMachine) Current() models.AlertLevel {
	return m.current
}

// Apply folds one fused candidate into the state.
//
// A candidate above current takes over immediately. A candidate at current
// holds and clears any probation progress. A candidate below current joins
// the probation window; once the window holds the required count of
// consecutive below-current candidates, the level drops to the worst
// candidate seen while on probation, never further.
func (m *StateMachine) Apply(candidate models.AlertLevel, at time.Time) models.Transition {
	tr := models.Transition{
		From:            m.current,
		Candidate:       candidate,
		ProbationNeeded: m.needed,
		At:              at,
	}

	switch {
	case candidate > m.current:
		m.current = candidate
		m.window = m.window[:0]
		tr.Changed = true
		tr.Escalated = true

	case candidate == m.current:
		m.window = m.window[:0]

	default:
		m.window = append(m.window, candidate)
		if len(m.window) >= m.needed {
			m.current = maxLevel(m.window)
			m.window = m.window[:0]
			tr.Changed = true
		}
	}

	tr.To = m.current
	tr.ProbationTicks = len(m.window)
	return tr
}

func maxLevel(levels []models.AlertLevel) models.AlertLevel {
	max := levels[0]
	for _, l := range levels[1:] {
		if l > max {
			max = l
		}
	}
	return max
}
