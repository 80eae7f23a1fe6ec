package fusion

import (
	"testing"
	"time"

	"github.com/benchguard/slope-engine/internal/models"
)

func tick(i int) time.Time {
	return time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC).Add(time.Duration(i) * time.Minute)
}

func TestStateMachineEscalatesImmediately(t *testing.T) {
	m := NewStateMachine(3)

	tr := m.Apply(models.AlertCritical, tick(0))
	if !tr.Changed || !tr.Escalated || tr.To != models.AlertCritical {
		t.Fatalf("expected immediate escalation, got %+v", tr)
	}
	if m.Current() != models.AlertCritical {
		t.Fatalf("expected CRITICAL, got %s", m.Current())
	}
}

func TestStateMachineEscalatesDuringProbation(t *testing.T) {
	m := NewStateMachine(3)
	m.Apply(models.AlertWarning, tick(0))
	m.Apply(models.AlertSafe, tick(1))
	m.Apply(models.AlertSafe, tick(2))

	tr := m.Apply(models.AlertCritical, tick(3))
	if !tr.Escalated || m.Current() != models.AlertCritical {
		t.Fatalf("probation must not delay escalation, got %+v", tr)
	}
}

func TestStateMachineHoldsThroughProbation(t *testing.T) {
	m := NewStateMachine(3)
	m.Apply(models.AlertCritical, tick(0))

	for i := 1; i <= 2; i++ {
		tr := m.Apply(models.AlertSafe, tick(i))
		if tr.Changed {
			t.Fatalf("tick %d: dropped before probation completed: %+v", i, tr)
		}
		if m.Current() != models.AlertCritical {
			t.Fatalf("tick %d: expected CRITICAL held, got %s", i, m.Current())
		}
		if tr.ProbationTicks != i {
			t.Fatalf("tick %d: expected probation progress %d, got %d", i, i, tr.ProbationTicks)
		}
	}

	tr := m.Apply(models.AlertSafe, tick(3))
	if !tr.Changed || tr.To != models.AlertSafe {
		t.Fatalf("expected drop to SAFE after full probation, got %+v", tr)
	}
}

func TestStateMachineDropsToWorstOfProbationWindow(t *testing.T) {
	m := NewStateMachine(3)
	m.Apply(models.AlertCritical, tick(0))

	m.Apply(models.AlertWatch, tick(1))
	m.Apply(models.AlertSafe, tick(2))
	tr := m.Apply(models.AlertWatch, tick(3))

	if !tr.Changed || tr.To != models.AlertWatch {
		t.Fatalf("expected drop to the worst probation candidate WATCH, got %+v", tr)
	}
}

func TestStateMachineResetsProbationOnHold(t *testing.T) {
	m := NewStateMachine(3)
	m.Apply(models.AlertCritical, tick(0))

	m.Apply(models.AlertSafe, tick(1))
	m.Apply(models.AlertSafe, tick(2))
	// A candidate at the current level clears probation progress.
	tr := m.Apply(models.AlertCritical, tick(3))
	if tr.Changed || tr.ProbationTicks != 0 {
		t.Fatalf("expected probation reset, got %+v", tr)
	}

	m.Apply(models.AlertSafe, tick(4))
	tr = m.Apply(models.AlertSafe, tick(5))
	if tr.Changed {
		t.Fatalf("probation must restart after a reset, got %+v", tr)
	}
	if m.Current() != models.AlertCritical {
		t.Fatalf("expected CRITICAL held, got %s", m.Current())
	}
}

func TestStateMachineSingleTickProbation(t *testing.T) {
	m := NewStateMachine(0)
	m.Apply(models.AlertWarning, tick(0))

	tr := m.Apply(models.AlertSafe, tick(1))
	if !tr.Changed || tr.To != models.AlertSafe {
		t.Fatalf("expected immediate drop with single-tick probation, got %+v", tr)
	}
}
