package physics

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/benchguard/slope-engine/internal/models"
)

// acceleratingHistory follows the inverse-velocity line 1/v = 10 - t
// exactly, so the fitted trend crosses zero at t = 10 hours.
func acceleratingHistory(t0 time.Time) []models.DisplacementPoint {
	points := []models.DisplacementPoint{{At: t0, DisplacementMM: 0}}
	total := 0.0
	for i := 1; i <= 4; i++ {
		total += 1 / float64(10-i)
		points = append(points, models.DisplacementPoint{
			At:             t0.Add(time.Duration(i) * time.Hour),
			DisplacementMM: total,
		})
	}
	return points
}

func TestInverseVelocityTTFAccelerating(t *testing.T) {
	t0 := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	history := acceleratingHistory(t0)
	now := t0.Add(4 * time.Hour)

	ttf, slope, err := InverseVelocityTTF(history, now, 3)
	if err != nil {
		t.Fatalf("ttf: %v", err)
	}
	if ttf == nil {
		t.Fatalf("expected a projected failure time")
	}
	if math.Abs(*ttf-6) > 1e-9 {
		t.Fatalf("expected 6 hours to failure, got %v", *ttf)
	}
	if math.Abs(slope+1) > 1e-9 {
		t.Fatalf("expected fitted slope -1, got %v", slope)
	}
}

func TestInverseVelocityTTFClampsPastIntercept(t *testing.T) {
	t0 := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	history := acceleratingHistory(t0)
	now := t0.Add(11 * time.Hour)

	ttf, _, err := InverseVelocityTTF(history, now, 3)
	if err != nil {
		t.Fatalf("ttf: %v", err)
	}
	if ttf == nil {
		t.Fatalf("expected a projected failure time")
	}
	if *ttf != 0 {
		t.Fatalf("expected clamp to zero for an overdue projection, got %v", *ttf)
	}
}

func TestInverseVelocityTTFDecelerating(t *testing.T) {
	t0 := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	points := []models.DisplacementPoint{{At: t0, DisplacementMM: 0}}
	total := 0.0
	for i := 1; i <= 4; i++ {
		// Slowing movement: velocity shrinks every hour.
		total += 1 / float64(5+i)
		points = append(points, models.DisplacementPoint{
			At:             t0.Add(time.Duration(i) * time.Hour),
			DisplacementMM: total,
		})
	}

	ttf, slope, err := InverseVelocityTTF(points, t0.Add(4*time.Hour), 3)
	if err != nil {
		t.Fatalf("ttf: %v", err)
	}
	if ttf != nil {
		t.Fatalf("decelerating trend must not project a failure, got %v", *ttf)
	}
	if slope <= 0 {
		t.Fatalf("expected positive fitted slope, got %v", slope)
	}
}

func TestInverseVelocityTTFInsufficientHistory(t *testing.T) {
	t0 := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	points := []models.DisplacementPoint{
		{At: t0, DisplacementMM: 0},
		{At: t0.Add(time.Hour), DisplacementMM: 1},
	}

	_, _, err := InverseVelocityTTF(points, t0.Add(time.Hour), 3)
	if err == nil {
		t.Fatalf("expected insufficient history error")
	}
	var insufficient *models.InsufficientHistoryError
	if !errors.As(err, &insufficient) {
		t.Fatalf("expected InsufficientHistoryError, got %T", err)
	}
	if insufficient.Needed != 3 || insufficient.Got != 1 {
		t.Fatalf("expected needed=3 got=1, have %+v", insufficient)
	}
}

func TestInverseVelocityTTFSkipsUnusablePairs(t *testing.T) {
	t0 := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	// First pair has zero dt, second is a retraction; only the last two
	// pairs are usable.
	points := []models.DisplacementPoint{
		{At: t0, DisplacementMM: 0},
		{At: t0, DisplacementMM: 5},
		{At: t0.Add(time.Hour), DisplacementMM: 4},
		{At: t0.Add(2 * time.Hour), DisplacementMM: 4.5},
		{At: t0.Add(3 * time.Hour), DisplacementMM: 5.5},
	}

	_, _, err := InverseVelocityTTF(points, t0.Add(3*time.Hour), 3)
	var insufficient *models.InsufficientHistoryError
	if !errors.As(err, &insufficient) {
		t.Fatalf("expected InsufficientHistoryError, got %v", err)
	}
	if insufficient.Got != 2 {
		t.Fatalf("expected 2 usable pairs, got %d", insufficient.Got)
	}
}
