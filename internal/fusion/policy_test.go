package fusion

import (
	"testing"

	"github.com/benchguard/slope-engine/internal/models"
)

func TestGradeFoSBands(t *testing.T) {
	p := DefaultPolicy()

	cases := []struct {
		fos  float64
		want models.AlertLevel
	}{
		{1.80, models.AlertSafe},
		{1.30, models.AlertSafe},
		{1.20, models.AlertWatch},
		{1.05, models.AlertWatch},
		{1.02, models.AlertWarning},
		{1.00, models.AlertWarning},
		{0.99, models.AlertCritical},
	}
	for _, tc := range cases {
		if got := p.GradeFoS(tc.fos); got.Level != tc.want {
			t.Fatalf("FoS %v: expected %s, got %s", tc.fos, tc.want, got.Level)
		}
	}
}

func TestGradeTTFBands(t *testing.T) {
	p := DefaultPolicy()

	hours := func(h float64) models.Indicators {
		return models.Indicators{TTFHours: &h, TTFStatus: models.TTFIndicated}
	}

	cases := []struct {
		name string
		ind  models.Indicators
		want models.AlertLevel
	}{
		{"imminent", hours(1.5), models.AlertCritical},
		{"same shift", hours(4), models.AlertWarning},
		{"same day", hours(12), models.AlertWatch},
		{"beyond horizon", hours(48), models.AlertSafe},
		{"no trend", models.Indicators{TTFStatus: models.TTFNotIndicated}, models.AlertSafe},
		{"short history", models.Indicators{TTFStatus: models.TTFInsufficientHistory}, models.AlertSafe},
	}
	for _, tc := range cases {
		if got := p.GradeTTF(tc.ind); got.Level != tc.want {
			t.Fatalf("%s: expected %s, got %s", tc.name, tc.want, got.Level)
		}
	}
}

func TestGradeSeismic(t *testing.T) {
	p := DefaultPolicy()

	cases := []struct {
		name string
		c    models.Classification
		want models.AlertLevel
	}{
		{"benign", models.Classification{Label: models.LabelBenign, Confidence: 0.9}, models.AlertSafe},
		{"micro", models.Classification{Label: models.LabelMicroFracture, Confidence: 0.8}, models.AlertWatch},
		{"major", models.Classification{Label: models.LabelMajorFracture, Confidence: 0.9}, models.AlertCritical},
		{"inconclusive major", models.Classification{Label: models.LabelMajorFracture, Confidence: 0.3, Inconclusive: true}, models.AlertWatch},
		{"inconclusive benign", models.Classification{Label: models.LabelBenign, Confidence: 0.2, Inconclusive: true}, models.AlertWatch},
	}
	for _, tc := range cases {
		if got := p.GradeSeismic(tc.c); got.Level != tc.want {
			t.Fatalf("%s: expected %s, got %s", tc.name, tc.want, got.Level)
		}
	}
}

func TestGradeRatioAndRate(t *testing.T) {
	p := DefaultPolicy()

	if got := p.GradeRatio(models.BandEnergy{FractureRatio: 0.80}); got.Level != models.AlertCritical {
		t.Fatalf("ratio 0.80: expected CRITICAL, got %s", got.Level)
	}
	if got := p.GradeRatio(models.BandEnergy{FractureRatio: 0.60}); got.Level != models.AlertWarning {
		t.Fatalf("ratio 0.60: expected WARNING, got %s", got.Level)
	}
	if got := p.GradeRatio(models.BandEnergy{FractureRatio: 0.40}); got.Level != models.AlertWatch {
		t.Fatalf("ratio 0.40: expected WATCH, got %s", got.Level)
	}
	if got := p.GradeRatio(models.BandEnergy{FractureRatio: 0.10}); got.Level != models.AlertSafe {
		t.Fatalf("ratio 0.10: expected SAFE, got %s", got.Level)
	}

	if got := p.GradeRate(2.5); got.Level != models.AlertCritical {
		t.Fatalf("rate 2.5: expected CRITICAL, got %s", got.Level)
	}
	if got := p.GradeRate(0.7); got.Level != models.AlertWarning {
		t.Fatalf("rate 0.7: expected WARNING, got %s", got.Level)
	}
	if got := p.GradeRate(0.2); got.Level != models.AlertWatch {
		t.Fatalf("rate 0.2: expected WATCH, got %s", got.Level)
	}
	if got := p.GradeRate(0.01); got.Level != models.AlertSafe {
		t.Fatalf("rate 0.01: expected SAFE, got %s", got.Level)
	}
}

func TestFuseWorstOf(t *testing.T) {
	opinions := []models.ChannelOpinion{
		{Channel: ChannelFoS, Level: models.AlertSafe},
		{Channel: ChannelSeismic, Level: models.AlertCritical},
		{Channel: ChannelSignal, Level: models.AlertWatch},
		{Channel: ChannelRate, Level: models.AlertCritical},
	}

	level, dominant, err := Fuse(opinions)
	if err != nil {
		t.Fatalf("fuse: %v", err)
	}
	if level != models.AlertCritical {
		t.Fatalf("expected CRITICAL, got %s", level)
	}
	if len(dominant) != 2 {
		t.Fatalf("expected 2 dominant opinions, got %d", len(dominant))
	}
	for _, op := range dominant {
		if op.Level != models.AlertCritical {
			t.Fatalf("dominant opinion below fused level: %+v", op)
		}
	}
}

func TestFuseSingleOpinionRaises(t *testing.T) {
	quiet := []models.ChannelOpinion{
		{Channel: ChannelFoS, Level: models.AlertSafe},
		{Channel: ChannelTTF, Level: models.AlertSafe},
		{Channel: ChannelSignal, Level: models.AlertSafe},
	}
	level, _, err := Fuse(quiet)
	if err != nil {
		t.Fatalf("fuse: %v", err)
	}
	if level != models.AlertSafe {
		t.Fatalf("expected SAFE, got %s", level)
	}

	level, dominant, err := Fuse(append(quiet, models.ChannelOpinion{Channel: ChannelSeismic, Level: models.AlertWarning}))
	if err != nil {
		t.Fatalf("fuse: %v", err)
	}
	if level != models.AlertWarning {
		t.Fatalf("one warning opinion must raise the fuse, got %s", level)
	}
	if len(dominant) != 1 || dominant[0].Channel != ChannelSeismic {
		t.Fatalf("expected the seismic opinion to dominate, got %+v", dominant)
	}
}

func TestFuseRejectsEmpty(t *testing.T) {
	if _, _, err := Fuse(nil); err == nil {
		t.Fatalf("expected error for empty opinions")
	}
}

func TestPolicyValidate(t *testing.T) {
	if err := DefaultPolicy().Validate(); err != nil {
		t.Fatalf("default policy must validate: %v", err)
	}

	bad := DefaultPolicy()
	bad.FoSWatch = 1.5
	if err := bad.Validate(); err == nil {
		t.Fatalf("expected error for unordered FoS bands")
	}

	bad = DefaultPolicy()
	bad.TTFWatchHours = 1
	if err := bad.Validate(); err == nil {
		t.Fatalf("expected error for unordered TTF bands")
	}

	bad = DefaultPolicy()
	bad.RatioCritical = 1.5
	if err := bad.Validate(); err == nil {
		t.Fatalf("expected error for ratio band above 1")
	}

	bad = DefaultPolicy()
	bad.RateWarning = 0.01
	if err := bad.Validate(); err == nil {
		t.Fatalf("expected error for unordered rate bands")
	}
}
