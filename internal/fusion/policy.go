package fusion

import (
	"fmt"

	"github.com/benchguard/slope-engine/internal/models"
)

// Channel names used on opinions, records and metrics labels.
const (
	ChannelSignal  = "signal"
	ChannelFoS     = "fos"
	ChannelTTF     = "ttf"
	ChannelRate    = "rate"
	ChannelSeismic = "seismic"
)

// Policy maps raw channel outputs onto alert levels. All boundaries come
// from configuration; Validate enforces their ordering before the engine
// accepts them.
type Policy struct {
	// Factor-of-safety bands. At or above Safe is quiet; below Warning is
	// past limit equilibrium.
	FoSSafe    float64
	FoSWatch   float64
	FoSWarning float64

	// Projected time-to-failure bands in hours.
	TTFCriticalHours float64
	TTFWarningHours  float64
	TTFWatchHours    float64

	// Fracture-band energy ratio bands.
	RatioWatch    float64
	RatioWarning  float64
	RatioCritical float64

	// Displacement rate bands in mm/h.
	RateWatch    float64
	RateWarning  float64
	RateCritical float64
}

// DefaultPolicy returns the field-calibrated thresholds.
func DefaultPolicy() Policy {
	return Policy{
		FoSSafe:          1.30,
		FoSWatch:         1.05,
		FoSWarning:       1.00,
		TTFCriticalHours: 2,
		TTFWarningHours:  6,
		TTFWatchHours:    24,
		RatioWatch:       0.30,
		RatioWarning:     0.55,
		RatioCritical:    0.75,
		RateWatch:        0.1,
		RateWarning:      0.5,
		RateCritical:     2.0,
	}
}

// Validate rejects threshold tables whose bands are unordered.
func (p Policy) Validate() error {
	if !(p.FoSSafe > p.FoSWatch && p.FoSWatch > p.FoSWarning && p.FoSWarning > 0) {
		return fmt.Errorf("FoS bands must satisfy safe > watch > warning > 0, got %v/%v/%v", p.FoSSafe, p.FoSWatch, p.FoSWarning)
	}
	if !(p.TTFCriticalHours > 0 && p.TTFCriticalHours < p.TTFWarningHours && p.TTFWarningHours < p.TTFWatchHours) {
		return fmt.Errorf("TTF bands must satisfy 0 < critical < warning < watch, got %v/%v/%v", p.TTFCriticalHours, p.TTFWarningHours, p.TTFWatchHours)
	}
	if !(p.RatioWatch > 0 && p.RatioWatch < p.RatioWarning && p.RatioWarning < p.RatioCritical && p.RatioCritical <= 1) {
		return fmt.Errorf("ratio bands must satisfy 0 < watch < warning < critical <= 1, got %v/%v/%v", p.RatioWatch, p.RatioWarning, p.RatioCritical)
	}
	if !(p.RateWatch > 0 && p.RateWatch < p.RateWarning && p.RateWarning < p.RateCritical) {
		return fmt.Errorf("rate bands must satisfy 0 < watch < warning < critical, got %v/%v/%v", p.RateWatch, p.RateWarning, p.RateCritical)
	}
	return nil
}

// GradeFoS votes on the factor of safety.
func (p Policy) GradeFoS(fos float64) models.ChannelOpinion {
	op := models.ChannelOpinion{Channel: ChannelFoS, Evidence: fos}
	switch {
	case fos >= p.FoSSafe:
		op.Level = models.AlertSafe
		op.Reason = fmt.Sprintf("FoS %.2f at or above safe band %.2f", fos, p.FoSSafe)
	case fos >= p.FoSWatch:
		op.Level = models.AlertWatch
		op.Reason = fmt.Sprintf("FoS %.2f below safe band %.2f", fos, p.FoSSafe)
	case fos >= p.FoSWarning:
		op.Level = models.AlertWarning
		op.Reason = fmt.Sprintf("FoS %.2f approaching limit equilibrium", fos)
	default:
		op.Level = models.AlertCritical
		op.Reason = fmt.Sprintf("FoS %.2f past limit equilibrium", fos)
	}
	return op
}

// GradeTTF votes on the projected time to failure. A nil projection is a
// quiet vote; the reason records whether the trend was flat or the history
// too short.
func (p Policy) GradeTTF(ind models.Indicators) models.ChannelOpinion {
	op := models.ChannelOpinion{Channel: ChannelTTF}
	if ind.TTFHours == nil {
		op.Level = models.AlertSafe
		if ind.TTFStatus == models.TTFInsufficientHistory {
			op.Reason = "awaiting displacement history"
		} else {
			op.Reason = "no acceleration trend"
		}
		return op
	}

	hours := *ind.TTFHours
	op.Evidence = hours
	switch {
	case hours <= p.TTFCriticalHours:
		op.Level = models.AlertCritical
		op.Reason = fmt.Sprintf("projected failure in %.1f h", hours)
	case hours <= p.TTFWarningHours:
		op.Level = models.AlertWarning
		op.Reason = fmt.Sprintf("projected failure in %.1f h", hours)
	case hours <= p.TTFWatchHours:
		op.Level = models.AlertWatch
		op.Reason = fmt.Sprintf("projected failure in %.1f h", hours)
	default:
		op.Level = models.AlertSafe
		op.Reason = fmt.Sprintf("projected failure %.0f h out, beyond watch horizon", hours)
	}
	return op
}

// GradeRate votes on the displacement rate.
func (p Policy) GradeRate(rateMMPerHour float64) models.ChannelOpinion {
	op := models.ChannelOpinion{Channel: ChannelRate, Evidence: rateMMPerHour}
	switch {
	case rateMMPerHour >= p.RateCritical:
		op.Level = models.AlertCritical
		op.Reason = fmt.Sprintf("displacement rate %.2f mm/h", rateMMPerHour)
	case rateMMPerHour >= p.RateWarning:
		op.Level = models.AlertWarning
		op.Reason = fmt.Sprintf("displacement rate %.2f mm/h", rateMMPerHour)
	case rateMMPerHour >= p.RateWatch:
		op.Level = models.AlertWatch
		op.Reason = fmt.Sprintf("displacement rate %.2f mm/h", rateMMPerHour)
	default:
		op.Level = models.AlertSafe
		op.Reason = fmt.Sprintf("displacement rate %.3f mm/h nominal", rateMMPerHour)
	}
	return op
}

// GradeRatio votes on the fracture-band energy share.
func (p Policy) GradeRatio(band models.BandEnergy) models.ChannelOpinion {
	op := models.ChannelOpinion{Channel: ChannelSignal, Evidence: band.FractureRatio}
	switch {
	case band.FractureRatio >= p.RatioCritical:
		op.Level = models.AlertCritical
		op.Reason = fmt.Sprintf("fracture band carries %.0f%% of trace energy", band.FractureRatio*100)
	case band.FractureRatio >= p.RatioWarning:
		op.Level = models.AlertWarning
		op.Reason = fmt.Sprintf("fracture band carries %.0f%% of trace energy", band.FractureRatio*100)
	case band.FractureRatio >= p.RatioWatch:
		op.Level = models.AlertWatch
		op.Reason = fmt.Sprintf("fracture band carries %.0f%% of trace energy", band.FractureRatio*100)
	default:
		op.Level = models.AlertSafe
		op.Reason = fmt.Sprintf("fracture band at %.1f%% of trace energy", band.FractureRatio*100)
	}
	return op
}

// GradeSeismic votes on the classifier verdict. An inconclusive verdict is
// suspicious by definition: it raises to WATCH and never reads as benign.
func (p Policy) GradeSeismic(c models.Classification) models.ChannelOpinion {
	op := models.ChannelOpinion{Channel: ChannelSeismic, Evidence: c.Confidence}
	if c.Inconclusive {
		op.Level = models.AlertWatch
		op.Reason = fmt.Sprintf("classifier inconclusive (%s at %.2f confidence)", c.Label, c.Confidence)
		return op
	}

	switch c.Label {
	case models.LabelMajorFracture:
		op.Level = models.AlertCritical
	case models.LabelMicroFracture:
		op.Level = models.AlertWatch
	default:
		op.Level = models.AlertSafe
	}
	op.Reason = fmt.Sprintf("classifier %s at %.2f confidence", c.Label, c.Confidence)
	return op
}

// Fuse combines channel opinions worst-of: the candidate is the maximum
// level voted, and the opinions at that level are returned as the dominant
// evidence.
func Fuse(opinions []models.ChannelOpinion) (models.AlertLevel, []models.ChannelOpinion, error) {
	if len(opinions) == 0 {
		return models.AlertSafe, nil, fmt.Errorf("no channel opinions to fuse")
	}

	worst := opinions[0].Level
	for _, op := range opinions[1:] {
		if op.Level > worst {
			worst = op.Level
		}
	}

	dominant := make([]models.ChannelOpinion, 0, len(opinions))
	for _, op := range opinions {
		if op.Level == worst {
			dominant = append(dominant, op)
		}
	}
	return worst, dominant, nil
}
