package models

import "fmt"

// InvalidSignalError rejects a waveform that cannot be decomposed.
type InvalidSignalError struct {
	Reason string
}

func (e *InvalidSignalError) Error() string {
	return fmt.Sprintf("invalid signal: %s", e.Reason)
}

// InsufficientHistoryError rejects a trend computation that has not seen
// enough usable observations yet.
type InsufficientHistoryError struct {
	Needed int
	Got    int
}

func (e *InsufficientHistoryError) Error() string {
	return fmt.Sprintf("insufficient history: need %d usable points, have %d", e.Needed, e.Got)
}

// FeatureMismatchError rejects a classification call whose assembled vector
// does not match the frozen model's expected features.
type FeatureMismatchError struct {
	Wanted []string
	Got    []string
}

func (e *FeatureMismatchError) Error() string {
	return fmt.Sprintf("feature mismatch: model wants %v, adapter built %v", e.Wanted, e.Got)
}

// MalformedReadingError rejects a sensor reading before any channel runs.
type MalformedReadingError struct {
	SiteID string
	Field  string
	Reason string
}

func (e *MalformedReadingError) Error() string {
	if e.SiteID == "" {
		return fmt.Sprintf("malformed reading: %s: %s", e.Field, e.Reason)
	}
	return fmt.Sprintf("malformed reading for site %s: %s: %s", e.SiteID, e.Field, e.Reason)
}
