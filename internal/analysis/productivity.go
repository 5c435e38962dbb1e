package analysis

import (
	"encoding/json"
	"math"

	"github.com/devpulse/devpulse/internal/activity"
)

// ProductivityReport holds per-active-day rates. An empty event stream
// yields an empty report that serializes as {}.
type ProductivityReport struct {
	TotalEvents        int     `json:"total_events"`
	ActiveDays         int     `json:"active_days"`
	DailyAverageEvents float64 `json:"daily_average_events"`
	TotalCommits       int     `json:"total_commits"`
	CommitsPerDay      float64 `json:"commits_per_day"`

	empty bool
}

// IsEmpty reports whether the source event stream was empty.
func (r ProductivityReport) IsEmpty() bool {
	return r.empty
}

// MarshalJSON renders an empty report as {}, not as per-field zeros.
func (r ProductivityReport) MarshalJSON() ([]byte, error) {
	if r.empty {
		return []byte("{}"), nil
	}
	type plain ProductivityReport
	return json.Marshal(plain(r))
}

// CalculateProductivity derives daily rates from the event stream and the
// deduplicated active-day set. All ratios are guarded against zero active
// days and rounded to two decimals.
func CalculateProductivity(events []activity.Event, contributions activity.Contributions) ProductivityReport {
	if len(events) == 0 {
		return ProductivityReport{empty: true}
	}

	activeDays := len(contributions.ActiveDays)
	totalCommits := 0
	for i := range events {
		if events[i].Type == activity.EventPush {
			totalCommits += events[i].CommitCount()
		}
	}

	return ProductivityReport{
		TotalEvents:        len(events),
		ActiveDays:         activeDays,
		DailyAverageEvents: round2(safeDivide(float64(len(events)), float64(activeDays))),
		TotalCommits:       totalCommits,
		CommitsPerDay:      round2(safeDivide(float64(totalCommits), float64(activeDays))),
	}
}

// safeDivide returns numerator/denominator, or zero for a zero denominator.
func safeDivide(numerator, denominator float64) float64 {
	if denominator == 0 {
		return 0
	}
	return numerator / denominator
}

// round2 rounds to two decimal places.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
