package analysis

import (
	"time"

	"github.com/devpulse/devpulse/internal/activity"
)

// HourCount pairs an hour of day with its event count.
type HourCount struct {
	Hour  int `json:"hour"`
	Count int `json:"count"`
}

// TimeReport describes when the user is active: full hour and weekday
// histograms, the top three hours, and the single busiest weekday.
type TimeReport struct {
	HourDistribution *Counter[int]    `json:"hour_distribution"`
	DayDistribution  *Counter[string] `json:"day_distribution"`
	PeakHours        []HourCount      `json:"peak_hours"`
	MostActiveDay    *string          `json:"most_active_day"`
}

// BucketTime builds the temporal histograms from the event stream.
// Timestamps must be the fixed UTC format GitHub emits; anything else is a
// DataFormatError and no report is produced. Peak hours are the top three
// by count, ties resolved by first appearance in the stream. The most
// active day is the weekday with the strictly maximal count, first seen
// winning on ties.
func BucketTime(events []activity.Event) (TimeReport, error) {
	hours := NewCounter[int]()
	days := NewCounter[string]()

	for i := range events {
		t, err := time.Parse(activity.TimestampLayout, events[i].CreatedAt)
		if err != nil {
			return TimeReport{}, &DataFormatError{
				Field: "created_at",
				Value: events[i].CreatedAt,
				Err:   err,
			}
		}
		t = t.UTC()
		hours.Add(t.Hour())
		days.Add(t.Weekday().String())
	}

	peaks := make([]HourCount, 0, 3)
	for _, e := range hours.MostCommon(3) {
		peaks = append(peaks, HourCount{Hour: e.Key, Count: e.Count})
	}

	report := TimeReport{
		HourDistribution: hours,
		DayDistribution:  days,
		PeakHours:        peaks,
	}
	if day, _, ok := days.Max(); ok {
		report.MostActiveDay = &day
	}
	return report, nil
}
