package analysis

import "github.com/devpulse/devpulse/internal/activity"

// TypeCount pairs an event type with its count.
type TypeCount struct {
	EventType string `json:"event_type"`
	Count     int    `json:"count"`
}

// ActivityReport describes what kinds of events the user generates.
type ActivityReport struct {
	EventTypeDistribution *Counter[string] `json:"event_type_distribution"`
	MostCommonActivity    *TypeCount       `json:"most_common_activity"`
	ActivityDiversity     int              `json:"activity_diversity"`
}

// CountActivityTypes tallies events per type. MostCommonActivity is nil for
// an empty stream; diversity is the number of distinct types observed.
func CountActivityTypes(events []activity.Event) ActivityReport {
	types := NewCounter[string]()
	for i := range events {
		types.Add(events[i].Type)
	}

	report := ActivityReport{
		EventTypeDistribution: types,
		ActivityDiversity:     types.Len(),
	}
	if typ, count, ok := types.Max(); ok {
		report.MostCommonActivity = &TypeCount{EventType: typ, Count: count}
	}
	return report
}
