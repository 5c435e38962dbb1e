package insights

import (
	"math"

	"github.com/devpulse/devpulse/internal/analysis"
)

// Trend is one of four fixed productivity classifications.
type Trend string

const (
	TrendHighlyActive       Trend = "highly_active"
	TrendModeratelyActive   Trend = "moderately_active"
	TrendOccasionallyActive Trend = "occasionally_active"
	TrendLowActivity        Trend = "low_activity"
)

// EventTypePrediction is the modal event type with its relative frequency.
type EventTypePrediction struct {
	EventType  string  `json:"event_type"`
	Confidence float64 `json:"confidence"`
}

// ActiveTimePrediction surfaces the peak-hour ranking.
type ActiveTimePrediction struct {
	MostLikelyHour int   `json:"most_likely_hour"`
	PeakHours      []int `json:"peak_hours"`
}

// ProductivityTrend classifies the daily event rate.
type ProductivityTrend struct {
	Trend        Trend   `json:"trend"`
	DailyAverage float64 `json:"daily_average"`
	Description  string  `json:"description"`
}

// Prediction is the output of the trend classification stage. The two
// optional fields are nil when their source data is empty.
type Prediction struct {
	LikelyNextEventType *EventTypePrediction  `json:"likely_next_event_type"`
	LikelyActiveTime    *ActiveTimePrediction `json:"likely_active_time"`
	ProductivityTrend   ProductivityTrend     `json:"productivity_trend"`
}

// trendRule maps an exclusive lower bound on the daily average to a trend.
// The table is ordered; the first matching row wins. The final row matches
// everything, so classification is total.
type trendRule struct {
	above       float64
	trend       Trend
	description string
}

var trendTable = []trendRule{
	{10, TrendHighlyActive, "User shows very high engagement with consistent daily activity"},
	{5, TrendModeratelyActive, "User maintains regular activity with good consistency"},
	{2, TrendOccasionallyActive, "User contributes periodically with moderate engagement"},
	{math.Inf(-1), TrendLowActivity, "User shows minimal activity, possibly inactive or new account"},
}

// classifyTrend walks the trend table. Bounds are strict: a daily average
// of exactly 10 is moderately active, not highly active.
func classifyTrend(dailyAverage float64) ProductivityTrend {
	for _, rule := range trendTable {
		if dailyAverage > rule.above {
			return ProductivityTrend{
				Trend:        rule.trend,
				DailyAverage: dailyAverage,
				Description:  rule.description,
			}
		}
	}
	// Unreachable: the table's last row matches all values.
	return ProductivityTrend{Trend: TrendLowActivity, DailyAverage: dailyAverage}
}

// Predictor derives the prediction report from a pattern report. It is a
// deterministic rule table, not a trained model.
type Predictor struct{}

// Predict classifies the productivity trend and surfaces the modal event
// type and peak-hour ranking.
func (Predictor) Predict(patterns *analysis.PatternReport) *Prediction {
	pred := &Prediction{
		ProductivityTrend: classifyTrend(patterns.ProductivityMetrics.DailyAverageEvents),
	}

	dist := patterns.ActivityPatterns.EventTypeDistribution
	if typ, count, ok := dist.Max(); ok {
		pred.LikelyNextEventType = &EventTypePrediction{
			EventType:  typ,
			Confidence: float64(count) / float64(dist.Total()),
		}
	}

	if peaks := patterns.TimePatterns.PeakHours; len(peaks) > 0 {
		hours := make([]int, len(peaks))
		for i, p := range peaks {
			hours[i] = p.Hour
		}
		pred.LikelyActiveTime = &ActiveTimePrediction{
			MostLikelyHour: peaks[0].Hour,
			PeakHours:      hours,
		}
	}

	return pred
}
