// Package insights turns pattern reports into human-readable insights, a
// predicted trend, and a derived developer profile. Everything here is
// deterministic rule application; the same report always yields the same
// output.
package insights

import (
	"fmt"
	"strings"

	"github.com/devpulse/devpulse/internal/activity"
	"github.com/devpulse/devpulse/internal/analysis"
)

// trendingLanguages is the fixed set called out in language insights.
// Ordered: matches are reported in the distribution's first-seen order, so
// the sentence is stable across runs.
var trendingLanguages = map[string]bool{
	"Rust":       true,
	"Go":         true,
	"TypeScript": true,
	"Kotlin":     true,
}

// Report is the composed insight document. The insight slices are ordered:
// rules run in a fixed sequence and append in that sequence. Predictions
// and DeveloperProfile are present only when the raw dataset was supplied.
type Report struct {
	Summary              string      `json:"summary"`
	TimeInsights         []string    `json:"time_insights"`
	ActivityInsights     []string    `json:"activity_insights"`
	LanguageInsights     []string    `json:"language_insights"`
	ProductivityInsights []string    `json:"productivity_insights"`
	Recommendations      []string    `json:"recommendations"`
	Predictions          *Prediction `json:"predictions,omitempty"`
	DeveloperProfile     *Profile    `json:"developer_profile,omitempty"`
}

// Composer generates insight reports.
type Composer struct {
	predictor Predictor
	profiler  Profiler
}

// NewComposer creates a composer with its prediction and profiling stages.
func NewComposer() *Composer {
	return &Composer{}
}

// Generate runs the six insight generators over the pattern report. When
// dataset is non-nil the prediction and profile stages run as well.
func (c *Composer) Generate(patterns *analysis.PatternReport, dataset *activity.Dataset) *Report {
	report := &Report{
		Summary:              summarize(patterns),
		TimeInsights:         timeInsights(patterns),
		ActivityInsights:     activityInsights(patterns),
		LanguageInsights:     languageInsights(patterns),
		ProductivityInsights: productivityInsights(patterns),
		Recommendations:      recommendations(patterns),
	}

	if dataset != nil {
		report.Predictions = c.predictor.Predict(patterns)
		report.DeveloperProfile = c.profiler.CreateProfile(patterns)
	}

	return report
}

func summarize(p *analysis.PatternReport) string {
	primary := "Unknown"
	if p.LanguagePatterns.PrimaryLanguage != nil {
		primary = *p.LanguagePatterns.PrimaryLanguage
	}
	return fmt.Sprintf(
		"Developer has been active for %d days with %d total events. Primary language is %s with %d repositories.",
		p.ProductivityMetrics.ActiveDays,
		p.ProductivityMetrics.TotalEvents,
		primary,
		p.RepositoryPatterns.TotalRepositories,
	)
}

func timeInsights(p *analysis.PatternReport) []string {
	insights := []string{}

	if peaks := p.TimePatterns.PeakHours; len(peaks) > 0 {
		topHour := peaks[0].Hour
		insights = append(insights, fmt.Sprintf(
			"Most active during %s hours (around %d:00)", daySegment(topHour), topHour))
	}
	if p.TimePatterns.MostActiveDay != nil {
		insights = append(insights, fmt.Sprintf(
			"Most productive on %ss", *p.TimePatterns.MostActiveDay))
	}

	return insights
}

func activityInsights(p *analysis.PatternReport) []string {
	insights := []string{}
	dist := p.ActivityPatterns.EventTypeDistribution

	if dist.Has(activity.EventPush) {
		pct := percentage(dist.Count(activity.EventPush), dist.Total())
		insights = append(insights, fmt.Sprintf(
			"Pushes code frequently (%.1f%% of activity)", pct))
	}
	if dist.Has(activity.EventPullRequest) {
		insights = append(insights, "Actively participates in code reviews via pull requests")
	}
	if dist.Has(activity.EventIssues) {
		insights = append(insights, "Engages in issue tracking and project management")
	}
	if p.ActivityPatterns.ActivityDiversity > 5 {
		insights = append(insights, "Shows diverse contribution patterns across multiple activity types")
	}

	return insights
}

func languageInsights(p *analysis.PatternReport) []string {
	insights := []string{}
	langs := p.LanguagePatterns

	if langs.PrimaryLanguage != nil {
		insights = append(insights, fmt.Sprintf("Primary expertise in %s", *langs.PrimaryLanguage))
	}

	if langs.LanguageDiversity > 5 {
		insights = append(insights, fmt.Sprintf(
			"Polyglot developer with experience in %d languages", langs.LanguageDiversity))
	} else if langs.LanguageDiversity > 3 {
		insights = append(insights, fmt.Sprintf(
			"Works with multiple languages (%d total)", langs.LanguageDiversity))
	}

	var adopted []string
	for _, lang := range langs.LanguageDistribution.Keys() {
		if trendingLanguages[lang] {
			adopted = append(adopted, lang)
		}
	}
	if len(adopted) > 0 {
		insights = append(insights, fmt.Sprintf(
			"Adopts modern languages: %s", strings.Join(adopted, ", ")))
	}

	return insights
}

func productivityInsights(p *analysis.PatternReport) []string {
	insights := []string{}
	metrics := p.ProductivityMetrics

	// Mutually exclusive escalating remarks; first match wins.
	switch {
	case metrics.DailyAverageEvents > 10:
		insights = append(insights, "Extremely active developer with high daily engagement")
	case metrics.DailyAverageEvents > 5:
		insights = append(insights, "Maintains consistent daily activity")
	case metrics.DailyAverageEvents > 2:
		insights = append(insights, "Regular contributor with steady activity")
	}

	if metrics.CommitsPerDay > 5 {
		insights = append(insights, fmt.Sprintf(
			"High commit frequency (%.1f commits/day)", metrics.CommitsPerDay))
	}
	if stars := p.RepositoryPatterns.TotalStars; stars > 100 {
		insights = append(insights, fmt.Sprintf(
			"Creates popular projects (%d total stars)", stars))
	}

	return insights
}

func recommendations(p *analysis.PatternReport) []string {
	recs := []string{}

	// Threshold recommendations apply only where there is data to judge:
	// an account with no events or repositories gets the unconditional
	// recommendation alone.
	hasEvents := !p.ProductivityMetrics.IsEmpty()
	hasRepos := !p.RepositoryPatterns.IsEmpty()

	if hasEvents && p.ProductivityMetrics.ActiveDays < 30 {
		recs = append(recs, "Consider maintaining more consistent activity for better project momentum")
	}
	if hasRepos && p.LanguagePatterns.LanguageDiversity < 3 {
		recs = append(recs, "Explore additional programming languages to broaden your skill set")
	}
	if hasEvents && p.CollaborationPatterns.CollaborationFrequency < 10 {
		recs = append(recs, "Increase collaboration through code reviews and pull requests")
	}
	recs = append(recs, "Continue documenting your projects to increase visibility and adoption")

	return recs
}

// daySegment names the part of day an hour falls in: morning [5,12),
// afternoon [12,17), evening [17,21), night otherwise.
func daySegment(hour int) string {
	switch {
	case hour >= 5 && hour < 12:
		return "morning"
	case hour >= 12 && hour < 17:
		return "afternoon"
	case hour >= 17 && hour < 21:
		return "evening"
	default:
		return "night"
	}
}

// percentage returns part/whole as a percent, zero-guarded.
func percentage(part, whole int) float64 {
	if whole == 0 {
		return 0
	}
	return float64(part) / float64(whole) * 100
}
