package insights

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/devpulse/devpulse/internal/activity"
)

func TestGenerate_EmptyDataset(t *testing.T) {
	dataset := &activity.Dataset{Contributions: activity.BuildContributions(nil)}
	patterns := patternsFor(t, dataset)

	report := NewComposer().Generate(patterns, nil)

	assert.Equal(t,
		"Developer has been active for 0 days with 0 total events. Primary language is Unknown with 0 repositories.",
		report.Summary)
	assert.Empty(t, report.TimeInsights)
	assert.Empty(t, report.ActivityInsights)
	assert.Empty(t, report.LanguageInsights)
	assert.Empty(t, report.ProductivityInsights)
	assert.Equal(t,
		[]string{"Continue documenting your projects to increase visibility and adoption"},
		report.Recommendations)
	assert.Nil(t, report.Predictions)
	assert.Nil(t, report.DeveloperProfile)
}

func TestGenerate_DatasetEnablesPredictionAndProfile(t *testing.T) {
	events := []activity.Event{
		{Type: activity.EventPush, CreatedAt: "2025-01-06T09:00:00Z"},
	}
	dataset := &activity.Dataset{
		Events:        events,
		Contributions: activity.BuildContributions(events),
	}
	patterns := patternsFor(t, dataset)

	report := NewComposer().Generate(patterns, dataset)
	require.NotNil(t, report.Predictions)
	require.NotNil(t, report.DeveloperProfile)
	assert.Equal(t, ExpertiseNovice, report.DeveloperProfile.ExpertiseLevel)
}

func TestTimeInsights_DaySegments(t *testing.T) {
	tests := []struct {
		hour    int
		segment string
	}{
		{5, "morning"},
		{11, "morning"},
		{12, "afternoon"},
		{16, "afternoon"},
		{17, "evening"},
		{20, "evening"},
		{21, "night"},
		{4, "night"},
		{0, "night"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.segment, daySegment(tt.hour), "hour %d", tt.hour)
	}
}

func TestTimeInsights_Sentences(t *testing.T) {
	events := []activity.Event{
		{Type: activity.EventPush, CreatedAt: "2025-01-07T14:30:00Z"},
	}
	patterns := patternsFor(t, &activity.Dataset{
		Events:        events,
		Contributions: activity.BuildContributions(events),
	})

	report := NewComposer().Generate(patterns, nil)
	assert.Equal(t, []string{
		"Most active during afternoon hours (around 14:00)",
		"Most productive on Tuesdays",
	}, report.TimeInsights)
}

func TestActivityInsights_Rules(t *testing.T) {
	events := []activity.Event{
		{Type: activity.EventPush, CreatedAt: "2025-01-06T09:00:00Z"},
		{Type: activity.EventPush, CreatedAt: "2025-01-06T10:00:00Z"},
		{Type: activity.EventPush, CreatedAt: "2025-01-06T11:00:00Z"},
		{Type: activity.EventPullRequest, CreatedAt: "2025-01-06T12:00:00Z"},
		{Type: activity.EventIssues, CreatedAt: "2025-01-06T13:00:00Z"},
	}
	patterns := patternsFor(t, &activity.Dataset{
		Events:        events,
		Contributions: activity.BuildContributions(events),
	})

	report := NewComposer().Generate(patterns, nil)
	assert.Equal(t, []string{
		"Pushes code frequently (60.0% of activity)",
		"Actively participates in code reviews via pull requests",
		"Engages in issue tracking and project management",
	}, report.ActivityInsights)
}

func TestLanguageInsights_TrendingAndDiversity(t *testing.T) {
	patterns := patternsFor(t, &activity.Dataset{
		Repositories: []activity.Repository{
			{Name: "a", Language: "Go"},
			{Name: "b", Language: "Go"},
			{Name: "c", Language: "Python"},
			{Name: "d", Language: "Rust"},
			{Name: "e", Language: "C"},
		},
		Contributions: activity.BuildContributions(nil),
	})

	report := NewComposer().Generate(patterns, nil)
	assert.Equal(t, []string{
		"Primary expertise in Go",
		"Works with multiple languages (4 total)",
		"Adopts modern languages: Go, Rust",
	}, report.LanguageInsights)
}

func TestProductivityInsights_ThresholdsAreMutuallyExclusive(t *testing.T) {
	// 24 events over 2 active days: daily average 12 hits only the top remark.
	events := make([]activity.Event, 0, 24)
	for i := 0; i < 12; i++ {
		events = append(events,
			activity.Event{Type: activity.EventWatch, CreatedAt: "2025-01-06T10:00:00Z"},
			activity.Event{Type: activity.EventWatch, CreatedAt: "2025-01-07T10:00:00Z"},
		)
	}
	patterns := patternsFor(t, &activity.Dataset{
		Events:        events,
		Contributions: activity.BuildContributions(events),
	})

	report := NewComposer().Generate(patterns, nil)
	assert.Equal(t, []string{"Extremely active developer with high daily engagement"}, report.ProductivityInsights)
}

func TestProductivityInsights_StarsRemark(t *testing.T) {
	events := []activity.Event{{Type: activity.EventWatch, CreatedAt: "2025-01-06T10:00:00Z"}}
	patterns := patternsFor(t, &activity.Dataset{
		Events: events,
		Repositories: []activity.Repository{
			{Name: "popular", StargazersCount: 150},
		},
		Contributions: activity.BuildContributions(events),
	})

	report := NewComposer().Generate(patterns, nil)
	assert.Contains(t, report.ProductivityInsights, "Creates popular projects (150 total stars)")
}

func TestRecommendations_ThresholdRules(t *testing.T) {
	events := []activity.Event{
		{Type: activity.EventPush, CreatedAt: "2025-01-06T09:00:00Z"},
	}
	patterns := patternsFor(t, &activity.Dataset{
		Events: events,
		Repositories: []activity.Repository{
			{Name: "a", Language: "Go"},
		},
		Contributions: activity.BuildContributions(events),
	})

	report := NewComposer().Generate(patterns, nil)
	assert.Equal(t, []string{
		"Consider maintaining more consistent activity for better project momentum",
		"Explore additional programming languages to broaden your skill set",
		"Increase collaboration through code reviews and pull requests",
		"Continue documenting your projects to increase visibility and adoption",
	}, report.Recommendations)
}
