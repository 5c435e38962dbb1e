package analysis

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/devpulse/devpulse/internal/activity"
)

func pushWithCommits(ts string, commits int) activity.Event {
	payload := `{"commits":[`
	for i := 0; i < commits; i++ {
		if i > 0 {
			payload += ","
		}
		payload += `{"sha":"abc"}`
	}
	payload += `]}`
	return activity.Event{
		Type:      activity.EventPush,
		CreatedAt: ts,
		Payload:   json.RawMessage(payload),
	}
}

func TestCalculateProductivity_Rates(t *testing.T) {
	events := []activity.Event{
		pushWithCommits("2025-01-06T10:00:00Z", 2),
		pushWithCommits("2025-01-07T11:00:00Z", 3),
		{Type: activity.EventWatch, CreatedAt: "2025-01-07T12:00:00Z"},
	}
	contributions := activity.BuildContributions(events)
	require.Equal(t, 2, len(contributions.ActiveDays))

	report := CalculateProductivity(events, contributions)
	assert.Equal(t, 3, report.TotalEvents)
	assert.Equal(t, 2, report.ActiveDays)
	assert.Equal(t, 1.5, report.DailyAverageEvents)
	assert.Equal(t, 5, report.TotalCommits)
	assert.Equal(t, 2.5, report.CommitsPerDay)
}

func TestCalculateProductivity_RoundsToTwoDecimals(t *testing.T) {
	events := []activity.Event{
		{Type: activity.EventWatch, CreatedAt: "2025-01-06T10:00:00Z"},
		{Type: activity.EventWatch, CreatedAt: "2025-01-07T10:00:00Z"},
		{Type: activity.EventWatch, CreatedAt: "2025-01-08T10:00:00Z"},
		{Type: activity.EventWatch, CreatedAt: "2025-01-08T11:00:00Z"},
	}
	contributions := activity.BuildContributions(events)

	report := CalculateProductivity(events, contributions)
	// 4 events over 3 active days.
	assert.Equal(t, 1.33, report.DailyAverageEvents)
}

func TestCalculateProductivity_ZeroActiveDaysGuard(t *testing.T) {
	// Events with unparseable dates contribute no active day; the guard
	// must kick in rather than divide by zero.
	events := []activity.Event{{Type: activity.EventWatch, CreatedAt: "bogus"}}
	report := CalculateProductivity(events, activity.Contributions{ActiveDays: []string{}})

	assert.Equal(t, 0.0, report.DailyAverageEvents)
	assert.Equal(t, 0.0, report.CommitsPerDay)
}

func TestCalculateProductivity_NonPushCommitsIgnored(t *testing.T) {
	ev := pushWithCommits("2025-01-06T10:00:00Z", 4)
	ev.Type = activity.EventPullRequest
	report := CalculateProductivity([]activity.Event{ev}, activity.Contributions{ActiveDays: []string{"2025-01-06"}})

	assert.Equal(t, 0, report.TotalCommits)
}

func TestCalculateProductivity_EmptyMarshalsAsEmptyObject(t *testing.T) {
	report := CalculateProductivity(nil, activity.Contributions{})
	assert.True(t, report.IsEmpty())

	data, err := json.Marshal(report)
	require.NoError(t, err)
	assert.Equal(t, `{}`, string(data))
}
