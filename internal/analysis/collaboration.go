package analysis

import "github.com/devpulse/devpulse/internal/activity"

// collaborationEventTypes is the fixed set of event types that represent
// working with other people rather than solo pushes.
var collaborationEventTypes = map[string]bool{
	activity.EventPullRequest:       true,
	activity.EventIssueComment:      true,
	activity.EventPullRequestReview: true,
}

// CollaborationReport cross-references collaborative event types with the
// repositories they happened in.
type CollaborationReport struct {
	CollaborativeRepos     *Counter[string] `json:"collaborative_repos"`
	CollaborationFrequency int              `json:"collaboration_frequency"`
	MostCollaboratedRepo   *string          `json:"most_collaborated_repo"`
}

// AggregateCollaboration counts collaborative events per repository.
// Events outside the recognized set, or lacking a repository reference,
// are skipped.
func AggregateCollaboration(events []activity.Event) CollaborationReport {
	repos := NewCounter[string]()
	for i := range events {
		ev := &events[i]
		if !collaborationEventTypes[ev.Type] {
			continue
		}
		if ev.Repo == nil || ev.Repo.Name == "" {
			continue
		}
		repos.Add(ev.Repo.Name)
	}

	report := CollaborationReport{
		CollaborativeRepos:     repos,
		CollaborationFrequency: repos.Total(),
	}
	if name, _, ok := repos.Max(); ok {
		report.MostCollaboratedRepo = &name
	}
	return report
}
