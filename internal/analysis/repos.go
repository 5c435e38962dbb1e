package analysis

import (
	"encoding/json"
	"sort"

	"github.com/devpulse/devpulse/internal/activity"
)

// StarredRepo names a repository with its star count.
type StarredRepo struct {
	Name  string `json:"name"`
	Stars int    `json:"stars"`
}

// UpdatedRepo names a repository with its last-updated timestamp.
type UpdatedRepo struct {
	Name    string `json:"name"`
	Updated string `json:"updated"`
}

// RepositoryReport summarizes the user's repositories: totals, average
// stars, and two top-5 rankings. An empty repository list yields an empty
// report that serializes as {}.
type RepositoryReport struct {
	TotalRepositories int           `json:"total_repositories"`
	TotalStars        int           `json:"total_stars"`
	TotalForks        int           `json:"total_forks"`
	AverageStars      float64       `json:"average_stars"`
	MostStarred       []StarredRepo `json:"most_starred_repos"`
	RecentlyUpdated   []UpdatedRepo `json:"recently_updated"`

	empty bool
}

// IsEmpty reports whether the source repository list was empty.
func (r RepositoryReport) IsEmpty() bool {
	return r.empty
}

// MarshalJSON renders an empty report as {}, not as per-field zeros.
func (r RepositoryReport) MarshalJSON() ([]byte, error) {
	if r.empty {
		return []byte("{}"), nil
	}
	type plain RepositoryReport
	return json.Marshal(plain(r))
}

const topRepoCount = 5

// AggregateRepositories computes repository statistics and rankings.
// Both rankings are stable: repositories with equal stars (or equal
// updated_at) keep their original sequence order. RecentlyUpdated orders by
// lexicographic comparison of the ISO-8601 updated_at string, which equals
// chronological order for that format.
func AggregateRepositories(repos []activity.Repository) RepositoryReport {
	if len(repos) == 0 {
		return RepositoryReport{empty: true}
	}

	report := RepositoryReport{
		TotalRepositories: len(repos),
		MostStarred:       make([]StarredRepo, 0, topRepoCount),
		RecentlyUpdated:   make([]UpdatedRepo, 0, topRepoCount),
	}
	for i := range repos {
		report.TotalStars += repos[i].StargazersCount
		report.TotalForks += repos[i].ForksCount
	}
	report.AverageStars = float64(report.TotalStars) / float64(len(repos))

	byStars := make([]*activity.Repository, len(repos))
	byUpdated := make([]*activity.Repository, len(repos))
	for i := range repos {
		byStars[i] = &repos[i]
		byUpdated[i] = &repos[i]
	}

	sort.SliceStable(byStars, func(i, j int) bool {
		return byStars[i].StargazersCount > byStars[j].StargazersCount
	})
	sort.SliceStable(byUpdated, func(i, j int) bool {
		return byUpdated[i].UpdatedAt > byUpdated[j].UpdatedAt
	})

	for i := 0; i < len(byStars) && i < topRepoCount; i++ {
		report.MostStarred = append(report.MostStarred, StarredRepo{
			Name:  byStars[i].Name,
			Stars: byStars[i].StargazersCount,
		})
	}
	for i := 0; i < len(byUpdated) && i < topRepoCount; i++ {
		report.RecentlyUpdated = append(report.RecentlyUpdated, UpdatedRepo{
			Name:    byUpdated[i].Name,
			Updated: byUpdated[i].UpdatedAt,
		})
	}

	return report
}
