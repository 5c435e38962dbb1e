package insights

import "github.com/devpulse/devpulse/internal/analysis"

// ExpertiseLevel is the four-level scale the expertise score maps to.
type ExpertiseLevel string

const (
	ExpertiseExpert       ExpertiseLevel = "expert"
	ExpertiseIntermediate ExpertiseLevel = "intermediate"
	ExpertiseBeginner     ExpertiseLevel = "beginner"
	ExpertiseNovice       ExpertiseLevel = "novice"
)

// CollaborationStyle classifies how much of the activity involves others.
type CollaborationStyle string

const (
	StyleHighlyCollaborative    CollaborationStyle = "highly_collaborative"
	StyleTeamPlayer             CollaborationStyle = "team_player"
	StyleOccasionalCollaborator CollaborationStyle = "occasional_collaborator"
	StyleSoloDeveloper          CollaborationStyle = "solo_developer"
)

// ProjectFocus classifies the repository portfolio.
type ProjectFocus string

const (
	FocusQuality  ProjectFocus = "quality_focused"
	FocusQuantity ProjectFocus = "quantity_focused"
	FocusBalanced ProjectFocus = "balanced"
)

// Consistency classifies how steadily the user shows up.
type Consistency string

const (
	ConsistencyVery     Consistency = "very_consistent"
	ConsistencyRegular  Consistency = "consistent"
	ConsistencyModerate Consistency = "moderately_consistent"
	ConsistencySporadic Consistency = "sporadic"
)

// Profile is the derived developer profile.
type Profile struct {
	ExpertiseLevel      ExpertiseLevel     `json:"expertise_level"`
	PrimaryLanguage     *string            `json:"primary_language"`
	Specialization      string             `json:"specialization"`
	CollaborationStyle  CollaborationStyle `json:"collaboration_style"`
	ProjectFocus        ProjectFocus       `json:"project_focus"`
	ActivityConsistency Consistency        `json:"activity_consistency"`
}

// specializations maps a primary language to an area of specialization.
var specializations = map[string]string{
	"Python":     "Data Science/Backend Development",
	"JavaScript": "Web Development",
	"TypeScript": "Modern Web Development",
	"Java":       "Enterprise/Android Development",
	"Go":         "Systems/Backend Development",
	"Rust":       "Systems Programming",
	"C++":        "Systems/Game Development",
	"Ruby":       "Web Development",
	"PHP":        "Web Development",
}

const defaultSpecialization = "General Development"

// expertiseTable maps inclusive score lower bounds to levels, highest
// first; the fallback below the table is novice. Score range is [0,8].
var expertiseTable = []struct {
	atLeast float64
	level   ExpertiseLevel
}{
	{6, ExpertiseExpert},
	{4, ExpertiseIntermediate},
	{2, ExpertiseBeginner},
}

// collaborationTable maps exclusive frequency lower bounds to styles.
var collaborationTable = []struct {
	above int
	style CollaborationStyle
}{
	{50, StyleHighlyCollaborative},
	{20, StyleTeamPlayer},
	{5, StyleOccasionalCollaborator},
	{-1, StyleSoloDeveloper},
}

// consistencyTable is an ordered list of (predicate, result) pairs over
// active days and daily average; the first matching row wins.
var consistencyTable = []struct {
	match  func(activeDays int, dailyAverage float64) bool
	result Consistency
}{
	{func(d int, avg float64) bool { return d > 60 && avg > 3 }, ConsistencyVery},
	{func(d int, avg float64) bool { return d > 30 && avg > 2 }, ConsistencyRegular},
	{func(d int, avg float64) bool { return d > 15 }, ConsistencyModerate},
	{func(int, float64) bool { return true }, ConsistencySporadic},
}

// Profiler derives a developer profile from a pattern report. Like the
// predictor it is a pure rule table.
type Profiler struct{}

// CreateProfile scores and classifies the developer.
func (Profiler) CreateProfile(patterns *analysis.PatternReport) *Profile {
	repos := patterns.RepositoryPatterns
	langs := patterns.LanguagePatterns
	collab := patterns.CollaborationPatterns
	metrics := patterns.ProductivityMetrics

	return &Profile{
		ExpertiseLevel:      classifyExpertise(expertiseScore(repos.TotalRepositories, repos.TotalStars, langs.LanguageDiversity)),
		PrimaryLanguage:     langs.PrimaryLanguage,
		Specialization:      specializationFor(langs.PrimaryLanguage),
		CollaborationStyle:  classifyCollaboration(collab.CollaborationFrequency),
		ProjectFocus:        classifyFocus(repos.TotalRepositories, repos.AverageStars),
		ActivityConsistency: classifyConsistency(metrics.ActiveDays, metrics.DailyAverageEvents),
	}
}

// expertiseScore is a capped weighted sum: up to 3 points for repository
// count, 3 for total stars, 2 for language diversity. Range [0,8].
func expertiseScore(repoCount, totalStars, languageDiversity int) float64 {
	score := min(float64(repoCount)/10, 3)
	score += min(float64(totalStars)/100, 3)
	score += min(float64(languageDiversity)/3, 2)
	return score
}

func classifyExpertise(score float64) ExpertiseLevel {
	for _, rule := range expertiseTable {
		if score >= rule.atLeast {
			return rule.level
		}
	}
	return ExpertiseNovice
}

func specializationFor(primaryLanguage *string) string {
	if primaryLanguage == nil {
		return defaultSpecialization
	}
	if s, ok := specializations[*primaryLanguage]; ok {
		return s
	}
	return defaultSpecialization
}

func classifyCollaboration(frequency int) CollaborationStyle {
	for _, rule := range collaborationTable {
		if frequency > rule.above {
			return rule.style
		}
	}
	return StyleSoloDeveloper
}

func classifyFocus(totalRepos int, averageStars float64) ProjectFocus {
	switch {
	case averageStars > 50:
		return FocusQuality
	case totalRepos > 50:
		return FocusQuantity
	default:
		return FocusBalanced
	}
}

func classifyConsistency(activeDays int, dailyAverage float64) Consistency {
	for _, rule := range consistencyTable {
		if rule.match(activeDays, dailyAverage) {
			return rule.result
		}
	}
	return ConsistencySporadic
}
