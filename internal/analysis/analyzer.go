// Package analysis implements the pattern aggregation pipeline: a pure,
// synchronous, single-pass transformation from a user's activity dataset to
// a statistical pattern report. No I/O, no shared state; every invocation
// allocates fresh output.
package analysis

import "github.com/devpulse/devpulse/internal/activity"

// Config bounds the pipeline. It is passed in at construction so the core
// carries no process-wide state and tests can vary the limits freely.
type Config struct {
	// MaxEvents caps how many events one analysis will consume; the
	// remainder of the stream is ignored. Keeps the pipeline O(n) with
	// bounded memory.
	MaxEvents int

	// LookbackDays is the analysis window the fetching collaborator
	// applies when assembling the dataset.
	LookbackDays int
}

// DefaultConfig mirrors the service defaults.
func DefaultConfig() Config {
	return Config{MaxEvents: 300, LookbackDays: 90}
}

// PatternReport aggregates the six sub-reports. Every sub-report is always
// a well-formed structure; empty source collections produce the documented
// empty forms, never nil.
type PatternReport struct {
	TimePatterns          TimeReport          `json:"time_patterns"`
	ActivityPatterns      ActivityReport      `json:"activity_patterns"`
	RepositoryPatterns    RepositoryReport    `json:"repository_patterns"`
	LanguagePatterns      LanguageReport      `json:"language_patterns"`
	CollaborationPatterns CollaborationReport `json:"collaboration_patterns"`
	ProductivityMetrics   ProductivityReport  `json:"productivity_metrics"`
}

// Analyzer runs the pattern aggregation stage.
type Analyzer struct {
	cfg Config
}

// New creates an analyzer. Zero config fields fall back to defaults.
func New(cfg Config) *Analyzer {
	def := DefaultConfig()
	if cfg.MaxEvents <= 0 {
		cfg.MaxEvents = def.MaxEvents
	}
	if cfg.LookbackDays <= 0 {
		cfg.LookbackDays = def.LookbackDays
	}
	return &Analyzer{cfg: cfg}
}

// Config returns the limits the analyzer was built with.
func (a *Analyzer) Config() Config {
	return a.cfg
}

// Analyze runs all six aggregators over the dataset. A malformed event
// timestamp aborts the whole analysis with a DataFormatError; no partial
// report is returned.
func (a *Analyzer) Analyze(dataset *activity.Dataset) (*PatternReport, error) {
	events := dataset.Events
	if len(events) > a.cfg.MaxEvents {
		events = events[:a.cfg.MaxEvents]
	}

	timeReport, err := BucketTime(events)
	if err != nil {
		return nil, err
	}

	return &PatternReport{
		TimePatterns:          timeReport,
		ActivityPatterns:      CountActivityTypes(events),
		RepositoryPatterns:    AggregateRepositories(dataset.Repositories),
		LanguagePatterns:      AggregateLanguages(dataset.Repositories),
		CollaborationPatterns: AggregateCollaboration(events),
		ProductivityMetrics:   CalculateProductivity(events, dataset.Contributions),
	}, nil
}
