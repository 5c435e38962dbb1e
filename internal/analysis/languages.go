package analysis

import "github.com/devpulse/devpulse/internal/activity"

// LanguageReport describes the user's programming language footprint.
type LanguageReport struct {
	LanguageDistribution *Counter[string] `json:"language_distribution"`
	PrimaryLanguage      *string          `json:"primary_language"`
	LanguageDiversity    int              `json:"language_diversity"`
}

// AggregateLanguages counts the language field across repositories.
// Repositories without a language are excluded; they never count toward
// diversity. PrimaryLanguage is the modal language, nil if no repository
// carries one.
func AggregateLanguages(repos []activity.Repository) LanguageReport {
	languages := NewCounter[string]()
	for i := range repos {
		if repos[i].Language != "" {
			languages.Add(repos[i].Language)
		}
	}

	report := LanguageReport{
		LanguageDistribution: languages,
		LanguageDiversity:    languages.Len(),
	}
	if lang, _, ok := languages.Max(); ok {
		report.PrimaryLanguage = &lang
	}
	return report
}
