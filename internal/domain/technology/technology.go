package technology

import "context"

const (
	LevelExpert       = "Expert"
	LevelAdvanced     = "Advanced"
	LevelIntermediate = "Intermediate"
	LevelBeginner     = "Beginner"
)

// AllCategories is the pseudo-category that disables filtering.
const AllCategories = "All"

// Technology is one skill entry. Level is open-ended; the Level* constants
// are the values the site knows how to style.
type Technology struct {
	Name     string `json:"name"`
	Category string `json:"category"`
	Level    string `json:"level"`
}

func (t Technology) Proficient() bool {
	return t.Level == LevelExpert || t.Level == LevelAdvanced
}

// Categories returns the distinct categories in first-seen order.
func Categories(techs []Technology) []string {
	seen := make(map[string]struct{}, len(techs))
	out := make([]string, 0, len(techs))
	for _, t := range techs {
		if _, ok := seen[t.Category]; ok {
			continue
		}
		seen[t.Category] = struct{}{}
		out = append(out, t.Category)
	}
	return out
}

// Filter keeps the technologies whose category equals category, preserving
// order. AllCategories and the empty string return a copy of the input.
func Filter(techs []Technology, category string) []Technology {
	if category == "" || category == AllCategories {
		return append([]Technology(nil), techs...)
	}
	out := make([]Technology, 0, len(techs))
	for _, t := range techs {
		if t.Category == category {
			out = append(out, t)
		}
	}
	return out
}

type Stats struct {
	Total      int
	Proficient int
	Categories int
}

func Summarize(techs []Technology) Stats {
	s := Stats{Total: len(techs), Categories: len(Categories(techs))}
	for _, t := range techs {
		if t.Proficient() {
			s.Proficient++
		}
	}
	return s
}

type Repository interface {
	List(ctx context.Context) ([]Technology, error)
}
