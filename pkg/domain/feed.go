package domain

// UncategorizedFeeds is the bucket for feeds without an explicit category
const UncategorizedFeeds = "Uncategorized"

// Feed represents a user subscription to a news source
type Feed struct {
	ID       string `json:"id"` // opaque, stable, generated at creation
	Name     string `json:"name"`
	URL      string `json:"url"`
	Category string `json:"category,omitempty"`
}

// CategoryOrDefault returns the feed category, falling back to the shared
// uncategorized bucket for grouping
func (f *Feed) CategoryOrDefault() string {
	if f.Category == "" {
		return UncategorizedFeeds
	}
	return f.Category
}
