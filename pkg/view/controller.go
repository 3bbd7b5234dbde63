// Package view derives the displayed article list from the working set:
// search, sentiment/topic filters, and sort order. Pure derivation, no state.
package view

import (
	"sort"
	"strings"
	"time"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/umputun/newsweaver/pkg/domain"
)

// sort orders
const (
	SortNewest = "newest"
	SortOldest = "oldest"
	SortTitle  = "a-z"
	SortTitleR = "z-a"
)

// FilterAll matches every sentiment or topic
const FilterAll = "all"

// Query holds the user-selected view parameters
type Query struct {
	Search    string // case-insensitive substring over title and snippet
	Sentiment string // "all" or one of the sentiment values
	Topic     string // "all" or an exact topic
	Sort      string // newest, oldest, a-z, z-a
}

// Apply filters and then sorts the articles, returning a new slice.
// The input is never modified.
func Apply(articles []domain.Article, q Query) []domain.Article {
	result := make([]domain.Article, 0, len(articles))
	for _, a := range articles {
		if matches(&a, q) {
			result = append(result, a)
		}
	}
	sortArticles(result, q.Sort)
	return result
}

// Topics returns the sorted distinct non-empty topics present in the set
func Topics(articles []domain.Article) []string {
	seen := map[string]bool{}
	topics := []string{}
	for _, a := range articles {
		if a.Topic != "" && !seen[a.Topic] {
			seen[a.Topic] = true
			topics = append(topics, a.Topic)
		}
	}
	sort.Strings(topics)
	return topics
}

func matches(a *domain.Article, q Query) bool {
	if q.Search != "" {
		needle := strings.ToLower(q.Search)
		if !strings.Contains(strings.ToLower(a.Title), needle) &&
			!strings.Contains(strings.ToLower(a.Snippet), needle) {
			return false
		}
	}

	if q.Sentiment != "" && q.Sentiment != FilterAll {
		if a.Sentiment == nil || string(*a.Sentiment) != q.Sentiment {
			return false
		}
	}

	if q.Topic != "" && q.Topic != FilterAll {
		if a.Topic != q.Topic {
			return false
		}
	}

	return true
}

func sortArticles(articles []domain.Article, order string) {
	switch order {
	case SortOldest:
		sort.Slice(articles, func(i, j int) bool {
			return publishedOrZero(&articles[i]).Before(publishedOrZero(&articles[j]))
		})
	case SortTitle:
		coll := collate.New(language.Und, collate.IgnoreCase)
		sort.Slice(articles, func(i, j int) bool {
			return coll.CompareString(articles[i].Title, articles[j].Title) < 0
		})
	case SortTitleR:
		coll := collate.New(language.Und, collate.IgnoreCase)
		sort.Slice(articles, func(i, j int) bool {
			return coll.CompareString(articles[i].Title, articles[j].Title) > 0
		})
	default: // newest, missing-date articles sort last
		sort.Slice(articles, func(i, j int) bool {
			return publishedOrZero(&articles[i]).After(publishedOrZero(&articles[j]))
		})
	}
}

// publishedOrZero treats a missing timestamp as the epoch minimum
func publishedOrZero(a *domain.Article) time.Time {
	if a.Published == nil {
		return time.Time{}
	}
	return *a.Published
}
