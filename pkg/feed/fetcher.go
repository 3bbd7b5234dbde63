// Package feed retrieves and parses RSS/Atom feeds into domain articles.
package feed

import (
	"context"
	"time"

	"github.com/mmcdole/gofeed"

	"github.com/umputun/newsweaver/pkg/domain"
)

// HTTPFetcher fetches RSS/Atom feeds via HTTP
type HTTPFetcher struct {
	parser  *gofeed.Parser
	timeout time.Duration
}

// NewHTTPFetcher creates a new feed fetcher
func NewHTTPFetcher(timeout time.Duration, userAgent string) *HTTPFetcher {
	parser := gofeed.NewParser()
	if userAgent != "" {
		parser.UserAgent = userAgent
	}
	return &HTTPFetcher{parser: parser, timeout: timeout}
}

// Fetch retrieves and parses a feed, returning articles in document order.
// Any retrieval or parse failure is reported as a single *FetchError.
func (f *HTTPFetcher) Fetch(ctx context.Context, feedURL string) ([]domain.Article, error) {
	ctx, cancel := context.WithTimeout(ctx, f.timeout)
	defer cancel()

	parsed, err := f.parser.ParseURLWithContext(feedURL, ctx)
	if err != nil {
		return nil, &FetchError{URL: feedURL, Err: err}
	}

	articles := make([]domain.Article, 0, len(parsed.Items))
	for _, item := range parsed.Items {
		articles = append(articles, toArticle(item))
	}
	return articles, nil
}

// Validate checks that the URL points to a parsable feed with a title and
// returns the feed name for registration
func (f *HTTPFetcher) Validate(ctx context.Context, feedURL string) (name string, err error) {
	ctx, cancel := context.WithTimeout(ctx, f.timeout)
	defer cancel()

	parsed, err := f.parser.ParseURLWithContext(feedURL, ctx)
	if err != nil {
		return "", &InvalidFeedError{URL: feedURL, Reason: err.Error()}
	}
	if parsed.Title == "" {
		return "", &InvalidFeedError{URL: feedURL, Reason: "feed has no title"}
	}
	return parsed.Title, nil
}

// toArticle maps a gofeed item to a domain article
func toArticle(item *gofeed.Item) domain.Article {
	article := domain.Article{
		Link:    item.Link,
		GUID:    item.GUID,
		Title:   item.Title,
		PubDate: item.Published,
		Content: item.Content,
		Snippet: item.Description,
	}

	// guid falls back to link so every article has an identity key
	if article.GUID == "" {
		article.GUID = item.Link
	}

	if item.PublishedParsed != nil {
		article.Published = item.PublishedParsed
	} else if item.UpdatedParsed != nil {
		article.Published = item.UpdatedParsed
	}

	if item.Author != nil {
		article.Author = item.Author.Name
	}

	article.EnclosureURL = enclosureURL(item)

	return article
}

// enclosureURL extracts an image/media reference, preferring the enclosure
// element over the media:content extension
func enclosureURL(item *gofeed.Item) string {
	for _, enc := range item.Enclosures {
		if enc.URL != "" {
			return enc.URL
		}
	}
	if media, ok := item.Extensions["media"]; ok {
		for _, content := range media["content"] {
			if url := content.Attrs["url"]; url != "" {
				return url
			}
		}
	}
	if item.Image != nil {
		return item.Image.URL
	}
	return ""
}
