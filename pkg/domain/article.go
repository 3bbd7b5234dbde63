package domain

import "time"

// Sentiment is the LLM-assigned tone of an article
type Sentiment string

const (
	SentimentPositive Sentiment = "positive"
	SentimentNegative Sentiment = "negative"
	SentimentNeutral  Sentiment = "neutral"
)

// ValidSentiment reports whether s is one of the known sentiment values
func ValidSentiment(s Sentiment) bool {
	return s == SentimentPositive || s == SentimentNegative || s == SentimentNeutral
}

// Article represents a single ingested feed item
type Article struct {
	Link         string     `json:"link"`
	GUID         string     `json:"guid,omitempty"`
	Title        string     `json:"title"`
	PubDate      string     `json:"pub_date,omitempty"` // raw date string as it appeared in the feed
	Published    *time.Time `json:"published,omitempty"`
	Content      string     `json:"content,omitempty"`
	Snippet      string     `json:"snippet,omitempty"`
	Author       string     `json:"author,omitempty"`
	EnclosureURL string     `json:"enclosure_url,omitempty"`

	Sentiment *Sentiment `json:"sentiment,omitempty"`
	Topic     string     `json:"topic,omitempty"`

	// Extra holds feed-specific fields that don't map to the fixed set above
	Extra map[string]string `json:"extra,omitempty"`
}

// Key returns the article identity key, GUID when present and Link otherwise.
// Two articles are the same entity iff their keys match.
func (a *Article) Key() string {
	if a.GUID != "" {
		return a.GUID
	}
	return a.Link
}

// Classified reports whether the article already carries a classification.
// Once set, a classification is never re-requested within a session.
func (a *Article) Classified() bool {
	return a.Sentiment != nil && a.Topic != ""
}

// Body returns the text used for classification, snippet preferred over full content
func (a *Article) Body() string {
	if a.Snippet != "" {
		return a.Snippet
	}
	return a.Content
}

// Classification is the per-article result produced by the LLM gateway
type Classification struct {
	Sentiment Sentiment `json:"sentiment"`
	Topic     string    `json:"topic"`
}

// FallbackClassification is substituted when a classification call fails,
// so a single bad article never blocks its batch
func FallbackClassification() Classification {
	return Classification{Sentiment: SentimentNeutral, Topic: "General"}
}

// Apply returns a copy of the article with the classification merged in
func (c Classification) Apply(a Article) Article {
	s := c.Sentiment
	a.Sentiment = &s
	a.Topic = c.Topic
	return a
}
