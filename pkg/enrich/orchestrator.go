// Package enrich runs the article enrichment pipeline: it decides which
// articles still need classification, fans the classification calls out
// concurrently, merges the results back in input order, and tracks in-flight
// work so the UI can render per-article progress.
package enrich

import (
	"context"
	"sync"

	"github.com/go-pkgz/lgr"
	"golang.org/x/sync/errgroup"

	"github.com/umputun/newsweaver/pkg/domain"
	"github.com/umputun/newsweaver/pkg/sanitize"
)

// Classifier produces a sentiment/topic classification for a single article
type Classifier interface {
	Classify(ctx context.Context, title, content string) (domain.Classification, error)
}

// Orchestrator owns the working article set for the active view and the set
// of identity keys currently awaiting classification. Batches are tagged
// with a generation token; when the user switches views mid-flight, the
// stale batch settles but its results never reach the shared state.
type Orchestrator struct {
	classifier    Classifier
	maxConcurrent int

	mu          sync.Mutex
	generation  uint64
	articles    []domain.Article
	classifying map[string]struct{}
}

// NewOrchestrator creates an orchestrator. maxConcurrent limits the number
// of classification calls in flight, 0 means unbounded.
func NewOrchestrator(classifier Classifier, maxConcurrent int) *Orchestrator {
	return &Orchestrator{
		classifier:    classifier,
		maxConcurrent: maxConcurrent,
		classifying:   map[string]struct{}{},
	}
}

// EnrichBatch classifies every unclassified article in the batch and returns
// the merged result in input order. Already-classified articles pass through
// untouched and are never re-submitted. A failed call downgrades that one
// article to the fallback classification without affecting its siblings.
// The shared article set and the classifying set are updated only if no
// newer batch has been issued while this one was in flight.
func (o *Orchestrator) EnrichBatch(ctx context.Context, articles []domain.Article) []domain.Article {
	o.mu.Lock()
	o.generation++
	gen := o.generation

	// publish the full in-flight key set before any call starts, this is
	// what drives per-card loading indicators
	pending := make(map[string]struct{})
	for i := range articles {
		if !articles[i].Classified() {
			pending[articles[i].Key()] = struct{}{}
		}
	}
	o.classifying = pending
	o.mu.Unlock()

	result := make([]domain.Article, len(articles))
	copy(result, articles)

	g, gctx := errgroup.WithContext(ctx)
	if o.maxConcurrent > 0 {
		g.SetLimit(o.maxConcurrent)
	}

	for i := range result {
		if result[i].Classified() {
			continue
		}
		g.Go(func() error {
			article := result[i]
			classification, err := o.classifier.Classify(gctx, article.Title, sanitize.Text(article.Body()))
			if err != nil {
				lgr.Printf("[WARN] classification failed for %q, using fallback: %v", article.Key(), err)
				classification = domain.FallbackClassification()
			}
			result[i] = classification.Apply(article)
			return nil
		})
	}
	_ = g.Wait() // tasks convert failures to fallbacks, never return errors

	o.mu.Lock()
	defer o.mu.Unlock()

	if gen != o.generation {
		// a newer batch was issued while this one was in flight, its state
		// now owns the view. the caller still gets the merged result.
		lgr.Printf("[DEBUG] discarding superseded enrichment batch (generation %d, current %d)", gen, o.generation)
		return result
	}

	o.articles = result
	o.classifying = map[string]struct{}{}
	return result
}

// Articles returns a copy of the working article set from the latest
// completed batch
func (o *Orchestrator) Articles() []domain.Article {
	o.mu.Lock()
	defer o.mu.Unlock()

	articles := make([]domain.Article, len(o.articles))
	copy(articles, o.articles)
	return articles
}

// Classifying returns the identity keys currently awaiting classification
func (o *Orchestrator) Classifying() []string {
	o.mu.Lock()
	defer o.mu.Unlock()

	keys := make([]string, 0, len(o.classifying))
	for key := range o.classifying {
		keys = append(keys, key)
	}
	return keys
}
