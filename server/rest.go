package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"

	"github.com/umputun/newsweaver/pkg/domain"
	"github.com/umputun/newsweaver/pkg/feed"
	"github.com/umputun/newsweaver/pkg/llm"
	"github.com/umputun/newsweaver/pkg/view"
)

// statusHandler returns service status and counters
func (s *Server) statusHandler(w http.ResponseWriter, r *http.Request) {
	feeds, err := s.feeds.Load(r.Context())
	if err != nil {
		log.Printf("[WARN] failed to load feeds for status: %v", err)
	}

	renderJSON(w, r, http.StatusOK, map[string]interface{}{
		"status":      "ok",
		"version":     s.version,
		"feeds":       len(feeds),
		"classifying": len(s.enricher.Classifying()),
	})
}

// listFeedsHandler returns all subscribed feeds. The store is treated as a
// non-critical cache, a load failure degrades to an empty list.
func (s *Server) listFeedsHandler(w http.ResponseWriter, r *http.Request) {
	feeds, err := s.feeds.Load(r.Context())
	if err != nil {
		log.Printf("[WARN] failed to load feeds: %v", err)
	}
	if feeds == nil {
		feeds = []domain.Feed{}
	}
	// uncategorized feeds land in the shared sidebar bucket
	for i := range feeds {
		feeds[i].Category = feeds[i].CategoryOrDefault()
	}
	renderJSON(w, r, http.StatusOK, feeds)
}

// feedRequest is the payload for adding or updating a feed
type feedRequest struct {
	Name     string `json:"name"`
	URL      string `json:"url"`
	Category string `json:"category"`
}

// addFeedHandler validates the feed URL and subscribes to it
func (s *Server) addFeedHandler(w http.ResponseWriter, r *http.Request) {
	var req feedRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		renderError(w, r, fmt.Errorf("invalid request body: %w", err), http.StatusBadRequest)
		return
	}

	req.URL = strings.TrimSpace(req.URL)
	if req.URL == "" {
		renderError(w, r, errors.New("url is required"), http.StatusBadRequest)
		return
	}

	name, err := s.fetcher.Validate(r.Context(), req.URL)
	if err != nil {
		var invalidErr *feed.InvalidFeedError
		if errors.As(err, &invalidErr) {
			renderError(w, r, errors.New(invalidErr.Message()), http.StatusUnprocessableEntity)
			return
		}
		renderError(w, r, fmt.Errorf("failed to validate feed: %w", err), http.StatusInternalServerError)
		return
	}

	if req.Name == "" {
		req.Name = name
	}

	// persistence is best-effort, a save failure never fails the request
	newFeed := &domain.Feed{Name: req.Name, URL: req.URL, Category: req.Category}
	if err := s.feeds.Add(r.Context(), newFeed); err != nil {
		log.Printf("[WARN] failed to save feed %s: %v", newFeed.URL, err)
	}
	renderJSON(w, r, http.StatusCreated, newFeed)
}

// updateFeedHandler updates name and category of an existing feed
func (s *Server) updateFeedHandler(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	var req feedRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		renderError(w, r, fmt.Errorf("invalid request body: %w", err), http.StatusBadRequest)
		return
	}

	existing, err := s.feeds.Get(r.Context(), id)
	if err != nil {
		renderError(w, r, errors.New("feed not found"), http.StatusNotFound)
		return
	}

	if req.Name != "" {
		existing.Name = req.Name
	}
	existing.Category = req.Category

	// a changed url goes through the same validation as a new subscription
	if url := strings.TrimSpace(req.URL); url != "" && url != existing.URL {
		if _, err := s.fetcher.Validate(r.Context(), url); err != nil {
			var invalidErr *feed.InvalidFeedError
			if errors.As(err, &invalidErr) {
				renderError(w, r, errors.New(invalidErr.Message()), http.StatusUnprocessableEntity)
				return
			}
			renderError(w, r, fmt.Errorf("failed to validate feed: %w", err), http.StatusInternalServerError)
			return
		}
		existing.URL = url
	}

	if err := s.feeds.Update(r.Context(), *existing); err != nil {
		log.Printf("[WARN] failed to update feed %s: %v", existing.ID, err)
	}
	renderJSON(w, r, http.StatusOK, existing)
}

// deleteFeedHandler removes the feed subscription
func (s *Server) deleteFeedHandler(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if err := s.feeds.Delete(r.Context(), id); err != nil {
		log.Printf("[WARN] failed to delete feed %s: %v", id, err)
	}
	renderJSON(w, r, http.StatusOK, map[string]string{"deleted": id})
}

// articlesHandler fetches the selected feed, enriches its articles and
// returns them filtered and sorted per the query parameters
func (s *Server) articlesHandler(w http.ResponseWriter, r *http.Request) {
	feedID := r.URL.Query().Get("feed")
	if feedID == "" {
		renderError(w, r, errors.New("feed parameter is required"), http.StatusBadRequest)
		return
	}

	var articles []domain.Article
	if feedID == "favorites" {
		// favorites come from local storage, a read failure degrades to empty
		favs, err := s.favorites.Load(r.Context())
		if err != nil {
			log.Printf("[WARN] failed to load favorites: %v", err)
		}
		articles = favs
	} else {
		selected, err := s.feeds.Get(r.Context(), feedID)
		if err != nil {
			renderError(w, r, errors.New("feed not found"), http.StatusNotFound)
			return
		}

		fetched, err := s.fetcher.Fetch(r.Context(), selected.URL)
		if err != nil {
			var fetchErr *feed.FetchError
			if errors.As(err, &fetchErr) {
				renderError(w, r, errors.New(fetchErr.Message()), http.StatusBadGateway)
				return
			}
			renderError(w, r, fmt.Errorf("failed to fetch feed: %w", err), http.StatusInternalServerError)
			return
		}
		articles = fetched
	}

	enriched := s.enricher.EnrichBatch(r.Context(), articles)

	q := view.Query{
		Search:    r.URL.Query().Get("search"),
		Sentiment: queryOrAll(r, "sentiment"),
		Topic:     queryOrAll(r, "topic"),
		Sort:      r.URL.Query().Get("sort"),
	}
	result := view.Apply(enriched, q)

	renderJSON(w, r, http.StatusOK, map[string]interface{}{
		"articles": result,
		"total":    len(enriched),
	})
}

// classifyingHandler returns keys of articles with classification in flight
func (s *Server) classifyingHandler(w http.ResponseWriter, r *http.Request) {
	renderJSON(w, r, http.StatusOK, map[string]interface{}{"classifying": s.enricher.Classifying()})
}

// topicsHandler returns distinct topics of the current working set
func (s *Server) topicsHandler(w http.ResponseWriter, r *http.Request) {
	renderJSON(w, r, http.StatusOK, map[string]interface{}{"topics": view.Topics(s.enricher.Articles())})
}

// summarizeHandler generates a summary for the posted article content
func (s *Server) summarizeHandler(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Content string `json:"content"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		renderError(w, r, fmt.Errorf("invalid request body: %w", err), http.StatusBadRequest)
		return
	}

	summary, err := s.summarizer.Summarize(r.Context(), req.Content)
	if err != nil {
		var sumErr *llm.SummarizationError
		if errors.As(err, &sumErr) {
			renderError(w, r, errors.New(sumErr.Message()), http.StatusBadGateway)
			return
		}
		renderError(w, r, fmt.Errorf("failed to summarize: %w", err), http.StatusInternalServerError)
		return
	}
	renderJSON(w, r, http.StatusOK, map[string]string{"summary": summary})
}

// extractHandler pulls the full article text from the source page
func (s *Server) extractHandler(w http.ResponseWriter, r *http.Request) {
	if s.extractor == nil {
		renderError(w, r, errors.New("content extraction is disabled"), http.StatusNotImplemented)
		return
	}

	var req struct {
		URL string `json:"url"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		renderError(w, r, fmt.Errorf("invalid request body: %w", err), http.StatusBadRequest)
		return
	}
	if req.URL == "" {
		renderError(w, r, errors.New("url is required"), http.StatusBadRequest)
		return
	}

	content, err := s.extractor.Extract(r.Context(), req.URL)
	if err != nil {
		renderError(w, r, fmt.Errorf("failed to extract content: %w", err), http.StatusBadGateway)
		return
	}
	renderJSON(w, r, http.StatusOK, map[string]string{"content": content})
}

// listFavoritesHandler returns saved articles, newest first
func (s *Server) listFavoritesHandler(w http.ResponseWriter, r *http.Request) {
	favs, err := s.favorites.Load(r.Context())
	if err != nil {
		log.Printf("[WARN] failed to load favorites: %v", err)
	}
	if favs == nil {
		favs = []domain.Article{}
	}
	renderJSON(w, r, http.StatusOK, favs)
}

// toggleFavoriteHandler saves the posted article or removes it when
// it is already favorited
func (s *Server) toggleFavoriteHandler(w http.ResponseWriter, r *http.Request) {
	var article domain.Article
	if err := json.NewDecoder(r.Body).Decode(&article); err != nil {
		renderError(w, r, fmt.Errorf("invalid request body: %w", err), http.StatusBadRequest)
		return
	}

	key := article.Key()
	if key == "" {
		renderError(w, r, errors.New("article has no guid or link"), http.StatusBadRequest)
		return
	}

	// a failed membership check reads as "not saved", and save/remove
	// failures are logged only, favorites are a non-critical cache
	saved, err := s.favorites.Has(r.Context(), key)
	if err != nil {
		log.Printf("[WARN] failed to check favorite %s: %v", key, err)
	}

	if saved {
		if err := s.favorites.Remove(r.Context(), key); err != nil {
			log.Printf("[WARN] failed to remove favorite %s: %v", key, err)
		}
		renderJSON(w, r, http.StatusOK, map[string]interface{}{"key": key, "favorited": false})
		return
	}

	if err := s.favorites.Save(r.Context(), article); err != nil {
		log.Printf("[WARN] failed to save favorite %s: %v", key, err)
	}
	renderJSON(w, r, http.StatusOK, map[string]interface{}{"key": key, "favorited": true})
}

// queryOrAll returns the query parameter value or "all" when absent
func queryOrAll(r *http.Request, name string) string {
	if v := r.URL.Query().Get(name); v != "" {
		return v
	}
	return view.FilterAll
}
