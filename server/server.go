// Package server exposes the backend action layer as a JSON API: feed
// subscriptions, article listing with enrichment, summaries, and favorites.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/go-pkgz/lgr"
	"github.com/go-pkgz/rest"
	"github.com/go-pkgz/rest/logger"
	"github.com/go-pkgz/routegroup"

	"github.com/umputun/newsweaver/pkg/domain"
)

//go:generate moq -out mocks/config.go -pkg mocks -skip-ensure -fmt goimports . ConfigProvider
//go:generate moq -out mocks/feed_store.go -pkg mocks -skip-ensure -fmt goimports . FeedStore
//go:generate moq -out mocks/favorite_store.go -pkg mocks -skip-ensure -fmt goimports . FavoriteStore
//go:generate moq -out mocks/fetcher.go -pkg mocks -skip-ensure -fmt goimports . Fetcher
//go:generate moq -out mocks/enricher.go -pkg mocks -skip-ensure -fmt goimports . Enricher
//go:generate moq -out mocks/summarizer.go -pkg mocks -skip-ensure -fmt goimports . Summarizer
//go:generate moq -out mocks/extractor.go -pkg mocks -skip-ensure -fmt goimports . Extractor

// Server represents HTTP server instance
type Server struct {
	config     ConfigProvider
	feeds      FeedStore
	favorites  FavoriteStore
	fetcher    Fetcher
	enricher   Enricher
	summarizer Summarizer
	extractor  Extractor // nil when full-article extraction is disabled
	version    string
	debug      bool

	lock       sync.Mutex
	httpServer *http.Server
	router     *routegroup.Bundle
}

// ConfigProvider provides server configuration
type ConfigProvider interface {
	GetServerConfig() (listen string, timeout time.Duration)
}

// FeedStore persists feed subscriptions
type FeedStore interface {
	Load(ctx context.Context) ([]domain.Feed, error)
	Get(ctx context.Context, id string) (*domain.Feed, error)
	Add(ctx context.Context, feed *domain.Feed) error
	Update(ctx context.Context, feed domain.Feed) error
	Delete(ctx context.Context, id string) error
}

// FavoriteStore persists favorited articles
type FavoriteStore interface {
	Load(ctx context.Context) ([]domain.Article, error)
	Has(ctx context.Context, key string) (bool, error)
	Save(ctx context.Context, article domain.Article) error
	Remove(ctx context.Context, key string) error
}

// Fetcher retrieves and parses feeds
type Fetcher interface {
	Fetch(ctx context.Context, url string) ([]domain.Article, error)
	Validate(ctx context.Context, url string) (name string, err error)
}

// Enricher runs the classification pipeline over a batch of articles
type Enricher interface {
	EnrichBatch(ctx context.Context, articles []domain.Article) []domain.Article
	Articles() []domain.Article
	Classifying() []string
}

// Summarizer produces article summaries
type Summarizer interface {
	Summarize(ctx context.Context, raw string) (string, error)
}

// Extractor pulls full text of an article page
type Extractor interface {
	Extract(ctx context.Context, url string) (string, error)
}

// Deps bundles the server dependencies
type Deps struct {
	Config     ConfigProvider
	Feeds      FeedStore
	Favorites  FavoriteStore
	Fetcher    Fetcher
	Enricher   Enricher
	Summarizer Summarizer
	Extractor  Extractor
	Version    string
	Debug      bool
}

// New initializes a new server instance
func New(deps Deps) *Server {
	s := &Server{
		config:     deps.Config,
		feeds:      deps.Feeds,
		favorites:  deps.Favorites,
		fetcher:    deps.Fetcher,
		enricher:   deps.Enricher,
		summarizer: deps.Summarizer,
		extractor:  deps.Extractor,
		version:    deps.Version,
		debug:      deps.Debug,
		router:     routegroup.New(http.NewServeMux()),
	}

	s.setupMiddleware()
	s.setupRoutes()

	return s
}

// Run starts the HTTP server and handles graceful shutdown
func (s *Server) Run(ctx context.Context) error {
	listen, timeout := s.config.GetServerConfig()
	log.Printf("[INFO] starting server on %s", listen)

	s.lock.Lock()
	s.httpServer = &http.Server{
		Addr:         listen,
		Handler:      s.router,
		ReadTimeout:  timeout,
		WriteTimeout: timeout,
	}
	s.lock.Unlock()

	go func() {
		<-ctx.Done()
		log.Printf("[INFO] shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
			log.Printf("[WARN] server shutdown error: %v", err)
		}
	}()

	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("http server error: %w", err)
	}

	return nil
}

// setupMiddleware configures standard middleware for the server
func (s *Server) setupMiddleware() {
	s.router.Use(rest.AppInfo("newsweaver", "umputun", s.version))
	s.router.Use(rest.Ping)

	if s.debug {
		s.router.Use(logger.New(logger.Log(lgr.Default()), logger.Prefix("[DEBUG]")).Handler)
	}

	s.router.Use(rest.Recoverer(lgr.Default()))
	s.router.Use(rest.Throttle(100))
	s.router.Use(rest.SizeLimit(1024 * 1024)) // 1MB
}

// setupRoutes configures application routes
func (s *Server) setupRoutes() {
	s.router.Mount("/api/v1").Route(func(r *routegroup.Bundle) {
		r.HandleFunc("GET /status", s.statusHandler)

		r.HandleFunc("GET /feeds", s.listFeedsHandler)
		r.HandleFunc("POST /feeds", s.addFeedHandler)
		r.HandleFunc("PUT /feeds/{id}", s.updateFeedHandler)
		r.HandleFunc("DELETE /feeds/{id}", s.deleteFeedHandler)

		r.HandleFunc("GET /articles", s.articlesHandler)
		r.HandleFunc("GET /classifying", s.classifyingHandler)
		r.HandleFunc("GET /topics", s.topicsHandler)

		r.HandleFunc("POST /summarize", s.summarizeHandler)
		r.HandleFunc("POST /extract", s.extractHandler)

		r.HandleFunc("GET /favorites", s.listFavoritesHandler)
		r.HandleFunc("POST /favorites", s.toggleFavoriteHandler)
	})
}

// renderJSON sends JSON response
func renderJSON(w http.ResponseWriter, _ *http.Request, code int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			log.Printf("[ERROR] can't encode response to JSON: %v", err)
		}
	}
}

// renderError sends error response as JSON
func renderError(w http.ResponseWriter, r *http.Request, err error, code int) {
	errMsg := "unknown error"
	if err != nil {
		errMsg = err.Error()
	}
	renderJSON(w, r, code, map[string]string{"error": errMsg})
}
