package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/newsweaver/pkg/domain"
	"github.com/umputun/newsweaver/pkg/feed"
	"github.com/umputun/newsweaver/pkg/llm"
	"github.com/umputun/newsweaver/server/mocks"
)

func sentimentPtr(s domain.Sentiment) *domain.Sentiment { return &s }

func TestServer_statusHandler(t *testing.T) {
	deps := testDeps()
	deps.Feeds = &mocks.FeedStoreMock{
		LoadFunc: func(ctx context.Context) ([]domain.Feed, error) {
			return []domain.Feed{{ID: "f1"}, {ID: "f2"}}, nil
		},
	}
	deps.Enricher = &mocks.EnricherMock{
		ClassifyingFunc: func() []string { return []string{"key-1"} },
	}
	srv := New(deps)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/status", http.NoBody)
	w := httptest.NewRecorder()
	srv.router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.Equal(t, "ok", resp["status"])
	assert.InDelta(t, 2, resp["feeds"], 0)
	assert.InDelta(t, 1, resp["classifying"], 0)
}

func TestServer_listFeedsHandler(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		deps := testDeps()
		deps.Feeds = &mocks.FeedStoreMock{
			LoadFunc: func(ctx context.Context) ([]domain.Feed, error) {
				return []domain.Feed{{ID: "f1", Name: "TechCrunch", URL: "https://techcrunch.com/feed/"}}, nil
			},
		}
		srv := New(deps)

		req := httptest.NewRequest(http.MethodGet, "/api/v1/feeds", http.NoBody)
		w := httptest.NewRecorder()
		srv.router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		var feeds []domain.Feed
		require.NoError(t, json.NewDecoder(w.Body).Decode(&feeds))
		require.Len(t, feeds, 1)
		assert.Equal(t, "TechCrunch", feeds[0].Name)
		assert.Equal(t, domain.UncategorizedFeeds, feeds[0].Category, "empty category lands in the default bucket")
	})

	t.Run("store failure degrades to empty list", func(t *testing.T) {
		deps := testDeps()
		deps.Feeds = &mocks.FeedStoreMock{
			LoadFunc: func(ctx context.Context) ([]domain.Feed, error) {
				return nil, errors.New("disk gone")
			},
		}
		srv := New(deps)

		req := httptest.NewRequest(http.MethodGet, "/api/v1/feeds", http.NoBody)
		w := httptest.NewRecorder()
		srv.router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		var feeds []domain.Feed
		require.NoError(t, json.NewDecoder(w.Body).Decode(&feeds))
		assert.Empty(t, feeds)
	})
}

func TestServer_addFeedHandler(t *testing.T) {
	t.Run("valid feed subscribed", func(t *testing.T) {
		deps := testDeps()
		deps.Fetcher = &mocks.FetcherMock{
			ValidateFunc: func(ctx context.Context, url string) (string, error) {
				return "Example Blog", nil
			},
		}
		feedStore := &mocks.FeedStoreMock{
			AddFunc: func(ctx context.Context, f *domain.Feed) error {
				f.ID = "generated-id"
				return nil
			},
		}
		deps.Feeds = feedStore
		srv := New(deps)

		body := `{"url": "https://example.com/feed.xml", "category": "Tech"}`
		req := httptest.NewRequest(http.MethodPost, "/api/v1/feeds", strings.NewReader(body))
		w := httptest.NewRecorder()
		srv.router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
		var created domain.Feed
		require.NoError(t, json.NewDecoder(w.Body).Decode(&created))
		assert.Equal(t, "generated-id", created.ID)
		assert.Equal(t, "Example Blog", created.Name, "feed title from validation used when name omitted")
		assert.Equal(t, "Tech", created.Category)
		require.Len(t, feedStore.AddCalls(), 1)
	})

	t.Run("explicit name wins over feed title", func(t *testing.T) {
		deps := testDeps()
		deps.Fetcher = &mocks.FetcherMock{
			ValidateFunc: func(ctx context.Context, url string) (string, error) { return "Feed Title", nil },
		}
		deps.Feeds = &mocks.FeedStoreMock{
			AddFunc: func(ctx context.Context, f *domain.Feed) error { return nil },
		}
		srv := New(deps)

		body := `{"name": "My Name", "url": "https://example.com/feed.xml"}`
		req := httptest.NewRequest(http.MethodPost, "/api/v1/feeds", strings.NewReader(body))
		w := httptest.NewRecorder()
		srv.router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
		var created domain.Feed
		require.NoError(t, json.NewDecoder(w.Body).Decode(&created))
		assert.Equal(t, "My Name", created.Name)
	})

	t.Run("invalid feed url rejected", func(t *testing.T) {
		deps := testDeps()
		deps.Fetcher = &mocks.FetcherMock{
			ValidateFunc: func(ctx context.Context, url string) (string, error) {
				return "", &feed.InvalidFeedError{URL: url, Reason: "not a feed"}
			},
		}
		srv := New(deps)

		body := `{"url": "https://example.com/not-a-feed"}`
		req := httptest.NewRequest(http.MethodPost, "/api/v1/feeds", strings.NewReader(body))
		w := httptest.NewRecorder()
		srv.router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		var resp map[string]string
		require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
		assert.Equal(t, "Invalid or unreachable RSS feed URL.", resp["error"])
	})

	t.Run("missing url", func(t *testing.T) {
		srv := New(testDeps())
		req := httptest.NewRequest(http.MethodPost, "/api/v1/feeds", strings.NewReader(`{"name": "x"}`))
		w := httptest.NewRecorder()
		srv.router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("malformed body", func(t *testing.T) {
		srv := New(testDeps())
		req := httptest.NewRequest(http.MethodPost, "/api/v1/feeds", strings.NewReader("{broken"))
		w := httptest.NewRecorder()
		srv.router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestServer_updateFeedHandler(t *testing.T) {
	t.Run("update name and category", func(t *testing.T) {
		deps := testDeps()
		var updated domain.Feed
		deps.Feeds = &mocks.FeedStoreMock{
			GetFunc: func(ctx context.Context, id string) (*domain.Feed, error) {
				return &domain.Feed{ID: id, Name: "Old", URL: "https://example.com/feed", Category: "Old Cat"}, nil
			},
			UpdateFunc: func(ctx context.Context, f domain.Feed) error {
				updated = f
				return nil
			},
		}
		srv := New(deps)

		body := `{"name": "New Name", "category": "News"}`
		req := httptest.NewRequest(http.MethodPut, "/api/v1/feeds/f1", strings.NewReader(body))
		w := httptest.NewRecorder()
		srv.router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "f1", updated.ID)
		assert.Equal(t, "New Name", updated.Name)
		assert.Equal(t, "News", updated.Category)
		assert.Equal(t, "https://example.com/feed", updated.URL, "url not changed by update")
	})

	t.Run("changed url revalidated", func(t *testing.T) {
		deps := testDeps()
		deps.Feeds = &mocks.FeedStoreMock{
			GetFunc: func(ctx context.Context, id string) (*domain.Feed, error) {
				return &domain.Feed{ID: id, Name: "Old", URL: "https://example.com/old"}, nil
			},
		}
		deps.Fetcher = &mocks.FetcherMock{
			ValidateFunc: func(ctx context.Context, url string) (string, error) {
				return "", &feed.InvalidFeedError{URL: url, Reason: "dead"}
			},
		}
		srv := New(deps)

		body := `{"url": "https://example.com/new"}`
		req := httptest.NewRequest(http.MethodPut, "/api/v1/feeds/f1", strings.NewReader(body))
		w := httptest.NewRecorder()
		srv.router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})

	t.Run("unknown feed", func(t *testing.T) {
		deps := testDeps()
		deps.Feeds = &mocks.FeedStoreMock{
			GetFunc: func(ctx context.Context, id string) (*domain.Feed, error) {
				return nil, errors.New("not found")
			},
		}
		srv := New(deps)

		req := httptest.NewRequest(http.MethodPut, "/api/v1/feeds/nope", strings.NewReader(`{}`))
		w := httptest.NewRecorder()
		srv.router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestServer_deleteFeedHandler(t *testing.T) {
	deps := testDeps()
	feedStore := &mocks.FeedStoreMock{
		DeleteFunc: func(ctx context.Context, id string) error { return nil },
	}
	deps.Feeds = feedStore
	srv := New(deps)

	req := httptest.NewRequest(http.MethodDelete, "/api/v1/feeds/f1", http.NoBody)
	w := httptest.NewRecorder()
	srv.router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	require.Len(t, feedStore.DeleteCalls(), 1)
	assert.Equal(t, "f1", feedStore.DeleteCalls()[0].ID)
}

func TestServer_articlesHandler(t *testing.T) {
	t.Run("fetch, enrich and filter", func(t *testing.T) {
		deps := testDeps()
		deps.Feeds = &mocks.FeedStoreMock{
			GetFunc: func(ctx context.Context, id string) (*domain.Feed, error) {
				return &domain.Feed{ID: id, URL: "https://example.com/feed"}, nil
			},
		}
		deps.Fetcher = &mocks.FetcherMock{
			FetchFunc: func(ctx context.Context, url string) ([]domain.Article, error) {
				return []domain.Article{
					{GUID: "a1", Title: "Go release"},
					{GUID: "a2", Title: "Outage postmortem"},
				}, nil
			},
		}
		deps.Enricher = &mocks.EnricherMock{
			EnrichBatchFunc: func(ctx context.Context, articles []domain.Article) []domain.Article {
				out := make([]domain.Article, len(articles))
				copy(out, articles)
				out[0].Sentiment, out[0].Topic = sentimentPtr(domain.SentimentPositive), "Technology"
				out[1].Sentiment, out[1].Topic = sentimentPtr(domain.SentimentNegative), "Technology"
				return out
			},
		}
		srv := New(deps)

		req := httptest.NewRequest(http.MethodGet, "/api/v1/articles?feed=f1&sentiment=positive", http.NoBody)
		w := httptest.NewRecorder()
		srv.router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		var resp struct {
			Articles []domain.Article `json:"articles"`
			Total    int              `json:"total"`
		}
		require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
		assert.Equal(t, 2, resp.Total)
		require.Len(t, resp.Articles, 1)
		assert.Equal(t, "a1", resp.Articles[0].GUID)
	})

	t.Run("missing feed parameter", func(t *testing.T) {
		srv := New(testDeps())
		req := httptest.NewRequest(http.MethodGet, "/api/v1/articles", http.NoBody)
		w := httptest.NewRecorder()
		srv.router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("unknown feed", func(t *testing.T) {
		deps := testDeps()
		deps.Feeds = &mocks.FeedStoreMock{
			GetFunc: func(ctx context.Context, id string) (*domain.Feed, error) {
				return nil, errors.New("not found")
			},
		}
		srv := New(deps)

		req := httptest.NewRequest(http.MethodGet, "/api/v1/articles?feed=ghost", http.NoBody)
		w := httptest.NewRecorder()
		srv.router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("fetch failure returns user message", func(t *testing.T) {
		deps := testDeps()
		deps.Feeds = &mocks.FeedStoreMock{
			GetFunc: func(ctx context.Context, id string) (*domain.Feed, error) {
				return &domain.Feed{ID: id, URL: "https://dead.example.com/feed"}, nil
			},
		}
		deps.Fetcher = &mocks.FetcherMock{
			FetchFunc: func(ctx context.Context, url string) ([]domain.Article, error) {
				return nil, &feed.FetchError{URL: url, Err: errors.New("connection refused")}
			},
		}
		srv := New(deps)

		req := httptest.NewRequest(http.MethodGet, "/api/v1/articles?feed=f1", http.NoBody)
		w := httptest.NewRecorder()
		srv.router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadGateway, w.Code)
		var resp map[string]string
		require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
		assert.Equal(t, "Could not fetch or parse the RSS feed. Please check the URL and try again.", resp["error"])
	})

	t.Run("favorites as virtual feed", func(t *testing.T) {
		deps := testDeps()
		deps.Favorites = &mocks.FavoriteStoreMock{
			LoadFunc: func(ctx context.Context) ([]domain.Article, error) {
				return []domain.Article{{GUID: "fav-1", Title: "Saved one"}}, nil
			},
		}
		deps.Enricher = &mocks.EnricherMock{
			EnrichBatchFunc: func(ctx context.Context, articles []domain.Article) []domain.Article {
				return articles
			},
		}
		srv := New(deps)

		req := httptest.NewRequest(http.MethodGet, "/api/v1/articles?feed=favorites", http.NoBody)
		w := httptest.NewRecorder()
		srv.router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		var resp struct {
			Articles []domain.Article `json:"articles"`
		}
		require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
		require.Len(t, resp.Articles, 1)
		assert.Equal(t, "fav-1", resp.Articles[0].GUID)
	})

	t.Run("favorites load failure degrades to empty", func(t *testing.T) {
		deps := testDeps()
		deps.Favorites = &mocks.FavoriteStoreMock{
			LoadFunc: func(ctx context.Context) ([]domain.Article, error) {
				return nil, errors.New("corrupt db")
			},
		}
		deps.Enricher = &mocks.EnricherMock{
			EnrichBatchFunc: func(ctx context.Context, articles []domain.Article) []domain.Article {
				return articles
			},
		}
		srv := New(deps)

		req := httptest.NewRequest(http.MethodGet, "/api/v1/articles?feed=favorites", http.NoBody)
		w := httptest.NewRecorder()
		srv.router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
	})
}

func TestServer_classifyingHandler(t *testing.T) {
	deps := testDeps()
	deps.Enricher = &mocks.EnricherMock{
		ClassifyingFunc: func() []string { return []string{"k1", "k2"} },
	}
	srv := New(deps)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/classifying", http.NoBody)
	w := httptest.NewRecorder()
	srv.router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp map[string][]string
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.Equal(t, []string{"k1", "k2"}, resp["classifying"])
}

func TestServer_topicsHandler(t *testing.T) {
	deps := testDeps()
	deps.Enricher = &mocks.EnricherMock{
		ArticlesFunc: func() []domain.Article {
			return []domain.Article{
				{GUID: "a1", Topic: "Technology"},
				{GUID: "a2", Topic: "Business"},
				{GUID: "a3", Topic: "Technology"},
			}
		},
	}
	srv := New(deps)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/topics", http.NoBody)
	w := httptest.NewRecorder()
	srv.router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp map[string][]string
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.Equal(t, []string{"Business", "Technology"}, resp["topics"])
}

func TestServer_summarizeHandler(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		deps := testDeps()
		deps.Summarizer = &mocks.SummarizerMock{
			SummarizeFunc: func(ctx context.Context, raw string) (string, error) {
				return "short version", nil
			},
		}
		srv := New(deps)

		body := `{"content": "a long article body that needs summarizing"}`
		req := httptest.NewRequest(http.MethodPost, "/api/v1/summarize", strings.NewReader(body))
		w := httptest.NewRecorder()
		srv.router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		var resp map[string]string
		require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
		assert.Equal(t, "short version", resp["summary"])
	})

	t.Run("gateway failure returns user message", func(t *testing.T) {
		deps := testDeps()
		deps.Summarizer = &mocks.SummarizerMock{
			SummarizeFunc: func(ctx context.Context, raw string) (string, error) {
				return "", &llm.SummarizationError{Err: errors.New("model overloaded")}
			},
		}
		srv := New(deps)

		req := httptest.NewRequest(http.MethodPost, "/api/v1/summarize", strings.NewReader(`{"content": "x"}`))
		w := httptest.NewRecorder()
		srv.router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadGateway, w.Code)
		var resp map[string]string
		require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
		assert.Equal(t, "Could not summarize the article at this time.", resp["error"])
	})

	t.Run("malformed body", func(t *testing.T) {
		srv := New(testDeps())
		req := httptest.NewRequest(http.MethodPost, "/api/v1/summarize", strings.NewReader("not json"))
		w := httptest.NewRecorder()
		srv.router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestServer_extractHandler(t *testing.T) {
	t.Run("disabled", func(t *testing.T) {
		srv := New(testDeps()) // no extractor wired
		req := httptest.NewRequest(http.MethodPost, "/api/v1/extract", strings.NewReader(`{"url": "https://example.com/a"}`))
		w := httptest.NewRecorder()
		srv.router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusNotImplemented, w.Code)
	})

	t.Run("success", func(t *testing.T) {
		deps := testDeps()
		deps.Extractor = &mocks.ExtractorMock{
			ExtractFunc: func(ctx context.Context, url string) (string, error) {
				return "full article text", nil
			},
		}
		srv := New(deps)

		req := httptest.NewRequest(http.MethodPost, "/api/v1/extract", strings.NewReader(`{"url": "https://example.com/a"}`))
		w := httptest.NewRecorder()
		srv.router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		var resp map[string]string
		require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
		assert.Equal(t, "full article text", resp["content"])
	})

	t.Run("extraction failure", func(t *testing.T) {
		deps := testDeps()
		deps.Extractor = &mocks.ExtractorMock{
			ExtractFunc: func(ctx context.Context, url string) (string, error) {
				return "", errors.New("paywall")
			},
		}
		srv := New(deps)

		req := httptest.NewRequest(http.MethodPost, "/api/v1/extract", strings.NewReader(`{"url": "https://example.com/a"}`))
		w := httptest.NewRecorder()
		srv.router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusBadGateway, w.Code)
	})
}

func TestServer_toggleFavoriteHandler(t *testing.T) {
	t.Run("save new favorite", func(t *testing.T) {
		deps := testDeps()
		favStore := &mocks.FavoriteStoreMock{
			HasFunc:  func(ctx context.Context, key string) (bool, error) { return false, nil },
			SaveFunc: func(ctx context.Context, article domain.Article) error { return nil },
		}
		deps.Favorites = favStore
		srv := New(deps)

		body := `{"guid": "a1", "link": "https://example.com/a1", "title": "Article"}`
		req := httptest.NewRequest(http.MethodPost, "/api/v1/favorites", strings.NewReader(body))
		w := httptest.NewRecorder()
		srv.router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		var resp map[string]interface{}
		require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
		assert.Equal(t, true, resp["favorited"])
		assert.Equal(t, "a1", resp["key"])
		require.Len(t, favStore.SaveCalls(), 1)
	})

	t.Run("remove existing favorite", func(t *testing.T) {
		deps := testDeps()
		favStore := &mocks.FavoriteStoreMock{
			HasFunc:    func(ctx context.Context, key string) (bool, error) { return true, nil },
			RemoveFunc: func(ctx context.Context, key string) error { return nil },
		}
		deps.Favorites = favStore
		srv := New(deps)

		body := `{"guid": "a1", "title": "Article"}`
		req := httptest.NewRequest(http.MethodPost, "/api/v1/favorites", strings.NewReader(body))
		w := httptest.NewRecorder()
		srv.router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		var resp map[string]interface{}
		require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
		assert.Equal(t, false, resp["favorited"])
		require.Len(t, favStore.RemoveCalls(), 1)
		assert.Equal(t, "a1", favStore.RemoveCalls()[0].Key)
	})

	t.Run("link used when guid missing", func(t *testing.T) {
		deps := testDeps()
		favStore := &mocks.FavoriteStoreMock{
			HasFunc:  func(ctx context.Context, key string) (bool, error) { return false, nil },
			SaveFunc: func(ctx context.Context, article domain.Article) error { return nil },
		}
		deps.Favorites = favStore
		srv := New(deps)

		body := `{"link": "https://example.com/a1", "title": "Article"}`
		req := httptest.NewRequest(http.MethodPost, "/api/v1/favorites", strings.NewReader(body))
		w := httptest.NewRecorder()
		srv.router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		require.Len(t, favStore.HasCalls(), 1)
		assert.Equal(t, "https://example.com/a1", favStore.HasCalls()[0].Key)
	})

	t.Run("save failure does not fail the request", func(t *testing.T) {
		deps := testDeps()
		deps.Favorites = &mocks.FavoriteStoreMock{
			HasFunc:  func(ctx context.Context, key string) (bool, error) { return false, nil },
			SaveFunc: func(ctx context.Context, article domain.Article) error { return errors.New("disk full") },
		}
		srv := New(deps)

		body := `{"guid": "a1", "title": "Article"}`
		req := httptest.NewRequest(http.MethodPost, "/api/v1/favorites", strings.NewReader(body))
		w := httptest.NewRecorder()
		srv.router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		var resp map[string]interface{}
		require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
		assert.Equal(t, true, resp["favorited"])
	})

	t.Run("no identity", func(t *testing.T) {
		srv := New(testDeps())
		req := httptest.NewRequest(http.MethodPost, "/api/v1/favorites", strings.NewReader(`{"title": "Article"}`))
		w := httptest.NewRecorder()
		srv.router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestServer_listFavoritesHandler(t *testing.T) {
	deps := testDeps()
	deps.Favorites = &mocks.FavoriteStoreMock{
		LoadFunc: func(ctx context.Context) ([]domain.Article, error) {
			return []domain.Article{{GUID: "fav-1"}, {GUID: "fav-2"}}, nil
		},
	}
	srv := New(deps)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/favorites", http.NoBody)
	w := httptest.NewRecorder()
	srv.router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var favs []domain.Article
	require.NoError(t, json.NewDecoder(w.Body).Decode(&favs))
	assert.Len(t, favs, 2)
}
