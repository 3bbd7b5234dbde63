package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/umputun/newsweaver/pkg/domain"
)

// FavoriteStore persists favorited articles keyed by identity key
type FavoriteStore struct {
	db *sqlx.DB
}

// favoriteSQL represents a favorite row for SQL operations
type favoriteSQL struct {
	Key     string    `db:"key"`
	Article string    `db:"article"`
	SavedAt time.Time `db:"saved_at"`
}

// Load returns all favorited articles, newest first
func (s *FavoriteStore) Load(ctx context.Context) ([]domain.Article, error) {
	var rows []favoriteSQL
	if err := s.db.SelectContext(ctx, &rows, "SELECT key, article, saved_at FROM favorites ORDER BY saved_at DESC, key"); err != nil {
		return nil, fmt.Errorf("load favorites: %w", err)
	}

	articles := make([]domain.Article, 0, len(rows))
	for _, row := range rows {
		var article domain.Article
		if err := json.Unmarshal([]byte(row.Article), &article); err != nil {
			// a corrupt row should not make the whole view unusable
			continue
		}
		articles = append(articles, article)
	}
	return articles, nil
}

// Has reports whether the article with the given identity key is favorited
func (s *FavoriteStore) Has(ctx context.Context, key string) (bool, error) {
	var count int
	if err := s.db.GetContext(ctx, &count, "SELECT count(*) FROM favorites WHERE key = ?", key); err != nil {
		return false, fmt.Errorf("check favorite %s: %w", key, err)
	}
	return count > 0, nil
}

// Save upserts the article under its identity key
func (s *FavoriteStore) Save(ctx context.Context, article domain.Article) error {
	payload, err := json.Marshal(article)
	if err != nil {
		return fmt.Errorf("marshal favorite: %w", err)
	}

	retrier := newRetrier()
	return retrier.Do(ctx, func() error {
		_, err := s.db.ExecContext(ctx,
			"INSERT INTO favorites (key, article) VALUES (?, ?) ON CONFLICT(key) DO UPDATE SET article = excluded.article",
			article.Key(), string(payload))
		if err != nil {
			if isLockError(err) {
				return err // retry
			}
			return &criticalError{err: fmt.Errorf("save favorite: %w", err)}
		}
		return nil
	})
}

// Remove deletes the favorite with the given identity key
func (s *FavoriteStore) Remove(ctx context.Context, key string) error {
	retrier := newRetrier()
	return retrier.Do(ctx, func() error {
		_, err := s.db.ExecContext(ctx, "DELETE FROM favorites WHERE key = ?", key)
		if err != nil {
			if isLockError(err) {
				return err // retry
			}
			return &criticalError{err: fmt.Errorf("remove favorite: %w", err)}
		}
		return nil
	})
}
