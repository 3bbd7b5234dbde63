package store

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/umputun/newsweaver/pkg/domain"
)

// FeedStore persists feed subscriptions
type FeedStore struct {
	db *sqlx.DB
}

// feedSQL represents a feed row for SQL operations
type feedSQL struct {
	ID        string    `db:"id"`
	Name      string    `db:"name"`
	URL       string    `db:"url"`
	Category  string    `db:"category"`
	CreatedAt time.Time `db:"created_at"`
}

// Load returns all subscriptions in creation order
func (s *FeedStore) Load(ctx context.Context) ([]domain.Feed, error) {
	var rows []feedSQL
	if err := s.db.SelectContext(ctx, &rows, "SELECT id, name, url, category, created_at FROM feeds ORDER BY created_at, id"); err != nil {
		return nil, fmt.Errorf("load feeds: %w", err)
	}

	feeds := make([]domain.Feed, len(rows))
	for i, row := range rows {
		feeds[i] = domain.Feed{ID: row.ID, Name: row.Name, URL: row.URL, Category: row.Category}
	}
	return feeds, nil
}

// Get returns a single subscription by id
func (s *FeedStore) Get(ctx context.Context, id string) (*domain.Feed, error) {
	var row feedSQL
	if err := s.db.GetContext(ctx, &row, "SELECT id, name, url, category, created_at FROM feeds WHERE id = ?", id); err != nil {
		return nil, fmt.Errorf("get feed %s: %w", id, err)
	}
	return &domain.Feed{ID: row.ID, Name: row.Name, URL: row.URL, Category: row.Category}, nil
}

// Add inserts a new subscription, generating its id when empty
func (s *FeedStore) Add(ctx context.Context, feed *domain.Feed) error {
	if feed.ID == "" {
		feed.ID = uuid.NewString()
	}

	retrier := newRetrier()
	return retrier.Do(ctx, func() error {
		_, err := s.db.ExecContext(ctx, "INSERT INTO feeds (id, name, url, category) VALUES (?, ?, ?, ?)",
			feed.ID, feed.Name, feed.URL, feed.Category)
		if err != nil {
			if isLockError(err) {
				return err // retry
			}
			return &criticalError{err: fmt.Errorf("add feed: %w", err)}
		}
		return nil
	})
}

// Update replaces the subscription with the given id in place
func (s *FeedStore) Update(ctx context.Context, feed domain.Feed) error {
	retrier := newRetrier()
	return retrier.Do(ctx, func() error {
		res, err := s.db.ExecContext(ctx, "UPDATE feeds SET name = ?, url = ?, category = ? WHERE id = ?",
			feed.Name, feed.URL, feed.Category, feed.ID)
		if err != nil {
			if isLockError(err) {
				return err // retry
			}
			return &criticalError{err: fmt.Errorf("update feed: %w", err)}
		}
		affected, err := res.RowsAffected()
		if err != nil {
			return &criticalError{err: fmt.Errorf("update feed rows affected: %w", err)}
		}
		if affected == 0 {
			return &criticalError{err: fmt.Errorf("feed %s not found", feed.ID)}
		}
		return nil
	})
}

// Delete removes the subscription with the given id
func (s *FeedStore) Delete(ctx context.Context, id string) error {
	retrier := newRetrier()
	return retrier.Do(ctx, func() error {
		_, err := s.db.ExecContext(ctx, "DELETE FROM feeds WHERE id = ?", id)
		if err != nil {
			if isLockError(err) {
				return err // retry
			}
			return &criticalError{err: fmt.Errorf("delete feed: %w", err)}
		}
		return nil
	})
}

// Seed inserts the default subscriptions if the store is empty, so a fresh
// install has something to show
func (s *FeedStore) Seed(ctx context.Context, defaults []domain.Feed) error {
	var count int
	if err := s.db.GetContext(ctx, &count, "SELECT count(*) FROM feeds"); err != nil {
		return fmt.Errorf("count feeds: %w", err)
	}
	if count > 0 {
		return nil
	}

	for i := range defaults {
		feed := defaults[i]
		if err := s.Add(ctx, &feed); err != nil {
			return fmt.Errorf("seed feed %s: %w", feed.URL, err)
		}
	}
	return nil
}
