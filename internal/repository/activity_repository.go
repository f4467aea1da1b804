package repository

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/Tanishagodhaa/qr-cafe-menu/internal/models"
	"github.com/Tanishagodhaa/qr-cafe-menu/internal/store"
)

// ActivityRepository records and lists audit log entries.
type ActivityRepository interface {
	Record(ctx context.Context, activity *models.Activity) error
	ListByCafe(ctx context.Context, cafeID string, limit int) ([]models.Activity, error)
}

// InMemoryActivityRepository implements ActivityRepository with in-memory storage
type InMemoryActivityRepository struct {
	mu      sync.RWMutex
	entries []models.Activity
}

func NewInMemoryActivityRepository() *InMemoryActivityRepository {
	return &InMemoryActivityRepository{}
}

func (r *InMemoryActivityRepository) Record(ctx context.Context, activity *models.Activity) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = append(r.entries, *activity)
	return nil
}

func (r *InMemoryActivityRepository) ListByCafe(ctx context.Context, cafeID string, limit int) ([]models.Activity, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []models.Activity
	for _, e := range r.entries {
		if e.CafeID == cafeID {
			out = append(out, e)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

// PostgresActivityRepository implements ActivityRepository over a store.Querier.
type PostgresActivityRepository struct {
	db store.Querier
}

func NewPostgresActivityRepository(db store.Querier) *PostgresActivityRepository {
	return &PostgresActivityRepository{db: db}
}

func (r *PostgresActivityRepository) Record(ctx context.Context, activity *models.Activity) error {
	_, err := r.db.Run(ctx, `
		INSERT INTO activities (id, cafe_id, user_id, action, detail, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		activity.ID, activity.CafeID, activity.UserID,
		activity.Action, activity.Detail, activity.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert activity: %w", err)
	}
	return nil
}

func (r *PostgresActivityRepository) ListByCafe(ctx context.Context, cafeID string, limit int) ([]models.Activity, error) {
	rows, err := r.db.All(ctx, `
		SELECT id, cafe_id, user_id, action, detail, created_at FROM activities
		WHERE cafe_id = $1
		ORDER BY created_at DESC
		LIMIT $2`, cafeID, limit)
	if err != nil {
		return nil, err
	}
	out := make([]models.Activity, 0, len(rows))
	for _, row := range rows {
		out = append(out, models.Activity{
			ID:        row.String("id"),
			CafeID:    row.String("cafe_id"),
			UserID:    row.String("user_id"),
			Action:    row.String("action"),
			Detail:    row.String("detail"),
			CreatedAt: row.Time("created_at"),
		})
	}
	return out, nil
}
