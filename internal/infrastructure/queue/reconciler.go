package queue

import (
	"context"
	"fmt"
	"time"

	"github.com/hibiken/asynq"
	"github.com/jackc/pgx/v5/pgxpool"

	"webmusic-backend/pkg/logger"
)

// CounterReconciler owns the scheduled job that rewrites the stored
// song counters. Reads compute like and comment counts live, so the
// columns only serve ordering (view_count) and external consumers;
// this keeps them from drifting.
type CounterReconciler struct {
	pool *pgxpool.Pool
}

func NewCounterReconciler(pool *pgxpool.Pool) *CounterReconciler {
	return &CounterReconciler{pool: pool}
}

func (r *CounterReconciler) HandleReconcileCounters(ctx context.Context, t *asynq.Task) error {
	start := time.Now()

	statements := []string{
		`UPDATE songs s SET like_count = sub.cnt
         FROM (SELECT song_id, COUNT(*) AS cnt FROM likes GROUP BY song_id) sub
         WHERE sub.song_id = s.song_id AND s.like_count <> sub.cnt`,
		`UPDATE songs s SET like_count = 0
         WHERE s.like_count <> 0
             AND NOT EXISTS (SELECT 1 FROM likes l WHERE l.song_id = s.song_id)`,
		`UPDATE songs s SET comment_count = sub.cnt
         FROM (SELECT song_id, COUNT(*) AS cnt FROM comments GROUP BY song_id) sub
         WHERE sub.song_id = s.song_id AND s.comment_count <> sub.cnt`,
		`UPDATE songs s SET comment_count = 0
         WHERE s.comment_count <> 0
             AND NOT EXISTS (SELECT 1 FROM comments c WHERE c.song_id = s.song_id)`,
		`UPDATE songs s SET view_count = sub.cnt
         FROM (SELECT song_id, COUNT(*) AS cnt FROM play_history GROUP BY song_id) sub
         WHERE sub.song_id = s.song_id AND s.view_count <> sub.cnt`,
	}

	var touched int64
	for _, stmt := range statements {
		cmdTag, err := r.pool.Exec(ctx, stmt)
		if err != nil {
			return fmt.Errorf("failed to reconcile counters: %w", err)
		}
		touched += cmdTag.RowsAffected()
	}

	logger.Info("Reconciled song counters", map[string]interface{}{
		"rows_updated": touched,
		"duration_ms":  time.Since(start).Milliseconds(),
	})
	return nil
}
