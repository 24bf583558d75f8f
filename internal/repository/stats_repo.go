package repository

import (
	"context"

	"taskboard/internal/domain"

	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/sync/errgroup"
)

type StatsRepository struct {
	db *pgxpool.Pool
}

func NewStatsRepository(db *pgxpool.Pool) *StatsRepository {
	return &StatsRepository{db: db}
}

// Summary gathers the user and task counts concurrently; the pool is
// safe for parallel queries. The counts share no snapshot, so under
// concurrent writes they may disagree by a small margin.
func (r *StatsRepository) Summary(ctx context.Context) (domain.Summary, error) {
	var users, tasks, completed int64

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return r.db.QueryRow(ctx, `SELECT COUNT(*) FROM users`).Scan(&users)
	})
	g.Go(func() error {
		return r.db.QueryRow(ctx, `SELECT COUNT(*) FROM tasks`).Scan(&tasks)
	})
	g.Go(func() error {
		return r.db.QueryRow(ctx, `SELECT COUNT(*) FROM tasks WHERE completed`).Scan(&completed)
	})
	if err := g.Wait(); err != nil {
		return domain.Summary{}, err
	}

	return domain.NewSummary(users, tasks, completed), nil
}
