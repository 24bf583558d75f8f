package repository

import (
	"context"
	"strings"

	"taskboard/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type TaskRepository struct {
	db *pgxpool.Pool
}

func NewTaskRepository(db *pgxpool.Pool) *TaskRepository {
	return &TaskRepository{db: db}
}

const taskWithOwnerColumns = `
	t.id, t.title, t.description, t.completed, t.created_at, t.user_id,
	u.id, u.name, u.email`

func scanTaskWithOwner(row pgx.Row) (*domain.Task, error) {
	var t domain.Task
	var owner domain.UserRef
	if err := row.Scan(
		&t.ID, &t.Title, &t.Description, &t.Completed, &t.CreatedAt, &t.OwnerID,
		&owner.ID, &owner.Name, &owner.Email,
	); err != nil {
		return nil, err
	}
	t.Owner = &owner
	return &t, nil
}

// List returns tasks matching the filter, newest first, each with the
// reduced owner view embedded. Nil filter fields put no constraint on
// their column; both set means both must match.
func (r *TaskRepository) List(ctx context.Context, filter domain.TaskFilter) ([]*domain.Task, error) {
	rows, err := r.db.Query(ctx, `
		SELECT`+taskWithOwnerColumns+`
		FROM tasks t
		JOIN users u ON u.id = t.user_id
		WHERE ($1::bigint IS NULL OR t.user_id = $1)
		  AND ($2::boolean IS NULL OR t.completed = $2)
		ORDER BY t.created_at DESC`,
		filter.OwnerID, filter.Completed,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	res := []*domain.Task{}
	for rows.Next() {
		t, err := scanTaskWithOwner(rows)
		if err != nil {
			return nil, err
		}
		res = append(res, t)
	}
	return res, rows.Err()
}

// GetByID returns one task with the reduced owner view.
func (r *TaskRepository) GetByID(ctx context.Context, id int64) (*domain.Task, error) {
	t, err := scanTaskWithOwner(r.db.QueryRow(ctx, `
		SELECT`+taskWithOwnerColumns+`
		FROM tasks t
		JOIN users u ON u.id = t.user_id
		WHERE t.id = $1`, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return t, nil
}

// Create inserts a task for an existing owner. The owner lookup doubles
// as the reduced view for the response; the FK constraint still backs
// it up, so a concurrent owner delete between the check and the insert
// fails the insert instead of orphaning the task.
func (r *TaskRepository) Create(ctx context.Context, title, description string, ownerID int64) (*domain.Task, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, domain.Invalidf("title is required")
	}
	if ownerID == 0 {
		return nil, domain.Invalidf("ownerId is required")
	}

	var owner domain.UserRef
	err := r.db.QueryRow(ctx,
		`SELECT id, name, email FROM users WHERE id = $1`, ownerID,
	).Scan(&owner.ID, &owner.Name, &owner.Email)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, domain.Invalidf("owner %d does not exist", ownerID)
		}
		return nil, err
	}

	t := domain.Task{
		Title:       title,
		Description: description,
		OwnerID:     ownerID,
		Owner:       &owner,
	}
	err = r.db.QueryRow(ctx,
		`INSERT INTO tasks (title, description, user_id) VALUES ($1, $2, $3)
		 RETURNING id, completed, created_at`,
		title, description, ownerID,
	).Scan(&t.ID, &t.Completed, &t.CreatedAt)
	if err != nil {
		if isForeignKeyViolation(err) {
			return nil, domain.Invalidf("owner %d does not exist", ownerID)
		}
		return nil, err
	}
	return &t, nil
}

// Update applies a partial update and returns the updated task with its
// owner. The owner column is never touched here.
func (r *TaskRepository) Update(ctx context.Context, id int64, patch domain.TaskPatch) (*domain.Task, error) {
	tag, err := r.db.Exec(ctx,
		`UPDATE tasks
		 SET title = COALESCE($2, title),
		     description = COALESCE($3, description),
		     completed = COALESCE($4, completed)
		 WHERE id = $1`,
		id, patch.Title, patch.Description, patch.Completed,
	)
	if err != nil {
		return nil, err
	}
	if tag.RowsAffected() == 0 {
		return nil, domain.ErrNotFound
	}
	return r.GetByID(ctx, id)
}

// Delete removes a task.
func (r *TaskRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM tasks WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
