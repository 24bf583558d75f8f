package repository

import (
	"context"
	"strings"

	"taskboard/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type UserRepository struct {
	db *pgxpool.Pool
}

func NewUserRepository(db *pgxpool.Pool) *UserRepository {
	return &UserRepository{db: db}
}

// ListAll returns every user with their tasks embedded. Tasks are
// fetched in one pass and grouped in memory to avoid a query per user.
func (r *UserRepository) ListAll(ctx context.Context) ([]*domain.User, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, name, email, created_at FROM users ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var res []*domain.User
	byID := make(map[int64]*domain.User)
	for rows.Next() {
		var u domain.User
		if err := rows.Scan(&u.ID, &u.Name, &u.Email, &u.CreatedAt); err != nil {
			return nil, err
		}
		u.Tasks = []*domain.Task{}
		res = append(res, &u)
		byID[u.ID] = &u
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	taskRows, err := r.db.Query(ctx,
		`SELECT id, title, description, completed, created_at, user_id
		 FROM tasks
		 ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer taskRows.Close()

	for taskRows.Next() {
		var t domain.Task
		if err := taskRows.Scan(&t.ID, &t.Title, &t.Description, &t.Completed, &t.CreatedAt, &t.OwnerID); err != nil {
			return nil, err
		}
		if owner, ok := byID[t.OwnerID]; ok {
			owner.Tasks = append(owner.Tasks, &t)
		}
	}
	return res, taskRows.Err()
}

// GetByID returns one user with their tasks ordered newest first.
func (r *UserRepository) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	var u domain.User
	err := r.db.QueryRow(ctx,
		`SELECT id, name, email, created_at FROM users WHERE id = $1`, id,
	).Scan(&u.ID, &u.Name, &u.Email, &u.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}

	u.Tasks = []*domain.Task{}
	rows, err := r.db.Query(ctx,
		`SELECT id, title, description, completed, created_at, user_id
		 FROM tasks
		 WHERE user_id = $1
		 ORDER BY created_at DESC`, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var t domain.Task
		if err := rows.Scan(&t.ID, &t.Title, &t.Description, &t.Completed, &t.CreatedAt, &t.OwnerID); err != nil {
			return nil, err
		}
		u.Tasks = append(u.Tasks, &t)
	}
	return &u, rows.Err()
}

// Create inserts a new user. Email uniqueness is enforced by the store;
// a duplicate surfaces as a conflict, never as a raw SQL error.
func (r *UserRepository) Create(ctx context.Context, name, email string) (*domain.User, error) {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)
	if name == "" {
		return nil, domain.Invalidf("name is required")
	}
	if email == "" {
		return nil, domain.Invalidf("email is required")
	}

	u := domain.User{Name: name, Email: email, Tasks: []*domain.Task{}}
	err := r.db.QueryRow(ctx,
		`INSERT INTO users (name, email) VALUES ($1, $2) RETURNING id, created_at`,
		name, email,
	).Scan(&u.ID, &u.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, domain.Conflictf("email already in use")
		}
		return nil, err
	}
	return &u, nil
}

// Update applies a partial update and returns the updated user with
// their tasks embedded, same as a read.
func (r *UserRepository) Update(ctx context.Context, id int64, patch domain.UserPatch) (*domain.User, error) {
	var updatedID int64
	err := r.db.QueryRow(ctx,
		`UPDATE users
		 SET name = COALESCE($2, name), email = COALESCE($3, email)
		 WHERE id = $1
		 RETURNING id`,
		id, patch.Name, patch.Email,
	).Scan(&updatedID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, domain.ErrNotFound
		}
		if isUniqueViolation(err) {
			return nil, domain.Conflictf("email already in use")
		}
		return nil, err
	}
	return r.GetByID(ctx, updatedID)
}

// Delete removes a user. The tasks FK is ON DELETE RESTRICT, so a user
// who still owns tasks cannot be deleted; that is reported as a
// conflict rather than silently orphaning data.
func (r *UserRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.Conflictf("user still owns tasks")
		}
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
