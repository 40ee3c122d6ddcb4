package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/artem13815/prepai/pkg/auth"
	"github.com/artem13815/prepai/pkg/progress"
)

// UserRepository implements auth.UserRepository and progress.StreakStore.
type UserRepository struct {
	pool *pgxpool.Pool
}

var (
	_ auth.UserRepository  = (*UserRepository)(nil)
	_ progress.StreakStore = (*UserRepository)(nil)
)

func NewUserRepository(pool *pgxpool.Pool) *UserRepository {
	return &UserRepository{pool: pool}
}

func (r *UserRepository) Create(ctx context.Context, user auth.User) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO users (id, name, email, password_hash, current_streak, last_activity_at, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`, user.ID, user.Name, auth.NormalizeEmail(user.Email), user.PasswordHash, user.CurrentStreak, user.LastActivityAt, user.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // unique_violation
			return auth.ErrUserAlreadyExists
		}
		return err
	}
	return nil
}

const userColumns = `id, name, email, password_hash, current_streak, last_activity_at, created_at`

func scanUser(row pgx.Row) (auth.User, error) {
	var user auth.User
	if err := row.Scan(&user.ID, &user.Name, &user.Email, &user.PasswordHash,
		&user.CurrentStreak, &user.LastActivityAt, &user.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return auth.User{}, auth.ErrNotFound
		}
		return auth.User{}, err
	}
	user.CreatedAt = user.CreatedAt.UTC()
	return user, nil
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (auth.User, error) {
	return scanUser(r.pool.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE email = $1`, auth.NormalizeEmail(email)))
}

func (r *UserRepository) GetByID(ctx context.Context, id uuid.UUID) (auth.User, error) {
	return scanUser(r.pool.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id))
}

func (r *UserRepository) GetStreak(ctx context.Context, userID uuid.UUID) (progress.State, error) {
	var st progress.State
	err := r.pool.QueryRow(ctx, `
		SELECT current_streak, last_activity_at FROM users WHERE id = $1
	`, userID).Scan(&st.CurrentStreak, &st.LastActivityAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return progress.State{}, auth.ErrNotFound
		}
		return progress.State{}, err
	}
	return st, nil
}

// CompareAndSetStreak is a single conditional UPDATE; zero affected rows
// means another request changed the streak first.
func (r *UserRepository) CompareAndSetStreak(ctx context.Context, userID uuid.UUID, prev, next progress.State) (bool, error) {
	var nextAt *time.Time
	if next.LastActivityAt != nil {
		t := next.LastActivityAt.UTC()
		nextAt = &t
	}
	tag, err := r.pool.Exec(ctx, `
		UPDATE users
		SET current_streak = $2, last_activity_at = $3
		WHERE id = $1
		  AND current_streak = $4
		  AND last_activity_at IS NOT DISTINCT FROM $5::timestamptz
	`, userID, next.CurrentStreak, nextAt, prev.CurrentStreak, prev.LastActivityAt)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}
