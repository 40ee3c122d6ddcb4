package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/artem13815/prepai/pkg/apperr"
	"github.com/artem13815/prepai/pkg/resume"
)

// ResumeRepository stores resume reviews with the extracted text.
type ResumeRepository struct {
	pool *pgxpool.Pool
}

func NewResumeRepository(pool *pgxpool.Pool) *ResumeRepository {
	return &ResumeRepository{pool: pool}
}

func (r *ResumeRepository) Create(ctx context.Context, rv resume.Review) error {
	analysis, err := json.Marshal(rv.Analysis)
	if err != nil {
		return err
	}
	_, err = r.pool.Exec(ctx, `
INSERT INTO resume_reviews (id, user_id, resume_text, analysis, created_at)
VALUES ($1, $2, $3, $4, $5)
`, rv.ID, rv.UserID, rv.ResumeText, analysis, rv.CreatedAt)
	return err
}

func (r *ResumeRepository) ListByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]resume.Review, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := r.pool.Query(ctx, `
SELECT id, user_id, resume_text, analysis, created_at
FROM resume_reviews WHERE user_id = $3
ORDER BY created_at DESC
LIMIT $1 OFFSET $2
`, limit, offset, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	res := []resume.Review{}
	for rows.Next() {
		var rv resume.Review
		var analysis []byte
		if err := rows.Scan(&rv.ID, &rv.UserID, &rv.ResumeText, &analysis, &rv.CreatedAt); err != nil {
			return nil, err
		}
		if err := json.Unmarshal(analysis, &rv.Analysis); err != nil {
			return nil, err
		}
		rv.CreatedAt = rv.CreatedAt.UTC()
		res = append(res, rv)
	}
	return res, rows.Err()
}

func (r *ResumeRepository) LatestResumeText(ctx context.Context, userID uuid.UUID) (string, error) {
	var text string
	err := r.pool.QueryRow(ctx, `
SELECT resume_text FROM resume_reviews WHERE user_id = $1
ORDER BY created_at DESC LIMIT 1
`, userID).Scan(&text)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", fmt.Errorf("resume review %w", apperr.ErrNotFound)
		}
		return "", err
	}
	return text, nil
}
