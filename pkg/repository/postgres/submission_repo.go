package postgres

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/artem13815/prepai/pkg/submission"
)

type SubmissionRepository struct {
	pool *pgxpool.Pool
}

func NewSubmissionRepository(pool *pgxpool.Pool) *SubmissionRepository {
	return &SubmissionRepository{pool: pool}
}

func (r *SubmissionRepository) Create(ctx context.Context, s submission.Submission) error {
	feedback, err := json.Marshal(s.Feedback)
	if err != nil {
		return err
	}
	_, err = r.pool.Exec(ctx, `
INSERT INTO dsa_submissions (id, user_id, problem_title, problem_description, topic, language, code, feedback, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
`, s.ID, s.UserID, s.Problem.Title, s.Problem.Description, s.Topic, string(s.Language), s.Code, feedback, s.CreatedAt)
	return err
}

func (r *SubmissionRepository) ListByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]submission.Submission, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := r.pool.Query(ctx, `
SELECT id, user_id, problem_title, problem_description, topic, language, code, feedback, created_at
FROM dsa_submissions WHERE user_id = $3
ORDER BY created_at DESC
LIMIT $1 OFFSET $2
`, limit, offset, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	res := []submission.Submission{}
	for rows.Next() {
		var s submission.Submission
		var lang string
		var feedback []byte
		if err := rows.Scan(&s.ID, &s.UserID, &s.Problem.Title, &s.Problem.Description, &s.Topic, &lang, &s.Code, &feedback, &s.CreatedAt); err != nil {
			return nil, err
		}
		if err := json.Unmarshal(feedback, &s.Feedback); err != nil {
			return nil, err
		}
		s.Language = submission.Language(lang)
		s.CreatedAt = s.CreatedAt.UTC()
		res = append(res, s)
	}
	return res, rows.Err()
}
