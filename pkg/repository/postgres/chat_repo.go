package postgres

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/artem13815/prepai/pkg/interview"
)

// ChatRepository stores completed interview transcripts as one JSONB document each.
type ChatRepository struct {
	pool *pgxpool.Pool
}

func NewChatRepository(pool *pgxpool.Pool) *ChatRepository {
	return &ChatRepository{pool: pool}
}

func (r *ChatRepository) Create(ctx context.Context, s interview.Session) error {
	messages, err := json.Marshal(s.Messages)
	if err != nil {
		return err
	}
	_, err = r.pool.Exec(ctx, `
INSERT INTO chat_sessions (id, user_id, messages, target_role, target_company, created_at)
VALUES ($1, $2, $3, $4, $5, $6)
`, s.ID, s.UserID, messages, s.TargetRole, s.TargetCompany, s.CreatedAt)
	return err
}

func (r *ChatRepository) ListByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]interview.Session, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := r.pool.Query(ctx, `
SELECT id, user_id, messages, target_role, target_company, created_at
FROM chat_sessions WHERE user_id = $3
ORDER BY created_at DESC
LIMIT $1 OFFSET $2
`, limit, offset, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	res := []interview.Session{}
	for rows.Next() {
		var s interview.Session
		var messages []byte
		if err := rows.Scan(&s.ID, &s.UserID, &messages, &s.TargetRole, &s.TargetCompany, &s.CreatedAt); err != nil {
			return nil, err
		}
		if err := json.Unmarshal(messages, &s.Messages); err != nil {
			return nil, err
		}
		s.CreatedAt = s.CreatedAt.UTC()
		res = append(res, s)
	}
	return res, rows.Err()
}
