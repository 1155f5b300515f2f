package sqlite

import (
	"context"

	"github.com/aussiebroadwan/collab/internal/admin/domain"
)

type accessTokensRepo struct {
	db dbtx
}

func (r *accessTokensRepo) CreateAccessToken(ctx context.Context, t domain.AccessToken) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO access_tokens (id, user_id, token_hash) VALUES (?, ?, ?)`,
		t.ID, t.UserID, t.TokenHash)
	return mapConstraint(err)
}

func (r *accessTokensRepo) ListByUser(ctx context.Context, userID string) ([]domain.AccessToken, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, user_id, token_hash, created_at FROM access_tokens
		 WHERE user_id = ? ORDER BY id DESC`,
		userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tokens := []domain.AccessToken{}
	for rows.Next() {
		var t domain.AccessToken
		if err := rows.Scan(&t.ID, &t.UserID, &t.TokenHash, &t.CreatedAt); err != nil {
			return nil, err
		}
		tokens = append(tokens, t)
	}
	return tokens, rows.Err()
}
