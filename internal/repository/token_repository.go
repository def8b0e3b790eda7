package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/gradekeep/gradebook-backend/internal/model"
)

// TokenRepository handles bearer token storage. Each user holds at most one
// live token; the UNIQUE constraint on user_id enforces that invariant.
type TokenRepository struct {
	pool *pgxpool.Pool
}

// NewTokenRepository creates a new TokenRepository.
func NewTokenRepository(pool *pgxpool.Pool) *TokenRepository {
	return &TokenRepository{pool: pool}
}

// GetOrCreate returns the user's existing token or inserts newKey as their
// token. The upsert makes concurrent logins converge on a single row.
func (r *TokenRepository) GetOrCreate(ctx context.Context, userID int, newKey string) (*model.Token, error) {
	t := &model.Token{}
	err := r.pool.QueryRow(ctx,
		`INSERT INTO auth_tokens (key, user_id)
		 VALUES ($1, $2)
		 ON CONFLICT (user_id) DO UPDATE SET user_id = EXCLUDED.user_id
		 RETURNING key, user_id, created`,
		newKey, userID,
	).Scan(&t.Key, &t.UserID, &t.Created)
	if err != nil {
		return nil, err
	}
	return t, nil
}

// ResolveUser returns the user a token key belongs to.
// Returns pgx.ErrNoRows for an unknown key.
func (r *TokenRepository) ResolveUser(ctx context.Context, key string) (*model.User, error) {
	return scanUser(r.pool.QueryRow(ctx,
		`SELECT u.id, u.username, u.email, u.password_hash, u.first_name, u.last_name,
		        u.is_active, u.is_staff, u.is_superuser, u.date_joined, u.last_login
		 FROM auth_tokens t
		 JOIN users u ON u.id = t.user_id
		 WHERE t.key = $1`, key))
}

// DeleteByUser removes the user's token, if any.
func (r *TokenRepository) DeleteByUser(ctx context.Context, userID int) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM auth_tokens WHERE user_id = $1`, userID)
	return err
}
