package service

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/gradekeep/gradebook-backend/internal/config"
	"github.com/gradekeep/gradebook-backend/internal/model"
	"github.com/gradekeep/gradebook-backend/internal/repository"
)

// Common auth errors.
var (
	// ErrInvalidCredentials is deliberately undifferentiated: unknown
	// username and wrong password look identical to the caller.
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUnauthenticated    = errors.New("unauthenticated")
)

// dummyHash is compared against when the username does not exist, so a
// login attempt costs one bcrypt round either way.
var dummyHash, _ = bcrypt.GenerateFromPassword([]byte("credential-timing-pad"), bcrypt.MinCost)

// revokedTokenSentinel is the cache value written at logout. It pins the
// key for the cache TTL so a resolve that read the token row just before
// revocation cannot re-populate the cache with a live user.
const revokedTokenSentinel = "revoked"

// AuthService handles credentials, opaque bearer tokens, and identity
// resolution. Tokens live in Postgres (one per user); Redis fronts the
// token→user lookup with a short TTL.
type AuthService struct {
	cfg    *config.Config
	rdb    *redis.Client
	users  *repository.UserRepository
	tokens *repository.TokenRepository
	log    zerolog.Logger
}

// NewAuthService creates a new AuthService.
func NewAuthService(
	cfg *config.Config,
	rdb *redis.Client,
	users *repository.UserRepository,
	tokens *repository.TokenRepository,
	log zerolog.Logger,
) *AuthService {
	return &AuthService{cfg: cfg, rdb: rdb, users: users, tokens: tokens, log: log}
}

// HashPassword hashes a password with the configured bcrypt cost.
func (s *AuthService) HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.cfg.BcryptCost)
	return string(hash), err
}

// CheckPassword compares a plaintext password against a bcrypt hash.
func (s *AuthService) CheckPassword(hash, password string) error {
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)); err != nil {
		return ErrInvalidCredentials
	}
	return nil
}

// GenerateTokenKey returns a fresh opaque token: 20 random bytes, hex
// encoded, 40 characters.
func (s *AuthService) GenerateTokenKey() (string, error) {
	buf := make([]byte, 20)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("read random: %w", err)
	}
	return hex.EncodeToString(buf), nil
}

// Login validates a username+password pair and returns the user's token,
// creating one if none exists. Inactive accounts cannot log in.
func (s *AuthService) Login(ctx context.Context, username, password string) (*model.Token, *model.User, error) {
	user, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			// Burn a bcrypt round so unknown usernames are not
			// distinguishable by response time.
			_ = bcrypt.CompareHashAndPassword(dummyHash, []byte(password))
			return nil, nil, ErrInvalidCredentials
		}
		return nil, nil, err
	}

	if err := s.CheckPassword(user.PasswordHash, password); err != nil {
		return nil, nil, ErrInvalidCredentials
	}
	if !user.IsActive {
		return nil, nil, ErrInvalidCredentials
	}

	key, err := s.GenerateTokenKey()
	if err != nil {
		return nil, nil, err
	}

	token, err := s.tokens.GetOrCreate(ctx, user.ID, key)
	if err != nil {
		return nil, nil, err
	}

	now := time.Now().UTC()
	if err := s.users.UpdateLastLogin(ctx, user.ID, now); err != nil {
		s.log.Warn().Err(err).Int("user_id", user.ID).Msg("Failed to stamp last_login")
	} else {
		user.LastLogin = &now
	}

	return token, user, nil
}

// Resolve maps a presented bearer token to its user, or fails with
// ErrUnauthenticated. Hits the Redis cache first; only active users are
// ever cached.
func (s *AuthService) Resolve(ctx context.Context, key string) (*model.User, error) {
	cacheKey := config.CacheKey.AuthTokenKey(key)

	if cached, err := s.rdb.Get(ctx, cacheKey).Result(); err == nil {
		user, err := decodeCachedUser(cached)
		if err == nil {
			return user, nil
		}
		if errors.Is(err, ErrUnauthenticated) {
			return nil, ErrUnauthenticated
		}
	} else if !errors.Is(err, redis.Nil) {
		s.log.Warn().Err(err).Msg("Token cache read failed, falling back to database")
	}

	user, err := s.tokens.ResolveUser(ctx, key)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrUnauthenticated
		}
		return nil, err
	}
	if !user.IsActive {
		return nil, ErrUnauthenticated
	}

	// SetNX so this fill never clobbers a revocation tombstone written by a
	// logout that raced this resolve.
	if raw, err := json.Marshal(user); err == nil {
		if err := s.rdb.SetNX(ctx, cacheKey, raw, s.cfg.TokenCacheTTL).Err(); err != nil {
			s.log.Warn().Err(err).Msg("Token cache write failed")
		}
	}

	return user, nil
}

// decodeCachedUser interprets a cached token entry: the revocation sentinel
// fails with ErrUnauthenticated, anything else must be a user JSON blob.
func decodeCachedUser(payload string) (*model.User, error) {
	if payload == revokedTokenSentinel {
		return nil, ErrUnauthenticated
	}
	user := &model.User{}
	if err := json.Unmarshal([]byte(payload), user); err != nil {
		return nil, err
	}
	return user, nil
}

// Logout revokes the user's token. The row is deleted and the cache key is
// overwritten with a tombstone rather than deleted: a plain Del would let a
// concurrent resolve that already read the row re-populate the cache and
// keep the revoked token alive for the TTL window.
func (s *AuthService) Logout(ctx context.Context, userID int, key string) error {
	if err := s.tokens.DeleteByUser(ctx, userID); err != nil {
		return err
	}
	cacheKey := config.CacheKey.AuthTokenKey(key)
	if err := s.rdb.Set(ctx, cacheKey, revokedTokenSentinel, s.cfg.TokenCacheTTL).Err(); err != nil {
		s.log.Warn().Err(err).Msg("Token cache revocation write failed")
	}
	return nil
}
