package service

import (
	"errors"
	"regexp"
	"testing"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/gradekeep/gradebook-backend/internal/config"
)

func newTestAuthService() *AuthService {
	// MinCost keeps hashing fast; these tests never touch Postgres or Redis.
	cfg := &config.Config{BcryptCost: bcrypt.MinCost}
	return NewAuthService(cfg, nil, nil, nil, zerolog.Nop())
}

func TestGenerateTokenKey(t *testing.T) {
	s := newTestAuthService()

	key, err := s.GenerateTokenKey()
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if len(key) != 40 {
		t.Errorf("key length = %d, want 40", len(key))
	}
	if !regexp.MustCompile(`^[0-9a-f]{40}$`).MatchString(key) {
		t.Errorf("key %q is not lowercase hex", key)
	}

	other, err := s.GenerateTokenKey()
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if key == other {
		t.Error("two generated keys collided")
	}
}

func TestPasswordRoundtrip(t *testing.T) {
	s := newTestAuthService()

	hash, err := s.HashPassword("correct horse battery")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if hash == "correct horse battery" {
		t.Fatal("password stored in plaintext")
	}

	if err := s.CheckPassword(hash, "correct horse battery"); err != nil {
		t.Errorf("valid password rejected: %v", err)
	}
	if err := s.CheckPassword(hash, "wrong password"); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("wrong password: err = %v, want ErrInvalidCredentials", err)
	}
}

func TestDecodeCachedUser(t *testing.T) {
	t.Run("revocation sentinel", func(t *testing.T) {
		user, err := decodeCachedUser(revokedTokenSentinel)
		if !errors.Is(err, ErrUnauthenticated) {
			t.Errorf("err = %v, want ErrUnauthenticated", err)
		}
		if user != nil {
			t.Error("sentinel must never yield a user")
		}
	})

	t.Run("cached user", func(t *testing.T) {
		user, err := decodeCachedUser(`{"id":7,"username":"alice","is_staff":true}`)
		if err != nil {
			t.Fatalf("decode: %v", err)
		}
		if user.ID != 7 || user.Username != "alice" || !user.IsStaff {
			t.Errorf("decoded user = %+v", user)
		}
	})

	t.Run("corrupt entry", func(t *testing.T) {
		_, err := decodeCachedUser("{not json")
		if err == nil {
			t.Fatal("expected error")
		}
		// A corrupt entry falls back to the database, it is not a denial.
		if errors.Is(err, ErrUnauthenticated) {
			t.Error("corrupt entry must not read as a revocation")
		}
	})
}

func TestHashPasswordSalted(t *testing.T) {
	s := newTestAuthService()

	h1, err := s.HashPassword("samepassword")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	h2, err := s.HashPassword("samepassword")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if h1 == h2 {
		t.Error("identical hashes for the same password, bcrypt salt missing")
	}
}
