package service

import (
	"context"
	"strings"

	"github.com/gradekeep/gradebook-backend/internal/model"
	"github.com/gradekeep/gradebook-backend/internal/repository"
)

// FieldErrors carries validation failures keyed by input field. All
// violations for one request are collected into a single map, never
// reported one at a time.
type FieldErrors map[string]string

func (e FieldErrors) Error() string { return "validation failed" }

// AccountService handles account creation (admin and plain), admin listing,
// and profiles.
type AccountService struct {
	users  *repository.UserRepository
	tokens *repository.TokenRepository
	auth   *AuthService
}

// NewAccountService creates a new AccountService.
func NewAccountService(users *repository.UserRepository, tokens *repository.TokenRepository, auth *AuthService) *AccountService {
	return &AccountService{users: users, tokens: tokens, auth: auth}
}

// CreateAdmin validates and persists a new admin account with all three
// flags set, and issues its bearer token. fields holds binding-level errors
// already found for this payload; service-level checks merge into it so the
// response names every violation at once.
//
// A duplicate insert that slips past the existence checks (concurrent
// creation) surfaces as repository.ErrDuplicateUser.
func (s *AccountService) CreateAdmin(ctx context.Context, req *model.CreateAdminRequest, fields FieldErrors) (*model.User, error) {
	user, err := s.buildUser(ctx, accountInput{
		Username:  req.Username,
		Email:     req.Email,
		Password:  req.Password,
		FirstName: req.FirstName,
		LastName:  req.LastName,
	}, fields, true)
	if err != nil {
		return nil, err
	}

	user.IsActive = true
	user.IsStaff = true
	user.IsSuperuser = true

	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}

	key, err := s.auth.GenerateTokenKey()
	if err != nil {
		return nil, err
	}
	if _, err := s.tokens.GetOrCreate(ctx, user.ID, key); err != nil {
		return nil, err
	}

	return user, nil
}

// Register validates and persists a plain, non-privileged account. Role
// flags in the payload are never honored and no token is issued.
func (s *AccountService) Register(ctx context.Context, req *model.RegisterRequest, fields FieldErrors) (*model.User, error) {
	user, err := s.buildUser(ctx, accountInput{
		Username:  req.Username,
		Email:     req.Email,
		Password:  req.Password,
		FirstName: req.FirstName,
		LastName:  req.LastName,
	}, fields, false)
	if err != nil {
		return nil, err
	}

	user.IsActive = true

	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// ListAdmins returns every staff or superuser account, role-annotated,
// sorted by username ascending.
func (s *AccountService) ListAdmins(ctx context.Context) ([]model.AdminListEntry, error) {
	users, err := s.users.ListAdmins(ctx)
	if err != nil {
		return nil, err
	}
	entries := make([]model.AdminListEntry, 0, len(users))
	for i := range users {
		entries = append(entries, model.NewAdminListEntry(&users[i]))
	}
	return entries, nil
}

// GetProfile returns the caller's own profile, fetched fresh so last_login
// is current even when the identity came from the token cache.
func (s *AccountService) GetProfile(ctx context.Context, userID int) (*model.Profile, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	p := model.NewProfile(user)
	return &p, nil
}

type accountInput struct {
	Username  string
	Email     string
	Password  string
	FirstName string
	LastName  string
}

// buildUser runs the shared account validation: trimmed names, and
// username/email uniqueness (skipped for a field that already failed
// binding, so the map carries one message per field).
func (s *AccountService) buildUser(ctx context.Context, in accountInput, fields FieldErrors, namesRequired bool) (*model.User, error) {
	if fields == nil {
		fields = FieldErrors{}
	}

	username := strings.TrimSpace(in.Username)
	email := strings.ToLower(strings.TrimSpace(in.Email))
	firstName := strings.TrimSpace(in.FirstName)
	lastName := strings.TrimSpace(in.LastName)

	if namesRequired {
		if firstName == "" && fields["first_name"] == "" {
			fields["first_name"] = "First name is required."
		}
		if lastName == "" && fields["last_name"] == "" {
			fields["last_name"] = "Last name is required."
		}
	}

	if fields["username"] == "" && username != "" {
		exists, err := s.users.UsernameExists(ctx, username)
		if err != nil {
			return nil, err
		}
		if exists {
			fields["username"] = "A user with this username already exists."
		}
	}
	if fields["email"] == "" && email != "" {
		exists, err := s.users.EmailExists(ctx, email)
		if err != nil {
			return nil, err
		}
		if exists {
			fields["email"] = "A user with this email already exists."
		}
	}

	if len(fields) > 0 {
		return nil, fields
	}

	hash, err := s.auth.HashPassword(in.Password)
	if err != nil {
		return nil, err
	}

	return &model.User{
		Username:     username,
		Email:        email,
		PasswordHash: hash,
		FirstName:    firstName,
		LastName:     lastName,
	}, nil
}
