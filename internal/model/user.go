package model

import "time"

// User represents an account in the credential store. Accounts double as
// API callers: plain users, staff admins, and superusers are all rows here,
// distinguished only by flags.
type User struct {
	ID           int        `json:"id"`
	Username     string     `json:"username"`
	Email        string     `json:"email"`
	PasswordHash string     `json:"-"`
	FirstName    string     `json:"first_name"`
	LastName     string     `json:"last_name"`
	IsActive     bool       `json:"is_active"`
	IsStaff      bool       `json:"is_staff"`
	IsSuperuser  bool       `json:"is_superuser"`
	DateJoined   time.Time  `json:"date_joined"`
	LastLogin    *time.Time `json:"last_login"`
}

// Role returns the derived role label exposed by the profile and admin list.
func (u *User) Role() string {
	switch {
	case u.IsSuperuser:
		return "superuser"
	case u.IsStaff:
		return "admin"
	default:
		return "user"
	}
}

// IsAdmin reports whether the user holds the admin capability.
func (u *User) IsAdmin() bool {
	return u.IsStaff || u.IsSuperuser
}

// Token is an opaque bearer token bound one-to-one to a user.
type Token struct {
	Key     string    `json:"key"`
	UserID  int       `json:"user_id"`
	Created time.Time `json:"created"`
}

// LoginRequest is the payload for authentication.
type LoginRequest struct {
	Username string `json:"username" binding:"required,max=150"`
	Password string `json:"password" binding:"required,max=128"`
}

// CreateAdminRequest is the payload for creating an admin account.
// Uniqueness of username/email is checked in the service so that all field
// errors come back in a single response.
type CreateAdminRequest struct {
	Username  string `json:"username" binding:"required,min=3,max=150,username"`
	Email     string `json:"email" binding:"required,email,max=255"`
	Password  string `json:"password" binding:"required,min=8,max=128"`
	FirstName string `json:"first_name" binding:"required,max=150"`
	LastName  string `json:"last_name" binding:"required,max=150"`
}

// RegisterRequest is the payload for admin-driven account registration.
// No role flags are accepted: new registrants are always plain users.
type RegisterRequest struct {
	Username  string `json:"username" binding:"required,min=3,max=150,username"`
	Email     string `json:"email" binding:"required,email,max=255"`
	Password  string `json:"password" binding:"required,min=8,max=128"`
	FirstName string `json:"first_name" binding:"omitempty,max=150"`
	LastName  string `json:"last_name" binding:"omitempty,max=150"`
}

// AdminSummary is the admin-creation response body (password hash never echoed).
type AdminSummary struct {
	ID          int       `json:"id"`
	Username    string    `json:"username"`
	Email       string    `json:"email"`
	FirstName   string    `json:"first_name"`
	LastName    string    `json:"last_name"`
	IsStaff     bool      `json:"is_staff"`
	IsSuperuser bool      `json:"is_superuser"`
	DateJoined  time.Time `json:"date_joined"`
}

// AdminListEntry is one row of the admin list, annotated with the role label.
type AdminListEntry struct {
	ID          int        `json:"id"`
	Username    string     `json:"username"`
	Email       string     `json:"email"`
	FirstName   string     `json:"first_name"`
	LastName    string     `json:"last_name"`
	IsStaff     bool       `json:"is_staff"`
	IsSuperuser bool       `json:"is_superuser"`
	IsActive    bool       `json:"is_active"`
	DateJoined  time.Time  `json:"date_joined"`
	LastLogin   *time.Time `json:"last_login"`
	Role        string     `json:"role"`
}

// Profile is the current-user response body.
type Profile struct {
	ID          int        `json:"id"`
	Username    string     `json:"username"`
	Email       string     `json:"email"`
	FirstName   string     `json:"first_name"`
	LastName    string     `json:"last_name"`
	IsStaff     bool       `json:"is_staff"`
	IsSuperuser bool       `json:"is_superuser"`
	Role        string     `json:"role"`
	DateJoined  time.Time  `json:"date_joined"`
	LastLogin   *time.Time `json:"last_login"`
}

// NewAdminSummary builds the creation summary from a stored user.
func NewAdminSummary(u *User) AdminSummary {
	return AdminSummary{
		ID:          u.ID,
		Username:    u.Username,
		Email:       u.Email,
		FirstName:   u.FirstName,
		LastName:    u.LastName,
		IsStaff:     u.IsStaff,
		IsSuperuser: u.IsSuperuser,
		DateJoined:  u.DateJoined,
	}
}

// NewAdminListEntry builds a list row from a stored user.
func NewAdminListEntry(u *User) AdminListEntry {
	role := "admin"
	if u.IsSuperuser {
		role = "superuser"
	}
	return AdminListEntry{
		ID:          u.ID,
		Username:    u.Username,
		Email:       u.Email,
		FirstName:   u.FirstName,
		LastName:    u.LastName,
		IsStaff:     u.IsStaff,
		IsSuperuser: u.IsSuperuser,
		IsActive:    u.IsActive,
		DateJoined:  u.DateJoined,
		LastLogin:   u.LastLogin,
		Role:        role,
	}
}

// NewProfile builds the profile body from a stored user.
func NewProfile(u *User) Profile {
	return Profile{
		ID:          u.ID,
		Username:    u.Username,
		Email:       u.Email,
		FirstName:   u.FirstName,
		LastName:    u.LastName,
		IsStaff:     u.IsStaff,
		IsSuperuser: u.IsSuperuser,
		Role:        u.Role(),
		DateJoined:  u.DateJoined,
		LastLogin:   u.LastLogin,
	}
}
