package domain

import (
	"context"
)

const (
	RoleAdmin      = "admin"
	RoleInstructor = "instructor"
	RoleCadet      = "cadet"
)

// EmailDomain is appended to the normalized phone to derive the
// placeholder email each provisioned user gets.
const EmailDomain = "youwilldrive.alt"

// User mirrors a record of the users table. ID carries the full
// "table:id" record reference.
type User struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Surname    string `json:"surname"`
	Patronymic string `json:"patronymic,omitempty"`
	Phone      string `json:"phone"`
	Email      string `json:"email,omitempty"`
	Avatar     string `json:"avatar,omitempty"`
	Role       string `json:"role,omitempty"` // resolved via of_role traversal
}

// FullName is the display name used in sessions and chat summaries.
func (u User) FullName() string {
	return u.Name + " " + u.Surname
}

// NewUser is the provisioning input. Phone arrives in arbitrary
// format and is normalized before storage.
type NewUser struct {
	FirstName  string
	LastName   string
	Patronymic string
	Phone      string
	Password   string
	Role       string
}

// UserUpdate holds the editable identity fields. An empty Password
// keeps the stored hash.
type UserUpdate struct {
	FirstName  string
	LastName   string
	Patronymic string
	Phone      string
	Password   string
}

type UserRepository interface {
	GetAllUsers(ctx context.Context) ([]User, error)
	// ProvisionUser runs the multi-step create sequence: user node,
	// of_role relation, role-specific profile. Not atomic; the only
	// compensation is deleting the user when the role lookup misses.
	ProvisionUser(ctx context.Context, input NewUser) (*User, error)
	UpdateUser(ctx context.Context, id string, upd UserUpdate) (*User, error)
	// DeleteUser cascades role-specific records before removing the
	// user node itself.
	DeleteUser(ctx context.Context, id string) error
}

type UserUseCase interface {
	GetAllUsers(ctx context.Context) ([]User, error)
	ProvisionUser(ctx context.Context, input NewUser) (*User, error)
	UpdateUser(ctx context.Context, id string, upd UserUpdate) (*User, error)
	DeleteUser(ctx context.Context, id string) error
}
