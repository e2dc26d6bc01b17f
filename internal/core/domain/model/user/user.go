package user

import (
	"errors"
	"time"

	"profast/internal/core/domain/model/kernel"
)

var ErrUserIsNotConstructed = errors.New("User must be created via NewUser constructor")

// User is an account identified by its unique email. Users are created once per
// email; repeated sign-ins do not create new records.
type User struct {
	id        kernel.UUID
	email     kernel.Email
	name      string
	photoURL  string
	role      Role
	createdAt time.Time
	lastLogIn time.Time

	isConstructed bool
}

// NewUser creates a user with the default RoleUser.
func NewUser(id kernel.UUID, email kernel.Email, name, photoURL string, createdAt time.Time) (*User, error) {
	if err := errors.Join(id.Validate(), email.Validate()); err != nil {
		return nil, err
	}

	return &User{
		id:            id,
		email:         email,
		name:          name,
		photoURL:      photoURL,
		role:          RoleUser,
		createdAt:     createdAt.UTC(),
		lastLogIn:     createdAt.UTC(),
		isConstructed: true,
	}, nil
}

// RestoreUser rebuilds a user from persistence.
func RestoreUser(
	id kernel.UUID,
	email kernel.Email,
	name, photoURL string,
	role Role,
	createdAt, lastLogIn time.Time,
) (*User, error) {
	if err := errors.Join(id.Validate(), email.Validate(), role.Validate()); err != nil {
		return nil, err
	}

	return &User{
		id:            id,
		email:         email,
		name:          name,
		photoURL:      photoURL,
		role:          role,
		createdAt:     createdAt,
		lastLogIn:     lastLogIn,
		isConstructed: true,
	}, nil
}

func (u *User) Validate() error {
	if u == nil || !u.isConstructed {
		return ErrUserIsNotConstructed
	}
	return nil
}

func (u *User) ID() kernel.UUID      { return u.id }
func (u *User) Email() kernel.Email  { return u.email }
func (u *User) Name() string         { return u.name }
func (u *User) PhotoURL() string     { return u.photoURL }
func (u *User) Role() Role           { return u.role }
func (u *User) CreatedAt() time.Time { return u.createdAt }
func (u *User) LastLogIn() time.Time { return u.lastLogIn }

// ChangeRole sets any persisted role. It reports whether the role actually changed.
func (u *User) ChangeRole(role Role) (bool, error) {
	if err := role.Validate(); err != nil {
		return false, err
	}
	if u.role == role {
		return false, nil
	}
	u.role = role
	return true, nil
}

// PromoteToRider gives the user the rider role after an approved application.
// Admins keep their role. It reports whether the role changed.
func (u *User) PromoteToRider() bool {
	if u.role != RoleUser {
		return false
	}
	u.role = RoleRider
	return true
}
