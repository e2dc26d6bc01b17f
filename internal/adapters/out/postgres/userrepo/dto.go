// Package userrepo persists user accounts in PostgreSQL.
package userrepo

import (
	"time"

	"profast/internal/core/domain/model/kernel"
	"profast/internal/core/domain/model/user"

	"github.com/google/uuid"
)

// UserDTO is the row of the users table. The unique index on email is what makes
// concurrent sign-ups of the same identity produce a single row.
type UserDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Email     string    `gorm:"uniqueIndex;not null"`
	Name      string
	PhotoURL  string
	Role      string    `gorm:"index;not null"`
	CreatedAt time.Time `gorm:"not null;autoCreateTime:false"`
	LastLogIn time.Time `gorm:"column:last_log_in"`
}

func (UserDTO) TableName() string {
	return "users"
}

func fromDomain(u *user.User) UserDTO {
	return UserDTO{
		ID:        u.ID().Bytes(),
		Email:     u.Email().String(),
		Name:      u.Name(),
		PhotoURL:  u.PhotoURL(),
		Role:      u.Role().String(),
		CreatedAt: u.CreatedAt(),
		LastLogIn: u.LastLogIn(),
	}
}

// ToDomain rebuilds a user from a row.
func ToDomain(dto UserDTO) (*user.User, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	email, err := kernel.NewEmail(dto.Email)
	if err != nil {
		return nil, err
	}
	role, err := user.ParseRole(dto.Role)
	if err != nil {
		return nil, err
	}

	return user.RestoreUser(id, email, dto.Name, dto.PhotoURL, role, dto.CreatedAt.UTC(), dto.LastLogIn.UTC())
}
