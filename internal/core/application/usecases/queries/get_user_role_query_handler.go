package queries

import (
	"context"
	"database/sql"
	"errors"

	"profast/internal/core/domain/model/user"

	"gorm.io/gorm"
)

// GetUserRoleQueryHandler runs GetUserRoleQuery.
type GetUserRoleQueryHandler struct {
	db *gorm.DB
}

func NewGetUserRoleQueryHandler(db *gorm.DB) GetUserRoleQueryHandler {
	return GetUserRoleQueryHandler{db: db}
}

// Handle returns user.Guest for an email without a user record.
func (h GetUserRoleQueryHandler) Handle(ctx context.Context, query GetUserRoleQuery) (user.Role, error) {
	if err := query.Validate(); err != nil {
		return user.Guest, err
	}

	var role string
	err := h.db.WithContext(ctx).
		Raw(`SELECT role FROM users WHERE email = ?`, query.Email().String()).
		Row().Scan(&role)
	if errors.Is(err, sql.ErrNoRows) {
		return user.Guest, nil
	}
	if err != nil {
		return user.Guest, err
	}

	return user.ParseRole(role)
}
