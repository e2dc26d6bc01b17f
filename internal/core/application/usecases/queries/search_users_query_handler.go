package queries

import (
	"context"
	"strings"
	"time"

	"profast/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserView is the read model of a user account.
type UserView struct {
	ID        kernel.UUID
	Email     string
	Name      string
	PhotoURL  string
	Role      string
	CreatedAt time.Time
	LastLogIn time.Time
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// SearchUsersQueryHandler runs SearchUsersQuery.
type SearchUsersQueryHandler struct {
	db *gorm.DB
}

func NewSearchUsersQueryHandler(db *gorm.DB) SearchUsersQueryHandler {
	return SearchUsersQueryHandler{db: db}
}

// Handle returns at most SearchUsersLimit users ordered by email. The fragment is
// matched literally: LIKE wildcards in it are escaped.
func (h SearchUsersQueryHandler) Handle(ctx context.Context, query SearchUsersQuery) ([]UserView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	pattern := "%" + likeEscaper.Replace(query.Fragment()) + "%"
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT id, email, name, photo_url, role, created_at, last_log_in
		FROM users
		WHERE email ILIKE ?
		ORDER BY email
		LIMIT ?`, pattern, SearchUsersLimit).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	users := make([]UserView, 0)
	for rows.Next() {
		var (
			v  UserView
			id uuid.UUID
		)
		if err = rows.Scan(&id, &v.Email, &v.Name, &v.PhotoURL, &v.Role, &v.CreatedAt, &v.LastLogIn); err != nil {
			return nil, err
		}
		userID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		v.ID = userID
		users = append(users, v)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return users, nil
}
