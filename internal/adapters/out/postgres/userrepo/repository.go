package userrepo

import (
	"context"
	"errors"

	"profast/internal/core/domain/model/kernel"
	"profast/internal/core/domain/model/user"
	"profast/internal/core/ports"
	"profast/internal/pkg/errs"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// uniqueViolation is the PostgreSQL SQLSTATE for a duplicate key.
const uniqueViolation = "23505"

// GormUserRepository implements ports.UserRepository using GORM.
type GormUserRepository struct {
	db *gorm.DB
}

// NewGormUserRepository returns a repository bound to db, usually a transaction.
func NewGormUserRepository(db *gorm.DB) *GormUserRepository {
	return &GormUserRepository{db: db}
}

// Add inserts a user. A duplicate email is reported as errs.ErrConflict.
func (r *GormUserRepository) Add(ctx context.Context, aggregate *user.User) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	err := r.db.WithContext(ctx).Create(&dto).Error
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return errs.NewConflictErrorWithCause("user", "email is already registered", err)
	}
	return err
}

// Get retrieves a user by id.
func (r *GormUserRepository) Get(ctx context.Context, id kernel.UUID) (*user.User, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto UserDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("user", id.String())
		}
		return nil, err
	}

	return ToDomain(dto)
}

// GetByEmail retrieves a user by email.
func (r *GormUserRepository) GetByEmail(ctx context.Context, email kernel.Email) (*user.User, error) {
	if err := email.Validate(); err != nil {
		return nil, err
	}

	var dto UserDTO
	if err := r.db.WithContext(ctx).Take(&dto, "email = ?", email.String()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("user", email.String())
		}
		return nil, err
	}

	return ToDomain(dto)
}

// Update stores the role and profile fields.
func (r *GormUserRepository) Update(ctx context.Context, aggregate *user.User) (ports.WriteResult, error) {
	if err := aggregate.Validate(); err != nil {
		return ports.WriteResult{}, err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&UserDTO{}).
		Where("id = ?", dto.ID).
		Updates(map[string]any{
			"name":        dto.Name,
			"photo_url":   dto.PhotoURL,
			"role":        dto.Role,
			"last_log_in": dto.LastLogIn,
		})
	if result.Error != nil {
		return ports.WriteResult{}, result.Error
	}

	if result.RowsAffected == 0 {
		return ports.WriteResult{}, errs.NewObjectNotFoundError("user", aggregate.ID().String())
	}

	return ports.WriteResult{MatchedCount: result.RowsAffected, ModifiedCount: result.RowsAffected}, nil
}

// ListPromotable finds users still holding the user role although an active rider
// application exists for their email.
func (r *GormUserRepository) ListPromotable(ctx context.Context) ([]*user.User, error) {
	var dtos []UserDTO
	err := r.db.WithContext(ctx).
		Where("role = ?", user.RoleUser.String()).
		Where("EXISTS (SELECT 1 FROM riders WHERE riders.email = users.email AND riders.status = ?)", "active").
		Order("email").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	users := make([]*user.User, 0, len(dtos))
	for _, dto := range dtos {
		u, err := ToDomain(dto)
		if err != nil {
			return nil, err
		}
		users = append(users, u)
	}

	return users, nil
}
