package riderrepo

import (
	"context"
	"errors"

	"profast/internal/core/domain/model/kernel"
	"profast/internal/core/domain/model/rider"
	"profast/internal/core/ports"
	"profast/internal/pkg/errs"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// uniqueViolation is the PostgreSQL SQLSTATE for a duplicate key.
const uniqueViolation = "23505"

// GormRiderRepository implements ports.RiderRepository using GORM.
type GormRiderRepository struct {
	db *gorm.DB
}

// NewGormRiderRepository returns a repository bound to db, usually a transaction.
func NewGormRiderRepository(db *gorm.DB) *GormRiderRepository {
	return &GormRiderRepository{db: db}
}

// Add saves a new application. A second pending or active application for the same
// email is a conflict.
func (r *GormRiderRepository) Add(ctx context.Context, aggregate *rider.Rider) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	err := r.db.WithContext(ctx).Create(&dto).Error
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return errs.NewConflictErrorWithCause("rider", "an application for this email is already open", err)
	}
	return err
}

// Get retrieves a rider by id.
func (r *GormRiderRepository) Get(ctx context.Context, id kernel.UUID) (*rider.Rider, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto RiderDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("rider", id.String())
		}
		return nil, err
	}

	return ToDomain(dto)
}

// GetByEmail returns the newest application of email.
func (r *GormRiderRepository) GetByEmail(ctx context.Context, email kernel.Email) (*rider.Rider, error) {
	if err := email.Validate(); err != nil {
		return nil, err
	}

	var dto RiderDTO
	err := r.db.WithContext(ctx).
		Where("email = ?", email.String()).
		Order("created_at DESC").
		Order("id DESC").
		Take(&dto).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("rider", email.String())
		}
		return nil, err
	}

	return ToDomain(dto)
}

// CompareAndSwap updates the status while the stored status is still expected.
func (r *GormRiderRepository) CompareAndSwap(
	ctx context.Context,
	aggregate *rider.Rider,
	expected rider.Status,
) (ports.WriteResult, error) {
	if err := aggregate.Validate(); err != nil {
		return ports.WriteResult{}, err
	}

	result := r.db.WithContext(ctx).Model(&RiderDTO{}).
		Where("id = ? AND status = ?", aggregate.ID().Bytes(), expected.String()).
		Update("status", aggregate.Status().String())
	if result.Error != nil {
		return ports.WriteResult{}, result.Error
	}

	if result.RowsAffected == 0 {
		var count int64
		if err := r.db.WithContext(ctx).Model(&RiderDTO{}).
			Where("id = ?", aggregate.ID().Bytes()).Count(&count).Error; err != nil {
			return ports.WriteResult{}, err
		}
		if count == 0 {
			return ports.WriteResult{}, errs.NewObjectNotFoundError("rider", aggregate.ID().String())
		}
		return ports.WriteResult{}, errs.NewConflictError("rider", "application was already decided")
	}

	return ports.WriteResult{MatchedCount: result.RowsAffected, ModifiedCount: result.RowsAffected}, nil
}
