package parcelrepo

import (
	"context"
	"errors"

	"profast/internal/core/domain/model/kernel"
	"profast/internal/core/domain/model/parcel"
	"profast/internal/core/ports"
	"profast/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormParcelRepository implements ports.ParcelRepository using GORM.
type GormParcelRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker collects aggregates whose domain events are published after commit.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormParcelRepository returns a repository bound to db, usually a transaction.
func NewGormParcelRepository(db *gorm.DB, tracker aggregateTracker) *GormParcelRepository {
	return &GormParcelRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new parcel.
func (r *GormParcelRepository) Add(ctx context.Context, aggregate *parcel.Parcel) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a parcel by id.
func (r *GormParcelRepository) Get(ctx context.Context, id kernel.UUID) (*parcel.Parcel, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto ParcelDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("parcel", id.String())
		}
		return nil, err
	}

	return ToDomain(dto)
}

// Delete removes the row only while it is still in the expected state.
func (r *GormParcelRepository) Delete(ctx context.Context, id kernel.UUID, expected parcel.State) (int64, error) {
	if err := id.Validate(); err != nil {
		return 0, err
	}

	result := r.guarded(ctx, id, expected).Delete(&ParcelDTO{})
	if result.Error != nil {
		return 0, result.Error
	}

	return result.RowsAffected, nil
}

// CompareAndSwap issues one UPDATE ... WHERE id = ? AND <statuses> = <expected>.
// PostgreSQL re-evaluates the WHERE clause after waiting on a concurrent writer's
// row lock, so of several swaps from the same state only the first matches.
func (r *GormParcelRepository) CompareAndSwap(
	ctx context.Context,
	aggregate *parcel.Parcel,
	expected parcel.State,
) (ports.WriteResult, error) {
	if err := aggregate.Validate(); err != nil {
		return ports.WriteResult{}, err
	}

	dto := fromDomain(aggregate)
	result := r.guarded(ctx, aggregate.ID(), expected).Updates(dto.mutableColumns())
	if result.Error != nil {
		return ports.WriteResult{}, result.Error
	}

	if result.RowsAffected == 0 {
		return ports.WriteResult{}, r.missOrConflict(ctx, aggregate.ID())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return ports.WriteResult{MatchedCount: result.RowsAffected, ModifiedCount: result.RowsAffected}, nil
}

func (r *GormParcelRepository) guarded(ctx context.Context, id kernel.UUID, expected parcel.State) *gorm.DB {
	return r.db.WithContext(ctx).Model(&ParcelDTO{}).
		Where("id = ?", id.Bytes()).
		Where("delivery_status = ?", expected.Delivery.String()).
		Where("payment_status = ?", expected.Payment.String()).
		Where("cashout_status = ?", expected.Cashout.String())
}

func (r *GormParcelRepository) missOrConflict(ctx context.Context, id kernel.UUID) error {
	var count int64
	if err := r.db.WithContext(ctx).Model(&ParcelDTO{}).Where("id = ?", id.Bytes()).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return errs.NewObjectNotFoundError("parcel", id.String())
	}
	return errs.NewConflictError("parcel", "parcel was changed by another request")
}
