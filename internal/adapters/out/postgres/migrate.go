package postgres

import (
	"context"

	"profast/internal/adapters/out/postgres/parcelrepo"
	"profast/internal/adapters/out/postgres/paymentrepo"
	"profast/internal/adapters/out/postgres/riderrepo"
	"profast/internal/adapters/out/postgres/userrepo"
	"profast/internal/adapters/out/postgres/warehouserepo"

	"gorm.io/gorm"
)

// Models lists every table the service owns, in creation order.
func Models() []any {
	return []any{
		&userrepo.UserDTO{},
		&riderrepo.RiderDTO{},
		&parcelrepo.ParcelDTO{},
		&paymentrepo.PaymentDTO{},
		&warehouserepo.WarehouseDTO{},
	}
}

// indexes are the composite indexes the listing queries sort and filter on, plus
// the partial unique index allowing one open rider application per email.
var indexes = []string{
	`CREATE INDEX IF NOT EXISTS idx_parcels_created_at_id ON parcels (created_at DESC, id DESC)`,
	`CREATE INDEX IF NOT EXISTS idx_parcels_rider_status ON parcels (assigned_rider_email, delivery_status)`,
	`CREATE INDEX IF NOT EXISTS idx_users_email_lower ON users (lower(email))`,
	`CREATE UNIQUE INDEX IF NOT EXISTS idx_riders_open_email ON riders (email) WHERE status IN ('pending', 'active')`,
}

// Migrate creates or updates the schema.
func Migrate(ctx context.Context, db *gorm.DB) error {
	db = db.WithContext(ctx)
	if err := db.AutoMigrate(Models()...); err != nil {
		return err
	}
	for _, stmt := range indexes {
		if err := db.Exec(stmt).Error; err != nil {
			return err
		}
	}
	return nil
}
