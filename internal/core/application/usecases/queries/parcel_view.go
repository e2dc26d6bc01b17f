// Package queries contains the read side: handlers that run SQL directly against
// the store and return read models shaped for the HTTP surface.
package queries

import (
	"database/sql"
	"time"

	"profast/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// parcelColumns is shared by every parcel listing so all views scan the same row.
const parcelColumns = `
	id, tracking_id, created_by, title, type, weight, cost,
	sender_name, sender_contact, sender_region, sender_service_center, sender_address,
	receiver_name, receiver_contact, receiver_region, receiver_service_center, receiver_address,
	delivery_status, payment_status, cashout_status,
	assigned_rider_id, assigned_rider_name, assigned_rider_email, assigned_rider_phone,
	picked_at, delivered_at, cashout_date, created_at`

// parcelOrder is the canonical sort of every parcel list: newest first, id as the
// tie breaker so equal timestamps still sort deterministically.
const parcelOrder = `ORDER BY created_at DESC, id DESC`

// PartyView is the sender or receiver block of a parcel.
type PartyView struct {
	Name          string
	Contact       string
	Region        string
	ServiceCenter string
	Address       string
}

// AssignedRiderView is the rider snapshot stored on an assigned parcel.
type AssignedRiderView struct {
	ID    kernel.UUID
	Name  string
	Email string
	Phone string
}

// ParcelView is the read model of a parcel.
type ParcelView struct {
	ID             kernel.UUID
	TrackingID     string
	CreatedBy      string
	Title          string
	Type           string
	Weight         float64
	Cost           kernel.Money
	Sender         PartyView
	Receiver       PartyView
	DeliveryStatus string
	PaymentStatus  string
	CashoutStatus  string
	AssignedRider  *AssignedRiderView
	PickedAt       *time.Time
	DeliveredAt    *time.Time
	CashoutDate    *time.Time
	CreatedAt      time.Time
}

type parcelRow struct {
	ID                    uuid.UUID
	TrackingID            string
	CreatedBy             string
	Title                 string
	Type                  string
	Weight                float64
	Cost                  decimal.Decimal
	SenderName            string
	SenderContact         string
	SenderRegion          string
	SenderServiceCenter   string
	SenderAddress         string
	ReceiverName          string
	ReceiverContact       string
	ReceiverRegion        string
	ReceiverServiceCenter string
	ReceiverAddress       string
	DeliveryStatus        string
	PaymentStatus         string
	CashoutStatus         string
	AssignedRiderID       *uuid.UUID
	AssignedRiderName     *string
	AssignedRiderEmail    *string
	AssignedRiderPhone    *string
	PickedAt              *time.Time
	DeliveredAt           *time.Time
	CashoutDate           *time.Time
	CreatedAt             time.Time
}

func (r parcelRow) toView() (ParcelView, error) {
	id, err := kernel.UUIDFromBytes(r.ID[:])
	if err != nil {
		return ParcelView{}, err
	}
	cost, err := kernel.NewMoney(r.Cost)
	if err != nil {
		return ParcelView{}, err
	}

	v := ParcelView{
		ID:         id,
		TrackingID: r.TrackingID,
		CreatedBy:  r.CreatedBy,
		Title:      r.Title,
		Type:       r.Type,
		Weight:     r.Weight,
		Cost:       cost,
		Sender: PartyView{
			Name: r.SenderName, Contact: r.SenderContact, Region: r.SenderRegion,
			ServiceCenter: r.SenderServiceCenter, Address: r.SenderAddress,
		},
		Receiver: PartyView{
			Name: r.ReceiverName, Contact: r.ReceiverContact, Region: r.ReceiverRegion,
			ServiceCenter: r.ReceiverServiceCenter, Address: r.ReceiverAddress,
		},
		DeliveryStatus: r.DeliveryStatus,
		PaymentStatus:  r.PaymentStatus,
		CashoutStatus:  r.CashoutStatus,
		PickedAt:       utc(r.PickedAt),
		DeliveredAt:    utc(r.DeliveredAt),
		CashoutDate:    utc(r.CashoutDate),
		CreatedAt:      r.CreatedAt.UTC(),
	}

	if r.AssignedRiderID != nil {
		riderID, idErr := kernel.UUIDFromBytes(r.AssignedRiderID[:])
		if idErr != nil {
			return ParcelView{}, idErr
		}
		v.AssignedRider = &AssignedRiderView{
			ID:    riderID,
			Name:  deref(r.AssignedRiderName),
			Email: deref(r.AssignedRiderEmail),
			Phone: deref(r.AssignedRiderPhone),
		}
	}

	return v, nil
}

// scanParcels drains rows into views. The caller closes rows.
func scanParcels(db *gorm.DB, rows *sql.Rows) ([]ParcelView, error) {
	parcels := make([]ParcelView, 0)
	for rows.Next() {
		var row parcelRow
		if err := db.ScanRows(rows, &row); err != nil {
			return nil, err
		}
		v, err := row.toView()
		if err != nil {
			return nil, err
		}
		parcels = append(parcels, v)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return parcels, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func utc(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	u := t.UTC()
	return &u
}
