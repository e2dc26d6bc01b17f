// Package parcelrepo persists parcel aggregates in PostgreSQL. Statuses are stored
// by name so read models and ad-hoc queries see the same strings the API returns.
package parcelrepo

import (
	"time"

	"profast/internal/core/domain/model/kernel"
	"profast/internal/core/domain/model/parcel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ParcelDTO is the row of the parcels table. The assigned rider columns are either
// all set or all NULL.
type ParcelDTO struct {
	ID                 uuid.UUID       `gorm:"type:uuid;primaryKey"`
	TrackingID         string          `gorm:"uniqueIndex;not null"`
	CreatedBy          string          `gorm:"index;not null"`
	Title              string          `gorm:"not null"`
	Kind               string          `gorm:"column:type;not null"`
	Weight             float64         `gorm:"not null"`
	Cost               decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Sender             PartyDTO        `gorm:"embedded;embeddedPrefix:sender_"`
	Receiver           PartyDTO        `gorm:"embedded;embeddedPrefix:receiver_"`
	DeliveryStatus     string          `gorm:"index;not null"`
	PaymentStatus      string          `gorm:"index;not null"`
	CashoutStatus      string          `gorm:"not null"`
	AssignedRiderID    *uuid.UUID      `gorm:"type:uuid"`
	AssignedRiderName  *string
	AssignedRiderEmail *string `gorm:"index"`
	AssignedRiderPhone *string
	PickedAt           *time.Time
	DeliveredAt        *time.Time
	CashoutDate        *time.Time
	CreatedAt          time.Time `gorm:"index;not null;autoCreateTime:false"`
}

func (ParcelDTO) TableName() string {
	return "parcels"
}

// PartyDTO is the embedded sender or receiver.
type PartyDTO struct {
	Name          string
	Contact       string
	Region        string
	ServiceCenter string
	Address       string
}

func fromDomain(p *parcel.Parcel) ParcelDTO {
	d := p.Details()
	dto := ParcelDTO{
		ID:             p.ID().Bytes(),
		TrackingID:     p.TrackingID(),
		CreatedBy:      p.CreatedBy().String(),
		Title:          d.Title,
		Kind:           string(d.Kind),
		Weight:         d.Weight,
		Cost:           d.Cost.Decimal(),
		Sender:         partyFromDomain(d.Sender),
		Receiver:       partyFromDomain(d.Receiver),
		DeliveryStatus: p.DeliveryStatus().String(),
		PaymentStatus:  p.PaymentStatus().String(),
		CashoutStatus:  p.CashoutStatus().String(),
		PickedAt:       p.PickedAt(),
		DeliveredAt:    p.DeliveredAt(),
		CashoutDate:    p.CashoutDate(),
		CreatedAt:      p.CreatedAt(),
	}

	if a := p.Assignment(); a != nil {
		riderID := a.RiderID().Bytes()
		name, email, phone := a.Name(), a.Email().String(), a.Phone()
		dto.AssignedRiderID = &riderID
		dto.AssignedRiderName = &name
		dto.AssignedRiderEmail = &email
		dto.AssignedRiderPhone = &phone
	}

	return dto
}

func partyFromDomain(p parcel.Party) PartyDTO {
	return PartyDTO(p)
}

// mutableColumns lists what a transition may change. Identity and sender-supplied
// details are written once by Add.
func (dto ParcelDTO) mutableColumns() map[string]any {
	return map[string]any{
		"delivery_status":      dto.DeliveryStatus,
		"payment_status":       dto.PaymentStatus,
		"cashout_status":       dto.CashoutStatus,
		"assigned_rider_id":    dto.AssignedRiderID,
		"assigned_rider_name":  dto.AssignedRiderName,
		"assigned_rider_email": dto.AssignedRiderEmail,
		"assigned_rider_phone": dto.AssignedRiderPhone,
		"picked_at":            dto.PickedAt,
		"delivered_at":         dto.DeliveredAt,
		"cashout_date":         dto.CashoutDate,
	}
}

// ToDomain rebuilds the aggregate from a row. Query handlers reuse it.
func ToDomain(dto ParcelDTO) (*parcel.Parcel, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	createdBy, err := kernel.NewEmail(dto.CreatedBy)
	if err != nil {
		return nil, err
	}
	cost, err := kernel.NewMoney(dto.Cost)
	if err != nil {
		return nil, err
	}
	delivery, err := parcel.ParseDeliveryStatus(dto.DeliveryStatus)
	if err != nil {
		return nil, err
	}
	payment, err := parcel.ParsePaymentStatus(dto.PaymentStatus)
	if err != nil {
		return nil, err
	}
	cashout, err := parcel.ParseCashoutStatus(dto.CashoutStatus)
	if err != nil {
		return nil, err
	}

	var assignment *parcel.Assignment
	if dto.AssignedRiderID != nil {
		a, assignErr := assignmentToDomain(dto)
		if assignErr != nil {
			return nil, assignErr
		}
		assignment = &a
	}

	return parcel.RestoreParcel(parcel.Snapshot{
		ID:         id,
		TrackingID: dto.TrackingID,
		CreatedBy:  createdBy,
		Details: parcel.Details{
			Title:    dto.Title,
			Kind:     parcel.Kind(dto.Kind),
			Weight:   dto.Weight,
			Cost:     cost,
			Sender:   parcel.Party(dto.Sender),
			Receiver: parcel.Party(dto.Receiver),
		},
		DeliveryStatus: delivery,
		PaymentStatus:  payment,
		CashoutStatus:  cashout,
		Assignment:     assignment,
		PickedAt:       utc(dto.PickedAt),
		DeliveredAt:    utc(dto.DeliveredAt),
		CashoutDate:    utc(dto.CashoutDate),
		CreatedAt:      dto.CreatedAt.UTC(),
	})
}

func assignmentToDomain(dto ParcelDTO) (parcel.Assignment, error) {
	riderID, err := kernel.UUIDFromBytes(dto.AssignedRiderID[:])
	if err != nil {
		return parcel.Assignment{}, err
	}
	email, err := kernel.NewEmail(deref(dto.AssignedRiderEmail))
	if err != nil {
		return parcel.Assignment{}, err
	}
	return parcel.NewAssignment(riderID, deref(dto.AssignedRiderName), email, deref(dto.AssignedRiderPhone))
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
