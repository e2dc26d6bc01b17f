package http

import (
	"time"

	"profast/internal/core/application/usecases/commands"
	"profast/internal/core/application/usecases/queries"
	"profast/internal/core/domain/model/tracking"
	"profast/internal/core/ports"

	"github.com/shopspring/decimal"
)

type NewParcelRequest struct {
	CreatedBy             string          `json:"created_by" validate:"required,email"`
	Title                 string          `json:"title" validate:"required"`
	Type                  string          `json:"type" validate:"required,oneof=document non-document"`
	Weight                float64         `json:"weight" validate:"gte=0"`
	Cost                  decimal.Decimal `json:"cost"`
	SenderName            string          `json:"sender_name" validate:"required"`
	SenderContact         string          `json:"sender_contact" validate:"required"`
	SenderRegion          string          `json:"sender_region" validate:"required"`
	SenderServiceCenter   string          `json:"sender_service_center" validate:"required"`
	SenderAddress         string          `json:"sender_address" validate:"required"`
	ReceiverName          string          `json:"receiver_name" validate:"required"`
	ReceiverContact       string          `json:"receiver_contact" validate:"required"`
	ReceiverRegion        string          `json:"receiver_region" validate:"required"`
	ReceiverServiceCenter string          `json:"receiver_service_center" validate:"required"`
	ReceiverAddress       string          `json:"receiver_address" validate:"required"`
}

type AssignRiderRequest struct {
	RiderID string `json:"rider_id" validate:"required,uuid"`
}

type AdvanceDeliveryRequest struct {
	Status string `json:"status" validate:"required"`
}

type TrackingEventRequest struct {
	ParcelID string `json:"parcel_id" validate:"required,uuid"`
	Status   string `json:"status" validate:"required"`
	Location string `json:"location"`
	Details  string `json:"details"`
}

type PaymentRequest struct {
	ParcelID      string          `json:"parcel_id" validate:"required,uuid"`
	Email         string          `json:"email" validate:"required,email"`
	Amount        decimal.Decimal `json:"amount"`
	PaymentMethod string          `json:"payment_method" validate:"required"`
	TransactionID string          `json:"transaction_id" validate:"required"`
}

type PaymentIntentRequest struct {
	Amount   decimal.Decimal `json:"amount"`
	Currency string          `json:"currency" validate:"omitempty,len=3,alpha"`
}

type NewUserRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Name     string `json:"name"`
	PhotoURL string `json:"photo_url" validate:"omitempty,url"`
}

type ChangeRoleRequest struct {
	Role string `json:"role" validate:"required"`
}

type RiderApplicationRequest struct {
	Email            string `json:"email" validate:"required,email"`
	Name             string `json:"name" validate:"required"`
	Phone            string `json:"phone" validate:"required"`
	Age              int    `json:"age" validate:"required"`
	Region           string `json:"region" validate:"required"`
	District         string `json:"district" validate:"required"`
	NID              string `json:"nid" validate:"required"`
	BikeBrand        string `json:"bike_brand" validate:"required"`
	BikeRegistration string `json:"bike_registration" validate:"required"`
}

type DecideRiderRequest struct {
	Status string `json:"status" validate:"required,oneof=active rejected"`
}

// WriteResponse mirrors the store's mutation result.
type WriteResponse struct {
	Acknowledged  bool     `json:"acknowledged"`
	InsertedID    string   `json:"insertedId,omitempty"`
	MatchedCount  *int64   `json:"matchedCount,omitempty"`
	ModifiedCount *int64   `json:"modifiedCount,omitempty"`
	DeletedCount  *int64   `json:"deletedCount,omitempty"`
	Inserted      *bool    `json:"inserted,omitempty"`
	Message       string   `json:"message,omitempty"`
	Warnings      []string `json:"warnings,omitempty"`
}

func inserted(r ports.WriteResult) WriteResponse {
	return WriteResponse{Acknowledged: true, InsertedID: r.InsertedID}
}

func updated(r ports.WriteResult) WriteResponse {
	return WriteResponse{Acknowledged: true, MatchedCount: &r.MatchedCount, ModifiedCount: &r.ModifiedCount}
}

func deleted(r ports.WriteResult) WriteResponse {
	return WriteResponse{Acknowledged: true, DeletedCount: &r.DeletedCount}
}

type ConfirmPaymentResponse struct {
	InsertResult       WriteResponse `json:"insertResult"`
	ParcelUpdateResult WriteResponse `json:"parcelUpdateResult"`
}

func confirmPaymentResponse(r commands.ConfirmPaymentResult) ConfirmPaymentResponse {
	return ConfirmPaymentResponse{InsertResult: inserted(r.Payment), ParcelUpdateResult: updated(r.Parcel)}
}

type ErrorResponse struct {
	Message string `json:"message"`
}

type ParcelResponse struct {
	ID                    string     `json:"_id"`
	TrackingID            string     `json:"tracking_id"`
	CreatedBy             string     `json:"created_by"`
	Title                 string     `json:"title"`
	Type                  string     `json:"type"`
	Weight                float64    `json:"weight"`
	Cost                  string     `json:"cost"`
	SenderName            string     `json:"sender_name"`
	SenderContact         string     `json:"sender_contact"`
	SenderRegion          string     `json:"sender_region"`
	SenderServiceCenter   string     `json:"sender_service_center"`
	SenderAddress         string     `json:"sender_address"`
	ReceiverName          string     `json:"receiver_name"`
	ReceiverContact       string     `json:"receiver_contact"`
	ReceiverRegion        string     `json:"receiver_region"`
	ReceiverServiceCenter string     `json:"receiver_service_center"`
	ReceiverAddress       string     `json:"receiver_address"`
	DeliveryStatus        string     `json:"delivery_status"`
	PaymentStatus         string     `json:"payment_status"`
	CashoutStatus         string     `json:"cashout_status"`
	AssignedRiderID       string     `json:"assigned_rider_id,omitempty"`
	AssignedRiderName     string     `json:"assigned_rider_name,omitempty"`
	AssignedRiderEmail    string     `json:"assigned_rider_email,omitempty"`
	AssignedRiderPhone    string     `json:"assigned_rider_phone,omitempty"`
	PickedAt              *time.Time `json:"picked_at,omitempty"`
	DeliveredAt           *time.Time `json:"delivered_at,omitempty"`
	CashoutDate           *time.Time `json:"cashout_date,omitempty"`
	CreatedAt             time.Time  `json:"created_at"`
}

func parcelResponse(v queries.ParcelView) ParcelResponse {
	r := ParcelResponse{
		ID:                    v.ID.String(),
		TrackingID:            v.TrackingID,
		CreatedBy:             v.CreatedBy,
		Title:                 v.Title,
		Type:                  v.Type,
		Weight:                v.Weight,
		Cost:                  v.Cost.String(),
		SenderName:            v.Sender.Name,
		SenderContact:         v.Sender.Contact,
		SenderRegion:          v.Sender.Region,
		SenderServiceCenter:   v.Sender.ServiceCenter,
		SenderAddress:         v.Sender.Address,
		ReceiverName:          v.Receiver.Name,
		ReceiverContact:       v.Receiver.Contact,
		ReceiverRegion:        v.Receiver.Region,
		ReceiverServiceCenter: v.Receiver.ServiceCenter,
		ReceiverAddress:       v.Receiver.Address,
		DeliveryStatus:        v.DeliveryStatus,
		PaymentStatus:         v.PaymentStatus,
		CashoutStatus:         v.CashoutStatus,
		PickedAt:              v.PickedAt,
		DeliveredAt:           v.DeliveredAt,
		CashoutDate:           v.CashoutDate,
		CreatedAt:             v.CreatedAt,
	}
	if a := v.AssignedRider; a != nil {
		r.AssignedRiderID = a.ID.String()
		r.AssignedRiderName = a.Name
		r.AssignedRiderEmail = a.Email
		r.AssignedRiderPhone = a.Phone
	}
	return r
}

func parcelResponses(views []queries.ParcelView) []ParcelResponse {
	out := make([]ParcelResponse, 0, len(views))
	for _, v := range views {
		out = append(out, parcelResponse(v))
	}
	return out
}

type TrackingEventResponse struct {
	ID         string    `json:"_id"`
	ParcelID   string    `json:"parcel_id"`
	TrackingID string    `json:"tracking_id"`
	Status     string    `json:"status"`
	Location   string    `json:"location,omitempty"`
	Details    string    `json:"details,omitempty"`
	UpdatedBy  string    `json:"updated_by"`
	CreatedAt  time.Time `json:"created_at"`
}

func trackingResponses(events []tracking.Event) []TrackingEventResponse {
	out := make([]TrackingEventResponse, 0, len(events))
	for _, e := range events {
		out = append(out, TrackingEventResponse{
			ID:         e.ID,
			ParcelID:   e.ParcelID.String(),
			TrackingID: e.TrackingID,
			Status:     e.Status,
			Location:   e.Location,
			Details:    e.Details,
			UpdatedBy:  e.UpdatedBy.String(),
			CreatedAt:  e.CreatedAt,
		})
	}
	return out
}

type PaymentResponse struct {
	ID            string    `json:"_id"`
	ParcelID      string    `json:"parcel_id"`
	Email         string    `json:"email"`
	Amount        string    `json:"amount"`
	PaymentMethod string    `json:"payment_method"`
	TransactionID string    `json:"transaction_id"`
	PaidAt        time.Time `json:"paid_at"`
}

func paymentResponses(views []queries.PaymentView) []PaymentResponse {
	out := make([]PaymentResponse, 0, len(views))
	for _, v := range views {
		out = append(out, PaymentResponse{
			ID:            v.ID.String(),
			ParcelID:      v.ParcelID.String(),
			Email:         v.Email,
			Amount:        v.Amount.String(),
			PaymentMethod: v.PaymentMethod,
			TransactionID: v.TransactionID,
			PaidAt:        v.PaidAt,
		})
	}
	return out
}

type UserResponse struct {
	ID        string    `json:"_id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	PhotoURL  string    `json:"photo_url,omitempty"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
	LastLogIn time.Time `json:"last_log_in"`
}

func userResponses(views []queries.UserView) []UserResponse {
	out := make([]UserResponse, 0, len(views))
	for _, v := range views {
		out = append(out, UserResponse{
			ID:        v.ID.String(),
			Email:     v.Email,
			Name:      v.Name,
			PhotoURL:  v.PhotoURL,
			Role:      v.Role,
			CreatedAt: v.CreatedAt,
			LastLogIn: v.LastLogIn,
		})
	}
	return out
}

type RiderResponse struct {
	ID               string    `json:"_id"`
	Email            string    `json:"email"`
	Name             string    `json:"name"`
	Phone            string    `json:"phone"`
	Age              int       `json:"age"`
	Region           string    `json:"region"`
	District         string    `json:"district"`
	NID              string    `json:"nid"`
	BikeBrand        string    `json:"bike_brand"`
	BikeRegistration string    `json:"bike_registration"`
	Status           string    `json:"status"`
	CreatedAt        time.Time `json:"created_at"`
}

func riderResponses(views []queries.RiderView) []RiderResponse {
	out := make([]RiderResponse, 0, len(views))
	for _, v := range views {
		out = append(out, RiderResponse{
			ID:               v.ID.String(),
			Email:            v.Email,
			Name:             v.Name,
			Phone:            v.Phone,
			Age:              v.Age,
			Region:           v.Region,
			District:         v.District,
			NID:              v.NID,
			BikeBrand:        v.BikeBrand,
			BikeRegistration: v.BikeRegistration,
			Status:           v.Status,
			CreatedAt:        v.CreatedAt,
		})
	}
	return out
}

type EarningsResponse struct {
	Today          string `json:"today"`
	ThisWeek       string `json:"this_week"`
	ThisMonth      string `json:"this_month"`
	ThisYear       string `json:"this_year"`
	Total          string `json:"total"`
	Pending        string `json:"pending"`
	CashedOutCount int    `json:"cashed_out_count"`
	PendingCount   int    `json:"pending_count"`
}

func earningsResponse(v queries.EarningsView) EarningsResponse {
	return EarningsResponse{
		Today:          v.Today.String(),
		ThisWeek:       v.ThisWeek.String(),
		ThisMonth:      v.ThisMonth.String(),
		ThisYear:       v.ThisYear.String(),
		Total:          v.Total.String(),
		Pending:        v.Pending.String(),
		CashedOutCount: v.CashedOutCount,
		PendingCount:   v.PendingCount,
	}
}
