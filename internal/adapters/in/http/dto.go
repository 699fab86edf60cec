package http

import (
	"encoding/json"
	"time"

	"courier/internal/core/application/usecases/commands"
	"courier/internal/core/application/usecases/queries"
	"courier/internal/core/domain/model/customer"
	"courier/internal/core/domain/model/driver"
	"courier/internal/core/domain/model/job"
	"courier/internal/core/domain/model/kernel"
	"courier/internal/core/domain/model/pod"
	"courier/internal/core/domain/model/pricing"

	"github.com/google/uuid"
)

// optional distinguishes an absent JSON field from an explicit null.
type optional[T any] struct {
	Set   bool
	Value *T
}

func (o *optional[T]) UnmarshalJSON(data []byte) error {
	o.Set = true
	if string(data) == "null" {
		o.Value = nil
		return nil
	}
	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	o.Value = &v
	return nil
}

// Requests.

type NewJobRequest struct {
	CustomerID     uuid.UUID `json:"customer_id"`
	PickupAddress  string    `json:"pickup_address"`
	DropoffAddress string    `json:"dropoff_address"`
	Price          *float64  `json:"price"`
	Notes          *string   `json:"notes"`
}

type JobFieldsUpdateRequest struct {
	PickupAddress  *string           `json:"pickup_address"`
	DropoffAddress *string           `json:"dropoff_address"`
	Price          optional[float64] `json:"price"`
	Notes          optional[string]  `json:"notes"`
}

type StatusChangeRequest struct {
	Status string `json:"status"`
}

type AssignmentRequest struct {
	DriverID uuid.UUID `json:"driver_id"`
}

type NewProofOfDeliveryRequest struct {
	RecipientName string   `json:"recipient_name"`
	SignatureRef  *string  `json:"signature_ref"`
	PhotoRefs     []string `json:"photo_refs"`
	Lat           *float64 `json:"lat"`
	Lng           *float64 `json:"lng"`
}

type PaymentIntentRequest struct {
	CustomerID uuid.UUID `json:"customer_id"`
}

const (
	paymentEventSucceeded = "payment_intent.succeeded"
	paymentEventFailed    = "payment_intent.payment_failed"
)

type PaymentEventRequest struct {
	Type            string    `json:"type"`
	JobID           uuid.UUID `json:"job_id"`
	PaymentIntentID string    `json:"payment_intent_id"`
}

type NewDriverRequest struct {
	AccountID   uuid.UUID `json:"account_id"`
	Name        string    `json:"name"`
	Phone       string    `json:"phone"`
	VehicleInfo *string   `json:"vehicle_info"`
}

type DriverProfileUpdateRequest struct {
	Name        *string          `json:"name"`
	Phone       *string          `json:"phone"`
	VehicleInfo optional[string] `json:"vehicle_info"`
}

type LocationUpdateRequest struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

type DutyChangeRequest struct {
	DutyStatus string `json:"duty_status"`
}

type OptimizeRouteRequest struct {
	JobIDs []uuid.UUID `json:"job_ids"`
}

type ApplyRouteRequest struct {
	Stops []struct {
		JobID    uuid.UUID `json:"job_id"`
		Sequence int       `json:"sequence"`
	} `json:"stops"`
}

type NewCustomerRequest struct {
	Name  string  `json:"name"`
	Email string  `json:"email"`
	Phone *string `json:"phone"`
}

type NewPricingRuleRequest struct {
	Name            string             `json:"name"`
	BaseRate        float64            `json:"base_rate"`
	PerDistanceRate float64            `json:"per_distance_rate"`
	RushSurcharge   float64            `json:"rush_surcharge"`
	HeavySurcharge  float64            `json:"heavy_surcharge"`
	Zones           map[string]float64 `json:"zones"`
	IsActive        bool               `json:"is_active"`
}

type RuleActivationRequest struct {
	IsActive bool `json:"is_active"`
}

type QuoteRequest struct {
	RuleID   *uuid.UUID `json:"rule_id"`
	Distance float64    `json:"distance"`
	IsRush   bool       `json:"is_rush"`
	IsHeavy  bool       `json:"is_heavy"`
	Zone     *string    `json:"zone"`
}

// Responses.

type JobResponse struct {
	ID               uuid.UUID  `json:"id"`
	TrackingCode     string     `json:"tracking_code"`
	Status           string     `json:"status"`
	CustomerID       uuid.UUID  `json:"customer_id"`
	DriverID         *uuid.UUID `json:"driver_id"`
	PickupAddress    string     `json:"pickup_address"`
	DropoffAddress   string     `json:"dropoff_address"`
	Price            *float64   `json:"price"`
	PaymentStatus    string     `json:"payment_status"`
	PaymentReference *string    `json:"payment_reference"`
	Notes            *string    `json:"notes"`
	RouteSequence    *int       `json:"route_sequence"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`
}

func jobResponse(j *job.Job) JobResponse {
	return JobResponse{
		ID:               j.ID().Google(),
		TrackingCode:     j.TrackingCode().String(),
		Status:           j.Status().String(),
		CustomerID:       j.CustomerID().Google(),
		DriverID:         googleIDPtr(j.DriverID()),
		PickupAddress:    j.Pickup().String(),
		DropoffAddress:   j.Dropoff().String(),
		Price:            j.Price(),
		PaymentStatus:    j.PaymentStatus().String(),
		PaymentReference: j.PaymentReference(),
		Notes:            j.Notes(),
		RouteSequence:    j.RouteSequence(),
		CreatedAt:        j.CreatedAt(),
		UpdatedAt:        j.UpdatedAt(),
	}
}

type JobListResponse struct {
	Items []JobResponse `json:"items"`
	Skip  int           `json:"skip"`
	Limit int           `json:"limit"`
}

func jobSummaryResponse(s queries.JobSummary) JobResponse {
	return JobResponse{
		ID:             s.ID.Google(),
		TrackingCode:   s.TrackingCode,
		Status:         s.Status.String(),
		CustomerID:     s.CustomerID.Google(),
		DriverID:       googleIDPtr(s.DriverID),
		PickupAddress:  s.PickupAddress,
		DropoffAddress: s.DropoffAddress,
		Price:          s.Price,
		PaymentStatus:  s.PaymentStatus.String(),
		RouteSequence:  s.RouteSequence,
		CreatedAt:      s.CreatedAt,
		UpdatedAt:      s.UpdatedAt,
	}
}

type ProofOfDeliveryResponse struct {
	ID            uuid.UUID `json:"id"`
	JobID         uuid.UUID `json:"job_id"`
	RecipientName string    `json:"recipient_name"`
	SignatureRef  *string   `json:"signature_ref"`
	PhotoRefs     []string  `json:"photo_refs"`
	Lat           *float64  `json:"lat"`
	Lng           *float64  `json:"lng"`
	DeliveredAt   time.Time `json:"delivered_at"`
}

func proofResponse(p *pod.ProofOfDelivery) ProofOfDeliveryResponse {
	lat, lng := coordinates(p.Location())
	photos := p.PhotoRefs()
	if photos == nil {
		photos = []string{}
	}
	return ProofOfDeliveryResponse{
		ID:            p.ID().Google(),
		JobID:         p.JobID().Google(),
		RecipientName: p.Recipient(),
		SignatureRef:  p.SignatureRef(),
		PhotoRefs:     photos,
		Lat:           lat,
		Lng:           lng,
		DeliveredAt:   p.DeliveredAt(),
	}
}

type PaymentIntentResponse struct {
	JobID         uuid.UUID `json:"job_id"`
	ClientSecret  string    `json:"client_secret"`
	AmountCents   int64     `json:"amount_cents"`
	Currency      string    `json:"currency"`
	Mode          string    `json:"mode"`
	PaymentStatus string    `json:"payment_status"`
}

func paymentIntentResponse(r commands.PaymentIntentResult) PaymentIntentResponse {
	return PaymentIntentResponse{
		JobID:         r.Job.ID().Google(),
		ClientSecret:  r.ClientSecret,
		AmountCents:   r.AmountCents,
		Currency:      r.Currency,
		Mode:          string(r.Mode),
		PaymentStatus: r.Job.PaymentStatus().String(),
	}
}

type DriverResponse struct {
	ID                   uuid.UUID  `json:"id"`
	AccountID            uuid.UUID  `json:"account_id"`
	Name                 string     `json:"name"`
	Phone                string     `json:"phone"`
	VehicleInfo          *string    `json:"vehicle_info"`
	DutyStatus           string     `json:"duty_status"`
	CurrentLat           *float64   `json:"current_lat"`
	CurrentLng           *float64   `json:"current_lng"`
	LastLocationUpdateAt *time.Time `json:"last_location_update_at"`
	CreatedAt            time.Time  `json:"created_at"`
	UpdatedAt            time.Time  `json:"updated_at"`
}

func driverResponse(d *driver.Driver) DriverResponse {
	lat, lng := coordinates(d.LastLocation())
	return DriverResponse{
		ID:                   d.ID().Google(),
		AccountID:            d.AccountID().Google(),
		Name:                 d.Name(),
		Phone:                d.Phone(),
		VehicleInfo:          d.VehicleInfo(),
		DutyStatus:           d.Duty().String(),
		CurrentLat:           lat,
		CurrentLng:           lng,
		LastLocationUpdateAt: d.LastLocationAt(),
		CreatedAt:            d.CreatedAt(),
		UpdatedAt:            d.UpdatedAt(),
	}
}

type RouteStopResponse struct {
	Sequence       int       `json:"sequence"`
	JobID          uuid.UUID `json:"job_id"`
	TrackingCode   string    `json:"tracking_code"`
	PickupAddress  string    `json:"pickup_address"`
	DropoffAddress string    `json:"dropoff_address"`
	Status         string    `json:"status"`
}

type RoutePlanResponse struct {
	DriverID             uuid.UUID           `json:"driver_id"`
	Stops                []RouteStopResponse `json:"stops"`
	TotalDistanceMeters  float64             `json:"total_distance_meters"`
	TotalDurationSeconds float64             `json:"total_duration_seconds"`
	Engine               string              `json:"engine"`
}

func routePlanResponse(r queries.OptimizeRouteQueryResponse) RoutePlanResponse {
	stops := make([]RouteStopResponse, len(r.Stops))
	for i, s := range r.Stops {
		stops[i] = RouteStopResponse{
			Sequence:       s.Sequence,
			JobID:          s.JobID.Google(),
			TrackingCode:   s.TrackingCode.String(),
			PickupAddress:  s.PickupAddress.String(),
			DropoffAddress: s.DropoffAddress.String(),
			Status:         s.Status.String(),
		}
	}
	return RoutePlanResponse{
		DriverID:             r.DriverID.Google(),
		Stops:                stops,
		TotalDistanceMeters:  r.TotalDistanceMeters,
		TotalDurationSeconds: r.TotalDurationSeconds,
		Engine:               r.Engine,
	}
}

type ApplyRouteResponse struct {
	Applied int `json:"applied"`
}

type CustomerResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     *string   `json:"phone"`
	CreatedAt time.Time `json:"created_at"`
}

func customerResponse(c *customer.Customer) CustomerResponse {
	return CustomerResponse{
		ID:        c.ID().Google(),
		Name:      c.Name(),
		Email:     c.Email(),
		Phone:     c.Phone(),
		CreatedAt: c.CreatedAt(),
	}
}

type PricingRuleResponse struct {
	ID              uuid.UUID          `json:"id"`
	Name            string             `json:"name"`
	BaseRate        float64            `json:"base_rate"`
	PerDistanceRate float64            `json:"per_distance_rate"`
	RushSurcharge   float64            `json:"rush_surcharge"`
	HeavySurcharge  float64            `json:"heavy_surcharge"`
	Zones           map[string]float64 `json:"zones"`
	IsActive        bool               `json:"is_active"`
	CreatedAt       time.Time          `json:"created_at"`
}

func pricingRuleResponse(r *pricing.Rule) PricingRuleResponse {
	rates := r.Rates()
	zones := rates.Zones
	if zones == nil {
		zones = map[string]float64{}
	}
	return PricingRuleResponse{
		ID:              r.ID().Google(),
		Name:            r.Name(),
		BaseRate:        rates.BaseRate,
		PerDistanceRate: rates.PerDistanceRate,
		RushSurcharge:   rates.RushSurcharge,
		HeavySurcharge:  rates.HeavySurcharge,
		Zones:           zones,
		IsActive:        r.IsActive(),
		CreatedAt:       r.CreatedAt(),
	}
}

type QuoteResponse struct {
	RuleName       string  `json:"rule_name"`
	BaseRate       float64 `json:"base_rate"`
	DistanceCharge float64 `json:"distance_charge"`
	RushSurcharge  float64 `json:"rush_surcharge"`
	HeavySurcharge float64 `json:"heavy_surcharge"`
	ZoneMultiplier float64 `json:"zone_multiplier"`
	Total          float64 `json:"total"`
	BreakdownText  string  `json:"breakdown_text"`
}

func quoteResponse(b pricing.Breakdown) QuoteResponse {
	return QuoteResponse{
		RuleName:       b.RuleName,
		BaseRate:       b.BaseRate,
		DistanceCharge: b.DistanceCharge,
		RushSurcharge:  b.RushSurcharge,
		HeavySurcharge: b.HeavySurcharge,
		ZoneMultiplier: b.ZoneMultiplier,
		Total:          b.Total,
		BreakdownText:  b.Text(),
	}
}

type TrackingDriverResponse struct {
	ID                   uuid.UUID  `json:"id"`
	Name                 string     `json:"name"`
	CurrentLat           *float64   `json:"current_lat"`
	CurrentLng           *float64   `json:"current_lng"`
	LastLocationUpdateAt *time.Time `json:"last_location_update_at"`
}

type TrackingResponse struct {
	TrackingCode   string                  `json:"tracking_code"`
	Status         string                  `json:"status"`
	PickupAddress  string                  `json:"pickup_address"`
	DropoffAddress string                  `json:"dropoff_address"`
	CreatedAt      time.Time               `json:"created_at"`
	UpdatedAt      time.Time               `json:"updated_at"`
	DeliveredAt    *time.Time              `json:"delivered_at"`
	Driver         *TrackingDriverResponse `json:"driver"`
}

func trackingResponse(t queries.GetTrackingInfoQueryResponse) TrackingResponse {
	resp := TrackingResponse{
		TrackingCode:   t.TrackingCode,
		Status:         t.Status.String(),
		PickupAddress:  t.PickupAddress,
		DropoffAddress: t.DropoffAddress,
		CreatedAt:      t.CreatedAt,
		UpdatedAt:      t.UpdatedAt,
		DeliveredAt:    t.DeliveredAt,
	}
	if t.Driver != nil {
		lat, lng := coordinates(t.Driver.LastLocation)
		resp.Driver = &TrackingDriverResponse{
			ID:                   t.Driver.ID.Google(),
			Name:                 t.Driver.Name,
			CurrentLat:           lat,
			CurrentLng:           lng,
			LastLocationUpdateAt: t.Driver.LastLocationAt,
		}
	}
	return resp
}

func googleIDPtr(id *kernel.UUID) *uuid.UUID {
	if id == nil {
		return nil
	}
	g := id.Google()
	return &g
}

func coordinates(loc *kernel.Location) (*float64, *float64) {
	if loc == nil {
		return nil, nil
	}
	lat, lng := loc.Lat(), loc.Lng()
	return &lat, &lng
}
