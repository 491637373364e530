package dto

import (
	"time"

	"github.com/ridecrew/ridecrew/internal/domain/entitlement"
	"github.com/ridecrew/ridecrew/internal/domain/subscription"
)

type EntitlementResponse struct {
	PlanName       string `json:"plan_name"`
	PremiumActive  bool   `json:"premium_active"`
	PremiumLapsing bool   `json:"premium_lapsing"`
	SubscriptionID string `json:"subscription_id,omitempty"`
}

type CheckoutResponse struct {
	SessionID string `json:"session_id"`
	URL       string `json:"url"`
}

type SubsResponse struct {
	ID                     uint      `json:"id"`
	PlanType               string    `json:"plan_type"`
	ExternalSubscriptionID string    `json:"external_subscription_id"`
	Status                 string    `json:"status"`
	CancelAtPeriodEnd      bool      `json:"cancel_at_period_end"`
	StartAt                time.Time `json:"start_at"`
	EndAt                  time.Time `json:"end_at"`
	LatestInvoiceID        string    `json:"latest_invoice_id,omitempty"`
	CreatedAt              time.Time `json:"created_at"`
	UpdatedAt              time.Time `json:"updated_at"`
}

func ToEntitlementResponse(e entitlement.Entitlement) *EntitlementResponse {
	return &EntitlementResponse{
		PlanName:       string(e.PlanName),
		PremiumActive:  e.Active,
		PremiumLapsing: e.Lapsing,
		SubscriptionID: e.SubscriptionID,
	}
}

func ToSubsResponse(s *subscription.Subs) *SubsResponse {
	return &SubsResponse{
		ID:                     s.ID(),
		PlanType:               string(s.PlanType()),
		ExternalSubscriptionID: s.ExternalSubscriptionID(),
		Status:                 s.Status(),
		CancelAtPeriodEnd:      s.CancelAtPeriodEnd(),
		StartAt:                s.StartAt(),
		EndAt:                  s.EndAt(),
		LatestInvoiceID:        s.LatestInvoiceID(),
		CreatedAt:              s.CreatedAt(),
		UpdatedAt:              s.UpdatedAt(),
	}
}

func ToSubsResponses(subs []*subscription.Subs) []*SubsResponse {
	result := make([]*SubsResponse, 0, len(subs))
	for _, s := range subs {
		result = append(result, ToSubsResponse(s))
	}
	return result
}
