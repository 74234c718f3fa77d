package response

import (
	"time"

	"salao_xpto/internal/domain/entities"
	"salao_xpto/internal/usecase"
)

type PaymentResponse struct {
	ID                string     `json:"id"`
	AppointmentID     string     `json:"appointment_id"`
	WorkspaceID       string     `json:"workspace_id"`
	AmountCents       int64      `json:"amount_cents"`
	ServiceTotalCents int64      `json:"service_total_cents"`
	Status            string     `json:"status"`
	PixCopiaECola     string     `json:"pix_copia_e_cola,omitempty"`
	CreatedAt         time.Time  `json:"created_at"`
	ExpiresAt         time.Time  `json:"expires_at"`
	PaidAt            *time.Time `json:"paid_at,omitempty"`
	ConfirmedBy       string     `json:"confirmed_by,omitempty"`
	CancelledBy       string     `json:"cancelled_by,omitempty"`
	CancelReason      string     `json:"cancel_reason,omitempty"`
	Notes             string     `json:"notes,omitempty"`
}

func FromPayment(p entities.Payment) PaymentResponse {
	return PaymentResponse{
		ID:                p.ID,
		AppointmentID:     p.AppointmentID,
		WorkspaceID:       p.WorkspaceID,
		AmountCents:       p.AmountCents,
		ServiceTotalCents: p.ServiceTotalCents,
		Status:            string(p.Status),
		PixCopiaECola:     p.PayloadText,
		CreatedAt:         p.CreatedAt,
		ExpiresAt:         p.ExpiresAt,
		PaidAt:            p.PaidAt,
		ConfirmedBy:       p.ConfirmedBy,
		CancelledBy:       p.CancelledBy,
		CancelReason:      p.CancelReason,
		Notes:             p.Notes,
	}
}

// CreatePaymentResponse distinguishes "charge opened" from "this workspace
// does not require upfront payment", which is a normal outcome of the
// booking flow rather than an error.
type CreatePaymentResponse struct {
	PaymentRequired bool             `json:"payment_required"`
	Payment         *PaymentResponse `json:"payment,omitempty"`
}

func FromCreatedPayment(p entities.Payment) CreatePaymentResponse {
	resp := FromPayment(p)
	return CreatePaymentResponse{PaymentRequired: true, Payment: &resp}
}

func PaymentNotRequired() CreatePaymentResponse {
	return CreatePaymentResponse{PaymentRequired: false}
}

type SweepResponse struct {
	Selected  int `json:"selected"`
	Cancelled int `json:"cancelled"`
	Skipped   int `json:"skipped"`
	Failed    int `json:"failed"`
}

func FromSweepReport(r usecase.SweepReport) SweepResponse {
	return SweepResponse{
		Selected:  r.Selected,
		Cancelled: r.Cancelled,
		Skipped:   r.Skipped,
		Failed:    r.Failed,
	}
}
