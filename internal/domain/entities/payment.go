package entities

import "time"

// PaymentStatus represents the lifecycle of a PIX charge.
//
// A payment leaves "pendente" exactly once, to either "pago" or "cancelado".
// Both are terminal: rows are never deleted nor re-opened, so the payments
// table doubles as the audit trail of charge attempts.

type PaymentStatus string

const (
	PaymentStatusPendente  PaymentStatus = "pendente"
	PaymentStatusPago      PaymentStatus = "pago"
	PaymentStatusCancelado PaymentStatus = "cancelado"
)

// CancelledBySistema marks a cancellation caused by automatic expiry, as
// opposed to an admin actor id. Reporting uses it to separate the two causes.
const CancelledBySistema = "sistema"

// Payment is the PIX charge persisted for a booking.
//
// Storage model (DynamoDB):
//   - PK: appointment_id (one payment per appointment, by construction)
//   - GSI (status-expires_at-index): status / expires_at
//
// Monetary representation:
//   - AmountCents is the actual charge in minor units (centavos).
//   - ServiceTotalCents is the full service price the charge was derived
//     from; kept for auditing partial charges.

type Payment struct {
	ID            string `json:"id"`
	AppointmentID string `json:"appointment_id"`
	WorkspaceID   string `json:"workspace_id"`

	AmountCents       int64 `json:"amount_cents"`
	ServiceTotalCents int64 `json:"service_total_cents"`

	Status      PaymentStatus `json:"status"`
	PayloadText string        `json:"payload_text,omitempty"`

	CreatedAt    time.Time  `json:"created_at"`
	ExpiresAt    time.Time  `json:"expires_at"`
	PaidAt       *time.Time `json:"paid_at,omitempty"`
	ConfirmedBy  string     `json:"confirmed_by,omitempty"`
	CancelledBy  string     `json:"cancelled_by,omitempty"`
	CancelReason string     `json:"cancel_reason,omitempty"`
	Notes        string     `json:"notes,omitempty"`
}

// Expired reports whether a pending payment has passed its deadline.
func (p Payment) Expired(now time.Time) bool {
	return p.Status == PaymentStatusPendente && p.ExpiresAt.Before(now)
}
