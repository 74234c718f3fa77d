package entities

import "time"

// AppointmentStatus mirrors the booking states the payment core touches.
//
// The appointment lifecycle is owned by the scheduling side of the product;
// this service only moves a booking out of "aguardando_pagamento" as a side
// effect of a payment transition, always inside the same transaction.

type AppointmentStatus string

const (
	AppointmentStatusAguardandoPagamento AppointmentStatus = "aguardando_pagamento"
	AppointmentStatusConfirmado          AppointmentStatus = "confirmado"
	AppointmentStatusCancelado           AppointmentStatus = "cancelado"
)

// Appointment is the booking record referenced by a Payment.
//
// Storage model (DynamoDB):
//   - PK: id (string)
//
// Only Status, CancelledBy and UpdatedAt are written by this service.

type Appointment struct {
	ID          string            `json:"id"`
	WorkspaceID string            `json:"workspace_id"`
	Status      AppointmentStatus `json:"status"`
	CancelledBy string            `json:"cancelled_by,omitempty"`
	UpdatedAt   time.Time         `json:"updated_at"`
}
