package request

// CreatePaymentRequest is sent by the booking flow right after an
// appointment is reserved. The service total is the already-summed price of
// the selected services, in centavos; the charge itself is derived from the
// workspace policy server-side.
type CreatePaymentRequest struct {
	WorkspaceID       string `json:"workspace_id" binding:"required"`
	ServiceTotalCents int64  `json:"service_total_cents" binding:"min=0"`
	Notes             string `json:"notes"`
}

// ConfirmPaymentRequest records which admin verified the transfer.
type ConfirmPaymentRequest struct {
	ActorID string `json:"actor_id" binding:"required"`
}

// CancelPaymentRequest records who aborted the charge and optionally why.
type CancelPaymentRequest struct {
	ActorID string `json:"actor_id" binding:"required"`
	Reason  string `json:"reason"`
}
