package interfaces

import (
	"context"
	"time"

	"salao_xpto/internal/domain/entities"
)

//go:generate mockgen -source=payment_repository_interface.go -destination=mocks/payment_repository_interface_mock.go -package=mock_interfaces

// IPaymentRepository abstracts DynamoDB persistence for Payment.
//
// Contract shared by all mutating calls: a conditional-check loss (row
// missing, already created, or no longer pending) is reported as the zero
// Payment with a nil error. The usecase re-reads and decides whether that
// means an invalid transition, a lost race, or an idempotent no-op; the
// repository never guesses.
//
// ConfirmPending and CancelPending commit the payment write and the linked
// appointment write in one storage transaction: a reader can never observe
// one without the other.
type IPaymentRepository interface {
	Create(ctx context.Context, p entities.Payment) (entities.Payment, error)
	GetByAppointmentID(ctx context.Context, appointmentID string) (entities.Payment, error)
	ConfirmPending(ctx context.Context, appointmentID, actorID string, paidAt time.Time) (entities.Payment, error)
	CancelPending(ctx context.Context, appointmentID, cancelledBy, reason string, now time.Time) (entities.Payment, error)
	ListExpiredPending(ctx context.Context, workspaceID string, now time.Time) ([]entities.Payment, error)
}
