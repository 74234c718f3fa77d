package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"salao_xpto/internal/domain/entities"
	"salao_xpto/internal/domain/pix"
	"salao_xpto/internal/domain/pricing"
	"salao_xpto/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrPaymentNotFound            = errors.New("payment not found")
	ErrPaymentNotRequired         = errors.New("payment not required")
	ErrInvalidChargeConfiguration = errors.New("invalid charge configuration")
	ErrInvalidStateTransition     = errors.New("invalid state transition")
	ErrConcurrentModification     = errors.New("concurrent payment modification")
	ErrAppointmentNotFound        = errors.New("appointment not found")
	ErrInvalidAppointmentID       = errors.New("invalid appointment_id")
	ErrInvalidWorkspaceID         = errors.New("invalid workspace_id")
	ErrInvalidServiceTotal        = errors.New("invalid service total")
	ErrInvalidActorID             = errors.New("invalid actor id")
)

// InvalidStateTransitionError reports a refused transition with both the
// current and the attempted status, so callers can build a precise message.
// It matches errors.Is(err, ErrInvalidStateTransition).
type InvalidStateTransitionError struct {
	Current   entities.PaymentStatus
	Attempted entities.PaymentStatus
}

func (e *InvalidStateTransitionError) Error() string {
	return fmt.Sprintf("invalid state transition: payment is %q, cannot transition to %q", e.Current, e.Attempted)
}

func (e *InvalidStateTransitionError) Unwrap() error { return ErrInvalidStateTransition }

// CreatePaymentInput carries the booking-time data needed to open a charge.
type CreatePaymentInput struct {
	AppointmentID     string
	WorkspaceID       string
	ServiceTotalCents int64
	Notes             string
}

// IPaymentLifecycleUseCase drives a payment through its strict lifecycle:
// created once per appointment, then moved exactly once out of "pendente"
// by an admin confirm, an admin cancel, or the expiry sweeper.

type IPaymentLifecycleUseCase interface {
	CreateForAppointment(ctx context.Context, in CreatePaymentInput) (entities.Payment, error)
	Confirm(ctx context.Context, appointmentID, actorID string) (entities.Payment, error)
	Cancel(ctx context.Context, appointmentID, actorID, reason string) (entities.Payment, error)
	GetByAppointmentID(ctx context.Context, appointmentID string) (entities.Payment, error)
}

type PaymentLifecycleUseCase struct {
	payments     interfaces.IPaymentRepository
	appointments interfaces.IAppointmentRepository
	settings     interfaces.IWorkspaceSettingsRepository
}

var _ IPaymentLifecycleUseCase = (*PaymentLifecycleUseCase)(nil)

func NewPaymentLifecycleUseCase(
	payments interfaces.IPaymentRepository,
	appointments interfaces.IAppointmentRepository,
	settings interfaces.IWorkspaceSettingsRepository,
) *PaymentLifecycleUseCase {
	return &PaymentLifecycleUseCase{payments: payments, appointments: appointments, settings: settings}
}

// CreateForAppointment opens the PIX charge for a freshly booked appointment.
//
// Idempotent: when a payment already exists for the appointment the existing
// row is returned unchanged, including under a concurrent double-create. When
// the workspace policy does not require an upfront charge (or resolves to a
// zero amount) it returns ErrPaymentNotRequired and persists nothing.
func (u *PaymentLifecycleUseCase) CreateForAppointment(ctx context.Context, in CreatePaymentInput) (entities.Payment, error) {
	appointmentID := strings.TrimSpace(in.AppointmentID)
	if appointmentID == "" {
		return entities.Payment{}, ErrInvalidAppointmentID
	}
	workspaceID := strings.TrimSpace(in.WorkspaceID)
	if workspaceID == "" {
		return entities.Payment{}, ErrInvalidWorkspaceID
	}
	if in.ServiceTotalCents < 0 {
		return entities.Payment{}, ErrInvalidServiceTotal
	}
	log.Printf("[payment][usecase] create start appointment_id=%s workspace_id=%s total_cents=%d", appointmentID, workspaceID, in.ServiceTotalCents)

	existing, err := u.payments.GetByAppointmentID(ctx, appointmentID)
	if err != nil {
		return entities.Payment{}, err
	}
	if existing.ID != "" {
		log.Printf("[payment][usecase] create idempotent-hit appointment_id=%s payment_id=%s status=%s", appointmentID, existing.ID, existing.Status)
		return existing, nil
	}

	appointment, err := u.appointments.GetByID(ctx, appointmentID)
	if err != nil {
		return entities.Payment{}, err
	}
	if appointment.ID == "" {
		log.Printf("[payment][usecase] appointment not found appointment_id=%s", appointmentID)
		return entities.Payment{}, ErrAppointmentNotFound
	}

	settings, err := u.settings.GetByWorkspaceID(ctx, workspaceID)
	if err != nil {
		return entities.Payment{}, err
	}
	policy := settings.Policy
	if settings.WorkspaceID == "" || !policy.RequirePayment || policy.ChargeMode == entities.ChargeModeNone {
		log.Printf("[payment][usecase] payment not required appointment_id=%s workspace_id=%s", appointmentID, workspaceID)
		return entities.Payment{}, ErrPaymentNotRequired
	}

	amount := pricing.ComputeForPolicy(in.ServiceTotalCents, policy)
	if amount <= 0 {
		if in.ServiceTotalCents > 0 {
			// requirePayment is on, the total is positive, and yet the policy
			// resolved to nothing: the configuration itself is broken.
			log.Printf("[payment][usecase] unresolvable charge appointment_id=%s mode=%s", appointmentID, policy.ChargeMode)
			return entities.Payment{}, ErrInvalidChargeConfiguration
		}
		return entities.Payment{}, ErrPaymentNotRequired
	}

	payload := ""
	if policy.Pix.Usable() {
		txid := strings.ReplaceAll(uuid.NewString(), "-", "")
		description := fmt.Sprintf("Agendamento %s", appointmentID)
		payload, err = pix.EncodePayload(policy.Pix, amount, description, txid)
		if err != nil {
			// Tolerated at creation: the charge still exists, the copy-paste
			// code simply stays unavailable until the identity is completed.
			log.Printf("[payment][usecase] payload unavailable appointment_id=%s err=%v", appointmentID, err)
			payload = ""
		}
	} else {
		log.Printf("[payment][usecase] pix identity incomplete, creating payment without payload appointment_id=%s", appointmentID)
	}

	now := time.Now().UTC()
	p := entities.Payment{
		ID:                uuid.NewString(),
		AppointmentID:     appointmentID,
		WorkspaceID:       workspaceID,
		AmountCents:       amount,
		ServiceTotalCents: in.ServiceTotalCents,
		Status:            entities.PaymentStatusPendente,
		PayloadText:       payload,
		CreatedAt:         now,
		ExpiresAt:         now.Add(time.Duration(clampExpiryMinutes(policy.ExpiryMinutes)) * time.Minute),
		Notes:             strings.TrimSpace(in.Notes),
	}

	created, err := u.payments.Create(ctx, p)
	if err != nil {
		log.Printf("[payment][usecase] create failed appointment_id=%s err=%v", appointmentID, err)
		return entities.Payment{}, err
	}
	if created.ID == "" {
		// Lost a concurrent create: the other writer's row wins.
		winner, err := u.payments.GetByAppointmentID(ctx, appointmentID)
		if err != nil {
			return entities.Payment{}, err
		}
		if winner.ID == "" {
			return entities.Payment{}, ErrConcurrentModification
		}
		log.Printf("[payment][usecase] create race-lost appointment_id=%s payment_id=%s", appointmentID, winner.ID)
		return winner, nil
	}
	log.Printf("[payment][usecase] create success appointment_id=%s payment_id=%s amount_cents=%d expires_at=%s", appointmentID, created.ID, created.AmountCents, created.ExpiresAt.Format(time.RFC3339))
	return created, nil
}

// Confirm marks a pending payment as paid and, in the same transaction,
// confirms the linked appointment.
func (u *PaymentLifecycleUseCase) Confirm(ctx context.Context, appointmentID, actorID string) (entities.Payment, error) {
	appointmentID = strings.TrimSpace(appointmentID)
	if appointmentID == "" {
		return entities.Payment{}, ErrInvalidAppointmentID
	}
	actorID = strings.TrimSpace(actorID)
	if actorID == "" {
		return entities.Payment{}, ErrInvalidActorID
	}
	log.Printf("[payment][usecase] confirm start appointment_id=%s actor=%s", appointmentID, actorID)

	confirmed, err := u.payments.ConfirmPending(ctx, appointmentID, actorID, time.Now().UTC())
	if err != nil {
		return entities.Payment{}, err
	}
	if confirmed.ID == "" {
		return entities.Payment{}, u.explainTransitionLoss(ctx, appointmentID, entities.PaymentStatusPago)
	}
	log.Printf("[payment][usecase] confirm success appointment_id=%s payment_id=%s", appointmentID, confirmed.ID)
	return confirmed, nil
}

// Cancel marks a pending payment as cancelled and, in the same transaction,
// cancels the linked appointment recording who triggered it.
func (u *PaymentLifecycleUseCase) Cancel(ctx context.Context, appointmentID, actorID, reason string) (entities.Payment, error) {
	appointmentID = strings.TrimSpace(appointmentID)
	if appointmentID == "" {
		return entities.Payment{}, ErrInvalidAppointmentID
	}
	actorID = strings.TrimSpace(actorID)
	if actorID == "" {
		return entities.Payment{}, ErrInvalidActorID
	}
	reason = strings.TrimSpace(reason)
	if reason == "" {
		reason = "cancelado pelo atendimento"
	}
	log.Printf("[payment][usecase] cancel start appointment_id=%s actor=%s", appointmentID, actorID)

	cancelled, err := u.payments.CancelPending(ctx, appointmentID, actorID, reason, time.Now().UTC())
	if err != nil {
		return entities.Payment{}, err
	}
	if cancelled.ID == "" {
		return entities.Payment{}, u.explainTransitionLoss(ctx, appointmentID, entities.PaymentStatusCancelado)
	}
	log.Printf("[payment][usecase] cancel success appointment_id=%s payment_id=%s", appointmentID, cancelled.ID)
	return cancelled, nil
}

func (u *PaymentLifecycleUseCase) GetByAppointmentID(ctx context.Context, appointmentID string) (entities.Payment, error) {
	appointmentID = strings.TrimSpace(appointmentID)
	if appointmentID == "" {
		return entities.Payment{}, ErrInvalidAppointmentID
	}
	p, err := u.payments.GetByAppointmentID(ctx, appointmentID)
	if err != nil {
		return entities.Payment{}, err
	}
	if p.ID == "" {
		return entities.Payment{}, ErrPaymentNotFound
	}
	return p, nil
}

// explainTransitionLoss turns a conditional-write loss into the precise
// domain error: missing row, terminal state, or a race the caller may retry.
func (u *PaymentLifecycleUseCase) explainTransitionLoss(ctx context.Context, appointmentID string, attempted entities.PaymentStatus) error {
	current, err := u.payments.GetByAppointmentID(ctx, appointmentID)
	if err != nil {
		return err
	}
	if current.ID == "" {
		return ErrPaymentNotFound
	}
	if current.Status != entities.PaymentStatusPendente {
		log.Printf("[payment][usecase] transition rejected appointment_id=%s current=%s attempted=%s", appointmentID, current.Status, attempted)
		return &InvalidStateTransitionError{Current: current.Status, Attempted: attempted}
	}
	// Still pending on re-read: the transaction lost to a writer that has not
	// (or not yet visibly) landed. Retryable.
	return ErrConcurrentModification
}

// clampExpiryMinutes keeps the deadline inside the product bounds without
// failing bookings over a bad stored value. Zero means "never configured"
// and gets the default.
func clampExpiryMinutes(minutes int) int {
	const (
		minExpiry     = 10
		maxExpiry     = 1440
		defaultExpiry = 30
	)
	switch {
	case minutes <= 0:
		return defaultExpiry
	case minutes < minExpiry:
		return minExpiry
	case minutes > maxExpiry:
		return maxExpiry
	default:
		return minutes
	}
}
