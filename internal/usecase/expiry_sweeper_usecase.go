package usecase

import (
	"context"
	"log"
	"strings"
	"time"

	"salao_xpto/internal/domain/entities"
	"salao_xpto/internal/usecase/interfaces"
)

// ExpiryReasonAutomatic is stored on every sweeper-driven cancellation.
const ExpiryReasonAutomatic = "expirado automaticamente"

// SweepReport summarizes one sweeper pass. Skipped counts payments another
// writer claimed between selection and cancellation (a concurrent confirm,
// cancel, or sweep); Failed counts storage errors, reported separately so
// operators can tell contention from breakage.
type SweepReport struct {
	Selected  int `json:"selected"`
	Cancelled int `json:"cancelled"`
	Skipped   int `json:"skipped"`
	Failed    int `json:"failed"`
}

// IExpirySweeperUseCase cancels stale pending payments in bulk.

type IExpirySweeperUseCase interface {
	SweepExpired(ctx context.Context, workspaceID string) (SweepReport, error)
}

type ExpirySweeperUseCase struct {
	payments interfaces.IPaymentRepository
}

var _ IExpirySweeperUseCase = (*ExpirySweeperUseCase)(nil)

func NewExpirySweeperUseCase(payments interfaces.IPaymentRepository) *ExpirySweeperUseCase {
	return &ExpirySweeperUseCase{payments: payments}
}

// SweepExpired selects every pending payment past its deadline (optionally
// scoped to one workspace) and cancels each through the same transactional
// pair-write used by manual cancellation, with cancelled_by = "sistema".
//
// Each payment+appointment pair moves atomically; across pairs the sweep
// logs and continues rather than aborting, and re-running it when nothing
// newly expired is a no-op. Concurrent sweeps cannot double-cancel: the
// conditional write makes the second writer skip.
func (u *ExpirySweeperUseCase) SweepExpired(ctx context.Context, workspaceID string) (SweepReport, error) {
	workspaceID = strings.TrimSpace(workspaceID)
	now := time.Now().UTC()

	expired, err := u.payments.ListExpiredPending(ctx, workspaceID, now)
	if err != nil {
		log.Printf("[sweeper][usecase] selection failed workspace_id=%q err=%v", workspaceID, err)
		return SweepReport{}, err
	}

	report := SweepReport{Selected: len(expired)}
	if len(expired) == 0 {
		return report, nil
	}
	log.Printf("[sweeper][usecase] sweep start workspace_id=%q selected=%d", workspaceID, len(expired))

	for _, p := range expired {
		cancelled, err := u.payments.CancelPending(ctx, p.AppointmentID, entities.CancelledBySistema, ExpiryReasonAutomatic, now)
		if err != nil {
			report.Failed++
			log.Printf("[sweeper][usecase] cancel failed appointment_id=%s payment_id=%s err=%v", p.AppointmentID, p.ID, err)
			continue
		}
		if cancelled.ID == "" {
			report.Skipped++
			log.Printf("[sweeper][usecase] already claimed appointment_id=%s payment_id=%s", p.AppointmentID, p.ID)
			continue
		}
		report.Cancelled++
	}

	log.Printf("[sweeper][usecase] sweep done workspace_id=%q cancelled=%d skipped=%d failed=%d", workspaceID, report.Cancelled, report.Skipped, report.Failed)
	return report, nil
}
