package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"salao_xpto/internal/domain/entities"
	"salao_xpto/internal/domain/pix"
	"salao_xpto/internal/usecase/interfaces"
)

var (
	ErrSettingsNotFound   = errors.New("workspace payment settings not found")
	ErrIncompletePixSetup = errors.New("payment required but pix identity incomplete")
)

// PublicPaymentInfo is the only payment data exposed on unauthenticated
// booking pages. The raw key never leaves the backend.
type PublicPaymentInfo struct {
	RequirePayment bool                `json:"require_payment"`
	KeyType        entities.PixKeyType `json:"key_type,omitempty"`
	MaskedKey      string              `json:"masked_key,omitempty"`
	HolderName     string              `json:"holder_name,omitempty"`
	City           string              `json:"city,omitempty"`
	ExpiryMinutes  int                 `json:"payment_expiry_minutes,omitempty"`
}

// IWorkspaceSettingsUseCase manages the per-workspace pricing policy.

type IWorkspaceSettingsUseCase interface {
	Put(ctx context.Context, workspaceID string, policy entities.PricingPolicy) (entities.WorkspaceSettings, error)
	Get(ctx context.Context, workspaceID string) (entities.WorkspaceSettings, error)
	PublicPaymentInfo(ctx context.Context, workspaceID string) (PublicPaymentInfo, error)
}

type WorkspaceSettingsUseCase struct {
	repo interfaces.IWorkspaceSettingsRepository
}

var _ IWorkspaceSettingsUseCase = (*WorkspaceSettingsUseCase)(nil)

func NewWorkspaceSettingsUseCase(repo interfaces.IWorkspaceSettingsRepository) *WorkspaceSettingsUseCase {
	return &WorkspaceSettingsUseCase{repo: repo}
}

// Put validates and persists the workspace policy. Numeric bounds are
// clamped rather than rejected; the only hard rejection is a policy that
// demands payment without a usable PIX identity, because that combination
// can never produce a payable charge.
func (u *WorkspaceSettingsUseCase) Put(ctx context.Context, workspaceID string, policy entities.PricingPolicy) (entities.WorkspaceSettings, error) {
	workspaceID = strings.TrimSpace(workspaceID)
	if workspaceID == "" {
		return entities.WorkspaceSettings{}, ErrInvalidWorkspaceID
	}
	if policy.RequirePayment && !policy.Pix.Usable() {
		log.Printf("[settings][usecase] rejected incomplete pix setup workspace_id=%s", workspaceID)
		return entities.WorkspaceSettings{}, ErrIncompletePixSetup
	}

	policy.ExpiryMinutes = clampExpiryMinutes(policy.ExpiryMinutes)
	if policy.ChargeMode == entities.ChargeModePartialPercent && policy.PartialPercent != 0 {
		// Zero stays zero: the calculator treats an unset percent as
		// "charge the full total" and that behavior is documented.
		policy.PartialPercent = clampPercent(policy.PartialPercent)
	}
	policy.Pix.Key = strings.TrimSpace(policy.Pix.Key)
	policy.Pix.HolderName = strings.TrimSpace(policy.Pix.HolderName)
	policy.Pix.City = strings.TrimSpace(policy.Pix.City)

	saved, err := u.repo.Put(ctx, entities.WorkspaceSettings{
		WorkspaceID: workspaceID,
		Policy:      policy,
		UpdatedAt:   time.Now().UTC(),
	})
	if err != nil {
		return entities.WorkspaceSettings{}, err
	}
	log.Printf("[settings][usecase] saved workspace_id=%s mode=%s require_payment=%t", workspaceID, policy.ChargeMode, policy.RequirePayment)
	return saved, nil
}

func (u *WorkspaceSettingsUseCase) Get(ctx context.Context, workspaceID string) (entities.WorkspaceSettings, error) {
	workspaceID = strings.TrimSpace(workspaceID)
	if workspaceID == "" {
		return entities.WorkspaceSettings{}, ErrInvalidWorkspaceID
	}
	s, err := u.repo.GetByWorkspaceID(ctx, workspaceID)
	if err != nil {
		return entities.WorkspaceSettings{}, err
	}
	if s.WorkspaceID == "" {
		return entities.WorkspaceSettings{}, ErrSettingsNotFound
	}
	return s, nil
}

// PublicPaymentInfo builds the masked view for booking pages. A workspace
// without settings is simply one that does not require payment.
func (u *WorkspaceSettingsUseCase) PublicPaymentInfo(ctx context.Context, workspaceID string) (PublicPaymentInfo, error) {
	workspaceID = strings.TrimSpace(workspaceID)
	if workspaceID == "" {
		return PublicPaymentInfo{}, ErrInvalidWorkspaceID
	}
	s, err := u.repo.GetByWorkspaceID(ctx, workspaceID)
	if err != nil {
		return PublicPaymentInfo{}, err
	}
	if s.WorkspaceID == "" || !s.Policy.RequirePayment {
		return PublicPaymentInfo{RequirePayment: false}, nil
	}
	return PublicPaymentInfo{
		RequirePayment: true,
		KeyType:        s.Policy.Pix.KeyType,
		MaskedKey:      pix.MaskKey(s.Policy.Pix.Key, s.Policy.Pix.KeyType),
		HolderName:     s.Policy.Pix.HolderName,
		City:           s.Policy.Pix.City,
		ExpiryMinutes:  s.Policy.ExpiryMinutes,
	}, nil
}

func clampPercent(p int) int {
	const (
		minPercent = 10
		maxPercent = 100
	)
	switch {
	case p < minPercent:
		return minPercent
	case p > maxPercent:
		return maxPercent
	default:
		return p
	}
}
