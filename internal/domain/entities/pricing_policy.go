package entities

import (
	"strings"
	"time"
)

// ChargeMode selects how much of the service total is charged upfront.

type ChargeMode string

const (
	ChargeModeNone           ChargeMode = "none"
	ChargeModeFull           ChargeMode = "full"
	ChargeModePartialPercent ChargeMode = "partial_percent"
	ChargeModePartialFixed   ChargeMode = "partial_fixed"
)

// PixKeyType is the registered key kind at the central bank directory.

type PixKeyType string

const (
	PixKeyTypeCPF    PixKeyType = "cpf"
	PixKeyTypeCNPJ   PixKeyType = "cnpj"
	PixKeyTypeEmail  PixKeyType = "email"
	PixKeyTypePhone  PixKeyType = "phone"
	PixKeyTypeRandom PixKeyType = "random"
)

// PixIdentity is the merchant identity embedded in the BR Code payload.
type PixIdentity struct {
	KeyType    PixKeyType `json:"key_type"`
	Key        string     `json:"key"`
	HolderName string     `json:"holder_name"`
	City       string     `json:"city"`
}

// Usable reports whether the identity carries enough data to encode a
// payable BR Code.
func (i PixIdentity) Usable() bool {
	return strings.TrimSpace(i.Key) != "" && strings.TrimSpace(i.HolderName) != ""
}

// PricingPolicy is the workspace payment configuration consumed at booking
// time. Numeric bounds (percent 10..100, expiry 10..1440 minutes) are clamped
// at the settings boundary; the core trusts stored values.
type PricingPolicy struct {
	RequirePayment    bool        `json:"require_payment"`
	ChargeMode        ChargeMode  `json:"charge_mode"`
	PartialPercent    int         `json:"partial_percent,omitempty"`
	PartialFixedCents int64       `json:"partial_fixed_cents,omitempty"`
	ExpiryMinutes     int         `json:"expiry_minutes"`
	Pix               PixIdentity `json:"pix"`
}

// WorkspaceSettings is the persisted per-workspace payment configuration.
//
// Storage model (DynamoDB):
//   - PK: workspace_id (string)

type WorkspaceSettings struct {
	WorkspaceID string        `json:"workspace_id"`
	Policy      PricingPolicy `json:"policy"`
	UpdatedAt   time.Time     `json:"updated_at"`
}
