package request

import (
	"strings"

	"salao_xpto/internal/domain/entities"
)

// PixIdentityRequest carries the merchant identity fields of the settings
// form.
type PixIdentityRequest struct {
	KeyType    string `json:"key_type" binding:"omitempty,oneof=cpf cnpj email phone random"`
	Key        string `json:"key"`
	HolderName string `json:"holder_name"`
	City       string `json:"city"`
}

// PaymentSettingsRequest is the admin-facing payload for the workspace
// pricing policy. Bounds are validated loosely here and clamped by the
// usecase; the binding layer only rejects structurally impossible values.
type PaymentSettingsRequest struct {
	RequirePayment    bool               `json:"require_payment"`
	ChargeMode        string             `json:"charge_mode" binding:"required,oneof=none full partial_percent partial_fixed"`
	PartialPercent    int                `json:"partial_percent" binding:"omitempty,min=0,max=100"`
	PartialFixedCents int64              `json:"partial_fixed_cents" binding:"min=0"`
	ExpiryMinutes     int                `json:"expiry_minutes" binding:"min=0"`
	Pix               PixIdentityRequest `json:"pix"`
}

// ToPolicy translates the transport payload into the domain configuration.
func (r PaymentSettingsRequest) ToPolicy() entities.PricingPolicy {
	return entities.PricingPolicy{
		RequirePayment:    r.RequirePayment,
		ChargeMode:        entities.ChargeMode(r.ChargeMode),
		PartialPercent:    r.PartialPercent,
		PartialFixedCents: r.PartialFixedCents,
		ExpiryMinutes:     r.ExpiryMinutes,
		Pix: entities.PixIdentity{
			KeyType:    entities.PixKeyType(strings.TrimSpace(r.Pix.KeyType)),
			Key:        strings.TrimSpace(r.Pix.Key),
			HolderName: strings.TrimSpace(r.Pix.HolderName),
			City:       strings.TrimSpace(r.Pix.City),
		},
	}
}
