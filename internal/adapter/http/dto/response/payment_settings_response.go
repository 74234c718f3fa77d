package response

import (
	"time"

	"salao_xpto/internal/domain/entities"
	"salao_xpto/internal/usecase"
)

type PixIdentityResponse struct {
	KeyType    string `json:"key_type"`
	Key        string `json:"key"`
	HolderName string `json:"holder_name"`
	City       string `json:"city"`
}

type PaymentSettingsResponse struct {
	WorkspaceID       string              `json:"workspace_id"`
	RequirePayment    bool                `json:"require_payment"`
	ChargeMode        string              `json:"charge_mode"`
	PartialPercent    int                 `json:"partial_percent,omitempty"`
	PartialFixedCents int64               `json:"partial_fixed_cents,omitempty"`
	ExpiryMinutes     int                 `json:"expiry_minutes"`
	Pix               PixIdentityResponse `json:"pix"`
	UpdatedAt         time.Time           `json:"updated_at"`
}

func FromWorkspaceSettings(s entities.WorkspaceSettings) PaymentSettingsResponse {
	return PaymentSettingsResponse{
		WorkspaceID:       s.WorkspaceID,
		RequirePayment:    s.Policy.RequirePayment,
		ChargeMode:        string(s.Policy.ChargeMode),
		PartialPercent:    s.Policy.PartialPercent,
		PartialFixedCents: s.Policy.PartialFixedCents,
		ExpiryMinutes:     s.Policy.ExpiryMinutes,
		Pix: PixIdentityResponse{
			KeyType:    string(s.Policy.Pix.KeyType),
			Key:        s.Policy.Pix.Key,
			HolderName: s.Policy.Pix.HolderName,
			City:       s.Policy.Pix.City,
		},
		UpdatedAt: s.UpdatedAt,
	}
}

// PublicPaymentInfoResponse is the client-facing view of a workspace's
// payment setup. The key is always masked here.
type PublicPaymentInfoResponse struct {
	RequirePayment bool   `json:"require_payment"`
	KeyType        string `json:"key_type,omitempty"`
	MaskedKey      string `json:"masked_key,omitempty"`
	HolderName     string `json:"holder_name,omitempty"`
	City           string `json:"city,omitempty"`
	ExpiryMinutes  int    `json:"expiry_minutes,omitempty"`
}

func FromPublicPaymentInfo(info usecase.PublicPaymentInfo) PublicPaymentInfoResponse {
	return PublicPaymentInfoResponse{
		RequirePayment: info.RequirePayment,
		KeyType:        string(info.KeyType),
		MaskedKey:      info.MaskedKey,
		HolderName:     info.HolderName,
		City:           info.City,
		ExpiryMinutes:  info.ExpiryMinutes,
	}
}
