// Package pricing computes upfront PIX charge amounts from a workspace
// pricing policy. Everything here is pure integer arithmetic on minor units
// (centavos); floats never touch money.
package pricing

import "salao_xpto/internal/domain/entities"

// ComputeAmount resolves the charge for a booking.
//
// Precondition: serviceTotalCents >= 0. The function never fails; misconfigured
// policies degrade to documented fallbacks instead of erroring, because the
// booking flow must not break when an admin half-fills the settings form:
//
//   - full:            the whole service total.
//   - partial_percent: round-half-up percentage of the total; a missing or
//     out-of-range percent falls back to the full total.
//   - partial_fixed:   the configured amount capped at the total; absent or
//     non-positive values fall back to the full total.
//   - none / unknown:  zero (no upfront charge).
func ComputeAmount(serviceTotalCents int64, mode entities.ChargeMode, percent int, fixedCents int64) int64 {
	switch mode {
	case entities.ChargeModeFull:
		return serviceTotalCents
	case entities.ChargeModePartialPercent:
		if percent <= 0 || percent > 100 {
			return serviceTotalCents
		}
		return (serviceTotalCents*int64(percent) + 50) / 100
	case entities.ChargeModePartialFixed:
		if fixedCents <= 0 {
			return serviceTotalCents
		}
		if fixedCents > serviceTotalCents {
			return serviceTotalCents
		}
		return fixedCents
	default:
		return 0
	}
}

// ComputeForPolicy applies ComputeAmount with the fields of a stored policy.
func ComputeForPolicy(serviceTotalCents int64, policy entities.PricingPolicy) int64 {
	return ComputeAmount(serviceTotalCents, policy.ChargeMode, policy.PartialPercent, policy.PartialFixedCents)
}
