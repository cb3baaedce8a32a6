package pricing

import (
	"math"

	"gerador_licitacao/internal/domain/entities"
)

// Legal parameters for the ME/EPP reserved quota (Lei Complementar 123/2006
// thresholds in BRL).
const (
	quotaExemptionThreshold = 4_800_000.0
	reservedShare           = 0.25
	srpReservedValueCap     = 80_000.0
)

// QuotaSplit derives the reserved/open quota entries for one item. Only
// licitação budgets produce splits, and only while the item's total value
// stays at or under the exemption threshold. Zero-quantity quotas are not
// emitted.
func QuotaSplit(t entities.ProcurementType, m entities.BiddingModality, unitEstimate, totalQuantity float64) []entities.Quota {
	totalValue := unitEstimate * totalQuantity
	if t != entities.ProcurementLicitacao || totalValue > quotaExemptionThreshold {
		return nil
	}

	var reserved float64
	switch m {
	case entities.ModalityPregaoEletronicoComum:
		reserved = math.Floor(totalQuantity * reservedShare)
	case entities.ModalityPregaoEletronicoRP:
		reservedValue := math.Min(totalValue*reservedShare, srpReservedValueCap)
		if unitEstimate > 0 {
			reserved = math.Floor(reservedValue / unitEstimate)
		}
	default:
		return nil
	}

	open := totalQuantity - reserved

	var quotas []entities.Quota
	if reserved > 0 {
		quotas = append(quotas, entities.Quota{
			ID:       "cota_reservada",
			TROrder:  "1.1",
			Type:     entities.QuotaReservadaMEEPP,
			Quantity: reserved,
		})
	}
	if open > 0 {
		quotas = append(quotas, entities.Quota{
			ID:       "cota_ampla",
			TROrder:  "1.2",
			Type:     entities.QuotaAmplaConcorrencia,
			Quantity: open,
		})
	}
	return quotas
}
