package pricing

import (
	"sort"

	"gerador_licitacao/internal/domain/entities"
)

// Estimate aggregates researched values into a single figure under the chosen
// method. Non-positive values are excluded; an empty filtered set or an
// unknown method yields 0, the documented "insufficient data" sentinel.
func Estimate(values []float64, method entities.EstimationMethod) float64 {
	valid := make([]float64, 0, len(values))
	for _, v := range values {
		if v > 0 {
			valid = append(valid, v)
		}
	}
	if len(valid) == 0 {
		return 0
	}

	switch method {
	case entities.MethodMenorPreco:
		min := valid[0]
		for _, v := range valid[1:] {
			if v < min {
				min = v
			}
		}
		return min
	case entities.MethodMedia:
		sum := 0.0
		for _, v := range valid {
			sum += v
		}
		return sum / float64(len(valid))
	case entities.MethodMediana:
		sorted := append([]float64(nil), valid...)
		sort.Float64s(sorted)
		mid := len(sorted) / 2
		if len(sorted)%2 != 0 {
			return sorted[mid]
		}
		return (sorted[mid-1] + sorted[mid]) / 2
	default:
		return 0
	}
}

// EstimateEntries parses and aggregates price entries. Entries whose value
// does not parse are skipped.
func EstimateEntries(entries []entities.PriceEntry, method entities.EstimationMethod) float64 {
	values := make([]float64, 0, len(entries))
	for _, e := range entries {
		if v, ok := ParseCurrency(e.Value); ok {
			values = append(values, v)
		}
	}
	return Estimate(values, method)
}

// UnitEstimate composes an item group's unit estimate from its included
// entries under the budget's procurement type.
//
//   - licitacao / dispensa_licitacao: straight aggregation.
//   - adesao_ata: min(market value, registry price) when both are positive,
//     otherwise whichever is positive. The market value aggregates non-ata
//     entries (methodology defaulting to media); the registry price is the
//     first included ata entry.
//   - aditivo_contratual: the stored value is manual; callers must not invoke
//     this in that mode.
func UnitEstimate(b entities.Budget, g entities.ItemGroup) float64 {
	included := includedEntries(b, g.ID)

	if b.Type == entities.ProcurementAdesaoAta {
		var ata, market []entities.PriceEntry
		for _, e := range included {
			if e.Source == entities.SourceAta {
				ata = append(ata, e)
			} else {
				market = append(market, e)
			}
		}

		method := b.Method
		if method == "" {
			method = entities.MethodMedia
		}
		marketValue := EstimateEntries(market, method)

		registryPrice := 0.0
		if len(ata) > 0 {
			if v, ok := ParseCurrency(ata[0].Value); ok {
				registryPrice = v
			}
		}

		switch {
		case marketValue > 0 && registryPrice > 0:
			if registryPrice < marketValue {
				return registryPrice
			}
			return marketValue
		case marketValue > 0:
			return marketValue
		default:
			return registryPrice
		}
	}

	return EstimateEntries(included, b.Method)
}

func includedEntries(b entities.Budget, itemGroupID string) []entities.PriceEntry {
	all := b.ItemPrices(itemGroupID)
	included := make([]entities.PriceEntry, 0, len(all))
	for _, e := range all {
		if b.IsIncluded(e.ID) {
			included = append(included, e)
		}
	}
	return included
}
