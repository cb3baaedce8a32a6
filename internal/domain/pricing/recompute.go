package pricing

import (
	"reflect"

	"gerador_licitacao/internal/domain/entities"
)

// Recompute derives unit estimates and then quota splits for every item
// group, returning the updated document. A derived field is written only when
// its freshly computed value differs from the stored one, so running
// Recompute twice over unchanged inputs returns an identical document. The
// inputs it reads (prices, inclusion flags, methodology, type, modality,
// quantities) are never part of what it writes, which keeps the pass a
// single-step fixpoint.
func Recompute(b entities.Budget) entities.Budget {
	b = recomputeEstimates(b)
	return recomputeQuotas(b)
}

func recomputeEstimates(b entities.Budget) entities.Budget {
	// Aditivo estimates are manual contract prices; never overwrite them.
	if b.Type == entities.ProcurementAditivo {
		return b
	}
	// Licitação and dispensa need a methodology before anything can be
	// estimated; leave current values alone until one is selected.
	if (b.Type == entities.ProcurementLicitacao || b.Type == entities.ProcurementDispensa) && b.Method == "" {
		return b
	}

	changed := false
	groups := make([]entities.ItemGroup, len(b.ItemGroups))
	for i, g := range b.ItemGroups {
		estimate := UnitEstimate(b, g)
		if g.UnitEstimate != estimate {
			g.UnitEstimate = estimate
			changed = true
		}
		groups[i] = g
	}
	if changed {
		b.ItemGroups = groups
	}
	return b
}

func recomputeQuotas(b entities.Budget) entities.Budget {
	changed := false
	groups := make([]entities.ItemGroup, len(b.ItemGroups))
	for i, g := range b.ItemGroups {
		quotas := QuotaSplit(b.Type, b.Modality, g.UnitEstimate, g.TotalQuantity)
		if !reflect.DeepEqual(g.Quotas, quotas) {
			g.Quotas = quotas
			changed = true
		}
		groups[i] = g
	}
	if changed {
		b.ItemGroups = groups
	}
	return b
}
