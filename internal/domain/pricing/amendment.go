package pricing

import "gerador_licitacao/internal/domain/entities"

// AmendmentField tags which of the three linked amendment fields the user
// edited. The other two are derived from it, never the other way around.

type AmendmentField string

const (
	AmendmentPercent  AmendmentField = "percent"
	AmendmentQuantity AmendmentField = "quantity"
	AmendmentValue    AmendmentField = "value"
)

// Valid reports whether f is one of the three editable fields.
func (f AmendmentField) Valid() bool {
	switch f {
	case AmendmentPercent, AmendmentQuantity, AmendmentValue:
		return true
	}
	return false
}

func readjustedUnitPrice(g entities.ItemGroup, r entities.Readjustment) float64 {
	if r.Applies() {
		return g.UnitEstimate * (1 + r.Percent/100)
	}
	return g.UnitEstimate
}

// ApplyAmendment stores the edited field and derives its two counterparts
// over the readjusted unit price. When the item has no usable base (zero
// quantity or price) only the edited field is stored, so no NaN or Inf ever
// reaches the document.
func ApplyAmendment(g entities.ItemGroup, r entities.Readjustment, field AmendmentField, value float64) entities.ItemGroup {
	adjustedUnit := readjustedUnitPrice(g, r)
	adjustedTotal := adjustedUnit * g.TotalQuantity

	set := func(out *entities.ItemGroup) {
		switch field {
		case AmendmentPercent:
			out.AmendmentPercent = value
		case AmendmentQuantity:
			out.AmendmentQuantity = value
		case AmendmentValue:
			out.AmendmentValue = value
		}
	}

	if g.TotalQuantity <= 0 || adjustedUnit <= 0 || adjustedTotal <= 0 {
		set(&g)
		return g
	}

	switch field {
	case AmendmentPercent:
		g.AmendmentPercent = value
		g.AmendmentQuantity = g.TotalQuantity * (value / 100)
		g.AmendmentValue = adjustedTotal * (value / 100)
	case AmendmentQuantity:
		g.AmendmentQuantity = value
		g.AmendmentPercent = (value / g.TotalQuantity) * 100
		g.AmendmentValue = value * adjustedUnit
	case AmendmentValue:
		g.AmendmentValue = value
		g.AmendmentPercent = (value / adjustedTotal) * 100
		g.AmendmentQuantity = value / adjustedUnit
	}
	return g
}

// ComparisonRow is one line of the "novo valor do contrato x média de
// mercado" audit table. BaseTotal keeps the historical contract total
// (without readjustment); the new unit price is computed over the readjusted
// total, matching the legal reading that the amendment itself is priced on
// the readjusted contract.
type ComparisonRow struct {
	ItemGroupID    string  `json:"item_group_id"`
	TRItem         string  `json:"tr_item"`
	Description    string  `json:"description"`
	BaseTotal      float64 `json:"base_total"`
	NewGlobalValue float64 `json:"new_global_value"`
	NewUnitPrice   float64 `json:"new_unit_price"`
	MarketAverage  float64 `json:"market_average"`
	Difference     float64 `json:"difference"`
}

// NeedsMarketComparison reports whether the audit table applies: only for
// aditivo budgets, and only when a readjustment was declared or some item's
// amendment exceeds 25%.
func NeedsMarketComparison(b entities.Budget) bool {
	if b.Type != entities.ProcurementAditivo {
		return false
	}
	if b.Readjustment.Declared == "sim" {
		return true
	}
	for _, g := range b.ItemGroups {
		if g.AmendmentPercent > 25 {
			return true
		}
	}
	return false
}

// MarketComparison builds the audit table. The market side always uses the
// arithmetic mean regardless of the budget's methodology. Purely
// informational: nothing here feeds back into stored estimates.
func MarketComparison(b entities.Budget) []ComparisonRow {
	if !NeedsMarketComparison(b) {
		return nil
	}

	rows := make([]ComparisonRow, 0, len(b.ItemGroups))
	for _, g := range b.ItemGroups {
		adjustedTotal := readjustedUnitPrice(g, b.Readjustment) * g.TotalQuantity
		newGlobal := adjustedTotal + g.AmendmentValue

		newUnit := 0.0
		if g.TotalQuantity > 0 {
			newUnit = newGlobal / g.TotalQuantity
		}

		marketAverage := EstimateEntries(includedEntries(b, g.ID), entities.MethodMedia)

		rows = append(rows, ComparisonRow{
			ItemGroupID:    g.ID,
			TRItem:         g.TRItem,
			Description:    g.Description,
			BaseTotal:      g.UnitEstimate * g.TotalQuantity,
			NewGlobalValue: newGlobal,
			NewUnitPrice:   newUnit,
			MarketAverage:  marketAverage,
			Difference:     newUnit - marketAverage,
		})
	}
	return rows
}
