package pricing

import (
	"math"
	"testing"

	"gerador_licitacao/internal/domain/entities"
)

func closeTo(t *testing.T, name string, got, want float64) {
	t.Helper()
	if math.Abs(got-want) > 1e-9 {
		t.Fatalf("%s = %v, want %v", name, got, want)
	}
}

func TestApplyAmendment_Linkage(t *testing.T) {
	base := entities.ItemGroup{ID: "g1", TotalQuantity: 50, UnitEstimate: 20}
	none := entities.Readjustment{}

	t.Run("from percent", func(t *testing.T) {
		g := ApplyAmendment(base, none, AmendmentPercent, 10)
		closeTo(t, "percent", g.AmendmentPercent, 10)
		closeTo(t, "quantity", g.AmendmentQuantity, 5)
		closeTo(t, "value", g.AmendmentValue, 100)
	})

	t.Run("from quantity round-trips", func(t *testing.T) {
		g := ApplyAmendment(base, none, AmendmentQuantity, 5)
		closeTo(t, "percent", g.AmendmentPercent, 10)
		closeTo(t, "quantity", g.AmendmentQuantity, 5)
		closeTo(t, "value", g.AmendmentValue, 100)
	})

	t.Run("from value round-trips", func(t *testing.T) {
		g := ApplyAmendment(base, none, AmendmentValue, 100)
		closeTo(t, "percent", g.AmendmentPercent, 10)
		closeTo(t, "quantity", g.AmendmentQuantity, 5)
		closeTo(t, "value", g.AmendmentValue, 100)
	})

	t.Run("readjustment scales value but not quantity", func(t *testing.T) {
		r := entities.Readjustment{Declared: "sim", Percent: 10}
		g := ApplyAmendment(base, r, AmendmentPercent, 10)
		closeTo(t, "quantity", g.AmendmentQuantity, 5)
		// adjusted unit 22, adjusted total 1100, 10% = 110
		closeTo(t, "value", g.AmendmentValue, 110)
	})

	t.Run("undeclared readjustment percent is ignored", func(t *testing.T) {
		r := entities.Readjustment{Declared: "nao", Percent: 10}
		g := ApplyAmendment(base, r, AmendmentPercent, 10)
		closeTo(t, "value", g.AmendmentValue, 100)
	})
}

func TestApplyAmendment_Guards(t *testing.T) {
	none := entities.Readjustment{}

	t.Run("zero quantity stores only the edited field", func(t *testing.T) {
		g := ApplyAmendment(entities.ItemGroup{UnitEstimate: 20}, none, AmendmentPercent, 10)
		closeTo(t, "percent", g.AmendmentPercent, 10)
		closeTo(t, "quantity", g.AmendmentQuantity, 0)
		closeTo(t, "value", g.AmendmentValue, 0)
	})

	t.Run("zero unit price stores only the edited field", func(t *testing.T) {
		g := ApplyAmendment(entities.ItemGroup{TotalQuantity: 50}, none, AmendmentValue, 100)
		closeTo(t, "value", g.AmendmentValue, 100)
		closeTo(t, "percent", g.AmendmentPercent, 0)
		closeTo(t, "quantity", g.AmendmentQuantity, 0)
	})
}

func TestAmendmentField_Valid(t *testing.T) {
	for _, f := range []AmendmentField{AmendmentPercent, AmendmentQuantity, AmendmentValue} {
		if !f.Valid() {
			t.Fatalf("%q should be valid", f)
		}
	}
	if AmendmentField("unit").Valid() {
		t.Fatal("unexpected valid field")
	}
}

func aditivoBudget() entities.Budget {
	return entities.Budget{
		Type: entities.ProcurementAditivo,
		ItemGroups: []entities.ItemGroup{
			{ID: "g1", TRItem: "1", TotalQuantity: 50, UnitEstimate: 20, AmendmentValue: 100, AmendmentPercent: 10},
		},
		Prices: map[string][]entities.PriceEntry{"g1": {
			{ID: "p1", Source: entities.SourceSimas, Value: "18,00"},
			{ID: "p2", Source: entities.SourcePNCP, Value: "22,00"},
		}},
	}
}

func TestNeedsMarketComparison(t *testing.T) {
	t.Run("not aditivo", func(t *testing.T) {
		b := aditivoBudget()
		b.Type = entities.ProcurementLicitacao
		if NeedsMarketComparison(b) {
			t.Fatal("expected false for licitacao")
		}
	})

	t.Run("aditivo below threshold without readjustment", func(t *testing.T) {
		if NeedsMarketComparison(aditivoBudget()) {
			t.Fatal("expected false at 10%")
		}
	})

	t.Run("declared readjustment", func(t *testing.T) {
		b := aditivoBudget()
		b.Readjustment = entities.Readjustment{Declared: "sim", Percent: 5}
		if !NeedsMarketComparison(b) {
			t.Fatal("expected true with readjustment")
		}
	})

	t.Run("amendment over 25 percent", func(t *testing.T) {
		b := aditivoBudget()
		b.ItemGroups[0].AmendmentPercent = 30
		if !NeedsMarketComparison(b) {
			t.Fatal("expected true over 25%")
		}
	})
}

func TestMarketComparison(t *testing.T) {
	b := aditivoBudget()
	b.Readjustment = entities.Readjustment{Declared: "sim", Percent: 10}

	rows := MarketComparison(b)
	if len(rows) != 1 {
		t.Fatalf("expected one row, got %d", len(rows))
	}
	row := rows[0]

	// Base total stays historical: 20 * 50.
	closeTo(t, "base total", row.BaseTotal, 1000)
	// New global uses the readjusted total: 22*50 + 100.
	closeTo(t, "new global", row.NewGlobalValue, 1200)
	closeTo(t, "new unit", row.NewUnitPrice, 24)
	// Market side always uses the mean.
	closeTo(t, "market average", row.MarketAverage, 20)
	closeTo(t, "difference", row.Difference, 4)
}
