package response

import (
	"time"

	"gerador_licitacao/internal/domain/entities"
	"gerador_licitacao/internal/domain/pricing"
)

type QuotaResponse struct {
	ID       string  `json:"id"`
	TROrder  string  `json:"tr_order"`
	Type     string  `json:"type"`
	Quantity float64 `json:"quantity"`
}

type PriceEntryResponse struct {
	ID       string `json:"id"`
	Source   string `json:"source"`
	Value    string `json:"value"`
	Included bool   `json:"included"`
}

type ItemGroupResponse struct {
	ID            string  `json:"id"`
	LotID         string  `json:"lot_id,omitempty"`
	TRItem        string  `json:"tr_item"`
	Description   string  `json:"description"`
	SimasCode     string  `json:"simas_code"`
	Unit          string  `json:"unit"`
	TotalQuantity float64 `json:"total_quantity"`
	UnitEstimate  float64 `json:"unit_estimate"`
	TotalEstimate float64 `json:"total_estimate"`

	Quotas []QuotaResponse      `json:"quotas,omitempty"`
	Prices []PriceEntryResponse `json:"prices"`

	AmendmentPercent  float64 `json:"amendment_percent,omitempty"`
	AmendmentQuantity float64 `json:"amendment_quantity,omitempty"`
	AmendmentValue    float64 `json:"amendment_value,omitempty"`
}

type RegistryRecordResponse struct {
	Number string `json:"number"`
	Year   string `json:"year"`
	Agency string `json:"agency"`
	State  string `json:"state"`
}

type ContractDataResponse struct {
	Number string `json:"number"`
	Year   string `json:"year"`
}

type ReadjustmentResponse struct {
	Declared string  `json:"declared"`
	Percent  float64 `json:"percent"`
	Index    string  `json:"index"`
}

type DirectSupplierResponse struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	Justification   string `json:"justification"`
	RequirementsMet string `json:"requirements_met"`
}

type SignatoryResponse struct {
	Name    string `json:"name"`
	WarName string `json:"war_name"`
	Rank    string `json:"rank"`
	Role    string `json:"role"`
}

type BudgetResponse struct {
	ID   string `json:"id"`
	PAE  string `json:"pae"`
	City string `json:"city"`
	Date string `json:"date"`

	Type     string `json:"type"`
	Modality string `json:"modality,omitempty"`
	Method   string `json:"method,omitempty"`

	ResearchSources []string `json:"research_sources"`

	Items []ItemGroupResponse `json:"items"`

	Registry     RegistryRecordResponse `json:"registry"`
	Contract     ContractDataResponse   `json:"contract"`
	Readjustment ReadjustmentResponse   `json:"readjustment"`

	PriceDiscarded       string `json:"price_discarded,omitempty"`
	DiscardJustification string `json:"discard_justification,omitempty"`

	NoSourceJustification       string                   `json:"no_source_justification,omitempty"`
	DirectResearchJustification string                   `json:"direct_research_justification,omitempty"`
	DirectSuppliers             []DirectSupplierResponse `json:"direct_suppliers,omitempty"`

	Signatory1 SignatoryResponse `json:"signatory_1"`
	Signatory2 SignatoryResponse `json:"signatory_2"`

	TotalValue float64 `json:"total_value"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func FromBudget(b entities.Budget) BudgetResponse {
	items := make([]ItemGroupResponse, 0, len(b.ItemGroups))
	total := 0.0
	for _, g := range b.ItemGroups {
		item := fromItemGroup(b, g)
		total += item.TotalEstimate
		items = append(items, item)
	}

	suppliers := make([]DirectSupplierResponse, 0, len(b.DirectSuppliers))
	for _, s := range b.DirectSuppliers {
		suppliers = append(suppliers, DirectSupplierResponse{
			ID:              s.ID,
			Name:            s.Name,
			Justification:   s.Justification,
			RequirementsMet: s.RequirementsMet,
		})
	}

	return BudgetResponse{
		ID:              b.ID,
		PAE:             b.PAE,
		City:            b.City,
		Date:            b.Date,
		Type:            string(b.Type),
		Modality:        string(b.Modality),
		Method:          string(b.Method),
		ResearchSources: b.ResearchSources,
		Items:           items,
		Registry: RegistryRecordResponse{
			Number: b.Registry.Number,
			Year:   b.Registry.Year,
			Agency: b.Registry.Agency,
			State:  b.Registry.State,
		},
		Contract: ContractDataResponse{
			Number: b.Contract.Number,
			Year:   b.Contract.Year,
		},
		Readjustment: ReadjustmentResponse{
			Declared: b.Readjustment.Declared,
			Percent:  b.Readjustment.Percent,
			Index:    b.Readjustment.Index,
		},
		PriceDiscarded:              b.PriceDiscarded,
		DiscardJustification:        b.DiscardJustification,
		NoSourceJustification:       b.NoSourceJustification,
		DirectResearchJustification: b.DirectResearchJustification,
		DirectSuppliers:             suppliers,
		Signatory1: SignatoryResponse{
			Name:    b.Signatory1.Name,
			WarName: b.Signatory1.WarName,
			Rank:    b.Signatory1.Rank,
			Role:    b.Signatory1.Role,
		},
		Signatory2: SignatoryResponse{
			Name:    b.Signatory2.Name,
			WarName: b.Signatory2.WarName,
			Rank:    b.Signatory2.Rank,
			Role:    b.Signatory2.Role,
		},
		TotalValue: total,
		CreatedAt:  b.CreatedAt,
		UpdatedAt:  b.UpdatedAt,
	}
}

func fromItemGroup(b entities.Budget, g entities.ItemGroup) ItemGroupResponse {
	quotas := make([]QuotaResponse, 0, len(g.Quotas))
	for _, q := range g.Quotas {
		quotas = append(quotas, QuotaResponse{
			ID:       q.ID,
			TROrder:  q.TROrder,
			Type:     string(q.Type),
			Quantity: q.Quantity,
		})
	}

	entries := b.ItemPrices(g.ID)
	prices := make([]PriceEntryResponse, 0, len(entries))
	for _, p := range entries {
		prices = append(prices, PriceEntryResponse{
			ID:       p.ID,
			Source:   p.Source,
			Value:    p.Value,
			Included: b.IsIncluded(p.ID),
		})
	}

	return ItemGroupResponse{
		ID:                g.ID,
		LotID:             g.LotID,
		TRItem:            g.TRItem,
		Description:       g.Description,
		SimasCode:         g.SimasCode,
		Unit:              g.Unit,
		TotalQuantity:     g.TotalQuantity,
		UnitEstimate:      g.UnitEstimate,
		TotalEstimate:     g.UnitEstimate * g.TotalQuantity,
		Quotas:            quotas,
		Prices:            prices,
		AmendmentPercent:  g.AmendmentPercent,
		AmendmentQuantity: g.AmendmentQuantity,
		AmendmentValue:    g.AmendmentValue,
	}
}

type ComparisonRowResponse struct {
	ItemGroupID    string  `json:"item_group_id"`
	TRItem         string  `json:"tr_item"`
	Description    string  `json:"description"`
	BaseTotal      float64 `json:"base_total"`
	NewGlobalValue float64 `json:"new_global_value"`
	NewUnitPrice   float64 `json:"new_unit_price"`
	MarketAverage  float64 `json:"market_average"`
	Difference     float64 `json:"difference"`
}

type ComparisonResponse struct {
	Required bool                    `json:"required"`
	Rows     []ComparisonRowResponse `json:"rows"`
}

func FromComparison(required bool, rows []pricing.ComparisonRow) ComparisonResponse {
	out := make([]ComparisonRowResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, ComparisonRowResponse{
			ItemGroupID:    r.ItemGroupID,
			TRItem:         r.TRItem,
			Description:    r.Description,
			BaseTotal:      r.BaseTotal,
			NewGlobalValue: r.NewGlobalValue,
			NewUnitPrice:   r.NewUnitPrice,
			MarketAverage:  r.MarketAverage,
			Difference:     r.Difference,
		})
	}
	return ComparisonResponse{Required: required, Rows: out}
}
