package request

import (
	"strings"

	"gerador_licitacao/internal/domain/entities"
	"gerador_licitacao/internal/usecase"
)

// CreateBudgetRequest opens a new budget draft. Only the PAE number is
// mandatory; city and date land on the document header.
type CreateBudgetRequest struct {
	PAE  string `json:"pae" binding:"required"`
	City string `json:"city"`
	Date string `json:"date"`
}

type RegistryRecordRequest struct {
	Number string `json:"number"`
	Year   string `json:"year"`
	Agency string `json:"agency"`
	State  string `json:"state" binding:"omitempty,oneof=AC AL AP AM BA CE DF ES GO MA MT MS MG PA PB PR PE PI RJ RN RS RO RR SC SP SE TO"`
}

type ContractDataRequest struct {
	Number string `json:"number"`
	Year   string `json:"year"`
}

type ReadjustmentRequest struct {
	Declared string  `json:"declared" binding:"omitempty,oneof=sim nao"`
	Percent  float64 `json:"percent"`
	Index    string  `json:"index" binding:"omitempty,oneof=IPCA IGP-M INPC IPC-Fipe Outro"`
}

type DirectSupplierRequest struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	Justification   string `json:"justification"`
	RequirementsMet string `json:"requirements_met" binding:"omitempty,oneof=sim nao"`
}

type SignatoryRequest struct {
	Name    string `json:"name"`
	WarName string `json:"war_name"`
	Rank    string `json:"rank"`
	Role    string `json:"role"`
}

// SettingsRequest carries a full replacement of the budget settings, the same
// shape the form keeps in memory.
type SettingsRequest struct {
	City string `json:"city"`
	Date string `json:"date"`

	Type     string `json:"type" binding:"required,oneof=licitacao adesao_ata dispensa_licitacao aditivo_contratual"`
	Modality string `json:"modality" binding:"omitempty,oneof=pregao_eletronico_comum pregao_eletronico_rp outra"`
	Method   string `json:"method" binding:"omitempty,oneof=menor media mediana"`

	ResearchSources []string `json:"research_sources"`

	Registry     RegistryRecordRequest `json:"registry"`
	Contract     ContractDataRequest   `json:"contract"`
	Readjustment ReadjustmentRequest   `json:"readjustment"`

	PriceDiscarded       string `json:"price_discarded"`
	DiscardJustification string `json:"discard_justification"`

	NoSourceJustification       string                  `json:"no_source_justification"`
	DirectResearchJustification string                  `json:"direct_research_justification"`
	DirectSuppliers             []DirectSupplierRequest `json:"direct_suppliers"`

	Signatory1 SignatoryRequest `json:"signatory_1"`
	Signatory2 SignatoryRequest `json:"signatory_2"`
}

func (r SettingsRequest) ToSettings() usecase.BudgetSettings {
	suppliers := make([]entities.DirectSupplier, 0, len(r.DirectSuppliers))
	for _, s := range r.DirectSuppliers {
		suppliers = append(suppliers, entities.DirectSupplier{
			ID:              s.ID,
			Name:            s.Name,
			Justification:   s.Justification,
			RequirementsMet: s.RequirementsMet,
		})
	}

	return usecase.BudgetSettings{
		City:            r.City,
		Date:            r.Date,
		Type:            entities.ProcurementType(r.Type),
		Modality:        entities.BiddingModality(r.Modality),
		Method:          entities.EstimationMethod(r.Method),
		ResearchSources: r.ResearchSources,
		Registry: entities.RegistryRecord{
			Number: r.Registry.Number,
			Year:   r.Registry.Year,
			Agency: r.Registry.Agency,
			State:  r.Registry.State,
		},
		Contract: entities.ContractData{
			Number: r.Contract.Number,
			Year:   r.Contract.Year,
		},
		Readjustment: entities.Readjustment{
			Declared: r.Readjustment.Declared,
			Percent:  r.Readjustment.Percent,
			Index:    r.Readjustment.Index,
		},
		PriceDiscarded:              r.PriceDiscarded,
		DiscardJustification:        r.DiscardJustification,
		NoSourceJustification:       r.NoSourceJustification,
		DirectResearchJustification: r.DirectResearchJustification,
		DirectSuppliers:             suppliers,
		Signatory1: entities.Signatory{
			Name:    r.Signatory1.Name,
			WarName: r.Signatory1.WarName,
			Rank:    r.Signatory1.Rank,
			Role:    r.Signatory1.Role,
		},
		Signatory2: entities.Signatory{
			Name:    r.Signatory2.Name,
			WarName: r.Signatory2.WarName,
			Rank:    r.Signatory2.Rank,
			Role:    r.Signatory2.Role,
		},
	}
}

// ItemRequest adds an item group row to the terms of reference table.
type ItemRequest struct {
	TRItem        string  `json:"tr_item"`
	Description   string  `json:"description"`
	SimasCode     string  `json:"simas_code"`
	Unit          string  `json:"unit"`
	TotalQuantity float64 `json:"total_quantity"`
	UnitEstimate  float64 `json:"unit_estimate"`
}

func (r ItemRequest) ToItemGroup() entities.ItemGroup {
	return entities.ItemGroup{
		TRItem:        strings.TrimSpace(r.TRItem),
		Description:   r.Description,
		SimasCode:     strings.TrimSpace(r.SimasCode),
		Unit:          strings.TrimSpace(r.Unit),
		TotalQuantity: max(r.TotalQuantity, 0),
		UnitEstimate:  max(r.UnitEstimate, 0),
	}
}

type ItemPatchRequest struct {
	TRItem        *string  `json:"tr_item"`
	Description   *string  `json:"description"`
	SimasCode     *string  `json:"simas_code"`
	Unit          *string  `json:"unit"`
	TotalQuantity *float64 `json:"total_quantity"`
	UnitEstimate  *float64 `json:"unit_estimate"`
}

func (r ItemPatchRequest) ToPatch() usecase.ItemPatch {
	return usecase.ItemPatch{
		TRItem:        r.TRItem,
		Description:   r.Description,
		SimasCode:     r.SimasCode,
		Unit:          r.Unit,
		TotalQuantity: r.TotalQuantity,
		UnitEstimate:  r.UnitEstimate,
	}
}

// PriceRequest appends a research price row under an item group.
type PriceRequest struct {
	Source string `json:"source" binding:"required"`
}

type PricePatchRequest struct {
	Value     *string `json:"value"`
	Included  *bool   `json:"included"`
	Normalize bool    `json:"normalize"`
}

func (r PricePatchRequest) ToPatch() usecase.PricePatch {
	return usecase.PricePatch{
		Value:     r.Value,
		Included:  r.Included,
		Normalize: r.Normalize,
	}
}

// AmendmentRequest edits one of the three linked amendment fields.
type AmendmentRequest struct {
	Field string  `json:"field" binding:"required,oneof=percent quantity value"`
	Value float64 `json:"value"`
}

// LotRequest groups item rows under a shared lot label, or clears it.
type LotRequest struct {
	ItemIDs []string `json:"item_ids" binding:"required"`
	LotID   string   `json:"lot_id"`
}
