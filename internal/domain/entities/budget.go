package entities

import "time"

// ProcurementType selects which estimation and quota rules apply to a budget.
//
// Domain notes:
//   - "licitacao" and "dispensa_licitacao" estimate from market research alone.
//   - "adesao_ata" reconciles market research with the price-registry record.
//   - "aditivo_contratual" works over manually entered contract unit prices.

type ProcurementType string

const (
	ProcurementLicitacao ProcurementType = "licitacao"
	ProcurementAdesaoAta ProcurementType = "adesao_ata"
	ProcurementDispensa  ProcurementType = "dispensa_licitacao"
	ProcurementAditivo   ProcurementType = "aditivo_contratual"
)

// BiddingModality is only meaningful under ProcurementLicitacao; it decides
// which reserved-quota formula applies.

type BiddingModality string

const (
	ModalityPregaoEletronicoComum BiddingModality = "pregao_eletronico_comum"
	ModalityPregaoEletronicoRP    BiddingModality = "pregao_eletronico_rp"
	ModalityOutra                 BiddingModality = "outra"
)

// EstimationMethod is the statistical rule applied to researched prices.

type EstimationMethod string

const (
	MethodMenorPreco EstimationMethod = "menor"
	MethodMedia      EstimationMethod = "media"
	MethodMediana    EstimationMethod = "mediana"
)

// RegistryRecord identifies the Ata de Registro de Preços being adhered to.
type RegistryRecord struct {
	Number string `json:"number,omitempty"`
	Year   string `json:"year,omitempty"`
	Agency string `json:"agency,omitempty"`
	State  string `json:"state,omitempty"`
}

// ContractData identifies the contract being amended in aditivo mode.
type ContractData struct {
	Number string `json:"number,omitempty"`
	Year   string `json:"year,omitempty"`
}

// Readjustment declares an optional price readjustment applied to the
// contract unit price before amendment fields are derived.
type Readjustment struct {
	Declared string  `json:"declared,omitempty"` // "sim", "nao" or empty
	Percent  float64 `json:"percent,omitempty"`
	Index    string  `json:"index,omitempty"` // IPCA, IGP-M, INPC, IPC-Fipe, Outro
}

// Applies reports whether the readjustment factor is in effect.
func (r Readjustment) Applies() bool {
	return r.Declared == "sim" && r.Percent != 0
}

// DirectSupplier is one supplier consulted in a direct price survey.
type DirectSupplier struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	Justification   string `json:"justification"`
	RequirementsMet string `json:"requirements_met,omitempty"` // "sim", "nao" or empty
}

// Signatory is one of the two signers printed at the end of the document.
type Signatory struct {
	Name    string `json:"name,omitempty"`
	WarName string `json:"war_name,omitempty"`
	Rank    string `json:"rank,omitempty"`
	Role    string `json:"role,omitempty"`
}

// Budget is the orçamento document persisted in DynamoDB.
//
// Storage model (DynamoDB):
//   - PK: id
//   - the document body is stored as a JSON payload attribute; pae and
//     timestamps are lifted to top-level attributes.
//
// Derived state:
//   - ItemGroup.UnitEstimate and ItemGroup.Quotas are recomputed from Prices,
//     Included, Method, Type and Modality after every accepted mutation. They
//     are cache, never input; dropping them from a stored document and
//     recomputing yields the same values.

type Budget struct {
	ID   string `json:"id"`
	PAE  string `json:"pae"`
	City string `json:"city,omitempty"`
	Date string `json:"date,omitempty"`

	Type     ProcurementType  `json:"type,omitempty"`
	Modality BiddingModality  `json:"modality,omitempty"`
	Method   EstimationMethod `json:"method,omitempty"`

	// ResearchSources are the consulted price sources; a price entry may only
	// use one of these ("ata" is implicit in adesao_ata mode).
	ResearchSources []string `json:"research_sources,omitempty"`

	ItemGroups []ItemGroup `json:"item_groups,omitempty"`

	// Prices maps item group id to its researched price entries.
	Prices map[string][]PriceEntry `json:"prices,omitempty"`

	// Included maps price entry id to its inclusion flag. A missing key means
	// included; only explicit exclusions need to be stored.
	Included map[string]bool `json:"included,omitempty"`

	Registry     RegistryRecord `json:"registry"`
	Contract     ContractData   `json:"contract"`
	Readjustment Readjustment   `json:"readjustment"`

	PriceDiscarded       string `json:"price_discarded,omitempty"` // "sim", "nao" or empty
	DiscardJustification string `json:"discard_justification,omitempty"`

	NoSourceJustification       string           `json:"no_source_justification,omitempty"`
	DirectResearchJustification string           `json:"direct_research_justification,omitempty"`
	DirectSuppliers             []DirectSupplier `json:"direct_suppliers,omitempty"`

	Signatory1 Signatory `json:"signatory1"`
	Signatory2 Signatory `json:"signatory2"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ItemPrices returns the price entries recorded for an item group.
func (b Budget) ItemPrices(itemGroupID string) []PriceEntry {
	if b.Prices == nil {
		return nil
	}
	return b.Prices[itemGroupID]
}

// IsIncluded resolves an entry's inclusion flag, defaulting to true.
func (b Budget) IsIncluded(priceID string) bool {
	if b.Included == nil {
		return true
	}
	v, ok := b.Included[priceID]
	if !ok {
		return true
	}
	return v
}
