package entities

// QuotaType labels one slice of an item's quantity in the TR table.

type QuotaType string

const (
	QuotaReservadaMEEPP    QuotaType = "COTA RESERVADA ME/EPP"
	QuotaAmplaConcorrencia QuotaType = "AMPLA CONCORRÊNCIA"
)

// Quota is one derived reserved/open split entry for an item group.
type Quota struct {
	ID       string    `json:"id"`
	TROrder  string    `json:"tr_order"`
	Type     QuotaType `json:"type"`
	Quantity float64   `json:"quantity"`
}

// ItemGroup is one procurement line item, possibly grouped into a lot.
//
// UnitEstimate is derived from price research in every mode except
// aditivo_contratual, where it is the manually entered contract unit price.
// The three Amendment* fields describe the same added scope in three units;
// they are only meaningful in aditivo_contratual mode.
type ItemGroup struct {
	ID            string  `json:"id"`
	LotID         string  `json:"lot_id,omitempty"`
	TRItem        string  `json:"tr_item"`
	Description   string  `json:"description"`
	SimasCode     string  `json:"simas_code,omitempty"`
	Unit          string  `json:"unit"`
	TotalQuantity float64 `json:"total_quantity"`

	UnitEstimate float64 `json:"unit_estimate"`
	Quotas       []Quota `json:"quotas,omitempty"`

	AmendmentPercent  float64 `json:"amendment_percent,omitempty"`
	AmendmentQuantity float64 `json:"amendment_quantity,omitempty"`
	AmendmentValue    float64 `json:"amendment_value,omitempty"`
}
