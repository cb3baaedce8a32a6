package entities

// Price research sources selectable in the "fontes consultadas" section.
// SourceAta is not selectable; it becomes available only when the budget is
// an adesão to a price registry.
const (
	SourceSimas              = "simas"
	SourceNFE                = "nfe"
	SourcePNCP               = "pncp"
	SourceMidiaEspecializada = "siteEspecializado"
	SourceContratacaoSimilar = "contratacaoSimilar"
	SourceDireta             = "direta"
	SourceAta                = "ata"
)

// ResearchSourceOptions are the sources a budget may declare as consulted.
var ResearchSourceOptions = []string{
	SourceSimas,
	SourceNFE,
	SourcePNCP,
	SourceMidiaEspecializada,
	SourceContratacaoSimilar,
	SourceDireta,
}

// PriceEntry is one researched price observation for an item group.
//
// Value keeps the user's raw pt-BR monetary string ("1.234,56"). Parsing
// happens at aggregation time; an unparseable value simply drops the entry
// from the calculation instead of raising a validation error.
type PriceEntry struct {
	ID     string `json:"id"`
	Source string `json:"source"`
	Value  string `json:"value"`
}
