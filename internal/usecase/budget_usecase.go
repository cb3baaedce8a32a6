package usecase

import (
	"context"
	"errors"
	"log"
	"reflect"
	"slices"
	"strings"
	"time"

	"gerador_licitacao/internal/domain/entities"
	"gerador_licitacao/internal/domain/pricing"
	"gerador_licitacao/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrBudgetNotFound        = errors.New("budget not found")
	ErrInvalidBudgetID       = errors.New("invalid budget id")
	ErrInvalidPAE            = errors.New("invalid pae")
	ErrItemNotFound          = errors.New("item group not found")
	ErrPriceNotFound         = errors.New("price entry not found")
	ErrInvalidPriceSource    = errors.New("price source not available for this budget")
	ErrInvalidAmendmentField = errors.New("invalid amendment field")
	ErrAmendmentNotAllowed   = errors.New("amendments only apply to aditivo_contratual budgets")
	ErrInvalidLot            = errors.New("invalid lot grouping")
)

// BudgetSettings carries the whole-field settings edits accepted by
// UpdateSettings. The UI sends complete replacements, never deltas.
type BudgetSettings struct {
	City string
	Date string

	Type     entities.ProcurementType
	Modality entities.BiddingModality
	Method   entities.EstimationMethod

	ResearchSources []string

	Registry     entities.RegistryRecord
	Contract     entities.ContractData
	Readjustment entities.Readjustment

	PriceDiscarded       string
	DiscardJustification string

	NoSourceJustification       string
	DirectResearchJustification string
	DirectSuppliers             []entities.DirectSupplier

	Signatory1 entities.Signatory
	Signatory2 entities.Signatory
}

// ItemPatch updates item group fields; nil pointers leave a field untouched.
// UnitEstimate is only writable through the patch in aditivo mode, where it
// is the manual contract unit price.
type ItemPatch struct {
	TRItem        *string
	Description   *string
	SimasCode     *string
	Unit          *string
	TotalQuantity *float64
	UnitEstimate  *float64
}

// PricePatch updates one price entry. Normalize reformats an accepted value
// into the canonical pt-BR monetary string (the "field blur" behavior).
type PricePatch struct {
	Value     *string
	Included  *bool
	Normalize bool
}

// IBudgetUseCase exposes the budget document operations.
//
// Every mutation runs the recompute pass before persisting, and skips the
// write entirely when the document came out unchanged, so repeated identical
// edits cannot thrash storage or drift derived state.

type IBudgetUseCase interface {
	Create(ctx context.Context, pae, city, date string) (entities.Budget, error)
	GetByID(ctx context.Context, id string) (entities.Budget, error)
	Delete(ctx context.Context, id string) error

	UpdateSettings(ctx context.Context, id string, s BudgetSettings) (entities.Budget, error)

	AddItem(ctx context.Context, id string, item entities.ItemGroup) (entities.Budget, error)
	UpdateItem(ctx context.Context, id, itemID string, patch ItemPatch) (entities.Budget, error)
	RemoveItem(ctx context.Context, id, itemID string) (entities.Budget, error)

	AddPrice(ctx context.Context, id, itemID, source string) (entities.Budget, error)
	UpdatePrice(ctx context.Context, id, priceID string, patch PricePatch) (entities.Budget, error)
	RemovePrice(ctx context.Context, id, itemID, priceID string) (entities.Budget, error)

	ApplyAmendment(ctx context.Context, id, itemID string, field pricing.AmendmentField, value float64) (entities.Budget, error)

	GroupIntoLot(ctx context.Context, id string, itemIDs []string, lotID string) (entities.Budget, error)
	Ungroup(ctx context.Context, id string, itemIDs []string) (entities.Budget, error)

	MarketComparison(ctx context.Context, id string) (bool, []pricing.ComparisonRow, error)
}

type BudgetUseCase struct {
	repo interfaces.IBudgetRepository
}

var _ IBudgetUseCase = (*BudgetUseCase)(nil)

func NewBudgetUseCase(repo interfaces.IBudgetRepository) *BudgetUseCase {
	return &BudgetUseCase{repo: repo}
}

func (u *BudgetUseCase) Create(ctx context.Context, pae, city, date string) (entities.Budget, error) {
	pae = strings.TrimSpace(pae)
	if pae == "" {
		return entities.Budget{}, ErrInvalidPAE
	}

	now := time.Now().UTC()
	b := entities.Budget{
		ID:        uuid.NewString(),
		PAE:       pae,
		City:      strings.TrimSpace(city),
		Date:      strings.TrimSpace(date),
		Type:      entities.ProcurementLicitacao,
		Prices:    map[string][]entities.PriceEntry{},
		Included:  map[string]bool{},
		CreatedAt: now,
		UpdatedAt: now,
	}
	return u.repo.Create(ctx, b)
}

func (u *BudgetUseCase) GetByID(ctx context.Context, id string) (entities.Budget, error) {
	b, err := u.load(ctx, id)
	if err != nil {
		return entities.Budget{}, err
	}
	// Derived fields are cache; recomputing on read makes reloaded drafts
	// converge even when the stored copy predates a rule change.
	return pricing.Recompute(b), nil
}

func (u *BudgetUseCase) Delete(ctx context.Context, id string) error {
	if _, err := u.load(ctx, id); err != nil {
		return err
	}
	return u.repo.Delete(ctx, strings.TrimSpace(id))
}

func (u *BudgetUseCase) UpdateSettings(ctx context.Context, id string, s BudgetSettings) (entities.Budget, error) {
	return u.mutate(ctx, id, func(b *entities.Budget) error {
		b.City = s.City
		b.Date = s.Date
		b.Type = s.Type
		b.Modality = s.Modality
		b.Method = s.Method
		b.ResearchSources = s.ResearchSources
		b.Registry = s.Registry
		b.Contract = s.Contract
		b.Readjustment = s.Readjustment
		b.PriceDiscarded = s.PriceDiscarded
		b.DiscardJustification = s.DiscardJustification
		b.NoSourceJustification = s.NoSourceJustification
		b.DirectResearchJustification = s.DirectResearchJustification
		b.DirectSuppliers = s.DirectSuppliers
		b.Signatory1 = s.Signatory1
		b.Signatory2 = s.Signatory2
		return nil
	})
}

func (u *BudgetUseCase) AddItem(ctx context.Context, id string, item entities.ItemGroup) (entities.Budget, error) {
	return u.mutate(ctx, id, func(b *entities.Budget) error {
		item.ID = uuid.NewString()
		if item.TotalQuantity < 0 {
			item.TotalQuantity = 0
		}
		item.Quotas = nil
		b.ItemGroups = append(slices.Clone(b.ItemGroups), item)
		return nil
	})
}

func (u *BudgetUseCase) UpdateItem(ctx context.Context, id, itemID string, patch ItemPatch) (entities.Budget, error) {
	return u.mutate(ctx, id, func(b *entities.Budget) error {
		i := itemIndex(*b, itemID)
		if i < 0 {
			return ErrItemNotFound
		}
		groups := slices.Clone(b.ItemGroups)
		g := groups[i]
		if patch.TRItem != nil {
			g.TRItem = *patch.TRItem
		}
		if patch.Description != nil {
			g.Description = *patch.Description
		}
		if patch.SimasCode != nil {
			g.SimasCode = *patch.SimasCode
		}
		if patch.Unit != nil {
			g.Unit = *patch.Unit
		}
		if patch.TotalQuantity != nil {
			g.TotalQuantity = max(*patch.TotalQuantity, 0)
		}
		if patch.UnitEstimate != nil && b.Type == entities.ProcurementAditivo {
			g.UnitEstimate = max(*patch.UnitEstimate, 0)
		}
		groups[i] = g
		b.ItemGroups = groups
		return nil
	})
}

func (u *BudgetUseCase) RemoveItem(ctx context.Context, id, itemID string) (entities.Budget, error) {
	return u.mutate(ctx, id, func(b *entities.Budget) error {
		i := itemIndex(*b, itemID)
		if i < 0 {
			return ErrItemNotFound
		}
		b.ItemGroups = slices.Delete(slices.Clone(b.ItemGroups), i, i+1)

		// Cascade: drop the item's price entries and their inclusion flags so
		// no orphaned state survives.
		prices := clonePrices(b.Prices)
		included := cloneIncluded(b.Included)
		for _, p := range prices[itemID] {
			delete(included, p.ID)
		}
		delete(prices, itemID)
		b.Prices = prices
		b.Included = included
		return nil
	})
}

func (u *BudgetUseCase) AddPrice(ctx context.Context, id, itemID, source string) (entities.Budget, error) {
	return u.mutate(ctx, id, func(b *entities.Budget) error {
		if itemIndex(*b, itemID) < 0 {
			return ErrItemNotFound
		}
		if !slices.Contains(availableSources(*b), source) {
			return ErrInvalidPriceSource
		}
		prices := clonePrices(b.Prices)
		prices[itemID] = append(slices.Clone(prices[itemID]), entities.PriceEntry{
			ID:     uuid.NewString(),
			Source: source,
		})
		b.Prices = prices
		return nil
	})
}

func (u *BudgetUseCase) UpdatePrice(ctx context.Context, id, priceID string, patch PricePatch) (entities.Budget, error) {
	return u.mutate(ctx, id, func(b *entities.Budget) error {
		itemID, i := priceIndex(*b, priceID)
		if i < 0 {
			return ErrPriceNotFound
		}

		if patch.Value != nil {
			prices := clonePrices(b.Prices)
			entries := slices.Clone(prices[itemID])
			value := *patch.Value
			if patch.Normalize {
				if v, ok := pricing.ParseCurrency(value); ok {
					value = pricing.FormatCurrency(v)
				}
			}
			entries[i].Value = value
			prices[itemID] = entries
			b.Prices = prices
		}

		if patch.Included != nil {
			included := cloneIncluded(b.Included)
			included[priceID] = *patch.Included
			b.Included = included
		}
		return nil
	})
}

func (u *BudgetUseCase) RemovePrice(ctx context.Context, id, itemID, priceID string) (entities.Budget, error) {
	return u.mutate(ctx, id, func(b *entities.Budget) error {
		if itemIndex(*b, itemID) < 0 {
			return ErrItemNotFound
		}
		entries := b.ItemPrices(itemID)
		i := slices.IndexFunc(entries, func(p entities.PriceEntry) bool { return p.ID == priceID })
		if i < 0 {
			return ErrPriceNotFound
		}

		prices := clonePrices(b.Prices)
		prices[itemID] = slices.Delete(slices.Clone(entries), i, i+1)
		included := cloneIncluded(b.Included)
		delete(included, priceID)
		b.Prices = prices
		b.Included = included
		return nil
	})
}

func (u *BudgetUseCase) ApplyAmendment(ctx context.Context, id, itemID string, field pricing.AmendmentField, value float64) (entities.Budget, error) {
	if !field.Valid() {
		return entities.Budget{}, ErrInvalidAmendmentField
	}
	return u.mutate(ctx, id, func(b *entities.Budget) error {
		if b.Type != entities.ProcurementAditivo {
			return ErrAmendmentNotAllowed
		}
		i := itemIndex(*b, itemID)
		if i < 0 {
			return ErrItemNotFound
		}
		groups := slices.Clone(b.ItemGroups)
		groups[i] = pricing.ApplyAmendment(groups[i], b.Readjustment, field, value)
		b.ItemGroups = groups
		return nil
	})
}

func (u *BudgetUseCase) GroupIntoLot(ctx context.Context, id string, itemIDs []string, lotID string) (entities.Budget, error) {
	lotID = strings.TrimSpace(lotID)
	if lotID == "" || len(itemIDs) == 0 {
		return entities.Budget{}, ErrInvalidLot
	}
	return u.setLot(ctx, id, itemIDs, lotID)
}

func (u *BudgetUseCase) Ungroup(ctx context.Context, id string, itemIDs []string) (entities.Budget, error) {
	if len(itemIDs) == 0 {
		return entities.Budget{}, ErrInvalidLot
	}
	return u.setLot(ctx, id, itemIDs, "")
}

func (u *BudgetUseCase) setLot(ctx context.Context, id string, itemIDs []string, lotID string) (entities.Budget, error) {
	return u.mutate(ctx, id, func(b *entities.Budget) error {
		for _, itemID := range itemIDs {
			if itemIndex(*b, itemID) < 0 {
				return ErrItemNotFound
			}
		}
		groups := slices.Clone(b.ItemGroups)
		for i, g := range groups {
			if slices.Contains(itemIDs, g.ID) {
				g.LotID = lotID
				groups[i] = g
			}
		}
		b.ItemGroups = groups
		return nil
	})
}

func (u *BudgetUseCase) MarketComparison(ctx context.Context, id string) (bool, []pricing.ComparisonRow, error) {
	b, err := u.load(ctx, id)
	if err != nil {
		return false, nil, err
	}
	return pricing.NeedsMarketComparison(b), pricing.MarketComparison(b), nil
}

func (u *BudgetUseCase) load(ctx context.Context, id string) (entities.Budget, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Budget{}, ErrInvalidBudgetID
	}
	b, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Budget{}, err
	}
	if b.ID == "" {
		return entities.Budget{}, ErrBudgetNotFound
	}
	return b, nil
}

// mutate loads the document, applies fn, recomputes derived state and saves
// only when something actually changed.
func (u *BudgetUseCase) mutate(ctx context.Context, id string, fn func(*entities.Budget) error) (entities.Budget, error) {
	b, err := u.load(ctx, id)
	if err != nil {
		return entities.Budget{}, err
	}

	before := b
	if err := fn(&b); err != nil {
		return entities.Budget{}, err
	}
	b = pricing.Recompute(b)

	if reflect.DeepEqual(before, b) {
		log.Printf("[budget][usecase] mutation is a no-op budget_id=%s", b.ID)
		return b, nil
	}

	b.UpdatedAt = time.Now().UTC()
	return u.repo.Save(ctx, b)
}

// availableSources lists the price sources a budget currently accepts: the
// consulted research sources, plus "ata" when adhering to a price registry.
func availableSources(b entities.Budget) []string {
	sources := slices.Clone(b.ResearchSources)
	if b.Type == entities.ProcurementAdesaoAta && !slices.Contains(sources, entities.SourceAta) {
		sources = append(sources, entities.SourceAta)
	}
	return sources
}

func itemIndex(b entities.Budget, itemID string) int {
	return slices.IndexFunc(b.ItemGroups, func(g entities.ItemGroup) bool { return g.ID == itemID })
}

func priceIndex(b entities.Budget, priceID string) (itemID string, index int) {
	for gid, entries := range b.Prices {
		for i, p := range entries {
			if p.ID == priceID {
				return gid, i
			}
		}
	}
	return "", -1
}

func clonePrices(m map[string][]entities.PriceEntry) map[string][]entities.PriceEntry {
	out := make(map[string][]entities.PriceEntry, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

func cloneIncluded(m map[string]bool) map[string]bool {
	out := make(map[string]bool, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}
