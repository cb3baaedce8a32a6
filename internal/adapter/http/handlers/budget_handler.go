package handlers

import (
	"errors"
	request "gerador_licitacao/internal/adapter/http/dto/request"
	response "gerador_licitacao/internal/adapter/http/dto/response"
	"gerador_licitacao/internal/domain/pricing"
	"gerador_licitacao/internal/usecase"
	"gerador_licitacao/pkg"
	"net/http"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidBudgetPayload = pkg.NewDomainErrorSimple("INVALID_BUDGET_INPUT", "Invalid budget payload", http.StatusBadRequest)
)

// BudgetHandler handles HTTP requests for budget documents.
type BudgetHandler struct {
	usecase usecase.IBudgetUseCase
}

func NewBudgetHandler(uc usecase.IBudgetUseCase) *BudgetHandler {
	return &BudgetHandler{usecase: uc}
}

// CreateBudget opens a new budget draft for a PAE number.
func (h *BudgetHandler) CreateBudget(c *gin.Context) {
	var payload request.CreateBudgetRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidBudgetPayload.HTTPStatus, errInvalidBudgetPayload.ToHTTPError())
		return
	}

	budget, err := h.usecase.Create(c.Request.Context(), payload.PAE, payload.City, payload.Date)
	if err != nil {
		appErr := mapBudgetError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromBudget(budget))
}

func (h *BudgetHandler) GetBudget(c *gin.Context) {
	budget, err := h.usecase.GetByID(c.Request.Context(), c.Param("budget_id"))
	if err != nil {
		appErr := mapBudgetError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromBudget(budget))
}

func (h *BudgetHandler) DeleteBudget(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), c.Param("budget_id")); err != nil {
		appErr := mapBudgetError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Status(http.StatusNoContent)
}

// UpdateSettings replaces the budget header, methodology and annex settings.
func (h *BudgetHandler) UpdateSettings(c *gin.Context) {
	var payload request.SettingsRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidBudgetPayload.HTTPStatus, errInvalidBudgetPayload.ToHTTPError())
		return
	}

	budget, err := h.usecase.UpdateSettings(c.Request.Context(), c.Param("budget_id"), payload.ToSettings())
	if err != nil {
		appErr := mapBudgetError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromBudget(budget))
}

func (h *BudgetHandler) AddItem(c *gin.Context) {
	var payload request.ItemRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidBudgetPayload.HTTPStatus, errInvalidBudgetPayload.ToHTTPError())
		return
	}

	budget, err := h.usecase.AddItem(c.Request.Context(), c.Param("budget_id"), payload.ToItemGroup())
	if err != nil {
		appErr := mapBudgetError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromBudget(budget))
}

func (h *BudgetHandler) UpdateItem(c *gin.Context) {
	var payload request.ItemPatchRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidBudgetPayload.HTTPStatus, errInvalidBudgetPayload.ToHTTPError())
		return
	}

	budget, err := h.usecase.UpdateItem(c.Request.Context(), c.Param("budget_id"), c.Param("item_id"), payload.ToPatch())
	if err != nil {
		appErr := mapBudgetError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromBudget(budget))
}

func (h *BudgetHandler) RemoveItem(c *gin.Context) {
	budget, err := h.usecase.RemoveItem(c.Request.Context(), c.Param("budget_id"), c.Param("item_id"))
	if err != nil {
		appErr := mapBudgetError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromBudget(budget))
}

func (h *BudgetHandler) AddPrice(c *gin.Context) {
	var payload request.PriceRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidBudgetPayload.HTTPStatus, errInvalidBudgetPayload.ToHTTPError())
		return
	}

	budget, err := h.usecase.AddPrice(c.Request.Context(), c.Param("budget_id"), c.Param("item_id"), payload.Source)
	if err != nil {
		appErr := mapBudgetError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromBudget(budget))
}

func (h *BudgetHandler) UpdatePrice(c *gin.Context) {
	var payload request.PricePatchRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidBudgetPayload.HTTPStatus, errInvalidBudgetPayload.ToHTTPError())
		return
	}

	budget, err := h.usecase.UpdatePrice(c.Request.Context(), c.Param("budget_id"), c.Param("price_id"), payload.ToPatch())
	if err != nil {
		appErr := mapBudgetError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromBudget(budget))
}

func (h *BudgetHandler) RemovePrice(c *gin.Context) {
	budget, err := h.usecase.RemovePrice(c.Request.Context(), c.Param("budget_id"), c.Param("item_id"), c.Param("price_id"))
	if err != nil {
		appErr := mapBudgetError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromBudget(budget))
}

// ApplyAmendment edits one of the three linked amendment fields and returns
// the document with the other two derived.
func (h *BudgetHandler) ApplyAmendment(c *gin.Context) {
	var payload request.AmendmentRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidBudgetPayload.HTTPStatus, errInvalidBudgetPayload.ToHTTPError())
		return
	}

	budget, err := h.usecase.ApplyAmendment(
		c.Request.Context(),
		c.Param("budget_id"),
		c.Param("item_id"),
		pricing.AmendmentField(payload.Field),
		payload.Value,
	)
	if err != nil {
		appErr := mapBudgetError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromBudget(budget))
}

// GroupLot assigns or clears the lot label of the listed items.
func (h *BudgetHandler) GroupLot(c *gin.Context) {
	var payload request.LotRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidBudgetPayload.HTTPStatus, errInvalidBudgetPayload.ToHTTPError())
		return
	}

	if payload.LotID == "" {
		b, err := h.usecase.Ungroup(c.Request.Context(), c.Param("budget_id"), payload.ItemIDs)
		if err != nil {
			appErr := mapBudgetError(err)
			c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}
		c.JSON(http.StatusOK, response.FromBudget(b))
		return
	}

	b, err := h.usecase.GroupIntoLot(c.Request.Context(), c.Param("budget_id"), payload.ItemIDs, payload.LotID)
	if err != nil {
		appErr := mapBudgetError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromBudget(b))
}

// UngroupLot clears the lot label of the listed items.
func (h *BudgetHandler) UngroupLot(c *gin.Context) {
	var payload request.LotRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidBudgetPayload.HTTPStatus, errInvalidBudgetPayload.ToHTTPError())
		return
	}

	b, err := h.usecase.Ungroup(c.Request.Context(), c.Param("budget_id"), payload.ItemIDs)
	if err != nil {
		appErr := mapBudgetError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromBudget(b))
}

// GetComparison returns the market comparison audit table for aditivo budgets.
func (h *BudgetHandler) GetComparison(c *gin.Context) {
	required, rows, err := h.usecase.MarketComparison(c.Request.Context(), c.Param("budget_id"))
	if err != nil {
		appErr := mapBudgetError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromComparison(required, rows))
}

func mapBudgetError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidBudgetID), errors.Is(err, usecase.ErrInvalidPAE):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrBudgetNotFound):
		return pkg.NewDomainErrorSimple("BUDGET_NOT_FOUND", "Budget not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrItemNotFound):
		return pkg.NewDomainErrorSimple("ITEM_NOT_FOUND", "Item not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrPriceNotFound):
		return pkg.NewDomainErrorSimple("PRICE_NOT_FOUND", "Price entry not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrInvalidPriceSource):
		return pkg.NewDomainErrorSimple("INVALID_PRICE_SOURCE", "Price source not available for this budget", http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrInvalidAmendmentField):
		return pkg.NewDomainErrorSimple("INVALID_AMENDMENT", "Invalid amendment field", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrAmendmentNotAllowed):
		return pkg.NewDomainErrorSimple("AMENDMENT_NOT_ALLOWED", "Amendments only apply to aditivo_contratual budgets", http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrInvalidLot):
		return pkg.NewDomainErrorSimple("INVALID_LOT", "Invalid lot grouping", http.StatusBadRequest)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
