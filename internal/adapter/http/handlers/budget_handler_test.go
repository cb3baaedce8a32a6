package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"gerador_licitacao/internal/adapter/http/handlers/mocks"
	"gerador_licitacao/internal/domain/entities"
	"gerador_licitacao/internal/domain/pricing"
	"gerador_licitacao/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func budgetFixture() entities.Budget {
	return entities.Budget{
		ID:              "b-1",
		PAE:             "0123",
		Type:            entities.ProcurementLicitacao,
		Modality:        entities.ModalityPregaoEletronicoComum,
		Method:          entities.MethodMedia,
		ResearchSources: []string{entities.SourceSimas},
		ItemGroups: []entities.ItemGroup{
			{ID: "g-1", TRItem: "1", TotalQuantity: 10, UnitEstimate: 5},
		},
		Prices: map[string][]entities.PriceEntry{"g-1": {
			{ID: "p-1", Source: entities.SourceSimas, Value: "5,00"},
		}},
		Included: map[string]bool{},
	}
}

func TestBudgetHandler_CreateBudget(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBudgetUseCase(ctrl)
		h := NewBudgetHandler(uc)

		r := gin.New()
		r.POST("/v1/budgets", h.CreateBudget)

		req := httptest.NewRequest(http.MethodPost, "/v1/budgets", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("missing pae", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBudgetUseCase(ctrl)
		h := NewBudgetHandler(uc)

		r := gin.New()
		r.POST("/v1/budgets", h.CreateBudget)

		req := httptest.NewRequest(http.MethodPost, "/v1/budgets", bytes.NewBufferString(`{"city":"Belém"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBudgetUseCase(ctrl)
		h := NewBudgetHandler(uc)

		uc.EXPECT().Create(gomock.Any(), "0123", "Belém", "2025-05-01").Return(budgetFixture(), nil)

		r := gin.New()
		r.POST("/v1/budgets", h.CreateBudget)

		body := `{"pae":"0123","city":"Belém","date":"2025-05-01"}`
		req := httptest.NewRequest(http.MethodPost, "/v1/budgets", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d body=%s", w.Code, w.Body.String())
		}

		var resp map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if resp["id"] != "b-1" || resp["pae"] != "0123" {
			t.Fatalf("unexpected response: %v", resp)
		}
	})
}

func TestBudgetHandler_GetBudget(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBudgetUseCase(ctrl)
		h := NewBudgetHandler(uc)

		uc.EXPECT().GetByID(gomock.Any(), "missing").Return(entities.Budget{}, usecase.ErrBudgetNotFound)

		r := gin.New()
		r.GET("/v1/budgets/:budget_id", h.GetBudget)

		req := httptest.NewRequest(http.MethodGet, "/v1/budgets/missing", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("success includes derived totals", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBudgetUseCase(ctrl)
		h := NewBudgetHandler(uc)

		uc.EXPECT().GetByID(gomock.Any(), "b-1").Return(budgetFixture(), nil)

		r := gin.New()
		r.GET("/v1/budgets/:budget_id", h.GetBudget)

		req := httptest.NewRequest(http.MethodGet, "/v1/budgets/b-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}

		var resp struct {
			TotalValue float64 `json:"total_value"`
			Items      []struct {
				TotalEstimate float64 `json:"total_estimate"`
				Prices        []struct {
					Included bool `json:"included"`
				} `json:"prices"`
			} `json:"items"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if resp.TotalValue != 50 || len(resp.Items) != 1 || resp.Items[0].TotalEstimate != 50 {
			t.Fatalf("unexpected totals: %+v", resp)
		}
		if !resp.Items[0].Prices[0].Included {
			t.Fatalf("expected price to default to included")
		}
	})
}

func TestBudgetHandler_UpdateSettings(t *testing.T) {
	gin.SetMode(gin.TestMode)

	newRouter := func(h *BudgetHandler) *gin.Engine {
		r := gin.New()
		r.PUT("/v1/budgets/:budget_id/settings", h.UpdateSettings)
		return r
	}

	t.Run("unknown registry state", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBudgetUseCase(ctrl)
		h := NewBudgetHandler(uc)

		body := `{"type":"adesao_ata","registry":{"number":"10","year":"2024","state":"XX"}}`
		req := httptest.NewRequest(http.MethodPut, "/v1/budgets/b-1/settings", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		newRouter(h).ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("unknown readjustment index", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBudgetUseCase(ctrl)
		h := NewBudgetHandler(uc)

		body := `{"type":"aditivo_contratual","readjustment":{"declared":"sim","percent":5,"index":"SELIC"}}`
		req := httptest.NewRequest(http.MethodPut, "/v1/budgets/b-1/settings", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		newRouter(h).ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBudgetUseCase(ctrl)
		h := NewBudgetHandler(uc)

		uc.EXPECT().UpdateSettings(gomock.Any(), "b-1", gomock.Any()).Return(budgetFixture(), nil)

		body := `{"type":"adesao_ata","registry":{"number":"10","year":"2024","state":"PA"},"readjustment":{"declared":"sim","percent":5,"index":"IPCA"}}`
		req := httptest.NewRequest(http.MethodPut, "/v1/budgets/b-1/settings", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		newRouter(h).ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d body=%s", w.Code, w.Body.String())
		}
	})
}

func TestBudgetHandler_AddPrice(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("source rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBudgetUseCase(ctrl)
		h := NewBudgetHandler(uc)

		uc.EXPECT().AddPrice(gomock.Any(), "b-1", "g-1", "nfe").Return(entities.Budget{}, usecase.ErrInvalidPriceSource)

		r := gin.New()
		r.POST("/v1/budgets/:budget_id/items/:item_id/prices", h.AddPrice)

		req := httptest.NewRequest(http.MethodPost, "/v1/budgets/b-1/items/g-1/prices", bytes.NewBufferString(`{"source":"nfe"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422, got %d", w.Code)
		}

		var resp map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if resp["code"] != "INVALID_PRICE_SOURCE" {
			t.Fatalf("unexpected error code: %v", resp)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBudgetUseCase(ctrl)
		h := NewBudgetHandler(uc)

		uc.EXPECT().AddPrice(gomock.Any(), "b-1", "g-1", "simas").Return(budgetFixture(), nil)

		r := gin.New()
		r.POST("/v1/budgets/:budget_id/items/:item_id/prices", h.AddPrice)

		req := httptest.NewRequest(http.MethodPost, "/v1/budgets/b-1/items/g-1/prices", bytes.NewBufferString(`{"source":"simas"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
	})
}

func TestBudgetHandler_ApplyAmendment(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid field rejected by binding", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBudgetUseCase(ctrl)
		h := NewBudgetHandler(uc)

		r := gin.New()
		r.PATCH("/v1/budgets/:budget_id/items/:item_id/amendment", h.ApplyAmendment)

		req := httptest.NewRequest(http.MethodPatch, "/v1/budgets/b-1/items/g-1/amendment", bytes.NewBufferString(`{"field":"unit","value":10}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBudgetUseCase(ctrl)
		h := NewBudgetHandler(uc)

		uc.EXPECT().
			ApplyAmendment(gomock.Any(), "b-1", "g-1", pricing.AmendmentPercent, 10.0).
			Return(budgetFixture(), nil)

		r := gin.New()
		r.PATCH("/v1/budgets/:budget_id/items/:item_id/amendment", h.ApplyAmendment)

		req := httptest.NewRequest(http.MethodPatch, "/v1/budgets/b-1/items/g-1/amendment", bytes.NewBufferString(`{"field":"percent","value":10}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestBudgetHandler_GroupLot(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("group", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBudgetUseCase(ctrl)
		h := NewBudgetHandler(uc)

		uc.EXPECT().GroupIntoLot(gomock.Any(), "b-1", []string{"g-1"}, "Lote 1").Return(budgetFixture(), nil)

		r := gin.New()
		r.POST("/v1/budgets/:budget_id/lots", h.GroupLot)

		req := httptest.NewRequest(http.MethodPost, "/v1/budgets/b-1/lots", bytes.NewBufferString(`{"item_ids":["g-1"],"lot_id":"Lote 1"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("empty lot id ungroups", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBudgetUseCase(ctrl)
		h := NewBudgetHandler(uc)

		uc.EXPECT().Ungroup(gomock.Any(), "b-1", []string{"g-1"}).Return(budgetFixture(), nil)

		r := gin.New()
		r.POST("/v1/budgets/:budget_id/lots", h.GroupLot)

		req := httptest.NewRequest(http.MethodPost, "/v1/budgets/b-1/lots", bytes.NewBufferString(`{"item_ids":["g-1"],"lot_id":""}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestBudgetHandler_GetComparison(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIBudgetUseCase(ctrl)
	h := NewBudgetHandler(uc)

	rows := []pricing.ComparisonRow{{ItemGroupID: "g-1", NewGlobalValue: 1100, MarketAverage: 20}}
	uc.EXPECT().MarketComparison(gomock.Any(), "b-1").Return(true, rows, nil)

	r := gin.New()
	r.GET("/v1/budgets/:budget_id/comparison", h.GetComparison)

	req := httptest.NewRequest(http.MethodGet, "/v1/budgets/b-1/comparison", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var resp struct {
		Required bool `json:"required"`
		Rows     []struct {
			ItemGroupID string `json:"item_group_id"`
		} `json:"rows"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if !resp.Required || len(resp.Rows) != 1 || resp.Rows[0].ItemGroupID != "g-1" {
		t.Fatalf("unexpected response: %+v", resp)
	}
}

func TestBudgetHandler_DeleteBudget(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("internal error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBudgetUseCase(ctrl)
		h := NewBudgetHandler(uc)

		uc.EXPECT().Delete(gomock.Any(), "b-1").Return(errors.New("dynamo unavailable"))

		r := gin.New()
		r.DELETE("/v1/budgets/:budget_id", h.DeleteBudget)

		req := httptest.NewRequest(http.MethodDelete, "/v1/budgets/b-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBudgetUseCase(ctrl)
		h := NewBudgetHandler(uc)

		uc.EXPECT().Delete(gomock.Any(), "b-1").Return(nil)

		r := gin.New()
		r.DELETE("/v1/budgets/:budget_id", h.DeleteBudget)

		req := httptest.NewRequest(http.MethodDelete, "/v1/budgets/b-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNoContent {
			t.Fatalf("expected 204, got %d", w.Code)
		}
	})
}
