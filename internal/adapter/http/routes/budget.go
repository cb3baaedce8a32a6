package routes

import (
	"gerador_licitacao/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathBudgets = "/budgets"
)

func addBudgetRoutes(rg *gin.RouterGroup, budgetHandler *handlers.BudgetHandler) {
	budgets := rg.Group(PathBudgets)
	{
		budgets.POST("", budgetHandler.CreateBudget)
		budgets.GET("/:budget_id", budgetHandler.GetBudget)
		budgets.DELETE("/:budget_id", budgetHandler.DeleteBudget)
		budgets.PUT("/:budget_id/settings", budgetHandler.UpdateSettings)

		budgets.POST("/:budget_id/items", budgetHandler.AddItem)
		budgets.PATCH("/:budget_id/items/:item_id", budgetHandler.UpdateItem)
		budgets.DELETE("/:budget_id/items/:item_id", budgetHandler.RemoveItem)

		budgets.POST("/:budget_id/items/:item_id/prices", budgetHandler.AddPrice)
		budgets.PATCH("/:budget_id/prices/:price_id", budgetHandler.UpdatePrice)
		budgets.DELETE("/:budget_id/items/:item_id/prices/:price_id", budgetHandler.RemovePrice)

		budgets.PATCH("/:budget_id/items/:item_id/amendment", budgetHandler.ApplyAmendment)
		budgets.POST("/:budget_id/lots", budgetHandler.GroupLot)
		budgets.DELETE("/:budget_id/lots", budgetHandler.UngroupLot)
		budgets.GET("/:budget_id/comparison", budgetHandler.GetComparison)
	}
}
