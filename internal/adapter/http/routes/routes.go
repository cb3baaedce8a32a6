package routes

import (
	_ "gerador_licitacao/docs" // This will be auto-generated
	"gerador_licitacao/internal/adapter/http/handlers"
	repository2 "gerador_licitacao/internal/adapter/persistence/repository"
	"gerador_licitacao/internal/infrastructure/database"
	"gerador_licitacao/internal/usecase"
	"log"
	"strconv"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

const PORT = 8080

// Run will start the server
func Run() {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes()

	err := router.Run(":" + strconv.Itoa(PORT))
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() {
	ddb := database.ConnectDynamoDB()

	budgetRepo := repository2.NewBudgetDynamoRepository(ddb)
	budgetUseCase := usecase.NewBudgetUseCase(budgetRepo)
	budgetHandler := handlers.NewBudgetHandler(budgetUseCase)

	// Rotas publicas
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addBudgetRoutes(v1, budgetHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
