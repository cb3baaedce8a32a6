package main

import (
	_ "gerador_licitacao/docs"
	"gerador_licitacao/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Gerador de Orçamentos de Licitação API
// @version         1.0
// @description     Geração de orçamentos para contratações públicas (pesquisa de preços, cotas ME/EPP e aditivos) backed by DynamoDB.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

func main() {
	routes.Run()
}
