package main

import (
	"os"

	"CotadorSaude/CronJobs"
	"CotadorSaude/Models"
	"CotadorSaude/Routes"
	"CotadorSaude/Whatsapp"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	Models.ConnectDataBase()
	router := gin.Default()
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"https://cotador.vendasaude.com.br", "http://localhost:3000"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		AllowCredentials: true,
	},
	))
	Routes.ConfigRoutes(router)
	expiryService := CronJobs.NewAccessExpiry(Models.DB)
	scheduler := expiryService.StartExpiryCron()
	_ = scheduler

	if os.Getenv("GREEN_API_INSTANCE") != "" {
		go Whatsapp.Listen()
	}

	router.Run(":3005")
}
