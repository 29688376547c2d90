package Routes

import (
	"CotadorSaude/Advisor"
	"CotadorSaude/Controllers"
	"CotadorSaude/Middleware"
	"CotadorSaude/SSE"
	"CotadorSaude/Whatsapp"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
)

func ConfigRoutes(router *gin.Engine) {
	// Gzip Compression
	router.Use(gzip.Gzip(gzip.BestSpeed))

	// Public routes
	public := router.Group("/api")
	{
		public.POST("/login", Controllers.Login)
		public.POST("/register", Controllers.Register)
	}

	// Approved brokers
	authorized := router.Group("/api/protected")
	authorized.Use(Middleware.JwtAuthMiddleware())
	authorized.Use(Middleware.ApprovedOnly())
	{
		// User-related routes
		authorized.GET("/user", Controllers.CurrentUser)
		authorized.POST("/UpdatePassword", Controllers.UpdatePassword)
		authorized.POST("/DeleteUser", Controllers.DeleteUser)

		// Quote-related routes
		authorized.POST("/CalculateQuote", Controllers.CalculateQuote)
		authorized.GET("/FetchCatalog", Controllers.FetchCatalog)

		// Export-related routes
		authorized.POST("/ExportQuoteExcel", Controllers.ExportQuoteExcel)
		authorized.POST("/ExportComparisonPDF", Controllers.ExportComparisonPDF)

		// Advisor route
		authorized.POST("/GetAdvice", Advisor.GetAdvice)
	}

	// Admin panel
	admin := router.Group("/api/admin")
	admin.Use(Middleware.JwtAuthMiddleware())
	admin.Use(Middleware.PermissionCheckAdmin())
	{
		// Broker approval routes
		admin.GET("/FetchBrokers", Controllers.FetchBrokers)
		admin.POST("/ApproveBroker", Controllers.ApproveBroker)
		admin.POST("/RejectBroker", Controllers.RejectBroker)
		admin.POST("/SetBrokerAccessPlan", Controllers.SetBrokerAccessPlan)

		// Catalog CRUD routes
		admin.GET("/FetchHealthPlans", Controllers.FetchHealthPlans)
		admin.POST("/AddHealthPlan", Controllers.AddHealthPlan)
		admin.POST("/EditHealthPlan", Controllers.EditHealthPlan)
		admin.POST("/DeleteHealthPlan", Controllers.DeleteHealthPlan)

		// WhatsApp-related routes
		admin.GET("/CheckWhatsAppLogin", Whatsapp.CheckLogin)
		admin.GET("/GetWhatsAppQRCode", Whatsapp.GetQRCode)

		// SSE (Server-Sent Events) route
		admin.GET("/RequestSSE", SSE.RequestSSE)
	}

	// Static file serving
	router.Static("/Web", "./Static")
}
