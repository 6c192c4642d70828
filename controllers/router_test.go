package controllers

import "github.com/gin-gonic/gin"

// newTestRouter registers the API routes the way main.go does, minus the
// Auth0 middleware on the admin group. Token validation is covered by the
// middleware package's own tests.
func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	api := router.Group("/api")
	{
		api.POST("/orders/submit", SubmitOrder)
		api.GET("/orders/track", TrackOrders)
		api.POST("/payments/process", ProcessPayment)
		api.GET("/files/download", DownloadFile)
		api.POST("/emails/test", SendTestEmails)

		admin := api.Group("/admin")
		{
			admin.GET("/orders", ListOrders)
			admin.POST("/orders/update", UpdateOrder)
			admin.GET("/stats", GetStats)
		}
	}

	return router
}
