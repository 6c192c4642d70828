package controllers

import (
	"log"
	"math"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/abraham-translation/abraham-translation-api/config"
	"github.com/abraham-translation/abraham-translation-api/models"
	"github.com/abraham-translation/abraham-translation-api/services"
)

// ListOrders handles GET /api/admin/orders - the full order list for the
// admin dashboard, newest first
func ListOrders(c *gin.Context) {
	db := config.GetDB()

	var orders []models.TranslationOrder
	err := db.
		Preload("Client").
		Preload("Files").
		Order("created_at DESC").
		Find(&orders).Error
	if err != nil {
		log.Printf("Failed to fetch orders: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch orders"})
		return
	}

	if orders == nil {
		orders = []models.TranslationOrder{}
	}
	c.JSON(http.StatusOK, gin.H{"orders": orders})
}

// UpdateOrder handles POST /api/admin/orders/update - the staff workflow
// that moves an order through its lifecycle. The status/price update is
// fatal; the history row, translated-file upload, and client email are
// best-effort.
func UpdateOrder(c *gin.Context) {
	db := config.GetDB()

	orderID := c.PostForm("orderId")
	status := c.PostForm("status")
	notes := c.PostForm("notes")
	finalPrice := c.PostForm("finalPrice")

	if orderID == "" || status == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required fields"})
		return
	}
	if !models.IsValidStatus(status) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown order status"})
		return
	}

	// Fetch with the client, needed for the status email
	var order models.TranslationOrder
	if err := db.Preload("Client").Where("id = ?", orderID).First(&order).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		return
	}

	updates := map[string]interface{}{"status": status}
	if p, err := strconv.ParseFloat(finalPrice, 64); err == nil {
		updates["final_price"] = p
	}
	if err := db.Model(&order).Updates(updates).Error; err != nil {
		log.Printf("Failed to update order %s: %v", orderID, err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Failed to update order",
			"details": err.Error(),
		})
		return
	}

	// A history row is appended on every update, even when the status value
	// did not change
	history := models.OrderStatusHistory{
		OrderID: order.ID,
		Status:  status,
		Notes:   optionalString(notes),
	}
	if err := db.Create(&history).Error; err != nil {
		log.Printf("Failed to create status history for order %s: %v", order.ID, err)
	}

	if fileHeader, err := c.FormFile("translatedFile"); err == nil && fileHeader != nil {
		storeOrderDocument(order.ID, fileHeader, false)
	}

	// Clients are only emailed on meaningful progress; pending and cancelled
	// transitions stay silent
	if status == models.StatusInProgress || status == models.StatusCompleted || status == models.StatusDelivered {
		cfg := config.GetConfig()
		emailData := services.OrderEmailData{
			OrderNumber:    order.OrderNumber,
			ClientName:     order.Client.FullName(),
			ClientEmail:    order.Client.Email,
			SourceLanguage: languageName(order.SourceLanguage),
			TargetLanguage: languageName(order.TargetLanguage),
			DocumentType:   order.DocumentType,
			Urgency:        order.Urgency,
			Status:         status,
			Notes:          notes,
		}
		if err := services.GetEmailService().Send(order.Client.Email, services.StatusUpdateEmail(emailData, cfg.SiteBaseURL)); err != nil {
			log.Printf("Failed to send status email for order %s: %v", order.OrderNumber, err)
		}
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// GetStats handles GET /api/admin/stats - dashboard aggregates, recomputed
// on every request
func GetStats(c *gin.Context) {
	db := config.GetDB()

	var totalOrders, pendingOrders, inProgressOrders, completedOrders int64
	counts := []struct {
		dest  *int64
		query *gorm.DB
	}{
		{&totalOrders, db.Model(&models.TranslationOrder{})},
		{&pendingOrders, db.Model(&models.TranslationOrder{}).Where("status = ?", models.StatusPending)},
		{&inProgressOrders, db.Model(&models.TranslationOrder{}).Where("status = ?", models.StatusInProgress)},
		{&completedOrders, db.Model(&models.TranslationOrder{}).Where("status IN ?", []string{models.StatusCompleted, models.StatusDelivered})},
	}
	for _, count := range counts {
		if err := count.query.Count(count.dest).Error; err != nil {
			log.Printf("Failed to count orders: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch stats"})
			return
		}
	}

	var pricedOrders []models.TranslationOrder
	err := db.
		Select("final_price", "created_at").
		Where("final_price IS NOT NULL").
		Find(&pricedOrders).Error
	if err != nil {
		log.Printf("Failed to fetch revenue data: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch stats"})
		return
	}

	now := time.Now()
	var totalRevenue, monthlyRevenue float64
	for _, order := range pricedOrders {
		if order.FinalPrice == nil {
			continue
		}
		totalRevenue += *order.FinalPrice
		if order.CreatedAt.Year() == now.Year() && order.CreatedAt.Month() == now.Month() {
			monthlyRevenue += *order.FinalPrice
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"totalOrders":      totalOrders,
		"pendingOrders":    pendingOrders,
		"inProgressOrders": inProgressOrders,
		"completedOrders":  completedOrders,
		"totalRevenue":     math.Round(totalRevenue*100) / 100,
		"monthlyRevenue":   math.Round(monthlyRevenue*100) / 100,
	})
}
