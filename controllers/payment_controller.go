package controllers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/abraham-translation/abraham-translation-api/config"
	"github.com/abraham-translation/abraham-translation-api/models"
	"github.com/abraham-translation/abraham-translation-api/services"
)

// ProcessPaymentRequest represents the request body for processing a payment
type ProcessPaymentRequest struct {
	OrderID       string                 `json:"orderId" binding:"required"`
	Amount        float64                `json:"amount" binding:"required,gt=0"`
	PaymentMethod services.PaymentMethod `json:"paymentMethod" binding:"required"`
}

// ProcessPayment handles POST /api/payments/process. The capture itself
// goes through the injected payment gateway; on approval the order moves
// to in_progress, gains a history row, and the client gets a receipt.
func ProcessPayment(c *gin.Context) {
	db := config.GetDB()

	var req ProcessPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required payment information"})
		return
	}

	var order models.TranslationOrder
	if err := db.Preload("Client").Where("id = ?", req.OrderID).First(&order).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		return
	}

	approved, err := services.GetPaymentGateway().Charge(req.OrderID, req.Amount, req.PaymentMethod)
	if err != nil || !approved {
		if err != nil {
			log.Printf("Payment capture failed for order %s: %v", req.OrderID, err)
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": "Payment failed. Please try again."})
		return
	}

	if err := db.Model(&order).Update("status", models.StatusInProgress).Error; err != nil {
		log.Printf("Failed to update order %s after payment: %v", req.OrderID, err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Failed to update order status",
			"details": err.Error(),
		})
		return
	}

	note := "Payment received successfully. Translation work has begun."
	history := models.OrderStatusHistory{
		OrderID: order.ID,
		Status:  models.StatusInProgress,
		Notes:   &note,
	}
	if err := db.Create(&history).Error; err != nil {
		log.Printf("Failed to create status history for order %s: %v", order.ID, err)
	}

	cfg := config.GetConfig()
	emailData := services.OrderEmailData{
		OrderNumber:    order.OrderNumber,
		ClientName:     order.Client.FullName(),
		ClientEmail:    order.Client.Email,
		SourceLanguage: languageName(order.SourceLanguage),
		TargetLanguage: languageName(order.TargetLanguage),
		DocumentType:   order.DocumentType,
		Urgency:        order.Urgency,
		FinalPrice:     order.FinalPrice,
	}
	if err := services.GetEmailService().Send(order.Client.Email, services.PaymentConfirmationEmail(emailData, cfg.SiteBaseURL)); err != nil {
		log.Printf("Failed to send payment confirmation for order %s: %v", order.OrderNumber, err)
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Payment processed successfully",
	})
}
