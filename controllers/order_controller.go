package controllers

import (
	"errors"
	"io"
	"log"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/abraham-translation/abraham-translation-api/config"
	"github.com/abraham-translation/abraham-translation-api/models"
	"github.com/abraham-translation/abraham-translation-api/services"
	"github.com/abraham-translation/abraham-translation-api/utils"
)

// SubmitOrder handles POST /api/orders/submit - the order intake workflow.
// It resolves (or creates) the client by email, creates the order, and then
// runs the best-effort side effects: source file upload, initial status
// history row, and confirmation/notification emails. Only the client
// creation and the order creation are fatal.
func SubmitOrder(c *gin.Context) {
	db := config.GetDB()

	firstName := strings.TrimSpace(c.PostForm("firstName"))
	lastName := strings.TrimSpace(c.PostForm("lastName"))
	email := strings.TrimSpace(c.PostForm("email"))

	if firstName == "" || lastName == "" || email == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required client information"})
		return
	}

	sourceLanguage := c.PostForm("sourceLanguage")
	targetLanguage := c.PostForm("targetLanguage")
	documentType := c.PostForm("documentType")

	if sourceLanguage == "" || targetLanguage == "" || documentType == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required order information"})
		return
	}

	urgency := c.PostForm("urgency")
	if urgency == "" {
		urgency = models.UrgencyStandard
	}
	if !models.IsValidUrgency(urgency) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid urgency level"})
		return
	}

	var wordCount *int
	if n, err := strconv.Atoi(c.PostForm("wordCount")); err == nil && n > 0 {
		wordCount = &n
	}

	var estimatedPrice *float64
	if p, err := strconv.ParseFloat(c.PostForm("estimatedPrice"), 64); err == nil && p > 0 {
		estimatedPrice = &p
	} else if wordCount != nil {
		// The form normally sends the estimate; recompute it if it didn't
		p := utils.EstimatePrice(*wordCount, urgency)
		estimatedPrice = &p
	}

	phone := optionalString(c.PostForm("phone"))
	company := optionalString(c.PostForm("company"))
	specialInstructions := optionalString(c.PostForm("specialInstructions"))

	// Resolve the client by email, creating one on first contact
	var client models.Client
	err := db.Where("email = ?", email).First(&client).Error
	switch {
	case err == nil:
		// Overwrite contact fields with the latest submission. Not critical;
		// the order is still created if this fails.
		updates := map[string]interface{}{
			"first_name": firstName,
			"last_name":  lastName,
			"phone":      phone,
			"company":    company,
		}
		if err := db.Model(&client).Updates(updates).Error; err != nil {
			log.Printf("Failed to update client %s: %v", client.ID, err)
		}
		client.FirstName = firstName
		client.LastName = lastName
	case errors.Is(err, gorm.ErrRecordNotFound):
		client = models.Client{
			Email:     email,
			FirstName: firstName,
			LastName:  lastName,
			Phone:     phone,
			Company:   company,
		}
		if err := db.Create(&client).Error; err != nil {
			log.Printf("Failed to create client: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{
				"error":   "Failed to create client record",
				"details": err.Error(),
			})
			return
		}
	default:
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Database error while checking client",
			"details": err.Error(),
		})
		return
	}

	order := models.TranslationOrder{
		ClientID:            client.ID,
		SourceLanguage:      sourceLanguage,
		TargetLanguage:      targetLanguage,
		DocumentType:        documentType,
		Urgency:             urgency,
		WordCount:           wordCount,
		EstimatedPrice:      estimatedPrice,
		Status:              models.StatusPending,
		SpecialInstructions: specialInstructions,
	}
	if err := db.Create(&order).Error; err != nil {
		log.Printf("Failed to create order: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Failed to create order",
			"details": err.Error(),
		})
		return
	}

	// Best-effort side effects from here on. The order exists, so failures
	// below are logged but never surfaced to the caller.
	if fileHeader, err := c.FormFile("file"); err == nil && fileHeader != nil {
		storeOrderDocument(order.ID, fileHeader, true)
	}

	note := "Order submitted successfully"
	history := models.OrderStatusHistory{
		OrderID: order.ID,
		Status:  models.StatusPending,
		Notes:   &note,
	}
	if err := db.Create(&history).Error; err != nil {
		log.Printf("Failed to create status history for order %s: %v", order.ID, err)
	}

	cfg := config.GetConfig()
	emailData := services.OrderEmailData{
		OrderNumber:         order.OrderNumber,
		ClientName:          client.FullName(),
		ClientEmail:         client.Email,
		SourceLanguage:      languageName(sourceLanguage),
		TargetLanguage:      languageName(targetLanguage),
		DocumentType:        documentType,
		Urgency:             urgency,
		WordCount:           wordCount,
		EstimatedPrice:      estimatedPrice,
		SpecialInstructions: c.PostForm("specialInstructions"),
	}
	emailService := services.GetEmailService()
	if err := emailService.Send(client.Email, services.OrderConfirmationEmail(emailData, cfg.SiteBaseURL)); err != nil {
		log.Printf("Failed to send confirmation email for order %s: %v", order.OrderNumber, err)
	}
	if err := emailService.Send(cfg.AdminEmail, services.AdminNotificationEmail(emailData, cfg.SiteBaseURL)); err != nil {
		log.Printf("Failed to send admin notification for order %s: %v", order.OrderNumber, err)
	}

	c.JSON(http.StatusOK, gin.H{
		"success":     true,
		"orderId":     order.ID,
		"orderNumber": order.OrderNumber,
	})
}

// TrackOrders handles GET /api/orders/track - read-only order lookup by
// order number or client email
func TrackOrders(c *gin.Context) {
	db := config.GetDB()

	searchType := c.Query("type")
	value := c.Query("value")

	if searchType == "" || value == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing search parameters"})
		return
	}

	query := db.
		Preload("Client").
		Preload("Files").
		Preload("StatusHistory", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at DESC")
		}).
		Order("created_at DESC")

	switch searchType {
	case "order":
		query = query.Where("order_number = ?", value)
	case "email":
		var client models.Client
		if err := db.Where("email = ?", value).First(&client).Error; err != nil {
			// Unknown email is not an error, just an empty result
			c.JSON(http.StatusOK, gin.H{"orders": []models.TranslationOrder{}})
			return
		}
		query = query.Where("client_id = ?", client.ID)
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid search type"})
		return
	}

	var orders []models.TranslationOrder
	if err := query.Find(&orders).Error; err != nil {
		log.Printf("Failed to fetch orders: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch orders"})
		return
	}

	if orders == nil {
		orders = []models.TranslationOrder{}
	}
	c.JSON(http.StatusOK, gin.H{"orders": orders})
}

// storeOrderDocument uploads a document and records its order_files row.
// Every step is best-effort: validation, upload, or record failures are
// logged and swallowed so the enclosing workflow still succeeds.
func storeOrderDocument(orderID string, fileHeader *multipart.FileHeader, isSource bool) {
	if err := utils.ValidateDocumentFile(fileHeader); err != nil {
		log.Printf("Skipping document for order %s: %v", orderID, err)
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		log.Printf("Failed to open uploaded file for order %s: %v", orderID, err)
		return
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil {
			log.Printf("warning: failed to close uploaded file: %v", closeErr)
		}
	}()

	content, err := io.ReadAll(file)
	if err != nil {
		log.Printf("Failed to read uploaded file for order %s: %v", orderID, err)
		return
	}

	var path string
	if isSource {
		path = utils.SourceDocumentPath(orderID, fileHeader.Filename)
	} else {
		path = utils.TranslatedDocumentPath(orderID, fileHeader.Filename)
	}

	if err := services.GetS3Service().UploadDocument(path, content, utils.ContentTypeForFile(fileHeader.Filename)); err != nil {
		log.Printf("Failed to upload document for order %s: %v", orderID, err)
		return
	}

	record := models.OrderFile{
		OrderID:  orderID,
		FileName: fileHeader.Filename,
		FilePath: path,
		FileType: utils.FileExtension(fileHeader.Filename),
		FileSize: fileHeader.Size,
		IsSource: isSource,
	}
	if err := config.GetDB().Create(&record).Error; err != nil {
		// The blob is already stored; losing the record is logged only
		log.Printf("Failed to save file record for order %s: %v", orderID, err)
	}
}

// languageName resolves a language code to its display name for emails
func languageName(code string) string {
	if name, ok := models.Languages[code]; ok {
		return name
	}
	return code
}

func optionalString(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}
