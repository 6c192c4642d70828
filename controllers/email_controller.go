package controllers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/abraham-translation/abraham-translation-api/config"
	"github.com/abraham-translation/abraham-translation-api/services"
)

// SendTestEmails handles POST /api/emails/test - renders and dispatches one
// sample of each notification kind so staff can verify delivery end to end
func SendTestEmails(c *gin.Context) {
	cfg := config.GetConfig()

	wordCount := 1250
	price := 150.0
	testData := services.OrderEmailData{
		OrderNumber:         "ATS-2024-0001",
		ClientName:          "John Smith",
		ClientEmail:         "client@abrahamtranslation.com",
		SourceLanguage:      "English",
		TargetLanguage:      "Spanish",
		DocumentType:        "Legal Document",
		Urgency:             "standard",
		WordCount:           &wordCount,
		EstimatedPrice:      &price,
		FinalPrice:          &price,
		SpecialInstructions: "Please ensure legal terminology is accurate.",
		Status:              "completed",
		Notes:               "Translation completed and reviewed by certified linguist.",
	}

	emailService := services.GetEmailService()
	samples := []struct {
		to       string
		template services.EmailTemplate
	}{
		{testData.ClientEmail, services.OrderConfirmationEmail(testData, cfg.SiteBaseURL)},
		{testData.ClientEmail, services.PaymentConfirmationEmail(testData, cfg.SiteBaseURL)},
		{testData.ClientEmail, services.StatusUpdateEmail(testData, cfg.SiteBaseURL)},
		{cfg.AdminEmail, services.AdminNotificationEmail(testData, cfg.SiteBaseURL)},
	}
	for _, sample := range samples {
		if err := emailService.Send(sample.to, sample.template); err != nil {
			log.Printf("Failed to send test email %q: %v", sample.template.Subject, err)
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Test emails sent successfully (check console logs)",
	})
}
