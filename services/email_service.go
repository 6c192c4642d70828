package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/abraham-translation/abraham-translation-api/config"
)

// resendEndpoint is the Resend transactional email API
const resendEndpoint = "https://api.resend.com/emails"

// EmailTemplate holds the rendered parts of a notification email
type EmailTemplate struct {
	Subject string
	HTML    string
	Text    string
}

// OrderEmailData carries the order fields referenced by the email templates
type OrderEmailData struct {
	OrderNumber         string
	ClientName          string
	ClientEmail         string
	SourceLanguage      string
	TargetLanguage      string
	DocumentType        string
	Urgency             string
	WordCount           *int
	EstimatedPrice      *float64
	FinalPrice          *float64
	SpecialInstructions string
	Status              string
	Notes               string
}

// EmailInterface defines the interface for email delivery
type EmailInterface interface {
	Send(to string, template EmailTemplate) error
}

// EmailService delivers emails through the Resend HTTP API. When no API key
// is configured it logs the email to the console instead of failing, so
// development environments work without credentials.
type EmailService struct {
	apiKey     string
	from       string
	httpClient *http.Client
}

var emailServiceInstance EmailInterface

// InitEmailService initializes the email service from configuration
func InitEmailService(cfg *config.Config) EmailInterface {
	emailServiceInstance = &EmailService{
		apiKey: cfg.ResendAPIKey,
		from:   cfg.EmailFrom,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
	return emailServiceInstance
}

// GetEmailService returns the initialized email service instance
func GetEmailService() EmailInterface {
	return emailServiceInstance
}

// SetEmailService sets the email service instance (primarily for testing)
func SetEmailService(service EmailInterface) {
	emailServiceInstance = service
}

// resendRequest is the JSON body accepted by the Resend API
type resendRequest struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	HTML    string   `json:"html"`
	Text    string   `json:"text"`
}

// Send delivers an email to a single recipient
func (s *EmailService) Send(to string, template EmailTemplate) error {
	if s.apiKey == "" {
		// No API key configured, log the email instead of sending it
		log.Printf("[email fallback] to=%s subject=%q", to, template.Subject)
		return nil
	}

	body, err := json.Marshal(resendRequest{
		From:    s.from,
		To:      []string{to},
		Subject: template.Subject,
		HTML:    template.HTML,
		Text:    template.Text,
	})
	if err != nil {
		return fmt.Errorf("failed to encode email request: %w", err)
	}

	req, err := http.NewRequest("POST", resendEndpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to create email request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+s.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to call email API: %w", err)
	}
	defer func() {
		if closeErr := resp.Body.Close(); closeErr != nil {
			log.Printf("warning: failed to close email response body: %v", closeErr)
		}
	}()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		respBody, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("email API returned status %d: %s", resp.StatusCode, string(respBody))
	}

	log.Printf("Email sent to %s: %s", to, template.Subject)
	return nil
}

// OrderConfirmationEmail builds the confirmation sent to the client after
// a successful submission
func OrderConfirmationEmail(data OrderEmailData, baseURL string) EmailTemplate {
	trackingURL := baseURL + "/client/track"

	var details strings.Builder
	writeDetailRow(&details, "Order Number", data.OrderNumber)
	writeDetailRow(&details, "Languages", data.SourceLanguage+" → "+data.TargetLanguage)
	writeDetailRow(&details, "Document Type", data.DocumentType)
	writeDetailRow(&details, "Urgency", data.Urgency)
	if data.WordCount != nil {
		writeDetailRow(&details, "Word Count", fmt.Sprintf("%d", *data.WordCount))
	}
	if data.EstimatedPrice != nil {
		writeDetailRow(&details, "Estimated Price", formatPrice(*data.EstimatedPrice))
	}
	if data.SpecialInstructions != "" {
		writeDetailRow(&details, "Special Instructions", data.SpecialInstructions)
	}

	return EmailTemplate{
		Subject: fmt.Sprintf("Order Confirmation - %s", data.OrderNumber),
		HTML: renderEmailHTML(
			"Order Confirmation",
			fmt.Sprintf("<p>Dear %s,</p><p>We have received your translation order and it is currently being reviewed by our team. You will receive a confirmation with final pricing within 2 hours.</p>", data.ClientName),
			details.String(),
			fmt.Sprintf(`<p><a class="button" href="%s">Track Your Order</a></p>`, trackingURL),
		),
		Text: fmt.Sprintf(
			"Dear %s,\n\nWe have received your translation order %s (%s → %s, %s). "+
				"You will receive a confirmation with final pricing within 2 hours.\n\n"+
				"Track your order: %s\n",
			data.ClientName, data.OrderNumber, data.SourceLanguage, data.TargetLanguage,
			data.DocumentType, trackingURL),
	}
}

// AdminNotificationEmail builds the new-order notification sent to staff
func AdminNotificationEmail(data OrderEmailData, baseURL string) EmailTemplate {
	adminURL := baseURL + "/admin"

	var details strings.Builder
	writeDetailRow(&details, "Order Number", data.OrderNumber)
	writeDetailRow(&details, "Client", fmt.Sprintf("%s (%s)", data.ClientName, data.ClientEmail))
	writeDetailRow(&details, "Languages", data.SourceLanguage+" → "+data.TargetLanguage)
	writeDetailRow(&details, "Document Type", data.DocumentType)
	writeDetailRow(&details, "Urgency", data.Urgency)
	if data.WordCount != nil {
		writeDetailRow(&details, "Word Count", fmt.Sprintf("%d", *data.WordCount))
	}
	if data.EstimatedPrice != nil {
		writeDetailRow(&details, "Estimated Price", formatPrice(*data.EstimatedPrice))
	}
	if data.SpecialInstructions != "" {
		writeDetailRow(&details, "Special Instructions", data.SpecialInstructions)
	}

	return EmailTemplate{
		Subject: fmt.Sprintf("New Order Received - %s", data.OrderNumber),
		HTML: renderEmailHTML(
			"New Translation Order",
			"<p>A new translation order has been submitted and is awaiting review.</p>",
			details.String(),
			fmt.Sprintf(`<p><a class="button" href="%s">Open Admin Dashboard</a></p>`, adminURL),
		),
		Text: fmt.Sprintf(
			"New translation order %s from %s (%s): %s → %s, %s, urgency %s.\n\nReview it at %s\n",
			data.OrderNumber, data.ClientName, data.ClientEmail, data.SourceLanguage,
			data.TargetLanguage, data.DocumentType, data.Urgency, adminURL),
	}
}

// StatusUpdateEmail builds the notification sent to the client when staff
// move an order to in_progress, completed, or delivered
func StatusUpdateEmail(data OrderEmailData, baseURL string) EmailTemplate {
	trackingURL := baseURL + "/client/track"

	var details strings.Builder
	writeDetailRow(&details, "Order Number", data.OrderNumber)
	writeDetailRow(&details, "New Status", statusLabel(data.Status))
	writeDetailRow(&details, "Languages", data.SourceLanguage+" → "+data.TargetLanguage)
	if data.Notes != "" {
		writeDetailRow(&details, "Notes", data.Notes)
	}

	return EmailTemplate{
		Subject: fmt.Sprintf("Order Update - %s", data.OrderNumber),
		HTML: renderEmailHTML(
			"Order Status Update",
			fmt.Sprintf("<p>Dear %s,</p><p>Your translation order has been updated to <strong>%s</strong>.</p>", data.ClientName, statusLabel(data.Status)),
			details.String(),
			fmt.Sprintf(`<p><a class="button" href="%s">Track Your Order</a></p>`, trackingURL),
		),
		Text: fmt.Sprintf(
			"Dear %s,\n\nYour translation order %s has been updated to: %s.\n%s\nTrack your order: %s\n",
			data.ClientName, data.OrderNumber, statusLabel(data.Status),
			notesLine(data.Notes), trackingURL),
	}
}

// PaymentConfirmationEmail builds the receipt sent to the client after a
// successful payment
func PaymentConfirmationEmail(data OrderEmailData, baseURL string) EmailTemplate {
	trackingURL := baseURL + "/client/track"

	var details strings.Builder
	writeDetailRow(&details, "Order Number", data.OrderNumber)
	writeDetailRow(&details, "Languages", data.SourceLanguage+" → "+data.TargetLanguage)
	writeDetailRow(&details, "Document Type", data.DocumentType)
	if data.FinalPrice != nil {
		writeDetailRow(&details, "Amount Paid", formatPrice(*data.FinalPrice))
	}

	return EmailTemplate{
		Subject: fmt.Sprintf("Payment Confirmation - %s", data.OrderNumber),
		HTML: renderEmailHTML(
			"Payment Confirmation",
			fmt.Sprintf("<p>Dear %s,</p><p>We have received your payment. Translation work on your order has begun.</p>", data.ClientName),
			details.String(),
			fmt.Sprintf(`<p><a class="button" href="%s">Track Your Order</a></p>`, trackingURL),
		),
		Text: fmt.Sprintf(
			"Dear %s,\n\nWe have received your payment for order %s. Translation work has begun.\n\nTrack your order: %s\n",
			data.ClientName, data.OrderNumber, trackingURL),
	}
}

// renderEmailHTML wraps the body sections in the shared email layout
func renderEmailHTML(heading, intro, detailRows, action string) string {
	return fmt.Sprintf(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<style>
body { font-family: -apple-system, 'Segoe UI', Roboto, sans-serif; line-height: 1.6; color: #333; background-color: #f9fafb; margin: 0; }
.container { max-width: 600px; margin: 0 auto; background-color: white; }
.header { background-color: #2563eb; color: white; padding: 20px; text-align: center; }
.content { padding: 30px; }
.order-details { background-color: #f3f4f6; padding: 20px; border-radius: 8px; margin: 20px 0; }
.detail-row { margin-bottom: 10px; }
.detail-label { font-weight: 600; color: #6b7280; }
.button { display: inline-block; background-color: #2563eb; color: white; padding: 12px 24px; text-decoration: none; border-radius: 6px; font-weight: 600; }
.footer { background-color: #f9fafb; padding: 20px; text-align: center; color: #6b7280; font-size: 14px; }
</style>
</head>
<body>
<div class="container">
<div class="header"><h1>%s</h1><p>Abraham Translation Service</p></div>
<div class="content">
%s
<div class="order-details"><h3>Order Details</h3>
%s</div>
%s
</div>
<div class="footer"><p>Abraham Translation Service | Professional Document Translation</p></div>
</div>
</body>
</html>`, heading, intro, detailRows, action)
}

func writeDetailRow(b *strings.Builder, label, value string) {
	fmt.Fprintf(b, `<div class="detail-row"><span class="detail-label">%s:</span> <span>%s</span></div>`+"\n", label, value)
}

func formatPrice(amount float64) string {
	return fmt.Sprintf("$%.2f", amount)
}

// statusLabel maps a status value to the wording used in client emails
func statusLabel(status string) string {
	switch status {
	case "in_progress":
		return "In Progress"
	case "completed":
		return "Completed"
	case "delivered":
		return "Delivered"
	case "cancelled":
		return "Cancelled"
	case "pending":
		return "Pending"
	default:
		return status
	}
}

func notesLine(notes string) string {
	if notes == "" {
		return ""
	}
	return "Notes: " + notes + "\n"
}
