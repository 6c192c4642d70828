package controllers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/abraham-translation/abraham-translation-api/models"
	"github.com/abraham-translation/abraham-translation-api/services"
)

// decliningGateway rejects every charge, standing in for a processor error
type decliningGateway struct{}

func (g *decliningGateway) Charge(orderID string, amount float64, method services.PaymentMethod) (bool, error) {
	return false, nil
}

func paymentRequestBody(orderID string, amount float64) []byte {
	body, _ := json.Marshal(map[string]interface{}{
		"orderId": orderID,
		"amount":  amount,
		"paymentMethod": map[string]string{
			"cardNumber":     "4242424242424242",
			"expiryMonth":    "12",
			"expiryYear":     "2030",
			"cvc":            "123",
			"cardholderName": "Test Client",
		},
	})
	return body
}

func postPayment(router http.Handler, body []byte) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/api/payments/process", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
	return w
}

func TestProcessPayment(t *testing.T) {
	db, _, emailMock := setupTestEnv(t)
	services.SetPaymentGateway(&services.SimulatedGateway{})
	router := newTestRouter()

	price := 100.0
	order := seedOrder(t, db, models.StatusPending, &price)

	w := postPayment(router, paymentRequestBody(order.ID, 100))
	assert.Equal(t, http.StatusOK, w.Code)

	var response map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, true, response["success"])
	assert.Equal(t, "Payment processed successfully", response["message"])

	// Order moved to in_progress
	var updated models.TranslationOrder
	assert.NoError(t, db.First(&updated, "id = ?", order.ID).Error)
	assert.Equal(t, models.StatusInProgress, updated.Status)

	// Exactly one new history row noting payment receipt
	var history []models.OrderStatusHistory
	db.Where("order_id = ?", order.ID).Find(&history)
	if assert.Len(t, history, 1) {
		assert.Equal(t, models.StatusInProgress, history[0].Status)
		if assert.NotNil(t, history[0].Notes) {
			assert.Contains(t, *history[0].Notes, "Payment received")
		}
	}

	// One payment confirmation email to the client
	sent := emailMock.SentEmails()
	if assert.Len(t, sent, 1) {
		assert.Equal(t, order.Client.Email, sent[0].To)
		assert.Contains(t, sent[0].Template.Subject, "Payment Confirmation")
	}
}

func TestProcessPaymentUnknownOrder(t *testing.T) {
	setupTestEnv(t)
	services.SetPaymentGateway(&services.SimulatedGateway{})
	router := newTestRouter()

	w := postPayment(router, paymentRequestBody("00000000-0000-0000-0000-000000000000", 100))
	assert.Equal(t, http.StatusNotFound, w.Code)

	var response map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &response)
	assert.Equal(t, "Order not found", response["error"])
}

func TestProcessPaymentMissingFields(t *testing.T) {
	setupTestEnv(t)
	router := newTestRouter()

	body, _ := json.Marshal(map[string]interface{}{"orderId": "abc"})
	w := postPayment(router, body)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	var response map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &response)
	assert.Equal(t, "Missing required payment information", response["error"])
}

func TestProcessPaymentDeclined(t *testing.T) {
	db, _, emailMock := setupTestEnv(t)
	services.SetPaymentGateway(&decliningGateway{})
	defer services.SetPaymentGateway(&services.SimulatedGateway{})
	router := newTestRouter()

	price := 100.0
	order := seedOrder(t, db, models.StatusPending, &price)

	w := postPayment(router, paymentRequestBody(order.ID, 100))
	assert.Equal(t, http.StatusBadRequest, w.Code)

	var response map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &response)
	assert.Equal(t, "Payment failed. Please try again.", response["error"])

	// A declined charge mutates nothing
	var unchanged models.TranslationOrder
	assert.NoError(t, db.First(&unchanged, "id = ?", order.ID).Error)
	assert.Equal(t, models.StatusPending, unchanged.Status)

	var historyCount int64
	db.Model(&models.OrderStatusHistory{}).Count(&historyCount)
	assert.Equal(t, int64(0), historyCount)
	assert.Empty(t, emailMock.SentEmails())
}
