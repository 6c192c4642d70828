package services

import "log"

// PaymentMethod describes the card details submitted by the payment form.
// No real processor is wired up, so these fields are carried but never
// validated against a gateway.
type PaymentMethod struct {
	CardNumber     string `json:"cardNumber"`
	ExpiryMonth    string `json:"expiryMonth"`
	ExpiryYear     string `json:"expiryYear"`
	CVC            string `json:"cvc"`
	CardholderName string `json:"cardholderName"`
}

// PaymentGateway is the capture capability injected into the payment
// workflow. A production deployment would back this with Stripe; the
// default implementation approves every charge.
type PaymentGateway interface {
	Charge(orderID string, amount float64, method PaymentMethod) (bool, error)
}

// SimulatedGateway approves all charges. It stands in for a real payment
// processor in this codebase.
type SimulatedGateway struct{}

var paymentGatewayInstance PaymentGateway = &SimulatedGateway{}

// GetPaymentGateway returns the configured payment gateway
func GetPaymentGateway() PaymentGateway {
	return paymentGatewayInstance
}

// SetPaymentGateway sets the payment gateway instance (primarily for testing)
func SetPaymentGateway(gateway PaymentGateway) {
	paymentGatewayInstance = gateway
}

// Charge always succeeds
func (g *SimulatedGateway) Charge(orderID string, amount float64, method PaymentMethod) (bool, error) {
	log.Printf("Simulated payment capture for order %s: $%.2f", orderID, amount)
	return true, nil
}
