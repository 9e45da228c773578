package paymentControllers

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"

	razorpay "github.com/razorpay/razorpay-go"
)

// Gateway is the slice of the payment provider the storefront talks to:
// mint an order, re-fetch it after payment, and fetch a payment record.
type Gateway interface {
	CreateOrder(data map[string]interface{}) (map[string]interface{}, error)
	FetchOrder(orderID string) (map[string]interface{}, error)
	FetchPayment(paymentID string) (map[string]interface{}, error)
}

type razorpayGateway struct {
	client *razorpay.Client
}

// NewRazorpayGateway wraps the Razorpay SDK client behind Gateway.
func NewRazorpayGateway(keyID, keySecret string) Gateway {
	return &razorpayGateway{client: razorpay.NewClient(keyID, keySecret)}
}

func (g *razorpayGateway) CreateOrder(data map[string]interface{}) (map[string]interface{}, error) {
	return g.client.Order.Create(data, nil)
}

func (g *razorpayGateway) FetchOrder(orderID string) (map[string]interface{}, error) {
	return g.client.Order.Fetch(orderID, nil, nil)
}

func (g *razorpayGateway) FetchPayment(paymentID string) (map[string]interface{}, error) {
	return g.client.Payment.Fetch(paymentID, nil, nil)
}

// VerifySignature recomputes the HMAC-SHA256 of "orderID|paymentID" with
// the gateway secret and compares it to the client-supplied signature.
func VerifySignature(orderID, paymentID, signature, secret string) bool {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(orderID + "|" + paymentID))
	expected := hex.EncodeToString(mac.Sum(nil))
	return hmac.Equal([]byte(expected), []byte(signature))
}
