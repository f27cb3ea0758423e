package model

// PaymentResult is returned by the payment endpoint.  Payments are
// simulated: every request succeeds and nothing is linked to a booking.
type PaymentResult struct {
	Success       bool   `json:"success"`
	TransactionID string `json:"transactionId"`
	Message       string `json:"message"`
	Timestamp     string `json:"timestamp"`
}
