package models

import (
	"errors"
	"fmt"
	"math"
	"time"
)

// TransactionStatus represents the outcome reported by the payment provider
type TransactionStatus string

const (
	TransactionStatusSuccess TransactionStatus = "SUCCESS"
	TransactionStatusFailed  TransactionStatus = "FAILED"
)

// Transaction is one recorded mobile-money payment result
type Transaction struct {
	ID                string            `json:"id" db:"id"`
	TransactionID     string            `json:"transaction_id" db:"transaction_id"`
	Phone             string            `json:"phone" db:"phone"`
	Amount            int64             `json:"amount" db:"amount"`
	MerchantRequestID string            `json:"merchant_request_id" db:"merchant_request_id"`
	Status            TransactionStatus `json:"status" db:"status"`
	FailureReason     *string           `json:"failure_reason,omitempty" db:"failure_reason"`
	TransactionDate   time.Time         `json:"transaction_date" db:"transaction_date"`
	CreatedAt         time.Time         `json:"created_at" db:"created_at"`
}

// InitiatePaymentRequest is the payload for starting an STK push
type InitiatePaymentRequest struct {
	Phone  string `json:"phone"`
	Amount int64  `json:"amount"`
}

// Validate validates the payment initiation request
func (r *InitiatePaymentRequest) Validate() error {
	if r.Phone == "" {
		return errors.New("phone is required")
	}
	if r.Amount <= 0 {
		return errors.New("amount must be greater than zero")
	}
	return nil
}

// STKCallbackEnvelope is the outer shape of the Daraja payment callback
type STKCallbackEnvelope struct {
	Body struct {
		StkCallback STKCallback `json:"stkCallback"`
	} `json:"Body"`
}

// STKCallback carries the push-payment result. CallbackMetadata is only
// present when ResultCode is zero.
type STKCallback struct {
	MerchantRequestID string `json:"MerchantRequestID"`
	CheckoutRequestID string `json:"CheckoutRequestID"`
	ResultCode        int    `json:"ResultCode"`
	ResultDesc        string `json:"ResultDesc"`
	CallbackMetadata  struct {
		Item []CallbackItem `json:"Item"`
	} `json:"CallbackMetadata"`
}

// CallbackItem is one name/value pair from the callback metadata list
type CallbackItem struct {
	Name  string      `json:"Name"`
	Value interface{} `json:"Value"`
}

// Succeeded reports whether the provider accepted the payment
func (c *STKCallback) Succeeded() bool {
	return c.ResultCode == 0
}

// TransactionFromCallback folds a successful callback's metadata items into a
// transaction record. It fails if the callback reports a non-zero result code.
func TransactionFromCallback(c *STKCallback) (*Transaction, error) {
	if !c.Succeeded() {
		return nil, fmt.Errorf("callback reported failure: %s", c.ResultDesc)
	}

	txn := &Transaction{
		MerchantRequestID: c.MerchantRequestID,
		Status:            TransactionStatusSuccess,
		TransactionDate:   time.Now().UTC(),
	}

	for _, item := range c.CallbackMetadata.Item {
		switch item.Name {
		case "MpesaReceiptNumber":
			if s, ok := item.Value.(string); ok {
				txn.TransactionID = s
			}
		case "PhoneNumber":
			txn.Phone = stringifyCallbackValue(item.Value)
		case "Amount":
			txn.Amount = int64FromCallbackValue(item.Value)
		}
	}

	if txn.TransactionID == "" {
		return nil, errors.New("callback metadata missing MpesaReceiptNumber")
	}
	return txn, nil
}

// FailedTransaction builds the record for a rejected payment
func FailedTransaction(c *STKCallback) *Transaction {
	reason := c.ResultDesc
	return &Transaction{
		MerchantRequestID: c.MerchantRequestID,
		Status:            TransactionStatusFailed,
		FailureReason:     &reason,
		TransactionDate:   time.Now().UTC(),
	}
}

// stringifyCallbackValue renders a metadata value that may arrive as a JSON
// string or number. Phone numbers come back as numbers.
func stringifyCallbackValue(v interface{}) string {
	switch value := v.(type) {
	case string:
		return value
	case float64:
		return fmt.Sprintf("%.0f", value)
	default:
		return fmt.Sprintf("%v", value)
	}
}

func int64FromCallbackValue(v interface{}) int64 {
	switch value := v.(type) {
	case float64:
		return int64(math.Round(value))
	case int:
		return int64(value)
	case int64:
		return value
	default:
		return 0
	}
}
