package handlers

import (
	"errors"
	"net/http"

	"github.com/canaville/resort-booking-backend/internal/database"
	"github.com/canaville/resort-booking-backend/internal/models"
	"github.com/canaville/resort-booking-backend/internal/services"
	"github.com/gin-gonic/gin"
)

// PaymentHandler handles payment-related HTTP requests
type PaymentHandler struct {
	paymentService  *services.PaymentService
	transactionRepo *database.TransactionRepository
}

// NewPaymentHandler creates a new PaymentHandler
func NewPaymentHandler(paymentService *services.PaymentService, transactionRepo *database.TransactionRepository) *PaymentHandler {
	return &PaymentHandler{
		paymentService:  paymentService,
		transactionRepo: transactionRepo,
	}
}

// InitiatePayment starts an STK push to the customer's phone
// POST /token
func (h *PaymentHandler) InitiatePayment(c *gin.Context) {
	var req models.InitiatePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"message": err.Error(),
		})
		return
	}

	resp, err := h.paymentService.Initiate(c.Request.Context(), &req)
	if err != nil {
		var validationErr *models.ValidationError
		if errors.As(err, &validationErr) {
			c.JSON(http.StatusBadRequest, gin.H{
				"error":   "validation_error",
				"message": "Please correct the highlighted fields",
				"fields":  validationErr.Fields,
			})
			return
		}
		c.JSON(http.StatusBadGateway, gin.H{
			"error":   "payment_failed",
			"message": services.ErrPaymentGateway.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":             "STK push sent. Check your phone to complete payment.",
		"merchant_request_id": resp.MerchantRequestID,
		"checkout_request_id": resp.CheckoutRequestID,
		"customer_message":    resp.CustomerMessage,
	})
}

// Callback receives the asynchronous payment result from the gateway.
// The gateway expects a ResultCode/ResultDesc acknowledgement body.
// POST /token/callback
func (h *PaymentHandler) Callback(c *gin.Context) {
	var envelope models.STKCallbackEnvelope
	if err := c.ShouldBindJSON(&envelope); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"ResultCode": 1,
			"ResultDesc": "Invalid callback payload",
		})
		return
	}

	if _, err := h.paymentService.RecordCallback(&envelope.Body.StkCallback); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"ResultCode": 1,
			"ResultDesc": "Failed to record transaction",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"ResultCode": 0,
		"ResultDesc": "Accepted",
	})
}

// ListTransactions returns all recorded transactions, newest first (admin)
// GET /api/v1/admin/transactions
func (h *PaymentHandler) ListTransactions(c *gin.Context) {
	transactions, err := h.transactionRepo.List()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "list_failed",
			"message": "Failed to load transactions",
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"count":        len(transactions),
		"transactions": transactions,
	})
}
