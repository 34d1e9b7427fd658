package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/canaville/resort-booking-backend/internal/models"
	"github.com/canaville/resort-booking-backend/pkg/mpesa"
	"github.com/canaville/resort-booking-backend/pkg/validator"
	"github.com/sirupsen/logrus"
)

// ErrPaymentGateway is the generic failure surfaced when the payment
// provider cannot be reached or rejects a request.
var ErrPaymentGateway = errors.New("payment request failed, please try again")

// darajaClient is the slice of the M-Pesa client the payment service uses
type darajaClient interface {
	AccessToken(ctx context.Context) (string, error)
	STKPush(ctx context.Context, token, phone string, amount int64) (*mpesa.STKPushResponse, error)
}

// transactionStore persists payment results
type transactionStore interface {
	Create(txn *models.Transaction) error
}

// PaymentService drives STK push payments and records their callbacks
type PaymentService struct {
	client darajaClient
	repo   transactionStore
	phones *validator.PhoneValidator
	logger *logrus.Logger
}

// NewPaymentService creates a new PaymentService
func NewPaymentService(client darajaClient, repo transactionStore, phones *validator.PhoneValidator, logger *logrus.Logger) *PaymentService {
	return &PaymentService{
		client: client,
		repo:   repo,
		phones: phones,
		logger: logger,
	}
}

// Initiate validates the request, obtains a fresh gateway token, and sends
// an STK push to the customer's phone. The push is fire-and-forget: the
// final payment result arrives later on the callback endpoint.
func (s *PaymentService) Initiate(ctx context.Context, req *models.InitiatePaymentRequest) (*mpesa.STKPushResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, &models.ValidationError{Fields: map[string]string{"payment": err.Error()}}
	}

	phone, err := s.phones.Normalize254(req.Phone)
	if err != nil {
		return nil, &models.ValidationError{Fields: map[string]string{"phone": err.Error()}}
	}

	token, err := s.client.AccessToken(ctx)
	if err != nil {
		s.logger.WithError(err).Error("Failed to obtain M-Pesa access token")
		return nil, ErrPaymentGateway
	}

	resp, err := s.client.STKPush(ctx, token, phone, req.Amount)
	if err != nil {
		s.logger.WithError(err).WithFields(logrus.Fields{
			"phone":  phone,
			"amount": req.Amount,
		}).Error("STK push failed")
		return nil, ErrPaymentGateway
	}

	s.logger.WithFields(logrus.Fields{
		"merchant_request_id": resp.MerchantRequestID,
		"checkout_request_id": resp.CheckoutRequestID,
	}).Info("STK push sent")
	return resp, nil
}

// RecordCallback folds a gateway callback into a transaction record and
// persists it. Failed payments are recorded with their failure reason.
func (s *PaymentService) RecordCallback(callback *models.STKCallback) (*models.Transaction, error) {
	var txn *models.Transaction
	if callback.Succeeded() {
		folded, err := models.TransactionFromCallback(callback)
		if err != nil {
			return nil, fmt.Errorf("invalid payment callback: %w", err)
		}
		txn = folded
	} else {
		txn = models.FailedTransaction(callback)
	}

	if err := s.repo.Create(txn); err != nil {
		s.logger.WithError(err).WithField("merchant_request_id", txn.MerchantRequestID).
			Error("Failed to record payment transaction")
		return nil, fmt.Errorf("failed to record transaction: %w", err)
	}

	s.logger.WithFields(logrus.Fields{
		"merchant_request_id": txn.MerchantRequestID,
		"status":              txn.Status,
	}).Info("Payment callback recorded")
	return txn, nil
}
