package database

import (
	"fmt"
	"time"

	"github.com/canaville/resort-booking-backend/internal/models"
	"github.com/google/uuid"
)

// TransactionRepository handles database operations for the transactions table
type TransactionRepository struct {
	db DB
}

// NewTransactionRepository creates a new TransactionRepository
func NewTransactionRepository(db DB) *TransactionRepository {
	return &TransactionRepository{db: db}
}

// Create persists a payment transaction record
func (r *TransactionRepository) Create(txn *models.Transaction) error {
	if txn.ID == "" {
		txn.ID = uuid.New().String()
	}
	if txn.CreatedAt.IsZero() {
		txn.CreatedAt = time.Now().UTC()
	}

	query := `
		INSERT INTO transactions (
			id, transaction_id, phone, amount, merchant_request_id,
			status, failure_reason, transaction_date, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	_, err := r.db.Exec(query,
		txn.ID, txn.TransactionID, txn.Phone, txn.Amount, txn.MerchantRequestID,
		txn.Status, txn.FailureReason, txn.TransactionDate, txn.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create transaction: %w", err)
	}
	return nil
}

// List retrieves all payment transactions, newest first
func (r *TransactionRepository) List() ([]models.Transaction, error) {
	query := `
		SELECT id, transaction_id, phone, amount, merchant_request_id,
			   status, failure_reason, transaction_date, created_at
		FROM transactions
		ORDER BY created_at DESC
	`

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	defer rows.Close()

	var transactions []models.Transaction
	for rows.Next() {
		var txn models.Transaction
		if err := rows.Scan(
			&txn.ID, &txn.TransactionID, &txn.Phone, &txn.Amount, &txn.MerchantRequestID,
			&txn.Status, &txn.FailureReason, &txn.TransactionDate, &txn.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan transaction: %w", err)
		}
		transactions = append(transactions, txn)
	}
	return transactions, rows.Err()
}
