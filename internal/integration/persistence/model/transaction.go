package model

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/finance-tracker/client/internal/domain/entity"
)

// TransactionModel represents the transactions table in the database.
type TransactionModel struct {
	ID              int64           `gorm:"primaryKey;autoIncrement"`
	UserID          int64           `gorm:"not null;index"`
	AccountID       int64           `gorm:"not null;index"`
	TransactionType string          `gorm:"type:varchar(10);not null;index"`
	Category        string          `gorm:"type:varchar(50);not null"`
	Amount          decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	Description     string          `gorm:"type:varchar(255)"`
	TransactionDate time.Time       `gorm:"not null;index"`
	CreatedAt       time.Time       `gorm:"not null"`
}

// TableName returns the table name for the TransactionModel.
func (TransactionModel) TableName() string {
	return "transactions"
}

// ToEntity converts a TransactionModel to a domain Transaction entity.
func (m *TransactionModel) ToEntity() *entity.Transaction {
	return &entity.Transaction{
		ID:          m.ID,
		AccountID:   m.AccountID,
		Type:        entity.TransactionType(m.TransactionType),
		Category:    m.Category,
		Amount:      m.Amount,
		Description: m.Description,
		OccurredAt:  m.TransactionDate,
		CreatedAt:   m.CreatedAt,
	}
}

// TransactionFromEntity creates a TransactionModel from a domain Transaction entity.
func TransactionFromEntity(userID int64, transaction *entity.Transaction) *TransactionModel {
	return &TransactionModel{
		ID:              transaction.ID,
		UserID:          userID,
		AccountID:       transaction.AccountID,
		TransactionType: string(transaction.Type),
		Category:        transaction.Category,
		Amount:          transaction.Amount,
		Description:     transaction.Description,
		TransactionDate: transaction.OccurredAt,
		CreatedAt:       transaction.CreatedAt,
	}
}
