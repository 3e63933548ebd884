package persistence

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/finance-tracker/client/internal/application/adapter"
	"github.com/finance-tracker/client/internal/domain/entity"
	domainerror "github.com/finance-tracker/client/internal/domain/error"
	"github.com/finance-tracker/client/internal/integration/persistence/model"
)

// transactionRepository implements the adapter.TransactionRepository interface.
type transactionRepository struct {
	db *gorm.DB
}

// NewTransactionRepository creates a new transaction repository instance.
func NewTransactionRepository(db *gorm.DB) adapter.TransactionRepository {
	return &transactionRepository{
		db: db,
	}
}

// CreateAndApply stores the transaction and moves the account balance by its
// effect in a single database transaction.
func (r *transactionRepository) CreateAndApply(ctx context.Context, userID int64, transaction *entity.Transaction) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var account model.AccountModel
		result := tx.Where("id = ? AND user_id = ?", transaction.AccountID, userID).First(&account)
		if result.Error != nil {
			if errors.Is(result.Error, gorm.ErrRecordNotFound) {
				return domainerror.ErrAccountNotFound
			}
			return result.Error
		}

		transactionModel := model.TransactionFromEntity(userID, transaction)
		if err := tx.Create(transactionModel).Error; err != nil {
			return err
		}

		balance := account.CurrentBalance.Add(entity.BalanceEffect(transaction.Type, transaction.Amount))
		err := tx.Model(&model.AccountModel{}).
			Where("id = ?", account.ID).
			Updates(map[string]interface{}{
				"current_balance": balance,
				"last_updated":    time.Now().UTC(),
			}).Error
		if err != nil {
			return err
		}

		transaction.ID = transactionModel.ID
		return nil
	})
}

// FindRecent retrieves the user's transactions, newest first.
func (r *transactionRepository) FindRecent(ctx context.Context, userID int64, limit int) ([]entity.Transaction, error) {
	var transactionModels []model.TransactionModel
	query := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("transaction_date DESC, id DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}

	if result := query.Find(&transactionModels); result.Error != nil {
		return nil, result.Error
	}

	transactions := make([]entity.Transaction, len(transactionModels))
	for i := range transactionModels {
		transactions[i] = *transactionModels[i].ToEntity()
	}
	return transactions, nil
}
