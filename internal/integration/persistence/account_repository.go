package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/finance-tracker/client/internal/application/adapter"
	"github.com/finance-tracker/client/internal/domain/entity"
	domainerror "github.com/finance-tracker/client/internal/domain/error"
	"github.com/finance-tracker/client/internal/integration/persistence/model"
)

// accountRepository implements the adapter.AccountRepository interface.
type accountRepository struct {
	db *gorm.DB
}

// NewAccountRepository creates a new account repository instance.
func NewAccountRepository(db *gorm.DB) adapter.AccountRepository {
	return &accountRepository{
		db: db,
	}
}

// Create creates a new account in the database.
func (r *accountRepository) Create(ctx context.Context, userID int64, account *entity.Account) error {
	accountModel := model.AccountFromEntity(userID, account)
	result := r.db.WithContext(ctx).Create(accountModel)
	if result.Error != nil {
		return result.Error
	}
	account.ID = accountModel.ID
	return nil
}

// FindByID retrieves an account with its platform.
func (r *accountRepository) FindByID(ctx context.Context, userID, id int64) (*entity.Account, error) {
	var accountModel model.AccountModel
	result := r.db.WithContext(ctx).
		Preload("Platform").
		Where("id = ? AND user_id = ?", id, userID).
		First(&accountModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrAccountNotFound
		}
		return nil, result.Error
	}
	return accountModel.ToEntity(), nil
}

// FindActive retrieves the user's active accounts with their platforms.
func (r *accountRepository) FindActive(ctx context.Context, userID int64) ([]entity.Account, error) {
	var accountModels []model.AccountModel
	result := r.db.WithContext(ctx).
		Preload("Platform").
		Where("user_id = ? AND is_active = ?", userID, true).
		Order("id ASC").
		Find(&accountModels)
	if result.Error != nil {
		return nil, result.Error
	}

	accounts := make([]entity.Account, len(accountModels))
	for i := range accountModels {
		accounts[i] = *accountModels[i].ToEntity()
	}
	return accounts, nil
}

// UpdateBalance sets an account's balance to an absolute value.
func (r *accountRepository) UpdateBalance(ctx context.Context, userID, id int64, balance decimal.Decimal) error {
	result := r.db.WithContext(ctx).
		Model(&model.AccountModel{}).
		Where("id = ? AND user_id = ?", id, userID).
		Updates(map[string]interface{}{
			"current_balance": balance,
			"last_updated":    time.Now().UTC(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrAccountNotFound
	}
	return nil
}

// Delete removes an account together with its transactions.
func (r *accountRepository) Delete(ctx context.Context, userID, id int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Where("id = ? AND user_id = ?", id, userID).Delete(&model.AccountModel{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return domainerror.ErrAccountNotFound
		}

		return tx.Where("account_id = ?", id).Delete(&model.TransactionModel{}).Error
	})
}
