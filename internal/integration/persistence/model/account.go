package model

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/finance-tracker/client/internal/domain/entity"
)

// AccountModel represents the accounts table in the database.
type AccountModel struct {
	ID             int64           `gorm:"primaryKey;autoIncrement"`
	UserID         int64           `gorm:"not null;index"`
	PlatformID     int64           `gorm:"not null;index"`
	AccountName    string          `gorm:"type:varchar(100);not null"`
	AccountType    string          `gorm:"type:varchar(20);not null"`
	AccountNumber  string          `gorm:"type:varchar(50)"`
	CurrentBalance decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	Currency       string          `gorm:"type:varchar(3);not null;default:'USD'"`
	IsActive       bool            `gorm:"not null;default:true"`
	CreatedAt      time.Time       `gorm:"not null"`
	LastUpdated    time.Time       `gorm:"not null"`

	// Relationships (not loaded by default, use Preload)
	Platform *PlatformModel `gorm:"foreignKey:PlatformID;references:ID"`
}

// TableName returns the table name for the AccountModel.
func (AccountModel) TableName() string {
	return "accounts"
}

// ToEntity converts an AccountModel to a domain Account entity.
func (m *AccountModel) ToEntity() *entity.Account {
	account := &entity.Account{
		ID:          m.ID,
		Name:        m.AccountName,
		Type:        entity.AccountType(m.AccountType),
		Number:      m.AccountNumber,
		Currency:    m.Currency,
		PlatformID:  m.PlatformID,
		Balance:     m.CurrentBalance,
		Active:      m.IsActive,
		CreatedAt:   m.CreatedAt,
		LastUpdated: m.LastUpdated,
	}
	if m.Platform != nil {
		account.Platform = m.Platform.ToEntity()
	}
	return account
}

// AccountFromEntity creates an AccountModel from a domain Account entity.
func AccountFromEntity(userID int64, account *entity.Account) *AccountModel {
	return &AccountModel{
		ID:             account.ID,
		UserID:         userID,
		PlatformID:     account.PlatformID,
		AccountName:    account.Name,
		AccountType:    string(account.Type),
		AccountNumber:  account.Number,
		CurrentBalance: account.Balance,
		Currency:       account.Currency,
		IsActive:       account.Active,
		CreatedAt:      account.CreatedAt,
		LastUpdated:    account.LastUpdated,
	}
}
