package persistence

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/finance-tracker/client/internal/domain/entity"
	"github.com/finance-tracker/client/internal/integration/persistence/model"
)

// DefaultPlatforms are the platforms a fresh ledger starts with.
var DefaultPlatforms = []entity.Platform{
	{Name: "Bank of America", Type: entity.PlatformTypeBank, LogoURL: "/logos/boa.png"},
	{Name: "Chase", Type: entity.PlatformTypeBank, LogoURL: "/logos/chase.png"},
	{Name: "Wells Fargo", Type: entity.PlatformTypeBank, LogoURL: "/logos/wells.png"},
	{Name: "Citibank", Type: entity.PlatformTypeBank, LogoURL: "/logos/citi.png"},
	{Name: "HSBC", Type: entity.PlatformTypeBank, LogoURL: "/logos/hsbc.png"},
	{Name: "PayPal", Type: entity.PlatformTypeDigitalWallet, LogoURL: "/logos/paypal.png"},
	{Name: "Venmo", Type: entity.PlatformTypeDigitalWallet, LogoURL: "/logos/venmo.png"},
	{Name: "Cash App", Type: entity.PlatformTypeDigitalWallet, LogoURL: "/logos/cashapp.png"},
	{Name: "Apple Pay", Type: entity.PlatformTypeDigitalWallet, LogoURL: "/logos/applepay.png"},
	{Name: "Google Pay", Type: entity.PlatformTypeDigitalWallet, LogoURL: "/logos/googlepay.png"},
	{Name: "Fidelity", Type: entity.PlatformTypeInvestment, LogoURL: "/logos/fidelity.png"},
	{Name: "Charles Schwab", Type: entity.PlatformTypeInvestment, LogoURL: "/logos/schwab.png"},
	{Name: "E*TRADE", Type: entity.PlatformTypeInvestment, LogoURL: "/logos/etrade.png"},
	{Name: "Robinhood", Type: entity.PlatformTypeInvestment, LogoURL: "/logos/robinhood.png"},
	{Name: "TD Ameritrade", Type: entity.PlatformTypeInvestment, LogoURL: "/logos/tdameritrade.png"},
	{Name: "Coinbase", Type: entity.PlatformTypeCrypto, LogoURL: "/logos/coinbase.png"},
	{Name: "Binance", Type: entity.PlatformTypeCrypto, LogoURL: "/logos/binance.png"},
	{Name: "Kraken", Type: entity.PlatformTypeCrypto, LogoURL: "/logos/kraken.png"},
	{Name: "Gemini", Type: entity.PlatformTypeCrypto, LogoURL: "/logos/gemini.png"},
}

// SeedPlatforms inserts DefaultPlatforms when the platforms table is empty.
// It returns how many platforms were inserted.
func SeedPlatforms(ctx context.Context, db *gorm.DB) (int, error) {
	var count int64
	if err := db.WithContext(ctx).Model(&model.PlatformModel{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count platforms: %w", err)
	}
	if count > 0 {
		return 0, nil
	}

	now := time.Now().UTC()
	models := make([]*model.PlatformModel, len(DefaultPlatforms))
	for i := range DefaultPlatforms {
		platform := DefaultPlatforms[i]
		platform.Active = true
		models[i] = model.PlatformFromEntity(&platform)
		models[i].CreatedAt = now
	}

	if err := db.WithContext(ctx).Create(models).Error; err != nil {
		return 0, fmt.Errorf("failed to seed platforms: %w", err)
	}
	return len(models), nil
}
