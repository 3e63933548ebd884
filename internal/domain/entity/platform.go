// Package entity defines the financial records held by the client.
package entity

// PlatformType represents the kind of institution behind a platform.
type PlatformType string

const (
	PlatformTypeBank          PlatformType = "bank"
	PlatformTypeDigitalWallet PlatformType = "digital_wallet"
	PlatformTypeInvestment    PlatformType = "investment"
	PlatformTypeCrypto        PlatformType = "crypto"
)

// Platform represents a banking platform that accounts are held on.
// Accounts reference platforms; they never own them.
type Platform struct {
	ID      int64
	Name    string
	Type    PlatformType
	LogoURL string
	Active  bool
}

// Identity returns the platform ID.
func (p Platform) Identity() int64 {
	return p.ID
}

// PlatformDraft holds the creatable fields of a platform.
type PlatformDraft struct {
	Name    string
	Type    PlatformType
	LogoURL string
}
