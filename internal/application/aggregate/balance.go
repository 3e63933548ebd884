package aggregate

import (
	"github.com/shopspring/decimal"

	"github.com/finance-tracker/client/internal/domain/entity"
)

// UnknownPlatformName is the group name for accounts whose platform cannot
// be resolved.
const UnknownPlatformName = "Unknown"

// TotalBalance sums the balances of all accounts. It is zero for no accounts.
func TotalBalance(accounts []entity.Account) decimal.Decimal {
	total := decimal.Zero
	for _, a := range accounts {
		total = total.Add(a.Balance)
	}
	return total
}

// GroupByPlatform partitions accounts by their platform's display name.
// Groups are ordered by first appearance in accounts.
//
// The key is the name, not the platform ID: two distinct platforms with the
// same name end up in one group, which carries the first platform seen.
// The platform is taken from the account when the service embedded it,
// otherwise looked up in platforms by PlatformID.
func GroupByPlatform(accounts []entity.Account, platforms []entity.Platform) []entity.PlatformGroup {
	byID := make(map[int64]entity.Platform, len(platforms))
	for _, p := range platforms {
		byID[p.ID] = p
	}

	var groups []entity.PlatformGroup
	index := make(map[string]int)

	for _, account := range accounts {
		platform := resolvePlatform(account, byID)

		i, ok := index[platform.Name]
		if !ok {
			i = len(groups)
			index[platform.Name] = i
			groups = append(groups, entity.PlatformGroup{
				Platform:     platform,
				TotalBalance: decimal.Zero,
			})
		}

		groups[i].Accounts = append(groups[i].Accounts, account)
		groups[i].TotalBalance = groups[i].TotalBalance.Add(account.Balance)
	}

	return groups
}

func resolvePlatform(account entity.Account, byID map[int64]entity.Platform) entity.Platform {
	if account.Platform != nil {
		return *account.Platform
	}
	if p, ok := byID[account.PlatformID]; ok {
		return p
	}
	return entity.Platform{ID: account.PlatformID, Name: UnknownPlatformName}
}
