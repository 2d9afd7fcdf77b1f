package models

import (
	"strings"
	"time"
)

type WalletType int16

const (
	WalletTypeUSD  WalletType = 1
	WalletTypeEUR  WalletType = 2
	WalletTypeGold WalletType = 3
)

// DefaultWalletTypes are provisioned for every new account.
var DefaultWalletTypes = []WalletType{WalletTypeUSD, WalletTypeEUR, WalletTypeGold}

func (t WalletType) String() string {
	switch t {
	case WalletTypeUSD:
		return "usd"
	case WalletTypeEUR:
		return "eur"
	case WalletTypeGold:
		return "gold"
	default:
		return "unknown"
	}
}

func (t WalletType) Valid() bool {
	return t >= WalletTypeUSD && t <= WalletTypeGold
}

// ParseWalletType accepts the names produced by String, case-insensitively.
func ParseWalletType(s string) (WalletType, bool) {
	for _, t := range DefaultWalletTypes {
		if strings.EqualFold(s, t.String()) {
			return t, true
		}
	}
	return 0, false
}

// Wallet balance is kept as the decimal text the ledger hands back; nothing
// here does arithmetic on it.
type Wallet struct {
	ID         int64
	UserID     int64
	Type       WalletType
	Identifier int64
	Balance    string
	CreatedAt  time.Time
}
