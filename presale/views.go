package presale

import (
	"github.com/snrg-network/gsnrg/common"
	"github.com/snrg-network/gsnrg/core/state"
	"github.com/snrg-network/gsnrg/params"
)

// Info returns the gate configuration.
func Info(db state.StateDB) SaleInfo {
	return SaleInfo{
		Admin:       getAdmin(db),
		Signer:      getSigner(db),
		Treasury:    getTreasury(db),
		IsOpen:      getOpen(db),
		Paused:      getPaused(db),
		MaxPurchase: getMaxPurchase(db),
		MinPurchase: params.MinPurchaseAmount,
	}
}

// PaymentAssets returns the token allow-list in list order. The native
// asset is always accepted and not part of the list.
func PaymentAssets(db state.StateDB) []common.Address {
	count := getAssetCount(db)
	assets := make([]common.Address, 0, count)
	for i := uint64(0); i < count; i++ {
		assets = append(assets, getAssetAt(db, i))
	}
	return assets
}

// IsPaymentAssetSupported reports whether asset can pay for a purchase.
func IsPaymentAssetSupported(db state.StateDB, asset common.Address) bool {
	if asset == params.NativeAsset {
		return true
	}
	return getAssetListed(db, asset)
}

// RemainingPurchasesToday returns how many purchases buyer can still make in
// the current daily window. A window that has already lapsed counts as a
// fresh one.
func RemainingPurchasesToday(db state.StateDB, buyer common.Address, now int64) uint64 {
	if now >= getDailyResetTime(db, buyer)+params.SecondsPerDay {
		return params.MaxPurchasesPerDay
	}
	count := getPurchaseCountToday(db, buyer)
	if count >= params.MaxPurchasesPerDay {
		return 0
	}
	return params.MaxPurchasesPerDay - count
}

// IsNonceUsed reports whether a nonce has been consumed.
func IsNonceUsed(db state.StateDB, nonce uint64) bool {
	return getNonceUsed(db, nonce)
}
