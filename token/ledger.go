// Package token implements the multi-asset custody ledger shared by all
// engines. Balances are keyed by (asset, holder); outbound movement is
// authorized by an Authority credential; assets may carry a
// fee-on-transfer rate, so Transfer returns the amount actually
// credited and callers that require exactness verify balance deltas.
package token

import (
	"github.com/snrg-network/gsnrg/common"
	"github.com/snrg-network/gsnrg/common/math"
	"github.com/snrg-network/gsnrg/core/state"
)

// Configure records the SNRG asset identity and the administrative
// addresses, and arms the transfer restriction. Runs once at genesis.
func Configure(db state.StateDB, asset, treasury, admin common.Address) error {
	if asset.IsZero() || treasury.IsZero() || admin.IsZero() {
		return ErrZeroAddress
	}
	if !getSNRGAsset(db).IsZero() {
		return ErrAlreadyConfigured
	}
	setSNRGAsset(db, asset)
	setTreasury(db, treasury)
	setAdmin(db, admin)
	setRestricted(db, true)
	return nil
}

// Mint creates amount units of asset in to's custody slot. Only genesis
// and test fixtures call this; no operation kind is routed here.
func Mint(db state.StateDB, asset, to common.Address, amount uint64) error {
	if amount == 0 {
		return ErrZeroAmount
	}
	if to.IsZero() {
		return ErrZeroAddress
	}
	supply, err := math.CheckedAdd(getTotalSupply(db, asset), amount)
	if err != nil {
		return err
	}
	setTotalSupply(db, asset, supply)
	if err := creditBalance(db, asset, to, amount); err != nil {
		return err
	}
	db.AddEvent(EventMinted{Asset: asset, To: to, Amount: amount})
	return nil
}

// Burn destroys amount units of asset held by from, reducing total
// supply. The authority rules match Transfer.
func Burn(db state.StateDB, asset common.Address, auth Authority, from common.Address, amount uint64) error {
	if amount == 0 {
		return ErrZeroAmount
	}
	if err := spendAuthority(db, asset, auth, from, amount); err != nil {
		return err
	}
	balance := getBalance(db, asset, from)
	if balance < amount {
		return ErrInsufficientBalance
	}
	supply, err := math.CheckedSub(getTotalSupply(db, asset), amount)
	if err != nil {
		return err
	}
	setBalance(db, asset, from, balance-amount)
	setTotalSupply(db, asset, supply)
	db.AddEvent(EventBurned{Asset: asset, From: from, Amount: amount})
	return nil
}

// Transfer moves amount units of asset from one custody slot to
// another and returns the amount actually credited to the recipient,
// which is less than amount when the asset carries a transfer fee.
// Outbound authorization follows auth: an owner authority must equal
// from; a pool authority may also spend an allowance from delegated to
// the pool, which is consumed by the transfer.
func Transfer(db state.StateDB, asset common.Address, auth Authority, from, to common.Address, amount uint64) (uint64, error) {
	if amount == 0 {
		return 0, ErrZeroAmount
	}
	if to.IsZero() {
		return 0, ErrZeroAddress
	}
	if err := spendAuthority(db, asset, auth, from, amount); err != nil {
		return 0, err
	}
	if err := checkRestriction(db, asset, auth, from, to); err != nil {
		return 0, err
	}
	balance := getBalance(db, asset, from)
	if balance < amount {
		return 0, ErrInsufficientBalance
	}

	credited := amount
	var fee uint64
	if bps := getTransferFeeBps(db, asset); bps > 0 {
		var err error
		fee, err = math.BpsOf(amount, bps)
		if err != nil {
			return 0, err
		}
		credited = amount - fee
	}

	setBalance(db, asset, from, balance-amount)
	if fee > 0 {
		if err := creditBalance(db, asset, getFeeCollector(db, asset), fee); err != nil {
			return 0, err
		}
	}
	if err := creditBalance(db, asset, to, credited); err != nil {
		return 0, err
	}
	db.AddEvent(EventTransfer{Asset: asset, From: from, To: to, Amount: credited, Fee: fee})
	return credited, nil
}

// Approve sets the allowance of spender over owner's asset balance to
// amount. Zero revokes.
func Approve(db state.StateDB, asset, owner, spender common.Address, amount uint64) error {
	if spender.IsZero() {
		return ErrZeroAddress
	}
	setAllowance(db, asset, owner, spender, amount)
	db.AddEvent(EventApproval{Asset: asset, Owner: owner, Spender: spender, Amount: amount})
	return nil
}

// spendAuthority checks that auth may debit from's slot and consumes
// the delegated allowance when the debit rides on one.
func spendAuthority(db state.StateDB, asset common.Address, auth Authority, from common.Address, amount uint64) error {
	if from == auth.Holder() {
		return nil
	}
	if !auth.system() {
		return ErrUnauthorized
	}
	spender := auth.Holder()
	allowed := getAllowance(db, asset, from, spender)
	if allowed < amount {
		return ErrInsufficientAllowance
	}
	setAllowance(db, asset, from, spender, allowed-amount)
	return nil
}

func creditBalance(db state.StateDB, asset, holder common.Address, delta uint64) error {
	next, err := math.CheckedAdd(getBalance(db, asset, holder), delta)
	if err != nil {
		return err
	}
	setBalance(db, asset, holder, next)
	return nil
}

// --- views ---

// BalanceOf returns holder's balance of asset.
func BalanceOf(db state.StateDB, asset, holder common.Address) uint64 {
	return getBalance(db, asset, holder)
}

// Allowance returns the remaining allowance of spender over owner's
// asset balance.
func Allowance(db state.StateDB, asset, owner, spender common.Address) uint64 {
	return getAllowance(db, asset, owner, spender)
}

// TotalSupply returns the total minted supply of asset.
func TotalSupply(db state.StateDB, asset common.Address) uint64 {
	return getTotalSupply(db, asset)
}

// SNRGAsset returns the configured SNRG asset identity, zero before
// Configure.
func SNRGAsset(db state.StateDB) common.Address {
	return getSNRGAsset(db)
}

// Treasury returns the configured treasury address.
func Treasury(db state.StateDB) common.Address {
	return getTreasury(db)
}

// Admin returns the ledger admin address.
func Admin(db state.StateDB) common.Address {
	return getAdmin(db)
}

// TransferFee returns the fee rate and collector configured for asset.
func TransferFee(db state.StateDB, asset common.Address) (bps uint64, collector common.Address) {
	return getTransferFeeBps(db, asset), getFeeCollector(db, asset)
}
