// Package presale implements the purchase gate: signed off-chain purchase
// orders redeemed on-chain against the sale inventory pool. Every order is
// bound to one buyer, one nonce, and one deployment, checked against the
// configured signer key before any asset moves.
package presale

import (
	"github.com/snrg-network/gsnrg/common"
	"github.com/snrg-network/gsnrg/core/state"
	"github.com/snrg-network/gsnrg/params"
	"github.com/snrg-network/gsnrg/token"
)

// Initialize configures the purchase gate. The signer key and the treasury
// must be set from the start, the sale opens closed and the per-purchase
// ceiling starts at the protocol default.
func Initialize(db state.StateDB, admin, signer, treasury common.Address) error {
	if getAdmin(db) != (common.Address{}) {
		return ErrAlreadyInitialized
	}
	if admin == (common.Address{}) || signer == (common.Address{}) || treasury == (common.Address{}) {
		return ErrZeroAddress
	}
	setAdmin(db, admin)
	setSigner(db, signer)
	setTreasury(db, treasury)
	setMaxPurchase(db, params.DefaultMaxPurchaseAmount)
	db.AddEvent(EventInitialized{Admin: admin, Signer: signer, Treasury: treasury})
	return nil
}

// SetSigner rotates the order-signing key.
func SetSigner(db state.StateDB, from, signer common.Address) error {
	if err := requireAdmin(db, from); err != nil {
		return err
	}
	if signer == (common.Address{}) {
		return ErrZeroAddress
	}
	setSigner(db, signer)
	db.AddEvent(EventSignerSet{Signer: signer})
	return nil
}

// SetOpen opens or closes the sale.
func SetOpen(db state.StateDB, from common.Address, open bool) error {
	if err := requireAdmin(db, from); err != nil {
		return err
	}
	if getOpen(db) == open {
		return ErrSameState
	}
	setOpen(db, open)
	db.AddEvent(EventOpenSet{Open: open})
	return nil
}

// SetMaxPurchase adjusts the per-purchase ceiling. The ceiling can never be
// pushed below the protocol minimum, which would make every order invalid.
func SetMaxPurchase(db state.StateDB, from common.Address, amount uint64) error {
	if err := requireAdmin(db, from); err != nil {
		return err
	}
	if amount < params.MinPurchaseAmount {
		return ErrBelowMinimum
	}
	setMaxPurchase(db, amount)
	db.AddEvent(EventMaxPurchaseSet{Amount: amount})
	return nil
}

// AddPaymentAsset lists a token asset as acceptable payment. The sale asset
// itself can never be listed, and the list is bounded.
func AddPaymentAsset(db state.StateDB, from, asset common.Address) error {
	if err := requireAdmin(db, from); err != nil {
		return err
	}
	if asset == (common.Address{}) {
		return ErrZeroAddress
	}
	if asset == token.SNRGAsset(db) {
		return ErrInvalidPaymentAsset
	}
	if getAssetListed(db, asset) {
		return ErrAssetAlreadyListed
	}
	count := getAssetCount(db)
	if count >= params.MaxPaymentAssets {
		return ErrAssetListFull
	}
	setAssetAt(db, count, asset)
	setAssetCount(db, count+1)
	setAssetListed(db, asset, true)
	db.AddEvent(EventPaymentAssetAdded{Asset: asset})
	return nil
}

// RemovePaymentAsset delists a payment asset. The last list entry is swapped
// into the vacated index so the list stays dense.
func RemovePaymentAsset(db state.StateDB, from, asset common.Address) error {
	if err := requireAdmin(db, from); err != nil {
		return err
	}
	if !getAssetListed(db, asset) {
		return ErrAssetNotListed
	}
	count := getAssetCount(db)
	for i := uint64(0); i < count; i++ {
		if getAssetAt(db, i) != asset {
			continue
		}
		last := count - 1
		if i != last {
			setAssetAt(db, i, getAssetAt(db, last))
		}
		setAssetAt(db, last, common.Address{})
		setAssetCount(db, last)
		break
	}
	setAssetListed(db, asset, false)
	db.AddEvent(EventPaymentAssetRemoved{Asset: asset})
	return nil
}

// Purchase redeems a signed purchase order. The order is validated in full,
// the nonce and signature are checked, and only then do the payment and
// delivery legs run. Rate-limit state is persisted together with the nonce at
// the end, so a rejected order never consumes quota.
func Purchase(db state.StateDB, buyer, paymentAsset common.Address, paymentAmount, snrgAmount, nonce uint64, deadline int64, sig []byte, now int64) error {
	if getAdmin(db) == (common.Address{}) {
		return ErrNotInitialized
	}
	if !getOpen(db) {
		return ErrClosed
	}
	if getPaused(db) {
		return ErrPaused
	}
	if paymentAmount == 0 || snrgAmount == 0 {
		return ErrZeroAmount
	}
	if now > deadline {
		return ErrDeadlineExpired
	}
	if paymentAsset != params.NativeAsset && !getAssetListed(db, paymentAsset) {
		return ErrAssetNotSupported
	}
	if snrgAmount < params.MinPurchaseAmount {
		return ErrBelowMinimum
	}
	if snrgAmount > getMaxPurchase(db) {
		return ErrAboveMaximum
	}

	// Rate-limit window. Computed now, persisted only after both transfer
	// legs succeed.
	last := getLastPurchaseTime(db, buyer)
	if last != 0 && now < last+params.PurchaseCooldownSeconds {
		return ErrCooldownActive
	}
	count := getPurchaseCountToday(db, buyer)
	resetAt := getDailyResetTime(db, buyer)
	if now >= resetAt+params.SecondsPerDay {
		count = 0
		resetAt = now
	}
	if count >= params.MaxPurchasesPerDay {
		return ErrDailyLimitReached
	}

	// Replay protection and order authentication. Nothing moves before both
	// pass.
	if getNonceUsed(db, nonce) {
		return ErrNonceUsed
	}
	digest := OrderDigest(buyer, paymentAsset, paymentAmount, snrgAmount, nonce, deadline)
	signer, err := RecoverOrderSigner(digest, sig)
	if err != nil {
		return err
	}
	if signer != getSigner(db) {
		return ErrBadSigner
	}

	// Payment leg. The treasury must receive the full payment amount; a
	// fee-on-transfer asset that shaves the delta rejects the order.
	treasury := getTreasury(db)
	treasuryBefore := token.BalanceOf(db, paymentAsset, treasury)
	if _, err := token.Transfer(db, paymentAsset, token.OwnerAuthority(buyer), buyer, treasury, paymentAmount); err != nil {
		return err
	}
	if token.BalanceOf(db, paymentAsset, treasury)-treasuryBefore < paymentAmount {
		return ErrUnderpaidTreasury
	}

	// Delivery leg from the sale inventory pool, exact to the base unit.
	snrg := token.SNRGAsset(db)
	buyerBefore := token.BalanceOf(db, snrg, buyer)
	if _, err := token.Transfer(db, snrg, token.SystemAuthority(params.PresaleAddress), params.PresaleAddress, buyer, snrgAmount); err != nil {
		return err
	}
	if token.BalanceOf(db, snrg, buyer)-buyerBefore != snrgAmount {
		return ErrInexactDelivery
	}

	setNonceUsed(db, nonce)
	setLastPurchaseTime(db, buyer, now)
	setPurchaseCountToday(db, buyer, count+1)
	setDailyResetTime(db, buyer, resetAt)
	db.AddEvent(EventPurchased{
		Buyer:         buyer,
		PaymentAsset:  paymentAsset,
		PaymentAmount: paymentAmount,
		SnrgAmount:    snrgAmount,
		Nonce:         nonce,
	})
	return nil
}

// Pause halts purchases. Admin configuration stays available so the gate can
// be repaired and unpaused.
func Pause(db state.StateDB, from common.Address) error {
	return setPauseState(db, from, true)
}

// Unpause resumes purchases.
func Unpause(db state.StateDB, from common.Address) error {
	return setPauseState(db, from, false)
}

func setPauseState(db state.StateDB, from common.Address, paused bool) error {
	if err := requireAdmin(db, from); err != nil {
		return err
	}
	if getPaused(db) == paused {
		return ErrSameState
	}
	setPaused(db, paused)
	db.AddEvent(EventPauseSet{Paused: paused})
	return nil
}

func requireAdmin(db state.StateDB, from common.Address) error {
	admin := getAdmin(db)
	if admin == (common.Address{}) {
		return ErrNotInitialized
	}
	if from != admin {
		return ErrUnauthorized
	}
	return nil
}
