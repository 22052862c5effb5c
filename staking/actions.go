// Package staking implements the reserve ledger: a custody pool that
// tracks funded rewards against promised obligations and refuses any
// stake the reserve cannot cover. Rewards are promised up front from a
// fixed duration/rate table and paid only at maturity; leaving early
// forfeits the reward without touching the reserve.
package staking

import (
	"github.com/snrg-network/gsnrg/common"
	"github.com/snrg-network/gsnrg/common/math"
	"github.com/snrg-network/gsnrg/core/state"
	"github.com/snrg-network/gsnrg/params"
	"github.com/snrg-network/gsnrg/token"
)

// Initialize creates the reserve ledger pool and persists the reward
// rate table. Runs once; duration lookups at stake time read the
// persisted table, not the params defaults.
func Initialize(db state.StateDB, admin, treasury common.Address) error {
	if admin.IsZero() || treasury.IsZero() {
		return ErrZeroAddress
	}
	if !getAdmin(db).IsZero() {
		return ErrAlreadyInitialized
	}
	setAdmin(db, admin)
	setTreasury(db, treasury)
	for _, days := range params.StakingDurationsDays {
		setRateBps(db, days, params.StakingRateBps[days])
	}
	db.AddEvent(EventInitialized{Admin: admin, Treasury: treasury})
	return nil
}

// FundReserve performs the one-time funding transition. The reserve
// grows by the amount actually received, measured by custody balance
// delta, so a fee-skimming asset cannot inflate it.
func FundReserve(db state.StateDB, from common.Address, amount uint64) error {
	admin := getAdmin(db)
	if admin.IsZero() {
		return ErrNotInitialized
	}
	if from != admin {
		return ErrUnauthorized
	}
	if getPaused(db) {
		return ErrPaused
	}
	if amount == 0 {
		return ErrZeroAmount
	}
	if getFunded(db) {
		return ErrAlreadyFunded
	}
	received, err := receiveIntoPool(db, from, amount)
	if err != nil {
		return err
	}
	reserve, err := math.CheckedAdd(getRewardReserve(db), received)
	if err != nil {
		return err
	}
	setRewardReserve(db, reserve)
	setFunded(db, true)
	db.AddEvent(EventReserveFunded{From: from, Amount: received})
	return nil
}

// TopUpReserve grows an already funded reserve. Admin only, allowed
// repeatedly.
func TopUpReserve(db state.StateDB, from common.Address, amount uint64) error {
	admin := getAdmin(db)
	if admin.IsZero() {
		return ErrNotInitialized
	}
	if from != admin {
		return ErrUnauthorized
	}
	if getPaused(db) {
		return ErrPaused
	}
	if amount == 0 {
		return ErrZeroAmount
	}
	if !getFunded(db) {
		return ErrNotFunded
	}
	received, err := receiveIntoPool(db, from, amount)
	if err != nil {
		return err
	}
	reserve, err := math.CheckedAdd(getRewardReserve(db), received)
	if err != nil {
		return err
	}
	setRewardReserve(db, reserve)
	db.AddEvent(EventReserveToppedUp{From: from, Amount: received})
	return nil
}

// Stake locks amount for the given duration and promises the table
// reward. The solvency check runs before any custody movement: a stake
// whose reward the reserve cannot cover is rejected, never queued. The
// record's principal is the custody delta actually received.
func Stake(db state.StateDB, from common.Address, amount, durationDays uint64, now int64) error {
	if getAdmin(db).IsZero() {
		return ErrNotInitialized
	}
	if getPaused(db) {
		return ErrPaused
	}
	if amount == 0 {
		return ErrZeroAmount
	}
	rate := getRateBps(db, durationDays)
	if rate == 0 {
		return ErrInvalidDuration
	}
	reward, err := math.BpsOf(amount, rate)
	if err != nil {
		return err
	}
	promised, err := math.CheckedAdd(getPromisedRewards(db), reward)
	if err != nil {
		return err
	}
	if promised > getRewardReserve(db) {
		return ErrInsufficientReserves
	}

	received, err := receiveIntoPool(db, from, amount)
	if err != nil {
		return err
	}

	index := getStakeCount(db, from)
	maturity := now + int64(durationDays)*params.SecondsPerDay
	setStakePrincipal(db, from, index, received)
	setStakeReward(db, from, index, reward)
	setStakeMaturity(db, from, index, maturity)
	setStakeCount(db, from, index+1)
	setPromisedRewards(db, promised)

	db.AddEvent(EventStaked{
		Owner:        from,
		Index:        index,
		Principal:    received,
		Reward:       reward,
		DurationDays: durationDays,
		MaturityTime: maturity,
	})
	return nil
}

// Withdraw pays out principal plus reward once the stake has matured.
// The reward was owed and is now paid, so both the promised ledger and
// the reserve shrink by it. Withdrawals are never pause-gated.
func Withdraw(db state.StateDB, from common.Address, index uint64, now int64) error {
	if index >= getStakeCount(db, from) {
		return ErrStakeNotFound
	}
	if getStakeWithdrawn(db, from, index) {
		return ErrAlreadyWithdrawn
	}
	if now < getStakeMaturity(db, from, index) {
		return ErrNotMatured
	}

	principal := getStakePrincipal(db, from, index)
	reward := getStakeReward(db, from, index)
	payout, err := math.CheckedAdd(principal, reward)
	if err != nil {
		return err
	}
	promised, err := math.CheckedSub(getPromisedRewards(db), reward)
	if err != nil {
		return err
	}
	reserve, err := math.CheckedSub(getRewardReserve(db), reward)
	if err != nil {
		return err
	}

	setStakeWithdrawn(db, from, index, true)
	setPromisedRewards(db, promised)
	setRewardReserve(db, reserve)
	if err := payFromPool(db, from, payout); err != nil {
		return err
	}

	db.AddEvent(EventWithdrawn{
		Owner:     from,
		Index:     index,
		Principal: principal,
		Reward:    reward,
		Payout:    payout,
	})
	return nil
}

// WithdrawEarly exits a stake before maturity. The reward is forfeited
// and a fee on principal goes to the treasury; the reserve keeps the
// forfeited reward for other stakers.
func WithdrawEarly(db state.StateDB, from common.Address, index uint64, now int64) error {
	if index >= getStakeCount(db, from) {
		return ErrStakeNotFound
	}
	if getStakeWithdrawn(db, from, index) {
		return ErrAlreadyWithdrawn
	}
	if now >= getStakeMaturity(db, from, index) {
		return ErrAlreadyMatured
	}
	principal, fee, returned, forfeited, err := payForfeit(db, from, index, params.EarlyWithdrawalFeeBps)
	if err != nil {
		return err
	}
	db.AddEvent(EventWithdrawnEarly{
		Owner:     from,
		Index:     index,
		Principal: principal,
		Fee:       fee,
		Returned:  returned,
		Forfeited: forfeited,
	})
	return nil
}

// EmergencyWithdraw exits a stake at any time for a higher fee. The
// reward is forfeited exactly as in WithdrawEarly.
func EmergencyWithdraw(db state.StateDB, from common.Address, index uint64, now int64) error {
	if index >= getStakeCount(db, from) {
		return ErrStakeNotFound
	}
	if getStakeWithdrawn(db, from, index) {
		return ErrAlreadyWithdrawn
	}
	principal, fee, returned, forfeited, err := payForfeit(db, from, index, params.EmergencyWithdrawalFeeBps)
	if err != nil {
		return err
	}
	db.AddEvent(EventEmergencyWithdrawn{
		Owner:     from,
		Index:     index,
		Principal: principal,
		Fee:       fee,
		Returned:  returned,
		Forfeited: forfeited,
	})
	return nil
}

// Pause blocks staking and funding. Withdrawals stay open.
func Pause(db state.StateDB, from common.Address) error {
	return setPauseState(db, from, true)
}

// Unpause reopens staking and funding.
func Unpause(db state.StateDB, from common.Address) error {
	return setPauseState(db, from, false)
}

func setPauseState(db state.StateDB, from common.Address, paused bool) error {
	admin := getAdmin(db)
	if admin.IsZero() {
		return ErrNotInitialized
	}
	if from != admin {
		return ErrUnauthorized
	}
	if getPaused(db) == paused {
		return ErrSameState
	}
	setPaused(db, paused)
	db.AddEvent(EventPauseSet{Paused: paused})
	return nil
}

// payForfeit flips the withdrawn flag, releases the promised reward
// without touching the reserve, and pays principal minus fee. The fee
// must stay strictly below principal.
func payForfeit(db state.StateDB, owner common.Address, index uint64, feeBps uint64) (principal, fee, returned, forfeited uint64, err error) {
	principal = getStakePrincipal(db, owner, index)
	forfeited = getStakeReward(db, owner, index)

	fee, err = math.BpsOf(principal, feeBps)
	if err != nil {
		return 0, 0, 0, 0, err
	}
	if fee >= principal {
		return 0, 0, 0, 0, ErrFeeExceedsPrincipal
	}
	returned = principal - fee

	promised, err := math.CheckedSub(getPromisedRewards(db), forfeited)
	if err != nil {
		return 0, 0, 0, 0, err
	}
	setStakeWithdrawn(db, owner, index, true)
	setPromisedRewards(db, promised)

	asset := token.SNRGAsset(db)
	if fee > 0 {
		if _, err := token.Transfer(db, asset, token.SystemAuthority(params.StakingAddress), params.StakingAddress, getTreasury(db), fee); err != nil {
			return 0, 0, 0, 0, err
		}
	}
	if err := payFromPool(db, owner, returned); err != nil {
		return 0, 0, 0, 0, err
	}
	return principal, fee, returned, forfeited, nil
}

// receiveIntoPool moves amount from the caller into pool custody and
// returns the balance delta actually received.
func receiveIntoPool(db state.StateDB, from common.Address, amount uint64) (uint64, error) {
	asset := token.SNRGAsset(db)
	if asset.IsZero() {
		return 0, token.ErrNotConfigured
	}
	pre := token.BalanceOf(db, asset, params.StakingAddress)
	if _, err := token.Transfer(db, asset, token.OwnerAuthority(from), from, params.StakingAddress, amount); err != nil {
		return 0, err
	}
	return token.BalanceOf(db, asset, params.StakingAddress) - pre, nil
}

// payFromPool moves amount from pool custody to the recipient and
// verifies the recipient received exactly that amount.
func payFromPool(db state.StateDB, to common.Address, amount uint64) error {
	asset := token.SNRGAsset(db)
	pre := token.BalanceOf(db, asset, to)
	if _, err := token.Transfer(db, asset, token.SystemAuthority(params.StakingAddress), params.StakingAddress, to, amount); err != nil {
		return err
	}
	if token.BalanceOf(db, asset, to)-pre != amount {
		return ErrInexactPayout
	}
	return nil
}
