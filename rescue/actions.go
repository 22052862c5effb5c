// Package rescue implements the delayed self-rescue registry. An owner
// registers a recovery address and a delay, arms the plan when their signing
// key may be compromised, and after the delay anyone of a small authorized
// circle can sweep delegated funds to the recovery address. The registry can
// never seize funds: execution spends only the allowance the owner has
// granted to the registry pool, which the owner can revoke at any time.
package rescue

import (
	"github.com/snrg-network/gsnrg/common"
	"github.com/snrg-network/gsnrg/core/state"
	"github.com/snrg-network/gsnrg/params"
	"github.com/snrg-network/gsnrg/token"
)

// Initialize configures the rescue registry.
func Initialize(db state.StateDB, admin common.Address) error {
	if getAdmin(db) != (common.Address{}) {
		return ErrAlreadyInitialized
	}
	if admin == (common.Address{}) {
		return ErrZeroAddress
	}
	setAdmin(db, admin)
	db.AddEvent(EventInitialized{Admin: admin})
	return nil
}

// RegisterPlan creates or replaces the caller's rescue plan. A plan can be
// reshaped freely while disarmed; once armed the recovery route is frozen
// until cancelled or executed.
func RegisterPlan(db state.StateDB, owner, recovery common.Address, delaySeconds int64) error {
	if getAdmin(db) == (common.Address{}) {
		return ErrNotInitialized
	}
	if getPaused(db) {
		return ErrPaused
	}
	if recovery == (common.Address{}) {
		return ErrZeroAddress
	}
	if recovery == owner {
		return ErrRecoveryIsOwner
	}
	if delaySeconds < params.RescueMinDelaySeconds || delaySeconds > params.RescueMaxDelaySeconds {
		return ErrInvalidDelay
	}
	if getPlanETA(db, owner) != 0 {
		return ErrAlreadyArmed
	}
	setPlanRecovery(db, owner, recovery)
	setPlanDelay(db, owner, delaySeconds)
	db.AddEvent(EventPlanRegistered{Owner: owner, Recovery: recovery, DelaySeconds: delaySeconds})
	return nil
}

// InitiateRescue arms the caller's plan. The initiation cooldown bounds how
// often a plan can be re-armed, whether the previous arming executed or
// lapsed.
func InitiateRescue(db state.StateDB, owner common.Address, now int64) error {
	if getAdmin(db) == (common.Address{}) {
		return ErrNotInitialized
	}
	if getPaused(db) {
		return ErrPaused
	}
	if getPlanRecovery(db, owner) == (common.Address{}) {
		return ErrNoPlan
	}
	if getPlanETA(db, owner) != 0 {
		return ErrAlreadyArmed
	}
	last := getPlanLastRescueTime(db, owner)
	if last != 0 && now < last+params.RescueInitiationCooldownSeconds {
		return ErrInitiationCooldown
	}
	eta := now + getPlanDelay(db, owner)
	setPlanETA(db, owner, eta)
	setPlanLastRescueTime(db, owner, now)
	db.AddEvent(EventRescueInitiated{Owner: owner, ETA: eta})
	return nil
}

// CancelRescue disarms the caller's plan. The cooldown timestamp is cleared
// too, so an owner who armed by mistake can re-arm immediately instead of
// waiting out the full initiation cooldown.
func CancelRescue(db state.StateDB, owner common.Address) error {
	if getAdmin(db) == (common.Address{}) {
		return ErrNotInitialized
	}
	if getPlanRecovery(db, owner) == (common.Address{}) {
		return ErrNoPlan
	}
	if getPlanETA(db, owner) == 0 {
		return ErrNotArmed
	}
	setPlanETA(db, owner, 0)
	setPlanLastRescueTime(db, owner, 0)
	db.AddEvent(EventRescueCancelled{Owner: owner})
	return nil
}

// ExecuteRescue sweeps amount from the plan owner to the recovery address
// once the armed delay has elapsed. The caller must be the owner, the
// recovery address, or a registered executor. The transfer spends the
// allowance the owner granted to the registry pool; the plan is disarmed
// before any value moves.
func ExecuteRescue(db state.StateDB, caller, owner common.Address, amount uint64, now int64) error {
	if getAdmin(db) == (common.Address{}) {
		return ErrNotInitialized
	}
	if getPaused(db) {
		return ErrPaused
	}
	recovery := getPlanRecovery(db, owner)
	if recovery == (common.Address{}) {
		return ErrNoPlan
	}
	eta := getPlanETA(db, owner)
	if eta == 0 {
		return ErrNotArmed
	}
	if now < eta {
		return ErrNotReady
	}
	if caller != owner && caller != recovery && !getExecutorListed(db, caller) {
		return ErrUnauthorized
	}
	if amount == 0 {
		return ErrZeroAmount
	}
	if ceiling := getMaxRescueAmount(db); ceiling != 0 && amount > ceiling {
		return ErrAboveCeiling
	}

	setPlanETA(db, owner, 0)

	snrg := token.SNRGAsset(db)
	before := token.BalanceOf(db, snrg, recovery)
	if _, err := token.Transfer(db, snrg, token.SystemAuthority(params.RescueAddress), owner, recovery, amount); err != nil {
		return err
	}
	if token.BalanceOf(db, snrg, recovery)-before != amount {
		return ErrInexactRescue
	}
	db.AddEvent(EventRescueExecuted{Owner: owner, Recovery: recovery, Amount: amount, Executor: caller})
	return nil
}

// AddExecutor registers an address allowed to execute any matured rescue.
func AddExecutor(db state.StateDB, from, executor common.Address) error {
	if err := requireAdmin(db, from); err != nil {
		return err
	}
	if executor == (common.Address{}) {
		return ErrZeroAddress
	}
	if getExecutorListed(db, executor) {
		return ErrExecutorExists
	}
	count := getExecutorCount(db)
	if count >= params.MaxRescueExecutors {
		return ErrExecutorListFull
	}
	setExecutorAt(db, count, executor)
	setExecutorCount(db, count+1)
	setExecutorListed(db, executor, true)
	db.AddEvent(EventExecutorAdded{Executor: executor})
	return nil
}

// RemoveExecutor drops a registered executor. The last list entry is swapped
// into the vacated index so the list stays dense.
func RemoveExecutor(db state.StateDB, from, executor common.Address) error {
	if err := requireAdmin(db, from); err != nil {
		return err
	}
	if !getExecutorListed(db, executor) {
		return ErrExecutorNotFound
	}
	count := getExecutorCount(db)
	for i := uint64(0); i < count; i++ {
		if getExecutorAt(db, i) != executor {
			continue
		}
		last := count - 1
		if i != last {
			setExecutorAt(db, i, getExecutorAt(db, last))
		}
		setExecutorAt(db, last, common.Address{})
		setExecutorCount(db, last)
		break
	}
	setExecutorListed(db, executor, false)
	db.AddEvent(EventExecutorRemoved{Executor: executor})
	return nil
}

// SetMaxRescueAmount sets the global per-execution ceiling. Zero removes the
// ceiling.
func SetMaxRescueAmount(db state.StateDB, from common.Address, amount uint64) error {
	if err := requireAdmin(db, from); err != nil {
		return err
	}
	setMaxRescueAmount(db, amount)
	db.AddEvent(EventMaxRescueSet{Amount: amount})
	return nil
}

// Pause halts registration, arming and execution. Cancelling stays open so
// an owner can always disarm.
func Pause(db state.StateDB, from common.Address) error {
	return setPauseState(db, from, true)
}

// Unpause resumes the registry.
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
