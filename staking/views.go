package staking

import (
	"github.com/snrg-network/gsnrg/common"
	"github.com/snrg-network/gsnrg/core/state"
)

// IsSolvent reports whether the reserve covers every promised reward.
// This is the monitoring invariant; every mutating operation enforces
// it before moving custody.
func IsSolvent(db state.StateDB) bool {
	return getRewardReserve(db) >= getPromisedRewards(db)
}

// Info returns the pool state.
func Info(db state.StateDB) ReserveInfo {
	return ReserveInfo{
		Admin:           getAdmin(db),
		Treasury:        getTreasury(db),
		RewardReserve:   getRewardReserve(db),
		PromisedRewards: getPromisedRewards(db),
		IsFunded:        getFunded(db),
		Paused:          getPaused(db),
	}
}

// StakeCount returns the number of stake records owner has created.
func StakeCount(db state.StateDB, owner common.Address) uint64 {
	return getStakeCount(db, owner)
}

// StakeInfo returns one stake record with a countdown clamped to zero.
func StakeInfo(db state.StateDB, owner common.Address, index uint64, now int64) (StakeRecord, error) {
	if index >= getStakeCount(db, owner) {
		return StakeRecord{}, ErrStakeNotFound
	}
	maturity := getStakeMaturity(db, owner, index)
	remaining := maturity - now
	if remaining < 0 {
		remaining = 0
	}
	return StakeRecord{
		Owner:            owner,
		Index:            index,
		Principal:        getStakePrincipal(db, owner, index),
		Reward:           getStakeReward(db, owner, index),
		MaturityTime:     maturity,
		Withdrawn:        getStakeWithdrawn(db, owner, index),
		RemainingSeconds: remaining,
	}, nil
}

// RateBps returns the reward rate for a duration, zero when the
// duration is not in the table.
func RateBps(db state.StateDB, durationDays uint64) uint64 {
	return getRateBps(db, durationDays)
}
