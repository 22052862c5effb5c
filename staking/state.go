package staking

import (
	"encoding/binary"

	"github.com/snrg-network/gsnrg/common"
	"github.com/snrg-network/gsnrg/core/state"
	"github.com/snrg-network/gsnrg/crypto"
	"github.com/snrg-network/gsnrg/params"
)

// --- slot derivation ---

func globalSlot(field string) common.Hash {
	return common.BytesToHash(crypto.Keccak256([]byte(field)))
}

func ownerSlot(owner common.Address, field string) common.Hash {
	key := append(owner.Bytes(), []byte(field)...)
	return common.BytesToHash(crypto.Keccak256(key))
}

func stakeSlot(owner common.Address, index uint64, field string) common.Hash {
	key := append(owner.Bytes(), le64(index)...)
	key = append(key, []byte(field)...)
	return common.BytesToHash(crypto.Keccak256(key))
}

func rateSlot(durationDays uint64) common.Hash {
	key := append(le64(durationDays), []byte("rateBps")...)
	return common.BytesToHash(crypto.Keccak256(key))
}

func le64(v uint64) []byte {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], v)
	return buf[:]
}

// --- pool state ---

func getAdmin(db state.StateDB) common.Address {
	return state.ReadAddress(db, params.StakingAddress, globalSlot("admin"))
}

func setAdmin(db state.StateDB, admin common.Address) {
	state.WriteAddress(db, params.StakingAddress, globalSlot("admin"), admin)
}

func getTreasury(db state.StateDB) common.Address {
	return state.ReadAddress(db, params.StakingAddress, globalSlot("treasury"))
}

func setTreasury(db state.StateDB, treasury common.Address) {
	state.WriteAddress(db, params.StakingAddress, globalSlot("treasury"), treasury)
}

func getRewardReserve(db state.StateDB) uint64 {
	return state.ReadUint64(db, params.StakingAddress, globalSlot("rewardReserve"))
}

func setRewardReserve(db state.StateDB, v uint64) {
	state.WriteUint64(db, params.StakingAddress, globalSlot("rewardReserve"), v)
}

func getPromisedRewards(db state.StateDB) uint64 {
	return state.ReadUint64(db, params.StakingAddress, globalSlot("promisedRewards"))
}

func setPromisedRewards(db state.StateDB, v uint64) {
	state.WriteUint64(db, params.StakingAddress, globalSlot("promisedRewards"), v)
}

func getFunded(db state.StateDB) bool {
	return state.ReadBool(db, params.StakingAddress, globalSlot("isFunded"))
}

func setFunded(db state.StateDB, funded bool) {
	state.WriteBool(db, params.StakingAddress, globalSlot("isFunded"), funded)
}

func getPaused(db state.StateDB) bool {
	return state.ReadBool(db, params.StakingAddress, globalSlot("paused"))
}

func setPaused(db state.StateDB, paused bool) {
	state.WriteBool(db, params.StakingAddress, globalSlot("paused"), paused)
}

func getRateBps(db state.StateDB, durationDays uint64) uint64 {
	return state.ReadUint64(db, params.StakingAddress, rateSlot(durationDays))
}

func setRateBps(db state.StateDB, durationDays, bps uint64) {
	state.WriteUint64(db, params.StakingAddress, rateSlot(durationDays), bps)
}

// --- stake records ---

func getStakeCount(db state.StateDB, owner common.Address) uint64 {
	return state.ReadUint64(db, params.StakingAddress, ownerSlot(owner, "stakeCount"))
}

func setStakeCount(db state.StateDB, owner common.Address, n uint64) {
	state.WriteUint64(db, params.StakingAddress, ownerSlot(owner, "stakeCount"), n)
}

func getStakePrincipal(db state.StateDB, owner common.Address, index uint64) uint64 {
	return state.ReadUint64(db, params.StakingAddress, stakeSlot(owner, index, "principal"))
}

func setStakePrincipal(db state.StateDB, owner common.Address, index, v uint64) {
	state.WriteUint64(db, params.StakingAddress, stakeSlot(owner, index, "principal"), v)
}

func getStakeReward(db state.StateDB, owner common.Address, index uint64) uint64 {
	return state.ReadUint64(db, params.StakingAddress, stakeSlot(owner, index, "reward"))
}

func setStakeReward(db state.StateDB, owner common.Address, index, v uint64) {
	state.WriteUint64(db, params.StakingAddress, stakeSlot(owner, index, "reward"), v)
}

func getStakeMaturity(db state.StateDB, owner common.Address, index uint64) int64 {
	return state.ReadInt64(db, params.StakingAddress, stakeSlot(owner, index, "maturityTime"))
}

func setStakeMaturity(db state.StateDB, owner common.Address, index uint64, at int64) {
	state.WriteInt64(db, params.StakingAddress, stakeSlot(owner, index, "maturityTime"), at)
}

func getStakeWithdrawn(db state.StateDB, owner common.Address, index uint64) bool {
	return state.ReadBool(db, params.StakingAddress, stakeSlot(owner, index, "withdrawn"))
}

func setStakeWithdrawn(db state.StateDB, owner common.Address, index uint64, v bool) {
	state.WriteBool(db, params.StakingAddress, stakeSlot(owner, index, "withdrawn"), v)
}
