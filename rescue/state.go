package rescue

import (
	"encoding/binary"

	"github.com/snrg-network/gsnrg/common"
	"github.com/snrg-network/gsnrg/core/state"
	"github.com/snrg-network/gsnrg/crypto"
	"github.com/snrg-network/gsnrg/params"
)

// Storage layout. Registry state lives in storage words owned by
// params.RescueAddress. Plans are keyed by owner; a non-zero recovery address
// is what marks a plan as existing. The executor set is a dense indexed list
// with a membership word per address.

func globalSlot(field string) common.Hash {
	return common.BytesToHash(crypto.Keccak256([]byte(field)))
}

func planSlot(owner common.Address, field string) common.Hash {
	key := append(owner.Bytes(), []byte(field)...)
	return common.BytesToHash(crypto.Keccak256(key))
}

func executorIndexSlot(index uint64) common.Hash {
	key := append(le64(index), []byte("executorAt")...)
	return common.BytesToHash(crypto.Keccak256(key))
}

func executorListedSlot(executor common.Address) common.Hash {
	key := append(executor.Bytes(), []byte("executorListed")...)
	return common.BytesToHash(crypto.Keccak256(key))
}

func le64(v uint64) []byte {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], v)
	return buf[:]
}

// --- global fields ---

func getAdmin(db state.StateDB) common.Address {
	return state.ReadAddress(db, params.RescueAddress, globalSlot("admin"))
}

func setAdmin(db state.StateDB, admin common.Address) {
	state.WriteAddress(db, params.RescueAddress, globalSlot("admin"), admin)
}

func getPaused(db state.StateDB) bool {
	return state.ReadBool(db, params.RescueAddress, globalSlot("paused"))
}

func setPaused(db state.StateDB, paused bool) {
	state.WriteBool(db, params.RescueAddress, globalSlot("paused"), paused)
}

func getMaxRescueAmount(db state.StateDB) uint64 {
	return state.ReadUint64(db, params.RescueAddress, globalSlot("maxRescueAmount"))
}

func setMaxRescueAmount(db state.StateDB, amount uint64) {
	state.WriteUint64(db, params.RescueAddress, globalSlot("maxRescueAmount"), amount)
}

// --- executor set ---

func getExecutorCount(db state.StateDB) uint64 {
	return state.ReadUint64(db, params.RescueAddress, globalSlot("executorCount"))
}

func setExecutorCount(db state.StateDB, count uint64) {
	state.WriteUint64(db, params.RescueAddress, globalSlot("executorCount"), count)
}

func getExecutorAt(db state.StateDB, index uint64) common.Address {
	return state.ReadAddress(db, params.RescueAddress, executorIndexSlot(index))
}

func setExecutorAt(db state.StateDB, index uint64, executor common.Address) {
	state.WriteAddress(db, params.RescueAddress, executorIndexSlot(index), executor)
}

func getExecutorListed(db state.StateDB, executor common.Address) bool {
	return state.ReadBool(db, params.RescueAddress, executorListedSlot(executor))
}

func setExecutorListed(db state.StateDB, executor common.Address, listed bool) {
	state.WriteBool(db, params.RescueAddress, executorListedSlot(executor), listed)
}

// --- per-owner plan fields ---

func getPlanRecovery(db state.StateDB, owner common.Address) common.Address {
	return state.ReadAddress(db, params.RescueAddress, planSlot(owner, "recovery"))
}

func setPlanRecovery(db state.StateDB, owner, recovery common.Address) {
	state.WriteAddress(db, params.RescueAddress, planSlot(owner, "recovery"), recovery)
}

func getPlanDelay(db state.StateDB, owner common.Address) int64 {
	return state.ReadInt64(db, params.RescueAddress, planSlot(owner, "delaySeconds"))
}

func setPlanDelay(db state.StateDB, owner common.Address, delay int64) {
	state.WriteInt64(db, params.RescueAddress, planSlot(owner, "delaySeconds"), delay)
}

func getPlanETA(db state.StateDB, owner common.Address) int64 {
	return state.ReadInt64(db, params.RescueAddress, planSlot(owner, "eta"))
}

func setPlanETA(db state.StateDB, owner common.Address, eta int64) {
	state.WriteInt64(db, params.RescueAddress, planSlot(owner, "eta"), eta)
}

func getPlanLastRescueTime(db state.StateDB, owner common.Address) int64 {
	return state.ReadInt64(db, params.RescueAddress, planSlot(owner, "lastRescueTime"))
}

func setPlanLastRescueTime(db state.StateDB, owner common.Address, at int64) {
	state.WriteInt64(db, params.RescueAddress, planSlot(owner, "lastRescueTime"), at)
}
