package swap

import (
	"encoding/binary"

	"github.com/snrg-network/gsnrg/common"
	"github.com/snrg-network/gsnrg/core/state"
	"github.com/snrg-network/gsnrg/crypto"
	"github.com/snrg-network/gsnrg/params"
)

// Storage layout. Burn-receipt state lives in storage words owned by
// params.SwapAddress: global fields hash a bare tag, per-burner totals mix in
// the burner address. Root and commitment fields store a full hash word.

func globalSlot(field string) common.Hash {
	return common.BytesToHash(crypto.Keccak256([]byte(field)))
}

func burnerSlot(burner common.Address, field string) common.Hash {
	key := append(burner.Bytes(), []byte(field)...)
	return common.BytesToHash(crypto.Keccak256(key))
}

func le64(v uint64) []byte {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], v)
	return buf[:]
}

// --- global fields ---

func getAdmin(db state.StateDB) common.Address {
	return state.ReadAddress(db, params.SwapAddress, globalSlot("admin"))
}

func setAdmin(db state.StateDB, admin common.Address) {
	state.WriteAddress(db, params.SwapAddress, globalSlot("admin"), admin)
}

func getPaused(db state.StateDB) bool {
	return state.ReadBool(db, params.SwapAddress, globalSlot("paused"))
}

func setPaused(db state.StateDB, paused bool) {
	state.WriteBool(db, params.SwapAddress, globalSlot("paused"), paused)
}

func getTotalBurned(db state.StateDB) uint64 {
	return state.ReadUint64(db, params.SwapAddress, globalSlot("totalBurned"))
}

func setTotalBurned(db state.StateDB, total uint64) {
	state.WriteUint64(db, params.SwapAddress, globalSlot("totalBurned"), total)
}

func getProposedRoot(db state.StateDB) common.Hash {
	return db.GetState(params.SwapAddress, globalSlot("proposedRoot"))
}

func setProposedRoot(db state.StateDB, root common.Hash) {
	db.SetState(params.SwapAddress, globalSlot("proposedRoot"), root)
}

func getProposedAt(db state.StateDB) int64 {
	return state.ReadInt64(db, params.SwapAddress, globalSlot("proposedAt"))
}

func setProposedAt(db state.StateDB, at int64) {
	state.WriteInt64(db, params.SwapAddress, globalSlot("proposedAt"), at)
}

func getFinalized(db state.StateDB) bool {
	return state.ReadBool(db, params.SwapAddress, globalSlot("finalized"))
}

func setFinalized(db state.StateDB, finalized bool) {
	state.WriteBool(db, params.SwapAddress, globalSlot("finalized"), finalized)
}

func getMerkleRoot(db state.StateDB) common.Hash {
	return db.GetState(params.SwapAddress, globalSlot("merkleRoot"))
}

func setMerkleRoot(db state.StateDB, root common.Hash) {
	db.SetState(params.SwapAddress, globalSlot("merkleRoot"), root)
}

func getBurnCommitment(db state.StateDB) common.Hash {
	return db.GetState(params.SwapAddress, globalSlot("burnCommitment"))
}

func setBurnCommitment(db state.StateDB, commitment common.Hash) {
	db.SetState(params.SwapAddress, globalSlot("burnCommitment"), commitment)
}

func getFinalizedAt(db state.StateDB) int64 {
	return state.ReadInt64(db, params.SwapAddress, globalSlot("finalizedAt"))
}

func setFinalizedAt(db state.StateDB, at int64) {
	state.WriteInt64(db, params.SwapAddress, globalSlot("finalizedAt"), at)
}

// --- per-burner fields ---

func getBurnedOf(db state.StateDB, burner common.Address) uint64 {
	return state.ReadUint64(db, params.SwapAddress, burnerSlot(burner, "burnedAmount"))
}

func setBurnedOf(db state.StateDB, burner common.Address, amount uint64) {
	state.WriteUint64(db, params.SwapAddress, burnerSlot(burner, "burnedAmount"), amount)
}
