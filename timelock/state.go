package timelock

import (
	"encoding/binary"

	"github.com/snrg-network/gsnrg/common"
	"github.com/snrg-network/gsnrg/core/state"
	"github.com/snrg-network/gsnrg/crypto"
	"github.com/snrg-network/gsnrg/params"
)

// Storage layout. Queue state lives in storage words owned by
// params.TimelockAddress. Proposals are keyed by their caller-supplied id;
// the opaque payload is stored as a length word plus 32-byte chunks.

func globalSlot(field string) common.Hash {
	return common.BytesToHash(crypto.Keccak256([]byte(field)))
}

func proposalSlot(id common.Hash, field string) common.Hash {
	key := append(id.Bytes(), []byte(field)...)
	return common.BytesToHash(crypto.Keccak256(key))
}

func payloadChunkSlot(id common.Hash, chunk uint64) common.Hash {
	key := append(id.Bytes(), le64(chunk)...)
	key = append(key, []byte("payloadChunk")...)
	return common.BytesToHash(crypto.Keccak256(key))
}

func le64(v uint64) []byte {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], v)
	return buf[:]
}

// --- global fields ---

func getAdmin(db state.StateDB) common.Address {
	return state.ReadAddress(db, params.TimelockAddress, globalSlot("admin"))
}

func setAdmin(db state.StateDB, admin common.Address) {
	state.WriteAddress(db, params.TimelockAddress, globalSlot("admin"), admin)
}

func getMinDelay(db state.StateDB) int64 {
	return state.ReadInt64(db, params.TimelockAddress, globalSlot("minDelay"))
}

func setMinDelay(db state.StateDB, delay int64) {
	state.WriteInt64(db, params.TimelockAddress, globalSlot("minDelay"), delay)
}

// --- per-proposal fields ---

func getProposalScheduled(db state.StateDB, id common.Hash) bool {
	return state.ReadBool(db, params.TimelockAddress, proposalSlot(id, "scheduled"))
}

func setProposalScheduled(db state.StateDB, id common.Hash) {
	state.WriteBool(db, params.TimelockAddress, proposalSlot(id, "scheduled"), true)
}

func getProposalTarget(db state.StateDB, id common.Hash) common.Address {
	return state.ReadAddress(db, params.TimelockAddress, proposalSlot(id, "target"))
}

func setProposalTarget(db state.StateDB, id common.Hash, target common.Address) {
	state.WriteAddress(db, params.TimelockAddress, proposalSlot(id, "target"), target)
}

func getProposalPredecessor(db state.StateDB, id common.Hash) common.Hash {
	return db.GetState(params.TimelockAddress, proposalSlot(id, "predecessor"))
}

func setProposalPredecessor(db state.StateDB, id, predecessor common.Hash) {
	db.SetState(params.TimelockAddress, proposalSlot(id, "predecessor"), predecessor)
}

func getProposalETA(db state.StateDB, id common.Hash) int64 {
	return state.ReadInt64(db, params.TimelockAddress, proposalSlot(id, "eta"))
}

func setProposalETA(db state.StateDB, id common.Hash, eta int64) {
	state.WriteInt64(db, params.TimelockAddress, proposalSlot(id, "eta"), eta)
}

func getProposalExecuted(db state.StateDB, id common.Hash) bool {
	return state.ReadBool(db, params.TimelockAddress, proposalSlot(id, "executed"))
}

func setProposalExecuted(db state.StateDB, id common.Hash) {
	state.WriteBool(db, params.TimelockAddress, proposalSlot(id, "executed"), true)
}

func getProposalCancelled(db state.StateDB, id common.Hash) bool {
	return state.ReadBool(db, params.TimelockAddress, proposalSlot(id, "cancelled"))
}

func setProposalCancelled(db state.StateDB, id common.Hash) {
	state.WriteBool(db, params.TimelockAddress, proposalSlot(id, "cancelled"), true)
}

func getProposalPayload(db state.StateDB, id common.Hash) []byte {
	length := state.ReadUint64(db, params.TimelockAddress, proposalSlot(id, "payloadLen"))
	if length == 0 {
		return nil
	}
	payload := make([]byte, 0, length)
	for chunk := uint64(0); chunk*common.HashLength < length; chunk++ {
		word := db.GetState(params.TimelockAddress, payloadChunkSlot(id, chunk))
		payload = append(payload, word.Bytes()...)
	}
	return payload[:length]
}

func setProposalPayload(db state.StateDB, id common.Hash, payload []byte) {
	state.WriteUint64(db, params.TimelockAddress, proposalSlot(id, "payloadLen"), uint64(len(payload)))
	for chunk := uint64(0); chunk*common.HashLength < uint64(len(payload)); chunk++ {
		var word common.Hash
		copy(word[:], payload[chunk*common.HashLength:])
		db.SetState(params.TimelockAddress, payloadChunkSlot(id, chunk), word)
	}
}
