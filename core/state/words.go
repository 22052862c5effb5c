package state

import (
	"encoding/binary"

	"github.com/snrg-network/gsnrg/common"
)

// Storage words hold scalar values in a fixed layout: uint64 big-endian in
// the low 8 bytes, booleans as 0 or 1 in the last byte, addresses
// right-aligned in the low 20 bytes. Unset slots read as the zero word, so
// zero is always a valid default.

// ReadUint64 reads a uint64 from the low 8 bytes of a storage word.
func ReadUint64(db StateDB, owner common.Address, slot common.Hash) uint64 {
	raw := db.GetState(owner, slot)
	return binary.BigEndian.Uint64(raw[24:])
}

// WriteUint64 stores a uint64 into the low 8 bytes of a storage word.
func WriteUint64(db StateDB, owner common.Address, slot common.Hash, v uint64) {
	var word common.Hash
	binary.BigEndian.PutUint64(word[24:], v)
	db.SetState(owner, slot, word)
}

// ReadInt64 reads an int64 stored by WriteInt64. Timestamps are kept as
// int64 to match time.Time.Unix.
func ReadInt64(db StateDB, owner common.Address, slot common.Hash) int64 {
	return int64(ReadUint64(db, owner, slot))
}

// WriteInt64 stores an int64 into the low 8 bytes of a storage word.
func WriteInt64(db StateDB, owner common.Address, slot common.Hash, v int64) {
	WriteUint64(db, owner, slot, uint64(v))
}

// ReadBool reads a boolean from the last byte of a storage word.
func ReadBool(db StateDB, owner common.Address, slot common.Hash) bool {
	raw := db.GetState(owner, slot)
	return raw[31] != 0
}

// WriteBool stores a boolean into the last byte of a storage word.
func WriteBool(db StateDB, owner common.Address, slot common.Hash, v bool) {
	var word common.Hash
	if v {
		word[31] = 1
	}
	db.SetState(owner, slot, word)
}

// ReadAddress reads an address from the low 20 bytes of a storage word.
func ReadAddress(db StateDB, owner common.Address, slot common.Hash) common.Address {
	raw := db.GetState(owner, slot)
	var addr common.Address
	copy(addr[:], raw[12:])
	return addr
}

// WriteAddress stores an address right-aligned into a storage word.
func WriteAddress(db StateDB, owner common.Address, slot common.Hash, addr common.Address) {
	var word common.Hash
	copy(word[12:], addr[:])
	db.SetState(owner, slot, word)
}
