package presale

import (
	"encoding/binary"

	"github.com/snrg-network/gsnrg/common"
	"github.com/snrg-network/gsnrg/core/state"
	"github.com/snrg-network/gsnrg/crypto"
	"github.com/snrg-network/gsnrg/params"
)

// Storage layout. All purchase-gate state lives in storage words owned by
// params.PresaleAddress. Global fields hash a bare tag, per-buyer fields mix
// in the buyer address, the asset list is count plus indexed entries with a
// membership word per asset, and nonces get one word each.

func globalSlot(field string) common.Hash {
	return common.BytesToHash(crypto.Keccak256([]byte(field)))
}

func buyerSlot(buyer common.Address, field string) common.Hash {
	key := append(buyer.Bytes(), []byte(field)...)
	return common.BytesToHash(crypto.Keccak256(key))
}

func assetIndexSlot(index uint64) common.Hash {
	key := append(le64(index), []byte("assetAt")...)
	return common.BytesToHash(crypto.Keccak256(key))
}

func assetListedSlot(asset common.Address) common.Hash {
	key := append(asset.Bytes(), []byte("assetListed")...)
	return common.BytesToHash(crypto.Keccak256(key))
}

func nonceSlot(nonce uint64) common.Hash {
	key := append(le64(nonce), []byte("nonceUsed")...)
	return common.BytesToHash(crypto.Keccak256(key))
}

func le64(v uint64) []byte {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], v)
	return buf[:]
}

// --- global fields ---

func getAdmin(db state.StateDB) common.Address {
	return state.ReadAddress(db, params.PresaleAddress, globalSlot("admin"))
}

func setAdmin(db state.StateDB, admin common.Address) {
	state.WriteAddress(db, params.PresaleAddress, globalSlot("admin"), admin)
}

func getSigner(db state.StateDB) common.Address {
	return state.ReadAddress(db, params.PresaleAddress, globalSlot("signer"))
}

func setSigner(db state.StateDB, signer common.Address) {
	state.WriteAddress(db, params.PresaleAddress, globalSlot("signer"), signer)
}

func getTreasury(db state.StateDB) common.Address {
	return state.ReadAddress(db, params.PresaleAddress, globalSlot("treasury"))
}

func setTreasury(db state.StateDB, treasury common.Address) {
	state.WriteAddress(db, params.PresaleAddress, globalSlot("treasury"), treasury)
}

func getOpen(db state.StateDB) bool {
	return state.ReadBool(db, params.PresaleAddress, globalSlot("isOpen"))
}

func setOpen(db state.StateDB, open bool) {
	state.WriteBool(db, params.PresaleAddress, globalSlot("isOpen"), open)
}

func getPaused(db state.StateDB) bool {
	return state.ReadBool(db, params.PresaleAddress, globalSlot("paused"))
}

func setPaused(db state.StateDB, paused bool) {
	state.WriteBool(db, params.PresaleAddress, globalSlot("paused"), paused)
}

func getMaxPurchase(db state.StateDB) uint64 {
	return state.ReadUint64(db, params.PresaleAddress, globalSlot("maxPurchase"))
}

func setMaxPurchase(db state.StateDB, amount uint64) {
	state.WriteUint64(db, params.PresaleAddress, globalSlot("maxPurchase"), amount)
}

// --- payment-asset list ---

func getAssetCount(db state.StateDB) uint64 {
	return state.ReadUint64(db, params.PresaleAddress, globalSlot("assetCount"))
}

func setAssetCount(db state.StateDB, count uint64) {
	state.WriteUint64(db, params.PresaleAddress, globalSlot("assetCount"), count)
}

func getAssetAt(db state.StateDB, index uint64) common.Address {
	return state.ReadAddress(db, params.PresaleAddress, assetIndexSlot(index))
}

func setAssetAt(db state.StateDB, index uint64, asset common.Address) {
	state.WriteAddress(db, params.PresaleAddress, assetIndexSlot(index), asset)
}

func getAssetListed(db state.StateDB, asset common.Address) bool {
	return state.ReadBool(db, params.PresaleAddress, assetListedSlot(asset))
}

func setAssetListed(db state.StateDB, asset common.Address, listed bool) {
	state.WriteBool(db, params.PresaleAddress, assetListedSlot(asset), listed)
}

// --- per-buyer rate-limit fields ---

func getLastPurchaseTime(db state.StateDB, buyer common.Address) int64 {
	return state.ReadInt64(db, params.PresaleAddress, buyerSlot(buyer, "lastPurchaseTime"))
}

func setLastPurchaseTime(db state.StateDB, buyer common.Address, at int64) {
	state.WriteInt64(db, params.PresaleAddress, buyerSlot(buyer, "lastPurchaseTime"), at)
}

func getPurchaseCountToday(db state.StateDB, buyer common.Address) uint64 {
	return state.ReadUint64(db, params.PresaleAddress, buyerSlot(buyer, "purchaseCountToday"))
}

func setPurchaseCountToday(db state.StateDB, buyer common.Address, count uint64) {
	state.WriteUint64(db, params.PresaleAddress, buyerSlot(buyer, "purchaseCountToday"), count)
}

func getDailyResetTime(db state.StateDB, buyer common.Address) int64 {
	return state.ReadInt64(db, params.PresaleAddress, buyerSlot(buyer, "dailyResetTime"))
}

func setDailyResetTime(db state.StateDB, buyer common.Address, at int64) {
	state.WriteInt64(db, params.PresaleAddress, buyerSlot(buyer, "dailyResetTime"), at)
}

// --- nonces ---

func getNonceUsed(db state.StateDB, nonce uint64) bool {
	return state.ReadBool(db, params.PresaleAddress, nonceSlot(nonce))
}

func setNonceUsed(db state.StateDB, nonce uint64) {
	state.WriteBool(db, params.PresaleAddress, nonceSlot(nonce), true)
}
