package token

import (
	"github.com/snrg-network/gsnrg/common"
	"github.com/snrg-network/gsnrg/core/state"
	"github.com/snrg-network/gsnrg/crypto"
	"github.com/snrg-network/gsnrg/params"
)

// All ledger words live under params.TokenAddress. Slots are the keccak
// of their components plus a field tag, so records never collide.

// --- slot derivation ---

func globalSlot(field string) common.Hash {
	return common.BytesToHash(crypto.Keccak256([]byte(field)))
}

func assetSlot(asset common.Address, field string) common.Hash {
	key := append(asset.Bytes(), []byte(field)...)
	return common.BytesToHash(crypto.Keccak256(key))
}

func holderSlot(asset, holder common.Address, field string) common.Hash {
	key := append(asset.Bytes(), holder.Bytes()...)
	key = append(key, []byte(field)...)
	return common.BytesToHash(crypto.Keccak256(key))
}

func allowanceSlot(asset, owner, spender common.Address) common.Hash {
	key := append(asset.Bytes(), owner.Bytes()...)
	key = append(key, spender.Bytes()...)
	key = append(key, []byte("allowance")...)
	return common.BytesToHash(crypto.Keccak256(key))
}

func endpointSlot(kind EndpointKind, field string) common.Hash {
	key := append([]byte(kind), []byte(field)...)
	return common.BytesToHash(crypto.Keccak256(key))
}

// --- ledger globals ---

func getSNRGAsset(db state.StateDB) common.Address {
	return state.ReadAddress(db, params.TokenAddress, globalSlot("snrgAsset"))
}

func setSNRGAsset(db state.StateDB, asset common.Address) {
	state.WriteAddress(db, params.TokenAddress, globalSlot("snrgAsset"), asset)
}

func getTreasury(db state.StateDB) common.Address {
	return state.ReadAddress(db, params.TokenAddress, globalSlot("treasury"))
}

func setTreasury(db state.StateDB, treasury common.Address) {
	state.WriteAddress(db, params.TokenAddress, globalSlot("treasury"), treasury)
}

func getAdmin(db state.StateDB) common.Address {
	return state.ReadAddress(db, params.TokenAddress, globalSlot("admin"))
}

func setAdmin(db state.StateDB, admin common.Address) {
	state.WriteAddress(db, params.TokenAddress, globalSlot("admin"), admin)
}

func getRestricted(db state.StateDB) bool {
	return state.ReadBool(db, params.TokenAddress, globalSlot("restricted"))
}

func setRestricted(db state.StateDB, restricted bool) {
	state.WriteBool(db, params.TokenAddress, globalSlot("restricted"), restricted)
}

// --- per-asset state ---

func getTotalSupply(db state.StateDB, asset common.Address) uint64 {
	return state.ReadUint64(db, params.TokenAddress, assetSlot(asset, "totalSupply"))
}

func setTotalSupply(db state.StateDB, asset common.Address, supply uint64) {
	state.WriteUint64(db, params.TokenAddress, assetSlot(asset, "totalSupply"), supply)
}

func getTransferFeeBps(db state.StateDB, asset common.Address) uint64 {
	return state.ReadUint64(db, params.TokenAddress, assetSlot(asset, "feeBps"))
}

func setTransferFeeBps(db state.StateDB, asset common.Address, bps uint64) {
	state.WriteUint64(db, params.TokenAddress, assetSlot(asset, "feeBps"), bps)
}

func getFeeCollector(db state.StateDB, asset common.Address) common.Address {
	return state.ReadAddress(db, params.TokenAddress, assetSlot(asset, "feeCollector"))
}

func setFeeCollector(db state.StateDB, asset common.Address, collector common.Address) {
	state.WriteAddress(db, params.TokenAddress, assetSlot(asset, "feeCollector"), collector)
}

// --- per-holder state ---

func getBalance(db state.StateDB, asset, holder common.Address) uint64 {
	return state.ReadUint64(db, params.TokenAddress, holderSlot(asset, holder, "balance"))
}

func setBalance(db state.StateDB, asset, holder common.Address, balance uint64) {
	state.WriteUint64(db, params.TokenAddress, holderSlot(asset, holder, "balance"), balance)
}

func getAllowance(db state.StateDB, asset, owner, spender common.Address) uint64 {
	return state.ReadUint64(db, params.TokenAddress, allowanceSlot(asset, owner, spender))
}

func setAllowance(db state.StateDB, asset, owner, spender common.Address, amount uint64) {
	state.WriteUint64(db, params.TokenAddress, allowanceSlot(asset, owner, spender), amount)
}

// --- endpoint registry ---

func getEndpointAddress(db state.StateDB, kind EndpointKind) common.Address {
	return state.ReadAddress(db, params.TokenAddress, endpointSlot(kind, "addr"))
}

func setEndpointAddress(db state.StateDB, kind EndpointKind, addr common.Address) {
	state.WriteAddress(db, params.TokenAddress, endpointSlot(kind, "addr"), addr)
}

func getPendingEndpoint(db state.StateDB, kind EndpointKind) common.Address {
	return state.ReadAddress(db, params.TokenAddress, endpointSlot(kind, "pending"))
}

func setPendingEndpoint(db state.StateDB, kind EndpointKind, addr common.Address) {
	state.WriteAddress(db, params.TokenAddress, endpointSlot(kind, "pending"), addr)
}

func getEndpointProposedAt(db state.StateDB, kind EndpointKind) int64 {
	return state.ReadInt64(db, params.TokenAddress, endpointSlot(kind, "proposedAt"))
}

func setEndpointProposedAt(db state.StateDB, kind EndpointKind, at int64) {
	state.WriteInt64(db, params.TokenAddress, endpointSlot(kind, "proposedAt"), at)
}
