// Package rawdb contains the low-level database accessors for persisted
// custody state.
package rawdb

import "github.com/snrg-network/gsnrg/common"

var (
	// storageWordPrefix + owner + slot -> 32-byte storage word
	storageWordPrefix = []byte("w")

	// genesisMarkerKey tracks that a data directory has been initialized and
	// records the genesis configuration snapshot.
	genesisMarkerKey = []byte("gsnrg-genesis")
)

// storageWordKey = storageWordPrefix + owner + slot
func storageWordKey(owner common.Address, slot common.Hash) []byte {
	key := make([]byte, 0, len(storageWordPrefix)+common.AddressLength+common.HashLength)
	key = append(key, storageWordPrefix...)
	key = append(key, owner.Bytes()...)
	key = append(key, slot.Bytes()...)
	return key
}
