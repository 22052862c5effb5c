package rawdb

import (
	"github.com/snrg-network/gsnrg/common"
	"github.com/snrg-network/gsnrg/snrgdb"
)

// ReadStorageWord retrieves one storage word, returning the zero word when the
// slot has never been written.
func ReadStorageWord(db snrgdb.KeyValueReader, owner common.Address, slot common.Hash) common.Hash {
	data, _ := db.Get(storageWordKey(owner, slot))
	return common.BytesToHash(data)
}

// HasStorageWord checks whether a non-zero word is persisted for the slot.
func HasStorageWord(db snrgdb.KeyValueReader, owner common.Address, slot common.Hash) bool {
	ok, _ := db.Has(storageWordKey(owner, slot))
	return ok
}

// WriteStorageWord persists one storage word. Zero words are stored as
// deletions so untouched and explicitly-cleared slots read back identically.
func WriteStorageWord(db snrgdb.KeyValueWriter, owner common.Address, slot common.Hash, value common.Hash) error {
	if value.IsZero() {
		return db.Delete(storageWordKey(owner, slot))
	}
	return db.Put(storageWordKey(owner, slot), value.Bytes())
}

// ReadGenesisMarker retrieves the genesis configuration snapshot written at
// initialization, or nil when the store was never initialized.
func ReadGenesisMarker(db snrgdb.KeyValueReader) []byte {
	data, _ := db.Get(genesisMarkerKey)
	return data
}

// WriteGenesisMarker persists the genesis configuration snapshot.
func WriteGenesisMarker(db snrgdb.KeyValueWriter, snapshot []byte) error {
	return db.Put(genesisMarkerKey, snapshot)
}
