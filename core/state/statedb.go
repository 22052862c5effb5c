// Package state implements the word-addressed custody state the engines
// mutate. Every mutation is journaled, so an operation wraps its work in
// Snapshot/RevertToSnapshot and either commits completely or leaves no trace.
package state

import (
	"sort"

	"github.com/snrg-network/gsnrg/common"
	"github.com/snrg-network/gsnrg/core/rawdb"
	"github.com/snrg-network/gsnrg/core/types"
	"github.com/snrg-network/gsnrg/snrgdb"
)

// StateDB is the mutation surface the engines operate against.
type StateDB interface {
	// GetState reads one 32-byte storage word of owner.
	GetState(owner common.Address, slot common.Hash) common.Hash

	// SetState writes one 32-byte storage word of owner.
	SetState(owner common.Address, slot common.Hash, value common.Hash)

	// AddEvent appends a structured event to the current operation.
	AddEvent(ev types.Event)

	// Events returns the events accumulated since the last reset.
	Events() []types.Event

	// Snapshot returns an identifier for the current revision of the state.
	Snapshot() int

	// RevertToSnapshot reverts all state changes made since the given revision.
	RevertToSnapshot(revid int)
}

// revision ties a snapshot id to a journal position.
type revision struct {
	id           int
	journalIndex int
}

// DB holds the custody state in memory, optionally backed by a key-value
// store. Reads fall through to the backing store on first touch; Commit
// flushes dirty words back. A nil backing store gives a purely ephemeral
// state, which is what tests and dry runs use.
type DB struct {
	disk snrgdb.KeyValueStore

	storage map[common.Address]map[common.Hash]common.Hash
	dirty   map[common.Address]map[common.Hash]struct{}

	events []types.Event

	journal        *journal
	validRevisions []revision
	nextRevisionId int
}

// New creates an ephemeral state with no backing store.
func New() *DB {
	return NewWithStore(nil)
}

// NewWithStore creates a state backed by the given key-value store. The store
// may be nil.
func NewWithStore(disk snrgdb.KeyValueStore) *DB {
	return &DB{
		disk:    disk,
		storage: make(map[common.Address]map[common.Hash]common.Hash),
		dirty:   make(map[common.Address]map[common.Hash]struct{}),
		journal: newJournal(),
	}
}

// GetState reads one storage word, falling through to the backing store for
// slots not yet touched in memory.
func (s *DB) GetState(owner common.Address, slot common.Hash) common.Hash {
	if words, ok := s.storage[owner]; ok {
		if value, ok := words[slot]; ok {
			return value
		}
	}
	var value common.Hash
	if s.disk != nil {
		value = rawdb.ReadStorageWord(s.disk, owner, slot)
	}
	s.cache(owner, slot, value)
	return value
}

// SetState writes one storage word, journaling the previous value.
func (s *DB) SetState(owner common.Address, slot common.Hash, value common.Hash) {
	prev := s.GetState(owner, slot)
	if prev == value {
		return
	}
	s.journal.append(storageChange{owner: owner, slot: slot, prev: prev})
	s.cache(owner, slot, value)
	s.markDirty(owner, slot)
}

// setStateUnjournaled restores a word during journal revert.
func (s *DB) setStateUnjournaled(owner common.Address, slot common.Hash, value common.Hash) {
	s.cache(owner, slot, value)
}

func (s *DB) cache(owner common.Address, slot common.Hash, value common.Hash) {
	words, ok := s.storage[owner]
	if !ok {
		words = make(map[common.Hash]common.Hash)
		s.storage[owner] = words
	}
	words[slot] = value
}

func (s *DB) markDirty(owner common.Address, slot common.Hash) {
	slots, ok := s.dirty[owner]
	if !ok {
		slots = make(map[common.Hash]struct{})
		s.dirty[owner] = slots
	}
	slots[slot] = struct{}{}
}

// AddEvent appends ev to the event list of the running operation.
func (s *DB) AddEvent(ev types.Event) {
	s.journal.append(eventChange{})
	s.events = append(s.events, ev)
}

// Events returns the events accumulated since the last ResetEvents.
func (s *DB) Events() []types.Event {
	return s.events
}

// ResetEvents clears the event list between operations. Reverting a snapshot
// taken after the reset removes any events added since, so a failed operation
// never leaks events.
func (s *DB) ResetEvents() {
	s.events = nil
}

// Snapshot returns an identifier for the current revision of the state.
func (s *DB) Snapshot() int {
	id := s.nextRevisionId
	s.nextRevisionId++
	s.validRevisions = append(s.validRevisions, revision{id, s.journal.length()})
	return id
}

// RevertToSnapshot reverts all state changes made since the given revision.
func (s *DB) RevertToSnapshot(revid int) {
	// Find the snapshot in the stack of valid snapshots.
	idx := sort.Search(len(s.validRevisions), func(i int) bool {
		return s.validRevisions[i].id >= revid
	})
	if idx == len(s.validRevisions) || s.validRevisions[idx].id != revid {
		panic("revision id cannot be reverted")
	}
	snapshot := s.validRevisions[idx].journalIndex

	// Replay the journal to undo changes and remove invalidated snapshots
	s.journal.revert(s, snapshot)
	s.validRevisions = s.validRevisions[:idx]
}

// Commit flushes all dirty storage words to the backing store in one batch.
// Calling Commit on a state without a backing store is a no-op.
func (s *DB) Commit() error {
	if s.disk == nil {
		return nil
	}
	batch := s.disk.NewBatch()
	for owner, slots := range s.dirty {
		words := s.storage[owner]
		for slot := range slots {
			if err := rawdb.WriteStorageWord(batch, owner, slot, words[slot]); err != nil {
				return err
			}
		}
	}
	if err := batch.Write(); err != nil {
		return err
	}
	s.dirty = make(map[common.Address]map[common.Hash]struct{})
	return nil
}
