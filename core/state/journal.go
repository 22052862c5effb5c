package state

import (
	"github.com/snrg-network/gsnrg/common"
)

// journalEntry is a modification entry in the state journal that can be
// reverted on demand.
type journalEntry interface {
	// revert undoes the changes introduced by this journal entry.
	revert(*DB)
}

// journal contains the list of state modifications applied since the last
// commit, tracked so they can be reverted when an operation fails.
type journal struct {
	entries []journalEntry
}

func newJournal() *journal {
	return &journal{}
}

// append inserts a new modification entry into the journal.
func (j *journal) append(entry journalEntry) {
	j.entries = append(j.entries, entry)
}

// revert undoes a batch of journaled modifications, down to the given
// snapshot position.
func (j *journal) revert(statedb *DB, snapshot int) {
	for i := len(j.entries) - 1; i >= snapshot; i-- {
		j.entries[i].revert(statedb)
	}
	j.entries = j.entries[:snapshot]
}

// length returns the current number of entries in the journal.
func (j *journal) length() int {
	return len(j.entries)
}

type (
	// storageChange records the previous value of a mutated storage word.
	storageChange struct {
		owner common.Address
		slot  common.Hash
		prev  common.Hash
	}

	// eventChange records that an event was appended.
	eventChange struct{}
)

func (ch storageChange) revert(s *DB) {
	s.setStateUnjournaled(ch.owner, ch.slot, ch.prev)
}

func (ch eventChange) revert(s *DB) {
	s.events = s.events[:len(s.events)-1]
}
