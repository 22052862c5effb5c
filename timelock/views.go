package timelock

import (
	"github.com/snrg-network/gsnrg/common"
	"github.com/snrg-network/gsnrg/core/state"
)

// Info returns the queue configuration.
func Info(db state.StateDB) QueueInfo {
	return QueueInfo{
		Admin:           getAdmin(db),
		MinDelaySeconds: getMinDelay(db),
	}
}

// Proposal returns one queued proposal.
func Proposal(db state.StateDB, id common.Hash, now int64) (ProposalRecord, error) {
	if !getProposalScheduled(db, id) {
		return ProposalRecord{}, ErrNotScheduled
	}
	eta := getProposalETA(db, id)
	st := StateScheduled
	switch {
	case getProposalCancelled(db, id):
		st = StateCancelled
	case getProposalExecuted(db, id):
		st = StateExecuted
	case now >= eta:
		st = StateReady
	}
	return ProposalRecord{
		ID:          id,
		Target:      getProposalTarget(db, id),
		Payload:     getProposalPayload(db, id),
		Predecessor: getProposalPredecessor(db, id),
		ETA:         eta,
		State:       st,
	}, nil
}

// IsReady reports whether id is scheduled, live and matured at now.
func IsReady(db state.StateDB, id common.Hash, now int64) bool {
	if !getProposalScheduled(db, id) {
		return false
	}
	if getProposalCancelled(db, id) || getProposalExecuted(db, id) {
		return false
	}
	return now >= getProposalETA(db, id)
}
