package swap

import (
	"github.com/snrg-network/gsnrg/common"
	"github.com/snrg-network/gsnrg/core/state"
	"github.com/snrg-network/gsnrg/params"
)

// Info returns the ledger state.
func Info(db state.StateDB) LedgerInfo {
	return LedgerInfo{
		Admin:          getAdmin(db),
		TotalBurned:    getTotalBurned(db),
		ProposedRoot:   getProposedRoot(db),
		ProposedAt:     getProposedAt(db),
		Finalized:      getFinalized(db),
		MerkleRoot:     getMerkleRoot(db),
		BurnCommitment: getBurnCommitment(db),
		FinalizedAt:    getFinalizedAt(db),
		Paused:         getPaused(db),
	}
}

// BurnedOf returns the cumulative burned amount recorded for burner.
func BurnedOf(db state.StateDB, burner common.Address) uint64 {
	return getBurnedOf(db, burner)
}

// CanFinalize reports whether Finalize would pass its timing and burn
// checks at now.
func CanFinalize(db state.StateDB, now int64) bool {
	if getProposedRoot(db) == (common.Hash{}) {
		return false
	}
	if getTotalBurned(db) == 0 {
		return false
	}
	return now >= getProposedAt(db)+params.SwapFinalizeDelaySeconds
}
