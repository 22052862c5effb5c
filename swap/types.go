package swap

import "github.com/snrg-network/gsnrg/common"

// LedgerInfo is the view of the burn-receipt ledger state.
type LedgerInfo struct {
	Admin          common.Address `json:"admin"`
	TotalBurned    uint64         `json:"total_burned"`
	ProposedRoot   common.Hash    `json:"proposed_root"`
	ProposedAt     int64          `json:"proposed_at"`
	Finalized      bool           `json:"finalized"`
	MerkleRoot     common.Hash    `json:"merkle_root"`
	BurnCommitment common.Hash    `json:"burn_commitment"`
	FinalizedAt    int64          `json:"finalized_at"`
	Paused         bool           `json:"paused"`
}
