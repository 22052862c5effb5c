// Package swap implements the burn-receipt ledger: holders burn sale tokens
// irreversibly, the ledger accumulates per-burner receipts, and the admin
// anchors a merkle distribution root over the receipts behind a finalize
// timelock. The finalized commitment binds root, total, time and pool so the
// off-chain distribution can be validated against exactly one ledger state.
package swap

import (
	"github.com/snrg-network/gsnrg/common"
	"github.com/snrg-network/gsnrg/common/math"
	"github.com/snrg-network/gsnrg/core/state"
	"github.com/snrg-network/gsnrg/crypto"
	"github.com/snrg-network/gsnrg/params"
	"github.com/snrg-network/gsnrg/token"
)

// Initialize configures the burn-receipt ledger.
func Initialize(db state.StateDB, admin common.Address) error {
	if getAdmin(db) != (common.Address{}) {
		return ErrAlreadyInitialized
	}
	if admin == (common.Address{}) {
		return ErrZeroAddress
	}
	setAdmin(db, admin)
	db.AddEvent(EventInitialized{Admin: admin})
	return nil
}

// BurnForReceipt burns amount of the sale asset from the caller and records
// the receipt. Burns are refused once a distribution is finalized; reopening
// resumes them.
func BurnForReceipt(db state.StateDB, from common.Address, amount uint64) error {
	if getAdmin(db) == (common.Address{}) {
		return ErrNotInitialized
	}
	if getPaused(db) {
		return ErrPaused
	}
	if getFinalized(db) {
		return ErrAlreadyFinalized
	}
	if amount == 0 {
		return ErrZeroAmount
	}

	snrg := token.SNRGAsset(db)
	before := token.BalanceOf(db, snrg, from)
	if err := token.Burn(db, snrg, token.OwnerAuthority(from), from, amount); err != nil {
		return err
	}
	if before-token.BalanceOf(db, snrg, from) != amount {
		return ErrInexactBurn
	}

	total, err := math.CheckedAdd(getTotalBurned(db), amount)
	if err != nil {
		return err
	}
	personal, err := math.CheckedAdd(getBurnedOf(db, from), amount)
	if err != nil {
		return err
	}
	setTotalBurned(db, total)
	setBurnedOf(db, from, personal)
	db.AddEvent(EventBurned{Burner: from, Amount: amount, TotalBurned: total})
	return nil
}

// ProposeRoot records a candidate distribution root. Only one proposal may
// be pending, and a finalized ledger can only be corrected through Reopen.
func ProposeRoot(db state.StateDB, from common.Address, root common.Hash, now int64) error {
	if err := requireAdmin(db, from); err != nil {
		return err
	}
	if getFinalized(db) {
		return ErrAlreadyFinalized
	}
	if root == (common.Hash{}) {
		return ErrZeroRoot
	}
	if getProposedRoot(db) != (common.Hash{}) {
		return ErrPendingRootExists
	}
	setProposedRoot(db, root)
	setProposedAt(db, now)
	db.AddEvent(EventRootProposed{Root: root, FinalizableAt: now + params.SwapFinalizeDelaySeconds})
	return nil
}

// CancelProposedRoot withdraws the pending proposal.
func CancelProposedRoot(db state.StateDB, from common.Address) error {
	if err := requireAdmin(db, from); err != nil {
		return err
	}
	root := getProposedRoot(db)
	if root == (common.Hash{}) {
		return ErrNoPendingRoot
	}
	setProposedRoot(db, common.Hash{})
	setProposedAt(db, 0)
	db.AddEvent(EventRootCancelled{Root: root})
	return nil
}

// Finalize anchors the pending root once the proposal delay has elapsed and
// at least one burn exists. The commitment hash binds the root, the burned
// total, the finalization time and this pool, and is the reference record
// for validating distribution claims off-chain.
func Finalize(db state.StateDB, from common.Address, now int64) error {
	if err := requireAdmin(db, from); err != nil {
		return err
	}
	root := getProposedRoot(db)
	if root == (common.Hash{}) {
		return ErrNoPendingRoot
	}
	total := getTotalBurned(db)
	if total == 0 {
		return ErrNothingBurned
	}
	if now < getProposedAt(db)+params.SwapFinalizeDelaySeconds {
		return ErrFinalizeTooEarly
	}

	commitment := common.BytesToHash(crypto.Keccak256(
		root.Bytes(),
		le64(total),
		le64(uint64(now)),
		params.SwapAddress.Bytes(),
	))
	setMerkleRoot(db, root)
	setBurnCommitment(db, commitment)
	setFinalizedAt(db, now)
	setFinalized(db, true)
	setProposedRoot(db, common.Hash{})
	setProposedAt(db, 0)
	db.AddEvent(EventFinalized{Root: root, TotalBurned: total, Commitment: commitment, FinalizedAt: now})
	return nil
}

// Reopen discards a finalized distribution and starts over with a new
// proposed root. The cooldown keeps a correction from landing before
// claimants have had time to notice the first anchor.
func Reopen(db state.StateDB, from common.Address, newRoot common.Hash, now int64) error {
	if err := requireAdmin(db, from); err != nil {
		return err
	}
	if !getFinalized(db) {
		return ErrNotFinalized
	}
	if newRoot == (common.Hash{}) {
		return ErrZeroRoot
	}
	if now < getFinalizedAt(db)+params.SwapReopenCooldownSeconds {
		return ErrReopenTooEarly
	}
	setFinalized(db, false)
	setMerkleRoot(db, common.Hash{})
	setBurnCommitment(db, common.Hash{})
	setProposedRoot(db, newRoot)
	setProposedAt(db, now)
	db.AddEvent(EventReopened{NewRoot: newRoot, FinalizableAt: now + params.SwapFinalizeDelaySeconds})
	return nil
}

// Pause halts burns. Root administration stays available.
func Pause(db state.StateDB, from common.Address) error {
	return setPauseState(db, from, true)
}

// Unpause resumes burns.
func Unpause(db state.StateDB, from common.Address) error {
	return setPauseState(db, from, false)
}

func setPauseState(db state.StateDB, from common.Address, paused bool) error {
	if err := requireAdmin(db, from); err != nil {
		return err
	}
	if getPaused(db) == paused {
		return ErrSameState
	}
	setPaused(db, paused)
	db.AddEvent(EventPauseSet{Paused: paused})
	return nil
}

func requireAdmin(db state.StateDB, from common.Address) error {
	admin := getAdmin(db)
	if admin == (common.Address{}) {
		return ErrNotInitialized
	}
	if from != admin {
		return ErrUnauthorized
	}
	return nil
}
