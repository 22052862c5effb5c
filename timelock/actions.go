// Package timelock implements the delayed proposal queue. The admin
// schedules an opaque capability call behind a minimum delay; once matured,
// anyone may execute it. Proposal ids are caller supplied and single use, so
// the queue doubles as a public, replay-proof record of pending admin
// actions.
package timelock

import (
	"github.com/snrg-network/gsnrg/common"
	"github.com/snrg-network/gsnrg/core/state"
	"github.com/snrg-network/gsnrg/params"
)

// CapabilityInvoker executes a matured proposal's payload against its
// target. The processor wires this to operation re-dispatch with the queue
// pool as caller; a nil invoker marks proposals executed without side
// effects.
type CapabilityInvoker interface {
	Invoke(db state.StateDB, target common.Address, payload []byte, now int64) error
}

// Initialize configures the proposal queue.
func Initialize(db state.StateDB, admin common.Address, minDelaySeconds int64) error {
	if getAdmin(db) != (common.Address{}) {
		return ErrAlreadyInitialized
	}
	if admin == (common.Address{}) {
		return ErrZeroAddress
	}
	if minDelaySeconds < params.TimelockMinDelayFloorSeconds || minDelaySeconds > params.TimelockMaxDelaySeconds {
		return ErrInvalidDelay
	}
	setAdmin(db, admin)
	setMinDelay(db, minDelaySeconds)
	db.AddEvent(EventInitialized{Admin: admin, MinDelaySeconds: minDelaySeconds})
	return nil
}

// Schedule queues a proposal under a caller-supplied id. Ids are never
// reusable, even after execution or cancellation. A predecessor, when
// given, must already be executed, which lets multi-step changes encode
// their ordering.
func Schedule(db state.StateDB, from common.Address, id common.Hash, target common.Address, payload []byte, predecessor common.Hash, delaySeconds int64, now int64) error {
	if err := requireAdmin(db, from); err != nil {
		return err
	}
	if id == (common.Hash{}) {
		return ErrZeroID
	}
	if target == (common.Address{}) {
		return ErrZeroAddress
	}
	if delaySeconds < getMinDelay(db) {
		return ErrDelayTooShort
	}
	if getProposalScheduled(db, id) {
		return ErrAlreadyScheduled
	}
	if predecessor != (common.Hash{}) && !getProposalExecuted(db, predecessor) {
		return ErrPredecessorNotExecuted
	}

	eta := now + delaySeconds
	setProposalScheduled(db, id)
	setProposalTarget(db, id, target)
	setProposalPayload(db, id, payload)
	setProposalPredecessor(db, id, predecessor)
	setProposalETA(db, id, eta)
	db.AddEvent(EventScheduled{ID: id, Target: target, Predecessor: predecessor, ETA: eta})
	return nil
}

// Execute runs a matured proposal. Anyone may call; the only gates are the
// proposal's own state and clock. The executed flag is set before the
// capability is invoked so a re-entrant execute of the same id fails.
func Execute(db state.StateDB, id common.Hash, invoker CapabilityInvoker, now int64) error {
	if getAdmin(db) == (common.Address{}) {
		return ErrNotInitialized
	}
	if !getProposalScheduled(db, id) {
		return ErrNotScheduled
	}
	if getProposalCancelled(db, id) {
		return ErrProposalCancelled
	}
	if getProposalExecuted(db, id) {
		return ErrAlreadyExecuted
	}
	if now < getProposalETA(db, id) {
		return ErrNotReady
	}

	setProposalExecuted(db, id)
	if invoker != nil {
		if err := invoker.Invoke(db, getProposalTarget(db, id), getProposalPayload(db, id), now); err != nil {
			return err
		}
	}
	db.AddEvent(EventExecuted{ID: id})
	return nil
}

// Cancel terminates a scheduled proposal. Cancellation is terminal; the id
// cannot be rescheduled.
func Cancel(db state.StateDB, from common.Address, id common.Hash) error {
	if err := requireAdmin(db, from); err != nil {
		return err
	}
	if !getProposalScheduled(db, id) {
		return ErrNotScheduled
	}
	if getProposalExecuted(db, id) {
		return ErrAlreadyExecuted
	}
	if getProposalCancelled(db, id) {
		return ErrAlreadyCancelled
	}
	setProposalCancelled(db, id)
	db.AddEvent(EventCancelled{ID: id})
	return nil
}

// UpdateDelay changes the minimum scheduling delay, within the same bounds
// initialization enforces. Already scheduled proposals keep their eta.
func UpdateDelay(db state.StateDB, from common.Address, minDelaySeconds int64) error {
	if err := requireAdmin(db, from); err != nil {
		return err
	}
	if minDelaySeconds < params.TimelockMinDelayFloorSeconds || minDelaySeconds > params.TimelockMaxDelaySeconds {
		return ErrInvalidDelay
	}
	setMinDelay(db, minDelaySeconds)
	db.AddEvent(EventDelayUpdated{MinDelaySeconds: minDelaySeconds})
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
