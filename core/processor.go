// Package core assembles the custody engines into an operation processor.
// Importing core registers every engine's operation handlers; the processor
// decodes envelopes, stamps the clock, dispatches, and turns the outcome
// into a receipt. Failed operations are reverted completely before the
// receipt is built.
package core

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/jonboulle/clockwork"

	"github.com/snrg-network/gsnrg/common"
	"github.com/snrg-network/gsnrg/core/state"
	"github.com/snrg-network/gsnrg/core/types"
	"github.com/snrg-network/gsnrg/metrics"
	"github.com/snrg-network/gsnrg/params"
	"github.com/snrg-network/gsnrg/staking"
	"github.com/snrg-network/gsnrg/swap"
	"github.com/snrg-network/gsnrg/sysop"
)

// ErrTargetMismatch is returned when a proposal payload decodes to an
// operation kind owned by a different pool than the proposal's target.
var ErrTargetMismatch = errors.New("core: proposal target does not own payload kind")

// Processor applies operations against a single custody state.
type Processor struct {
	db    *state.DB
	clock clockwork.Clock
	log   *slog.Logger
}

// NewProcessor creates a processor over db. A nil clock falls back to the
// real clock; a nil logger discards.
func NewProcessor(db *state.DB, clock clockwork.Clock, logger *slog.Logger) *Processor {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Processor{db: db, clock: clock, log: logger}
}

// Apply executes one operation and returns its receipt. The clock is read
// once; every time check inside the operation sees that instant. A rejected
// operation is rolled back to the pre-operation state and reported in a
// failed receipt with a nil error. The returned error is reserved for
// infrastructure faults such as a failed store commit.
func (p *Processor) Apply(from common.Address, op *sysop.Op) (*types.Receipt, error) {
	now := p.clock.Now().Unix()
	ctx := &sysop.Context{From: from, Now: now, StateDB: p.db, Invoke: p.invokeProposal}

	p.db.ResetEvents()
	snap := p.db.Snapshot()
	if err := sysop.Dispatch(ctx, op); err != nil {
		p.db.RevertToSnapshot(snap)
		metrics.OperationsFailed.WithLabelValues(string(op.Kind)).Inc()
		p.log.Warn("operation rejected", "kind", op.Kind, "from", from, "err", err)
		return &types.Receipt{
			Kind:   string(op.Kind),
			From:   from,
			Time:   now,
			Status: types.ReceiptStatusFailed,
			Err:    err.Error(),
		}, nil
	}

	events := append([]types.Event(nil), p.db.Events()...)
	if err := p.db.Commit(); err != nil {
		return nil, fmt.Errorf("commit operation %q: %w", op.Kind, err)
	}
	p.observe(op.Kind)
	p.log.Info("operation applied", "kind", op.Kind, "from", from, "events", len(events))
	return &types.Receipt{
		Kind:   string(op.Kind),
		From:   from,
		Time:   now,
		Status: types.ReceiptStatusSuccessful,
		Events: events,
	}, nil
}

// ApplyRaw decodes a JSON operation envelope and applies it.
func (p *Processor) ApplyRaw(from common.Address, data []byte) (*types.Receipt, error) {
	op, err := sysop.Decode(data)
	if err != nil {
		return nil, err
	}
	return p.Apply(from, op)
}

// invokeProposal runs a matured timelock proposal. The payload is an
// operation envelope executed with the timelock pool as caller, which is how
// engines administered by the queue receive their delayed admin actions. The
// proposal's target must own the payload's kind. Invoke is passed through,
// so a proposal may itself execute another matured proposal; the executed
// flag set before invocation bounds any chain by the scheduled set.
func (p *Processor) invokeProposal(db state.StateDB, target common.Address, payload []byte, now int64) error {
	op, err := sysop.Decode(payload)
	if err != nil {
		return err
	}
	pool, ok := kindPool(op.Kind)
	if !ok || pool != target {
		return fmt.Errorf("%w: kind %q, target %s", ErrTargetMismatch, op.Kind, target)
	}
	ctx := &sysop.Context{From: params.TimelockAddress, Now: now, StateDB: db, Invoke: p.invokeProposal}
	return sysop.Dispatch(ctx, op)
}

// observe updates the prometheus collectors after a committed operation.
func (p *Processor) observe(kind sysop.Kind) {
	metrics.OperationsApplied.WithLabelValues(string(kind)).Inc()
	if kind == sysop.KindPresalePurchase {
		metrics.PresalePurchases.Inc()
	}
	reserve := staking.Info(p.db)
	metrics.StakingRewardReserve.Set(float64(reserve.RewardReserve))
	metrics.StakingPromisedRewards.Set(float64(reserve.PromisedRewards))
	metrics.SwapTotalBurned.Set(float64(swap.Info(p.db).TotalBurned))
}

// kindPool maps an operation kind to the pool address owning it.
func kindPool(kind sysop.Kind) (common.Address, bool) {
	name := string(kind)
	i := strings.IndexByte(name, '_')
	if i < 0 {
		return common.Address{}, false
	}
	switch name[:i] {
	case "token":
		return params.TokenAddress, true
	case "staking":
		return params.StakingAddress, true
	case "presale":
		return params.PresaleAddress, true
	case "swap":
		return params.SwapAddress, true
	case "rescue":
		return params.RescueAddress, true
	case "timelock":
		return params.TimelockAddress, true
	}
	return common.Address{}, false
}
