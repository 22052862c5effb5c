package timelock

import (
	"fmt"

	"github.com/snrg-network/gsnrg/common"
	"github.com/snrg-network/gsnrg/core/state"
	"github.com/snrg-network/gsnrg/sysop"
)

func init() {
	sysop.DefaultRegistry.Register(&timelockHandler{})
}

// invokerFunc adapts a bare function to the CapabilityInvoker interface.
type invokerFunc func(db state.StateDB, target common.Address, payload []byte, now int64) error

func (f invokerFunc) Invoke(db state.StateDB, target common.Address, payload []byte, now int64) error {
	return f(db, target, payload, now)
}

// timelockHandler implements sysop.Handler for proposal queue operations.
type timelockHandler struct{}

func (h *timelockHandler) CanHandle(kind sysop.Kind) bool {
	switch kind {
	case sysop.KindTimelockInitialize,
		sysop.KindTimelockSchedule,
		sysop.KindTimelockExecute,
		sysop.KindTimelockCancel,
		sysop.KindTimelockUpdateDelay:
		return true
	}
	return false
}

func (h *timelockHandler) Handle(ctx *sysop.Context, op *sysop.Op) error {
	db := ctx.StateDB
	from := ctx.From

	switch op.Kind {
	case sysop.KindTimelockInitialize:
		var p sysop.TimelockInitializePayload
		if err := sysop.DecodePayload(op, &p); err != nil {
			return fmt.Errorf("timelock initialize: %w", err)
		}
		admin := from
		if p.Admin != "" {
			if !common.IsHexAddress(p.Admin) {
				return fmt.Errorf("timelock initialize: invalid admin address: %s", p.Admin)
			}
			admin = common.HexToAddress(p.Admin)
		}
		return Initialize(db, admin, p.MinDelaySeconds)

	case sysop.KindTimelockSchedule:
		var p sysop.SchedulePayload
		if err := sysop.DecodePayload(op, &p); err != nil {
			return fmt.Errorf("timelock schedule: %w", err)
		}
		if !common.IsHexAddress(p.Target) {
			return fmt.Errorf("timelock schedule: invalid target address: %s", p.Target)
		}
		return Schedule(db, from, common.HexToHash(p.ID), common.HexToAddress(p.Target), p.Payload, common.HexToHash(p.Predecessor), p.DelaySeconds, ctx.Now)

	case sysop.KindTimelockExecute:
		var p sysop.ProposalIDPayload
		if err := sysop.DecodePayload(op, &p); err != nil {
			return fmt.Errorf("timelock execute: %w", err)
		}
		var invoker CapabilityInvoker
		if ctx.Invoke != nil {
			invoker = invokerFunc(ctx.Invoke)
		}
		return Execute(db, common.HexToHash(p.ID), invoker, ctx.Now)

	case sysop.KindTimelockCancel:
		var p sysop.ProposalIDPayload
		if err := sysop.DecodePayload(op, &p); err != nil {
			return fmt.Errorf("timelock cancel: %w", err)
		}
		return Cancel(db, from, common.HexToHash(p.ID))

	case sysop.KindTimelockUpdateDelay:
		var p sysop.UpdateDelayPayload
		if err := sysop.DecodePayload(op, &p); err != nil {
			return fmt.Errorf("timelock update delay: %w", err)
		}
		return UpdateDelay(db, from, p.MinDelaySeconds)
	}
	return fmt.Errorf("timelock handler: unsupported operation %q", op.Kind)
}
