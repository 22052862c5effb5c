package rescue

import (
	"fmt"

	"github.com/snrg-network/gsnrg/common"
	"github.com/snrg-network/gsnrg/sysop"
)

func init() {
	sysop.DefaultRegistry.Register(&rescueHandler{})
}

// rescueHandler implements sysop.Handler for rescue registry operations.
type rescueHandler struct{}

func (h *rescueHandler) CanHandle(kind sysop.Kind) bool {
	switch kind {
	case sysop.KindRescueInitialize,
		sysop.KindRescueRegisterPlan,
		sysop.KindRescueInitiate,
		sysop.KindRescueCancel,
		sysop.KindRescueExecute,
		sysop.KindRescueAddExecutor,
		sysop.KindRescueRemoveExecutor,
		sysop.KindRescueSetMaxAmount,
		sysop.KindRescuePause,
		sysop.KindRescueUnpause:
		return true
	}
	return false
}

func (h *rescueHandler) Handle(ctx *sysop.Context, op *sysop.Op) error {
	db := ctx.StateDB
	from := ctx.From

	switch op.Kind {
	case sysop.KindRescueInitialize:
		var p sysop.RescueInitializePayload
		if err := sysop.DecodePayload(op, &p); err != nil {
			return fmt.Errorf("rescue initialize: %w", err)
		}
		admin := from
		if p.Admin != "" {
			if !common.IsHexAddress(p.Admin) {
				return fmt.Errorf("rescue initialize: invalid admin address: %s", p.Admin)
			}
			admin = common.HexToAddress(p.Admin)
		}
		return Initialize(db, admin)

	case sysop.KindRescueRegisterPlan:
		var p sysop.RegisterPlanPayload
		if err := sysop.DecodePayload(op, &p); err != nil {
			return fmt.Errorf("rescue register plan: %w", err)
		}
		if !common.IsHexAddress(p.Recovery) {
			return fmt.Errorf("rescue register plan: invalid recovery address: %s", p.Recovery)
		}
		return RegisterPlan(db, from, common.HexToAddress(p.Recovery), p.DelaySeconds)

	case sysop.KindRescueInitiate:
		return InitiateRescue(db, from, ctx.Now)

	case sysop.KindRescueCancel:
		return CancelRescue(db, from)

	case sysop.KindRescueExecute:
		var p sysop.RescueExecutePayload
		if err := sysop.DecodePayload(op, &p); err != nil {
			return fmt.Errorf("rescue execute: %w", err)
		}
		if !common.IsHexAddress(p.Owner) {
			return fmt.Errorf("rescue execute: invalid owner address: %s", p.Owner)
		}
		return ExecuteRescue(db, from, common.HexToAddress(p.Owner), p.Amount, ctx.Now)

	case sysop.KindRescueAddExecutor:
		var p sysop.ExecutorPayload
		if err := sysop.DecodePayload(op, &p); err != nil {
			return fmt.Errorf("rescue add executor: %w", err)
		}
		if !common.IsHexAddress(p.Executor) {
			return fmt.Errorf("rescue add executor: invalid executor address: %s", p.Executor)
		}
		return AddExecutor(db, from, common.HexToAddress(p.Executor))

	case sysop.KindRescueRemoveExecutor:
		var p sysop.ExecutorPayload
		if err := sysop.DecodePayload(op, &p); err != nil {
			return fmt.Errorf("rescue remove executor: %w", err)
		}
		if !common.IsHexAddress(p.Executor) {
			return fmt.Errorf("rescue remove executor: invalid executor address: %s", p.Executor)
		}
		return RemoveExecutor(db, from, common.HexToAddress(p.Executor))

	case sysop.KindRescueSetMaxAmount:
		var p sysop.SetMaxRescuePayload
		if err := sysop.DecodePayload(op, &p); err != nil {
			return fmt.Errorf("rescue set max amount: %w", err)
		}
		return SetMaxRescueAmount(db, from, p.Amount)

	case sysop.KindRescuePause:
		return Pause(db, from)

	case sysop.KindRescueUnpause:
		return Unpause(db, from)
	}
	return fmt.Errorf("rescue handler: unsupported operation %q", op.Kind)
}
