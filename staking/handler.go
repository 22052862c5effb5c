package staking

import (
	"fmt"

	"github.com/snrg-network/gsnrg/common"
	"github.com/snrg-network/gsnrg/sysop"
)

func init() {
	sysop.DefaultRegistry.Register(&stakingHandler{})
}

// stakingHandler implements sysop.Handler for reserve ledger operations.
type stakingHandler struct{}

func (h *stakingHandler) CanHandle(kind sysop.Kind) bool {
	switch kind {
	case sysop.KindStakingInitialize,
		sysop.KindStakingFundReserve,
		sysop.KindStakingTopUpReserve,
		sysop.KindStakingStake,
		sysop.KindStakingWithdraw,
		sysop.KindStakingWithdrawEarly,
		sysop.KindStakingEmergencyWithdraw,
		sysop.KindStakingPause,
		sysop.KindStakingUnpause:
		return true
	}
	return false
}

func (h *stakingHandler) Handle(ctx *sysop.Context, op *sysop.Op) error {
	db := ctx.StateDB
	from := ctx.From

	switch op.Kind {
	case sysop.KindStakingInitialize:
		var p sysop.StakingInitializePayload
		if err := sysop.DecodePayload(op, &p); err != nil {
			return fmt.Errorf("staking initialize: %w", err)
		}
		admin := from
		if p.Admin != "" {
			if !common.IsHexAddress(p.Admin) {
				return fmt.Errorf("staking initialize: invalid admin address: %s", p.Admin)
			}
			admin = common.HexToAddress(p.Admin)
		}
		if !common.IsHexAddress(p.Treasury) {
			return fmt.Errorf("staking initialize: invalid treasury address: %s", p.Treasury)
		}
		return Initialize(db, admin, common.HexToAddress(p.Treasury))

	case sysop.KindStakingFundReserve:
		var p sysop.FundReservePayload
		if err := sysop.DecodePayload(op, &p); err != nil {
			return fmt.Errorf("staking fund reserve: %w", err)
		}
		return FundReserve(db, from, p.Amount)

	case sysop.KindStakingTopUpReserve:
		var p sysop.FundReservePayload
		if err := sysop.DecodePayload(op, &p); err != nil {
			return fmt.Errorf("staking top up reserve: %w", err)
		}
		return TopUpReserve(db, from, p.Amount)

	case sysop.KindStakingStake:
		var p sysop.StakePayload
		if err := sysop.DecodePayload(op, &p); err != nil {
			return fmt.Errorf("staking stake: %w", err)
		}
		return Stake(db, from, p.Amount, p.DurationDays, ctx.Now)

	case sysop.KindStakingWithdraw:
		var p sysop.WithdrawPayload
		if err := sysop.DecodePayload(op, &p); err != nil {
			return fmt.Errorf("staking withdraw: %w", err)
		}
		return Withdraw(db, from, p.Index, ctx.Now)

	case sysop.KindStakingWithdrawEarly:
		var p sysop.WithdrawPayload
		if err := sysop.DecodePayload(op, &p); err != nil {
			return fmt.Errorf("staking withdraw early: %w", err)
		}
		return WithdrawEarly(db, from, p.Index, ctx.Now)

	case sysop.KindStakingEmergencyWithdraw:
		var p sysop.WithdrawPayload
		if err := sysop.DecodePayload(op, &p); err != nil {
			return fmt.Errorf("staking emergency withdraw: %w", err)
		}
		return EmergencyWithdraw(db, from, p.Index, ctx.Now)

	case sysop.KindStakingPause:
		return Pause(db, from)

	case sysop.KindStakingUnpause:
		return Unpause(db, from)
	}
	return fmt.Errorf("staking handler: unsupported operation %q", op.Kind)
}
