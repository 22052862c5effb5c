package rescue

import (
	"github.com/snrg-network/gsnrg/common"
	"github.com/snrg-network/gsnrg/core/state"
)

// Info returns the registry configuration and executor set.
func Info(db state.StateDB) RegistryInfo {
	count := getExecutorCount(db)
	executors := make([]common.Address, 0, count)
	for i := uint64(0); i < count; i++ {
		executors = append(executors, getExecutorAt(db, i))
	}
	return RegistryInfo{
		Admin:           getAdmin(db),
		Paused:          getPaused(db),
		MaxRescueAmount: getMaxRescueAmount(db),
		Executors:       executors,
	}
}

// Plan returns owner's rescue plan with a countdown clamped to zero.
func Plan(db state.StateDB, owner common.Address, now int64) (PlanInfo, error) {
	recovery := getPlanRecovery(db, owner)
	if recovery == (common.Address{}) {
		return PlanInfo{}, ErrNoPlan
	}
	eta := getPlanETA(db, owner)
	var remaining int64
	if eta != 0 && eta > now {
		remaining = eta - now
	}
	return PlanInfo{
		Owner:            owner,
		Recovery:         recovery,
		DelaySeconds:     getPlanDelay(db, owner),
		ETA:              eta,
		LastRescueTime:   getPlanLastRescueTime(db, owner),
		Armed:            eta != 0,
		RemainingSeconds: remaining,
	}, nil
}

// CanExecuteRescue reports whether owner's plan is armed and matured at now.
func CanExecuteRescue(db state.StateDB, owner common.Address, now int64) bool {
	if getPlanRecovery(db, owner) == (common.Address{}) {
		return false
	}
	eta := getPlanETA(db, owner)
	return eta != 0 && now >= eta
}

// IsExecutor reports whether addr is a registered executor.
func IsExecutor(db state.StateDB, addr common.Address) bool {
	return getExecutorListed(db, addr)
}
