package rescue

import (
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/require"

	"github.com/snrg-network/gsnrg/common"
	"github.com/snrg-network/gsnrg/core/state"
	"github.com/snrg-network/gsnrg/params"
	"github.com/snrg-network/gsnrg/token"
)

var (
	regAdmin    = common.HexToAddress("0x00000000000000000000000000000000000aaaa1")
	regTreasury = common.HexToAddress("0x00000000000000000000000000000000000aaaa2")
	victim      = common.HexToAddress("0x1111111111111111111111111111111111111111")
	recoverer   = common.HexToAddress("0x2222222222222222222222222222222222222222")
	helper      = common.HexToAddress("0x3333333333333333333333333333333333333333")
	stranger    = common.HexToAddress("0x4444444444444444444444444444444444444444")
)

func newTestRegistry(t *testing.T) state.StateDB {
	t.Helper()
	db := state.New()
	if err := token.Configure(db, params.TokenAddress, regTreasury, regAdmin); err != nil {
		t.Fatalf("configure token: %v", err)
	}
	if err := token.SetEndpoint(db, token.EndpointRescue, params.RescueAddress); err != nil {
		t.Fatalf("set endpoint: %v", err)
	}
	if err := token.Mint(db, params.TokenAddress, victim, 1_000_000); err != nil {
		t.Fatalf("mint: %v", err)
	}
	if err := Initialize(db, regAdmin); err != nil {
		t.Fatalf("initialize registry: %v", err)
	}
	return db
}

func TestInitializeOnce(t *testing.T) {
	db := newTestRegistry(t)
	if err := Initialize(db, regAdmin); err != ErrAlreadyInitialized {
		t.Fatalf("second initialize: have %v, want %v", err, ErrAlreadyInitialized)
	}
	if info := Info(db); info.Admin != regAdmin || info.Paused || info.MaxRescueAmount != 0 {
		t.Fatalf("unexpected info %+v", info)
	}
}

func TestRegisterPlanRules(t *testing.T) {
	db := newTestRegistry(t)

	fresh := state.New()
	if err := RegisterPlan(fresh, victim, recoverer, params.RescueMinDelaySeconds); err != ErrNotInitialized {
		t.Fatalf("uninitialized: have %v, want %v", err, ErrNotInitialized)
	}

	if err := RegisterPlan(db, victim, common.Address{}, params.RescueMinDelaySeconds); err != ErrZeroAddress {
		t.Fatalf("zero recovery: have %v, want %v", err, ErrZeroAddress)
	}
	if err := RegisterPlan(db, victim, victim, params.RescueMinDelaySeconds); err != ErrRecoveryIsOwner {
		t.Fatalf("self recovery: have %v, want %v", err, ErrRecoveryIsOwner)
	}
	if err := RegisterPlan(db, victim, recoverer, params.RescueMinDelaySeconds-1); err != ErrInvalidDelay {
		t.Fatalf("delay below floor: have %v, want %v", err, ErrInvalidDelay)
	}
	if err := RegisterPlan(db, victim, recoverer, params.RescueMaxDelaySeconds+1); err != ErrInvalidDelay {
		t.Fatalf("delay above cap: have %v, want %v", err, ErrInvalidDelay)
	}

	if err := RegisterPlan(db, victim, recoverer, params.RescueMinDelaySeconds); err != nil {
		t.Fatalf("register failed: %v", err)
	}
	plan, err := Plan(db, victim, 0)
	if err != nil {
		t.Fatalf("plan view: %v", err)
	}
	if plan.Recovery != recoverer || plan.DelaySeconds != params.RescueMinDelaySeconds || plan.Armed {
		t.Fatalf("unexpected plan %+v", plan)
	}

	// A disarmed plan may be reshaped.
	if err := RegisterPlan(db, victim, helper, params.RescueMaxDelaySeconds); err != nil {
		t.Fatalf("re-register failed: %v", err)
	}
	plan, _ = Plan(db, victim, 0)
	if plan.Recovery != helper || plan.DelaySeconds != params.RescueMaxDelaySeconds {
		t.Fatalf("plan not reshaped: %+v", plan)
	}

	// An armed plan is frozen.
	if err := InitiateRescue(db, victim, 1_700_000_000); err != nil {
		t.Fatalf("initiate failed: %v", err)
	}
	if err := RegisterPlan(db, victim, recoverer, params.RescueMinDelaySeconds); err != ErrAlreadyArmed {
		t.Fatalf("re-register while armed: have %v, want %v", err, ErrAlreadyArmed)
	}
}

func TestInitiateRules(t *testing.T) {
	db := newTestRegistry(t)
	now := int64(1_700_000_000)

	if err := InitiateRescue(db, victim, now); err != ErrNoPlan {
		t.Fatalf("no plan: have %v, want %v", err, ErrNoPlan)
	}

	delay := int64(30 * params.SecondsPerDay)
	if err := RegisterPlan(db, victim, recoverer, delay); err != nil {
		t.Fatalf("register failed: %v", err)
	}
	if err := InitiateRescue(db, victim, now); err != nil {
		t.Fatalf("initiate failed: %v", err)
	}
	plan, _ := Plan(db, victim, now)
	if !plan.Armed || plan.ETA != now+delay || plan.RemainingSeconds != delay {
		t.Fatalf("unexpected armed plan %+v", plan)
	}
	if err := InitiateRescue(db, victim, now); err != ErrAlreadyArmed {
		t.Fatalf("double initiate: have %v, want %v", err, ErrAlreadyArmed)
	}
}

func TestCancelReleasesCooldown(t *testing.T) {
	db := newTestRegistry(t)
	now := int64(1_700_000_000)

	require.NoError(t, RegisterPlan(db, victim, recoverer, params.RescueMinDelaySeconds))
	require.ErrorIs(t, CancelRescue(db, victim), ErrNotArmed)

	require.NoError(t, InitiateRescue(db, victim, now))
	require.NoError(t, CancelRescue(db, victim))

	plan, err := Plan(db, victim, now)
	require.NoError(t, err)
	require.False(t, plan.Armed)
	require.Zero(t, plan.ETA)
	require.Zero(t, plan.LastRescueTime)

	// Cancelling released the initiation cooldown; re-arming in the same
	// second works.
	require.NoError(t, InitiateRescue(db, victim, now))
}

func TestInitiationCooldownAfterExecution(t *testing.T) {
	db := newTestRegistry(t)
	clk := clockwork.NewFakeClockAt(time.Unix(1_700_000_000, 0))
	delay := int64(params.RescueMinDelaySeconds)

	require.NoError(t, token.Approve(db, params.TokenAddress, victim, params.RescueAddress, 500_000))
	require.NoError(t, RegisterPlan(db, victim, recoverer, delay))
	require.NoError(t, InitiateRescue(db, victim, clk.Now().Unix()))

	clk.Advance(time.Duration(delay) * time.Second)
	require.NoError(t, ExecuteRescue(db, victim, victim, 100_000, clk.Now().Unix()))

	// Execution disarms but does not release the cooldown.
	require.ErrorIs(t, InitiateRescue(db, victim, clk.Now().Unix()), ErrInitiationCooldown)

	clk.Advance(time.Duration(params.RescueInitiationCooldownSeconds-delay) * time.Second)
	require.NoError(t, InitiateRescue(db, victim, clk.Now().Unix()))
}

func TestExecuteRescue(t *testing.T) {
	db := newTestRegistry(t)
	clk := clockwork.NewFakeClockAt(time.Unix(1_700_000_000, 0))
	delay := int64(params.RescueMinDelaySeconds)

	require.NoError(t, token.Approve(db, params.TokenAddress, victim, params.RescueAddress, 600_000))
	require.NoError(t, RegisterPlan(db, victim, recoverer, delay))

	now := clk.Now().Unix()
	require.ErrorIs(t, ExecuteRescue(db, victim, victim, 100_000, now), ErrNotArmed)
	require.NoError(t, InitiateRescue(db, victim, now))
	require.False(t, CanExecuteRescue(db, victim, now))

	clk.Advance(time.Duration(delay)*time.Second - time.Second)
	now = clk.Now().Unix()
	require.ErrorIs(t, ExecuteRescue(db, victim, victim, 100_000, now), ErrNotReady)

	clk.Advance(time.Second)
	now = clk.Now().Unix()
	require.True(t, CanExecuteRescue(db, victim, now))
	require.ErrorIs(t, ExecuteRescue(db, stranger, victim, 100_000, now), ErrUnauthorized)
	require.ErrorIs(t, ExecuteRescue(db, victim, victim, 0, now), ErrZeroAmount)
	require.ErrorIs(t, ExecuteRescue(db, victim, stranger, 100_000, now), ErrNoPlan)

	require.NoError(t, AddExecutor(db, regAdmin, helper))
	require.NoError(t, ExecuteRescue(db, helper, victim, 250_000, now))

	require.Equal(t, uint64(250_000), token.BalanceOf(db, params.TokenAddress, recoverer))
	require.Equal(t, uint64(750_000), token.BalanceOf(db, params.TokenAddress, victim))
	require.Equal(t, uint64(350_000), token.Allowance(db, params.TokenAddress, victim, params.RescueAddress))

	plan, err := Plan(db, victim, now)
	require.NoError(t, err)
	require.False(t, plan.Armed, "plan must disarm on execution")
	require.ErrorIs(t, ExecuteRescue(db, helper, victim, 1, now), ErrNotArmed)
}

func TestExecuteNeedsAllowance(t *testing.T) {
	db := newTestRegistry(t)
	now := int64(1_700_000_000)
	delay := int64(params.RescueMinDelaySeconds)

	if err := RegisterPlan(db, victim, recoverer, delay); err != nil {
		t.Fatalf("register failed: %v", err)
	}
	if err := InitiateRescue(db, victim, now); err != nil {
		t.Fatalf("initiate failed: %v", err)
	}

	// No allowance was delegated to the registry pool.
	err := ExecuteRescue(db, victim, victim, 100_000, now+delay)
	if err != token.ErrInsufficientAllowance {
		t.Fatalf("execute without allowance: have %v, want %v", err, token.ErrInsufficientAllowance)
	}
}

func TestRescueCeiling(t *testing.T) {
	db := newTestRegistry(t)
	now := int64(1_700_000_000)
	delay := int64(params.RescueMinDelaySeconds)

	if err := SetMaxRescueAmount(db, stranger, 100); err != ErrUnauthorized {
		t.Fatalf("unauthorized ceiling: have %v, want %v", err, ErrUnauthorized)
	}
	if err := SetMaxRescueAmount(db, regAdmin, 200_000); err != nil {
		t.Fatalf("set ceiling: %v", err)
	}

	if err := token.Approve(db, params.TokenAddress, victim, params.RescueAddress, 600_000); err != nil {
		t.Fatalf("approve failed: %v", err)
	}
	if err := RegisterPlan(db, victim, recoverer, delay); err != nil {
		t.Fatalf("register failed: %v", err)
	}
	if err := InitiateRescue(db, victim, now); err != nil {
		t.Fatalf("initiate failed: %v", err)
	}

	matured := now + delay
	if err := ExecuteRescue(db, victim, victim, 200_001, matured); err != ErrAboveCeiling {
		t.Fatalf("above ceiling: have %v, want %v", err, ErrAboveCeiling)
	}
	if err := ExecuteRescue(db, victim, victim, 200_000, matured); err != nil {
		t.Fatalf("at ceiling: %v", err)
	}

	// Zero removes the ceiling.
	if err := SetMaxRescueAmount(db, regAdmin, 0); err != nil {
		t.Fatalf("clear ceiling: %v", err)
	}
	if Info(db).MaxRescueAmount != 0 {
		t.Fatal("ceiling not cleared")
	}
}

func TestExecutorSet(t *testing.T) {
	db := newTestRegistry(t)

	if err := AddExecutor(db, stranger, helper); err != ErrUnauthorized {
		t.Fatalf("unauthorized add: have %v, want %v", err, ErrUnauthorized)
	}
	if err := AddExecutor(db, regAdmin, common.Address{}); err != ErrZeroAddress {
		t.Fatalf("zero executor: have %v, want %v", err, ErrZeroAddress)
	}
	if err := AddExecutor(db, regAdmin, helper); err != nil {
		t.Fatalf("add executor: %v", err)
	}
	if err := AddExecutor(db, regAdmin, helper); err != ErrExecutorExists {
		t.Fatalf("duplicate add: have %v, want %v", err, ErrExecutorExists)
	}
	if !IsExecutor(db, helper) {
		t.Fatal("executor not listed")
	}

	var extra []common.Address
	for i := byte(0); i < params.MaxRescueExecutors-1; i++ {
		addr := common.BytesToAddress([]byte{0xee, i + 1})
		extra = append(extra, addr)
		if err := AddExecutor(db, regAdmin, addr); err != nil {
			t.Fatalf("add executor %d: %v", i, err)
		}
	}
	if err := AddExecutor(db, regAdmin, stranger); err != ErrExecutorListFull {
		t.Fatalf("list overflow: have %v, want %v", err, ErrExecutorListFull)
	}

	if err := RemoveExecutor(db, regAdmin, stranger); err != ErrExecutorNotFound {
		t.Fatalf("remove non-member: have %v, want %v", err, ErrExecutorNotFound)
	}
	if err := RemoveExecutor(db, regAdmin, helper); err != nil {
		t.Fatalf("remove executor: %v", err)
	}
	if IsExecutor(db, helper) {
		t.Fatal("removed executor still listed")
	}
	executors := Info(db).Executors
	if len(executors) != params.MaxRescueExecutors-1 {
		t.Fatalf("executor count %d, want %d", len(executors), params.MaxRescueExecutors-1)
	}
	for _, addr := range extra {
		if !IsExecutor(db, addr) {
			t.Fatalf("executor %s lost from list", addr)
		}
	}
}

func TestPauseKeepsCancelOpen(t *testing.T) {
	db := newTestRegistry(t)
	now := int64(1_700_000_000)

	if err := RegisterPlan(db, victim, recoverer, params.RescueMinDelaySeconds); err != nil {
		t.Fatalf("register failed: %v", err)
	}
	if err := InitiateRescue(db, victim, now); err != nil {
		t.Fatalf("initiate failed: %v", err)
	}
	if err := Pause(db, regAdmin); err != nil {
		t.Fatalf("pause: %v", err)
	}

	if err := RegisterPlan(db, stranger, recoverer, params.RescueMinDelaySeconds); err != ErrPaused {
		t.Fatalf("register while paused: have %v, want %v", err, ErrPaused)
	}
	matured := now + params.RescueMinDelaySeconds
	if err := ExecuteRescue(db, victim, victim, 100, matured); err != ErrPaused {
		t.Fatalf("execute while paused: have %v, want %v", err, ErrPaused)
	}

	// An owner can always disarm.
	if err := CancelRescue(db, victim); err != nil {
		t.Fatalf("cancel while paused: %v", err)
	}
	if err := InitiateRescue(db, victim, now); err != ErrPaused {
		t.Fatalf("initiate while paused: have %v, want %v", err, ErrPaused)
	}
	if err := Unpause(db, regAdmin); err != nil {
		t.Fatalf("unpause: %v", err)
	}
	if err := InitiateRescue(db, victim, now); err != nil {
		t.Fatalf("initiate after unpause: %v", err)
	}
}
