package core

import (
	"errors"
	"testing"

	"github.com/davecgh/go-spew/spew"

	"github.com/snrg-network/gsnrg/common"
	"github.com/snrg-network/gsnrg/core/state"
	"github.com/snrg-network/gsnrg/params"
	"github.com/snrg-network/gsnrg/presale"
	"github.com/snrg-network/gsnrg/snrgdb/memorydb"
	"github.com/snrg-network/gsnrg/staking"
	"github.com/snrg-network/gsnrg/timelock"
	"github.com/snrg-network/gsnrg/token"
)

var (
	genAdmin    = common.HexToAddress("0x00000000000000000000000000000000000aaaa1")
	genTreasury = common.HexToAddress("0x00000000000000000000000000000000000aaaa2")
	genSigner   = common.HexToAddress("0x00000000000000000000000000000000000aaaa3")
	opUser      = common.HexToAddress("0x1111111111111111111111111111111111111111")
)

func testGenesis() *Genesis {
	return &Genesis{
		Admin:          genAdmin,
		Treasury:       genTreasury,
		OrderSigner:    genSigner,
		TotalSupply:    10_000_000,
		SaleAllocation: 2_000_000,
		RewardReserve:  100_000,
	}
}

func TestGenesisValidation(t *testing.T) {
	for _, tt := range []struct {
		name   string
		mutate func(*Genesis)
	}{
		{"zero admin", func(g *Genesis) { g.Admin = common.Address{} }},
		{"zero treasury", func(g *Genesis) { g.Treasury = common.Address{} }},
		{"zero signer", func(g *Genesis) { g.OrderSigner = common.Address{} }},
		{"zero supply", func(g *Genesis) { g.TotalSupply = 0 }},
		{"sale above supply", func(g *Genesis) { g.SaleAllocation = g.TotalSupply + 1 }},
		{"allocations above supply", func(g *Genesis) {
			g.SaleAllocation = 6_000_000
			g.RewardReserve = 5_000_000
		}},
	} {
		g := testGenesis()
		tt.mutate(g)
		if err := g.Apply(state.New()); err == nil {
			t.Fatalf("%s: genesis accepted", tt.name)
		}
	}
}

func TestSetupGenesis(t *testing.T) {
	disk := memorydb.New()
	g := testGenesis()
	if err := SetupGenesis(disk, g); err != nil {
		t.Fatalf("setup genesis: %v", err)
	}
	if err := SetupGenesis(disk, g); !errors.Is(err, ErrGenesisExists) {
		t.Fatalf("second setup: have %v, want ErrGenesisExists", err)
	}

	db := state.NewWithStore(disk)
	if have := token.BalanceOf(db, params.TokenAddress, genTreasury); have != 7_900_000 {
		t.Fatalf("treasury balance %d, want 7900000", have)
	}
	if have := token.BalanceOf(db, params.TokenAddress, params.PresaleAddress); have != 2_000_000 {
		t.Fatalf("sale inventory %d, want 2000000", have)
	}
	if have := token.BalanceOf(db, params.TokenAddress, params.StakingAddress); have != 100_000 {
		t.Fatalf("staking pool %d, want 100000", have)
	}
	if have := token.TotalSupply(db, params.TokenAddress); have != 10_000_000 {
		t.Fatalf("total supply %d, want 10000000", have)
	}

	reserve := staking.Info(db)
	if reserve.Admin != genAdmin || !reserve.IsFunded || reserve.RewardReserve != 100_000 || reserve.PromisedRewards != 0 {
		t.Fatalf("unexpected reserve info %+v", reserve)
	}
	sale := presale.Info(db)
	if sale.Admin != genAdmin || sale.Signer != genSigner || sale.IsOpen {
		t.Fatalf("unexpected sale info %+v", sale)
	}
	if have := timelock.Info(db).MinDelaySeconds; have != params.TimelockMinDelayFloorSeconds {
		t.Fatalf("min delay %d, want floor", have)
	}
	for _, e := range []struct {
		kind token.EndpointKind
		pool common.Address
	}{
		{token.EndpointStaking, params.StakingAddress},
		{token.EndpointPresale, params.PresaleAddress},
		{token.EndpointSwap, params.SwapAddress},
		{token.EndpointRescue, params.RescueAddress},
	} {
		if have := token.Endpoint(db, e.kind); have != e.pool {
			t.Fatalf("%s endpoint %s, want %s", e.kind, have, e.pool)
		}
	}

	stored, err := ReadGenesis(disk)
	if err != nil {
		t.Fatalf("read genesis: %v", err)
	}
	if *stored != *g {
		t.Fatalf("genesis marker mismatch: have %s want %s", spew.Sdump(stored), spew.Sdump(g))
	}
	if _, err := ReadGenesis(memorydb.New()); !errors.Is(err, ErrNoGenesis) {
		t.Fatalf("read uninitialized: have %v, want ErrNoGenesis", err)
	}
}

func TestGenesisSameAdminAndTreasury(t *testing.T) {
	db := state.New()
	g := testGenesis()
	g.Admin = genTreasury
	if err := g.Apply(db); err != nil {
		t.Fatalf("apply genesis: %v", err)
	}
	if have := token.BalanceOf(db, params.TokenAddress, genTreasury); have != 7_900_000 {
		t.Fatalf("treasury balance %d, want 7900000", have)
	}
	if have := staking.Info(db).RewardReserve; have != 100_000 {
		t.Fatalf("reward reserve %d, want 100000", have)
	}
}
