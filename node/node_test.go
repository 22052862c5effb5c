package node

import (
	"errors"
	"testing"

	"github.com/snrg-network/gsnrg/common"
	"github.com/snrg-network/gsnrg/core"
	"github.com/snrg-network/gsnrg/params"
	"github.com/snrg-network/gsnrg/sysop"
	"github.com/snrg-network/gsnrg/token"
)

var (
	nodeAdmin    = common.HexToAddress("0x00000000000000000000000000000000000aaaa1")
	nodeTreasury = common.HexToAddress("0x00000000000000000000000000000000000aaaa2")
	nodeSigner   = common.HexToAddress("0x00000000000000000000000000000000000aaaa3")
	nodeUser     = common.HexToAddress("0x1111111111111111111111111111111111111111")
)

func testGenesis() *core.Genesis {
	return &core.Genesis{
		Admin:       nodeAdmin,
		Treasury:    nodeTreasury,
		OrderSigner: nodeSigner,
		TotalSupply: 1_000_000,
	}
}

func TestInitAndReopen(t *testing.T) {
	conf := &Config{DataDir: t.TempDir()}

	if err := Init(conf, testGenesis()); err != nil {
		t.Fatalf("init: %v", err)
	}
	if err := Init(conf, testGenesis()); !errors.Is(err, core.ErrGenesisExists) {
		t.Fatalf("second init: have %v, want ErrGenesisExists", err)
	}

	n, err := Open(conf)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if n.Genesis().Treasury != nodeTreasury {
		t.Fatalf("genesis treasury %s, want %s", n.Genesis().Treasury, nodeTreasury)
	}

	data, err := sysop.MakeOp(sysop.KindTokenTransfer, sysop.TransferPayload{
		Asset:  params.TokenAddress.Hex(),
		To:     nodeUser.Hex(),
		Amount: 250_000,
	})
	if err != nil {
		t.Fatalf("encode op: %v", err)
	}
	rcpt, err := n.Processor().ApplyRaw(nodeTreasury, data)
	if err != nil {
		t.Fatalf("apply: %v", err)
	}
	if rcpt.Failed() {
		t.Fatalf("transfer rejected: %s", rcpt.Err)
	}
	if have := token.BalanceOf(n.State(), params.TokenAddress, nodeUser); have != 250_000 {
		t.Fatalf("balance %d, want 250000", have)
	}
	if err := n.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
	if err := n.Close(); err != nil {
		t.Fatalf("repeated close: %v", err)
	}

	// The committed words must survive a full reopen of the leveldb store.
	n, err = Open(conf)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer n.Close()
	if have := token.BalanceOf(n.State(), params.TokenAddress, nodeUser); have != 250_000 {
		t.Fatalf("balance after reopen %d, want 250000", have)
	}
	if have := token.BalanceOf(n.State(), params.TokenAddress, nodeTreasury); have != 750_000 {
		t.Fatalf("treasury after reopen %d, want 750000", have)
	}
}

func TestOpenUninitialized(t *testing.T) {
	conf := &Config{DataDir: t.TempDir()}
	if _, err := Open(conf); !errors.Is(err, core.ErrNoGenesis) {
		t.Fatalf("open uninitialized: have %v, want ErrNoGenesis", err)
	}
}
