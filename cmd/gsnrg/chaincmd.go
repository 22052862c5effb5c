package main

import (
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/snrg-network/gsnrg/cmd/utils"
	"github.com/snrg-network/gsnrg/common"
	"github.com/snrg-network/gsnrg/node"
	"github.com/snrg-network/gsnrg/params"
	"github.com/snrg-network/gsnrg/presale"
	"github.com/snrg-network/gsnrg/staking"
	"github.com/snrg-network/gsnrg/swap"
	"github.com/snrg-network/gsnrg/token"
)

var (
	initCommand = &cli.Command{
		Action:    initGenesis,
		Name:      "init",
		Usage:     "Bootstrap and initialize a new custody state",
		ArgsUsage: "<genesisPath>",
		Flags:     nodeFlags,
		Description: `
The init command initializes a new custody state from a genesis document.

The document configures the SNRG ledger, mints the supply to the treasury,
confirms the pool endpoints and initializes every engine. A data directory
can only be initialized once.`,
	}

	applyCommand = &cli.Command{
		Action:    applyOp,
		Name:      "apply",
		Usage:     "Apply one operation envelope and print its receipt",
		ArgsUsage: "<opPath>",
		Flags:     append([]cli.Flag{fromFlag, jsonFlag}, nodeFlags...),
		Description: `
The apply command reads a JSON operation envelope, applies it through the
processor as the --from address, and prints the receipt. Reading from
standard input is selected with "-".

A rejected operation leaves no state behind and exits nonzero.`,
	}

	statusCommand = &cli.Command{
		Action:    status,
		Name:      "status",
		Usage:     "Print a one-line summary of the custody state",
		ArgsUsage: " ",
		Flags:     append([]cli.Flag{jsonFlag}, nodeFlags...),
	}
)

func initGenesis(ctx *cli.Context) error {
	genesisPath := ctx.Args().First()
	if genesisPath == "" {
		utils.Fatalf("Must supply path to genesis TOML or JSON file")
	}
	genesis := loadGenesis(genesisPath)

	cfg := makeConfig(ctx)
	if err := node.Init(&cfg.Node, genesis); err != nil {
		utils.Fatalf("Failed to initialize custody state: %v", err)
	}
	cfg.Node.Logger.Info("successfully initialized custody state",
		"datadir", cfg.Node.DataDir,
		"treasury", genesis.Treasury,
		"supply", genesis.TotalSupply)
	return nil
}

func applyOp(ctx *cli.Context) error {
	opPath := ctx.Args().First()
	if opPath == "" {
		utils.Fatalf("Must supply path to an operation envelope, or - for stdin")
	}
	fromHex := ctx.String(fromFlag.Name)
	if !common.IsHexAddress(fromHex) {
		utils.Fatalf("Must supply a valid --from address")
	}
	from := common.HexToAddress(fromHex)

	var (
		data []byte
		err  error
	)
	if opPath == "-" {
		data, err = io.ReadAll(os.Stdin)
	} else {
		data, err = os.ReadFile(opPath)
	}
	if err != nil {
		utils.Fatalf("Failed to read operation envelope: %v", err)
	}

	n := makeNode(ctx)
	defer n.Close()

	rcpt, err := n.Processor().ApplyRaw(from, data)
	if err != nil {
		utils.Fatalf("Failed to apply operation: %v", err)
	}
	if ctx.Bool(jsonFlag.Name) {
		utils.PrintJSON(rcpt)
	} else {
		fmt.Println("Kind:     ", rcpt.Kind)
		fmt.Println("From:     ", rcpt.From.Hex())
		fmt.Println("Time:     ", formatTime(rcpt.Time))
		if rcpt.Failed() {
			fmt.Println("Status:    rejected")
			fmt.Println("Error:    ", rcpt.Err)
		} else {
			fmt.Println("Status:    applied")
			for _, ev := range rcpt.Events {
				fmt.Println("Event:    ", ev.EventName())
			}
		}
	}
	if rcpt.Failed() {
		return fmt.Errorf("operation rejected: %s", rcpt.Err)
	}
	return nil
}

// statusOutput is the JSON form of the status summary.
type statusOutput struct {
	Supply          uint64 `json:"supply"`
	Treasury        string `json:"treasury"`
	RewardReserve   uint64 `json:"reward_reserve"`
	PromisedRewards uint64 `json:"promised_rewards"`
	Solvent         bool   `json:"solvent"`
	TotalBurned     uint64 `json:"total_burned"`
	SaleOpen        bool   `json:"sale_open"`
	SaleInventory   uint64 `json:"sale_inventory"`
	Restricted      bool   `json:"restricted"`
}

func status(ctx *cli.Context) error {
	n := makeNode(ctx)
	defer n.Close()

	db := n.State()
	reserve := staking.Info(db)
	out := statusOutput{
		Supply:          token.TotalSupply(db, params.TokenAddress),
		Treasury:        token.Treasury(db).Hex(),
		RewardReserve:   reserve.RewardReserve,
		PromisedRewards: reserve.PromisedRewards,
		Solvent:         staking.IsSolvent(db),
		TotalBurned:     swap.Info(db).TotalBurned,
		SaleOpen:        presale.Info(db).IsOpen,
		SaleInventory:   token.BalanceOf(db, params.TokenAddress, params.PresaleAddress),
		Restricted:      token.IsRestricted(db),
	}
	if ctx.Bool(jsonFlag.Name) {
		utils.PrintJSON(out)
		return nil
	}
	fmt.Printf("supply=%d reserve=%d promised=%d solvent=%t burned=%d sale_open=%t inventory=%d restricted=%t\n",
		out.Supply, out.RewardReserve, out.PromisedRewards, out.Solvent,
		out.TotalBurned, out.SaleOpen, out.SaleInventory, out.Restricted)
	return nil
}
