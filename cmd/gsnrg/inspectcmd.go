package main

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli/v2"

	"github.com/snrg-network/gsnrg/cmd/utils"
	"github.com/snrg-network/gsnrg/common"
	"github.com/snrg-network/gsnrg/core/state"
	"github.com/snrg-network/gsnrg/params"
	"github.com/snrg-network/gsnrg/presale"
	"github.com/snrg-network/gsnrg/rescue"
	"github.com/snrg-network/gsnrg/staking"
	"github.com/snrg-network/gsnrg/swap"
	"github.com/snrg-network/gsnrg/timelock"
	"github.com/snrg-network/gsnrg/token"
)

var inspectCommand = &cli.Command{
	Action:    inspect,
	Name:      "inspect",
	Usage:     "Inspect one custody engine",
	ArgsUsage: "<token|staking|presale|swap|rescue|timelock> [address or proposal id]",
	Flags:     nodeFlags,
	Description: `
The inspect command prints the state of one engine. Without a second
argument it prints the engine configuration; with an address it prints
the records held for that address (balances, stakes, burn totals, the
rescue plan), and for the timelock a proposal id prints that proposal.`,
}

func inspect(ctx *cli.Context) error {
	section := ctx.Args().First()
	arg := ctx.Args().Get(1)

	n := makeNode(ctx)
	defer n.Close()

	db := n.State()
	now := time.Now().Unix()

	switch section {
	case "token":
		if arg == "" {
			inspectToken(db)
		} else {
			inspectHolder(db, mustAddress(arg))
		}
	case "staking":
		if arg == "" {
			inspectStaking(db)
		} else {
			inspectStakes(db, mustAddress(arg), now)
		}
	case "presale":
		if arg == "" {
			inspectPresale(db)
		} else {
			inspectBuyer(db, mustAddress(arg), now)
		}
	case "swap":
		if arg == "" {
			inspectSwap(db)
		} else {
			inspectBurner(db, mustAddress(arg))
		}
	case "rescue":
		if arg == "" {
			inspectRescue(db)
		} else {
			inspectPlan(db, mustAddress(arg), now)
		}
	case "timelock":
		if arg == "" {
			inspectTimelock(db)
		} else {
			inspectProposal(db, common.HexToHash(arg), now)
		}
	default:
		utils.Fatalf("Unknown section %q, want token, staking, presale, swap, rescue or timelock", section)
	}
	return nil
}

func inspectToken(db state.StateDB) {
	bps, collector := token.TransferFee(db, params.TokenAddress)
	rows := [][]string{
		{"Supply", formatAmount(token.TotalSupply(db, params.TokenAddress))},
		{"Treasury", token.Treasury(db).Hex()},
		{"Admin", token.Admin(db).Hex()},
		{"Restricted", formatBool(token.IsRestricted(db))},
		{"Fee bps", formatAmount(bps)},
		{"Fee collector", collector.Hex()},
	}
	for _, kind := range []token.EndpointKind{token.EndpointStaking, token.EndpointPresale, token.EndpointSwap, token.EndpointRescue} {
		rows = append(rows, []string{"Endpoint " + string(kind), token.Endpoint(db, kind).Hex()})
	}
	renderFields(rows)
}

func inspectHolder(db state.StateDB, holder common.Address) {
	renderFields([][]string{
		{"Holder", holder.Hex()},
		{"SNRG balance", formatAmount(token.BalanceOf(db, params.TokenAddress, holder))},
		{"Native balance", formatAmount(token.BalanceOf(db, params.NativeAsset, holder))},
	})
}

func inspectStaking(db state.StateDB) {
	info := staking.Info(db)
	renderFields([][]string{
		{"Admin", info.Admin.Hex()},
		{"Treasury", info.Treasury.Hex()},
		{"Reward reserve", formatAmount(info.RewardReserve)},
		{"Promised rewards", formatAmount(info.PromisedRewards)},
		{"Solvent", formatBool(staking.IsSolvent(db))},
		{"Funded", formatBool(info.IsFunded)},
		{"Paused", formatBool(info.Paused)},
		{"Custody", formatAmount(token.BalanceOf(db, params.TokenAddress, params.StakingAddress))},
	})
}

func inspectStakes(db state.StateDB, owner common.Address, now int64) {
	count := staking.StakeCount(db, owner)
	if count == 0 {
		fmt.Println("No stakes for", owner.Hex())
		return
	}
	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Index", "Principal", "Reward", "Matures", "Remaining", "Withdrawn"})
	for i := uint64(0); i < count; i++ {
		rec, err := staking.StakeInfo(db, owner, i, now)
		if err != nil {
			utils.Fatalf("Failed to read stake %d: %v", i, err)
		}
		table.Append([]string{
			strconv.FormatUint(rec.Index, 10),
			formatAmount(rec.Principal),
			formatAmount(rec.Reward),
			formatTime(rec.MaturityTime),
			formatDuration(rec.RemainingSeconds),
			formatBool(rec.Withdrawn),
		})
	}
	table.Render()
}

func inspectPresale(db state.StateDB) {
	info := presale.Info(db)
	rows := [][]string{
		{"Admin", info.Admin.Hex()},
		{"Order signer", info.Signer.Hex()},
		{"Treasury", info.Treasury.Hex()},
		{"Open", formatBool(info.IsOpen)},
		{"Paused", formatBool(info.Paused)},
		{"Min purchase", formatAmount(info.MinPurchase)},
		{"Max purchase", formatAmount(info.MaxPurchase)},
		{"Inventory", formatAmount(token.BalanceOf(db, params.TokenAddress, params.PresaleAddress))},
	}
	for _, asset := range presale.PaymentAssets(db) {
		rows = append(rows, []string{"Payment asset", asset.Hex()})
	}
	renderFields(rows)
}

func inspectBuyer(db state.StateDB, buyer common.Address, now int64) {
	renderFields([][]string{
		{"Buyer", buyer.Hex()},
		{"Purchases left today", formatAmount(presale.RemainingPurchasesToday(db, buyer, now))},
		{"SNRG balance", formatAmount(token.BalanceOf(db, params.TokenAddress, buyer))},
	})
}

func inspectSwap(db state.StateDB) {
	info := swap.Info(db)
	renderFields([][]string{
		{"Admin", info.Admin.Hex()},
		{"Total burned", formatAmount(info.TotalBurned)},
		{"Proposed root", info.ProposedRoot.Hex()},
		{"Proposed at", formatTime(info.ProposedAt)},
		{"Finalized", formatBool(info.Finalized)},
		{"Merkle root", info.MerkleRoot.Hex()},
		{"Burn commitment", info.BurnCommitment.Hex()},
		{"Finalized at", formatTime(info.FinalizedAt)},
		{"Paused", formatBool(info.Paused)},
	})
}

func inspectBurner(db state.StateDB, burner common.Address) {
	renderFields([][]string{
		{"Burner", burner.Hex()},
		{"Total burned", formatAmount(swap.BurnedOf(db, burner))},
	})
}

func inspectRescue(db state.StateDB) {
	info := rescue.Info(db)
	rows := [][]string{
		{"Admin", info.Admin.Hex()},
		{"Paused", formatBool(info.Paused)},
		{"Max rescue amount", formatAmount(info.MaxRescueAmount)},
	}
	for _, exec := range info.Executors {
		rows = append(rows, []string{"Executor", exec.Hex()})
	}
	renderFields(rows)
}

func inspectPlan(db state.StateDB, owner common.Address, now int64) {
	plan, err := rescue.Plan(db, owner, now)
	if err != nil {
		utils.Fatalf("Failed to read rescue plan: %v", err)
	}
	renderFields([][]string{
		{"Owner", plan.Owner.Hex()},
		{"Recovery", plan.Recovery.Hex()},
		{"Delay", formatDuration(plan.DelaySeconds)},
		{"Armed", formatBool(plan.Armed)},
		{"ETA", formatTime(plan.ETA)},
		{"Remaining", formatDuration(plan.RemainingSeconds)},
		{"Last rescue", formatTime(plan.LastRescueTime)},
	})
}

func inspectTimelock(db state.StateDB) {
	info := timelock.Info(db)
	renderFields([][]string{
		{"Admin", info.Admin.Hex()},
		{"Min delay", formatDuration(info.MinDelaySeconds)},
	})
}

func inspectProposal(db state.StateDB, id common.Hash, now int64) {
	prop, err := timelock.Proposal(db, id, now)
	if err != nil {
		utils.Fatalf("Failed to read proposal: %v", err)
	}
	renderFields([][]string{
		{"ID", prop.ID.Hex()},
		{"Target", prop.Target.Hex()},
		{"Payload", common.Bytes2Hex(prop.Payload)},
		{"Predecessor", prop.Predecessor.Hex()},
		{"ETA", formatTime(prop.ETA)},
		{"State", string(prop.State)},
	})
}

// renderFields prints two-column field/value rows.
func renderFields(rows [][]string) {
	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Field", "Value"})
	table.AppendBulk(rows)
	table.Render()
}

func mustAddress(s string) common.Address {
	if !common.IsHexAddress(s) {
		utils.Fatalf("Invalid address %q", s)
	}
	return common.HexToAddress(s)
}

func formatAmount(v uint64) string {
	return strconv.FormatUint(v, 10)
}

func formatBool(v bool) string {
	return strconv.FormatBool(v)
}

func formatTime(unix int64) string {
	if unix == 0 {
		return "never"
	}
	return fmt.Sprintf("%d (%s)", unix, time.Unix(unix, 0).UTC().Format(time.RFC3339))
}

func formatDuration(seconds int64) string {
	return (time.Duration(seconds) * time.Second).String()
}
