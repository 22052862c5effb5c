package main

import (
	"encoding/json"
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/snrg-network/gsnrg/cmd/utils"
	"github.com/snrg-network/gsnrg/common"
	"github.com/snrg-network/gsnrg/crypto"
	"github.com/snrg-network/gsnrg/params"
	"github.com/snrg-network/gsnrg/presale"
	"github.com/snrg-network/gsnrg/sysop"
)

type outputSignOrder struct {
	Buyer     string          `json:"buyer"`
	Digest    string          `json:"digest"`
	Signature string          `json:"signature"`
	Operation json.RawMessage `json:"operation"`
}

type outputVerifyOrder struct {
	Digest string `json:"digest"`
	Signer string `json:"signer"`
	Match  *bool  `json:"match,omitempty"`
}

var (
	buyerFlag = &cli.StringFlag{
		Name:     "buyer",
		Usage:    "address the order is bound to; the operation must be applied as it",
		Required: true,
	}
	paymentAssetFlag = &cli.StringFlag{
		Name:  "payment-asset",
		Usage: "address of the payment asset, the zero address for the native asset",
		Value: params.NativeAsset.Hex(),
	}
	paymentAmountFlag = &cli.Uint64Flag{
		Name:     "payment-amount",
		Usage:    "payment amount in base units",
		Required: true,
	}
	snrgAmountFlag = &cli.Uint64Flag{
		Name:     "snrg-amount",
		Usage:    "SNRG amount to deliver in base units",
		Required: true,
	}
	nonceFlag = &cli.Uint64Flag{
		Name:     "nonce",
		Usage:    "order nonce, usable once across all orders",
		Required: true,
	}
	deadlineFlag = &cli.Int64Flag{
		Name:     "deadline",
		Usage:    "unix timestamp the order expires at",
		Required: true,
	}
	signatureFlag = &cli.StringFlag{
		Name:     "signature",
		Usage:    "hex encoded 65-byte order signature",
		Required: true,
	}
	signerFlag = &cli.StringFlag{
		Name:  "signer",
		Usage: "expected signer address to check the recovery against",
	}
)

var commandSignOrder = &cli.Command{
	Name:      "sign-order",
	Usage:     "sign a presale purchase order",
	ArgsUsage: "<keyfile>",
	Description: `
Sign a purchase order with the keyfile and print the ready-to-apply
operation envelope. The digest binds the buyer, the amounts, the nonce
and the deadline, so the printed operation is only valid when applied
as the buyer before the deadline.`,
	Flags: []cli.Flag{
		jsonFlag,
		buyerFlag,
		paymentAssetFlag,
		paymentAmountFlag,
		snrgAmountFlag,
		nonceFlag,
		deadlineFlag,
	},
	Action: func(ctx *cli.Context) error {
		key, err := crypto.LoadECDSA(ctx.Args().First())
		if err != nil {
			utils.Fatalf("Failed to read the keyfile: %v", err)
		}
		buyer := mustOrderAddress(ctx.String(buyerFlag.Name), "buyer")
		asset := mustOrderAddress(ctx.String(paymentAssetFlag.Name), "payment asset")
		var (
			paymentAmount = ctx.Uint64(paymentAmountFlag.Name)
			snrgAmount    = ctx.Uint64(snrgAmountFlag.Name)
			nonce         = ctx.Uint64(nonceFlag.Name)
			deadline      = ctx.Int64(deadlineFlag.Name)
		)

		digest := presale.OrderDigest(buyer, asset, paymentAmount, snrgAmount, nonce, deadline)
		sig, err := crypto.Sign(digest.Bytes(), key)
		if err != nil {
			utils.Fatalf("Failed to sign order: %v", err)
		}

		op, err := sysop.MakeOp(sysop.KindPresalePurchase, sysop.PurchasePayload{
			PaymentAsset:  asset.Hex(),
			PaymentAmount: paymentAmount,
			SnrgAmount:    snrgAmount,
			Nonce:         nonce,
			Deadline:      deadline,
			Signature:     common.Bytes2Hex(sig),
		})
		if err != nil {
			utils.Fatalf("Failed to encode operation: %v", err)
		}

		out := outputSignOrder{
			Buyer:     buyer.Hex(),
			Digest:    digest.Hex(),
			Signature: common.Bytes2Hex(sig),
			Operation: op,
		}
		if ctx.Bool(jsonFlag.Name) {
			utils.PrintJSON(out)
		} else {
			fmt.Println("Buyer:     ", out.Buyer)
			fmt.Println("Digest:    ", out.Digest)
			fmt.Println("Signature: ", out.Signature)
			fmt.Println("Operation: ", string(out.Operation))
		}
		return nil
	},
}

var commandVerifyOrder = &cli.Command{
	Name:  "verify-order",
	Usage: "recover the signer of a presale purchase order",
	Description: `
Recompute the order digest from the order fields and recover the address
that produced the signature. With --signer the recovered address is also
checked against the expected one.`,
	Flags: []cli.Flag{
		jsonFlag,
		buyerFlag,
		paymentAssetFlag,
		paymentAmountFlag,
		snrgAmountFlag,
		nonceFlag,
		deadlineFlag,
		signatureFlag,
		signerFlag,
	},
	Action: func(ctx *cli.Context) error {
		buyer := mustOrderAddress(ctx.String(buyerFlag.Name), "buyer")
		asset := mustOrderAddress(ctx.String(paymentAssetFlag.Name), "payment asset")

		digest := presale.OrderDigest(buyer, asset,
			ctx.Uint64(paymentAmountFlag.Name),
			ctx.Uint64(snrgAmountFlag.Name),
			ctx.Uint64(nonceFlag.Name),
			ctx.Int64(deadlineFlag.Name))
		signer, err := presale.RecoverOrderSigner(digest, common.FromHex(ctx.String(signatureFlag.Name)))
		if err != nil {
			utils.Fatalf("Failed to recover signer: %v", err)
		}

		out := outputVerifyOrder{
			Digest: digest.Hex(),
			Signer: signer.Hex(),
		}
		if expected := ctx.String(signerFlag.Name); expected != "" {
			match := signer == mustOrderAddress(expected, "signer")
			out.Match = &match
		}
		if ctx.Bool(jsonFlag.Name) {
			utils.PrintJSON(out)
		} else {
			fmt.Println("Digest: ", out.Digest)
			fmt.Println("Signer: ", out.Signer)
			if out.Match != nil {
				fmt.Println("Match:  ", *out.Match)
			}
		}
		return nil
	},
}

func mustOrderAddress(s, what string) common.Address {
	if !common.IsHexAddress(s) {
		utils.Fatalf("Invalid %s address %q", what, s)
	}
	return common.HexToAddress(s)
}
