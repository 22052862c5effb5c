package main

import (
	"crypto/ecdsa"
	"fmt"
	"os"
	"path/filepath"

	"github.com/urfave/cli/v2"

	"github.com/snrg-network/gsnrg/cmd/utils"
	"github.com/snrg-network/gsnrg/crypto"
)

type outputGenerate struct {
	Address string `json:"address"`
}

var (
	privateKeyFlag = &cli.StringFlag{
		Name:  "privatekey",
		Usage: "file containing a raw private key to import",
	}
)

var commandGenerate = &cli.Command{
	Name:      "generate",
	Usage:     "generate new keyfile",
	ArgsUsage: "[ <keyfile> ]",
	Description: `
Generate a new keyfile.

The key is stored as plain hex with owner-only permissions; guard the
file accordingly. An existing private key can be imported by setting
--privatekey with the location of the file containing it.
`,
	Flags: []cli.Flag{
		jsonFlag,
		privateKeyFlag,
	},
	Action: func(ctx *cli.Context) error {
		// Check if keyfile path given and make sure it doesn't already exist.
		keyfilepath := ctx.Args().First()
		if keyfilepath == "" {
			keyfilepath = defaultKeyfileName
		}
		if _, err := os.Stat(keyfilepath); err == nil {
			utils.Fatalf("Keyfile already exists at %s.", keyfilepath)
		} else if !os.IsNotExist(err) {
			utils.Fatalf("Error checking if keyfile exists: %v", err)
		}

		var (
			privateKey *ecdsa.PrivateKey
			err        error
		)
		if file := ctx.String(privateKeyFlag.Name); file != "" {
			privateKey, err = crypto.LoadECDSA(file)
			if err != nil {
				utils.Fatalf("Can't load private key: %v", err)
			}
		} else {
			privateKey, err = crypto.GenerateKey()
			if err != nil {
				utils.Fatalf("Failed to generate random private key: %v", err)
			}
		}

		// Store the file to disk.
		if dir := filepath.Dir(keyfilepath); dir != "." {
			if err := os.MkdirAll(dir, 0700); err != nil {
				utils.Fatalf("Could not create directory %s", dir)
			}
		}
		if err := crypto.SaveECDSA(keyfilepath, privateKey); err != nil {
			utils.Fatalf("Failed to write keyfile to %s: %v", keyfilepath, err)
		}

		// Output some information.
		out := outputGenerate{
			Address: crypto.PubkeyToAddress(privateKey.PublicKey).Hex(),
		}
		if ctx.Bool(jsonFlag.Name) {
			utils.PrintJSON(out)
		} else {
			fmt.Println("Address:", out.Address)
		}
		return nil
	},
}
