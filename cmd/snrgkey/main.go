// snrgkey manages the plain secp256k1 keyfiles used to sign presale
// purchase orders.
package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/snrg-network/gsnrg/internal/flags"
)

const (
	defaultKeyfileName = "keyfile.hex"
)

// Git SHA1 commit hash of the release (set via linker flags)
var gitCommit = ""
var gitDate = ""

var app *cli.App

func init() {
	app = flags.NewApp(gitCommit, gitDate, "an SNRG order-signing key manager")
	app.Commands = []*cli.Command{
		commandGenerate,
		commandInspect,
		commandSignOrder,
		commandVerifyOrder,
	}
}

// Commonly used command line flags.
var (
	jsonFlag = &cli.BoolFlag{
		Name:  "json",
		Usage: "output JSON instead of human-readable format",
	}
)

func main() {
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
