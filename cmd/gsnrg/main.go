// gsnrg is the operator command line interface to the SNRG custody state.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/lmittmann/tint"
	"github.com/urfave/cli/v2"

	"github.com/snrg-network/gsnrg/internal/flags"
	"github.com/snrg-network/gsnrg/node"
)

const clientIdentifier = "gsnrg"

// Git SHA1 commit hash of the release (set via linker flags)
var gitCommit = ""
var gitDate = ""

var (
	dataDirFlag = &cli.StringFlag{
		Name:     "datadir",
		Usage:    "Data directory for the custody state database",
		Value:    node.DefaultConfig.DataDir,
		Category: flags.CustodyCategory,
	}
	configFileFlag = &cli.StringFlag{
		Name:     "config",
		Usage:    "TOML configuration file",
		Category: flags.CustodyCategory,
	}
	fromFlag = &cli.StringFlag{
		Name:     "from",
		Usage:    "Address the operation is applied as",
		Category: flags.CustodyCategory,
	}
	verbosityFlag = &cli.BoolFlag{
		Name:     "verbose",
		Usage:    "Enable debug level logging",
		Category: flags.LoggingCategory,
	}
	jsonFlag = &cli.BoolFlag{
		Name:     "json",
		Usage:    "Output JSON instead of human-readable format",
		Category: flags.MiscCategory,
	}
)

// nodeFlags are shared by every command that opens the data directory.
var nodeFlags = []cli.Flag{
	dataDirFlag,
	configFileFlag,
	verbosityFlag,
}

var app = flags.NewApp(gitCommit, gitDate, "the SNRG custody engine command line interface")

func init() {
	app.Commands = []*cli.Command{
		initCommand,
		applyCommand,
		inspectCommand,
		statusCommand,
		versionCommand,
		licenseCommand,
	}
}

func main() {
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// newLogger builds the terminal logger the node and processor log through.
func newLogger(ctx *cli.Context) *slog.Logger {
	level := slog.LevelInfo
	if ctx.Bool(verbosityFlag.Name) {
		level = slog.LevelDebug
	}
	return slog.New(tint.NewHandler(os.Stderr, &tint.Options{Level: level}))
}
