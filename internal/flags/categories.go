package flags

import "github.com/urfave/cli/v2"

const (
	CustodyCategory = "CUSTODY"
	LoggingCategory = "LOGGING"
	MiscCategory    = "MISC"
)

func init() {
	cli.HelpFlag.(*cli.BoolFlag).Category = MiscCategory
	cli.VersionFlag.(*cli.BoolFlag).Category = MiscCategory
}
