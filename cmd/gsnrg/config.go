package main

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"unicode"

	"github.com/naoina/toml"
	"github.com/urfave/cli/v2"

	"github.com/snrg-network/gsnrg/cmd/utils"
	"github.com/snrg-network/gsnrg/core"
	"github.com/snrg-network/gsnrg/node"
)

// gsnrgConfig is the layout of the --config TOML file.
type gsnrgConfig struct {
	Node node.Config
}

// tomlSettings decodes strictly: keys must match Go field names and
// unknown keys are an error naming the offending field.
var tomlSettings = toml.Config{
	NormFieldName: func(rt reflect.Type, key string) string {
		return key
	},
	FieldToKey: func(rt reflect.Type, field string) string {
		return field
	},
	MissingField: func(rt reflect.Type, field string) error {
		var link string
		if unicode.IsUpper(rune(rt.Name()[0])) && rt.PkgPath() != "main" {
			link = fmt.Sprintf(", see https://godoc.org/%s#%s for available fields", rt.PkgPath(), rt.Name())
		}
		return fmt.Errorf("field '%s' is not defined in %s%s", field, rt.String(), link)
	},
}

func loadConfig(file string, cfg *gsnrgConfig) error {
	f, err := os.Open(file)
	if err != nil {
		return err
	}
	defer f.Close()

	err = tomlSettings.NewDecoder(bufio.NewReader(f)).Decode(cfg)
	// Add file name to errors that have a line number.
	if _, ok := err.(*toml.LineError); ok {
		err = errors.New(file + ", " + err.Error())
	}
	return err
}

// makeConfig resolves the node configuration from defaults, the optional
// --config file and the command line flags, in that order.
func makeConfig(ctx *cli.Context) *gsnrgConfig {
	cfg := &gsnrgConfig{Node: node.DefaultConfig}
	if file := ctx.String(configFileFlag.Name); file != "" {
		if err := loadConfig(file, cfg); err != nil {
			utils.Fatalf("%v", err)
		}
	}
	if ctx.IsSet(dataDirFlag.Name) || cfg.Node.DataDir == "" {
		cfg.Node.DataDir = ctx.String(dataDirFlag.Name)
	}
	cfg.Node.Logger = newLogger(ctx)
	return cfg
}

// makeNode opens the data directory resolved from the context.
func makeNode(ctx *cli.Context) *node.Node {
	cfg := makeConfig(ctx)
	n, err := node.Open(&cfg.Node)
	if err != nil {
		utils.Fatalf("Failed to open custody node: %v", err)
	}
	return n
}

// loadGenesis reads a genesis document, TOML by default and JSON for
// .json files.
func loadGenesis(file string) *core.Genesis {
	data, err := os.ReadFile(file)
	if err != nil {
		utils.Fatalf("Failed to read genesis file: %v", err)
	}
	g := new(core.Genesis)
	if filepath.Ext(file) == ".json" {
		if err := json.Unmarshal(data, g); err != nil {
			utils.Fatalf("Invalid genesis file: %v", err)
		}
		return g
	}
	if err := tomlSettings.Unmarshal(data, g); err != nil {
		utils.Fatalf("Invalid genesis file: %v", err)
	}
	return g
}
