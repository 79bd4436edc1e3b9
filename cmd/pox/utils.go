// Copyright (c) 2026 The Stacks PoX developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package main

import (
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/mattn/go-isatty"
	cli "gopkg.in/urfave/cli.v1"

	"github.com/CAGS295/stacks-core/eventdb"
	"github.com/CAGS295/stacks-core/kvdb"
	"github.com/CAGS295/stacks-core/log"
	"github.com/CAGS295/stacks-core/pox"
	"github.com/CAGS295/stacks-core/stacks"
)

var dataStoreBucket = kvdb.Bucket("d/")

func fatal(args ...any) {
	fmt.Fprint(os.Stderr, "Fatal: ")
	fmt.Fprintln(os.Stderr, args...)
	os.Exit(1)
}

func initLogger(ctx *cli.Context) {
	lvl := log.Verbosity(ctx.GlobalInt(verbosityFlag.Name))
	useColor := isatty.IsTerminal(os.Stderr.Fd())
	log.SetDefault(log.NewTerminalHandler(os.Stderr, lvl, useColor))
}

func defaultDataDir() string {
	if home, err := os.UserHomeDir(); err == nil {
		return filepath.Join(home, ".stacks-pox")
	}
	return ""
}

func makeDataDir(ctx *cli.Context) string {
	dataDir := ctx.GlobalString(dataDirFlag.Name)
	if dataDir == "" {
		fatal(fmt.Sprintf("unable to infer default data dir, use -%s to specify", dataDirFlag.Name))
	}
	if err := os.MkdirAll(dataDir, 0700); err != nil {
		fatal(fmt.Sprintf("create data dir [%v]: %v", dataDir, err))
	}
	return dataDir
}

func openMainDB(ctx *cli.Context) *kvdb.LevelDB {
	dir := filepath.Join(makeDataDir(ctx), "main.db")
	db, err := kvdb.New(dir, kvdb.Options{})
	if err != nil {
		fatal(fmt.Sprintf("open ledger database [%v]: %v", dir, err))
	}
	return db
}

func openEventDB(ctx *cli.Context) *eventdb.EventDB {
	path := filepath.Join(makeDataDir(ctx), "events.db")
	db, err := eventdb.New(path)
	if err != nil {
		fatal(fmt.Sprintf("open event database [%v]: %v", path, err))
	}
	return db
}

func bootContract(ctx *cli.Context) stacks.Principal {
	switch network := ctx.GlobalString(networkFlag.Name); network {
	case "main":
		return pox.BootContract(true)
	case "test":
		return pox.BootContract(false)
	default:
		fatal(fmt.Sprintf("unknown network [%v]", network))
		return stacks.Principal{}
	}
}

func parsePrincipalFlag(ctx *cli.Context, flag cli.StringFlag) stacks.Principal {
	value := ctx.String(flag.Name)
	if value == "" {
		fatal(fmt.Sprintf("-%s not specified", flag.Name))
	}
	p, err := stacks.ParsePrincipal(value)
	if err != nil {
		fatal(fmt.Sprintf("invalid -%s [%v]: %v", flag.Name, value, err))
	}
	return p
}

// parsePoxAddr parses the version:hexhash reward address form, e.g.
// "0x01:a46ff88886c2ef9762d970b4d2c63678835bd39d".
func parsePoxAddr(value string) (*stacks.PoxAddr, error) {
	parts := strings.SplitN(value, ":", 2)
	if len(parts) != 2 {
		return nil, fmt.Errorf("expected version:hexhash")
	}
	version, err := strconv.ParseUint(strings.TrimPrefix(parts[0], "0x"), 16, 8)
	if err != nil {
		return nil, fmt.Errorf("invalid version: %v", err)
	}
	hash, err := hex.DecodeString(parts[1])
	if err != nil {
		return nil, fmt.Errorf("invalid hash: %v", err)
	}
	return &stacks.PoxAddr{Version: byte(version), HashBytes: hash}, nil
}
