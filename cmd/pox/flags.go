// Copyright (c) 2026 The Stacks PoX developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package main

import (
	cli "gopkg.in/urfave/cli.v1"
)

var (
	networkFlag = cli.StringFlag{
		Name:  "network",
		Value: "test",
		Usage: "the network the ledger belongs to (main|test)",
	}
	dataDirFlag = cli.StringFlag{
		Name:  "data-dir",
		Value: defaultDataDir(),
		Usage: "directory for the ledger databases",
	}
	verbosityFlag = cli.IntFlag{
		Name:  "verbosity",
		Value: 2,
		Usage: "log verbosity (0=error, 1=warn, 2=info, 3=debug)",
	}
	delegatorFlag = cli.StringFlag{
		Name:  "delegator",
		Usage: "c32 address of the delegating principal",
	}
	amountFlag = cli.StringFlag{
		Name:  "amount",
		Usage: "amount to delegate, in micro-STX",
	}
	delegateToFlag = cli.StringFlag{
		Name:  "to",
		Usage: "c32 address of the operator receiving the delegation",
	}
	poxAddrFlag = cli.StringFlag{
		Name:  "pox-addr",
		Usage: "reward address constraint as version:hexhash (optional)",
	}
	untilBurnHtFlag = cli.Uint64Flag{
		Name:  "until-burn-ht",
		Usage: "burn height after which the delegation lapses (optional)",
	}
	burnHeightFlag = cli.Uint64Flag{
		Name:  "burn-height",
		Usage: "current burn chain height, recorded with emitted events",
	}
	originFlag = cli.StringFlag{
		Name:  "origin",
		Usage: "only list events emitted by this principal",
	}
	nameFlag = cli.StringFlag{
		Name:  "name",
		Usage: "only list events with this name",
	}
	limitFlag = cli.Uint64Flag{
		Name:  "limit",
		Value: 20,
		Usage: "maximum number of events to list",
	}
	descFlag = cli.BoolFlag{
		Name:  "desc",
		Usage: "list newest events first",
	}
)
