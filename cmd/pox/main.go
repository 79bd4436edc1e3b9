// Copyright (c) 2026 The Stacks PoX developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package main

import (
	"encoding/json"
	"fmt"
	"math/big"
	"os"

	"github.com/ethereum/go-ethereum/rlp"
	cli "gopkg.in/urfave/cli.v1"

	"github.com/CAGS295/stacks-core/eventdb"
	"github.com/CAGS295/stacks-core/pox"
	"github.com/CAGS295/stacks-core/pox/delegation"
	"github.com/CAGS295/stacks-core/pox/reverts"
	"github.com/CAGS295/stacks-core/stacks"
	"github.com/CAGS295/stacks-core/state"
)

var (
	version   string
	gitCommit string
	gitTag    string
)

func fullVersion() string {
	versionMeta := "release"
	if gitTag == "" {
		versionMeta = "dev"
	}
	return fmt.Sprintf("%s-%s-%s", version, gitCommit, versionMeta)
}

func main() {
	app := cli.App{
		Version:   fullVersion(),
		Name:      "PoX",
		Usage:     "Stacks PoX delegation ledger",
		Copyright: "2026 The Stacks PoX developers",
		Flags: []cli.Flag{
			networkFlag,
			dataDirFlag,
			verbosityFlag,
		},
		Commands: []cli.Command{
			{
				Name:  "delegate",
				Usage: "create or replace a delegation",
				Flags: []cli.Flag{
					delegatorFlag,
					amountFlag,
					delegateToFlag,
					poxAddrFlag,
					untilBurnHtFlag,
					burnHeightFlag,
				},
				Action: delegateAction,
			},
			{
				Name:  "revoke",
				Usage: "revoke the caller's active delegation",
				Flags: []cli.Flag{
					delegatorFlag,
					burnHeightFlag,
				},
				Action: revokeAction,
			},
			{
				Name:  "status",
				Usage: "show the caller's active delegation",
				Flags: []cli.Flag{
					delegatorFlag,
				},
				Action: statusAction,
			},
			{
				Name:  "events",
				Usage: "list recorded delegation events",
				Flags: []cli.Flag{
					originFlag,
					nameFlag,
					limitFlag,
					descFlag,
				},
				Action: eventsAction,
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// openLedger wires the persistent stores and runs fn as one batch:
// mutations are committed only when fn succeeds, and emitted events are
// recorded under the given burn height.
func openLedger(ctx *cli.Context, fn func(p *pox.PoX) error) error {
	initLogger(ctx)

	mainDB := openMainDB(ctx)
	defer mainDB.Close()
	events := openEventDB(ctx)
	defer events.Close()

	// contract data lives in its own namespace of the main db
	store := dataStoreBucket.NewGetPutter(mainDB)
	st := state.New(store)
	ledger := pox.New(bootContract(ctx), st, nil)

	if err := fn(ledger); err != nil {
		return err
	}

	if err := st.Stage(store).Commit(); err != nil {
		return err
	}

	burnHeight := ctx.Uint64(burnHeightFlag.Name)
	var recorded []*eventdb.Event
	for i, ev := range ledger.DrainEvents() {
		data, err := rlp.EncodeToBytes(ev.Data)
		if err != nil {
			return err
		}
		recorded = append(recorded, &eventdb.Event{
			BurnHeight: burnHeight,
			Index:      uint32(i),
			Origin:     ev.Delegator,
			Name:       ev.Name,
			Data:       data,
		})
	}
	return events.Insert(recorded)
}

func delegateAction(ctx *cli.Context) error {
	delegator := parsePrincipalFlag(ctx, delegatorFlag)
	delegateTo := parsePrincipalFlag(ctx, delegateToFlag)

	amount, ok := new(big.Int).SetString(ctx.String(amountFlag.Name), 10)
	if !ok || amount.Sign() < 0 {
		fatal(fmt.Sprintf("invalid -%s [%v]", amountFlag.Name, ctx.String(amountFlag.Name)))
	}

	var poxAddr *stacks.PoxAddr
	if value := ctx.String(poxAddrFlag.Name); value != "" {
		parsed, err := parsePoxAddr(value)
		if err != nil {
			fatal(fmt.Sprintf("invalid -%s [%v]: %v", poxAddrFlag.Name, value, err))
		}
		poxAddr = parsed
	}

	var untilBurnHt *uint64
	if ctx.IsSet(untilBurnHtFlag.Name) {
		ht := ctx.Uint64(untilBurnHtFlag.Name)
		untilBurnHt = &ht
	}

	return openLedger(ctx, func(p *pox.PoX) error {
		ok, err := p.DelegateStx(delegator, amount, delegateTo, poxAddr, untilBurnHt)
		if err != nil {
			return err
		}
		fmt.Println(ok)
		return nil
	})
}

func revokeAction(ctx *cli.Context) error {
	delegator := parsePrincipalFlag(ctx, delegatorFlag)

	return openLedger(ctx, func(p *pox.PoX) error {
		removed, err := p.RevokeDelegateStx(delegator)
		if err != nil {
			if code, ok := reverts.CodeOf(err); ok {
				// contract-level rejection, not a tool failure
				fmt.Printf("(err u%d)\n", code)
				return nil
			}
			return err
		}
		return printRecord(removed)
	})
}

func statusAction(ctx *cli.Context) error {
	delegator := parsePrincipalFlag(ctx, delegatorFlag)

	return openLedger(ctx, func(p *pox.PoX) error {
		info, err := p.GetDelegationInfo(delegator)
		if err != nil {
			return err
		}
		if info == nil {
			fmt.Println("none")
			return nil
		}
		return printRecord(info)
	})
}

func eventsAction(ctx *cli.Context) error {
	initLogger(ctx)

	events := openEventDB(ctx)
	defer events.Close()

	filter := &eventdb.Filter{
		Name:    ctx.String(nameFlag.Name),
		Options: &eventdb.Options{Limit: ctx.Uint64(limitFlag.Name)},
	}
	if ctx.Bool(descFlag.Name) {
		filter.Order = eventdb.DESC
	}
	if value := ctx.String(originFlag.Name); value != "" {
		origin, err := stacks.ParsePrincipal(value)
		if err != nil {
			fatal(fmt.Sprintf("invalid -%s [%v]: %v", originFlag.Name, value, err))
		}
		filter.Origin = &origin
	}

	list, err := events.Filter(filter)
	if err != nil {
		return err
	}
	for _, ev := range list {
		var record delegation.Delegation
		if err := rlp.DecodeBytes(ev.Data, &record); err != nil {
			return err
		}
		fmt.Printf("#%d.%d %s %s amount=%v delegatedTo=%v\n",
			ev.BurnHeight, ev.Index, ev.Name, ev.Origin, record.AmountUstx, record.DelegatedTo)
	}
	return nil
}

func printRecord(d *delegation.Delegation) error {
	out := struct {
		DelegatedTo stacks.Principal `json:"delegatedTo"`
		AmountUstx  *big.Int         `json:"amountUstx"`
		PoxAddr     *stacks.PoxAddr  `json:"poxAddr"`
		UntilBurnHt *uint64          `json:"untilBurnHt"`
	}{d.DelegatedTo, d.AmountUstx, d.PoxAddr, d.UntilBurnHt}

	data, err := json.MarshalIndent(&out, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(data))
	return nil
}
