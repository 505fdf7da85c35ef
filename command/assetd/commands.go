// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/bitmark-inc/assetd/amount"
	"github.com/bitmark-inc/assetd/asset"
	"github.com/bitmark-inc/assetd/digest"
	"github.com/bitmark-inc/assetd/directory"
	"github.com/bitmark-inc/assetd/ledger"
	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/logger"
)

// setup command handler
//
// commands that need neither the configuration file nor the database
func processSetupCommand(program string, arguments []string) bool {

	command := "help"
	if len(arguments) > 0 {
		command = arguments[0]
	}

	switch command {
	case "start", "run":
		return false // continue processing

	case "config-test", "cfg":
		return false // defer processing until configuration is read

	case "assets", "a", "contracts", "c", "aliases", "i", "asset":
		return false // defer processing until ledger is loaded

	case "version", "v":
		fmt.Printf("%s\n", version)
		return true

	default:
		switch command {
		case "help", "h", "?":
		case "", " ":
			fmt.Printf("error: missing command\n")
		default:
			fmt.Printf("error: no such command: %q\n", command)
		}
		fmt.Printf("usage: %s [--help] [--verbose] [--quiet] --config-file=FILE [[command|help] arguments...]\n", program)

		fmt.Printf("supported commands:\n\n")
		fmt.Printf("  help                       (h)      - display this message\n\n")
		fmt.Printf("  version                    (v)      - display version sting\n\n")

		fmt.Printf("  start                      (run)    - just run the program, same as no arguments\n")
		fmt.Printf("                                        for convienience when passing script arguments\n")
		fmt.Printf("\n")

		fmt.Printf("  config-test                (cfg)    - just check the configuration file\n")
		fmt.Printf("\n")

		fmt.Printf("  assets [PREFIX [N [S]]]    (a)      - list N registered assets from S\n")
		fmt.Printf("                                        a negative S counts from the end\n")
		fmt.Printf("  contracts [PREFIX [N [S]]] (c)      - list registered contracts\n")
		fmt.Printf("  aliases [PREFIX [N [S]]]   (i)      - list registered chain aliases\n")
		fmt.Printf("  asset NAME|SYMBOL                   - show one asset\n")
		fmt.Printf("\n")

		exitwithstatus.Exit(1)
	}

	// indicate processing complete and preform normal exit from main
	return true
}

// configuration file enquiry commands
// have configuration file read and decoded, but nothing else
func processConfigCommand(arguments []string, options *Configuration) bool {

	command := "help"
	if len(arguments) > 0 {
		command = arguments[0]
	}

	switch command {
	case "config-test", "cfg":
		printJSON(os.Stdout, options)

	default: // unknown commands fall through to data command
		return false
	}

	// indicate processing complete and perform normal exit from main
	return true
}

// data command handler
// the ledger is loaded so these commands can read its directories
func processDataCommand(log *logger.L, arguments []string, l *ledger.Ledger) bool {

	command := "help"
	if len(arguments) > 0 {
		command = arguments[0]
		arguments = arguments[1:]
	}

	switch command {
	case "start", "run":
		return false // continue processing

	case "assets", "a":
		summaries, err := listAssets(l, arguments)
		if nil != err {
			exitwithstatus.Message("list assets error: %s", err)
		}
		printJSON(os.Stdout, summaries)

	case "contracts", "c":
		filter, count, start := listArguments(arguments)
		items, err := l.ListContracts(filter, count, start)
		if nil != err {
			exitwithstatus.Message("list contracts error: %s", err)
		}
		printJSON(os.Stdout, items)

	case "aliases", "i":
		filter, count, start := listArguments(arguments)
		items, err := l.ListChainAliases(filter, count, start)
		if nil != err {
			exitwithstatus.Message("list chain aliases error: %s", err)
		}
		printJSON(os.Stdout, items)

	case "asset":
		if 1 != len(arguments) {
			exitwithstatus.Message("asset requires a name or symbol")
		}
		a, err := l.GetAsset(arguments[0])
		if nil != err {
			exitwithstatus.Message("asset: %q error: %s", arguments[0], err)
		}
		if l.IsSubsidy(a.ID) {
			printJSON(os.Stdout, summarise(&asset.Record{Asset: *a}))
			break
		}
		r, err := l.GetAssetRecord(arguments[0])
		if nil != err {
			exitwithstatus.Message("asset: %q error: %s", arguments[0], err)
		}
		printJSON(os.Stdout, summarise(r))

	default:
		log.Criticalf("unhandled command: %q", command)
		exitwithstatus.Message("unhandled command: %q", command)
	}

	return true
}

// summaries of the stored assets selected by PREFIX COUNT START
func listAssets(l *ledger.Ledger, arguments []string) ([]assetSummary, error) {
	items, err := l.ListAssets(listArguments(arguments))
	if nil != err {
		return nil, err
	}
	summaries := make([]assetSummary, 0, len(items))
	for _, item := range items {
		summaries = append(summaries, summarise(item.Record))
	}
	return summaries, nil
}

// PREFIX COUNT START with defaults of all, DefaultListCount and zero
func listArguments(arguments []string) (string, int, int) {
	filter := "*"
	count := directory.DefaultListCount
	start := 0

	if len(arguments) > 0 {
		filter = arguments[0]
	}
	if len(arguments) > 1 {
		n, err := strconv.Atoi(arguments[1])
		if nil != err || n < 1 {
			exitwithstatus.Message("invalid count: %q", arguments[1])
		}
		count = n
	}
	if len(arguments) > 2 {
		n, err := strconv.Atoi(arguments[2])
		if nil != err {
			exitwithstatus.Message("invalid start: %q", arguments[2])
		}
		start = n
	}
	return filter, count, start
}

// the printable form of an asset record
type assetSummary struct {
	Name          string        `json:"name"`
	Symbol        string        `json:"symbol"`
	ID            asset.ID      `json:"id"`
	Type          string        `json:"type"`
	Flags         []string      `json:"flags"`
	Expiry        uint32        `json:"expiry,omitempty"`
	ContractURL   string        `json:"contractUrl,omitempty"`
	IssuerAddress string        `json:"issuerAddress,omitempty"`
	IssuedAmount  amount.Amount `json:"issuedAmount"`
	TxHash        digest.Digest `json:"txHash"`
	Time          uint32        `json:"time,omitempty"`
}

var flagNames = []struct {
	flag asset.Flags
	name string
}{
	{asset.Transferable, "transferable"},
	{asset.Convertable, "convertable"},
	{asset.Limited, "limited"},
	{asset.Restricted, "restricted"},
	{asset.Stakeable, "stakeable"},
	{asset.Inflatable, "inflatable"},
	{asset.Divisible, "divisible"},
}

func summarise(r *asset.Record) assetSummary {
	a := &r.Asset
	flags := make([]string, 0, len(flagNames))
	for _, f := range flagNames {
		if 0 != a.Flags&f.flag {
			flags = append(flags, f.name)
		}
	}
	return assetSummary{
		Name:          a.Name(),
		Symbol:        a.Symbol(),
		ID:            a.ID,
		Type:          a.Type.String(),
		Flags:         flags,
		Expiry:        a.Expiry,
		ContractURL:   a.ContractURL,
		IssuerAddress: a.IssuerAddress,
		IssuedAmount:  r.IssuedAmount,
		TxHash:        r.TxHash,
		Time:          r.Time,
	}
}

func printJSON(w io.Writer, message interface{}) {
	b, err := json.MarshalIndent(message, "", "  ")
	if nil != err {
		exitwithstatus.Message("error: %s", err)
	}
	fmt.Fprintf(w, "%s\n", b)
}
