// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/bitmark-inc/creatured/background"
	"github.com/bitmark-inc/creatured/balance"
	"github.com/bitmark-inc/creatured/block"
	"github.com/bitmark-inc/creatured/chain"
	"github.com/bitmark-inc/creatured/claim"
	"github.com/bitmark-inc/creatured/creature"
	"github.com/bitmark-inc/creatured/messagebus"
	"github.com/bitmark-inc/creatured/publish"
	"github.com/bitmark-inc/creatured/random"
	"github.com/bitmark-inc/creatured/rpc"
	"github.com/bitmark-inc/creatured/rpc/origin"
	"github.com/bitmark-inc/creatured/rpc/server"
	"github.com/bitmark-inc/creatured/storage"
	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/getoptions"
	"github.com/bitmark-inc/logger"
)

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

// main program
func main() {
	// ensure exit handler is first
	defer exitwithstatus.Handler()

	flags := []getoptions.Option{
		{Long: "help", HasArg: getoptions.NO_ARGUMENT, Short: 'h'},
		{Long: "verbose", HasArg: getoptions.NO_ARGUMENT, Short: 'v'},
		{Long: "quiet", HasArg: getoptions.NO_ARGUMENT, Short: 'q'},
		{Long: "version", HasArg: getoptions.NO_ARGUMENT, Short: 'V'},
		{Long: "config-file", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'c'},
	}

	program, options, arguments, err := getoptions.GetOS(flags)
	if nil != err {
		exitwithstatus.Message("%s: getoptions error: %s", program, err)
	}

	if len(options["version"]) > 0 {
		processSetupCommand(program, []string{"version"})
		return
	}

	if len(options["help"]) > 0 {
		processSetupCommand(program, []string{"help"})
		return
	}

	// these commands do not require the configuration and
	// process data needed for initial setup
	if len(arguments) > 0 && processSetupCommand(program, arguments) {
		return
	}

	if 1 != len(options["config-file"]) {
		exitwithstatus.Message("%s: only one config-file option is required, %d were detected", program, len(options["config-file"]))
	}

	// read options and parse the configuration file
	configurationFile := options["config-file"][0]
	theConfiguration, err := getConfiguration(configurationFile)
	if nil != err {
		exitwithstatus.Message("%s: failed to read configuration from: %q  error: %s", program, configurationFile, err)
	}

	// these commands require the configuration and
	// perform enquiries on the configuration
	if len(arguments) > 0 && processConfigCommand(arguments, theConfiguration) {
		return
	}

	// start logging
	if err = logger.Initialise(theConfiguration.Logging); nil != err {
		exitwithstatus.Message("%s: logger setup failed with error: %s", program, err)
	}
	defer logger.Finalise()

	// create a logger channel for the main program
	log := logger.New("main")
	defer log.Info("finished")
	log.Info("starting…")
	log.Infof("version: %s", version)
	log.Debugf("theConfiguration: %v", theConfiguration)

	// ------------------
	// start of real main
	// ------------------

	// optional PID file
	// use if not running under a supervisor program like daemon(8)
	if "" != theConfiguration.PidFile {
		lockFile, err := os.OpenFile(theConfiguration.PidFile, os.O_WRONLY|os.O_EXCL|os.O_CREATE, os.ModeExclusive|0600)
		if err != nil {
			if os.IsExist(err) {
				exitwithstatus.Message("%s: another instance is already running", program)
			}
			exitwithstatus.Message("%s: PID file: %q creation failed, error: %s", program, theConfiguration.PidFile, err)
		}
		fmt.Fprintf(lockFile, "%d\n", os.Getpid())
		lockFile.Close()
		defer os.Remove(theConfiguration.PidFile)
	}

	// general info
	testMode := chain.IsTesting(theConfiguration.Chain)
	log.Infof("chain: %s  test mode: %v", theConfiguration.Chain, testMode)
	log.Infof("database: %q", theConfiguration.Database.Name)

	// connection info
	log.Debugf("%s = %#v", "ClientRPC", theConfiguration.ClientRPC)
	log.Debugf("%s = %#v", "Publishing", theConfiguration.Publishing)

	// start the data storage
	log.Info("initialise storage")
	store, err := storage.Open(theConfiguration.Database.Name, false)
	if nil != err {
		log.Criticalf("storage initialise error: %s", err)
		exitwithstatus.Message("storage initialise error: %s", err)
	}
	defer store.Close()

	ledger := balance.New(logger.New("balance"), balance.Handles{
		Free:     store.Pool.FreeBalances,
		Reserved: store.Pool.ReservedBalances,
		Accounts: store.Pool.Accounts,
	})

	applied, err := ledger.Genesis(store, store.Pool.Counters, testMode, theConfiguration.Genesis.Balances)
	if nil != err {
		log.Criticalf("genesis balances error: %s", err)
		exitwithstatus.Message("genesis balances error: %s", err)
	}
	if applied {
		log.Infof("genesis balances: %d applied", len(theConfiguration.Genesis.Balances))
	}

	// block context - depends on storage
	log.Info("initialise block")
	seed, _ := theConfiguration.GenesisSeed() // checked with the configuration
	blocks, err := block.New(logger.New("block"), store, seed, theConfiguration.BlockInterval())
	if nil != err {
		log.Criticalf("block initialise error: %s", err)
		exitwithstatus.Message("block initialise error: %s", err)
	}
	log.Infof("block: %d", blocks.Number())

	bus := messagebus.Bus.Broadcast
	defer bus.Release()

	registry := creature.New(
		logger.New("creature"),
		store,
		creature.Handles{
			Creatures: store.Pool.Creatures,
			Owners:    store.Pool.Owners,
			Counters:  store.Pool.Counters,
		},
		theConfiguration.Registry,
		ledger,
		random.Blake2{},
		blocks,
		bus,
	)
	log.Infof("creatures: %d", registry.CurrentIndex())

	claims := claim.New(
		logger.New("claim"),
		store,
		store.Pool.Proofs,
		theConfiguration.Claims,
		ledger,
		blocks,
		bus,
	)

	// start up the publishing background processes
	var publicKey []byte
	if 0 == len(theConfiguration.Publishing.Broadcast) {
		log.Info("publishing disabled")
	} else {
		err = publish.Initialise(&theConfiguration.Publishing, bus)
		if nil != err {
			log.Criticalf("publish initialise error: %s", err)
			exitwithstatus.Message("publish initialise error: %s", err)
		}
		defer publish.Finalise()
		publicKey = publish.PublicKey()
	}

	// start up the rpc background processes
	err = rpc.Initialise(&theConfiguration.ClientRPC, version, server.Services{
		Chain:     theConfiguration.Chain,
		PublicKey: publicKey,
		Window:    origin.DefaultWindow,
		Blocks:    blocks,
		Creatures: registry,
		Claims:    claims,
		Ledger:    ledger,
	})
	if nil != err {
		log.Criticalf("rpc initialise error: %s", err)
		exitwithstatus.Message("rpc initialise error: %s", err)
	}
	defer rpc.Finalise()

	// the claims limit follows the configuration file
	watcher, err := newFileWatcher(configurationFile, logger.New(fileWatcherLoggerPrefix), defaultSettleTime, func() error {
		c, err := getClaimsConfiguration(configurationFile)
		if nil != err {
			return err
		}
		claims.SetMaximumLength(c.MaximumLength)
		log.Infof("claims maximum length: %d", claims.MaximumLength())
		return nil
	})
	if nil != err {
		log.Criticalf("file watcher error: %s", err)
		exitwithstatus.Message("file watcher error: %s", err)
	}

	processes := background.Processes{
		blocks,
		watcher,
	}
	bg := background.Start(processes, nil)
	defer bg.Stop()

	// wait for CTRL-C before shutting down to allow manual testing
	if 0 == len(options["quiet"]) {
		fmt.Printf("\n\nWaiting for CTRL-C (SIGINT) or 'kill <pid>' (SIGTERM)…")
	}

	// turn Signals into channel messages
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)
	sig := <-ch
	log.Infof("received signal: %v", sig)
	if 0 == len(options["quiet"]) {
		fmt.Printf("\nreceived signal: %v\n", sig)
		fmt.Printf("\nshutting down…\n")
	}

	log.Info("shutting down…")
}
