// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/bitmark-inc/creatured/balance"
	"github.com/bitmark-inc/creatured/block"
	"github.com/bitmark-inc/creatured/chain"
	"github.com/bitmark-inc/creatured/claim"
	"github.com/bitmark-inc/creatured/configuration"
	"github.com/bitmark-inc/creatured/creature"
	"github.com/bitmark-inc/creatured/publish"
	"github.com/bitmark-inc/creatured/rpc/listeners"
	"github.com/bitmark-inc/creatured/util"
	"github.com/bitmark-inc/logger"
)

// basic defaults (directories and files are relative to the "DataDirectory" from Configuration file)
const (
	defaultDataDirectory = "" // this will error; use "." for the same directory as the config file

	defaultPublishPublicKeyFile  = "publish.public"
	defaultPublishPrivateKeyFile = "publish.private"
	defaultKeyFile               = "rpc.key"
	defaultCertificateFile       = "rpc.crt"

	defaultLevelDBDirectory = "data"
	defaultCreatureDatabase = chain.Creature + ".leveldb"
	defaultTestingDatabase  = chain.Testing + ".leveldb"
	defaultLocalDatabase    = chain.Local + ".leveldb"

	defaultLogDirectory = "log"
	defaultLogFile      = "creatured.log"
	defaultLogCount     = 10          //  number of log files retained
	defaultLogSize      = 1024 * 1024 // rotate when <logfile> exceeds this size

	defaultRPCClients    = 10
	defaultBlockInterval = 60 // seconds
	defaultReserved      = 10
)

// LoglevelMap - to hold log levels
type LoglevelMap map[string]string

// path expanded or calculated defaults
var (
	defaultLogLevels = LoglevelMap{
		logger.DefaultTag: "critical",
	}
)

// DatabaseType - where the LevelDB files are kept
type DatabaseType struct {
	Directory string `gluamapper:"directory" json:"directory"`
	Name      string `gluamapper:"name" json:"name"`
}

// BlockType - block timing and the starting seed
type BlockType struct {
	Interval int    `gluamapper:"interval" json:"interval"`
	Seed     string `gluamapper:"seed" json:"seed"`
}

// GenesisType - balances deposited when the database is new
type GenesisType struct {
	Balances []balance.Allocation `gluamapper:"balances" json:"balances"`
}

// Configuration - the whole configuration file
type Configuration struct {
	DataDirectory string       `gluamapper:"data_directory" json:"data_directory"`
	PidFile       string       `gluamapper:"pidfile" json:"pidfile"`
	Chain         string       `gluamapper:"chain" json:"chain"`
	Database      DatabaseType `gluamapper:"database" json:"database"`

	Registry creature.Configuration `gluamapper:"registry" json:"registry"`
	Claims   claim.Configuration    `gluamapper:"claims" json:"claims"`
	Block    BlockType              `gluamapper:"block" json:"block"`
	Genesis  GenesisType            `gluamapper:"genesis" json:"genesis"`

	ClientRPC  listeners.RPCConfiguration `gluamapper:"client_rpc" json:"client_rpc"`
	Publishing publish.Configuration      `gluamapper:"publishing" json:"publishing"`
	Logging    logger.Configuration       `gluamapper:"logging" json:"logging"`
}

// BlockInterval - time between blocks
func (c *Configuration) BlockInterval() time.Duration {
	return time.Duration(c.Block.Interval) * time.Second
}

// GenesisSeed - configured seed or the chain default
func (c *Configuration) GenesisSeed() ([block.SeedLength]byte, error) {
	seed := [block.SeedLength]byte{}
	if "" == c.Block.Seed {
		return chain.GenesisSeed(c.Chain), nil
	}
	buffer, err := hex.DecodeString(c.Block.Seed)
	if nil != err {
		return seed, err
	}
	if block.SeedLength != len(buffer) {
		return seed, fmt.Errorf("block seed: must be %d bytes, not: %d", block.SeedLength, len(buffer))
	}
	copy(seed[:], buffer)
	return seed, nil
}

func defaultConfiguration() *Configuration {
	return &Configuration{

		DataDirectory: defaultDataDirectory,
		PidFile:       "", // no PidFile by default
		Chain:         chain.Creature,

		Database: DatabaseType{
			Directory: defaultLevelDBDirectory,
			Name:      defaultCreatureDatabase,
		},

		Registry: creature.Configuration{
			ReservedAmountOnCreate: defaultReserved,
		},

		Claims: claim.Configuration{
			MaximumLength: claim.DefaultMaximumLength,
		},

		Block: BlockType{
			Interval: defaultBlockInterval,
		},

		ClientRPC: listeners.RPCConfiguration{
			MaximumConnections: defaultRPCClients,
			Certificate:        defaultCertificateFile,
			PrivateKey:         defaultKeyFile,
		},

		Publishing: publish.Configuration{
			PublicKey:  defaultPublishPublicKeyFile,
			PrivateKey: defaultPublishPrivateKeyFile,
		},

		Logging: logger.Configuration{
			Directory: defaultLogDirectory,
			File:      defaultLogFile,
			Size:      defaultLogSize,
			Count:     defaultLogCount,
			Levels:    defaultLogLevels,
		},
	}
}

// will read decode and verify the configuration
func getConfiguration(configurationFileName string) (*Configuration, error) {

	configurationFileName, err := filepath.Abs(filepath.Clean(configurationFileName))
	if nil != err {
		return nil, err
	}

	// absolute path to the main directory
	dataDirectory, _ := filepath.Split(configurationFileName)

	options := defaultConfiguration()

	if err := configuration.ParseConfigurationFile(configurationFileName, options); err != nil {
		return nil, err
	}

	// if any test mode and the database file was not specified
	// switch to appropriate default.  Abort if then chain name is
	// not recognised.
	options.Chain = strings.ToLower(options.Chain)
	if !chain.Valid(options.Chain) {
		return nil, fmt.Errorf("Chain: %q is not supported", options.Chain)
	}

	// if database was not changed from default
	if options.Database.Name == defaultCreatureDatabase {
		switch options.Chain {
		case chain.Creature:
			// already correct default
		case chain.Testing:
			options.Database.Name = defaultTestingDatabase
		case chain.Local:
			options.Database.Name = defaultLocalDatabase
		default:
			return nil, fmt.Errorf("Chain: %s no default database setting", options.Chain)
		}
	}

	if options.Block.Interval < 1 {
		return nil, fmt.Errorf("Block: interval: %d must be at least one second", options.Block.Interval)
	}
	if _, err := options.GenesisSeed(); nil != err {
		return nil, err
	}

	// ensure absolute data directory
	if "" == options.DataDirectory || "~" == options.DataDirectory {
		return nil, fmt.Errorf("Path: %q is not a valid directory", options.DataDirectory)
	} else if "." == options.DataDirectory {
		options.DataDirectory = dataDirectory // same directory as the configuration file
	} else {
		options.DataDirectory = filepath.Clean(options.DataDirectory)
	}

	// this directory must exist - i.e. must be created prior to running
	if fileInfo, err := os.Stat(options.DataDirectory); nil != err {
		return nil, err
	} else if !fileInfo.IsDir() {
		return nil, fmt.Errorf("Path: %q is not a directory", options.DataDirectory)
	}

	// force all relevant items to be absolute paths
	// if not, assign them to the data directory
	mustBeAbsolute := []*string{
		&options.Database.Directory,
		&options.ClientRPC.Certificate,
		&options.ClientRPC.PrivateKey,
		&options.Publishing.PublicKey,
		&options.Publishing.PrivateKey,
		&options.Logging.Directory,
	}
	for _, f := range mustBeAbsolute {
		*f = util.EnsureAbsolute(options.DataDirectory, *f)
	}

	// optional absolute paths i.e. blank or an absolute path
	optionalAbsolute := []*string{
		&options.PidFile,
	}
	for _, f := range optionalAbsolute {
		if "" != *f {
			*f = util.EnsureAbsolute(options.DataDirectory, *f)
		}
	}

	// fail if any of these are not simple file names i.e. must
	// not contain path seperator, then add the correct directory
	// prefix, file item is first and corresponding directory is
	// second (or nil if no prefix can be added)
	mustNotBePaths := [][2]*string{
		{&options.Database.Name, &options.Database.Directory},
		{&options.Logging.File, nil},
	}
	for _, f := range mustNotBePaths {
		switch filepath.Dir(*f[0]) {
		case "", ".":
			if nil != f[1] {
				*f[0] = util.EnsureAbsolute(*f[1], *f[0])
			}
		default:
			return nil, fmt.Errorf("Files: %q is not plain name", *f[0])
		}
	}

	// make absolute and create directories if they do not already exist
	for _, d := range []*string{
		&options.Database.Directory,
		&options.Logging.Directory,
	} {
		*d = util.EnsureAbsolute(options.DataDirectory, *d)
		if err := os.MkdirAll(*d, 0700); nil != err {
			return nil, err
		}
	}

	// done
	return options, nil
}

// re-read only the settings that may change while running
func getClaimsConfiguration(configurationFileName string) (claim.Configuration, error) {
	options := defaultConfiguration()
	if err := configuration.ParseConfigurationFile(configurationFileName, options); err != nil {
		return claim.Configuration{}, err
	}
	return options.Claims, nil
}
