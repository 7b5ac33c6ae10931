// Copyright (c) 2025 Shell Reserve developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/btcsuite/btcd/btcutil"
	flags "github.com/jessevdk/go-flags"
	"github.com/shellreserve/node/chaincfg"
)

const (
	defaultConfigFilename = "masternoded.conf"
	defaultDataDirname    = "data"
	defaultLogDirname     = "logs"
	defaultLogFilename    = "masternoded.log"
	defaultMaxLogSize     = 10 // MB
)

var (
	shellHomeDir      = btcutil.AppDataDir("masternoded", false)
	defaultConfigFile = filepath.Join(shellHomeDir, defaultConfigFilename)
	defaultDataDir    = filepath.Join(shellHomeDir, defaultDataDirname)
	defaultLogDir     = filepath.Join(shellHomeDir, defaultLogDirname)
)

// config defines the command line and config-file options masternoded
// understands. It follows the same flags-tag-per-field convention the rest
// of the toolchain uses for its daemons.
type config struct {
	ConfigFile string `short:"C" long:"configfile" description:"Path to configuration file"`
	DataDir    string `short:"b" long:"datadir" description:"Directory to store the local key database"`
	LogDir     string `long:"logdir" description:"Directory to log output"`

	TestNet bool `long:"testnet" description:"Use the test network"`

	LocalKeyWIF string `long:"localkey" description:"WIF-encoded private key of a staking outpoint to operate locally"`
	LocalTxID   string `long:"localtxid" description:"Transaction id of the local staking outpoint"`
	LocalVout   uint32 `long:"localvout" description:"Output index of the local staking outpoint"`

	Debug string `long:"debuglevel" description:"Logging level: trace, debug, info, warn, error, critical" default:"info"`
}

// loadConfig parses command line and config file options into a config,
// applying the network defaults needed before the masternode core and
// demo host can be constructed.
func loadConfig() (*config, *chaincfg.Params, error) {
	cfg := config{
		ConfigFile: defaultConfigFile,
		DataDir:    defaultDataDir,
		LogDir:     defaultLogDir,
		Debug:      "info",
	}

	preCfg := cfg
	preParser := flags.NewParser(&preCfg, flags.Default)
	if _, err := preParser.Parse(); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		return nil, nil, err
	}

	if preCfg.ConfigFile != defaultConfigFile {
		cfg.ConfigFile = preCfg.ConfigFile
	}

	parser := flags.NewParser(&cfg, flags.Default)
	if _, err := flags.NewIniParser(parser).ParseFile(cfg.ConfigFile); err != nil {
		if _, ok := err.(*os.PathError); !ok {
			return nil, nil, fmt.Errorf("error parsing config file: %w", err)
		}
	}
	if _, err := parser.Parse(); err != nil {
		return nil, nil, err
	}

	params := &chaincfg.MainNetParams
	if cfg.TestNet {
		params = &chaincfg.TestNet3Params
	}

	if err := os.MkdirAll(cfg.DataDir, 0700); err != nil {
		return nil, nil, fmt.Errorf("failed to create data directory: %w", err)
	}
	if err := os.MkdirAll(cfg.LogDir, 0700); err != nil {
		return nil, nil, fmt.Errorf("failed to create log directory: %w", err)
	}

	return &cfg, params, nil
}
