// Copyright (c) 2025 Shell Reserve developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Command masternoded drives the masternode coordination core against a
// minimal in-memory chain, demonstrating how a full node wires the core's
// external interfaces (CoinViewer, BlockIndexer, Signer, Peer, PeerNotifier)
// without requiring the rest of the node's networking stack.
package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcutil"
	"github.com/shellreserve/node/chaincfg"
	"github.com/shellreserve/node/chaincfg/chainhash"
	"github.com/shellreserve/node/masternode"
	"github.com/shellreserve/node/wire"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "masternoded:", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, params, err := loadConfig()
	if err != nil {
		return err
	}

	if err := initLogRotator(cfg.LogDir); err != nil {
		return err
	}
	useLogLevels(cfg.Debug)

	ks, err := openKeyStore(cfg.DataDir)
	if err != nil {
		return err
	}
	defer ks.Close()

	host := newDemoHost()

	mgr := masternode.New(&masternode.Config{
		Params:         params,
		CoinView:       host,
		Chain:          host,
		Signer:         masternode.DefaultSigner{},
		Peers:          host,
		MonotonicNowMs: nowMs,
	})

	// Seed the demo chain past the hard-fork height so election tallying
	// and payee selection are both active immediately.
	for i := int32(0); i <= params.MasternodeHardForkHeight+1; i++ {
		host.appendBlock(demoHash(i), nil, nil)
	}
	mgr.LoadElections()

	if cfg.LocalTxID != "" {
		if err := registerLocal(host, ks, mgr, cfg, params); err != nil {
			return err
		}
	}
	for op, priv := range mustLoadAll(ks) {
		if err := mgr.StartLocal(op, priv); err != nil {
			log.Warnf("masternoded: could not resume local candidate %s: %v", op, err)
			continue
		}
		log.Infof("masternoded: resumed local candidate %s", op)
	}

	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt, syscall.SIGTERM)

	ticker := time.NewTicker(5 * time.Second)
	defer ticker.Stop()

	log.Infof("masternoded: running, tip height %d", host.TipHeight())
	for {
		select {
		case <-ticker.C:
			height := host.appendBlock(demoHash(host.TipHeight()+1), nil, nil)
			hash, _ := host.HashAtHeight(height)
			parentHash, _ := host.HashAtHeight(height - 1)
			mgr.TickOnBestChanged()
			mgr.OnBlockConnect(height, hash, parentHash, nil, nil)
			stats := mgr.Stats()
			log.Infof("masternoded: height %d, registry=%d elected=%d local=%d",
				height, stats.RegistryCount, stats.ElectedCount, stats.LocalCount)
		case <-interrupt:
			log.Infof("masternoded: shutting down")
			return nil
		}
	}
}

// registerLocal admits a fresh staking outpoint into the demo host's coin
// view (since this harness has no real wallet or UTXO set) and starts
// operating it locally.
func registerLocal(host *demoHost, ks *keyStore, mgr *masternode.Manager, cfg *config, params *chaincfg.Params) error {
	hash, err := chainhash.NewHashFromStr(cfg.LocalTxID)
	if err != nil {
		return fmt.Errorf("invalid --localtxid: %w", err)
	}
	op := *wire.NewOutPoint(hash, cfg.LocalVout)

	wif, err := btcutil.DecodeWIF(cfg.LocalKeyWIF)
	if err != nil {
		return fmt.Errorf("invalid --localkey: %w", err)
	}
	priv := wif.PrivKey

	var keyID masternode.KeyID
	pubHash := btcutil.Hash160(priv.PubKey().SerializeCompressed())
	copy(keyID[:], pubHash)

	host.mtx.Lock()
	host.outputs[op] = masternode.OutputInfo{
		Confirmations: masternode.MinConfirmations,
		Value:         params.MasternodeMinStake,
		KeyID:         keyID,
	}
	host.mtx.Unlock()

	if err := mgr.StartLocal(op, priv); err != nil {
		return err
	}
	return ks.Put(op, priv)
}

func mustLoadAll(ks *keyStore) map[wire.OutPoint]*btcec.PrivateKey {
	m, err := ks.LoadAll()
	if err != nil {
		log.Warnf("masternoded: failed to load local keys: %v", err)
		return nil
	}
	return m
}

func nowMs() int64 {
	return time.Now().UnixMilli()
}

func demoHash(height int32) chainhash.Hash {
	var h chainhash.Hash
	b := []byte(fmt.Sprintf("demo-block-%d", height))
	copy(h[:], b)
	return h
}
