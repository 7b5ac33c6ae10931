// Copyright (c) 2025 Shell Reserve developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"path/filepath"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/syndtr/goleveldb/leveldb"
	"github.com/shellreserve/node/wire"
)

// keyStore persists the raw serialized private keys of locally operated
// staking outpoints across restarts, so masternoded doesn't need its
// --localkey flag re-supplied on every launch. It is a thin leveldb table
// keyed by the outpoint's wire encoding.
type keyStore struct {
	db *leveldb.DB
}

func openKeyStore(dataDir string) (*keyStore, error) {
	db, err := leveldb.OpenFile(filepath.Join(dataDir, "localkeys"), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to open local key store: %w", err)
	}
	return &keyStore{db: db}, nil
}

func (k *keyStore) Close() error {
	return k.db.Close()
}

func outpointKey(op wire.OutPoint) []byte {
	key := make([]byte, 0, 36)
	key = append(key, op.Hash[:]...)
	key = append(key, byte(op.Index), byte(op.Index>>8), byte(op.Index>>16), byte(op.Index>>24))
	return key
}

// Put records priv as the signing key for op.
func (k *keyStore) Put(op wire.OutPoint, priv *btcec.PrivateKey) error {
	return k.db.Put(outpointKey(op), priv.Serialize(), nil)
}

// Delete removes any recorded key for op.
func (k *keyStore) Delete(op wire.OutPoint) error {
	return k.db.Delete(outpointKey(op), nil)
}

// LoadAll returns every persisted (outpoint, key) pair.
func (k *keyStore) LoadAll() (map[wire.OutPoint]*btcec.PrivateKey, error) {
	out := make(map[wire.OutPoint]*btcec.PrivateKey)
	iter := k.db.NewIterator(nil, nil)
	defer iter.Release()
	for iter.Next() {
		key := iter.Key()
		if len(key) != 36 {
			continue
		}
		var op wire.OutPoint
		copy(op.Hash[:], key[:32])
		op.Index = uint32(key[32]) | uint32(key[33])<<8 | uint32(key[34])<<16 | uint32(key[35])<<24

		priv, _ := btcec.PrivKeyFromBytes(iter.Value())
		out[op] = priv
	}
	return out, iter.Error()
}
