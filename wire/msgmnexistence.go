// Copyright (c) 2025 Shell Reserve developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wire

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/shellreserve/node/chaincfg/chainhash"
)

// MaxMNExistenceSignatureSize is the maximum length, in bytes, of the
// compact recoverable signature carried by a MsgMNExistence. 65 bytes is
// the standard size of a btcec compact ECDSA signature (1 recovery-id byte
// + 32-byte r + 32-byte s).
const MaxMNExistenceSignatureSize = 65

// CmdMNExistence is the command string used in the message header for a
// masternode existence attestation.
const CmdMNExistence = "mnexists"

// MsgMNExistence implements the Message interface and represents a Shell
// mnexists message. It is a signed attestation, gossiped peer to peer, that
// a masternode candidate observed a given block.
type MsgMNExistence struct {
	Outpoint    OutPoint
	BlockHeight uint32
	BlockHash   chainhash.Hash
	Signature   []byte
}

// SigningHash returns the digest that Signature is computed over. It
// deliberately excludes the signature itself so the signature can be
// recovered against it.
func (msg *MsgMNExistence) SigningHash() chainhash.Hash {
	buf := make([]byte, 0, chainhash.HashSize+4+chainhash.HashSize)
	buf = append(buf, msg.Outpoint.Hash[:]...)
	var idx [4]byte
	binary.LittleEndian.PutUint32(idx[:], msg.Outpoint.Index)
	buf = append(buf, idx[:]...)
	var h [4]byte
	binary.LittleEndian.PutUint32(h[:], msg.BlockHeight)
	buf = append(buf, h[:]...)
	buf = append(buf, msg.BlockHash[:]...)
	return chainhash.HashH(buf)
}

// IdentityHash returns the digest used for gossip dedup and relay memory.
// Unlike SigningHash, it includes the signature bytes so that a forged
// resend with a different signature is never mistaken for a duplicate.
func (msg *MsgMNExistence) IdentityHash() chainhash.Hash {
	signing := msg.SigningHash()
	buf := make([]byte, 0, chainhash.HashSize+len(msg.Signature))
	buf = append(buf, signing[:]...)
	buf = append(buf, msg.Signature...)
	return chainhash.HashH(buf)
}

// BtcDecode decodes r using the given protocol encoding version into the
// receiver. This is part of the Message interface implementation.
func (msg *MsgMNExistence) BtcDecode(r io.Reader, pver uint32) error {
	if err := readElement(r, &msg.Outpoint.Hash); err != nil {
		return err
	}
	if err := readElement(r, &msg.Outpoint.Index); err != nil {
		return err
	}
	if err := readElement(r, &msg.BlockHeight); err != nil {
		return err
	}
	if err := readElement(r, &msg.BlockHash); err != nil {
		return err
	}

	var sigLen uint8
	if err := readElement(r, &sigLen); err != nil {
		return err
	}
	if int(sigLen) > MaxMNExistenceSignatureSize {
		return fmt.Errorf("mnexists signature too long: %d", sigLen)
	}
	sig := make([]byte, sigLen)
	if _, err := io.ReadFull(r, sig); err != nil {
		return err
	}
	msg.Signature = sig
	return nil
}

// BtcEncode encodes the receiver to w using the given protocol encoding
// version. This is part of the Message interface implementation.
func (msg *MsgMNExistence) BtcEncode(w io.Writer, pver uint32) error {
	if len(msg.Signature) > MaxMNExistenceSignatureSize {
		return fmt.Errorf("mnexists signature too long: %d", len(msg.Signature))
	}
	if err := writeElement(w, msg.Outpoint.Hash); err != nil {
		return err
	}
	if err := writeElement(w, msg.Outpoint.Index); err != nil {
		return err
	}
	if err := writeElement(w, msg.BlockHeight); err != nil {
		return err
	}
	if err := writeElement(w, msg.BlockHash); err != nil {
		return err
	}
	if err := writeElement(w, uint8(len(msg.Signature))); err != nil {
		return err
	}
	_, err := w.Write(msg.Signature)
	return err
}

// Command returns the protocol command string for the message.
func (msg *MsgMNExistence) Command() string {
	return CmdMNExistence
}

// MaxPayloadLength returns the maximum length the payload can be for the
// receiver.
func (msg *MsgMNExistence) MaxPayloadLength(pver uint32) uint32 {
	return uint32(chainhash.HashSize + 4 + 4 + chainhash.HashSize + 1 + MaxMNExistenceSignatureSize)
}

func readElement(r io.Reader, dst any) error {
	switch d := dst.(type) {
	case *chainhash.Hash:
		_, err := io.ReadFull(r, d[:])
		return err
	case *uint32:
		var buf [4]byte
		if _, err := io.ReadFull(r, buf[:]); err != nil {
			return err
		}
		*d = binary.LittleEndian.Uint32(buf[:])
		return nil
	case *uint8:
		var buf [1]byte
		if _, err := io.ReadFull(r, buf[:]); err != nil {
			return err
		}
		*d = buf[0]
		return nil
	default:
		return fmt.Errorf("readElement: unsupported type %T", dst)
	}
}

func writeElement(w io.Writer, src any) error {
	switch s := src.(type) {
	case chainhash.Hash:
		_, err := w.Write(s[:])
		return err
	case uint32:
		var buf [4]byte
		binary.LittleEndian.PutUint32(buf[:], s)
		_, err := w.Write(buf[:])
		return err
	case uint8:
		_, err := w.Write([]byte{s})
		return err
	default:
		return fmt.Errorf("writeElement: unsupported type %T", src)
	}
}
