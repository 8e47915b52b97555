// Package block implements the Umbra block primitive: a bitcoin style
// header extended with a witness merkle root commitment and, for staked
// blocks, a detached block signature.
package block

import (
	"bytes"
	"encoding/hex"

	"github.com/btcsuite/btcd/chaincfg/chainhash"

	"github.com/umbra-project/go-umbra/transaction"
)

const (
	// BlockVersion is the version all blocks carry since genesis.
	BlockVersion uint32 = 0x20000000

	// HeaderSize is the size of a serialized header in bytes.
	HeaderSize = 116
)

// Header holds the fields committed to by the block hash. The detached block
// signature is not among them; it signs the hash and cannot be covered by it.
type Header struct {
	Version           uint32
	PrevBlock         chainhash.Hash
	MerkleRoot        chainhash.Hash
	WitnessMerkleRoot chainhash.Hash
	Timestamp         uint32
	Bits              uint32
	Nonce             uint32
}

// BlockHash computes the double sha256 hash of the serialized header.
func (h *Header) BlockHash() chainhash.Hash {
	s := bufferSerializer()
	// Writing a header to a memory buffer cannot fail.
	_ = h.SerializeHeader(s)
	return chainhash.DoubleHashH(s.Bytes())
}

// Block is a full block: header, transactions and, for staked blocks, the
// staker's signature over the block hash. The genesis block is unsigned.
type Block struct {
	Header       *Header
	Transactions []*transaction.Transaction
	Signature    []byte
}

// NewFromBuffer deserializes a block from the given buffer.
func NewFromBuffer(buf *bytes.Buffer) (*Block, error) {
	return deserialize(buf)
}

// NewFromHex deserializes a block from its hex encoding.
func NewFromHex(h string) (*Block, error) {
	hexBytes, err := hex.DecodeString(h)
	if err != nil {
		return nil, err
	}
	return NewFromBuffer(bytes.NewBuffer(hexBytes))
}

// BlockHash returns the hash of the block header.
func (b *Block) BlockHash() chainhash.Hash {
	return b.Header.BlockHash()
}

// IsProofOfStake reports whether the block carries a staker signature.
func (b *Block) IsProofOfStake() bool {
	return len(b.Signature) > 0
}
