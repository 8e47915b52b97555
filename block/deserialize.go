package block

import (
	"bytes"

	"github.com/btcsuite/btcd/chaincfg/chainhash"

	"github.com/umbra-project/go-umbra/internal/bufferutil"
	"github.com/umbra-project/go-umbra/transaction"
)

func deserialize(buf *bytes.Buffer) (*Block, error) {
	header, err := DeserializeHeader(buf)
	if err != nil {
		return nil, err
	}

	d := bufferutil.NewDeserializer(buf)
	txCount, err := d.ReadVarInt()
	if err != nil {
		return nil, err
	}

	transactions := make([]*transaction.Transaction, 0, txCount)
	for i := uint64(0); i < txCount; i++ {
		tx, err := transaction.NewTxFromBuffer(buf)
		if err != nil {
			return nil, err
		}
		transactions = append(transactions, tx)
	}

	signature, err := d.ReadVarSlice()
	if err != nil {
		return nil, err
	}

	return &Block{
		Header:       header,
		Transactions: transactions,
		Signature:    signature,
	}, nil
}

// DeserializeHeader reads the fixed 116 byte header encoding.
func DeserializeHeader(buf *bytes.Buffer) (*Header, error) {
	d := bufferutil.NewDeserializer(buf)

	version, err := d.ReadUint32()
	if err != nil {
		return nil, err
	}

	readHash := func() (chainhash.Hash, error) {
		var h chainhash.Hash
		b, err := d.ReadSlice(chainhash.HashSize)
		if err != nil {
			return h, err
		}
		copy(h[:], b)
		return h, nil
	}

	prevBlock, err := readHash()
	if err != nil {
		return nil, err
	}
	merkleRoot, err := readHash()
	if err != nil {
		return nil, err
	}
	witnessMerkleRoot, err := readHash()
	if err != nil {
		return nil, err
	}

	timestamp, err := d.ReadUint32()
	if err != nil {
		return nil, err
	}
	bits, err := d.ReadUint32()
	if err != nil {
		return nil, err
	}
	nonce, err := d.ReadUint32()
	if err != nil {
		return nil, err
	}

	return &Header{
		Version:           version,
		PrevBlock:         prevBlock,
		MerkleRoot:        merkleRoot,
		WitnessMerkleRoot: witnessMerkleRoot,
		Timestamp:         timestamp,
		Bits:              bits,
		Nonce:             nonce,
	}, nil
}
