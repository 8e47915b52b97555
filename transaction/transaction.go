package transaction

import (
	"bytes"
	"encoding/hex"
	"errors"

	"github.com/btcsuite/btcd/chaincfg/chainhash"

	"github.com/umbra-project/go-umbra/internal/bufferutil"
)

const (
	// TxVersion is the current transaction version.
	TxVersion uint16 = 2

	// CommitmentSize is the size of a Pedersen commitment carried by
	// blind and anon outputs.
	CommitmentSize = 33

	// PubKeySize is the size of the one-time public key of an anon output.
	PubKeySize = 33

	defaultSequence = 0xffffffff
)

// Output discriminants as they appear on the wire.
const (
	OutputNull uint8 = iota
	OutputStandard
	OutputBlind
	OutputAnon
	OutputData
)

var (
	// ErrUnknownOutputType is returned when (de)serializing an output
	// whose discriminant is not one of the known values.
	ErrUnknownOutputType = errors.New("unknown output type")

	// ErrBadCommitmentSize is returned when a blind or anon output does
	// not carry a commitment of exactly CommitmentSize bytes.
	ErrBadCommitmentSize = errors.New("bad value commitment size")

	// ErrBadPubKeySize is returned when an anon output does not carry a
	// one-time public key of exactly PubKeySize bytes.
	ErrBadPubKeySize = errors.New("bad one-time pubkey size")
)

// TxInput defines an umbra transaction input.
type TxInput struct {
	Hash     chainhash.Hash
	Index    uint32
	Script   []byte
	Sequence uint32
	Witness  [][]byte
}

// NewTxInput returns a new input referencing the given outpoint with the
// default sequence.
func NewTxInput(hash chainhash.Hash, index uint32) *TxInput {
	return &TxInput{
		Hash:     hash,
		Index:    index,
		Sequence: defaultSequence,
	}
}

// NewCoinbaseInput returns an input with a null previous outpoint and the
// given signature script, as used by the first transaction of a block.
func NewCoinbaseInput(script []byte) *TxInput {
	return &TxInput{
		Index:    0xffffffff,
		Script:   script,
		Sequence: defaultSequence,
	}
}

func (in *TxInput) hasWitness() bool {
	return len(in.Witness) > 0
}

// TxOutput defines an umbra transaction output. The Type discriminant
// selects which of the remaining fields are meaningful:
//
//	OutputStandard: Value, Script
//	OutputBlind:    ValueCommitment, Data, Script, RangeProof
//	OutputAnon:     PubKey, ValueCommitment, Data, RangeProof
//	OutputData:     Data
type TxOutput struct {
	Type            uint8
	Value           int64
	Script          []byte
	ValueCommitment []byte
	PubKey          []byte
	Data            []byte
	RangeProof      []byte
}

// NewStandardOutput returns a plain-value output paying to the given script.
func NewStandardOutput(value int64, script []byte) *TxOutput {
	return &TxOutput{Type: OutputStandard, Value: value, Script: script}
}

// NewBlindOutput returns a confidential output whose value is hidden behind
// the given commitment. The data blob carries the ephemeral key material the
// receiver needs to unblind it.
func NewBlindOutput(commitment, data, script, rangeProof []byte) *TxOutput {
	return &TxOutput{
		Type:            OutputBlind,
		ValueCommitment: commitment,
		Data:            data,
		Script:          script,
		RangeProof:      rangeProof,
	}
}

// NewAnonOutput returns a ring-confidential output addressed to a one-time
// public key.
func NewAnonOutput(pubKey, commitment, data, rangeProof []byte) *TxOutput {
	return &TxOutput{
		Type:            OutputAnon,
		PubKey:          pubKey,
		ValueCommitment: commitment,
		Data:            data,
		RangeProof:      rangeProof,
	}
}

// NewDataOutput returns a zero-value data carrier output.
func NewDataOutput(data []byte) *TxOutput {
	return &TxOutput{Type: OutputData, Data: data}
}

// Transaction defines an umbra transaction message.
type Transaction struct {
	Version  uint16
	Locktime uint32
	Inputs   []*TxInput
	Outputs  []*TxOutput
}

// NewTxFromBuffer deserializes a transaction from the given buffer.
func NewTxFromBuffer(buf *bytes.Buffer) (*Transaction, error) {
	return deserialize(buf)
}

// NewTxFromHex deserializes a transaction from its hex encoding.
func NewTxFromHex(str string) (*Transaction, error) {
	hexBytes, err := hex.DecodeString(str)
	if err != nil {
		return nil, err
	}
	return NewTxFromBuffer(bytes.NewBuffer(hexBytes))
}

// AddInput adds a transaction input to the message.
func (tx *Transaction) AddInput(ti *TxInput) {
	tx.Inputs = append(tx.Inputs, ti)
}

// AddOutput adds a transaction output to the message.
func (tx *Transaction) AddOutput(to *TxOutput) {
	tx.Outputs = append(tx.Outputs, to)
}

// IsCoinbase reports whether the transaction spends the null outpoint only.
func (tx *Transaction) IsCoinbase() bool {
	if len(tx.Inputs) != 1 {
		return false
	}
	in := tx.Inputs[0]
	return in.Index == 0xffffffff && in.Hash == chainhash.Hash{}
}

func (tx *Transaction) hasWitness() bool {
	for _, in := range tx.Inputs {
		if in.hasWitness() {
			return true
		}
	}
	return false
}

// TxHash generates the hash of the transaction serialized without witness
// data.
func (tx *Transaction) TxHash() chainhash.Hash {
	s := bufferutil.NewSerializer(nil)
	_ = tx.serialize(s, false)
	return chainhash.DoubleHashH(s.Bytes())
}

// WitnessHash generates the hash of the transaction serialized with any
// witness data included. If a transaction has no witness data, the witness
// hash is the same as its txid.
func (tx *Transaction) WitnessHash() chainhash.Hash {
	if !tx.hasWitness() {
		return tx.TxHash()
	}
	s := bufferutil.NewSerializer(nil)
	_ = tx.serialize(s, true)
	return chainhash.DoubleHashH(s.Bytes())
}

// Serialize returns the full wire encoding of the transaction.
func (tx *Transaction) Serialize() ([]byte, error) {
	s := bufferutil.NewSerializer(nil)
	if err := tx.serialize(s, true); err != nil {
		return nil, err
	}
	return s.Bytes(), nil
}

// ToHex returns the full wire encoding of the transaction in hex format.
func (tx *Transaction) ToHex() (string, error) {
	b, err := tx.Serialize()
	if err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}
