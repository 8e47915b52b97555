package transaction

import (
	"bytes"
	"encoding/hex"
	"testing"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
)

func dummyHash(b byte) chainhash.Hash {
	var h chainhash.Hash
	for i := range h {
		h[i] = b
	}
	return h
}

func dummyTx() *Transaction {
	tx := &Transaction{Version: TxVersion, Locktime: 101}

	in := NewTxInput(dummyHash(0xaa), 1)
	in.Script = []byte{0x51}
	in.Witness = [][]byte{{0x01, 0x02}, {0x03}}
	tx.AddInput(in)

	commitment := bytes.Repeat([]byte{0x08}, CommitmentSize)
	pubKey := bytes.Repeat([]byte{0x02}, PubKeySize)

	tx.AddOutput(NewStandardOutput(5000000000, []byte{0x76, 0xa9, 0x14}))
	tx.AddOutput(NewBlindOutput(
		commitment, []byte{0xde, 0xad}, []byte{0x51}, []byte{0xbe, 0xef},
	))
	tx.AddOutput(NewAnonOutput(
		pubKey, commitment, []byte{0x01}, []byte{0x02, 0x03},
	))
	tx.AddOutput(NewDataOutput([]byte{0x6a, 0x01, 0x00}))
	return tx
}

func TestRoundTrip(t *testing.T) {
	tx := dummyTx()

	txHex, err := tx.ToHex()
	if err != nil {
		t.Fatal(err)
	}

	parsed, err := NewTxFromHex(txHex)
	if err != nil {
		t.Fatal(err)
	}

	res, err := parsed.ToHex()
	if err != nil {
		t.Fatal(err)
	}
	if res != txHex {
		t.Fatalf("Got: %s, expected: %s", res, txHex)
	}

	if parsed.Version != tx.Version {
		t.Fatalf("Got version %d, expected %d", parsed.Version, tx.Version)
	}
	if parsed.Locktime != tx.Locktime {
		t.Fatalf("Got locktime %d, expected %d", parsed.Locktime, tx.Locktime)
	}
	if len(parsed.Inputs) != 1 || len(parsed.Outputs) != 4 {
		t.Fatalf(
			"Got %d inputs and %d outputs, expected 1 and 4",
			len(parsed.Inputs), len(parsed.Outputs),
		)
	}
	if parsed.Outputs[0].Value != 5000000000 {
		t.Fatalf("Got value %d, expected 5000000000", parsed.Outputs[0].Value)
	}
	for i, wantType := range []uint8{
		OutputStandard, OutputBlind, OutputAnon, OutputData,
	} {
		if parsed.Outputs[i].Type != wantType {
			t.Fatalf(
				"Output %d: got type %d, expected %d",
				i, parsed.Outputs[i].Type, wantType,
			)
		}
	}
}

func TestTxHashIgnoresWitness(t *testing.T) {
	tx := dummyTx()

	stripped := dummyTx()
	stripped.Inputs[0].Witness = nil

	if tx.TxHash() != stripped.TxHash() {
		t.Fatal("txid changed with witness data")
	}
	if tx.WitnessHash() == tx.TxHash() {
		t.Fatal("expected distinct witness hash for witness transaction")
	}
	if stripped.WitnessHash() != stripped.TxHash() {
		t.Fatal("expected witness hash to equal txid without witness data")
	}
}

func TestIsCoinbase(t *testing.T) {
	cb := &Transaction{Version: TxVersion}
	cb.AddInput(NewCoinbaseInput([]byte("genesis")))
	cb.AddOutput(NewStandardOutput(100, []byte{0x51}))
	if !cb.IsCoinbase() {
		t.Fatal("expected coinbase")
	}

	tx := dummyTx()
	if tx.IsCoinbase() {
		t.Fatal("expected non coinbase")
	}
}

func TestSerializeBadOutputs(t *testing.T) {
	tx := &Transaction{Version: TxVersion}
	tx.AddInput(NewTxInput(dummyHash(0x01), 0))
	tx.AddOutput(&TxOutput{Type: 0x7f})
	if _, err := tx.Serialize(); err != ErrUnknownOutputType {
		t.Fatalf("Got %v, expected %v", err, ErrUnknownOutputType)
	}

	tx.Outputs[0] = NewBlindOutput(
		bytes.Repeat([]byte{0x08}, CommitmentSize-1), nil, nil, nil,
	)
	if _, err := tx.Serialize(); err != ErrBadCommitmentSize {
		t.Fatalf("Got %v, expected %v", err, ErrBadCommitmentSize)
	}
}

func TestDeserializeBadOutputType(t *testing.T) {
	tx := &Transaction{Version: TxVersion}
	tx.AddInput(NewTxInput(dummyHash(0x01), 0))
	tx.AddOutput(NewDataOutput([]byte{0x00}))

	raw, err := tx.Serialize()
	if err != nil {
		t.Fatal(err)
	}
	// The data output encodes as its type byte followed by a one byte
	// var slice; flip the discriminant to an unknown value.
	idx := bytes.Index(raw, []byte{OutputData, 0x01, 0x00})
	if idx < 0 {
		t.Fatal("data output not found in serialization")
	}
	raw[idx] = 0x7f

	if _, err := NewTxFromHex(hex.EncodeToString(raw)); err != ErrUnknownOutputType {
		t.Fatalf("Got %v, expected %v", err, ErrUnknownOutputType)
	}
}
