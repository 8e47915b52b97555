package chaincfg

import (
	"encoding/hex"

	"github.com/btcsuite/btcd/txscript"

	"github.com/umbra-project/go-umbra/block"
	"github.com/umbra-project/go-umbra/transaction"
)

// genesisPayout is one output of a genesis coinbase: the initial allocation
// paid to a 160 bit key hash.
type genesisPayout struct {
	value   int64
	keyHash []byte
}

// hexToBytes converts the passed hex string into bytes and will panic if
// there is an error. This is only provided for the hard-coded constants so
// errors in the source code can be detected.
func hexToBytes(s string) []byte {
	b, err := hex.DecodeString(s)
	if err != nil {
		panic("invalid hex in source file: " + s)
	}
	return b
}

func mustScript(builder *txscript.ScriptBuilder) []byte {
	script, err := builder.Script()
	if err != nil {
		panic(err)
	}
	return script
}

func payToKeyHashScript(keyHash []byte) []byte {
	return mustScript(txscript.NewScriptBuilder().
		AddOp(txscript.OP_DUP).
		AddOp(txscript.OP_HASH160).
		AddData(keyHash).
		AddOp(txscript.OP_EQUALVERIFY).
		AddOp(txscript.OP_CHECKSIG))
}

// genesisCoinbaseTx assembles the single transaction of a genesis block: the
// dated headline proves the block was not premined earlier, the outputs
// carry the initial allocation.
func genesisCoinbaseTx(bits uint32, headline string, payouts []genesisPayout) *transaction.Transaction {
	sigScript := mustScript(txscript.NewScriptBuilder().
		AddInt64(int64(bits)).
		AddData([]byte(headline)))

	tx := &transaction.Transaction{Version: transaction.TxVersion}
	tx.AddInput(transaction.NewCoinbaseInput(sigScript))
	for _, payout := range payouts {
		tx.AddOutput(transaction.NewStandardOutput(
			payout.value, payToKeyHashScript(payout.keyHash),
		))
	}
	return tx
}

// newGenesisBlock computes a network's first block. The merkle commitments
// and the block hash are derived at init time rather than pinned as
// constants.
func newGenesisBlock(timestamp, bits, nonce uint32, headline string, payouts []genesisPayout) *block.Block {
	txs := []*transaction.Transaction{
		genesisCoinbaseTx(bits, headline, payouts),
	}
	return &block.Block{
		Header: &block.Header{
			Version:           block.BlockVersion,
			MerkleRoot:        block.CalcMerkleRoot(txs),
			WitnessMerkleRoot: block.CalcWitnessMerkleRoot(txs),
			Timestamp:         timestamp,
			Bits:              bits,
			Nonce:             nonce,
		},
		Transactions: txs,
	}
}

const genesisHeadline = "Reuters 01/Jul/2021 Global corporate tax deal backed by 130 countries"

var mainNetGenesisBlock = newGenesisBlock(
	1625097600, 0x1f00ffff, 96427, genesisHeadline,
	[]genesisPayout{
		{1800000 * COIN, hexToBytes("3a5f8c11be92d704f6c7e0a2d8b94c5561e0ff73")},
		{1400000 * COIN, hexToBytes("91c4d0e86a23b5fb0d2ed80c7a61c97f6f04c318")},
		{1000000 * COIN, hexToBytes("c7de29b0441c85aa9f312702a6cc2f69d3e45b99")},
		{800000 * COIN, hexToBytes("5e90b27d63d1faea1f2c850041be07ec2fde4871")},
	},
)

var mainNetGenesisHash = mainNetGenesisBlock.BlockHash()

var testNetGenesisBlock = newGenesisBlock(
	1622505600, 0x1f00ffff, 30489, genesisHeadline,
	[]genesisPayout{
		{3000000 * COIN, hexToBytes("7bf2a80935cd410c2bb1fdbcdbbae63c9a2e2f58")},
		{2000000 * COIN, hexToBytes("d024dc2e5eb3e3a22bc0595a591dde25a9267e04")},
	},
)

var testNetGenesisHash = testNetGenesisBlock.BlockHash()

var regNetGenesisBlock = newGenesisBlock(
	1620000000, 0x207fffff, 0, genesisHeadline,
	[]genesisPayout{
		{10000 * COIN, hexToBytes("08f07bc1af152f4c9f0ac64f2e1d4bc1a6be9d52")},
	},
)

var regNetGenesisHash = regNetGenesisBlock.BlockHash()
