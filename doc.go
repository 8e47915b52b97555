// Copyright (c) 2013-2017 The btcsuite developers
// Copyright (c) 2015-2016 The Decred developers
// Copyright (c) 2021-2024 The Umbra developers

/*
This is a walkthrough of the go-umbra building blocks: selecting a network,
reading its reward schedule, deriving addresses and assembling a block.

You can run it with
  $ go run .

First select the network to work against. Components receive the selection as
a Context value instead of reading process global state, so two chains can
coexist in one process.
	ctx := chaincfg.NewContext()
	if err := ctx.SelectParams("regtest"); err != nil {
		panic(err)
	}
	params := ctx.Params()

The parameter set fixes the reward schedule. The yearly issuance budget
spreads over the blocks of a year, and each year of the chain's life applies
its scheduled percent on top.
	params.BlocksPerYear()
	params.BaseBlockReward()
	params.ProofOfStakeRewardAtYear(0)

Addresses encode under the network's registered prefix tables. A pay to
pubkey hash address is the base58check of the pubkey_address prefix and the
hash160 of the compressed public key.
	privkey, err := btcec.NewPrivateKey()
	if err != nil {
		panic(err)
	}
	keyHash := address.Hash160(privkey.PubKey().SerializeCompressed())
	stakeAddr := (&address.Base58{
		Version: params.Base58Prefix(chaincfg.PubKeyAddress),
		Data:    keyHash,
	}).Encode()

Stealth addresses bundle a scan and a spend key; both are validated as curve
points when decoding.
	stealthAddr, err := address.NewStealth(scanKey.PubKey(), spendKey).Encode(params)

A coinbase pays the proof of stake reward resolved from the previous block's
index, plus the fees of its block.
	prev := &chaincfg.BlockIndex{Height: 0, Time: genesisTime}
	reward := params.ProofOfStakeReward(prev, 0)
	coinbase := &transaction.Transaction{Version: transaction.TxVersion}
	coinbase.AddInput(transaction.NewCoinbaseInput([]byte{0x51}))
	coinbase.AddOutput(transaction.NewStandardOutput(reward, script))

Finally the block commits to its transactions through the two merkle roots
and hashes without its staker signature.
	header := &block.Header{
		Version:           block.BlockVersion,
		PrevBlock:         *params.GenesisHash,
		MerkleRoot:        block.CalcMerkleRoot(txs),
		WitnessMerkleRoot: block.CalcWitnessMerkleRoot(txs),
		Timestamp:         timestamp,
		Bits:              params.Consensus.PowLimitBits,
	}
	b := &block.Block{Header: header, Transactions: txs}
*/
package main
