// Copyright (c) 2013-2017 The btcsuite developers
// Copyright (c) 2015-2016 The Decred developers
// Copyright (c) 2021-2024 The Umbra developers

package main

import (
	"encoding/hex"
	"fmt"
	"time"

	"github.com/btcsuite/btcd/btcec/v2"

	"github.com/umbra-project/go-umbra/address"
	"github.com/umbra-project/go-umbra/block"
	"github.com/umbra-project/go-umbra/chaincfg"
	"github.com/umbra-project/go-umbra/transaction"
)

func main() {
	// Selecting the network to work against.
	ctx := chaincfg.NewContext()
	if err := ctx.SelectParams("regtest"); err != nil {
		panic(err)
	}
	params := ctx.Params()

	// The reward schedule is fixed by the parameters.
	fmt.Printf("network %s, %d blocks a year\n", params.Name, params.BlocksPerYear())
	fmt.Printf("base block reward %d, first year pays %d\n",
		params.BaseBlockReward(), params.ProofOfStakeRewardAtYear(0))

	// Generating the staker's key and address.
	privkey, err := btcec.NewPrivateKey()
	if err != nil {
		panic(err)
	}
	pubkey := privkey.PubKey()
	keyHash := address.Hash160(pubkey.SerializeCompressed())

	stakeAddr := (&address.Base58{
		Version: params.Base58Prefix(chaincfg.PubKeyAddress),
		Data:    keyHash,
	}).Encode()
	fmt.Println("stake address", stakeAddr)

	// A stealth address for receiving privately.
	scanKey, err := btcec.NewPrivateKey()
	if err != nil {
		panic(err)
	}
	stealthAddr, err := address.NewStealth(scanKey.PubKey(), pubkey).Encode(params)
	if err != nil {
		panic(err)
	}
	fmt.Println("stealth address", stealthAddr)

	// The coinbase pays the block reward for height 1 to the staker.
	script, err := address.ToOutputScript(stakeAddr, params)
	if err != nil {
		panic(err)
	}
	prev := &chaincfg.BlockIndex{
		Height: 0,
		Time:   int64(params.GenesisBlock.Header.Timestamp),
	}
	reward := params.ProofOfStakeReward(prev, 0)

	coinbase := &transaction.Transaction{Version: transaction.TxVersion}
	coinbase.AddInput(transaction.NewCoinbaseInput([]byte{0x51}))
	coinbase.AddOutput(transaction.NewStandardOutput(reward, script))

	// Assembling a block on top of genesis. Stake timestamps keep their
	// low bits clear.
	txs := []*transaction.Transaction{coinbase}
	header := &block.Header{
		Version:           block.BlockVersion,
		PrevBlock:         *params.GenesisHash,
		MerkleRoot:        block.CalcMerkleRoot(txs),
		WitnessMerkleRoot: block.CalcWitnessMerkleRoot(txs),
		Timestamp:         uint32(time.Now().Unix()) &^ params.StakeTimestampMask,
		Bits:              params.Consensus.PowLimitBits,
	}
	b := &block.Block{Header: header, Transactions: txs}

	raw, err := b.SerializeBlock()
	if err != nil {
		panic(err)
	}
	fmt.Println("block", b.BlockHash())
	fmt.Println("hex", hex.EncodeToString(raw))
}
