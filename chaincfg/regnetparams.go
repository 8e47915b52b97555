package chaincfg

import (
	"math/big"
	"time"
)

// regNetPowLimit is the highest proof of work target of the regression
// network, 2^255 - 1, so blocks require no meaningful work.
var regNetPowLimit = new(big.Int).Sub(new(big.Int).Lsh(bigOne, 255), bigOne)

// RegNetParams defines the network parameters for the regression test
// network. Tests needing to mutate parameters must go through NewTestParams
// rather than this instance.
var RegNetParams = Params{
	Name:        "regtest",
	Net:         RegNet,
	DefaultPort: "53038",
	DNSSeeds:    nil,

	// Chain parameters
	GenesisBlock: regNetGenesisBlock,
	GenesisHash:  &regNetGenesisHash,
	Consensus: ConsensusParams{
		PowLimit:            regNetPowLimit,
		PowLimitBits:        0x207fffff,
		PowNoRetargeting:    true,
		PosNoRetargeting:    true,
		MinRCTOutputDepth:   2,
		SmsgFeeMaxDeltaPerM: 4300,
	},
	TargetSpacing:         120 * time.Second,
	TargetTimespan:        24 * time.Minute,
	StakeMinConfirmations: 10,
	ModifierInterval:      60,
	StakeTimestampMask:    0xf,

	// Emission
	BlockRewardAnnual:   1576800,
	CoinYearPercents:    defaultCoinYearPercents,
	CoinYearRewardFloor: 2 * CENT,

	// No treasury epochs by default; tests push their own.
	TreasuryFunds: nil,

	Checkpoints:       nil,
	ImportedCoinbases: nil,
	LastImportHeight:  0,

	TxData: ChainTxData{},

	// Address encoding magics
	Base58Prefixes: [NumKeyPrefixes][]byte{
		PubKeyAddress:          {0x6f},
		ScriptAddress:          {0xc4},
		SecretKey:              {0xef},
		ExtPublicKey:           {0x02, 0xe8, 0xde, 0x94},
		ExtSecretKey:           {0x02, 0xe8, 0xd3, 0x44},
		StealthAddress:         {0x18},
		ExtKeyHash:             {0x92},
		ExtAccountHash:         {0x93},
		ExtPublicKeyBTC:        {0x04, 0x35, 0x87, 0xcf}, // tpub
		ExtSecretKeyBTC:        {0x04, 0x35, 0x83, 0x94}, // tprv
		PubKeyAddress256:       {0x72},
		ScriptAddress256:       {0x74},
		StakeOnlyPubKeyAddress: {0x7d},
	},
	Bech32Prefixes: [NumKeyPrefixes][]byte{
		PubKeyAddress:          []byte("ruh"),
		ScriptAddress:          []byte("rur"),
		SecretKey:              []byte("rux"),
		ExtPublicKey:           []byte("ruep"),
		ExtSecretKey:           []byte("ruex"),
		StealthAddress:         []byte("rus"),
		ExtKeyHash:             []byte("ruek"),
		ExtAccountHash:         []byte("ruea"),
		PubKeyAddress256:       []byte("rul"),
		ScriptAddress256:       []byte("ruj"),
		StakeOnlyPubKeyAddress: []byte("rucs"),
	},
	Bech32HRP: "ruw",

	// BIP32 hierarchical deterministic extended key magics
	HDPrivateKeyID: [4]byte{0x2e, 0x61, 0x4c, 0x17},
	HDPublicKeyID:  [4]byte{0x2e, 0x61, 0x52, 0xa8},

	// BIP44 coin type used in the hierarchical deterministic path for
	// address generation.
	HDCoinType:       1,
	LegacyHDCoinType: 1,

	// Node policy defaults
	PruneAfterHeight:      1000,
	AssumedBlockchainSize: 0,
	AssumedChainStateSize: 0,
	RelayNonStdTxs:        true,
	IsTestChain:           true,
	IsMockable:            true,

	AnonPolicy: NewAnonOutputPolicy(false, ""),
}
