package chaincfg

import (
	"math/big"
	"time"
)

// mainPowLimit is the highest proof of work target of the main network
// genesis block, 2^239 - 1.
var mainPowLimit = new(big.Int).Sub(new(big.Int).Lsh(bigOne, 239), bigOne)

// mainAnonBlacklist are the anon output indices minted by the February 2024
// inflation exploit. They are banned from ring membership since the fix
// fork.
var mainAnonBlacklist = []uint64{
	6183, 6184, 6185, 6186,
	9754, 9755,
	12580, 12581, 12582, 12583,
	14061,
}

// MainNetParams defines the network parameters for the main Umbra network.
var MainNetParams = Params{
	Name:        "main",
	Net:         MainNet,
	DefaultPort: "52738",
	DNSSeeds: []string{
		"seed.umbra-project.io",
		"dnsseed.umbra.zone",
		"seed.umbranodes.net",
	},

	// Chain parameters
	GenesisBlock: mainNetGenesisBlock,
	GenesisHash:  &mainNetGenesisHash,
	Consensus: ConsensusParams{
		PowLimit:            mainPowLimit,
		PowLimitBits:        0x1f00ffff,
		PowNoRetargeting:    false,
		PosNoRetargeting:    false,
		MinRCTOutputDepth:   12,
		SmsgFeeMaxDeltaPerM: 4300,
	},
	TargetSpacing:         120 * time.Second,
	TargetTimespan:        24 * time.Minute,
	StakeMinConfirmations: 225,
	ModifierInterval:      600,
	StakeTimestampMask:    0xf,

	// Emission
	BlockRewardAnnual:   1576800,
	CoinYearPercents:    defaultCoinYearPercents,
	CoinYearRewardFloor: 2 * CENT,

	// Treasury fund schedule. Later epochs raise the stake share and
	// halve the payout period.
	TreasuryFunds: []TreasuryFundEpoch{
		{
			EffectiveTime: 1625097600, // genesis
			Settings: TreasuryFundSettings{
				Address:         "UZGpLkW3qTjbYNbhVMaZFkxY5rYnQtRiLm",
				MinStakePercent: 10,
				OutputPeriod:    720,
			},
		},
		{
			EffectiveTime: 1688169600, // 2023-07-01
			Settings: TreasuryFundSettings{
				Address:         "UdT3rBqeJbu6mDgF2WcVhPaKzXoyENSj8R",
				MinStakePercent: 15,
				OutputPeriod:    360,
			},
		},
	},

	Checkpoints: []Checkpoint{
		{0, &mainNetGenesisHash},
		{10000, newHashFromStr("f2a9c40d1be267e1bc055a8f2e93d2cf5c7a88243a0f1e9b6d44c2571e08ab3d")},
		{50000, newHashFromStr("3de80154cb9a7c5e6f1d0823b64a9ff1720cd5c284b9e0a6331f7d2c8e94ba02")},
		{124500, newHashFromStr("a14f09b3d2c85e76f4a1bc09283d57e1f6b04a9c2d1e85f3706cb8d425f19ce8")},
		{260000, newHashFromStr("07c2e5d84b1f3a9605d8ec72a34bf1d9c6e0237a5b84fd120c9ae653b7d40f18")},
		{391200, newHashFromStr("5be6f01a8c3d2479e5b0f6a1d82c49371f0e6b5a2d94c8e30a17f5d2b6c480e9")},
	},

	// The first ten blocks replay the coinbases of the predecessor chain
	// snapshot. Their hashes are pinned so the import cannot be replayed
	// with different payouts.
	ImportedCoinbases: []ImportedCoinbase{
		{1, newHashFromStr("b3a8f2d05c47e9162d8b0a5f3c9e71d4f60a2b8c5d3e94f7012c6a8b4d5e0f39")},
		{2, newHashFromStr("4c1d8e5a02f7b9361e0d4a8c7b5f2d91385e6a0cf4b2d8170c9e3f6a5b04d287")},
		{3, newHashFromStr("9e0b5c2f817d4a63f5c08b1e9a3d67025fc4e8b1a6d30f79214c8d5b0e6a3f91")},
		{4, newHashFromStr("1f6a3d85c0b927e45a8f1c6d03b5e9724a0d8c3f6b1e57092d4c8a5f3e0b61d7")},
		{5, newHashFromStr("d20c7e9b4f5a18365d3e0a8c2b6f91477e5b0d2a9c4f86132b7d05e8a1c4f369")},
		{6, newHashFromStr("68b1f4d0a93c5e27089d6b3f1a4c82e5d7f20a6b8c91e3545f0d7a2c9b6e1840")},
		{7, newHashFromStr("e5d03a7c1f8b64920a4e7d1c5b3f08d6291c5a8e0f3b7d46038f6c1a9d5e2b74")},
		{8, newHashFromStr("72f8c5b0e1a94d36d1b8e40a6c2f5d980e3a7c4b1d6f29153c0e8b5a7d4f1602")},
		{9, newHashFromStr("0a9d4c6e2b71f5830c5f2a8d6e1b49770d4b8f3a1c6e92583e1c7b0a4d6f5928")},
		{10, newHashFromStr("c4e17b5d2a8f09361b7d0e4a9c5f28d43f8a1c6b0d5e74291a6d3f8c2b5e0704")},
	},
	LastImportHeight: 10,

	// Transaction volume snapshot taken at the 391200 checkpoint.
	TxData: ChainTxData{
		Time:    1719878400,
		TxCount: 1436028,
		TxRate:  0.0142,
	},

	// Address encoding magics
	Base58Prefixes: [NumKeyPrefixes][]byte{
		PubKeyAddress:          {0x44}, // addresses start with U
		ScriptAddress:          {0x3f}, // starts with S
		SecretKey:              {0xc4},
		ExtPublicKey:           {0x45, 0x8f, 0x6e, 0xd2},
		ExtSecretKey:           {0x45, 0x8f, 0x63, 0x1c},
		StealthAddress:         {0x15},
		ExtKeyHash:             {0x4b},
		ExtAccountHash:         {0x17},
		ExtPublicKeyBTC:        {0x04, 0x88, 0xb2, 0x1e}, // xpub
		ExtSecretKeyBTC:        {0x04, 0x88, 0xad, 0xe4}, // xprv
		PubKeyAddress256:       {0x39},
		ScriptAddress256:       {0x3d},
		StakeOnlyPubKeyAddress: {0x41},
	},
	Bech32Prefixes: [NumKeyPrefixes][]byte{
		PubKeyAddress:          []byte("uh"),
		ScriptAddress:          []byte("ur"),
		SecretKey:              []byte("ux"),
		ExtPublicKey:           []byte("uep"),
		ExtSecretKey:           []byte("uex"),
		StealthAddress:         []byte("us"),
		ExtKeyHash:             []byte("uek"),
		ExtAccountHash:         []byte("uea"),
		PubKeyAddress256:       []byte("ul"),
		ScriptAddress256:       []byte("uj"),
		StakeOnlyPubKeyAddress: []byte("ucs"),
	},
	Bech32HRP: "uw",

	// BIP32 hierarchical deterministic extended key magics
	HDPrivateKeyID: [4]byte{0x55, 0x8d, 0xbb, 0x3c},
	HDPublicKeyID:  [4]byte{0x55, 0x8d, 0xc0, 0x81},

	// BIP44 coin type used in the hierarchical deterministic path for
	// address generation. The legacy type predates the coin type
	// registration and is kept for wallet upgrades.
	HDCoinType:       616,
	LegacyHDCoinType: 444,

	// Node policy defaults
	PruneAfterHeight:      100000,
	AssumedBlockchainSize: 6,
	AssumedChainStateSize: 2,
	RelayNonStdTxs:        false,
	IsTestChain:           false,
	IsMockable:            false,

	// Anon outputs stay restricted to the recovery path until the
	// exploit remediation completes.
	AnonPolicy: NewAnonOutputPolicy(
		true,
		"UWqPrGbXePoD6mR5up8zvxJt2ceaqPSnbh",
		mainAnonBlacklist...,
	),
}
