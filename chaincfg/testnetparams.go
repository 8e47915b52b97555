package chaincfg

import (
	"math/big"
	"time"
)

// testNetPowLimit is the highest proof of work target of the test network
// genesis block, 2^239 - 1.
var testNetPowLimit = new(big.Int).Sub(new(big.Int).Lsh(bigOne, 239), bigOne)

// TestNetParams defines the network parameters for the public test network.
var TestNetParams = Params{
	Name:        "test",
	Net:         TestNet,
	DefaultPort: "52938",
	DNSSeeds: []string{
		"seed-testnet.umbra-project.io",
		"testnet.umbra.zone",
	},

	// Chain parameters
	GenesisBlock: testNetGenesisBlock,
	GenesisHash:  &testNetGenesisHash,
	Consensus: ConsensusParams{
		PowLimit:            testNetPowLimit,
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

	TreasuryFunds: []TreasuryFundEpoch{
		{
			EffectiveTime: 1622505600, // genesis
			Settings: TreasuryFundSettings{
				Address:         "TmbGypRWVsFryeDWdtVJsVrUbYQjqJmf8a",
				MinStakePercent: 10,
				OutputPeriod:    720,
			},
		},
	},

	Checkpoints: []Checkpoint{
		{0, &testNetGenesisHash},
		{20000, newHashFromStr("c05f2d8a917e34b6d2f0c5a8e1b94d73a6f2058c1d7e49b30f6a2c85d1e94b07")},
		{86000, newHashFromStr("218d4c7f0a93e5b6184fd02c9a7b3e50f1c68a24d5b90e73c2f185a6d40b9e31")},
	},

	// The test network bootstraps from its own genesis, nothing is
	// imported.
	ImportedCoinbases: nil,
	LastImportHeight:  0,

	TxData: ChainTxData{
		Time:    1718064000,
		TxCount: 284305,
		TxRate:  0.008,
	},

	// Address encoding magics
	Base58Prefixes: [NumKeyPrefixes][]byte{
		PubKeyAddress:          {0x7f},
		ScriptAddress:          {0x61},
		SecretKey:              {0xff},
		ExtPublicKey:           {0x02, 0xe8, 0xde, 0x94},
		ExtSecretKey:           {0x02, 0xe8, 0xd3, 0x44},
		StealthAddress:         {0x16},
		ExtKeyHash:             {0x89},
		ExtAccountHash:         {0x7a},
		ExtPublicKeyBTC:        {0x04, 0x35, 0x87, 0xcf}, // tpub
		ExtSecretKeyBTC:        {0x04, 0x35, 0x83, 0x94}, // tprv
		PubKeyAddress256:       {0x77},
		ScriptAddress256:       {0x7b},
		StakeOnlyPubKeyAddress: {0x83},
	},
	Bech32Prefixes: [NumKeyPrefixes][]byte{
		PubKeyAddress:          []byte("tuh"),
		ScriptAddress:          []byte("tur"),
		SecretKey:              []byte("tux"),
		ExtPublicKey:           []byte("tuep"),
		ExtSecretKey:           []byte("tuex"),
		StealthAddress:         []byte("tus"),
		ExtKeyHash:             []byte("tuek"),
		ExtAccountHash:         []byte("tuea"),
		PubKeyAddress256:       []byte("tul"),
		ScriptAddress256:       []byte("tuj"),
		StakeOnlyPubKeyAddress: []byte("tucs"),
	},
	Bech32HRP: "tuw",

	// BIP32 hierarchical deterministic extended key magics
	HDPrivateKeyID: [4]byte{0x3c, 0x90, 0x21, 0x6a},
	HDPublicKeyID:  [4]byte{0x3c, 0x90, 0x27, 0xf2},

	// BIP44 coin type used in the hierarchical deterministic path for
	// address generation.
	HDCoinType:       1,
	LegacyHDCoinType: 1,

	// Node policy defaults
	PruneAfterHeight:      1000,
	AssumedBlockchainSize: 3,
	AssumedChainStateSize: 1,
	RelayNonStdTxs:        true,
	IsTestChain:           true,
	IsMockable:            false,

	AnonPolicy: NewAnonOutputPolicy(false, ""),
}
