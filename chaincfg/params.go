package chaincfg

import (
	"bytes"
	"errors"
	"fmt"
	"time"

	"github.com/btcsuite/btcd/chaincfg/chainhash"

	"github.com/umbra-project/go-umbra/block"
)

// UmbraNet represents which Umbra network a message belongs to, as a four
// byte magic found at the start of every p2p message.
type UmbraNet uint32

// Constants used to indicate the network.
const (
	// MainNet represents the main Umbra network.
	MainNet UmbraNet = 0xa4d2f8c1

	// TestNet represents the public test network.
	TestNet UmbraNet = 0x1bc7aa94

	// RegNet represents the regression test network.
	RegNet UmbraNet = 0xe3c1d7b8
)

// String returns the UmbraNet in human readable form.
func (n UmbraNet) String() string {
	switch n {
	case MainNet:
		return "MainNet"
	case TestNet:
		return "TestNet"
	case RegNet:
		return "RegNet"
	}
	return fmt.Sprintf("Unknown UmbraNet (%d)", uint32(n))
}

// KeyPrefix identifies one entry of the per-network address and key prefix
// tables. Every address or serialized key format the chain understands has
// its own tag.
type KeyPrefix int

const (
	// PubKeyAddress is a 160 bit pay-to-pubkey-hash address.
	PubKeyAddress KeyPrefix = iota

	// ScriptAddress is a 160 bit pay-to-script-hash address.
	ScriptAddress

	// SecretKey is a WIF encoded private key.
	SecretKey

	// ExtPublicKey is a BIP32 extended public key.
	ExtPublicKey

	// ExtSecretKey is a BIP32 extended private key.
	ExtSecretKey

	// StealthAddress is a dual-key stealth address.
	StealthAddress

	// ExtKeyHash is the hash of an extended key.
	ExtKeyHash

	// ExtAccountHash is the hash of an extended key account.
	ExtAccountHash

	// ExtPublicKeyBTC is a BIP32 extended public key in the bitcoin
	// compatible xpub encoding.
	ExtPublicKeyBTC

	// ExtSecretKeyBTC is a BIP32 extended private key in the bitcoin
	// compatible xprv encoding.
	ExtSecretKeyBTC

	// PubKeyAddress256 is a 256 bit pay-to-pubkey-hash address.
	PubKeyAddress256

	// ScriptAddress256 is a 256 bit pay-to-script-hash address.
	ScriptAddress256

	// StakeOnlyPubKeyAddress is a pay-to-pubkey-hash address whose key may
	// only be used for staking.
	StakeOnlyPubKeyAddress

	// NumKeyPrefixes is the number of key prefix tags. It sizes the prefix
	// tables and is not itself a valid tag.
	NumKeyPrefixes
)

var keyPrefixNames = [NumKeyPrefixes]string{
	"pubkey_address",
	"script_address",
	"secret_key",
	"ext_public_key",
	"ext_secret_key",
	"stealth_address",
	"ext_key_hash",
	"ext_account_hash",
	"ext_public_key_btc",
	"ext_secret_key_btc",
	"pubkey_address_256",
	"script_address_256",
	"stake_only_pubkey_address",
}

// String returns the KeyPrefix in human readable form.
func (k KeyPrefix) String() string {
	if k < 0 || k >= NumKeyPrefixes {
		return fmt.Sprintf("Unknown KeyPrefix (%d)", int(k))
	}
	return keyPrefixNames[k]
}

// Hardened BIP44 account markers the wallet uses for keys that have no
// derivation path on this chain.
const (
	BIP44AccountNoGenesis      = 444444
	BIP44AccountNoStealthSpend = 444445
)

// ChainTxData holds a snapshot of the transaction volume at some block, used
// to estimate verification progress during sync.
type ChainTxData struct {
	Time    int64
	TxCount int64
	TxRate  float64
}

// Params defines an Umbra network by its parameters. These parameters may be
// used by applications to differentiate networks as well as addresses and
// keys for one network from those intended for use on another network.
//
// Aside from AnonPolicy and the treasury registry every field is fixed at
// construction and must be treated as read only.
type Params struct {
	// Name defines a human-readable identifier for the network.
	Name string

	// Net defines the magic bytes used to identify the network.
	Net UmbraNet

	// DefaultPort defines the default peer-to-peer port for the network.
	DefaultPort string

	// DNSSeeds defines a list of DNS seeds for the network to discover
	// peers from.
	DNSSeeds []string

	// GenesisBlock defines the first block of the chain.
	GenesisBlock *block.Block

	// GenesisHash is the starting block hash.
	GenesisHash *chainhash.Hash

	// Consensus carries the consensus engine constants. The resolver only
	// transports them; validation lives with the consumers.
	Consensus ConsensusParams

	// TargetSpacing is the wanted time between blocks.
	TargetSpacing time.Duration

	// TargetTimespan is the window the staking difficulty retarget
	// averages over.
	TargetTimespan time.Duration

	// StakeMinConfirmations is the depth an output needs before it may
	// stake.
	StakeMinConfirmations uint32

	// ModifierInterval is the number of seconds between stake modifier
	// recomputations.
	ModifierInterval uint32

	// StakeTimestampMask constrains the low bits of valid stake
	// timestamps.
	StakeTimestampMask uint32

	// BlockRewardAnnual is the yearly issuance budget in whole coins. The
	// per block base reward derives from it, see BaseBlockReward.
	BlockRewardAnnual int64

	// CoinYearPercents is the reward percent applied on top of the base
	// block reward for each year of the chain's life. Years beyond the
	// table clamp to its last entry.
	CoinYearPercents [RewardYears]int

	// CoinYearRewardFloor is the annual stake interest floor in 1e8
	// precision, reached once the early year bonus has decayed. On the
	// regression network it is the flat rate and may be tuned per test.
	CoinYearRewardFloor int64

	// TreasuryFunds is the effective-dated treasury fund schedule, ordered
	// by strictly ascending EffectiveTime.
	TreasuryFunds []TreasuryFundEpoch

	// Checkpoints is ordered from oldest to newest by convention, although
	// lookups do not rely on it.
	Checkpoints []Checkpoint

	// ImportedCoinbases pins the coinbase transaction hashes of the
	// snapshot import window, on networks that bootstrap from an imported
	// ledger.
	ImportedCoinbases []ImportedCoinbase

	// LastImportHeight is the last height of the snapshot import window.
	LastImportHeight uint32

	// TxData is the transaction volume snapshot of the last checkpoint.
	TxData ChainTxData

	// Base58Prefixes holds the base58check version bytes per key prefix
	// tag. An empty entry means the format is not available base58
	// encoded on this network.
	Base58Prefixes [NumKeyPrefixes][]byte

	// Bech32Prefixes holds the bech32 data prefixes per key prefix tag.
	// An empty entry means the format has no bech32 encoding on this
	// network.
	Bech32Prefixes [NumKeyPrefixes][]byte

	// Bech32HRP is the human-readable part for witness program addresses.
	Bech32HRP string

	// BIP32 hierarchical deterministic extended key magics.
	HDPrivateKeyID [4]byte
	HDPublicKeyID  [4]byte

	// BIP44 coin type used in the hierarchical deterministic path for
	// address generation, and the pre fork value kept for wallet upgrades.
	HDCoinType       uint32
	LegacyHDCoinType uint32

	// PruneAfterHeight is the earliest height block files may be pruned
	// from.
	PruneAfterHeight uint64

	// AssumedBlockchainSize and AssumedChainStateSize are the estimated
	// disk requirements in gigabytes at the time of release.
	AssumedBlockchainSize uint64
	AssumedChainStateSize uint64

	// RelayNonStdTxs reports whether the network relays non standard
	// transactions by default.
	RelayNonStdTxs bool

	// IsTestChain marks networks whose coins hold no value.
	IsTestChain bool

	// IsMockable marks networks whose block times may be manipulated,
	// meaning the regression network.
	IsMockable bool

	// AnonPolicy is the runtime-adjustable anon output policy. It is the
	// only mutable part of a parameter set.
	AnonPolicy *AnonOutputPolicy
}

// BIP44ID returns the BIP44 coin type of the network, or the pre fork value
// when legacy is set.
func (p *Params) BIP44ID(legacy bool) uint32 {
	if legacy {
		return p.LegacyHDCoinType
	}
	return p.HDCoinType
}

// Base58Prefix returns the base58check version bytes of the given tag. The
// returned slice must not be modified.
func (p *Params) Base58Prefix(tag KeyPrefix) []byte {
	if tag < 0 || tag >= NumKeyPrefixes {
		return nil
	}
	return p.Base58Prefixes[tag]
}

// Bech32Prefix returns the bech32 data prefix of the given tag. The returned
// slice must not be modified.
func (p *Params) Bech32Prefix(tag KeyPrefix) []byte {
	if tag < 0 || tag >= NumKeyPrefixes {
		return nil
	}
	return p.Bech32Prefixes[tag]
}

// Bech32PrefixType returns the tag whose registered bech32 prefix the given
// data starts with. Registration guarantees at most one tag can match.
func (p *Params) Bech32PrefixType(data []byte) (KeyPrefix, bool) {
	for tag := KeyPrefix(0); tag < NumKeyPrefixes; tag++ {
		prefix := p.Bech32Prefixes[tag]
		if len(prefix) == 0 {
			continue
		}
		if bytes.HasPrefix(data, prefix) {
			return tag, true
		}
	}
	return 0, false
}

// Bech32PrefixTypeString is a convenience adapter around Bech32PrefixType
// for callers holding the prefix as a string.
func (p *Params) Bech32PrefixTypeString(s string) (KeyPrefix, bool) {
	return p.Bech32PrefixType([]byte(s))
}

// IsBech32Prefix reports whether the given data starts with one of the
// network's registered bech32 prefixes.
func (p *Params) IsBech32Prefix(data []byte) bool {
	_, ok := p.Bech32PrefixType(data)
	return ok
}

// Base58PrefixType returns the tag whose base58check version bytes the given
// decoded payload starts with.
func (p *Params) Base58PrefixType(data []byte) (KeyPrefix, bool) {
	for tag := KeyPrefix(0); tag < NumKeyPrefixes; tag++ {
		prefix := p.Base58Prefixes[tag]
		if len(prefix) == 0 {
			continue
		}
		if bytes.HasPrefix(data, prefix) {
			return tag, true
		}
	}
	return 0, false
}

// validatePrefixTables rejects tables where one registered prefix is a
// leading prefix of another, which would make classification ambiguous.
func (p *Params) validatePrefixTables() error {
	for a := KeyPrefix(0); a < NumKeyPrefixes; a++ {
		pa := p.Bech32Prefixes[a]
		if len(pa) == 0 {
			continue
		}
		for b := KeyPrefix(0); b < NumKeyPrefixes; b++ {
			if a == b {
				continue
			}
			pb := p.Bech32Prefixes[b]
			if len(pb) == 0 {
				continue
			}
			if bytes.HasPrefix(pb, pa) {
				return fmt.Errorf(
					"%w: %s %q covers %s %q",
					ErrAmbiguousPrefix, a, pa, b, pb,
				)
			}
		}
	}

	for a := KeyPrefix(0); a < NumKeyPrefixes; a++ {
		pa := p.Base58Prefixes[a]
		if len(pa) == 0 {
			continue
		}
		for b := KeyPrefix(0); b < NumKeyPrefixes; b++ {
			if a == b {
				continue
			}
			pb := p.Base58Prefixes[b]
			if len(pb) == 0 {
				continue
			}
			if bytes.HasPrefix(pb, pa) {
				return fmt.Errorf(
					"%w: %s %x covers %s %x",
					ErrAmbiguousPrefix, a, pa, b, pb,
				)
			}
		}
	}
	return nil
}

var (
	// ErrDuplicateNet describes an error where the parameters for a
	// network could not be set due to the network already being a standard
	// network or previously-registered via this package.
	ErrDuplicateNet = errors.New("duplicate network")

	// ErrUnknownNetwork describes an error where a network name does not
	// match any of the registered networks.
	ErrUnknownNetwork = errors.New("unknown network")

	// ErrAmbiguousPrefix describes an error where an address prefix table
	// contains entries that cannot be told apart.
	ErrAmbiguousPrefix = errors.New("ambiguous address prefix table")

	// ErrNoCheckpoints describes an error where a non mockable network is
	// registered without any checkpoint.
	ErrNoCheckpoints = errors.New("network registered without checkpoints")

	// ErrUnknownHDKeyID describes an error where the provided id which
	// is intended to identify the network for a hierarchical deterministic
	// private extended key is not registered.
	ErrUnknownHDKeyID = errors.New("unknown hd private extended key bytes")
)

var (
	registeredNets    = make(map[UmbraNet]struct{})
	hdPrivToPubKeyIDs = make(map[[4]byte][]byte)
	bech32HRPs        = make(map[string]struct{})
)

// Register registers the network parameters so addresses and keys of the
// network can be recognized package wide. Registering the same network magic
// twice, an ambiguous prefix table or a non mockable network without
// checkpoints is a configuration error.
func Register(params *Params) error {
	if _, ok := registeredNets[params.Net]; ok {
		return ErrDuplicateNet
	}
	if err := params.validatePrefixTables(); err != nil {
		return err
	}
	if !params.IsMockable && len(params.Checkpoints) == 0 {
		return fmt.Errorf("%w: %s", ErrNoCheckpoints, params.Name)
	}

	registeredNets[params.Net] = struct{}{}
	hdPrivToPubKeyIDs[params.HDPrivateKeyID] = params.HDPublicKeyID[:]
	if params.Bech32HRP != "" {
		bech32HRPs[params.Bech32HRP] = struct{}{}
	}
	return nil
}

// mustRegister performs the same function as Register except it panics on
// failure. This should only be called from package init functions.
func mustRegister(params *Params) {
	if err := Register(params); err != nil {
		panic("failed to register network: " + err.Error())
	}
}

// IsBech32HRP reports whether the given string matches the witness address
// human-readable part of any registered network.
func IsBech32HRP(hrp string) bool {
	_, ok := bech32HRPs[hrp]
	return ok
}

// HDPrivateKeyToPublicKeyID accepts a private hierarchical deterministic
// extended key id and returns the associated public key id. When the provided
// id is not registered, the ErrUnknownHDKeyID error will be returned.
func HDPrivateKeyToPublicKeyID(id []byte) ([]byte, error) {
	if len(id) != 4 {
		return nil, ErrUnknownHDKeyID
	}

	var key [4]byte
	copy(key[:], id)
	pubBytes, ok := hdPrivToPubKeyIDs[key]
	if !ok {
		return nil, ErrUnknownHDKeyID
	}
	return pubBytes, nil
}

// newHashFromStr converts the passed big-endian hex string into a
// chainhash.Hash. It only differs from the one available in chainhash in
// that it panics on an error since it will only (and must only) be called
// with hard-coded, and therefore known good, hashes.
func newHashFromStr(hexStr string) *chainhash.Hash {
	hash, err := chainhash.NewHashFromStr(hexStr)
	if err != nil {
		panic(err)
	}
	return hash
}

func init() {
	mustRegister(&MainNetParams)
	mustRegister(&TestNetParams)
	mustRegister(&RegNetParams)
}
