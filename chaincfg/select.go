package chaincfg

import (
	"fmt"
	"math/big"
	"sync"
)

// CreateChainParams resolves a network name to its canonical parameter set.
// The returned instance is shared; treat it as read only.
func CreateChainParams(name string) (*Params, error) {
	switch name {
	case MainNetParams.Name:
		return &MainNetParams, nil
	case TestNetParams.Name:
		return &TestNetParams, nil
	case RegNetParams.Name:
		return &RegNetParams, nil
	}
	return nil, fmt.Errorf("%w %q", ErrUnknownNetwork, name)
}

// Context holds the parameter set an application runs against. Components
// receive a Context instead of consulting process global state; two contexts
// in one process may run against different networks.
type Context struct {
	mu     sync.RWMutex
	params *Params
}

// NewContext returns a context with no network selected yet.
func NewContext() *Context {
	return &Context{}
}

// SelectParams switches the context to the named network. An unknown name
// returns ErrUnknownNetwork and leaves any previous selection in place.
func (c *Context) SelectParams(name string) error {
	params, err := CreateChainParams(name)
	if err != nil {
		return err
	}

	c.mu.Lock()
	c.params = params
	c.mu.Unlock()
	return nil
}

// Params returns the selected parameter set. Querying a context before any
// selection is a programming error and panics.
func (c *Context) Params() *Params {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.params == nil {
		panic("chaincfg: Params queried before SelectParams")
	}
	return c.params
}

// Selected reports whether a network has been selected.
func (c *Context) Selected() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.params != nil
}

// TestParams wraps a private copy of the regression network parameters. The
// reward and consensus setters exist only on this type; the shared network
// instances have none. Every NewTestParams call copies afresh, nothing leaks
// between tests or into RegNetParams.
type TestParams struct {
	params *Params
}

// NewTestParams returns a fresh, fully independent regression network
// parameter set.
func NewTestParams() *TestParams {
	return &TestParams{params: cloneParams(&RegNetParams)}
}

// Params exposes the tweaked parameter set to the code under test.
func (tp *TestParams) Params() *Params {
	return tp.params
}

// NewContext returns a context pre selected to the test parameters.
func (tp *TestParams) NewContext() *Context {
	return &Context{params: tp.params}
}

// SetCoinYearReward overrides the flat stake interest rate.
func (tp *TestParams) SetCoinYearReward(rate int64) {
	tp.params.CoinYearRewardFloor = rate
}

// SetBlockRewardAnnual overrides the yearly issuance budget.
func (tp *TestParams) SetBlockRewardAnnual(coins int64) {
	tp.params.BlockRewardAnnual = coins
}

// SetCoinYearPercents overrides the yearly reward percent schedule.
func (tp *TestParams) SetCoinYearPercents(percents [RewardYears]int) {
	tp.params.CoinYearPercents = percents
}

// Consensus exposes the consensus constants for mutation.
func (tp *TestParams) Consensus() *ConsensusParams {
	return &tp.params.Consensus
}

// cloneParams deep copies a parameter set. The genesis block pointer is
// shared, it is immutable anyway.
func cloneParams(src *Params) *Params {
	dst := *src

	dst.DNSSeeds = append([]string(nil), src.DNSSeeds...)
	dst.TreasuryFunds = append([]TreasuryFundEpoch(nil), src.TreasuryFunds...)
	dst.Checkpoints = append([]Checkpoint(nil), src.Checkpoints...)
	dst.ImportedCoinbases = append([]ImportedCoinbase(nil), src.ImportedCoinbases...)

	for tag := KeyPrefix(0); tag < NumKeyPrefixes; tag++ {
		dst.Base58Prefixes[tag] = append([]byte(nil), src.Base58Prefixes[tag]...)
		dst.Bech32Prefixes[tag] = append([]byte(nil), src.Bech32Prefixes[tag]...)
	}

	if src.Consensus.PowLimit != nil {
		dst.Consensus.PowLimit = new(big.Int).Set(src.Consensus.PowLimit)
	}

	if src.AnonPolicy != nil {
		policy := NewAnonOutputPolicy(
			src.AnonPolicy.Restricted(),
			src.AnonPolicy.RecoveryAddress(),
			src.AnonPolicy.BlacklistedOutputs()...,
		)
		policy.SetMaxOutputSize(src.AnonPolicy.MaxOutputSize())
		dst.AnonPolicy = policy
	}

	return &dst
}
