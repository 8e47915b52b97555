package chaincfg

import "math/big"

// ConsensusParams bundles the constants the consensus engine consumes. The
// parameter layer carries them unchanged between networks; interpreting them
// is the engine's business.
type ConsensusParams struct {
	// PowLimit is the highest (easiest) proof of work target. Only the
	// genesis block is proof of work, every later block is staked.
	PowLimit *big.Int

	// PowLimitBits is PowLimit in compact representation.
	PowLimitBits uint32

	// PowNoRetargeting and PosNoRetargeting disable difficulty
	// adjustments, used on the regression network.
	PowNoRetargeting bool
	PosNoRetargeting bool

	// MinRCTOutputDepth is the number of confirmations an anon output
	// needs before it may be referenced as a ring member.
	MinRCTOutputDepth uint32

	// SmsgFeeMaxDeltaPerM bounds how fast the secure messaging fee rate
	// may move between funding periods, in parts per million of the
	// previous rate.
	SmsgFeeMaxDeltaPerM int64
}

var bigOne = big.NewInt(1)
