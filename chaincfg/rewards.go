package chaincfg

import "time"

// Amount constants in the fixed point representation used throughout: one
// coin is 1e8 base units.
const (
	COIN = 100000000
	CENT = 1000000
)

const (
	// RewardYears is the length of the yearly reward percent schedule.
	// Later years clamp to the schedule's last entry.
	RewardYears = 47

	secondsPerYear = 365 * 24 * 60 * 60
)

// defaultCoinYearPercents is the emission curve shared by all networks: a
// front loaded bonus decaying to the flat base reward from year 46 on.
var defaultCoinYearPercents = [RewardYears]int{
	100, 95, 90, 85, 80,
	76, 72, 68, 64, 60,
	57, 54, 51, 48, 45,
	42, 40, 38, 36, 34,
	32, 30, 28, 26, 24,
	22, 20, 19, 18, 17,
	16, 15, 14, 13, 12,
	11, 10, 9, 8, 7,
	6, 5, 4, 3, 2,
	1, 0,
}

// BlockIndex is the minimal view of a chain tip the reward resolver needs.
type BlockIndex struct {
	Height int32
	Time   int64
}

// BlocksPerYear returns the number of blocks produced per year at the target
// spacing.
func (p *Params) BlocksPerYear() int32 {
	return int32(secondsPerYear / int64(p.TargetSpacing/time.Second))
}

// YearOfHeight maps a block height to a year of the reward schedule. Height
// zero is year zero; the year increments every BlocksPerYear blocks.
func (p *Params) YearOfHeight(height int32) int {
	if height < 0 {
		return 0
	}
	return int(height / p.BlocksPerYear())
}

// TimeAtHeight returns the nominal timestamp of the given height assuming
// ideal target spacing since genesis.
func (p *Params) TimeAtHeight(height int32) int64 {
	spacing := int64(p.TargetSpacing / time.Second)
	return int64(p.GenesisBlock.Header.Timestamp) + int64(height)*spacing
}

// CoinYearPercent returns the reward percent of the given year. Years past
// the end of the schedule return its last entry, negative years its first.
func (p *Params) CoinYearPercent(year int) int {
	if year < 0 {
		return p.CoinYearPercents[0]
	}
	if year >= RewardYears {
		return p.CoinYearPercents[RewardYears-1]
	}
	return p.CoinYearPercents[year]
}

// BaseBlockReward returns the reward per block before the yearly percent
// bonus, derived from the annual issuance budget. The division truncates
// toward zero; every reward computation in this package rounds that way.
func (p *Params) BaseBlockReward() int64 {
	return p.BlockRewardAnnual * COIN / int64(p.BlocksPerYear())
}

// ProofOfStakeRewardAtYear returns the block reward of the given schedule
// year, excluding fees.
func (p *Params) ProofOfStakeRewardAtYear(year int) int64 {
	return p.BaseBlockReward() * (100 + int64(p.CoinYearPercent(year))) / 100
}

// ProofOfStakeRewardAtHeight returns the block reward at the given height,
// excluding fees. It agrees with ProofOfStakeRewardAtYear on the year the
// height falls in.
func (p *Params) ProofOfStakeRewardAtHeight(height int32) int64 {
	return p.ProofOfStakeRewardAtYear(p.YearOfHeight(height))
}

// ProofOfStakeReward returns the full reward of the block following prev:
// the scheduled reward of its height plus the fees collected in it. Any
// treasury share is carved out of the returned value by the caller according
// to the fund settings in effect; it is not deducted here.
func (p *Params) ProofOfStakeReward(prev *BlockIndex, fees int64) int64 {
	return p.ProofOfStakeRewardAtHeight(prev.Height+1) + fees
}

// CoinYearReward returns the annual stake interest rate at the given time in
// 1e8 precision, 2000000 meaning two percent. The first years of the chain
// pay a bonus rate that decays by one percent a year down to the configured
// floor. The regression network always pays its configured rate so tests can
// tune it.
func (p *Params) CoinYearReward(unixTime int64) int64 {
	if !p.IsMockable {
		yearsSinceGenesis := (unixTime - int64(p.GenesisBlock.Header.Timestamp)) / secondsPerYear
		if yearsSinceGenesis >= 0 && yearsSinceGenesis < 3 {
			return (5 - yearsSinceGenesis) * CENT
		}
	}
	return p.CoinYearRewardFloor
}

// MaxSmsgFeeRateDelta bounds the secure messaging fee rate change between
// two funding periods, never below one base unit.
func (p *Params) MaxSmsgFeeRateDelta(prevFee int64) int64 {
	delta := prevFee * p.Consensus.SmsgFeeMaxDeltaPerM / 1000000
	if delta < 1 {
		return 1
	}
	return delta
}
