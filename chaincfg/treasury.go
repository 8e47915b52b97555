package chaincfg

import "errors"

var (
	// ErrTreasuryOverlap is returned when a pushed fund setting does not
	// strictly follow the latest registered one in time.
	ErrTreasuryOverlap = errors.New("treasury settings must be pushed in ascending time order")

	// ErrTreasuryStakePercent is returned for a stake percent outside
	// [0, 100].
	ErrTreasuryStakePercent = errors.New("treasury stake percent out of range")

	// ErrTreasuryOutputPeriod is returned for a non positive output
	// period.
	ErrTreasuryOutputPeriod = errors.New("treasury output period must be positive")
)

// TreasuryFundSettings describes where and how the treasury share of block
// rewards accumulates while in effect.
type TreasuryFundSettings struct {
	// Address receives the accumulated treasury payouts.
	Address string

	// MinStakePercent is the share of each block reward diverted to the
	// treasury, in whole percent.
	MinStakePercent int

	// OutputPeriod is the number of blocks between treasury payout
	// outputs. Stakers accumulate the treasury share and settle it once
	// per period; the per network anchor the period counts from is the
	// caller's business.
	OutputPeriod int
}

// TreasuryFundEpoch binds fund settings to the time they take effect.
type TreasuryFundEpoch struct {
	EffectiveTime int64
	Settings      TreasuryFundSettings
}

// PushTreasuryFundSettings appends fund settings taking effect at the given
// time. Settings must be pushed in strictly ascending time order; on any
// validation failure the registry is left unchanged.
func (p *Params) PushTreasuryFundSettings(effectiveTime int64, settings TreasuryFundSettings) error {
	if settings.MinStakePercent < 0 || settings.MinStakePercent > 100 {
		return ErrTreasuryStakePercent
	}
	if settings.OutputPeriod <= 0 {
		return ErrTreasuryOutputPeriod
	}
	if n := len(p.TreasuryFunds); n > 0 && effectiveTime <= p.TreasuryFunds[n-1].EffectiveTime {
		return ErrTreasuryOverlap
	}

	p.TreasuryFunds = append(p.TreasuryFunds, TreasuryFundEpoch{
		EffectiveTime: effectiveTime,
		Settings:      settings,
	})
	return nil
}

// TreasuryFundSettingsForTime returns the fund settings in effect at the
// given time: the epoch with the greatest effective time not after it. The
// boundary is inclusive, a block timestamped exactly at an epoch's effective
// time falls under that epoch. The second return is false before the first
// epoch, or when the network has none.
func (p *Params) TreasuryFundSettingsForTime(unixTime int64) (TreasuryFundSettings, bool) {
	for i := len(p.TreasuryFunds) - 1; i >= 0; i-- {
		if unixTime >= p.TreasuryFunds[i].EffectiveTime {
			return p.TreasuryFunds[i].Settings, true
		}
	}
	return TreasuryFundSettings{}, false
}

// TreasuryFundSettingsAtHeight resolves the fund settings for a height using
// the nominal block time model, see TimeAtHeight.
func (p *Params) TreasuryFundSettingsAtHeight(height int32) (TreasuryFundSettings, bool) {
	return p.TreasuryFundSettingsForTime(p.TimeAtHeight(height))
}

// TreasuryFundEpochs returns a copy of the registered schedule.
func (p *Params) TreasuryFundEpochs() []TreasuryFundEpoch {
	epochs := make([]TreasuryFundEpoch, len(p.TreasuryFunds))
	copy(epochs, p.TreasuryFunds)
	return epochs
}
