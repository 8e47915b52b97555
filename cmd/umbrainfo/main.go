package main

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	cli "gopkg.in/urfave/cli.v1"

	"github.com/umbra-project/go-umbra/chaincfg"
)

func init() {
	// Keep diagnostics apart from command output.
	logrus.SetOutput(os.Stderr)
	logrus.SetLevel(logrus.InfoLevel)
}

func main() {
	app := cli.NewApp()
	app.Name = "umbrainfo"
	app.Usage = "inspect Umbra chain parameters"
	app.Version = "0.1.0"
	app.Writer = os.Stdout
	app.Flags = []cli.Flag{
		cli.StringFlag{
			Name:  "network",
			Usage: "chain to inspect (main|test|regtest)",
			Value: "main",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:   "params",
			Usage:  "print the resolved parameter set",
			Action: printParams,
		},
		{
			Name:  "reward",
			Usage: "print the proof of stake reward at a height",
			Flags: []cli.Flag{
				cli.Int64Flag{
					Name:  "height",
					Usage: "block height",
				},
				cli.Int64Flag{
					Name:  "fees",
					Usage: "fees collected by the block, in base units",
				},
			},
			Action: printReward,
		},
		{
			Name:  "treasury",
			Usage: "print the treasury fund settings in effect at a time",
			Flags: []cli.Flag{
				cli.Int64Flag{
					Name:  "time",
					Usage: "unix time, defaults to now",
				},
			},
			Action: printTreasury,
		},
		{
			Name:   "schedule",
			Usage:  "print the yearly reward schedule",
			Action: printSchedule,
		},
	}

	if err := app.Run(os.Args); err != nil {
		logrus.Fatal(err)
	}
}

func selectedParams(c *cli.Context) (*chaincfg.Params, error) {
	ctx := chaincfg.NewContext()
	if err := ctx.SelectParams(c.GlobalString("network")); err != nil {
		return nil, err
	}
	return ctx.Params(), nil
}

type paramsView struct {
	Name                  string   `json:"name"`
	Net                   string   `json:"net"`
	NetMagic              string   `json:"net_magic"`
	DefaultPort           string   `json:"default_port"`
	DNSSeeds              []string `json:"dns_seeds,omitempty"`
	GenesisHash           string   `json:"genesis_hash"`
	TargetSpacing         string   `json:"target_spacing"`
	TargetTimespan        string   `json:"target_timespan"`
	StakeMinConfirmations uint32   `json:"stake_min_confirmations"`
	BlocksPerYear         int32    `json:"blocks_per_year"`
	BlockRewardAnnual     int64    `json:"block_reward_annual"`
	BaseBlockReward       int64    `json:"base_block_reward"`
	LastCheckpointHeight  int32    `json:"last_checkpoint_height,omitempty"`
	LastImportHeight      uint32   `json:"last_import_height,omitempty"`
	Bech32HRP             string   `json:"bech32_hrp"`
	HDCoinType            uint32   `json:"hd_coin_type"`
	AnonRestricted        bool     `json:"anon_restricted"`
	AnonBlacklisted       int      `json:"anon_blacklisted_outputs"`
}

func printParams(c *cli.Context) error {
	p, err := selectedParams(c)
	if err != nil {
		return err
	}

	view := paramsView{
		Name:                  p.Name,
		Net:                   p.Net.String(),
		NetMagic:              fmt.Sprintf("0x%08x", uint32(p.Net)),
		DefaultPort:           p.DefaultPort,
		DNSSeeds:              p.DNSSeeds,
		GenesisHash:           p.GenesisHash.String(),
		TargetSpacing:         p.TargetSpacing.String(),
		TargetTimespan:        p.TargetTimespan.String(),
		StakeMinConfirmations: p.StakeMinConfirmations,
		BlocksPerYear:         p.BlocksPerYear(),
		BlockRewardAnnual:     p.BlockRewardAnnual,
		BaseBlockReward:       p.BaseBlockReward(),
		LastImportHeight:      p.LastImportHeight,
		Bech32HRP:             p.Bech32HRP,
		HDCoinType:            p.HDCoinType,
	}
	if len(p.Checkpoints) > 0 {
		view.LastCheckpointHeight = p.LastCheckpointHeight()
	}
	if p.AnonPolicy != nil {
		view.AnonRestricted = p.AnonPolicy.Restricted()
		view.AnonBlacklisted = len(p.AnonPolicy.BlacklistedOutputs())
	}

	out, err := json.MarshalIndent(view, "", "  ")
	if err != nil {
		return err
	}
	fmt.Fprintln(c.App.Writer, string(out))
	return nil
}

func printReward(c *cli.Context) error {
	p, err := selectedParams(c)
	if err != nil {
		return err
	}

	height := c.Int64("height")
	if height < 0 || height > math.MaxInt32 {
		return fmt.Errorf("height %d out of range", height)
	}

	prev := &chaincfg.BlockIndex{
		Height: int32(height) - 1,
		Time:   p.TimeAtHeight(int32(height) - 1),
	}
	reward := p.ProofOfStakeReward(prev, c.Int64("fees"))

	fmt.Fprintf(c.App.Writer, "height %d year %d reward %d (%d.%08d coins)\n",
		height, p.YearOfHeight(int32(height)), reward,
		reward/chaincfg.COIN, reward%chaincfg.COIN)
	return nil
}

func printTreasury(c *cli.Context) error {
	p, err := selectedParams(c)
	if err != nil {
		return err
	}

	at := c.Int64("time")
	if at == 0 {
		at = time.Now().Unix()
	}

	settings, ok := p.TreasuryFundSettingsForTime(at)
	if !ok {
		return fmt.Errorf("no treasury fund active on %s at %d", p.Name, at)
	}

	fmt.Fprintf(c.App.Writer, "address %s\nmin stake percent %d\noutput period %d blocks\n",
		settings.Address, settings.MinStakePercent, settings.OutputPeriod)
	return nil
}

func printSchedule(c *cli.Context) error {
	p, err := selectedParams(c)
	if err != nil {
		return err
	}

	fmt.Fprintf(c.App.Writer, "base block reward %d, %d blocks per year\n",
		p.BaseBlockReward(), p.BlocksPerYear())
	for year := 0; year < chaincfg.RewardYears; year++ {
		reward := p.ProofOfStakeRewardAtYear(year)
		fmt.Fprintf(c.App.Writer, "year %2d  %3d%%  %d.%08d coins\n",
			year, p.CoinYearPercent(year),
			reward/chaincfg.COIN, reward%chaincfg.COIN)
	}
	return nil
}
