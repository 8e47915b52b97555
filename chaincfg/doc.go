// Package chaincfg defines the chain configuration parameters of the three
// public Umbra networks and the operations that read them: the proof of
// stake reward schedule, the effective dated treasury fund registry,
// checkpoint and snapshot import pinning, the address prefix tables and the
// adjustable anon output policy.
//
// Applications resolve a parameter set through a Context:
//
//	ctx := chaincfg.NewContext()
//	if err := ctx.SelectParams("main"); err != nil {
//		// unknown network name
//	}
//	params := ctx.Params()
//
// The canonical MainNetParams, TestNetParams and RegNetParams instances are
// registered on package init; custom networks may be added with Register,
// which also validates their prefix tables. Tests that need to tune reward
// or consensus knobs work on a private copy obtained from NewTestParams
// rather than mutating a shared instance.
package chaincfg
