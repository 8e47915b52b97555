package chaincfg_test

import (
	"sort"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/umbra-project/go-umbra/chaincfg"
)

func TestParseAnonIndexSet(t *testing.T) {
	tests := []struct {
		text string
		want []uint64
	}{
		{"", nil},
		{"  \t ", nil},
		{"4", []uint64{4}},
		{"1,3-5, 9", []uint64{1, 3, 4, 5, 9}},
		{"1,,2", []uint64{1, 2}},
		{"7-7", []uint64{7}},
		{"2 2,2", []uint64{2}},
		{"0-3", []uint64{0, 1, 2, 3}},
	}
	for _, test := range tests {
		got, err := chaincfg.ParseAnonIndexSet(test.text)
		require.NoError(t, err, "%q", test.text)
		require.Len(t, got, len(test.want), "%q", test.text)
		for _, index := range test.want {
			_, ok := got[index]
			require.True(t, ok, "%q missing %d", test.text, index)
		}
	}
}

func TestParseAnonIndexSetErrors(t *testing.T) {
	for _, text := range []string{
		"x", "1,x", "3-", "-3", "5-3", "1-2-3", "1.5",
	} {
		_, err := chaincfg.ParseAnonIndexSet(text)
		require.Error(t, err, "%q", text)
	}
}

func TestAnonPolicyDefaults(t *testing.T) {
	policy := chaincfg.MainNetParams.AnonPolicy
	require.NotNil(t, policy)

	// Anon spending ships restricted to the recovery path after the
	// exploit response.
	require.True(t, policy.Restricted())
	require.NotEmpty(t, policy.RecoveryAddress())
	require.Equal(t, chaincfg.DefaultAnonMaxOutputSize, policy.MaxOutputSize())

	require.True(t, policy.IsBlacklistedOutput(6183))
	require.True(t, policy.IsBlacklistedOutput(14061))
	require.False(t, policy.IsBlacklistedOutput(1))

	indices := policy.BlacklistedOutputs()
	require.NotEmpty(t, indices)
	require.True(t, sort.SliceIsSorted(indices, func(i, j int) bool {
		return indices[i] < indices[j]
	}))

	for _, p := range []*chaincfg.Params{
		&chaincfg.TestNetParams, &chaincfg.RegNetParams,
	} {
		require.NotNil(t, p.AnonPolicy, p.Name)
		require.False(t, p.AnonPolicy.Restricted(), p.Name)
		require.Empty(t, p.AnonPolicy.BlacklistedOutputs(), p.Name)
	}
}

func TestAnonPolicySetters(t *testing.T) {
	policy := chaincfg.NewAnonOutputPolicy(false, "")

	policy.SetRestricted(true)
	require.True(t, policy.Restricted())
	policy.SetRestricted(false)
	require.False(t, policy.Restricted())

	policy.SetRecoveryAddress("rURecoveryAddr")
	require.Equal(t, "rURecoveryAddr", policy.RecoveryAddress())

	policy.SetMaxOutputSize(5)
	require.Equal(t, 5, policy.MaxOutputSize())
}

func TestAnonPolicyBlacklistReplace(t *testing.T) {
	policy := chaincfg.NewAnonOutputPolicy(false, "", 1, 2, 3)
	require.True(t, policy.IsBlacklistedOutput(2))

	indices, err := chaincfg.ParseAnonIndexSet("10-12,20")
	require.NoError(t, err)
	policy.SetBlacklistedOutputs(indices)

	// The replacement is whole, previous entries do not linger.
	require.False(t, policy.IsBlacklistedOutput(2))
	require.Equal(t, []uint64{10, 11, 12, 20}, policy.BlacklistedOutputs())

	// The policy keeps its own copy of the set.
	indices[99] = struct{}{}
	require.False(t, policy.IsBlacklistedOutput(99))
}

func TestAnonPolicyConcurrentAccess(t *testing.T) {
	policy := chaincfg.NewAnonOutputPolicy(true, "addr", 7)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(n uint64) {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				policy.SetBlacklistedOutputs(map[uint64]struct{}{n: {}})
				policy.IsBlacklistedOutput(n)
				policy.SetRestricted(n%2 == 0)
				policy.Restricted()
				policy.BlacklistedOutputs()
			}
		}(uint64(i))
	}
	wg.Wait()
}
