package chaincfg_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/umbra-project/go-umbra/chaincfg"
)

func TestBech32PrefixType(t *testing.T) {
	p := &chaincfg.MainNetParams

	tests := []struct {
		data string
		tag  chaincfg.KeyPrefix
	}{
		{"uh1qw508d6qejxtdg4y5r3zarvary0c5xw7k", chaincfg.PubKeyAddress},
		{"ur1qw508d6qejxtdg4y5r3zarvary0c5xw7k", chaincfg.ScriptAddress},
		{"us1qqqqqqqq", chaincfg.StealthAddress},
		{"ucs1qqqqqqqq", chaincfg.StakeOnlyPubKeyAddress},
		{"uep1qqqqqqqq", chaincfg.ExtPublicKey},
		{"uex1qqqqqqqq", chaincfg.ExtSecretKey},
		{"ul1qqqqqqqq", chaincfg.PubKeyAddress256},
	}
	for _, test := range tests {
		tag, ok := p.Bech32PrefixType([]byte(test.data))
		require.True(t, ok, "no tag for %q", test.data)
		require.Equal(t, test.tag, tag, "wrong tag for %q", test.data)
	}

	_, ok := p.Bech32PrefixType([]byte("zz1qqqqqqqq"))
	require.False(t, ok)
	_, ok = p.Bech32PrefixType(nil)
	require.False(t, ok)

	// The string adapter classifies the same way.
	tag, ok := p.Bech32PrefixTypeString("ucs1qqqqqqqq")
	require.True(t, ok)
	require.Equal(t, chaincfg.StakeOnlyPubKeyAddress, tag)

	require.True(t, p.IsBech32Prefix([]byte("uh1qqqqqqqq")))
	require.False(t, p.IsBech32Prefix([]byte("bc1qqqqqqqq")))
}

// Every registered prefix must classify back to its own tag, on every
// network. A new entry that shadows an existing one shows up here before it
// ships.
func TestPrefixTablesRoundTrip(t *testing.T) {
	nets := []*chaincfg.Params{
		&chaincfg.MainNetParams,
		&chaincfg.TestNetParams,
		&chaincfg.RegNetParams,
	}
	for _, p := range nets {
		for tag := chaincfg.KeyPrefix(0); tag < chaincfg.NumKeyPrefixes; tag++ {
			if prefix := p.Bech32Prefix(tag); len(prefix) > 0 {
				data := append(append([]byte{}, prefix...), "1qqqq"...)
				got, ok := p.Bech32PrefixType(data)
				require.True(t, ok, "%s: bech32 %s", p.Name, tag)
				require.Equal(t, tag, got, "%s: bech32 %s", p.Name, tag)
			}
			if prefix := p.Base58Prefix(tag); len(prefix) > 0 {
				data := append(append([]byte{}, prefix...), 0xab, 0xcd)
				got, ok := p.Base58PrefixType(data)
				require.True(t, ok, "%s: base58 %s", p.Name, tag)
				require.Equal(t, tag, got, "%s: base58 %s", p.Name, tag)
			}
		}
	}
}

func TestBase58PrefixType(t *testing.T) {
	p := &chaincfg.MainNetParams

	tag, ok := p.Base58PrefixType([]byte{0x44, 0x01, 0x02})
	require.True(t, ok)
	require.Equal(t, chaincfg.PubKeyAddress, tag)

	tag, ok = p.Base58PrefixType([]byte{0x45, 0x8f, 0x6e, 0xd2, 0x00})
	require.True(t, ok)
	require.Equal(t, chaincfg.ExtPublicKey, tag)

	tag, ok = p.Base58PrefixType([]byte{0x45, 0x8f, 0x63, 0x1c, 0x00})
	require.True(t, ok)
	require.Equal(t, chaincfg.ExtSecretKey, tag)

	_, ok = p.Base58PrefixType([]byte{0x00, 0x01})
	require.False(t, ok)
}

func TestPrefixAccessorsRejectBadTags(t *testing.T) {
	p := &chaincfg.MainNetParams

	require.Nil(t, p.Base58Prefix(chaincfg.NumKeyPrefixes))
	require.Nil(t, p.Base58Prefix(chaincfg.KeyPrefix(-1)))
	require.Nil(t, p.Bech32Prefix(chaincfg.NumKeyPrefixes))
}

func TestRegisterRejectsDuplicateNet(t *testing.T) {
	// The standard networks register on package init.
	err := chaincfg.Register(&chaincfg.MainNetParams)
	require.ErrorIs(t, err, chaincfg.ErrDuplicateNet)
}

func TestRegisterRejectsAmbiguousBech32(t *testing.T) {
	params := &chaincfg.Params{
		Name:       "bogus",
		Net:        chaincfg.UmbraNet(0x00000001),
		IsMockable: true,
	}
	params.Bech32Prefixes[chaincfg.PubKeyAddress] = []byte("u")
	params.Bech32Prefixes[chaincfg.StealthAddress] = []byte("us")

	err := chaincfg.Register(params)
	require.ErrorIs(t, err, chaincfg.ErrAmbiguousPrefix)
}

func TestRegisterRejectsDuplicateBase58(t *testing.T) {
	params := &chaincfg.Params{
		Name:       "bogus",
		Net:        chaincfg.UmbraNet(0x00000002),
		IsMockable: true,
	}
	params.Base58Prefixes[chaincfg.PubKeyAddress] = []byte{0x6f}
	params.Base58Prefixes[chaincfg.ScriptAddress] = []byte{0x6f}

	err := chaincfg.Register(params)
	require.ErrorIs(t, err, chaincfg.ErrAmbiguousPrefix)
}

func TestRegisterRequiresCheckpoints(t *testing.T) {
	params := &chaincfg.Params{
		Name: "bogus",
		Net:  chaincfg.UmbraNet(0x00000003),
	}

	err := chaincfg.Register(params)
	require.ErrorIs(t, err, chaincfg.ErrNoCheckpoints)

	// The failed registration must not claim the network magic.
	err = chaincfg.Register(params)
	require.ErrorIs(t, err, chaincfg.ErrNoCheckpoints)
}

func TestHDPrivateKeyToPublicKeyID(t *testing.T) {
	for _, p := range []*chaincfg.Params{
		&chaincfg.MainNetParams,
		&chaincfg.TestNetParams,
		&chaincfg.RegNetParams,
	} {
		got, err := chaincfg.HDPrivateKeyToPublicKeyID(p.HDPrivateKeyID[:])
		require.NoError(t, err, p.Name)
		require.Equal(t, p.HDPublicKeyID[:], got, p.Name)
	}

	_, err := chaincfg.HDPrivateKeyToPublicKeyID([]byte{0xff, 0xff, 0xff, 0xff})
	require.ErrorIs(t, err, chaincfg.ErrUnknownHDKeyID)
	_, err = chaincfg.HDPrivateKeyToPublicKeyID([]byte{0xff})
	require.ErrorIs(t, err, chaincfg.ErrUnknownHDKeyID)
}

func TestIsBech32HRP(t *testing.T) {
	require.True(t, chaincfg.IsBech32HRP("uw"))
	require.True(t, chaincfg.IsBech32HRP("tuw"))
	require.True(t, chaincfg.IsBech32HRP("ruw"))
	require.False(t, chaincfg.IsBech32HRP("bc"))
	require.False(t, chaincfg.IsBech32HRP(""))
}

func TestStringers(t *testing.T) {
	require.Equal(t, "MainNet", chaincfg.MainNet.String())
	require.Equal(t, "TestNet", chaincfg.TestNet.String())
	require.Equal(t, "RegNet", chaincfg.RegNet.String())
	require.Equal(t, "Unknown UmbraNet (1)", chaincfg.UmbraNet(1).String())

	require.Equal(t, "pubkey_address", chaincfg.PubKeyAddress.String())
	require.Equal(
		t, "stake_only_pubkey_address", chaincfg.StakeOnlyPubKeyAddress.String(),
	)
	require.Equal(
		t, "Unknown KeyPrefix (13)", chaincfg.NumKeyPrefixes.String(),
	)
}

func TestBIP44ID(t *testing.T) {
	p := &chaincfg.MainNetParams
	require.Equal(t, p.HDCoinType, p.BIP44ID(false))
	require.Equal(t, p.LegacyHDCoinType, p.BIP44ID(true))
	require.NotEqual(t, p.BIP44ID(false), p.BIP44ID(true))
}
