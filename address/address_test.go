package address_test

import (
	"bytes"
	"encoding/hex"
	"errors"
	"strings"
	"testing"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/chaincfg/chainhash"

	"github.com/umbra-project/go-umbra/address"
	"github.com/umbra-project/go-umbra/chaincfg"
)

const (
	scanKeyHex  = "0279be667ef9dcbbac55a06295ce870b07029bfcdb2dce28d959f2815b16f81798"
	spendKeyHex = "02c6047f9441ed7d6d3045406e95c07cd85c778e4b8cef3ca7abac09b95c709ee5"
)

func mustHex(t *testing.T, s string) []byte {
	t.Helper()
	b, err := hex.DecodeString(s)
	if err != nil {
		t.Fatal(err)
	}
	return b
}

func mustParseKey(t *testing.T, s string) *btcec.PublicKey {
	t.Helper()
	key, err := btcec.ParsePubKey(mustHex(t, s))
	if err != nil {
		t.Fatal(err)
	}
	return key
}

func TestBase58RoundTrip(t *testing.T) {
	net := &chaincfg.MainNetParams
	keyHash := address.Hash160(mustHex(t, scanKeyHex))
	keyHash256 := address.Hash256(mustHex(t, scanKeyHex))

	tests := []struct {
		tag  chaincfg.KeyPrefix
		data []byte
	}{
		{chaincfg.PubKeyAddress, keyHash},
		{chaincfg.ScriptAddress, keyHash},
		{chaincfg.StakeOnlyPubKeyAddress, keyHash},
		{chaincfg.PubKeyAddress256, keyHash256},
	}
	for _, test := range tests {
		encoded := (&address.Base58{
			Version: net.Base58Prefix(test.tag),
			Data:    test.data,
		}).Encode()

		decoded, tag, err := address.FromBase58(encoded, net)
		if err != nil {
			t.Fatalf("%s: decode: %v", test.tag, err)
		}
		if tag != test.tag {
			t.Errorf("%s: classified as %s", test.tag, tag)
		}
		if !bytes.Equal(decoded.Data, test.data) {
			t.Errorf("%s: payload mismatch", test.tag)
		}
		if !bytes.Equal(decoded.Version, net.Base58Prefix(test.tag)) {
			t.Errorf("%s: version mismatch", test.tag)
		}
	}
}

func TestFromBase58Errors(t *testing.T) {
	net := &chaincfg.MainNetParams
	keyHash := address.Hash160(mustHex(t, scanKeyHex))

	encoded := (&address.Base58{
		Version: net.Base58Prefix(chaincfg.PubKeyAddress),
		Data:    keyHash,
	}).Encode()

	// Flip one character in the middle.
	tampered := []byte(encoded)
	if tampered[6] != '2' {
		tampered[6] = '2'
	} else {
		tampered[6] = '3'
	}
	if _, _, err := address.FromBase58(string(tampered), net); !errors.Is(err, address.ErrChecksumMismatch) {
		t.Errorf("tampered: got %v, want checksum mismatch", err)
	}

	// A valid checksum under a version no network registers.
	unknown := (&address.Base58{Version: []byte{0xee}, Data: keyHash}).Encode()
	if _, _, err := address.FromBase58(unknown, net); !errors.Is(err, address.ErrUnknownPrefix) {
		t.Errorf("unknown prefix: got %v", err)
	}

	if _, _, err := address.FromBase58("1111", net); !errors.Is(err, address.ErrTooShort) {
		t.Errorf("short: got %v", err)
	}
}

func TestBech32RoundTrip(t *testing.T) {
	net := &chaincfg.MainNetParams
	keyHash := address.Hash160(mustHex(t, spendKeyHex))

	encoded, err := (&address.Bech32{
		Prefix: string(net.Bech32Prefix(chaincfg.PubKeyAddress)),
		Data:   keyHash,
	}).Encode()
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(encoded, "uh1") {
		t.Fatalf("unexpected encoding %q", encoded)
	}

	decoded, tag, err := address.FromBech32(encoded, net)
	if err != nil {
		t.Fatal(err)
	}
	if tag != chaincfg.PubKeyAddress {
		t.Errorf("classified as %s", tag)
	}
	if !bytes.Equal(decoded.Data, keyHash) {
		t.Error("payload mismatch")
	}

	// The stake only prefix shares its first letter with the stealth one
	// and must still resolve to its own tag.
	stakeOnly, err := (&address.Bech32{
		Prefix: string(net.Bech32Prefix(chaincfg.StakeOnlyPubKeyAddress)),
		Data:   keyHash,
	}).Encode()
	if err != nil {
		t.Fatal(err)
	}
	_, tag, err = address.FromBech32(stakeOnly, net)
	if err != nil {
		t.Fatal(err)
	}
	if tag != chaincfg.StakeOnlyPubKeyAddress {
		t.Errorf("stake only classified as %s", tag)
	}
}

func TestFromBech32Errors(t *testing.T) {
	net := &chaincfg.MainNetParams
	keyHash := address.Hash160(mustHex(t, spendKeyHex))

	foreign, err := (&address.Bech32{Prefix: "zz", Data: keyHash}).Encode()
	if err != nil {
		t.Fatal(err)
	}
	if _, _, err := address.FromBech32(foreign, net); !errors.Is(err, address.ErrUnknownPrefix) {
		t.Errorf("foreign hrp: got %v", err)
	}

	// A mainnet address is not valid on the test network.
	encoded, err := (&address.Bech32{
		Prefix: string(net.Bech32Prefix(chaincfg.PubKeyAddress)),
		Data:   keyHash,
	}).Encode()
	if err != nil {
		t.Fatal(err)
	}
	if _, _, err := address.FromBech32(encoded, &chaincfg.TestNetParams); !errors.Is(err, address.ErrUnknownPrefix) {
		t.Errorf("cross network: got %v", err)
	}

	// Corrupting the data part breaks the bech32 checksum.
	corrupted := []byte(encoded)
	if corrupted[len(corrupted)-1] != 'q' {
		corrupted[len(corrupted)-1] = 'q'
	} else {
		corrupted[len(corrupted)-1] = 'p'
	}
	if _, _, err := address.FromBech32(string(corrupted), net); err == nil {
		t.Error("corrupted address decoded")
	}
}

func TestSegwitRoundTrip(t *testing.T) {
	net := &chaincfg.MainNetParams
	program := address.Hash160(mustHex(t, scanKeyHex))

	encoded, err := address.EncodeSegwit(0, program, net)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(encoded, net.Bech32HRP+"1") {
		t.Fatalf("unexpected encoding %q", encoded)
	}

	version, decoded, err := address.DecodeSegwit(encoded, net)
	if err != nil {
		t.Fatal(err)
	}
	if version != 0 {
		t.Errorf("version = %d", version)
	}
	if !bytes.Equal(decoded, program) {
		t.Error("program mismatch")
	}

	if _, _, err := address.DecodeSegwit(encoded, &chaincfg.TestNetParams); !errors.Is(err, address.ErrUnknownPrefix) {
		t.Errorf("cross network: got %v", err)
	}
}

func TestSegwitBadPrograms(t *testing.T) {
	net := &chaincfg.MainNetParams

	if _, err := address.EncodeSegwit(0, make([]byte, 25), net); !errors.Is(err, address.ErrPayloadSize) {
		t.Errorf("v0 25 bytes: got %v", err)
	}
	if _, err := address.EncodeSegwit(0, make([]byte, 1), net); !errors.Is(err, address.ErrPayloadSize) {
		t.Errorf("1 byte: got %v", err)
	}
	if _, err := address.EncodeSegwit(17, make([]byte, 20), net); err == nil {
		t.Error("version 17 accepted")
	}

	// Witness version 1 allows other program sizes.
	encoded, err := address.EncodeSegwit(1, make([]byte, 32), net)
	if err != nil {
		t.Fatal(err)
	}
	version, program, err := address.DecodeSegwit(encoded, net)
	if err != nil {
		t.Fatal(err)
	}
	if version != 1 || len(program) != 32 {
		t.Errorf("got version %d, %d byte program", version, len(program))
	}
}

func TestStealthRoundTrip(t *testing.T) {
	net := &chaincfg.MainNetParams
	scanKey := mustParseKey(t, scanKeyHex)
	spendKey := mustParseKey(t, spendKeyHex)

	stealth := address.NewStealth(scanKey, spendKey)
	stealth.PrefixBits = 10
	stealth.PrefixBitfield = 0x2aa

	encoded, err := stealth.Encode(net)
	if err != nil {
		t.Fatal(err)
	}

	decoded, err := address.FromStealth(encoded, net)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(decoded.ScanKey.SerializeCompressed(), scanKey.SerializeCompressed()) {
		t.Error("scan key mismatch")
	}
	if !bytes.Equal(decoded.SpendKey.SerializeCompressed(), spendKey.SerializeCompressed()) {
		t.Error("spend key mismatch")
	}
	if decoded.PrefixBits != 10 || decoded.PrefixBitfield != 0x2aa {
		t.Errorf("prefix filter = %d/%x", decoded.PrefixBits, decoded.PrefixBitfield)
	}
	if decoded.Options != 0 {
		t.Errorf("options = %d", decoded.Options)
	}
}

func TestFromStealthErrors(t *testing.T) {
	net := &chaincfg.MainNetParams
	scanKey := mustParseKey(t, scanKeyHex)

	// A well formed address of another type.
	p2pkh := (&address.Base58{
		Version: net.Base58Prefix(chaincfg.PubKeyAddress),
		Data:    address.Hash160(scanKey.SerializeCompressed()),
	}).Encode()
	if _, err := address.FromStealth(p2pkh, net); !errors.Is(err, address.ErrNotStealthAddress) {
		t.Errorf("p2pkh: got %v", err)
	}

	stealthVersion := net.Base58Prefix(chaincfg.StealthAddress)
	encodeRaw := func(data []byte) string {
		return (&address.Base58{Version: stealthVersion, Data: data}).Encode()
	}

	// Two spend keys declared.
	payload := []byte{0x00}
	payload = append(payload, scanKey.SerializeCompressed()...)
	payload = append(payload, 2)
	payload = append(payload, scanKey.SerializeCompressed()...)
	payload = append(payload, 1, 0)
	if _, err := address.FromStealth(encodeRaw(payload), net); !errors.Is(err, address.ErrStealthKeyCount) {
		t.Errorf("key count: got %v", err)
	}

	// A scan key that is not a curve point.
	payload = make([]byte, 70)
	if _, err := address.FromStealth(encodeRaw(payload), net); err == nil ||
		!strings.Contains(err.Error(), "scan key") {
		t.Errorf("bad scan key: got %v", err)
	}

	// Truncated payload.
	if _, err := address.FromStealth(encodeRaw(payload[:40]), net); !errors.Is(err, address.ErrStealthPayload) {
		t.Errorf("truncated: got %v", err)
	}

	// Prefix filter too wide to encode.
	spendKey := mustParseKey(t, spendKeyHex)
	stealth := address.NewStealth(scanKey, spendKey)
	stealth.PrefixBits = 33
	if _, err := stealth.Encode(net); !errors.Is(err, address.ErrStealthPrefixBits) {
		t.Errorf("prefix bits: got %v", err)
	}
}

func TestHash160(t *testing.T) {
	got := hex.EncodeToString(address.Hash160(mustHex(t, scanKeyHex)))
	if got != "751e76e8199196d454941c45d1b3a323f1433bd6" {
		t.Errorf("Hash160 = %s", got)
	}

	got = hex.EncodeToString(address.Hash160(nil))
	if got != "b472a266d0bd89c13706a4132ccfb16f7c3b9fcb" {
		t.Errorf("Hash160(nil) = %s", got)
	}
}

func TestHash256(t *testing.T) {
	got := address.Hash256([]byte("abc"))
	want := chainhash.DoubleHashB([]byte("abc"))
	if !bytes.Equal(got, want) {
		t.Errorf("Hash256 disagrees with double sha256: %x", got)
	}
	if hex.EncodeToString(got) != "4f8b42c22dd3729b519ba6f68d2da7cc5b2d606d05daed5ad5128cc03e6c6358" {
		t.Errorf("Hash256 = %x", got)
	}
}
