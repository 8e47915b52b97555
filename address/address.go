package address

import (
	"bytes"
	"errors"

	"github.com/btcsuite/btcd/btcutil/base58"
	"github.com/btcsuite/btcd/btcutil/bech32"
	"github.com/btcsuite/btcd/chaincfg/chainhash"

	"github.com/umbra-project/go-umbra/chaincfg"
)

var (
	// ErrChecksumMismatch is returned when an address fails its checksum.
	ErrChecksumMismatch = errors.New("address checksum mismatch")

	// ErrUnknownPrefix is returned when an address carries no prefix
	// registered on the given network.
	ErrUnknownPrefix = errors.New("address prefix not registered on this network")

	// ErrTooShort is returned when a decoded payload is shorter than its
	// smallest valid form.
	ErrTooShort = errors.New("address payload too short")

	// ErrPayloadSize is returned when a payload length does not fit the
	// address type it is encoded as.
	ErrPayloadSize = errors.New("address payload size mismatch")
)

// Base58 is a base58check encoded address or key split into its version
// prefix and payload. Umbra version prefixes are one byte for addresses and
// four bytes for extended key magics, so Version is a slice rather than a
// single byte.
type Base58 struct {
	Version []byte
	Data    []byte
}

// Encode appends a four byte double sha256 checksum and base58 encodes the
// whole payload.
func (b *Base58) Encode() string {
	buf := make([]byte, 0, len(b.Version)+len(b.Data)+4)
	buf = append(buf, b.Version...)
	buf = append(buf, b.Data...)
	checksum := chainhash.DoubleHashB(buf)[:4]
	return base58.Encode(append(buf, checksum...))
}

// FromBase58 decodes a base58check string, verifies its checksum and
// classifies the version prefix against the network's registered table.
func FromBase58(addr string, net *chaincfg.Params) (*Base58, chaincfg.KeyPrefix, error) {
	decoded := base58.Decode(addr)
	if len(decoded) < 5 {
		return nil, 0, ErrTooShort
	}

	payload := decoded[:len(decoded)-4]
	checksum := decoded[len(decoded)-4:]
	if !bytes.Equal(chainhash.DoubleHashB(payload)[:4], checksum) {
		return nil, 0, ErrChecksumMismatch
	}

	tag, ok := net.Base58PrefixType(payload)
	if !ok {
		return nil, 0, ErrUnknownPrefix
	}
	version := net.Base58Prefix(tag)

	return &Base58{
		Version: append([]byte(nil), version...),
		Data:    append([]byte(nil), payload[len(version):]...),
	}, tag, nil
}

// Bech32 is a bech32 encoded payload. Prefix is the human readable part, one
// of the network's per tag prefixes.
type Bech32 struct {
	Prefix string
	Data   []byte
}

// Encode converts the payload to five bit groups and encodes it under the
// prefix.
func (b *Bech32) Encode() (string, error) {
	converted, err := bech32.ConvertBits(b.Data, 8, 5, true)
	if err != nil {
		return "", err
	}
	return bech32.Encode(b.Prefix, converted)
}

// FromBech32 decodes a bech32 string and classifies its human readable part
// against the network's registered table. Stealth payloads overflow the
// usual ninety character limit, so decoding is not length capped.
func FromBech32(addr string, net *chaincfg.Params) (*Bech32, chaincfg.KeyPrefix, error) {
	hrp, converted, err := bech32.DecodeNoLimit(addr)
	if err != nil {
		return nil, 0, err
	}

	tag, ok := net.Bech32PrefixTypeString(hrp)
	if !ok || hrp != string(net.Bech32Prefix(tag)) {
		return nil, 0, ErrUnknownPrefix
	}

	data, err := bech32.ConvertBits(converted, 5, 8, false)
	if err != nil {
		return nil, 0, err
	}
	return &Bech32{Prefix: hrp, Data: data}, tag, nil
}

// EncodeSegwit returns the native witness address of the given program under
// the network's witness HRP.
func EncodeSegwit(witnessVersion byte, program []byte, net *chaincfg.Params) (string, error) {
	if err := checkWitnessProgram(witnessVersion, program); err != nil {
		return "", err
	}
	converted, err := bech32.ConvertBits(program, 8, 5, true)
	if err != nil {
		return "", err
	}

	combined := make([]byte, 0, len(converted)+1)
	combined = append(combined, witnessVersion)
	combined = append(combined, converted...)
	return bech32.Encode(net.Bech32HRP, combined)
}

// DecodeSegwit decodes a native witness address into its version and
// program, rejecting addresses of other networks.
func DecodeSegwit(addr string, net *chaincfg.Params) (byte, []byte, error) {
	hrp, data, err := bech32.Decode(addr)
	if err != nil {
		return 0, nil, err
	}
	if hrp != net.Bech32HRP {
		return 0, nil, ErrUnknownPrefix
	}
	if len(data) < 1 {
		return 0, nil, ErrTooShort
	}

	program, err := bech32.ConvertBits(data[1:], 5, 8, false)
	if err != nil {
		return 0, nil, err
	}
	if err := checkWitnessProgram(data[0], program); err != nil {
		return 0, nil, err
	}
	return data[0], program, nil
}

func checkWitnessProgram(version byte, program []byte) error {
	if version > 16 {
		return errors.New("invalid witness version")
	}
	if len(program) < 2 || len(program) > 40 {
		return ErrPayloadSize
	}
	if version == 0 && len(program) != 20 && len(program) != 32 {
		return ErrPayloadSize
	}
	return nil
}
