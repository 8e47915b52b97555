package address

import (
	"errors"
	"fmt"

	"github.com/btcsuite/btcd/btcec/v2"

	"github.com/umbra-project/go-umbra/chaincfg"
)

const (
	// StealthKeySize is the compressed public key size of stealth scan
	// and spend keys.
	StealthKeySize = 33

	// MaxStealthPrefixBits caps the length of a stealth prefix filter.
	MaxStealthPrefixBits = 32
)

var (
	// ErrNotStealthAddress is returned when a well formed address of some
	// other type is given to FromStealth.
	ErrNotStealthAddress = errors.New("not a stealth address")

	// ErrStealthKeyCount is returned for stealth payloads declaring other
	// than one scan and one spend key.
	ErrStealthKeyCount = errors.New("stealth addresses carry exactly one scan and one spend key")

	// ErrStealthPrefixBits is returned for a prefix filter longer than
	// MaxStealthPrefixBits.
	ErrStealthPrefixBits = errors.New("stealth prefix bits out of range")

	// ErrStealthPayload is returned for truncated or oversized stealth
	// payloads.
	ErrStealthPayload = errors.New("malformed stealth payload")
)

// Stealth is a dual key stealth address. Senders derive one time payment
// keys from ScanKey and SpendKey, the holder finds payments with the scan
// secret and spends them with the spend secret. A non zero PrefixBits
// narrows the scan to outputs whose derived prefix matches PrefixBitfield.
type Stealth struct {
	Options        byte
	ScanKey        *btcec.PublicKey
	SpendKey       *btcec.PublicKey
	PrefixBits     byte
	PrefixBitfield uint32
}

// NewStealth returns a stealth address over the given scan and spend keys
// with no prefix filter.
func NewStealth(scanKey, spendKey *btcec.PublicKey) *Stealth {
	return &Stealth{ScanKey: scanKey, SpendKey: spendKey}
}

// Bytes returns the raw stealth payload: options, scan key, spend key count,
// spend key, signature count, prefix bit count and the packed bitfield.
func (s *Stealth) Bytes() []byte {
	buf := make([]byte, 0, 2*StealthKeySize+8)
	buf = append(buf, s.Options)
	buf = append(buf, s.ScanKey.SerializeCompressed()...)
	buf = append(buf, 1)
	buf = append(buf, s.SpendKey.SerializeCompressed()...)
	buf = append(buf, 1)
	buf = append(buf, s.PrefixBits)
	for i := 0; i < stealthPrefixBytes(s.PrefixBits); i++ {
		buf = append(buf, byte(s.PrefixBitfield>>(8*uint(i))))
	}
	return buf
}

// Encode returns the base58check stealth address under the network's stealth
// prefix.
func (s *Stealth) Encode(net *chaincfg.Params) (string, error) {
	if s.PrefixBits > MaxStealthPrefixBits {
		return "", ErrStealthPrefixBits
	}
	b := &Base58{
		Version: net.Base58Prefix(chaincfg.StealthAddress),
		Data:    s.Bytes(),
	}
	return b.Encode(), nil
}

// FromStealth decodes and validates a base58check stealth address, including
// that both keys parse as points on the curve.
func FromStealth(addr string, net *chaincfg.Params) (*Stealth, error) {
	decoded, tag, err := FromBase58(addr, net)
	if err != nil {
		return nil, err
	}
	if tag != chaincfg.StealthAddress {
		return nil, ErrNotStealthAddress
	}
	return parseStealthPayload(decoded.Data)
}

func parseStealthPayload(data []byte) (*Stealth, error) {
	// Options, scan key, spend key count, spend key, signature count and
	// prefix bit count before any bitfield bytes.
	const fixed = 1 + StealthKeySize + 1 + StealthKeySize + 1 + 1
	if len(data) < fixed {
		return nil, ErrStealthPayload
	}

	s := &Stealth{Options: data[0]}
	off := 1

	var err error
	s.ScanKey, err = btcec.ParsePubKey(data[off : off+StealthKeySize])
	if err != nil {
		return nil, fmt.Errorf("invalid stealth scan key: %w", err)
	}
	off += StealthKeySize

	if data[off] != 1 {
		return nil, ErrStealthKeyCount
	}
	off++

	s.SpendKey, err = btcec.ParsePubKey(data[off : off+StealthKeySize])
	if err != nil {
		return nil, fmt.Errorf("invalid stealth spend key: %w", err)
	}
	off += StealthKeySize

	if data[off] != 1 {
		return nil, ErrStealthKeyCount
	}
	off++

	s.PrefixBits = data[off]
	if s.PrefixBits > MaxStealthPrefixBits {
		return nil, ErrStealthPrefixBits
	}
	off++

	nb := stealthPrefixBytes(s.PrefixBits)
	if len(data) != off+nb {
		return nil, ErrStealthPayload
	}
	for i := 0; i < nb; i++ {
		s.PrefixBitfield |= uint32(data[off+i]) << (8 * uint(i))
	}
	return s, nil
}

func stealthPrefixBytes(bits byte) int {
	return (int(bits) + 7) / 8
}
