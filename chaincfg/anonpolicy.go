package chaincfg

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"sync"
	"unicode"
)

// DefaultAnonMaxOutputSize is the anon output count limit per transaction
// networks start out with.
const DefaultAnonMaxOutputSize = 2

// AnonOutputPolicy carries the adjustable part of a network's anon output
// rules: whether anon spends are restricted to the recovery path, and which
// anon output indices are banned from ring membership. Unlike the rest of a
// parameter set it may change at runtime, so every access goes through its
// lock.
type AnonOutputPolicy struct {
	mu              sync.RWMutex
	restricted      bool
	recoveryAddress string
	maxOutputSize   int
	blacklist       map[uint64]struct{}
}

// NewAnonOutputPolicy returns a policy with the default output size limit
// and the given initial blacklist.
func NewAnonOutputPolicy(restricted bool, recoveryAddress string, blacklisted ...uint64) *AnonOutputPolicy {
	blacklist := make(map[uint64]struct{}, len(blacklisted))
	for _, index := range blacklisted {
		blacklist[index] = struct{}{}
	}
	return &AnonOutputPolicy{
		restricted:      restricted,
		recoveryAddress: recoveryAddress,
		maxOutputSize:   DefaultAnonMaxOutputSize,
		blacklist:       blacklist,
	}
}

// Restricted reports whether anon spends are limited to the recovery path.
func (p *AnonOutputPolicy) Restricted() bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.restricted
}

// SetRestricted toggles the anon spend restriction.
func (p *AnonOutputPolicy) SetRestricted(restricted bool) {
	p.mu.Lock()
	p.restricted = restricted
	p.mu.Unlock()
}

// RecoveryAddress returns the address anon funds must move to while
// restricted.
func (p *AnonOutputPolicy) RecoveryAddress() string {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.recoveryAddress
}

// SetRecoveryAddress replaces the recovery address.
func (p *AnonOutputPolicy) SetRecoveryAddress(address string) {
	p.mu.Lock()
	p.recoveryAddress = address
	p.mu.Unlock()
}

// MaxOutputSize returns the anon output count limit per transaction.
func (p *AnonOutputPolicy) MaxOutputSize() int {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.maxOutputSize
}

// SetMaxOutputSize replaces the anon output count limit.
func (p *AnonOutputPolicy) SetMaxOutputSize(size int) {
	p.mu.Lock()
	p.maxOutputSize = size
	p.mu.Unlock()
}

// IsBlacklistedOutput reports whether the given anon output index is banned
// from ring membership.
func (p *AnonOutputPolicy) IsBlacklistedOutput(index uint64) bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	_, ok := p.blacklist[index]
	return ok
}

// SetBlacklistedOutputs replaces the whole blacklist atomically. Readers
// observe either the previous set or the new one, never a mix.
func (p *AnonOutputPolicy) SetBlacklistedOutputs(indices map[uint64]struct{}) {
	blacklist := make(map[uint64]struct{}, len(indices))
	for index := range indices {
		blacklist[index] = struct{}{}
	}
	p.mu.Lock()
	p.blacklist = blacklist
	p.mu.Unlock()
}

// BlacklistedOutputs returns the banned indices in ascending order.
func (p *AnonOutputPolicy) BlacklistedOutputs() []uint64 {
	p.mu.RLock()
	indices := make([]uint64, 0, len(p.blacklist))
	for index := range p.blacklist {
		indices = append(indices, index)
	}
	p.mu.RUnlock()

	sort.Slice(indices, func(i, j int) bool { return indices[i] < indices[j] })
	return indices
}

// ParseAnonIndexSet parses a textual list of anon output indices into a set.
// Tokens are separated by commas or whitespace and are either single decimal
// indices or inclusive ranges written a-b. Duplicates collapse. Blank input
// yields an empty set. Any malformed or descending token fails the whole
// parse and no partial set is returned.
func ParseAnonIndexSet(text string) (map[uint64]struct{}, error) {
	tokens := strings.FieldsFunc(text, func(r rune) bool {
		return r == ',' || unicode.IsSpace(r)
	})

	indices := make(map[uint64]struct{})
	for _, token := range tokens {
		lo, hi, err := parseAnonIndexToken(token)
		if err != nil {
			return nil, err
		}
		for i := lo; ; i++ {
			indices[i] = struct{}{}
			if i == hi {
				break
			}
		}
	}
	return indices, nil
}

func parseAnonIndexToken(token string) (uint64, uint64, error) {
	if sep := strings.IndexByte(token, '-'); sep >= 0 {
		lo, err := strconv.ParseUint(token[:sep], 10, 64)
		if err != nil {
			return 0, 0, fmt.Errorf("invalid anon index range %q", token)
		}
		hi, err := strconv.ParseUint(token[sep+1:], 10, 64)
		if err != nil {
			return 0, 0, fmt.Errorf("invalid anon index range %q", token)
		}
		if lo > hi {
			return 0, 0, fmt.Errorf("descending anon index range %q", token)
		}
		return lo, hi, nil
	}

	index, err := strconv.ParseUint(token, 10, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid anon index %q", token)
	}
	return index, index, nil
}
