package chaincfg

import (
	"fmt"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
)

// Checkpoint identifies a known good point in the block chain. Collectively
// they allow a lightweight consistency check between a synced chain and the
// released parameters.
type Checkpoint struct {
	Height int32
	Hash   *chainhash.Hash
}

// ImportedCoinbase pins the coinbase hash of one block inside the snapshot
// import window.
type ImportedCoinbase struct {
	Height uint32
	Hash   *chainhash.Hash
}

// LastCheckpointHeight returns the greatest checkpointed height. Slice order
// does not matter. An empty checkpoint table outside the regression network
// is a broken build, so this panics rather than guessing.
func (p *Params) LastCheckpointHeight() int32 {
	if len(p.Checkpoints) == 0 {
		panic(fmt.Sprintf("chaincfg: network %s has no checkpoints", p.Name))
	}
	best := p.Checkpoints[0].Height
	for _, cp := range p.Checkpoints[1:] {
		if cp.Height > best {
			best = cp.Height
		}
	}
	return best
}

// CheckpointHash returns the checkpointed hash at the given height, if any.
func (p *Params) CheckpointHash(height int32) (*chainhash.Hash, bool) {
	for _, cp := range p.Checkpoints {
		if cp.Height == height {
			return cp.Hash, true
		}
	}
	return nil, false
}

// CheckImportCoinbase reports whether the given height and coinbase hash
// match the pinned snapshot import window entry. Heights outside the window
// and mismatched hashes are both simply false.
func (p *Params) CheckImportCoinbase(height uint32, hash *chainhash.Hash) bool {
	if hash == nil {
		return false
	}
	for _, ic := range p.ImportedCoinbases {
		if ic.Height == height {
			return ic.Hash.IsEqual(hash)
		}
	}
	return false
}
