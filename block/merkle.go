package block

import (
	"github.com/btcsuite/btcd/chaincfg/chainhash"

	"github.com/umbra-project/go-umbra/transaction"
)

// hashMerkleBranches returns the double sha256 of the concatenation of the
// left and right nodes.
func hashMerkleBranches(left, right *chainhash.Hash) *chainhash.Hash {
	var h [chainhash.HashSize * 2]byte
	copy(h[:chainhash.HashSize], left[:])
	copy(h[chainhash.HashSize:], right[:])

	newHash := chainhash.DoubleHashH(h[:])
	return &newHash
}

func calcMerkleRoot(leaves []*chainhash.Hash) chainhash.Hash {
	if len(leaves) == 0 {
		return chainhash.Hash{}
	}

	for len(leaves) > 1 {
		// A level with an odd number of nodes hashes its last node
		// against itself.
		if len(leaves)%2 != 0 {
			leaves = append(leaves, leaves[len(leaves)-1])
		}
		next := make([]*chainhash.Hash, 0, len(leaves)/2)
		for i := 0; i < len(leaves); i += 2 {
			next = append(next, hashMerkleBranches(leaves[i], leaves[i+1]))
		}
		leaves = next
	}
	return *leaves[0]
}

// CalcMerkleRoot computes the merkle root over the txids of the given
// transactions.
func CalcMerkleRoot(transactions []*transaction.Transaction) chainhash.Hash {
	leaves := make([]*chainhash.Hash, len(transactions))
	for i, tx := range transactions {
		hash := tx.TxHash()
		leaves[i] = &hash
	}
	return calcMerkleRoot(leaves)
}

// CalcWitnessMerkleRoot computes the merkle root over the witness hashes of
// the given transactions. The first transaction of a block commits to all
// witnesses, so its own leaf is the zero hash.
func CalcWitnessMerkleRoot(transactions []*transaction.Transaction) chainhash.Hash {
	leaves := make([]*chainhash.Hash, len(transactions))
	for i, tx := range transactions {
		if i == 0 {
			leaves[i] = &chainhash.Hash{}
			continue
		}
		hash := tx.WitnessHash()
		leaves[i] = &hash
	}
	return calcMerkleRoot(leaves)
}
