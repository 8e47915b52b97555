package block

import (
	"github.com/umbra-project/go-umbra/internal/bufferutil"
)

func bufferSerializer() *bufferutil.Serializer {
	return bufferutil.NewSerializer(nil)
}

// SerializeBlock returns the wire encoding of the block: header, transaction
// vector, then the var sized block signature.
func (b *Block) SerializeBlock() ([]byte, error) {
	s := bufferSerializer()

	if err := b.Header.SerializeHeader(s); err != nil {
		return nil, err
	}

	if err := s.WriteVarInt(uint64(len(b.Transactions))); err != nil {
		return nil, err
	}
	for _, tx := range b.Transactions {
		txBytes, err := tx.Serialize()
		if err != nil {
			return nil, err
		}
		if err := s.WriteSlice(txBytes); err != nil {
			return nil, err
		}
	}

	if err := s.WriteVarSlice(b.Signature); err != nil {
		return nil, err
	}

	return s.Bytes(), nil
}

// SerializeHeader writes the fixed 116 byte header encoding.
func (h *Header) SerializeHeader(s *bufferutil.Serializer) error {
	if err := s.WriteUint32(h.Version); err != nil {
		return err
	}
	if err := s.WriteSlice(h.PrevBlock[:]); err != nil {
		return err
	}
	if err := s.WriteSlice(h.MerkleRoot[:]); err != nil {
		return err
	}
	if err := s.WriteSlice(h.WitnessMerkleRoot[:]); err != nil {
		return err
	}
	if err := s.WriteUint32(h.Timestamp); err != nil {
		return err
	}
	if err := s.WriteUint32(h.Bits); err != nil {
		return err
	}
	return s.WriteUint32(h.Nonce)
}
