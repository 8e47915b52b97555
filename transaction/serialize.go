package transaction

import (
	"github.com/umbra-project/go-umbra/internal/bufferutil"
)

// Wire layout:
//
//	version    uint16
//	flag       uint8, 1 when witness data follows the locktime
//	inputs     varint count, then outpoint(36) + var script + sequence(4)
//	outputs    varint count, then type(1) + type-specific payload
//	locktime   uint32
//	witnesses  one vector of var slices per input, only when flag is 1
func (tx *Transaction) serialize(
	s *bufferutil.Serializer, allowWitness bool,
) error {
	withWitness := allowWitness && tx.hasWitness()

	if err := s.WriteUint16(tx.Version); err != nil {
		return err
	}

	flag := uint8(0)
	if withWitness {
		flag = 1
	}
	if err := s.WriteUint8(flag); err != nil {
		return err
	}

	if err := s.WriteVarInt(uint64(len(tx.Inputs))); err != nil {
		return err
	}
	for _, in := range tx.Inputs {
		if err := in.serialize(s); err != nil {
			return err
		}
	}

	if err := s.WriteVarInt(uint64(len(tx.Outputs))); err != nil {
		return err
	}
	for _, out := range tx.Outputs {
		if err := out.serialize(s); err != nil {
			return err
		}
	}

	if err := s.WriteUint32(tx.Locktime); err != nil {
		return err
	}

	if withWitness {
		for _, in := range tx.Inputs {
			if err := s.WriteVector(in.Witness); err != nil {
				return err
			}
		}
	}

	return nil
}

func (in *TxInput) serialize(s *bufferutil.Serializer) error {
	if err := s.WriteSlice(in.Hash[:]); err != nil {
		return err
	}
	if err := s.WriteUint32(in.Index); err != nil {
		return err
	}
	if err := s.WriteVarSlice(in.Script); err != nil {
		return err
	}
	return s.WriteUint32(in.Sequence)
}

func (out *TxOutput) serialize(s *bufferutil.Serializer) error {
	if err := s.WriteUint8(out.Type); err != nil {
		return err
	}

	switch out.Type {
	case OutputStandard:
		if err := s.WriteUint64(uint64(out.Value)); err != nil {
			return err
		}
		return s.WriteVarSlice(out.Script)

	case OutputBlind:
		if len(out.ValueCommitment) != CommitmentSize {
			return ErrBadCommitmentSize
		}
		if err := s.WriteSlice(out.ValueCommitment); err != nil {
			return err
		}
		if err := s.WriteVarSlice(out.Data); err != nil {
			return err
		}
		if err := s.WriteVarSlice(out.Script); err != nil {
			return err
		}
		return s.WriteVarSlice(out.RangeProof)

	case OutputAnon:
		if len(out.PubKey) != PubKeySize {
			return ErrBadPubKeySize
		}
		if len(out.ValueCommitment) != CommitmentSize {
			return ErrBadCommitmentSize
		}
		if err := s.WriteSlice(out.PubKey); err != nil {
			return err
		}
		if err := s.WriteSlice(out.ValueCommitment); err != nil {
			return err
		}
		if err := s.WriteVarSlice(out.Data); err != nil {
			return err
		}
		return s.WriteVarSlice(out.RangeProof)

	case OutputData:
		return s.WriteVarSlice(out.Data)

	default:
		return ErrUnknownOutputType
	}
}
