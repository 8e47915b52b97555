package transaction

import (
	"bytes"

	"github.com/btcsuite/btcd/chaincfg/chainhash"

	"github.com/umbra-project/go-umbra/internal/bufferutil"
)

func deserialize(buf *bytes.Buffer) (*Transaction, error) {
	d := bufferutil.NewDeserializer(buf)

	version, err := d.ReadUint16()
	if err != nil {
		return nil, err
	}

	flag, err := d.ReadUint8()
	if err != nil {
		return nil, err
	}

	inCount, err := d.ReadVarInt()
	if err != nil {
		return nil, err
	}
	inputs := make([]*TxInput, 0, inCount)
	for i := uint64(0); i < inCount; i++ {
		in, err := deserializeInput(d)
		if err != nil {
			return nil, err
		}
		inputs = append(inputs, in)
	}

	outCount, err := d.ReadVarInt()
	if err != nil {
		return nil, err
	}
	outputs := make([]*TxOutput, 0, outCount)
	for i := uint64(0); i < outCount; i++ {
		out, err := deserializeOutput(d)
		if err != nil {
			return nil, err
		}
		outputs = append(outputs, out)
	}

	locktime, err := d.ReadUint32()
	if err != nil {
		return nil, err
	}

	if flag == 1 {
		for _, in := range inputs {
			witness, err := d.ReadVector()
			if err != nil {
				return nil, err
			}
			in.Witness = witness
		}
	}

	return &Transaction{
		Version:  version,
		Locktime: locktime,
		Inputs:   inputs,
		Outputs:  outputs,
	}, nil
}

func deserializeInput(d *bufferutil.Deserializer) (*TxInput, error) {
	hashBytes, err := d.ReadSlice(chainhash.HashSize)
	if err != nil {
		return nil, err
	}
	var hash chainhash.Hash
	copy(hash[:], hashBytes)

	index, err := d.ReadUint32()
	if err != nil {
		return nil, err
	}

	script, err := d.ReadVarSlice()
	if err != nil {
		return nil, err
	}

	sequence, err := d.ReadUint32()
	if err != nil {
		return nil, err
	}

	return &TxInput{
		Hash:     hash,
		Index:    index,
		Script:   script,
		Sequence: sequence,
	}, nil
}

func deserializeOutput(d *bufferutil.Deserializer) (*TxOutput, error) {
	outType, err := d.ReadUint8()
	if err != nil {
		return nil, err
	}

	out := &TxOutput{Type: outType}
	switch outType {
	case OutputStandard:
		value, err := d.ReadUint64()
		if err != nil {
			return nil, err
		}
		out.Value = int64(value)
		if out.Script, err = d.ReadVarSlice(); err != nil {
			return nil, err
		}

	case OutputBlind:
		if out.ValueCommitment, err = d.ReadSlice(CommitmentSize); err != nil {
			return nil, err
		}
		if out.Data, err = d.ReadVarSlice(); err != nil {
			return nil, err
		}
		if out.Script, err = d.ReadVarSlice(); err != nil {
			return nil, err
		}
		if out.RangeProof, err = d.ReadVarSlice(); err != nil {
			return nil, err
		}

	case OutputAnon:
		if out.PubKey, err = d.ReadSlice(PubKeySize); err != nil {
			return nil, err
		}
		if out.ValueCommitment, err = d.ReadSlice(CommitmentSize); err != nil {
			return nil, err
		}
		if out.Data, err = d.ReadVarSlice(); err != nil {
			return nil, err
		}
		if out.RangeProof, err = d.ReadVarSlice(); err != nil {
			return nil, err
		}

	case OutputData:
		if out.Data, err = d.ReadVarSlice(); err != nil {
			return nil, err
		}

	default:
		return nil, ErrUnknownOutputType
	}

	return out, nil
}
