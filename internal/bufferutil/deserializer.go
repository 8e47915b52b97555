package bufferutil

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
)

// Deserializer implements methods that help to deserialize an Umbra
// transaction.
type Deserializer struct {
	buffer *bytes.Buffer
}

// NewDeserializer returns an instance of Deserializer.
func NewDeserializer(buffer *bytes.Buffer) *Deserializer {
	return &Deserializer{buffer}
}

// ReadToEnd returns the bytes not yet consumed.
func (d *Deserializer) ReadToEnd() []byte {
	return d.buffer.Bytes()
}

// ReadUint8 reads a uint8 value from the deserializer's buffer.
func (d *Deserializer) ReadUint8() (uint8, error) {
	return d.buffer.ReadByte()
}

// ReadUint16 reads a uint16 value from the deserializer's buffer.
func (d *Deserializer) ReadUint16() (uint16, error) {
	b, err := d.readN(2)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint16(b), nil
}

// ReadUint32 reads a uint32 value from the deserializer's buffer.
func (d *Deserializer) ReadUint32() (uint32, error) {
	b, err := d.readN(4)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(b), nil
}

// ReadUint64 reads a uint64 value from the deserializer's buffer.
func (d *Deserializer) ReadUint64() (uint64, error) {
	b, err := d.readN(8)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint64(b), nil
}

// ReadVarInt reads a variable length integer from the deserializer's buffer
// and returns it as a uint64.
func (d *Deserializer) ReadVarInt() (uint64, error) {
	discriminant, err := d.ReadUint8()
	if err != nil {
		return 0, err
	}

	switch discriminant {
	case 0xff:
		return d.ReadUint64()
	case 0xfe:
		v, err := d.ReadUint32()
		return uint64(v), err
	case 0xfd:
		v, err := d.ReadUint16()
		return uint64(v), err
	default:
		return uint64(discriminant), nil
	}
}

// ReadSlice reads the next n bytes from the deserializer's buffer.
func (d *Deserializer) ReadSlice(n uint) ([]byte, error) {
	return d.readN(int(n))
}

// ReadVarSlice first reads the length n of the bytes, then reads the next
// n bytes.
func (d *Deserializer) ReadVarSlice() ([]byte, error) {
	n, err := d.ReadVarInt()
	if err != nil {
		return nil, err
	}
	return d.ReadSlice(uint(n))
}

// ReadVector reads the length n of the array of bytes, then reads the next
// n array bytes.
func (d *Deserializer) ReadVector() ([][]byte, error) {
	n, err := d.ReadVarInt()
	if err != nil {
		return nil, err
	}
	v := [][]byte{}
	for i := uint(0); i < uint(n); i++ {
		val, err := d.ReadVarSlice()
		if err != nil {
			return nil, err
		}
		v = append(v, val)
	}
	return v, nil
}

func (d *Deserializer) readN(n int) ([]byte, error) {
	if n < 0 {
		return nil, fmt.Errorf("invalid read length %d", n)
	}
	decoded := make([]byte, n)
	if _, err := io.ReadFull(d.buffer, decoded); err != nil {
		return nil, err
	}
	return decoded, nil
}
