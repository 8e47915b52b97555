package bufferutil

import (
	"bytes"
	"encoding/binary"
)

// Serializer implements methods that help to serialize an Umbra transaction.
type Serializer struct {
	buffer  *bytes.Buffer
	scratch [8]byte
}

// NewSerializer returns an instance of Serializer. The given buffer may be
// nil, in which case an empty one is allocated.
func NewSerializer(buf *bytes.Buffer) *Serializer {
	if buf == nil {
		buf = bytes.NewBuffer(nil)
	}
	return &Serializer{buffer: buf}
}

// Bytes returns the serializer's buffer.
func (s *Serializer) Bytes() []byte {
	return s.buffer.Bytes()
}

// WriteUint8 writes the given uint8 value to the serializer's buffer.
func (s *Serializer) WriteUint8(val uint8) error {
	s.scratch[0] = val
	_, err := s.buffer.Write(s.scratch[:1])
	return err
}

// WriteUint16 writes the given uint16 value to the serializer's buffer.
func (s *Serializer) WriteUint16(val uint16) error {
	binary.LittleEndian.PutUint16(s.scratch[:2], val)
	_, err := s.buffer.Write(s.scratch[:2])
	return err
}

// WriteUint32 writes the given uint32 value to the serializer's buffer.
func (s *Serializer) WriteUint32(val uint32) error {
	binary.LittleEndian.PutUint32(s.scratch[:4], val)
	_, err := s.buffer.Write(s.scratch[:4])
	return err
}

// WriteUint64 writes the given uint64 value to the serializer's buffer.
func (s *Serializer) WriteUint64(val uint64) error {
	binary.LittleEndian.PutUint64(s.scratch[:8], val)
	_, err := s.buffer.Write(s.scratch[:8])
	return err
}

// WriteVarInt serializes the given value to the serializer's buffer using a
// variable number of bytes depending on its value.
func (s *Serializer) WriteVarInt(val uint64) error {
	switch {
	case val < 0xfd:
		return s.WriteUint8(uint8(val))
	case val <= 0xffff:
		if err := s.WriteUint8(0xfd); err != nil {
			return err
		}
		return s.WriteUint16(uint16(val))
	case val <= 0xffffffff:
		if err := s.WriteUint8(0xfe); err != nil {
			return err
		}
		return s.WriteUint32(uint32(val))
	default:
		if err := s.WriteUint8(0xff); err != nil {
			return err
		}
		return s.WriteUint64(val)
	}
}

// WriteSlice appends the given byte array to the serializer's buffer.
func (s *Serializer) WriteSlice(val []byte) error {
	_, err := s.buffer.Write(val)
	return err
}

// WriteVarSlice appends the length of the given byte array as var int
// and the byte array itself to the serializer's buffer.
func (s *Serializer) WriteVarSlice(val []byte) error {
	if err := s.WriteVarInt(uint64(len(val))); err != nil {
		return err
	}
	return s.WriteSlice(val)
}

// WriteVector appends an array of array bytes to the serializer's buffer.
func (s *Serializer) WriteVector(v [][]byte) error {
	if err := s.WriteVarInt(uint64(len(v))); err != nil {
		return err
	}
	for _, val := range v {
		if err := s.WriteVarSlice(val); err != nil {
			return err
		}
	}
	return nil
}
