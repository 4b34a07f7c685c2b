// Hand-written wire-format decoding for the messages in
// update_metadata.proto, in the shape protoc-gen-gogofaster emits.

package metadata

import (
	"errors"
	"fmt"
	"io"
)

// ErrIntegerOverflow is returned when a varint exceeds 64 bits.
var ErrIntegerOverflow = errors.New("metadata: integer overflow")

// ErrUnexpectedEOF is returned when a field's declared length runs past the
// end of the buffer.
var ErrUnexpectedEOF = io.ErrUnexpectedEOF

const (
	wireVarint = 0
	wireFixed8 = 1 // 64-bit
	wireBytes  = 2
	wireFixed4 = 5 // 32-bit
)

func decodeVarint(data []byte) (uint64, int, error) {
	var x uint64
	var s uint
	for i := 0; i < len(data); i++ {
		b := data[i]
		if b < 0x80 {
			if i > 9 || (i == 9 && b > 1) {
				return 0, 0, ErrIntegerOverflow
			}
			return x | uint64(b)<<s, i + 1, nil
		}
		x |= uint64(b&0x7f) << s
		s += 7
	}
	return 0, 0, io.ErrUnexpectedEOF
}

// skipField advances past a field's value given its wire type, returning
// the number of bytes consumed.
func skipField(data []byte, wireType int) (int, error) {
	switch wireType {
	case wireVarint:
		_, n, err := decodeVarint(data)
		return n, err
	case wireFixed8:
		if len(data) < 8 {
			return 0, io.ErrUnexpectedEOF
		}
		return 8, nil
	case wireFixed4:
		if len(data) < 4 {
			return 0, io.ErrUnexpectedEOF
		}
		return 4, nil
	case wireBytes:
		l, n, err := decodeVarint(data)
		if err != nil {
			return 0, err
		}
		total := n + int(l)
		if total < n || total > len(data) {
			return 0, io.ErrUnexpectedEOF
		}
		return total, nil
	default:
		return 0, fmt.Errorf("metadata: unknown wire type %d", wireType)
	}
}

func readTag(data []byte) (fieldNum int, wireType int, n int, err error) {
	v, n, err := decodeVarint(data)
	if err != nil {
		return 0, 0, 0, err
	}
	return int(v >> 3), int(v & 7), n, nil
}

func readLenDelim(data []byte) ([]byte, int, error) {
	l, n, err := decodeVarint(data)
	if err != nil {
		return nil, 0, err
	}
	end := n + int(l)
	if end < n || end > len(data) {
		return nil, 0, io.ErrUnexpectedEOF
	}
	return data[n:end], end, nil
}

// Unmarshal decodes a wire-format Extent.
func (m *Extent) Unmarshal(data []byte) error {
	for len(data) > 0 {
		field, wt, n, err := readTag(data)
		if err != nil {
			return err
		}
		data = data[n:]
		switch field {
		case 1:
			v, n, err := decodeVarint(data)
			if err != nil {
				return err
			}
			m.StartBlock = &v
			data = data[n:]
		case 2:
			v, n, err := decodeVarint(data)
			if err != nil {
				return err
			}
			m.NumBlocks = &v
			data = data[n:]
		default:
			n, err := skipField(data, wt)
			if err != nil {
				return err
			}
			data = data[n:]
		}
	}
	return nil
}

// Unmarshal decodes a wire-format PartitionInfo.
func (m *PartitionInfo) Unmarshal(data []byte) error {
	for len(data) > 0 {
		field, wt, n, err := readTag(data)
		if err != nil {
			return err
		}
		data = data[n:]
		switch field {
		case 1:
			v, n, err := decodeVarint(data)
			if err != nil {
				return err
			}
			m.Size = &v
			data = data[n:]
		case 2:
			b, n, err := readLenDelim(data)
			if err != nil {
				return err
			}
			m.Hash = append([]byte(nil), b...)
			data = data[n:]
		default:
			n, err := skipField(data, wt)
			if err != nil {
				return err
			}
			data = data[n:]
		}
	}
	return nil
}

// Unmarshal decodes a wire-format InstallOperation.
func (m *InstallOperation) Unmarshal(data []byte) error {
	for len(data) > 0 {
		field, wt, n, err := readTag(data)
		if err != nil {
			return err
		}
		data = data[n:]
		switch field {
		case 1:
			v, n, err := decodeVarint(data)
			if err != nil {
				return err
			}
			t := InstallOperation_Type(v)
			m.Type = &t
			data = data[n:]
		case 2:
			v, n, err := decodeVarint(data)
			if err != nil {
				return err
			}
			m.DataOffset = &v
			data = data[n:]
		case 3:
			v, n, err := decodeVarint(data)
			if err != nil {
				return err
			}
			m.DataLength = &v
			data = data[n:]
		case 4:
			b, n, err := readLenDelim(data)
			if err != nil {
				return err
			}
			e := &Extent{}
			if err := e.Unmarshal(b); err != nil {
				return err
			}
			m.DstExtents = append(m.DstExtents, e)
			data = data[n:]
		case 5:
			b, n, err := readLenDelim(data)
			if err != nil {
				return err
			}
			m.DataSha256Hash = append([]byte(nil), b...)
			data = data[n:]
		default:
			n, err := skipField(data, wt)
			if err != nil {
				return err
			}
			data = data[n:]
		}
	}
	if m.Type == nil {
		return errors.New("metadata: InstallOperation missing required field type")
	}
	return nil
}

// Unmarshal decodes a wire-format PartitionUpdate.
func (m *PartitionUpdate) Unmarshal(data []byte) error {
	for len(data) > 0 {
		field, wt, n, err := readTag(data)
		if err != nil {
			return err
		}
		data = data[n:]
		switch field {
		case 1:
			b, n, err := readLenDelim(data)
			if err != nil {
				return err
			}
			s := string(b)
			m.PartitionName = &s
			data = data[n:]
		case 2:
			b, n, err := readLenDelim(data)
			if err != nil {
				return err
			}
			op := &InstallOperation{}
			if err := op.Unmarshal(b); err != nil {
				return err
			}
			m.Operations = append(m.Operations, op)
			data = data[n:]
		case 3:
			b, n, err := readLenDelim(data)
			if err != nil {
				return err
			}
			info := &PartitionInfo{}
			if err := info.Unmarshal(b); err != nil {
				return err
			}
			m.NewPartitionInfo = info
			data = data[n:]
		default:
			n, err := skipField(data, wt)
			if err != nil {
				return err
			}
			data = data[n:]
		}
	}
	if m.PartitionName == nil {
		return errors.New("metadata: PartitionUpdate missing required field partition_name")
	}
	return nil
}

// Unmarshal decodes a wire-format Signatures_Signature.
func (m *Signatures_Signature) Unmarshal(data []byte) error {
	for len(data) > 0 {
		field, wt, n, err := readTag(data)
		if err != nil {
			return err
		}
		data = data[n:]
		switch field {
		case 1:
			v, n, err := decodeVarint(data)
			if err != nil {
				return err
			}
			v32 := uint32(v)
			m.Version = &v32
			data = data[n:]
		case 2:
			b, n, err := readLenDelim(data)
			if err != nil {
				return err
			}
			m.Data = append([]byte(nil), b...)
			data = data[n:]
		default:
			n, err := skipField(data, wt)
			if err != nil {
				return err
			}
			data = data[n:]
		}
	}
	return nil
}

// Unmarshal decodes a wire-format Signatures message.
func (m *Signatures) Unmarshal(data []byte) error {
	for len(data) > 0 {
		field, wt, n, err := readTag(data)
		if err != nil {
			return err
		}
		data = data[n:]
		switch field {
		case 1:
			b, n, err := readLenDelim(data)
			if err != nil {
				return err
			}
			sig := &Signatures_Signature{}
			if err := sig.Unmarshal(b); err != nil {
				return err
			}
			m.Signatures = append(m.Signatures, sig)
			data = data[n:]
		default:
			n, err := skipField(data, wt)
			if err != nil {
				return err
			}
			data = data[n:]
		}
	}
	return nil
}

// Unmarshal decodes a wire-format DeltaArchiveManifest.
func (m *DeltaArchiveManifest) Unmarshal(data []byte) error {
	for len(data) > 0 {
		field, wt, n, err := readTag(data)
		if err != nil {
			return err
		}
		data = data[n:]
		switch field {
		case 3:
			v, n, err := decodeVarint(data)
			if err != nil {
				return err
			}
			v32 := uint32(v)
			m.BlockSize = &v32
			data = data[n:]
		case 12:
			v, n, err := decodeVarint(data)
			if err != nil {
				return err
			}
			m.MinorVersion = &v
			data = data[n:]
		case 13:
			b, n, err := readLenDelim(data)
			if err != nil {
				return err
			}
			p := &PartitionUpdate{}
			if err := p.Unmarshal(b); err != nil {
				return err
			}
			m.Partitions = append(m.Partitions, p)
			data = data[n:]
		default:
			n, err := skipField(data, wt)
			if err != nil {
				return err
			}
			data = data[n:]
		}
	}
	return nil
}
