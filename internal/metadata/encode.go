// Hand-written wire-format encoding for the messages in
// update_metadata.proto, in the shape protoc-gen-gogofaster emits.

package metadata

func encodeVarint(buf []byte, v uint64) []byte {
	for v >= 0x80 {
		buf = append(buf, byte(v)|0x80)
		v >>= 7
	}
	return append(buf, byte(v))
}

func encodeTag(buf []byte, field int, wireType int) []byte {
	return encodeVarint(buf, uint64(field)<<3|uint64(wireType))
}

func encodeLenDelim(buf []byte, field int, data []byte) []byte {
	buf = encodeTag(buf, field, wireBytes)
	buf = encodeVarint(buf, uint64(len(data)))
	return append(buf, data...)
}

// Marshal encodes an Extent.
func (m *Extent) Marshal() ([]byte, error) {
	var buf []byte
	if m.StartBlock != nil {
		buf = encodeTag(buf, 1, wireVarint)
		buf = encodeVarint(buf, *m.StartBlock)
	}
	if m.NumBlocks != nil {
		buf = encodeTag(buf, 2, wireVarint)
		buf = encodeVarint(buf, *m.NumBlocks)
	}
	return buf, nil
}

// Marshal encodes a PartitionInfo.
func (m *PartitionInfo) Marshal() ([]byte, error) {
	var buf []byte
	if m.Size != nil {
		buf = encodeTag(buf, 1, wireVarint)
		buf = encodeVarint(buf, *m.Size)
	}
	if m.Hash != nil {
		buf = encodeLenDelim(buf, 2, m.Hash)
	}
	return buf, nil
}

// Marshal encodes an InstallOperation.
func (m *InstallOperation) Marshal() ([]byte, error) {
	var buf []byte
	if m.Type != nil {
		buf = encodeTag(buf, 1, wireVarint)
		buf = encodeVarint(buf, uint64(*m.Type))
	}
	if m.DataOffset != nil {
		buf = encodeTag(buf, 2, wireVarint)
		buf = encodeVarint(buf, *m.DataOffset)
	}
	if m.DataLength != nil {
		buf = encodeTag(buf, 3, wireVarint)
		buf = encodeVarint(buf, *m.DataLength)
	}
	for _, e := range m.DstExtents {
		b, err := e.Marshal()
		if err != nil {
			return nil, err
		}
		buf = encodeLenDelim(buf, 4, b)
	}
	if m.DataSha256Hash != nil {
		buf = encodeLenDelim(buf, 5, m.DataSha256Hash)
	}
	return buf, nil
}

// Marshal encodes a PartitionUpdate.
func (m *PartitionUpdate) Marshal() ([]byte, error) {
	var buf []byte
	if m.PartitionName != nil {
		buf = encodeLenDelim(buf, 1, []byte(*m.PartitionName))
	}
	for _, op := range m.Operations {
		b, err := op.Marshal()
		if err != nil {
			return nil, err
		}
		buf = encodeLenDelim(buf, 2, b)
	}
	if m.NewPartitionInfo != nil {
		b, err := m.NewPartitionInfo.Marshal()
		if err != nil {
			return nil, err
		}
		buf = encodeLenDelim(buf, 3, b)
	}
	return buf, nil
}

// Marshal encodes a Signatures_Signature.
func (m *Signatures_Signature) Marshal() ([]byte, error) {
	var buf []byte
	if m.Version != nil {
		buf = encodeTag(buf, 1, wireVarint)
		buf = encodeVarint(buf, uint64(*m.Version))
	}
	if m.Data != nil {
		buf = encodeLenDelim(buf, 2, m.Data)
	}
	return buf, nil
}

// Marshal encodes a Signatures message.
func (m *Signatures) Marshal() ([]byte, error) {
	var buf []byte
	for _, s := range m.Signatures {
		b, err := s.Marshal()
		if err != nil {
			return nil, err
		}
		buf = encodeLenDelim(buf, 1, b)
	}
	return buf, nil
}

// Marshal encodes a DeltaArchiveManifest.
func (m *DeltaArchiveManifest) Marshal() ([]byte, error) {
	var buf []byte
	if m.BlockSize != nil {
		buf = encodeTag(buf, 3, wireVarint)
		buf = encodeVarint(buf, uint64(*m.BlockSize))
	}
	if m.MinorVersion != nil {
		buf = encodeTag(buf, 12, wireVarint)
		buf = encodeVarint(buf, *m.MinorVersion)
	}
	for _, p := range m.Partitions {
		b, err := p.Marshal()
		if err != nil {
			return nil, err
		}
		buf = encodeLenDelim(buf, 13, b)
	}
	return buf, nil
}
