package mesh

import (
	"bufio"
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/Faultbox/meshmerge/pkg/math"
)

// MMSH format errors.
var (
	ErrInvalidMagic       = errors.New("invalid mesh magic: expected 'MMSH'")
	ErrUnsupportedVersion = errors.New("unsupported mesh version")
	ErrTruncated          = errors.New("truncated mesh data")
)

// FileExt is the extension used for encoded meshes.
const FileExt = ".mmsh"

const (
	magic   = "MMSH"
	version = uint16(1)
)

// Attribute presence flags.
const (
	flagNormals uint8 = 1 << iota
	flagTangents
	flagUVs
)

type header struct {
	VertexCount   uint32
	IndexCount    uint32
	SubMeshCount  uint32
	AttributeMask uint8
}

type subMeshRecord struct {
	FirstVertex, VertexCount, IndexStart, IndexCount uint32
}

// Encode writes m in MMSH format.
//
// Layout (little endian): magic, version uint16, name (uint16 length +
// bytes), header, positions, optional normals/tangents/uvs, indices,
// submeshes, bounds.
func Encode(w io.Writer, m *Mesh) error {
	if len(m.Name) > 0xFFFF {
		return fmt.Errorf("mesh name too long: %d bytes", len(m.Name))
	}

	bw := bufio.NewWriter(w)
	h := header{
		VertexCount:  uint32(len(m.Positions)),
		IndexCount:   uint32(len(m.Indices)),
		SubMeshCount: uint32(len(m.SubMeshes)),
	}
	if len(m.Normals) > 0 {
		h.AttributeMask |= flagNormals
	}
	if len(m.Tangents) > 0 {
		h.AttributeMask |= flagTangents
	}
	if len(m.UVs) > 0 {
		h.AttributeMask |= flagUVs
	}

	subMeshes := make([]subMeshRecord, len(m.SubMeshes))
	for i, sm := range m.SubMeshes {
		subMeshes[i] = subMeshRecord{
			FirstVertex: uint32(sm.FirstVertex),
			VertexCount: uint32(sm.VertexCount),
			IndexStart:  uint32(sm.IndexStart),
			IndexCount:  uint32(sm.IndexCount),
		}
	}

	parts := []any{
		[]byte(magic),
		version,
		uint16(len(m.Name)),
		[]byte(m.Name),
		h,
		m.Positions,
	}
	if h.AttributeMask&flagNormals != 0 {
		parts = append(parts, m.Normals)
	}
	if h.AttributeMask&flagTangents != 0 {
		parts = append(parts, m.Tangents)
	}
	if h.AttributeMask&flagUVs != 0 {
		parts = append(parts, m.UVs)
	}
	parts = append(parts, m.Indices, subMeshes, m.Bounds)

	for _, p := range parts {
		if err := binary.Write(bw, binary.LittleEndian, p); err != nil {
			return fmt.Errorf("writing mesh: %w", err)
		}
	}
	return bw.Flush()
}

// Decode parses MMSH data.
func Decode(data []byte) (*Mesh, error) {
	if len(data) < len(magic)+2 {
		return nil, ErrTruncated
	}
	if string(data[:len(magic)]) != magic {
		return nil, ErrInvalidMagic
	}

	r := bytes.NewReader(data[len(magic):])

	var ver uint16
	if err := binary.Read(r, binary.LittleEndian, &ver); err != nil {
		return nil, ErrTruncated
	}
	if ver != version {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedVersion, ver)
	}

	var nameLen uint16
	if err := binary.Read(r, binary.LittleEndian, &nameLen); err != nil {
		return nil, ErrTruncated
	}
	name := make([]byte, nameLen)
	if _, err := io.ReadFull(r, name); err != nil {
		return nil, ErrTruncated
	}

	var h header
	if err := binary.Read(r, binary.LittleEndian, &h); err != nil {
		return nil, ErrTruncated
	}

	// Reject counts the remaining payload cannot hold before allocating.
	need := int64(h.VertexCount)*12 + int64(h.IndexCount)*4 + int64(h.SubMeshCount)*16 + 24
	if h.AttributeMask&flagNormals != 0 {
		need += int64(h.VertexCount) * 12
	}
	if h.AttributeMask&flagTangents != 0 {
		need += int64(h.VertexCount) * 16
	}
	if h.AttributeMask&flagUVs != 0 {
		need += int64(h.VertexCount) * 8
	}
	if int64(r.Len()) < need {
		return nil, fmt.Errorf("%w: need %d bytes, have %d", ErrTruncated, need, r.Len())
	}

	m := &Mesh{
		Name:      string(name),
		Positions: make([]math.Vec3, h.VertexCount),
		Indices:   make([]uint32, h.IndexCount),
	}
	if h.AttributeMask&flagNormals != 0 {
		m.Normals = make([]math.Vec3, h.VertexCount)
	}
	if h.AttributeMask&flagTangents != 0 {
		m.Tangents = make([]math.Vec4, h.VertexCount)
	}
	if h.AttributeMask&flagUVs != 0 {
		m.UVs = make([]math.Vec2, h.VertexCount)
	}
	subMeshes := make([]subMeshRecord, h.SubMeshCount)

	parts := []any{m.Positions}
	if m.Normals != nil {
		parts = append(parts, m.Normals)
	}
	if m.Tangents != nil {
		parts = append(parts, m.Tangents)
	}
	if m.UVs != nil {
		parts = append(parts, m.UVs)
	}
	parts = append(parts, m.Indices, subMeshes, &m.Bounds)

	for _, p := range parts {
		if err := binary.Read(r, binary.LittleEndian, p); err != nil {
			return nil, ErrTruncated
		}
	}

	if len(subMeshes) > 0 {
		m.SubMeshes = make([]SubMesh, len(subMeshes))
		for i, sm := range subMeshes {
			m.SubMeshes[i] = SubMesh{
				FirstVertex: int(sm.FirstVertex),
				VertexCount: int(sm.VertexCount),
				IndexStart:  int(sm.IndexStart),
				IndexCount:  int(sm.IndexCount),
			}
		}
	}

	return m, nil
}

// WriteFile encodes m to path, creating parent directories as needed.
func WriteFile(path string, m *Mesh) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := Encode(f, m); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// ReadFile decodes an MMSH file from disk.
func ReadFile(path string) (*Mesh, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading mesh file: %w", err)
	}
	return Decode(data)
}
