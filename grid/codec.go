package grid

import (
	"bytes"
	"encoding/binary"
	"io"

	xxhash "github.com/cespare/xxhash/v2"
	"github.com/klauspost/compress/zstd"
)

// Binary layout (little-endian):
//
//	magic "VXL1" | uint32 nz | uint32 ny | uint32 nx |
//	uint64 checksum (xxhash64 of the varint payload) |
//	uint32 payload length | zstd-compressed varint-encoded cell values
//
// Cells are written in row-major [z][y][x] order as zigzag varints, so
// shape and values round-trip exactly regardless of magnitude or sign.
var codecMagic = [4]byte{'V', 'X', 'L', '1'}

// Encode serializes g into the compact binary form described above.
func Encode(g *Grid) []byte {
	// Varint payload in canonical cell order.
	payload := make([]byte, 0, g.nz*g.ny*g.nx)
	var tmp [binary.MaxVarintLen64]byte
	for z := 0; z < g.nz; z++ {
		for y := 0; y < g.ny; y++ {
			for x := 0; x < g.nx; x++ {
				n := binary.PutVarint(tmp[:], int64(g.vals[z][y][x]))
				payload = append(payload, tmp[:n]...)
			}
		}
	}
	sum := xxhash.Sum64(payload)

	zw, _ := zstd.NewWriter(nil)
	compressed := zw.EncodeAll(payload, nil)
	_ = zw.Close()

	var buf bytes.Buffer
	buf.Write(codecMagic[:])
	_ = binary.Write(&buf, binary.LittleEndian, uint32(g.nz))
	_ = binary.Write(&buf, binary.LittleEndian, uint32(g.ny))
	_ = binary.Write(&buf, binary.LittleEndian, uint32(g.nx))
	_ = binary.Write(&buf, binary.LittleEndian, sum)
	_ = binary.Write(&buf, binary.LittleEndian, uint32(len(compressed)))
	buf.Write(compressed)

	return buf.Bytes()
}

// Decode parses bytes produced by Encode back into a Grid.
// Returns ErrCodecFormat for structural damage and ErrCodecChecksum when
// the payload hash does not match the recorded checksum.
func Decode(data []byte) (*Grid, error) {
	if len(data) < 4 || !bytes.Equal(data[:4], codecMagic[:]) {
		return nil, ErrCodecFormat
	}
	r := bytes.NewReader(data[4:])
	var nz, ny, nx, plen uint32
	var sum uint64
	for _, dst := range []any{&nz, &ny, &nx, &sum, &plen} {
		if err := binary.Read(r, binary.LittleEndian, dst); err != nil {
			return nil, ErrCodecFormat
		}
	}
	if nz == 0 || ny == 0 || nx == 0 {
		return nil, ErrCodecFormat
	}
	compressed := make([]byte, plen)
	if _, err := io.ReadFull(r, compressed); err != nil {
		return nil, ErrCodecFormat
	}

	zr, err := zstd.NewReader(nil)
	if err != nil {
		return nil, ErrCodecFormat
	}
	defer zr.Close()
	payload, err := zr.DecodeAll(compressed, nil)
	if err != nil {
		return nil, ErrCodecFormat
	}
	if xxhash.Sum64(payload) != sum {
		return nil, ErrCodecChecksum
	}

	// Every cell occupies at least one payload byte, so the declared
	// shape must fit inside the decompressed payload. Checked before the
	// allocation so a forged header cannot demand huge slices.
	cells := uint64(nz) * uint64(ny)
	if cells > uint64(len(payload)) || cells*uint64(nx) > uint64(len(payload)) {
		return nil, ErrCodecFormat
	}

	pr := bytes.NewReader(payload)
	vals := make([][][]int, nz)
	for z := uint32(0); z < nz; z++ {
		vals[z] = make([][]int, ny)
		for y := uint32(0); y < ny; y++ {
			vals[z][y] = make([]int, nx)
			for x := uint32(0); x < nx; x++ {
				v, verr := binary.ReadVarint(pr)
				if verr != nil {
					return nil, ErrCodecFormat
				}
				vals[z][y][x] = int(v)
			}
		}
	}
	if pr.Len() != 0 {
		return nil, ErrCodecFormat
	}

	return &Grid{vals: vals, nz: int(nz), ny: int(ny), nx: int(nx)}, nil
}
