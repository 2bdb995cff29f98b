package gridmap

import (
	"bufio"
	"encoding/gob"
	"encoding/json"
	"fmt"
	"io"

	"github.com/klauspost/compress/zstd"
)

// SnapshotVersion is the layout version written by WriteSnapshot.
const SnapshotVersion = 1

// maxSnapshotCells bounds the grid size accepted by ReadSnapshot.
const maxSnapshotCells = 1 << 28

// SnapshotHeader is the human-readable first line of a snapshot stream.
type SnapshotHeader struct {
	Version int `json:"version"`
	Width   int `json:"width"`
	Height  int `json:"height"`
}

type snapshotV1 struct {
	Header  SnapshotHeader
	Blocked []byte // bit i set = cell i blocked, row-major
}

// WriteSnapshot stores the walkability layout of g (not its search state) as a
// zstd stream: a JSON header line followed by a gob-encoded packed bitmap.
func WriteSnapshot(w io.Writer, g *GridMap) error {
	enc, err := zstd.NewWriter(w, zstd.WithEncoderLevel(zstd.SpeedDefault))
	if err != nil {
		return err
	}
	bw := bufio.NewWriter(enc)

	snap := snapshotV1{
		Header:  SnapshotHeader{Version: SnapshotVersion, Width: g.width, Height: g.height},
		Blocked: make([]byte, (g.Len()+7)/8),
	}
	for i, ok := range g.walkable {
		if !ok {
			snap.Blocked[i/8] |= 1 << (i % 8)
		}
	}

	hb, _ := json.Marshal(snap.Header)
	if _, err := bw.Write(hb); err != nil {
		_ = enc.Close()
		return err
	}
	if err := bw.WriteByte('\n'); err != nil {
		_ = enc.Close()
		return err
	}
	if err := gob.NewEncoder(bw).Encode(&snap); err != nil {
		_ = enc.Close()
		return fmt.Errorf("gridmap: gob encode: %w", err)
	}
	if err := bw.Flush(); err != nil {
		_ = enc.Close()
		return err
	}

	return enc.Close()
}

// ReadSnapshot rebuilds a GridMap from a stream produced by WriteSnapshot.
// The returned grid has a fresh search context.
// Returns ErrBadSnapshot, wrapped with the cause, for any malformed input.
func ReadSnapshot(r io.Reader) (*GridMap, error) {
	dec, err := zstd.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadSnapshot, err)
	}
	defer dec.Close()
	br := bufio.NewReader(dec)

	line, err := br.ReadBytes('\n')
	if err != nil {
		return nil, fmt.Errorf("%w: header: %v", ErrBadSnapshot, err)
	}
	var hdr SnapshotHeader
	if err := json.Unmarshal(line, &hdr); err != nil {
		return nil, fmt.Errorf("%w: header: %v", ErrBadSnapshot, err)
	}
	if hdr.Version != SnapshotVersion {
		return nil, fmt.Errorf("%w: unsupported version %d", ErrBadSnapshot, hdr.Version)
	}

	var snap snapshotV1
	if err := gob.NewDecoder(br).Decode(&snap); err != nil {
		return nil, fmt.Errorf("%w: gob decode: %v", ErrBadSnapshot, err)
	}
	if snap.Header != hdr {
		return nil, fmt.Errorf("%w: header mismatch", ErrBadSnapshot)
	}
	if hdr.Width < 1 || hdr.Height < 1 || hdr.Width > maxSnapshotCells/hdr.Height {
		return nil, fmt.Errorf("%w: bad size %dx%d", ErrBadSnapshot, hdr.Width, hdr.Height)
	}

	g, err := New(hdr.Width, hdr.Height)
	if err != nil {
		return nil, err
	}
	if len(snap.Blocked) != (g.Len()+7)/8 {
		return nil, fmt.Errorf("%w: bitmap has %d bytes", ErrBadSnapshot, len(snap.Blocked))
	}
	for i := range g.walkable {
		g.walkable[i] = snap.Blocked[i/8]&(1<<(i%8)) == 0
	}

	return g, nil
}

// CopyWalkability overwrites the layout of g with the layout of src.
// Returns ErrInvalidSize when the dimensions differ.
func (g *GridMap) CopyWalkability(src *GridMap) error {
	if src.width != g.width || src.height != g.height {
		return fmt.Errorf("%w: cannot copy %dx%d layout into %dx%d grid",
			ErrInvalidSize, src.width, src.height, g.width, g.height)
	}
	copy(g.walkable, src.walkable)

	return nil
}
