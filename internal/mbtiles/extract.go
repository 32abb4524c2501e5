package mbtiles

import (
	"bytes"
	"compress/gzip"
	"fmt"
	"io"

	"github.com/paulmach/orb/maptile"
)

// IsGzipped reports whether data starts with the gzip magic bytes.
func IsGzipped(data []byte) bool {
	return len(data) >= 2 && data[0] == 0x1f && data[1] == 0x8b
}

// Gunzip decompresses a gzip-wrapped tile blob.
func Gunzip(data []byte) ([]byte, error) {
	zr, err := gzip.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("gunzip: %w", err)
	}
	defer zr.Close()

	out, err := io.ReadAll(zr)
	if err != nil {
		return nil, fmt.Errorf("gunzip: %w", err)
	}
	return out, nil
}

// Extract returns the blob for t unmodified, or decompressed when gunzip is
// set and the blob is gzip-wrapped.
func Extract(s *Store, t maptile.Tile, gunzip bool) ([]byte, error) {
	data, err := s.ReadTile(t)
	if err != nil {
		return nil, err
	}
	if gunzip && IsGzipped(data) {
		return Gunzip(data)
	}
	return data, nil
}
