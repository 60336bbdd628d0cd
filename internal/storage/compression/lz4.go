package compression

import (
	"fmt"

	"github.com/pierrec/lz4"
)

// NoCompressor stores data as is.
type NoCompressor struct{}

func (c *NoCompressor) Name() string {
	return "none"
}

func (c *NoCompressor) Compress(data []byte) ([]byte, error) {
	return append([]byte(nil), data...), nil
}

func (c *NoCompressor) Decompress(data []byte, size int) ([]byte, error) {
	if len(data) != size {
		return nil, fmt.Errorf("stored length %d, expected %d", len(data), size)
	}
	return append([]byte(nil), data...), nil
}

// LZ4Compressor implements LZ4 block compression.
//
// Incompressible input makes CompressBlock return 0; the block is then
// stored raw and recognised on the way back by its length equalling size.
type LZ4Compressor struct{}

func (c *LZ4Compressor) Name() string {
	return "lz4"
}

func (c *LZ4Compressor) Compress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return []byte{}, nil
	}

	compressed := make([]byte, lz4.CompressBlockBound(len(data)))
	n, err := lz4.CompressBlock(data, compressed, nil)
	if err != nil {
		return nil, fmt.Errorf("lz4 compression failed: %w", err)
	}
	if n == 0 || n >= len(data) {
		return append([]byte(nil), data...), nil
	}
	return compressed[:n], nil
}

func (c *LZ4Compressor) Decompress(data []byte, size int) ([]byte, error) {
	if size < 0 {
		return nil, fmt.Errorf("lz4: negative size %d", size)
	}
	if size == 0 {
		return []byte{}, nil
	}
	if len(data) == size {
		return append([]byte(nil), data...), nil
	}

	out := make([]byte, size)
	n, err := lz4.UncompressBlock(data, out)
	if err != nil {
		return nil, fmt.Errorf("lz4 decompression failed: %w", err)
	}
	if n != size {
		return nil, fmt.Errorf("lz4 decompressed %d bytes, expected %d", n, size)
	}
	return out, nil
}
