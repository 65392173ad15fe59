package imageprocessing

import (
	"bytes"
	"compress/zlib"
	"encoding/binary"
	"fmt"
	"hash/crc32"

	"github.com/halftonelab/halftone/internal/dither"
)

// EncodeMonoPNG encodes a dithered buffer as a 1-bit grayscale PNG (color
// type 0, bit depth 1), the same layout ImageMagick emits for monochrome
// output. Eight pixels pack into each byte, so the result is a fraction of
// the size of an 8-bit encoding of the same data.
func EncodeMonoPNG(m *dither.Image) ([]byte, error) {
	if m == nil || m.Width <= 0 || m.Height <= 0 {
		return nil, fmt.Errorf("empty image")
	}

	var buf bytes.Buffer

	// PNG signature
	buf.Write([]byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A})

	writeChunk(&buf, "IHDR", func(data *bytes.Buffer) {
		binary.Write(data, binary.BigEndian, uint32(m.Width))
		binary.Write(data, binary.BigEndian, uint32(m.Height))
		data.WriteByte(1) // Bit depth: 1
		data.WriteByte(0) // Color type: grayscale
		data.WriteByte(0) // Compression method
		data.WriteByte(0) // Filter method
		data.WriteByte(0) // Interlace method
	})

	compressed, err := zlibCompress(packMonoImageData(m))
	if err != nil {
		return nil, fmt.Errorf("failed to compress image data: %w", err)
	}
	writeChunk(&buf, "IDAT", func(data *bytes.Buffer) {
		data.Write(compressed)
	})

	writeChunk(&buf, "IEND", func(data *bytes.Buffer) {})

	return buf.Bytes(), nil
}

// packMonoImageData packs the buffer at one bit per pixel, MSB first, with a
// filter byte (None) leading each scanline. Any intensity at or above the
// canonical threshold packs as white; a properly dithered buffer only holds
// 0 and 255 anyway.
func packMonoImageData(m *dither.Image) []byte {
	bytesPerRow := (m.Width + 7) / 8
	data := make([]byte, m.Height*(bytesPerRow+1))

	for y := 0; y < m.Height; y++ {
		rowStart := y * (bytesPerRow + 1)
		data[rowStart] = 0 // Filter type: None

		for x := 0; x < m.Width; x++ {
			if m.At(x, y) >= dither.DefaultThreshold {
				data[rowStart+1+x/8] |= 1 << (7 - x%8)
			}
		}
	}

	return data
}

// writeChunk writes a PNG chunk with its length and CRC.
func writeChunk(buf *bytes.Buffer, chunkType string, dataWriter func(*bytes.Buffer)) {
	var chunkData bytes.Buffer
	dataWriter(&chunkData)

	data := chunkData.Bytes()

	binary.Write(buf, binary.BigEndian, uint32(len(data)))
	buf.WriteString(chunkType)
	buf.Write(data)

	crc := crc32.NewIEEE()
	crc.Write([]byte(chunkType))
	crc.Write(data)
	binary.Write(buf, binary.BigEndian, crc.Sum32())
}

func zlibCompress(data []byte) ([]byte, error) {
	var buf bytes.Buffer

	writer, err := zlib.NewWriterLevel(&buf, zlib.BestCompression)
	if err != nil {
		return nil, fmt.Errorf("failed to create zlib writer: %w", err)
	}
	if _, err := writer.Write(data); err != nil {
		writer.Close()
		return nil, fmt.Errorf("failed to write data: %w", err)
	}
	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("failed to close zlib writer: %w", err)
	}

	return buf.Bytes(), nil
}
