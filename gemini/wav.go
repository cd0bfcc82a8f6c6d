package gemini

import (
	"bytes"
	"encoding/binary"
)

// EncodeWAV wraps little-endian PCM samples in a RIFF/WAVE container.
func EncodeWAV(pcm []byte, sampleRate, channels, bitsPerSample int) []byte {
	blockAlign := channels * bitsPerSample / 8
	byteRate := sampleRate * blockAlign

	var buf bytes.Buffer
	buf.Grow(44 + len(pcm))
	buf.WriteString("RIFF")
	le32(&buf, uint32(36+len(pcm)))
	buf.WriteString("WAVE")

	buf.WriteString("fmt ")
	le32(&buf, 16)
	le16(&buf, 1) // PCM
	le16(&buf, uint16(channels))
	le32(&buf, uint32(sampleRate))
	le32(&buf, uint32(byteRate))
	le16(&buf, uint16(blockAlign))
	le16(&buf, uint16(bitsPerSample))

	buf.WriteString("data")
	le32(&buf, uint32(len(pcm)))
	buf.Write(pcm)

	return buf.Bytes()
}

func le16(buf *bytes.Buffer, v uint16) {
	_ = binary.Write(buf, binary.LittleEndian, v)
}

func le32(buf *bytes.Buffer, v uint32) {
	_ = binary.Write(buf, binary.LittleEndian, v)
}
