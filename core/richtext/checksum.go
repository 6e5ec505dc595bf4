package richtext

import (
	"encoding/hex"
	"unicode/utf8"

	"github.com/zeebo/blake3"
)

// Checksum returns the hex BLAKE3 digest of data. The editor sends it along
// with edited markup so the receiver can detect transport damage.
func Checksum(data []byte) string {
	sum := blake3.Sum256(data)
	return hex.EncodeToString(sum[:])
}

// Checksum returns a digest of the buffer's runes and their formats. Buffers
// with the same content have the same checksum.
func (b *Buffer) Checksum() string {
	h := blake3.New()
	var scratch [utf8.UTFMax]byte
	for _, c := range b.cells {
		_, _ = h.Write([]byte(c.format))
		_, _ = h.Write([]byte{0x1f})
		n := utf8.EncodeRune(scratch[:], c.r)
		_, _ = h.Write(scratch[:n])
		_, _ = h.Write([]byte{0x1e})
	}
	return hex.EncodeToString(h.Sum(nil))
}
