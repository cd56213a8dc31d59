package sync

import (
	"crypto/sha256"
	"encoding/hex"
	"io"
	"os"
)

// digestChunkSize is the read size used when streaming content into the
// hash accumulator.
const digestChunkSize = 4096

// Digest is a hex-encoded SHA-256 content digest. Equality of local and
// remote digests is the sole change-detection signal; no timestamps or
// sizes are compared.
type Digest string

// Unknown marks a digest that could not be computed. Callers must treat
// it as "assume different": it biases toward re-copying, never toward a
// wrong skip.
const Unknown Digest = ""

// FromReader hashes r in fixed-size chunks until end of stream. Any read
// error yields Unknown.
func FromReader(r io.Reader) Digest {
	h := sha256.New()
	buf := make([]byte, digestChunkSize)

	for {
		n, err := r.Read(buf)
		if n > 0 {
			h.Write(buf[:n])
		}

		if err == io.EOF {
			break
		}

		if err != nil {
			return Unknown
		}
	}

	return Digest(hex.EncodeToString(h.Sum(nil)))
}

// FromFile hashes a local file. Open and read failures yield Unknown.
func FromFile(path string) Digest {
	f, err := os.Open(path)
	if err != nil {
		return Unknown
	}
	defer f.Close()

	return FromReader(f)
}
