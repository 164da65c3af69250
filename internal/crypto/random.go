package crypto

import (
	"crypto/rand"
	"crypto/sha256"
	"io"
	"sync"

	"github.com/pkg/errors"
	"golang.org/x/crypto/chacha20"
	"golang.org/x/crypto/hkdf"
)

const seedInfo = "rspki seeded source v1"

// SystemSource returns the operating system's CSPRNG.
func SystemSource() io.Reader { return rand.Reader }

// seededSource is a ChaCha20 keystream used as a reproducible bit generator.
type seededSource struct {
	stream *chacha20.Cipher
}

// NewSeededSource returns a deterministic reader whose output depends only on
// seed. Two sources built from the same seed yield identical byte streams, so
// candidate and witness sequences can be replayed in tests.
//
// The stream is not suitable for production keys.
func NewSeededSource(seed []byte) (io.Reader, error) {
	if len(seed) == 0 {
		return nil, errors.New("empty seed")
	}

	material := make([]byte, chacha20.KeySize+chacha20.NonceSize)
	defer Wipe(material)

	kdf := hkdf.New(sha256.New, seed, nil, []byte(seedInfo))
	if _, err := io.ReadFull(kdf, material); err != nil {
		return nil, errors.Wrap(err, "deriving stream key")
	}

	stream, err := chacha20.NewUnauthenticatedCipher(
		material[:chacha20.KeySize],
		material[chacha20.KeySize:],
	)
	if err != nil {
		return nil, errors.Wrap(err, "initialising stream")
	}
	return &seededSource{stream: stream}, nil
}

// Read fills p with keystream bytes. It never fails.
func (s *seededSource) Read(p []byte) (int, error) {
	Wipe(p)
	s.stream.XORKeyStream(p, p)
	return len(p), nil
}

type lockedReader struct {
	mu sync.Mutex
	r  io.Reader
}

// Locked serialises reads from r so one source can feed concurrent prime
// searches. Interleaving between readers is unspecified.
func Locked(r io.Reader) io.Reader {
	if lr, ok := r.(*lockedReader); ok {
		return lr
	}
	return &lockedReader{r: r}
}

func (l *lockedReader) Read(p []byte) (int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.r.Read(p)
}
