package inspect

import (
	cryptoRand "crypto/rand"
	"encoding/binary"
	"io"
	"math/rand"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
)

var (
	idMu      sync.Mutex
	idEntropy io.Reader
)

func init() {
	// Seed a PRNG from crypto/rand; ulid.Monotonic keeps run IDs
	// generated within the same millisecond lexicographically increasing,
	// so they sort by time in the journal.
	var seed int64
	_ = binary.Read(cryptoRand.Reader, binary.LittleEndian, &seed)
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	idEntropy = ulid.Monotonic(rand.New(rand.NewSource(seed)), 0)
}

// newRunID returns a ULID string identifying one inspection run.
func newRunID() string {
	idMu.Lock()
	defer idMu.Unlock()

	id, err := ulid.New(ulid.Timestamp(time.Now().UTC()), idEntropy)
	if err != nil {
		panic(err)
	}
	return id.String()
}
