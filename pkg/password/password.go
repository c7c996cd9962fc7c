package password

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// MinCost is the lowest work factor accepted for production use.
const MinCost = 10

// DefaultCost mirrors the original deployment default.
const DefaultCost = 12

var ErrWeakCost = errors.New("bcrypt cost below minimum")

// Hasher applies salted one-way hashing to user passwords.
type Hasher struct {
	cost int
}

// NewHasher returns a Hasher with the given bcrypt cost. Costs below MinCost
// are a configuration error, not something to silently round up.
func NewHasher(cost int) (*Hasher, error) {
	if cost < MinCost {
		return nil, fmt.Errorf("%w: got %d, need >= %d", ErrWeakCost, cost, MinCost)
	}
	return &Hasher{cost: cost}, nil
}

func (h *Hasher) Hash(plaintext string) ([]byte, error) {
	return bcrypt.GenerateFromPassword([]byte(plaintext), h.cost)
}

// Verify reports whether plaintext matches hashed. Any mismatch or malformed
// hash yields false; bcrypt's comparator handles the timing-safety part.
func (h *Hasher) Verify(plaintext string, hashed []byte) bool {
	return bcrypt.CompareHashAndPassword(hashed, []byte(plaintext)) == nil
}
