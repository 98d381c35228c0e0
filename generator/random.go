package generator

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

// All randomness comes from crypto/rand. The source is shared and
// thread-safe; it is never seedable and never swapped for a PRNG.

// randBelow returns a uniform int in [0, bound).
func randBelow(bound int) (int, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(int64(bound)))
	if err != nil {
		return 0, fmt.Errorf("reading secure randomness: %w", err)
	}
	return int(n.Int64()), nil
}

// choose returns one uniformly chosen byte from set.
func choose(set string) (byte, error) {
	i, err := randBelow(len(set))
	if err != nil {
		return 0, err
	}
	return set[i], nil
}

// shuffle performs an in-place Fisher-Yates shuffle, drawing every swap
// index from the secure source so guaranteed characters are not
// positionally predictable.
func shuffle(chars []byte) error {
	for i := len(chars) - 1; i > 0; i-- {
		j, err := randBelow(i + 1)
		if err != nil {
			return err
		}
		chars[i], chars[j] = chars[j], chars[i]
	}
	return nil
}
