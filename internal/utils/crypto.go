package utils

import (
	"crypto/rand"
	"math/big"
)

// RandInt returns a uniform random integer in [min, max) from a
// cryptographically strong source.
func RandInt(min, max int) int {
	if max <= min {
		return min
	}
	n, err := rand.Int(rand.Reader, big.NewInt(int64(max-min)))
	if err != nil {
		// crypto/rand only fails when the OS entropy source is broken
		panic(err)
	}
	return min + int(n.Int64())
}
