package ux

import (
	"encoding/binary"

	"github.com/cespare/xxhash/v2"
)

// hashInt64 hashes the canonical value of an integer. Every width fits in an
// int64, so equal values of the same type always hash equal.
func hashInt64(v int64) uint64 {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], uint64(v))
	return xxhash.Sum64(buf[:])
}
