package hash

import "github.com/cespare/xxhash/v2"

// Key computes the xxHash64 of a format string, used as a program cache key.
func Key(format string) uint64 {
	return xxhash.Sum64String(format)
}

// Checksum computes the xxHash64 of a payload, used to detect record blob
// corruption.
func Checksum(data []byte) uint64 {
	return xxhash.Sum64(data)
}
