package util

import (
	"github.com/dchest/siphash"
)

const (
	// generated by splitting the md5 sum of "hashmap"
	sipHashKey1 = 0xdda7806a4847ec61
	sipHashKey2 = 0xb5940c2623a5aabd
)

// SequenceHash fingerprints a rendered sequence of elements.
// Two lists render equal iff their hashes agree.
func SequenceHash(s string) uint64 {
	return siphash.Hash(sipHashKey1, sipHashKey2, []byte(s))
}
