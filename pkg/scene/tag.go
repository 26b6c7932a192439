package scene

import "github.com/cespare/xxhash/v2"

// Tag identifies a group of transforms by the 64-bit hash of its name, so
// lookups compare integers instead of strings. The zero Tag means untagged.
type Tag uint64

const Untagged Tag = 0

// TagFor hashes a tag name. The empty name maps to Untagged.
func TagFor(name string) Tag {
	if name == "" {
		return Untagged
	}
	return Tag(xxhash.Sum64String(name))
}
