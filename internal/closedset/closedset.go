// Package closedset implements the set-of-state-fingerprints the driver
// uses to suppress re-expansion: a state is admitted to the frontier at
// most once per fingerprint.
package closedset

import "github.com/cespare/xxhash/v2"

// Fingerprintable is the method a domain's State may implement to compute
// its closed-set key. The driver itself takes the key as a function
// (search.Fingerprint), so the reference domains implement this method and
// also export a package-level Fingerprint function that wraps it. It is
// deliberately not part of the Problem contract in package problem.
type Fingerprintable interface {
	Fingerprint() uint64
}

// Set is a 64-bit fingerprint set. The zero value is ready to use.
type Set struct {
	seen map[uint64]struct{}
}

// New returns an empty closed set.
func New() *Set {
	return &Set{seen: make(map[uint64]struct{})}
}

// Insert attempts to add fp to the set, returning true if fp was not
// already present (the state is newly admitted) or false if it was already
// there (the caller must discard the successor without expanding it).
func (s *Set) Insert(fp uint64) bool {
	if _, ok := s.seen[fp]; ok {
		return false
	}
	if s.seen == nil {
		s.seen = make(map[uint64]struct{})
	}
	s.seen[fp] = struct{}{}
	return true
}

// Len returns the number of distinct fingerprints admitted so far.
func (s *Set) Len() int { return len(s.seen) }

// Hash64 is a convenience for domains that want to fingerprint a state from
// a canonical byte/string encoding rather than implementing Fingerprintable
// by hand field-by-field.
func Hash64(encoding string) uint64 {
	return xxhash.Sum64String(encoding)
}
