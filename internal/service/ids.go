package service

import (
	"math/rand"
	"strconv"
	"time"
)

// NewID returns an opaque identifier: the current millisecond timestamp plus
// a random suffix, both base-36. Callers must not assume identifiers sort
// chronologically.
func NewID() string {
	ts := strconv.FormatInt(time.Now().UnixMilli(), 36)
	suffix := strconv.FormatUint(rand.Uint64(), 36)
	return ts + suffix
}
