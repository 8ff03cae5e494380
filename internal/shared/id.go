package shared

import (
	"strconv"
	"time"
)

// Type prefixes for generated identifiers.
const (
	AccountIDPrefix = "u_"
	NoteIDPrefix    = "n_"
)

// NewID returns an opaque identifier: the given type prefix concatenated with
// the current Unix time in milliseconds. Uniqueness is probabilistic — two
// calls within the same millisecond collide. Good enough for a single-user
// client creating records at human speed.
func NewID(prefix string) string {
	return prefix + strconv.FormatInt(time.Now().UnixMilli(), 10)
}
