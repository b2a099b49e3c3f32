// Package idgen issues identifiers for tracker sessions.
package idgen

import (
	"github.com/oklog/ulid/v2"
)

// ULIDGenerator issues lexically sortable session IDs, so log lines from
// successive runs order by start time.
type ULIDGenerator struct{}

// NewULIDGenerator creates a new ULIDGenerator.
func NewULIDGenerator() *ULIDGenerator {
	return &ULIDGenerator{}
}

// Generate returns a new ULID string.
func (g *ULIDGenerator) Generate() string {
	return ulid.Make().String()
}
