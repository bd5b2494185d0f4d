// Package selector picks a single map out of a fetched collection.
package selector

import (
	"errors"
	"strconv"
	"strings"

	"github.com/toyinlola/siteshield/pkg/interfaces"
)

var (
	// ErrConflict is returned when both a name and an ID are given.
	ErrConflict = errors.New("--map-name and --map-id are mutually exclusive")
	// ErrMissing is returned when neither a name nor an ID is given.
	ErrMissing = errors.New("one of --map-name or --map-id is required")
)

// Criteria identifies a map by name or by ID. Exactly one must be set.
type Criteria struct {
	Name string
	ID   string
}

// Validate checks that exactly one lookup key is set. Any non-empty value
// counts as set, including one made only of spaces.
func (c Criteria) Validate() error {
	hasName := c.Name != ""
	hasID := c.ID != ""
	switch {
	case hasName && hasID:
		return ErrConflict
	case !hasName && !hasID:
		return ErrMissing
	default:
		return nil
	}
}

// String describes the criteria for messages.
func (c Criteria) String() string {
	if c.Name != "" {
		return "name " + strconv.Quote(c.Name)
	}
	return "id " + c.ID
}

// Matches reports whether m satisfies the criteria. A name must equal
// ruleName exactly apart from case; an ID matches by value.
func (c Criteria) Matches(m *interfaces.Map) bool {
	if c.Name != "" {
		return strings.EqualFold(m.RuleName, c.Name)
	}
	return m.ID.Equal(interfaces.MapID(strings.TrimSpace(c.ID)))
}

// Select returns the first map matching c, scanning in order.
func Select(maps []interfaces.Map, c Criteria) (*interfaces.Map, bool) {
	for i := range maps {
		if c.Matches(&maps[i]) {
			return &maps[i], true
		}
	}
	return nil, false
}
