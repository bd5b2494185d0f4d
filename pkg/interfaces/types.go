// Package interfaces defines the shared types and contracts for all siteshield modules.
// This package has ZERO dependencies on any other pkg/ package.
// All cross-module communication goes through types and interfaces defined here.
package interfaces

import (
	"encoding/json"
	"strconv"
	"strings"
)

// MapID identifies a Site Shield map. The API emits it as a JSON number,
// but quoted forms are accepted so IDs compare by value either way.
type MapID string

// UnmarshalJSON accepts both `123` and `"123"`.
func (id *MapID) UnmarshalJSON(b []byte) error {
	s := strings.TrimSpace(string(b))
	if s == "null" {
		*id = ""
		return nil
	}
	if strings.HasPrefix(s, `"`) {
		unq, err := strconv.Unquote(s)
		if err != nil {
			return err
		}
		s = unq
	}
	*id = MapID(strings.TrimSpace(s))
	return nil
}

// MarshalJSON writes numeric IDs as JSON numbers and anything else as a string.
func (id MapID) MarshalJSON() ([]byte, error) {
	if n, ok := id.Int(); ok {
		return []byte(strconv.FormatInt(n, 10)), nil
	}
	return json.Marshal(string(id))
}

// MarshalYAML mirrors MarshalJSON so numeric IDs are not quoted.
func (id MapID) MarshalYAML() (any, error) {
	if n, ok := id.Int(); ok {
		return n, nil
	}
	return string(id), nil
}

// Int returns the numeric value of the ID, if it has one.
func (id MapID) Int() (int64, bool) {
	n, err := strconv.ParseInt(string(id), 10, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}

// Equal reports whether two IDs carry the same value, ignoring representation.
func (id MapID) Equal(other MapID) bool {
	a, aok := id.Int()
	b, bok := other.Int()
	if aok && bok {
		return a == b
	}
	return strings.TrimSpace(string(id)) == strings.TrimSpace(string(other))
}

func (id MapID) String() string { return string(id) }

// Map is a Site Shield map as returned by the API.
type Map struct {
	ID             MapID    `json:"id" yaml:"id"`
	RuleName       string   `json:"ruleName" yaml:"ruleName"`
	MapAlias       string   `json:"mapAlias,omitempty" yaml:"mapAlias,omitempty"`
	Type           string   `json:"type,omitempty" yaml:"type,omitempty"`
	Service        string   `json:"service,omitempty" yaml:"service,omitempty"`
	Shared         bool     `json:"shared,omitempty" yaml:"shared,omitempty"`
	Acknowledged   bool     `json:"acknowledged" yaml:"acknowledged"`
	AcknowledgedBy string   `json:"acknowledgedBy" yaml:"acknowledgedBy"`
	AcknowledgedOn int64    `json:"acknowledgedOn" yaml:"acknowledgedOn"` // epoch milliseconds
	CurrentCIDRs   []string `json:"currentCidrs" yaml:"currentCidrs"`
	ProposedCIDRs  []string `json:"proposedCidrs,omitempty" yaml:"proposedCidrs,omitempty"`
	Contacts       []string `json:"contacts" yaml:"contacts"`
	LatestTicketID int64    `json:"latestTicketId,omitempty" yaml:"latestTicketId,omitempty"`

	// Raw holds the record exactly as received, including fields this
	// client does not model.
	Raw json.RawMessage `json:"-" yaml:"-"`
}

// UnmarshalJSON decodes the known fields and keeps a copy of the raw record.
func (m *Map) UnmarshalJSON(b []byte) error {
	type plain Map
	var p plain
	if err := json.Unmarshal(b, &p); err != nil {
		return err
	}
	*m = Map(p)
	m.Raw = append(json.RawMessage(nil), b...)
	return nil
}

// Pending reports whether the map has a proposed CIDR set awaiting acknowledgment.
func (m *Map) Pending() bool {
	return !m.Acknowledged
}

// EffectiveCIDRs returns the CIDR set to display: the current set once
// acknowledged, the proposed set otherwise.
func (m *Map) EffectiveCIDRs() []string {
	if m.Acknowledged {
		return m.CurrentCIDRs
	}
	return m.ProposedCIDRs
}

// MapsResponse is the body of GET /siteshield/v1/maps.
type MapsResponse struct {
	SiteShieldMaps []Map `json:"siteShieldMaps"`
}

// AnyPending reports whether at least one map in the collection is unacknowledged.
func (r *MapsResponse) AnyPending() bool {
	for i := range r.SiteShieldMaps {
		if r.SiteShieldMaps[i].Pending() {
			return true
		}
	}
	return false
}

// Command is the closed set of operations the CLI can run.
type Command string

const (
	CommandListMaps    Command = "list-maps"
	CommandListCIDRs   Command = "list-cidrs"
	CommandAcknowledge Command = "acknowledge"
)

// Commands lists every supported command in display order.
func Commands() []Command {
	return []Command{CommandListMaps, CommandListCIDRs, CommandAcknowledge}
}

// Format selects how results are rendered.
type Format string

const (
	FormatTable    Format = "table"
	FormatJSON     Format = "json"
	FormatYAML     Format = "yaml"
	FormatMarkdown Format = "markdown"
)

// ParseFormat validates a user-supplied format name. Empty selects the table.
func ParseFormat(s string) (Format, bool) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case "":
		return FormatTable, true
	case FormatTable, FormatJSON, FormatYAML, FormatMarkdown:
		return f, true
	default:
		return "", false
	}
}
