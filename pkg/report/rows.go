// Package report renders Site Shield maps as tables or structured text.
package report

import (
	"strings"
	"time"

	"github.com/toyinlola/siteshield/pkg/interfaces"
)

// Status labels shown in the map listing.
const (
	StatusPending  = "UPDATES PENDING"
	StatusUpToDate = "Up-To-Date"
)

// TimestampLayout is the display layout for acknowledgment times.
const TimestampLayout = "2006-01-02 15:04:05"

var (
	mapHeaders  = []string{"ID", "Map Name", "Status", "Acknowledged By", "Acknowledged On", "Contacts"}
	cidrHeaders = []string{"Map Name", "CIDR"}
)

// StatusLabel returns the listing status for m.
func StatusLabel(m *interfaces.Map) string {
	if m.Pending() {
		return StatusPending
	}
	return StatusUpToDate
}

// FormatTimestamp converts epoch milliseconds to TimestampLayout in loc.
func FormatTimestamp(ms int64, loc *time.Location) string {
	if loc == nil {
		loc = time.Local
	}
	return time.UnixMilli(ms).In(loc).Format(TimestampLayout)
}

// MapRows builds one table row per map.
func MapRows(maps []interfaces.Map, loc *time.Location) [][]string {
	rows := make([][]string, 0, len(maps))
	for i := range maps {
		m := &maps[i]
		rows = append(rows, []string{
			m.ID.String(),
			m.RuleName,
			StatusLabel(m),
			m.AcknowledgedBy,
			FormatTimestamp(m.AcknowledgedOn, loc),
			strings.Join(m.Contacts, " "),
		})
	}
	return rows
}

// CIDRRows builds one (map name, CIDR) row per effective CIDR of m.
func CIDRRows(m *interfaces.Map) [][]string {
	cidrs := m.EffectiveCIDRs()
	rows := make([][]string, 0, len(cidrs))
	for _, cidr := range cidrs {
		rows = append(rows, []string{m.RuleName, cidr})
	}
	return rows
}
