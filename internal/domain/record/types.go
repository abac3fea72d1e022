// Package record holds the primitive field types shared by the flat-file
// record sets (family members, recipients, companies, officers).
package record

import (
	"strings"
	"time"
)

// Date layouts accepted by the record source, tried in order.
var dateLayouts = []string{
	"2006-01-02",
	"2006/01/02",
	"02/01/2006",
	time.RFC3339,
}

// NullDate represents a date field that may be absent from the source data.
// Absent or unparseable values are carried as Valid=false, never as a
// sentinel date, so downstream matching treats them as "never matches".
type NullDate struct {
	Time  time.Time
	Valid bool
}

// NewDate builds a valid NullDate from year, month and day.
func NewDate(year int, month time.Month, day int) NullDate {
	return NullDate{Time: time.Date(year, month, day, 0, 0, 0, 0, time.UTC), Valid: true}
}

// UnmarshalCSV implements gocsv.TypeUnmarshaller.
func (d *NullDate) UnmarshalCSV(raw string) error {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		*d = NullDate{}
		return nil
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			*d = NullDate{Time: t, Valid: true}
			return nil
		}
	}
	// The record source is lenient about date formats; a value that fits no
	// known layout is treated as absent rather than failing the whole read.
	*d = NullDate{}
	return nil
}

// MarshalCSV implements gocsv.TypeMarshaller.
func (d NullDate) MarshalCSV() (string, error) {
	if !d.Valid {
		return "", nil
	}
	return d.Time.Format("2006-01-02"), nil
}

// IDList is an ordered list of record identifiers, parsed once at load time
// from a delimiter-joined source field and never re-split downstream.
type IDList []string

// UnmarshalCSV implements gocsv.TypeUnmarshaller. The source joins ids with
// semicolons; stray commas and whitespace are tolerated.
func (l *IDList) UnmarshalCSV(raw string) error {
	parts := strings.FieldsFunc(raw, func(r rune) bool {
		return r == ';' || r == ',' || r == ' '
	})
	ids := make(IDList, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			ids = append(ids, p)
		}
	}
	*l = ids
	return nil
}

// MarshalCSV implements gocsv.TypeMarshaller.
func (l IDList) MarshalCSV() (string, error) {
	return strings.Join(l, ";"), nil
}

// Contains reports whether id is present in the list.
func (l IDList) Contains(id string) bool {
	if id == "" {
		return false
	}
	for _, v := range l {
		if v == id {
			return true
		}
	}
	return false
}
