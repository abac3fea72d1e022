package record

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNullDateUnmarshalCSV(t *testing.T) {
	tests := []struct {
		name      string
		raw       string
		wantValid bool
		wantTime  time.Time
	}{
		{name: "iso date", raw: "1990-05-14", wantValid: true, wantTime: time.Date(1990, time.May, 14, 0, 0, 0, 0, time.UTC)},
		{name: "slash date", raw: "1990/05/14", wantValid: true, wantTime: time.Date(1990, time.May, 14, 0, 0, 0, 0, time.UTC)},
		{name: "uk date", raw: "14/05/1990", wantValid: true, wantTime: time.Date(1990, time.May, 14, 0, 0, 0, 0, time.UTC)},
		{name: "empty is absent", raw: "", wantValid: false},
		{name: "whitespace is absent", raw: "   ", wantValid: false},
		{name: "garbage is absent not error", raw: "not-a-date", wantValid: false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var d NullDate
			require.NoError(t, d.UnmarshalCSV(tc.raw))
			assert.Equal(t, tc.wantValid, d.Valid)
			if tc.wantValid {
				assert.True(t, d.Time.Equal(tc.wantTime), "got %v, want %v", d.Time, tc.wantTime)
			}
		})
	}
}

func TestNullDateMarshalCSV(t *testing.T) {
	d := NewDate(2025, time.July, 30)
	out, err := d.MarshalCSV()
	require.NoError(t, err)
	assert.Equal(t, "2025-07-30", out)

	var absent NullDate
	out, err = absent.MarshalCSV()
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestIDListUnmarshalCSV(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want IDList
	}{
		{name: "semicolon joined", raw: "1;2;3", want: IDList{"1", "2", "3"}},
		{name: "comma joined", raw: "1,2", want: IDList{"1", "2"}},
		{name: "mixed with spaces", raw: " 1; 2 ,3 ", want: IDList{"1", "2", "3"}},
		{name: "empty", raw: "", want: IDList{}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var l IDList
			require.NoError(t, l.UnmarshalCSV(tc.raw))
			assert.Equal(t, tc.want, l)
		})
	}
}

func TestIDListContains(t *testing.T) {
	l := IDList{"4", "7"}
	assert.True(t, l.Contains("7"))
	assert.False(t, l.Contains("9"))
	assert.False(t, l.Contains(""), "empty id never matches")
	assert.False(t, IDList{}.Contains("4"))
}
