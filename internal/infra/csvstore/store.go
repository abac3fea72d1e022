// Package csvstore implements the record store read contract over delimited
// flat files with a required header row.
package csvstore

import (
	"context"
	"fmt"
	"os"

	"github.com/gocarina/gocsv"
)

// ErrSourceRead marks a record source that is unreadable or malformed.
// It is fatal to the run that hit it.
var ErrSourceRead = fmt.Errorf("record source unreadable")

// readAll loads every row of the CSV file at path into a slice of T.
// The result is never nil; a file with only a header yields an empty slice.
func readAll[T any](ctx context.Context, path string) ([]T, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: opening %s: %v", ErrSourceRead, path, err)
	}
	defer f.Close()

	rows := []T{}
	if err := gocsv.Unmarshal(f, &rows); err != nil {
		return nil, fmt.Errorf("%w: parsing %s: %v", ErrSourceRead, path, err)
	}
	return rows, nil
}
