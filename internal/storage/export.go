package storage

import (
	"fmt"
	"io"

	"github.com/gocarina/gocsv"
)

// ExportCSV writes every run as CSV with a header row.
func (s *Store) ExportCSV(w io.Writer) (int, error) {
	runs, err := s.AllRuns()
	if err != nil {
		return 0, err
	}
	if len(runs) == 0 {
		runs = []Run{}
	}
	if err := gocsv.Marshal(&runs, w); err != nil {
		return 0, fmt.Errorf("storage: cannot export runs: %w", err)
	}
	return len(runs), nil
}
