// Package report loads the case reports plotted on the map heatmap.
package report

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// CSV columns holding the values of a report.
const (
	colLat    = 5
	colLng    = 6
	colActive = 10
)

// Report is one heatmap point.
type Report struct {
	Lat    float64 `json:"lat"`
	Lng    float64 `json:"lng"`
	Active int     `json:"active"`
}

// Load parses reports from CSV rows. Every row is data; blank lines are skipped.
func Load(r io.Reader) ([]Report, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	reports := []Report{}
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading reports: %w", err)
		}
		line, _ := cr.FieldPos(0)

		rep, err := parseRecord(rec)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		reports = append(reports, rep)
	}
	return reports, nil
}

// LoadFile parses reports from a CSV file. An empty path yields no reports.
func LoadFile(path string) ([]Report, error) {
	if path == "" {
		return []Report{}, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening reports: %w", err)
	}
	defer func() { _ = f.Close() }()
	return Load(f)
}

// TotalActive sums the active counts.
func TotalActive(reports []Report) int64 {
	var total int64
	for _, r := range reports {
		total += int64(r.Active)
	}
	return total
}

func parseRecord(rec []string) (Report, error) {
	if len(rec) <= colActive {
		return Report{}, fmt.Errorf("expected at least %d columns, got %d", colActive+1, len(rec))
	}
	lat, err := strconv.ParseFloat(strings.TrimSpace(rec[colLat]), 64)
	if err != nil {
		return Report{}, fmt.Errorf("parsing lat: %w", err)
	}
	lng, err := strconv.ParseFloat(strings.TrimSpace(rec[colLng]), 64)
	if err != nil {
		return Report{}, fmt.Errorf("parsing lng: %w", err)
	}
	active, err := strconv.Atoi(strings.TrimSpace(rec[colActive]))
	if err != nil {
		return Report{}, fmt.Errorf("parsing active: %w", err)
	}
	return Report{Lat: lat, Lng: lng, Active: active}, nil
}
