package report

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const sampleCSV = `1,US,CA,Sonoma,x,38.4404675,-122.7144313,0,0,0,12
2,US,CA,Marin,x,38.0834,-122.7633,0,0,0,3

3,US,NY,Kings,x,40.6782,-73.9442,0,0,0,1500
`

func TestLoad(t *testing.T) {
	reports, err := Load(strings.NewReader(sampleCSV))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(reports) != 3 {
		t.Fatalf("got %d reports, want 3", len(reports))
	}
	first := reports[0]
	if first.Lat != 38.4404675 || first.Lng != -122.7144313 || first.Active != 12 {
		t.Errorf("first = %+v", first)
	}
	if TotalActive(reports) != 1515 {
		t.Errorf("total = %d, want 1515", TotalActive(reports))
	}
}

func TestLoadEmpty(t *testing.T) {
	reports, err := Load(strings.NewReader(""))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if reports == nil || len(reports) != 0 {
		t.Errorf("got %v, want empty non-nil slice", reports)
	}
}

func TestLoadMalformed(t *testing.T) {
	tests := []struct {
		name string
		csv  string
		want string
	}{
		{"too few columns", "1,2,3\n", "line 1"},
		{"bad lat", "1,US,CA,S,x,north,-1,0,0,0,1\n", "parsing lat"},
		{"bad lng", "1,US,CA,S,x,1,west,0,0,0,1\n", "parsing lng"},
		{"bad active", "1,US,CA,S,x,1,2,0,0,0,many\n", "parsing active"},
		{"error on second line", "1,US,CA,S,x,1,2,0,0,0,1\n1,2\n", "line 2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(strings.NewReader(tt.csv))
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error = %q, want it to contain %q", err.Error(), tt.want)
			}
		})
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cases.csv")
	if err := os.WriteFile(path, []byte(sampleCSV), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}

	reports, err := LoadFile(path)
	if err != nil {
		t.Fatalf("load file: %v", err)
	}
	if len(reports) != 3 {
		t.Errorf("got %d reports, want 3", len(reports))
	}

	reports, err = LoadFile("")
	if err != nil || len(reports) != 0 {
		t.Errorf("empty path = (%v, %v), want no reports", reports, err)
	}

	if _, err := LoadFile(filepath.Join(t.TempDir(), "missing.csv")); err == nil {
		t.Error("expected error for missing file")
	}
}
