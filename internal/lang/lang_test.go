package lang

import "testing"

func TestCanonical(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{"", "", false},
		{"  ", "", false},
		{"en", "en", false},
		{"EN", "en", false},
		{"es", "es", false},
		{"pt-br", "pt-BR", false},
		{"zh_Hant", "zh-Hant", false},
		{"not a code", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := Canonical(tt.in)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("Canonical(%q) expected error", tt.in)
				}
				return
			}
			if err != nil {
				t.Fatalf("Canonical(%q): %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("Canonical(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestName(t *testing.T) {
	if got := Name(""); got != "All languages" {
		t.Errorf("Name(\"\") = %q", got)
	}
	if got := Name("es"); got != "Spanish" {
		t.Errorf("Name(es) = %q, want Spanish", got)
	}
	if got := Name("???"); got != "???" {
		t.Errorf("Name(???) = %q, want passthrough", got)
	}
}

func TestParseList(t *testing.T) {
	got, err := ParseList("en, ES,,en,fr")
	if err != nil {
		t.Fatalf("ParseList: %v", err)
	}
	want := []string{"en", "es", "fr"}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("code %d = %q, want %q", i, got[i], want[i])
		}
	}

	if _, err := ParseList("en,not a code"); err == nil {
		t.Error("expected error for invalid entry")
	}
}
