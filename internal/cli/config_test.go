package cli

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func TestConfigSaveAndLoad(t *testing.T) {
	// Use a temp dir as home
	tmp := t.TempDir()
	t.Setenv("HOME", tmp)

	cfg := CLIConfig{
		ServerURL: "http://myhost:9090",
		Languages: []string{"en", "de"},
		Reports:   "/srv/reports.csv",
	}

	if err := saveConfig(cfg); err != nil {
		t.Fatalf("save: %v", err)
	}

	path := filepath.Join(tmp, ".config", "portfolio", "config.yaml")
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("config file not found: %v", err)
	}

	loaded, err := loadConfig()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !reflect.DeepEqual(loaded, cfg) {
		t.Errorf("loaded = %+v, want %+v", loaded, cfg)
	}
}

func TestConfigLoadMissing(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, err := loadConfig()
	if err != nil {
		t.Fatalf("load missing: %v", err)
	}
	if cfg.ServerURL != "" || cfg.Languages != nil || cfg.Reports != "" {
		t.Error("expected zero-value config for missing file")
	}
}

func TestConfigLoadInvalid(t *testing.T) {
	tmp := t.TempDir()
	t.Setenv("HOME", tmp)

	dir := filepath.Join(tmp, ".config", "portfolio")
	if err := os.MkdirAll(dir, 0o700); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("languages: [unclosed"), 0o600); err != nil {
		t.Fatal(err)
	}

	if _, err := loadConfig(); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestGetServerURLFromEnv(t *testing.T) {
	t.Setenv("PORTFOLIO_SERVER_URL", "http://custom:1234")
	t.Setenv("HOME", t.TempDir())

	url := getServerURL()
	if url != "http://custom:1234" {
		t.Errorf("url = %q, want %q", url, "http://custom:1234")
	}
}

func TestGetServerURLFromConfig(t *testing.T) {
	t.Setenv("PORTFOLIO_SERVER_URL", "")
	t.Setenv("HOME", t.TempDir())

	if err := saveConfig(CLIConfig{ServerURL: "http://configured:7000"}); err != nil {
		t.Fatalf("save: %v", err)
	}

	url := getServerURL()
	if url != "http://configured:7000" {
		t.Errorf("url = %q, want %q", url, "http://configured:7000")
	}
}

func TestGetServerURLDefault(t *testing.T) {
	t.Setenv("PORTFOLIO_SERVER_URL", "")
	t.Setenv("HOME", t.TempDir())

	url := getServerURL()
	if url != "http://localhost:8080" {
		t.Errorf("url = %q, want %q", url, "http://localhost:8080")
	}
}

func TestGetLanguages(t *testing.T) {
	t.Run("env", func(t *testing.T) {
		t.Setenv("HOME", t.TempDir())
		t.Setenv("PORTFOLIO_LANGUAGES", "es, EN-us ,es")

		got, err := getLanguages()
		if err != nil {
			t.Fatalf("languages: %v", err)
		}
		want := []string{"es", "en-US"}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("languages = %v, want %v", got, want)
		}
	})

	t.Run("config", func(t *testing.T) {
		t.Setenv("HOME", t.TempDir())
		t.Setenv("PORTFOLIO_LANGUAGES", "")
		if err := saveConfig(CLIConfig{Languages: []string{"fr", "de"}}); err != nil {
			t.Fatalf("save: %v", err)
		}

		got, err := getLanguages()
		if err != nil {
			t.Fatalf("languages: %v", err)
		}
		want := []string{"fr", "de"}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("languages = %v, want %v", got, want)
		}
	})

	t.Run("default", func(t *testing.T) {
		t.Setenv("HOME", t.TempDir())
		t.Setenv("PORTFOLIO_LANGUAGES", "")

		got, err := getLanguages()
		if err != nil {
			t.Fatalf("languages: %v", err)
		}
		if !reflect.DeepEqual(got, defaultLanguages) {
			t.Errorf("languages = %v, want %v", got, defaultLanguages)
		}
	})

	t.Run("invalid", func(t *testing.T) {
		t.Setenv("HOME", t.TempDir())
		t.Setenv("PORTFOLIO_LANGUAGES", "en,!!")

		if _, err := getLanguages(); err == nil {
			t.Fatal("expected error for invalid code")
		}
	})
}

func TestGetReportsPath(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("PORTFOLIO_REPORTS", "")
	if got := getReportsPath(); got != "" {
		t.Errorf("reports = %q, want empty", got)
	}

	t.Setenv("PORTFOLIO_REPORTS", "/tmp/r.csv")
	if got := getReportsPath(); got != "/tmp/r.csv" {
		t.Errorf("reports = %q, want %q", got, "/tmp/r.csv")
	}
}

func TestConfigSetPersists(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("PORTFOLIO_SERVER_URL", "")
	t.Setenv("PORTFOLIO_LANGUAGES", "")

	if _, err := executeCommand("config", "set", "server-url", "http://myhost:9090/"); err != nil {
		t.Fatalf("set server-url: %v", err)
	}
	if _, err := executeCommand("config", "set", "languages", "de, EN-us"); err != nil {
		t.Fatalf("set languages: %v", err)
	}

	if url := getServerURL(); url != "http://myhost:9090" {
		t.Errorf("url = %q, want %q", url, "http://myhost:9090")
	}
	langs, err := getLanguages()
	if err != nil {
		t.Fatalf("languages: %v", err)
	}
	if want := []string{"de", "en-US"}; !reflect.DeepEqual(langs, want) {
		t.Errorf("languages = %v, want %v", langs, want)
	}

	out, err := executeCommand("config", "show")
	if err != nil {
		t.Fatalf("show: %v", err)
	}
	if !strings.Contains(out, "http://myhost:9090") || !strings.Contains(out, "de,en-US") {
		t.Errorf("show output = %q", out)
	}
}

func TestConfigSetRejectsBadInput(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"unknown key", []string{"config", "set", "api-key", "x"}},
		{"invalid language", []string{"config", "set", "languages", "en,!!"}},
		{"missing value", []string{"config", "set", "reports"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("HOME", t.TempDir())

			if _, err := executeCommand(tt.args...); err == nil {
				t.Fatal("expected error")
			}
			cfg, err := loadConfig()
			if err != nil {
				t.Fatalf("load: %v", err)
			}
			if !reflect.DeepEqual(cfg, CLIConfig{}) {
				t.Errorf("config changed to %+v", cfg)
			}
		})
	}
}
