package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Addr != ":8080" {
		t.Errorf("Addr = %q, want %q", cfg.Addr, ":8080")
	}
	if len(cfg.Parser.StoreKeywords) == 0 {
		t.Error("expected default store keywords")
	}
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "splitscan.toml")
	content := `
addr = ":9090"
db_path = "/tmp/x.db"

[parser]
store_keywords = ["BODEGA"]
max_item_price = 500.0
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Addr != ":9090" {
		t.Errorf("Addr = %q, want %q", cfg.Addr, ":9090")
	}
	if cfg.DBPath != "/tmp/x.db" {
		t.Errorf("DBPath = %q, want %q", cfg.DBPath, "/tmp/x.db")
	}
	if len(cfg.Parser.StoreKeywords) != 1 || cfg.Parser.StoreKeywords[0] != "BODEGA" {
		t.Errorf("StoreKeywords = %v, want [BODEGA]", cfg.Parser.StoreKeywords)
	}
	if cfg.Parser.MaxItemPrice != 500 {
		t.Errorf("MaxItemPrice = %v, want 500", cfg.Parser.MaxItemPrice)
	}
}

func TestLoadMissingFile(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Addr != ":8080" {
		t.Errorf("Addr = %q, want default", cfg.Addr)
	}
}

func TestEnvOverride(t *testing.T) {
	t.Setenv("ADDR", ":7070")
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Addr != ":7070" {
		t.Errorf("Addr = %q, want %q", cfg.Addr, ":7070")
	}
}
