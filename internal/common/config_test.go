package common

import (
	"testing"
	"time"
)

func TestLoadConfigDefaults(t *testing.T) {
	for _, key := range []string{"DB_URL", "DB_LITE_PATH", "GRPC_ADDR", "OCR_DPI", "VAULT_DIR", "INGEST_WORKERS", "INGEST_PROCESS_TIMEOUT"} {
		t.Setenv(key, "")
	}

	cfg := LoadConfig()
	if cfg.Server.GRPCAddr != ":8080" {
		t.Fatalf("expected default grpc addr :8080, got %q", cfg.Server.GRPCAddr)
	}
	if cfg.OCR.DPI != 300 {
		t.Fatalf("expected default DPI 300, got %d", cfg.OCR.DPI)
	}
	if cfg.Vault.RootDir != "./uploads" {
		t.Fatalf("expected default vault dir ./uploads, got %q", cfg.Vault.RootDir)
	}
	if cfg.Ingest.Workers != 4 {
		t.Fatalf("expected default 4 ingest workers, got %d", cfg.Ingest.Workers)
	}
	if cfg.Ingest.ProcessTimeout != 3*time.Minute {
		t.Fatalf("expected default process timeout 3m, got %v", cfg.Ingest.ProcessTimeout)
	}
}

func TestLoadConfigOverrides(t *testing.T) {
	t.Setenv("GRPC_ADDR", ":9090")
	t.Setenv("OCR_DPI", "150")
	t.Setenv("CLASSIFIER_RULESET", "/etc/docuvault/ruleset.json")
	t.Setenv("INGEST_PROCESS_TIMEOUT", "90s")

	cfg := LoadConfig()
	if cfg.Server.GRPCAddr != ":9090" {
		t.Fatalf("grpc addr override not applied, got %q", cfg.Server.GRPCAddr)
	}
	if cfg.OCR.DPI != 150 {
		t.Fatalf("dpi override not applied, got %d", cfg.OCR.DPI)
	}
	if cfg.Classifier.RulesetPath != "/etc/docuvault/ruleset.json" {
		t.Fatalf("ruleset override not applied, got %q", cfg.Classifier.RulesetPath)
	}
	if cfg.Ingest.ProcessTimeout != 90*time.Second {
		t.Fatalf("timeout override not applied, got %v", cfg.Ingest.ProcessTimeout)
	}
}

func TestLoadConfigIgnoresMalformedNumbers(t *testing.T) {
	t.Setenv("OCR_DPI", "not-a-number")
	t.Setenv("INGEST_PROCESS_TIMEOUT", "soon")

	cfg := LoadConfig()
	if cfg.OCR.DPI != 300 {
		t.Fatalf("malformed DPI should fall back to default, got %d", cfg.OCR.DPI)
	}
	if cfg.Ingest.ProcessTimeout != 3*time.Minute {
		t.Fatalf("malformed duration should fall back to default, got %v", cfg.Ingest.ProcessTimeout)
	}
}

func TestValidateRequiresSomeDatabase(t *testing.T) {
	t.Setenv("DB_URL", "")
	t.Setenv("DB_LITE_PATH", "")

	cfg := LoadConfig()
	cfg.Database.LitePath = ""
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected validation error without any database target")
	}

	cfg.Database.LitePath = "./local.db"
	if err := cfg.Validate(); err != nil {
		t.Fatalf("sqlite-only config should validate, got %v", err)
	}
}
