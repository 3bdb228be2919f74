package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("OBJECT_STORE", "")
	t.Setenv("TESSERACT_PATH", "")
	t.Setenv("ENV", "")

	cfg := Load()
	if cfg.Port != "8080" {
		t.Fatalf("expected default port 8080, got %q", cfg.Port)
	}
	if cfg.ObjectStoreType != "local" {
		t.Fatalf("expected default store local, got %q", cfg.ObjectStoreType)
	}
	if cfg.TesseractPath != "tesseract" {
		t.Fatalf("expected default tesseract path, got %q", cfg.TesseractPath)
	}
	if cfg.Env != "dev" {
		t.Fatalf("expected default env dev, got %q", cfg.Env)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("OBJECT_STORE", "S3")
	t.Setenv("TESSERACT_PATH", "/opt/tesseract/bin/tesseract")
	t.Setenv("CORS_ALLOW_ORIGINS", "https://a.example, https://b.example ,")
	t.Setenv("ENV", "Production")

	cfg := Load()
	if cfg.Port != "9090" {
		t.Fatalf("expected port 9090, got %q", cfg.Port)
	}
	if cfg.ObjectStoreType != "s3" {
		t.Fatalf("expected store s3, got %q", cfg.ObjectStoreType)
	}
	if cfg.TesseractPath != "/opt/tesseract/bin/tesseract" {
		t.Fatalf("expected overridden tesseract path, got %q", cfg.TesseractPath)
	}
	if len(cfg.CORSAllowOrigin) != 2 || cfg.CORSAllowOrigin[1] != "https://b.example" {
		t.Fatalf("unexpected origins: %v", cfg.CORSAllowOrigin)
	}
	if cfg.Env != "production" {
		t.Fatalf("expected normalized env production, got %q", cfg.Env)
	}
}
