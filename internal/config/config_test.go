package config

import (
	"os"
	"testing"

	"mail-retriever/internal/models"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Address != "localhost" {
		t.Errorf("Expected address 'localhost', got '%s'", cfg.Address)
	}
	if cfg.Port != 110 {
		t.Errorf("Expected port 110, got %d", cfg.Port)
	}
	if cfg.Mailbox != "INBOX" {
		t.Errorf("Expected mailbox 'INBOX', got '%s'", cfg.Mailbox)
	}
	if cfg.Query != "ALL" {
		t.Errorf("Expected query 'ALL', got '%s'", cfg.Query)
	}
	if cfg.EnableSSL {
		t.Error("Expected enableSsl to default to false")
	}
	if cfg.UserName != "" || cfg.Password != "" {
		t.Error("Expected empty credentials by default")
	}
}

func TestWithDefaults(t *testing.T) {
	cfg := WithDefaults(models.RetrieverConfig{
		Address:   "imap.test.com",
		UserName:  "test@example.com",
		EnableSSL: true,
	})

	if cfg.Address != "imap.test.com" {
		t.Errorf("Expected address 'imap.test.com', got '%s'", cfg.Address)
	}
	if cfg.Port != 110 {
		t.Errorf("Expected default port 110, got %d", cfg.Port)
	}
	if cfg.Mailbox != "INBOX" {
		t.Errorf("Expected default mailbox 'INBOX', got '%s'", cfg.Mailbox)
	}
	if cfg.Query != "ALL" {
		t.Errorf("Expected default query 'ALL', got '%s'", cfg.Query)
	}
	if cfg.UserName != "test@example.com" {
		t.Errorf("Expected userName 'test@example.com', got '%s'", cfg.UserName)
	}
	if !cfg.EnableSSL {
		t.Error("Expected enableSsl override to be kept")
	}
}

func TestLoad(t *testing.T) {
	yamlContent := `address: "imap.test.com"
port: 993
userName: "test@example.com"
password: "testpass"
mailbox: "Archive"
query: "UNSEEN"
enableSsl: true
`

	tmpFile, err := os.CreateTemp("", "config-*.yaml")
	if err != nil {
		t.Fatalf("Failed to create temp file: %v", err)
	}
	defer func(name string) {
		_ = os.Remove(name)
	}(tmpFile.Name())

	if _, err := tmpFile.Write([]byte(yamlContent)); err != nil {
		t.Fatalf("Failed to write temp file: %v", err)
	}
	_ = tmpFile.Close()

	cfg, err := Load(tmpFile.Name())
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if cfg.Address != "imap.test.com" {
		t.Errorf("Expected address 'imap.test.com', got '%s'", cfg.Address)
	}
	if cfg.Port != 993 {
		t.Errorf("Expected port 993, got %d", cfg.Port)
	}
	if cfg.Mailbox != "Archive" {
		t.Errorf("Expected mailbox 'Archive', got '%s'", cfg.Mailbox)
	}
	if cfg.Query != "UNSEEN" {
		t.Errorf("Expected query 'UNSEEN', got '%s'", cfg.Query)
	}
	if !cfg.EnableSSL {
		t.Error("Expected enableSsl to be true")
	}
}

func TestLoad_PartialFileMergesDefaults(t *testing.T) {
	yamlContent := `address: "imap.test.com"
userName: "test@example.com"
`

	tmpFile, err := os.CreateTemp("", "config-*.yaml")
	if err != nil {
		t.Fatalf("Failed to create temp file: %v", err)
	}
	defer func(name string) {
		_ = os.Remove(name)
	}(tmpFile.Name())

	if _, err := tmpFile.Write([]byte(yamlContent)); err != nil {
		t.Fatalf("Failed to write temp file: %v", err)
	}
	_ = tmpFile.Close()

	cfg, err := Load(tmpFile.Name())
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if cfg.Address != "imap.test.com" {
		t.Errorf("Expected address 'imap.test.com', got '%s'", cfg.Address)
	}
	if cfg.Port != 110 || cfg.Mailbox != "INBOX" || cfg.Query != "ALL" {
		t.Errorf("Expected defaults for unset fields, got port=%d mailbox=%s query=%s",
			cfg.Port, cfg.Mailbox, cfg.Query)
	}
}
