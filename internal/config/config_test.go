package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/andy/billfold/internal/domain"
)

func TestLoad_MissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Invoice.DefaultCurrency != domain.DefaultCurrencyCode {
		t.Errorf("DefaultCurrency = %q, want %q", cfg.Invoice.DefaultCurrency, domain.DefaultCurrencyCode)
	}
	if cfg.Invoice.DefaultTemplate != string(domain.TemplateClassic) {
		t.Errorf("DefaultTemplate = %q, want classic", cfg.Invoice.DefaultTemplate)
	}
}

func TestSaveAndLoad_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")

	cfg := DefaultConfig()
	cfg.Company.Name = "Acme Ltd"
	cfg.Invoice.DefaultCurrency = "EUR"
	cfg.Invoice.DefaultTaxRate = 8.25

	if err := cfg.Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if loaded.Company.Name != "Acme Ltd" {
		t.Errorf("Company.Name = %q, want Acme Ltd", loaded.Company.Name)
	}
	if loaded.Invoice.DefaultCurrency != "EUR" {
		t.Errorf("DefaultCurrency = %q, want EUR", loaded.Invoice.DefaultCurrency)
	}
	if loaded.Invoice.DefaultTaxRate != 8.25 {
		t.Errorf("DefaultTaxRate = %v, want 8.25", loaded.Invoice.DefaultTaxRate)
	}
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	partial := "company:\n  name: Solo Shop\n"
	if err := os.WriteFile(path, []byte(partial), 0644); err != nil {
		t.Fatalf("write failed: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Company.Name != "Solo Shop" {
		t.Errorf("Company.Name = %q, want Solo Shop", cfg.Company.Name)
	}
	if cfg.Invoice.DefaultCurrency != domain.DefaultCurrencyCode {
		t.Errorf("missing fields should keep defaults, got currency %q", cfg.Invoice.DefaultCurrency)
	}
}

func TestNewInvoice_PrefilledFromConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Company.Name = "Acme Ltd"
	cfg.Company.Address = "1 Main St"
	cfg.Invoice.DefaultCurrency = "GBP"
	cfg.Invoice.DefaultTemplate = "minimal"
	cfg.Invoice.DefaultTaxRate = 20

	inv := cfg.NewInvoice()

	if inv.CompanyName != "Acme Ltd" || inv.CompanyAddress != "1 Main St" {
		t.Error("company fields not pre-filled from config")
	}
	if inv.Currency != "GBP" {
		t.Errorf("Currency = %q, want GBP", inv.Currency)
	}
	if inv.Template != domain.TemplateMinimal {
		t.Errorf("Template = %q, want minimal", inv.Template)
	}
	if inv.TaxRate != 20 {
		t.Errorf("TaxRate = %v, want 20", inv.TaxRate)
	}
}

func TestNewInvoice_UnknownTemplateDefaultResolvesToClassic(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Invoice.DefaultTemplate = "ornate"

	if inv := cfg.NewInvoice(); inv.Template != domain.TemplateClassic {
		t.Errorf("Template = %q, want classic", inv.Template)
	}
}
