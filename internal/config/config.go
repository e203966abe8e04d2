package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/andy/billfold/internal/domain"
)

type Config struct {
	// Database settings
	Database DatabaseConfig `yaml:"database"`

	// Invoice defaults for new invoices
	Invoice InvoiceConfig `yaml:"invoice"`

	// Company info pre-filled into new invoices
	Company CompanyConfig `yaml:"company"`
}

type DatabaseConfig struct {
	Path string `yaml:"path"` // Path to SQLite database
}

type InvoiceConfig struct {
	DefaultCurrency string  `yaml:"default_currency"` // Currency code for new invoices
	DefaultTemplate string  `yaml:"default_template"` // Layout variant for new invoices
	DefaultTaxRate  float64 `yaml:"default_tax_rate"` // Tax rate as a percentage (8.25 = 8.25%)
	OutputDir       string  `yaml:"output_dir"`       // Directory for exported PDFs
}

type CompanyConfig struct {
	Name    string `yaml:"name"`
	Address string `yaml:"address"`
	Website string `yaml:"website"`
	Logo    string `yaml:"logo"` // Path to a logo image file
}

// DefaultConfigPath returns ~/.config/billfold/config.yaml
func DefaultConfigPath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		// Fallback to current directory if home dir unavailable
		return filepath.Join(".", ".config", "billfold", "config.yaml")
	}
	return filepath.Join(homeDir, ".config", "billfold", "config.yaml")
}

// DefaultConfig returns sensible defaults
func DefaultConfig() *Config {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		homeDir = "."
	}

	return &Config{
		Database: DatabaseConfig{
			Path: filepath.Join(homeDir, ".config", "billfold", "billfold.db"),
		},
		Invoice: InvoiceConfig{
			DefaultCurrency: domain.DefaultCurrencyCode,
			DefaultTemplate: string(domain.TemplateClassic),
			DefaultTaxRate:  0,
			OutputDir:       filepath.Join(homeDir, ".config", "billfold", "exports"),
		},
		Company: CompanyConfig{},
	}
}

// Load loads config from the given path, or returns defaults if file doesn't exist
func Load(path string) (*Config, error) {
	// If file doesn't exist, return defaults
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return DefaultConfig(), nil
	}

	// Read file
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	// Parse YAML
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// LoadDefault loads from the default config path
func LoadDefault() (*Config, error) {
	return Load(DefaultConfigPath())
}

// Save writes the config to the given path
func (c *Config) Save(path string) error {
	// Create parent directories if they don't exist
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	// Marshal to YAML
	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}

	// Write to file
	return os.WriteFile(path, data, 0644)
}

// EnsureDirectories creates all necessary directories (database, exports)
func (c *Config) EnsureDirectories() error {
	// Create database directory
	dbDir := filepath.Dir(c.Database.Path)
	if err := os.MkdirAll(dbDir, 0755); err != nil {
		return err
	}

	// Create export output directory
	if err := os.MkdirAll(c.Invoice.OutputDir, 0755); err != nil {
		return err
	}

	return nil
}

// NewInvoice creates a fresh invoice pre-filled with the configured
// company details and defaults
func (c *Config) NewInvoice() *domain.Invoice {
	inv := domain.NewInvoice(c.Invoice.DefaultCurrency, domain.ResolveTemplate(domain.Template(c.Invoice.DefaultTemplate)))
	inv.CompanyName = c.Company.Name
	inv.CompanyAddress = c.Company.Address
	inv.CompanyWebsite = c.Company.Website
	inv.CompanyLogo = c.Company.Logo
	inv.TaxRate = c.Invoice.DefaultTaxRate
	return inv
}
