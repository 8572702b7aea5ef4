package config

import (
	"log"
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	App      AppConfig
	Store    StoreConfig
	Catalog  CatalogConfig
	Database DatabaseConfig
	Printer  PrinterConfig
	Logging  LoggingConfig
	Report   ReportConfig
}

type AppConfig struct {
	Name       string
	Env        string
	Debug      bool
	ScriptPath string
}

// StoreConfig is printed in the receipt header
type StoreConfig struct {
	Name          string
	Address       string
	Phone         string
	TaxID         string
	ReceiptPrefix string
}

// CatalogConfig selects where items and discounts come from
type CatalogConfig struct {
	Driver        string // "memory", "sqlite" or "postgres"
	FailureItemID int    // memory driver only; lookups of this id simulate a database outage
	InitialStock  int
	Seed          bool
	SQLitePath    string
}

type DatabaseConfig struct {
	Host         string
	Port         string
	Name         string
	User         string
	Password     string
	SSLMode      string
	Timezone     string
	MaxIdleConns int
	MaxOpenConns int
	Debug        bool
}

type PrinterConfig struct {
	Type       string // "usb", "network", "console" or "none"
	USBPath    string
	Address    string
	PaperWidth int
}

type LoggingConfig struct {
	ErrorLogPath   string
	RevenueLogPath string
}

// ReportConfig lists the end-of-day exports; an empty path disables one
type ReportConfig struct {
	WorkbookPath string
	MetricsPath  string
}

// Load reads configuration from .env and the environment
func Load() *Config {
	return LoadFile(".env")
}

// LoadFile reads configuration from the given env file, overridden by
// environment variables. A missing file is not an error.
func LoadFile(path string) *Config {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("env")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		log.Printf("Warning: %s file not found, using environment variables: %v", path, err)
	}

	// Set defaults
	v.SetDefault("APP_NAME", "pos-register")
	v.SetDefault("APP_ENV", "development")
	v.SetDefault("APP_DEBUG", false)
	v.SetDefault("CHECKOUT_SCRIPT", "")
	v.SetDefault("STORE_NAME", "Corner Store")
	v.SetDefault("STORE_ADDRESS", "")
	v.SetDefault("STORE_PHONE", "")
	v.SetDefault("STORE_TAX_ID", "")
	v.SetDefault("RECEIPT_PREFIX", "RC-")
	v.SetDefault("CATALOG_DRIVER", "memory")
	v.SetDefault("CATALOG_FAILURE_ITEM_ID", 666)
	v.SetDefault("CATALOG_INITIAL_STOCK", 100)
	v.SetDefault("CATALOG_SEED", true)
	v.SetDefault("SQLITE_PATH", "register.db")
	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", "5432")
	v.SetDefault("DB_NAME", "pos_register")
	v.SetDefault("DB_USER", "postgres")
	v.SetDefault("DB_PASSWORD", "")
	v.SetDefault("DB_SSL_MODE", "disable")
	v.SetDefault("DB_TIMEZONE", "UTC")
	v.SetDefault("DB_MAX_IDLE_CONNS", 2)
	v.SetDefault("DB_MAX_OPEN_CONNS", 10)
	v.SetDefault("PRINTER_TYPE", "console")
	v.SetDefault("PRINTER_USB_PATH", "")
	v.SetDefault("PRINTER_ADDRESS", "")
	v.SetDefault("PRINTER_PAPER_WIDTH", 32)
	v.SetDefault("ERROR_LOG_PATH", "register-errors.log")
	v.SetDefault("REVENUE_LOG_PATH", "register-revenue.txt")
	v.SetDefault("REPORT_WORKBOOK_PATH", "")
	v.SetDefault("METRICS_TEXTFILE_PATH", "")

	debug := v.GetBool("APP_DEBUG")

	return &Config{
		App: AppConfig{
			Name:       v.GetString("APP_NAME"),
			Env:        v.GetString("APP_ENV"),
			Debug:      debug,
			ScriptPath: v.GetString("CHECKOUT_SCRIPT"),
		},
		Store: StoreConfig{
			Name:          v.GetString("STORE_NAME"),
			Address:       v.GetString("STORE_ADDRESS"),
			Phone:         v.GetString("STORE_PHONE"),
			TaxID:         v.GetString("STORE_TAX_ID"),
			ReceiptPrefix: v.GetString("RECEIPT_PREFIX"),
		},
		Catalog: CatalogConfig{
			Driver:        strings.ToLower(v.GetString("CATALOG_DRIVER")),
			FailureItemID: v.GetInt("CATALOG_FAILURE_ITEM_ID"),
			InitialStock:  v.GetInt("CATALOG_INITIAL_STOCK"),
			Seed:          v.GetBool("CATALOG_SEED"),
			SQLitePath:    v.GetString("SQLITE_PATH"),
		},
		Database: DatabaseConfig{
			Host:         v.GetString("DB_HOST"),
			Port:         v.GetString("DB_PORT"),
			Name:         v.GetString("DB_NAME"),
			User:         v.GetString("DB_USER"),
			Password:     v.GetString("DB_PASSWORD"),
			SSLMode:      v.GetString("DB_SSL_MODE"),
			Timezone:     v.GetString("DB_TIMEZONE"),
			MaxIdleConns: v.GetInt("DB_MAX_IDLE_CONNS"),
			MaxOpenConns: v.GetInt("DB_MAX_OPEN_CONNS"),
			Debug:        debug,
		},
		Printer: PrinterConfig{
			Type:       strings.ToLower(v.GetString("PRINTER_TYPE")),
			USBPath:    v.GetString("PRINTER_USB_PATH"),
			Address:    v.GetString("PRINTER_ADDRESS"),
			PaperWidth: v.GetInt("PRINTER_PAPER_WIDTH"),
		},
		Logging: LoggingConfig{
			ErrorLogPath:   v.GetString("ERROR_LOG_PATH"),
			RevenueLogPath: v.GetString("REVENUE_LOG_PATH"),
		},
		Report: ReportConfig{
			WorkbookPath: v.GetString("REPORT_WORKBOOK_PATH"),
			MetricsPath:  v.GetString("METRICS_TEXTFILE_PATH"),
		},
	}
}

func (c *DatabaseConfig) DSN() string {
	return "host=" + c.Host +
		" user=" + c.User +
		" password=" + c.Password +
		" dbname=" + c.Name +
		" port=" + c.Port +
		" sslmode=" + c.SSLMode +
		" TimeZone=" + c.Timezone
}
